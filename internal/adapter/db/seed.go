package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type seedTask struct {
	title      string
	status     string
	priority   string
	nextStep   string
	milestones string
	steps      []string
}

var sampleTasks = []seedTask{
	{
		title:      "Set up development environment",
		status:     "active",
		priority:   "high",
		nextStep:   "Install MySQL",
		milestones: "- [x] Install Go\n- [x] Clone the repository\n- [ ] Install MySQL\n- [ ] Run `tasklist migrate`",
		steps: []string{
			"Created the embedded web UI",
			"Set up the JSON API",
			"Configured environment variables",
		},
	},
	{
		title:      "Deploy to production",
		status:     "active",
		priority:   "medium",
		nextStep:   "Provision a MySQL database",
		milestones: "- [ ] Provision MySQL\n- [ ] Set environment variables\n- [ ] Deploy the binary",
		steps: []string{
			"Wrote the deployment configuration",
			"Set up build scripts",
		},
	},
	{
		title:      "Add user authentication",
		status:     "paused",
		priority:   "low",
		nextStep:   "Research authentication options",
		milestones: "- [ ] Consider password protection\n- [ ] Look into OAuth options\n- [ ] Plan session management",
	},
}

// Seed inserts sample tasks and steps when the tasks table is empty. It
// reports whether anything was inserted.
func Seed(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tasks"); err != nil {
		return false, fmt.Errorf("count tasks: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, task := range sampleTasks {
		result, err := tx.ExecContext(
			ctx,
			"INSERT INTO tasks (title, status, priority, next_step, milestones) VALUES (?, ?, ?, ?, ?)",
			task.title, task.status, task.priority, task.nextStep, task.milestones,
		)
		if err != nil {
			return false, fmt.Errorf("seed task %q: %w", task.title, err)
		}
		taskID, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("seed task %q: %w", task.title, err)
		}
		for _, step := range task.steps {
			if _, err := tx.ExecContext(ctx, "INSERT INTO completed_steps (task_id, description) VALUES (?, ?)", taskID, step); err != nil {
				return false, fmt.Errorf("seed step %q: %w", step, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}
