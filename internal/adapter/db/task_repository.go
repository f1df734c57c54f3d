package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

// taskSelect attaches each task's most recent completed step. The window
// keeps exactly one step per task, so the join never fans out; ties on
// completed_at go to the highest completed_step_id.
const taskSelect = `
SELECT
  t.task_id,
  t.title,
  t.status,
  t.priority,
  t.next_step,
  t.milestones,
  t.notes,
  t.project_id,
  t.created_at,
  t.updated_at,
  cs.description AS last_step_description,
  cs.completed_at AS last_step_completed_at
FROM tasks t
LEFT JOIN (
  SELECT
    task_id,
    description,
    completed_at,
    ROW_NUMBER() OVER (PARTITION BY task_id ORDER BY completed_at DESC, completed_step_id DESC) AS rn
  FROM completed_steps
) cs ON cs.task_id = t.task_id AND cs.rn = 1
`

const (
	listTasksQuery  = taskSelect + "ORDER BY t.created_at DESC, t.task_id DESC"
	getTaskQuery    = taskSelect + "WHERE t.task_id = ?"
	insertTaskQuery = "INSERT INTO tasks (title, project_id, milestones, notes) VALUES (?, ?, ?, ?)"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID                  uint64         `db:"task_id"`
	Title               string         `db:"title"`
	Status              string         `db:"status"`
	Priority            string         `db:"priority"`
	NextStep            sql.NullString `db:"next_step"`
	Milestones          sql.NullString `db:"milestones"`
	Notes               sql.NullString `db:"notes"`
	ProjectID           sql.NullInt64  `db:"project_id"`
	CreatedAt           nullTimestamp  `db:"created_at"`
	UpdatedAt           nullTimestamp  `db:"updated_at"`
	LastStepDescription sql.NullString `db:"last_step_description"`
	LastStepCompletedAt nullTimestamp  `db:"last_step_completed_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, &domain.StorageError{Op: "list tasks", Err: err}
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, &domain.StorageError{Op: "get task", Err: err}
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery, input.Title, input.ProjectID, input.Milestones, input.Notes)
	if err != nil {
		return domain.Task{}, &domain.StorageError{Op: "create task", Err: err}
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, &domain.StorageError{Op: "create task", Err: err}
	}

	return r.GetTask(ctx, uint64(taskID))
}

// UpdateTask writes only the fields present in patch, in one statement, and
// refreshes updated_at.
func (r *TaskRepository) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	query, args := buildTaskUpdate(taskID, patch)
	if query == "" {
		return domain.Task{}, domain.ValidationError{Reason: "no fields to update"}
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, &domain.StorageError{Op: "update task", Err: err}
	}

	// MySQL reports zero affected rows for no-op writes; existence is
	// checked by reading the row back.
	return r.GetTask(ctx, taskID)
}

func buildTaskUpdate(taskID uint64, patch domain.TaskPatch) (string, []any) {
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return "", nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(assignments)+1)
	sb.WriteString("UPDATE tasks SET ")
	for _, assignment := range assignments {
		sb.WriteString(assignment.Column)
		sb.WriteString(" = ?, ")
		args = append(args, assignment.Value)
	}
	sb.WriteString("updated_at = CURRENT_TIMESTAMP WHERE task_id = ?")
	args = append(args, taskID)

	return sb.String(), args
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}

	if row.NextStep.Valid {
		value := row.NextStep.String
		task.NextStep = &value
	}

	if row.Milestones.Valid {
		value := row.Milestones.String
		task.Milestones = &value
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}

	if row.ProjectID.Valid {
		value := uint64(row.ProjectID.Int64)
		task.ProjectID = &value
	}

	if row.LastStepDescription.Valid && row.LastStepCompletedAt.Valid {
		task.LastStep = &domain.LastStep{
			Description: row.LastStepDescription.String,
			CompletedAt: row.LastStepCompletedAt.Time,
		}
	}

	return task
}
