package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/config"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
  project_id INT AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS tasks (
  task_id INT AUTO_INCREMENT PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  status ENUM('active', 'paused', 'done', 'cancelled') NOT NULL DEFAULT 'active',
  priority ENUM('high', 'medium', 'low') NOT NULL DEFAULT 'medium',
  next_step TEXT NULL,
  milestones TEXT NULL,
  notes TEXT NULL,
  project_id INT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  INDEX idx_tasks_status (status),
  INDEX idx_tasks_priority (priority),
  INDEX idx_tasks_created_at (created_at),
  CONSTRAINT fk_tasks_project FOREIGN KEY (project_id) REFERENCES projects (project_id) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS completed_steps (
  completed_step_id INT AUTO_INCREMENT PRIMARY KEY,
  task_id INT NOT NULL,
  description TEXT NOT NULL,
  completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  INDEX idx_completed_steps_task_id (task_id),
  INDEX idx_completed_steps_completed_at (completed_at),
  CONSTRAINT fk_completed_steps_task FOREIGN KEY (task_id) REFERENCES tasks (task_id) ON DELETE CASCADE
)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
  project_id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS tasks (
  task_id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'paused', 'done', 'cancelled')),
  priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('high', 'medium', 'low')),
  next_step TEXT,
  milestones TEXT,
  notes TEXT,
  project_id INTEGER REFERENCES projects (project_id) ON DELETE SET NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks (status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks (priority)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks (created_at)`,
	`CREATE TABLE IF NOT EXISTS completed_steps (
  completed_step_id INTEGER PRIMARY KEY AUTOINCREMENT,
  task_id INTEGER NOT NULL REFERENCES tasks (task_id) ON DELETE CASCADE,
  description TEXT NOT NULL,
  completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_completed_steps_task_id ON completed_steps (task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_completed_steps_completed_at ON completed_steps (completed_at)`,
}

// Migrate creates the schema for the connection's driver. Every statement is
// idempotent, so it is safe to run on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var statements []string
	switch db.DriverName() {
	case config.DriverMySQL:
		statements = mysqlSchema
	case config.DriverSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
