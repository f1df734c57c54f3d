package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

const (
	stepColumns        = "completed_step_id, task_id, description, completed_at"
	stepOrder          = " ORDER BY completed_at DESC, completed_step_id DESC"
	listStepsQuery     = "SELECT " + stepColumns + " FROM completed_steps"
	getStepQuery       = "SELECT " + stepColumns + " FROM completed_steps WHERE completed_step_id = ?"
	insertStepQuery    = "INSERT INTO completed_steps (task_id, description, completed_at) VALUES (?, ?, CURRENT_TIMESTAMP)"
	taskExistsQuery    = "SELECT COUNT(*) FROM tasks WHERE task_id = ?"
	clearNextStepQuery = "UPDATE tasks SET next_step = NULL, updated_at = CURRENT_TIMESTAMP WHERE task_id = ?"
)

type StepRepository struct {
	db *sqlx.DB
}

type stepRow struct {
	ID          uint64        `db:"completed_step_id"`
	TaskID      uint64        `db:"task_id"`
	Description string        `db:"description"`
	CompletedAt nullTimestamp `db:"completed_at"`
}

var _ ports.StepRepository = (*StepRepository)(nil)

func NewStepRepository(db *sqlx.DB) *StepRepository {
	return &StepRepository{db: db}
}

func (r *StepRepository) ListSteps(ctx context.Context, filter domain.StepFilter) ([]domain.CompletedStep, error) {
	query := listStepsQuery
	var args []any
	if filter.TaskID != nil {
		query += " WHERE task_id = ?"
		args = append(args, *filter.TaskID)
	}
	query += stepOrder

	var rows []stepRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, &domain.StorageError{Op: "list completed steps", Err: err}
	}

	steps := make([]domain.CompletedStep, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, mapStepRowToDomainStep(row))
	}
	return steps, nil
}

func (r *StepRepository) AddStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error) {
	step, err := insertStep(ctx, r.db, taskID, description)
	if err != nil {
		return domain.CompletedStep{}, &domain.StorageError{Op: "add completed step", Err: err}
	}
	return step, nil
}

// CompleteStep inserts the step and clears the parent's next_step in one
// transaction.
func (r *StepRepository) CompleteStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.CompletedStep{}, &domain.StorageError{Op: "complete step", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.GetContext(ctx, &count, taskExistsQuery, taskID); err != nil {
		return domain.CompletedStep{}, &domain.StorageError{Op: "complete step", Err: err}
	}
	if count == 0 {
		return domain.CompletedStep{}, domain.ErrTaskNotFound
	}

	step, err := insertStep(ctx, tx, taskID, description)
	if err != nil {
		return domain.CompletedStep{}, &domain.StorageError{Op: "complete step", Err: err}
	}

	if _, err := tx.ExecContext(ctx, clearNextStepQuery, taskID); err != nil {
		return domain.CompletedStep{}, &domain.StorageError{Op: "complete step", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return domain.CompletedStep{}, &domain.StorageError{Op: "complete step", Err: err}
	}
	return step, nil
}

type queryer interface {
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

func insertStep(ctx context.Context, q queryer, taskID uint64, description string) (domain.CompletedStep, error) {
	result, err := q.ExecContext(ctx, insertStepQuery, taskID, description)
	if err != nil {
		return domain.CompletedStep{}, err
	}

	stepID, err := result.LastInsertId()
	if err != nil {
		return domain.CompletedStep{}, err
	}

	var row stepRow
	if err := q.GetContext(ctx, &row, getStepQuery, stepID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CompletedStep{}, errors.New("inserted step not readable")
		}
		return domain.CompletedStep{}, err
	}
	return mapStepRowToDomainStep(row), nil
}

func mapStepRowToDomainStep(row stepRow) domain.CompletedStep {
	return domain.CompletedStep{
		ID:          row.ID,
		TaskID:      row.TaskID,
		Description: row.Description,
		CompletedAt: row.CompletedAt.Time,
	}
}
