package ports

import (
	"context"

	"tasklist/internal/core/domain"
)

type StepRepository interface {
	ListSteps(ctx context.Context, filter domain.StepFilter) ([]domain.CompletedStep, error)
	AddStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error)
	// CompleteStep records the step and clears the task's next_step atomically.
	CompleteStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error)
}

type StepService interface {
	ListSteps(ctx context.Context, filter domain.StepFilter) ([]domain.CompletedStep, error)
	AddStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error)
}
