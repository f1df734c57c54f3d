package ports

import (
	"context"

	"tasklist/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error)
	CompleteStep(ctx context.Context, taskID uint64, description string) (domain.Task, domain.CompletedStep, error)
}
