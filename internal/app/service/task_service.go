package service

import (
	"context"
	"strings"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	stepRepository    ports.StepRepository
	projectRepository ports.ProjectRepository
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	stepRepository ports.StepRepository,
	projectRepository ports.ProjectRepository,
) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		stepRepository:    stepRepository,
		projectRepository: projectRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return domain.Task{}, domain.ValidationError{Field: "title", Reason: "is required"}
	}

	if input.ProjectID != nil {
		if err := s.ensureProject(ctx, *input.ProjectID); err != nil {
			return domain.Task{}, err
		}
	}

	return s.taskRepository.CreateTask(ctx, input)
}

// UpdateTask applies patch to the task. Only fields present in the patch are
// written.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	if taskID == 0 {
		return domain.Task{}, domain.ValidationError{Field: "task_id", Reason: "is required"}
	}
	if patch.IsEmpty() {
		return domain.Task{}, domain.ValidationError{Reason: "no fields to update"}
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domain.Task{}, domain.ValidationError{Field: "title", Reason: "must not be empty"}
		}
		patch.Title = &title
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Task{}, domain.ValidationError{Field: "status", Reason: "must be one of active, paused, done, cancelled"}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Task{}, domain.ValidationError{Field: "priority", Reason: "must be one of high, medium, low"}
	}
	if patch.ProjectID.Set && patch.ProjectID.Value != nil {
		if err := s.ensureProject(ctx, *patch.ProjectID.Value); err != nil {
			return domain.Task{}, err
		}
	}

	return s.taskRepository.UpdateTask(ctx, taskID, patch)
}

// CompleteStep records description as done for the task and clears its
// next_step in one transaction, then returns the refreshed task.
func (s *TaskService) CompleteStep(ctx context.Context, taskID uint64, description string) (domain.Task, domain.CompletedStep, error) {
	if taskID == 0 {
		return domain.Task{}, domain.CompletedStep{}, domain.ValidationError{Field: "task_id", Reason: "is required"}
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Task{}, domain.CompletedStep{}, domain.ValidationError{Field: "description", Reason: "is required"}
	}

	step, err := s.stepRepository.CompleteStep(ctx, taskID, description)
	if err != nil {
		return domain.Task{}, domain.CompletedStep{}, err
	}

	task, err := s.taskRepository.GetTask(ctx, taskID)
	if err != nil {
		return domain.Task{}, domain.CompletedStep{}, err
	}

	return task, step, nil
}

func (s *TaskService) ensureProject(ctx context.Context, projectID uint64) error {
	if projectID == 0 {
		return domain.ValidationError{Field: "project_id", Reason: "must be a positive integer"}
	}
	exists, err := s.projectRepository.ProjectExists(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrProjectNotFound
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
