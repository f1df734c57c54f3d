package service

import (
	"context"
	"strings"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

type StepService struct {
	stepRepository ports.StepRepository
	taskRepository ports.TaskRepository
}

func NewStepService(stepRepository ports.StepRepository, taskRepository ports.TaskRepository) *StepService {
	return &StepService{stepRepository: stepRepository, taskRepository: taskRepository}
}

func (s *StepService) ListSteps(ctx context.Context, filter domain.StepFilter) ([]domain.CompletedStep, error) {
	return s.stepRepository.ListSteps(ctx, filter)
}

// AddStep appends a completed step. It does not touch the task's next_step;
// TaskService.CompleteStep does both.
func (s *StepService) AddStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error) {
	if taskID == 0 {
		return domain.CompletedStep{}, domain.ValidationError{Field: "task_id", Reason: "is required"}
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.CompletedStep{}, domain.ValidationError{Field: "description", Reason: "is required"}
	}

	if _, err := s.taskRepository.GetTask(ctx, taskID); err != nil {
		return domain.CompletedStep{}, err
	}

	return s.stepRepository.AddStep(ctx, taskID, description)
}

var _ ports.StepService = (*StepService)(nil)
