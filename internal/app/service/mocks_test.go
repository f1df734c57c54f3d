package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tasklist/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

type stepRepositoryMock struct {
	mock.Mock
}

func (m *stepRepositoryMock) ListSteps(ctx context.Context, filter domain.StepFilter) ([]domain.CompletedStep, error) {
	args := m.Called(ctx, filter)

	var steps []domain.CompletedStep
	if value := args.Get(0); value != nil {
		steps = value.([]domain.CompletedStep)
	}
	return steps, args.Error(1)
}

func (m *stepRepositoryMock) AddStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error) {
	args := m.Called(ctx, taskID, description)
	return args.Get(0).(domain.CompletedStep), args.Error(1)
}

func (m *stepRepositoryMock) CompleteStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error) {
	args := m.Called(ctx, taskID, description)
	return args.Get(0).(domain.CompletedStep), args.Error(1)
}

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) ProjectExists(ctx context.Context, projectID uint64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}
