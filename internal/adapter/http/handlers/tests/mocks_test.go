package tests

import (
	"context"
	"errors"

	"tasklist/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

var errDatabaseDown = &domain.StorageError{Op: "list tasks", Err: errors.New("db is down")}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID uint64, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CompleteStep(ctx context.Context, taskID uint64, description string) (domain.Task, domain.CompletedStep, error) {
	args := m.Called(ctx, taskID, description)
	return args.Get(0).(domain.Task), args.Get(1).(domain.CompletedStep), args.Error(2)
}

type stepServiceMock struct {
	mock.Mock
}

func (m *stepServiceMock) ListSteps(ctx context.Context, filter domain.StepFilter) ([]domain.CompletedStep, error) {
	args := m.Called(ctx, filter)

	var steps []domain.CompletedStep
	if value := args.Get(0); value != nil {
		steps = value.([]domain.CompletedStep)
	}
	return steps, args.Error(1)
}

func (m *stepServiceMock) AddStep(ctx context.Context, taskID uint64, description string) (domain.CompletedStep, error) {
	args := m.Called(ctx, taskID, description)
	return args.Get(0).(domain.CompletedStep), args.Error(1)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

type pingerMock struct {
	err error
}

func (p pingerMock) PingContext(context.Context) error {
	return p.err
}

var anyCtx = mock.Anything
