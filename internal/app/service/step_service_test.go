package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasklist/internal/core/domain"
)

func TestStepService_AddStep(t *testing.T) {
	steps := new(stepRepositoryMock)
	tasks := new(taskRepositoryMock)
	tasks.On("GetTask", mock.Anything, uint64(4)).Return(domain.Task{ID: 4}, nil).Once()
	steps.On("AddStep", mock.Anything, uint64(4), "wrote tests").
		Return(domain.CompletedStep{ID: 1, TaskID: 4, Description: "wrote tests"}, nil).
		Once()

	step, err := NewStepService(steps, tasks).AddStep(context.Background(), 4, "  wrote tests ")

	require.NoError(t, err)
	assert.Equal(t, "wrote tests", step.Description)
	steps.AssertExpectations(t)
	tasks.AssertExpectations(t)
}

func TestStepService_AddStep_Validation(t *testing.T) {
	service := NewStepService(new(stepRepositoryMock), new(taskRepositoryMock))

	_, err := service.AddStep(context.Background(), 0, "x")
	assert.True(t, domain.IsValidationError(err))

	_, err = service.AddStep(context.Background(), 1, "")
	assert.True(t, domain.IsValidationError(err))
}

func TestStepService_AddStep_UnknownTask(t *testing.T) {
	steps := new(stepRepositoryMock)
	tasks := new(taskRepositoryMock)
	tasks.On("GetTask", mock.Anything, uint64(99)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	_, err := NewStepService(steps, tasks).AddStep(context.Background(), 99, "x")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	steps.AssertNotCalled(t, "AddStep", mock.Anything, mock.Anything, mock.Anything)
}

func TestStepService_ListSteps_PassesFilter(t *testing.T) {
	steps := new(stepRepositoryMock)
	taskID := uint64(5)
	filter := domain.StepFilter{TaskID: &taskID}
	steps.On("ListSteps", mock.Anything, filter).Return([]domain.CompletedStep{{ID: 1, TaskID: 5}}, nil).Once()

	got, err := NewStepService(steps, new(taskRepositoryMock)).ListSteps(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	steps.AssertExpectations(t)
}

func TestProjectService_ListProjects(t *testing.T) {
	projects := new(projectRepositoryMock)
	projects.On("ListProjects", mock.Anything).Return([]domain.Project{{ID: 1, Name: "Home"}}, nil).Once()

	got, err := NewProjectService(projects).ListProjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Project{{ID: 1, Name: "Home"}}, got)
	projects.AssertExpectations(t)
}
