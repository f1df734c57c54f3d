package mapper

import (
	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
	"time"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		TaskID:     task.ID,
		Title:      task.Title,
		Status:     string(task.Status),
		Priority:   string(task.Priority),
		NextStep:   copyPtr(task.NextStep),
		Milestones: copyPtr(task.Milestones),
		Notes:      copyPtr(task.Notes),
		ProjectID:  copyPtr(task.ProjectID),
		CreatedAt:  formatTime(task.CreatedAt),
		UpdatedAt:  formatTime(task.UpdatedAt),
	}

	if task.LastStep != nil {
		description := task.LastStep.Description
		completedAt := formatTime(task.LastStep.CompletedAt)
		item.LastStepDescription = &description
		item.LastStepCompletedAt = &completedAt
	}

	return item
}

func ToStepItems(steps []domain.CompletedStep) []dto.StepItem {
	items := make([]dto.StepItem, 0, len(steps))
	for _, step := range steps {
		items = append(items, ToStepItem(step))
	}
	return items
}

func ToStepItem(step domain.CompletedStep) dto.StepItem {
	return dto.StepItem{
		CompletedStepID: step.ID,
		TaskID:          step.TaskID,
		Description:     step.Description,
		CompletedAt:     formatTime(step.CompletedAt),
	}
}

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, dto.ProjectItem{ProjectID: project.ID, Name: project.Name})
	}
	return items
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func copyPtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
