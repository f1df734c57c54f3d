package domain

import "time"

type TaskStatus string

const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusPaused    TaskStatus = "paused"
	TaskStatusDone      TaskStatus = "done"
	TaskStatusCancelled TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusActive, TaskStatusPaused, TaskStatusDone, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// Task is a unit of ongoing work. LastStep is derived from the most recent
// completed step and is nil when the task has none.
type Task struct {
	ID         uint64
	Title      string
	Status     TaskStatus
	Priority   TaskPriority
	NextStep   *string
	Milestones *string
	Notes      *string
	ProjectID  *uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastStep   *LastStep
}

type LastStep struct {
	Description string
	CompletedAt time.Time
}

type CreateTaskInput struct {
	Title      string
	ProjectID  *uint64
	Milestones *string
	Notes      *string
}
