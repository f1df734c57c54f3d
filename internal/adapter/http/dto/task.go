package dto

import "encoding/json"

// TaskItem is the wire form of a task. Nullable fields are always emitted so
// clients can tell an empty value from a missing one.
type TaskItem struct {
	TaskID              uint64  `json:"task_id"`
	Title               string  `json:"title"`
	Status              string  `json:"status"`
	Priority            string  `json:"priority"`
	NextStep            *string `json:"next_step"`
	Milestones          *string `json:"milestones"`
	Notes               *string `json:"notes"`
	ProjectID           *uint64 `json:"project_id"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
	LastStepDescription *string `json:"last_step_description"`
	LastStepCompletedAt *string `json:"last_step_completed_at"`
}

type CreateTaskRequest struct {
	Title      string  `json:"title"`
	ProjectID  *uint64 `json:"project_id"`
	Milestones *string `json:"milestones"`
	Notes      *string `json:"notes"`
}

// UpdateTaskRequest keeps the raw body so that absent keys and explicit
// nulls stay distinguishable.
type UpdateTaskRequest map[string]json.RawMessage

type CompleteStepResponse struct {
	Task TaskItem `json:"task"`
	Step StepItem `json:"step"`
}
