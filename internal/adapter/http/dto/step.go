package dto

type StepItem struct {
	CompletedStepID uint64 `json:"completed_step_id"`
	TaskID          uint64 `json:"task_id"`
	Description     string `json:"description"`
	CompletedAt     string `json:"completed_at"`
}

type CreateStepRequest struct {
	TaskID      uint64 `json:"task_id"`
	Description string `json:"description"`
}
