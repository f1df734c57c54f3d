package validation

import (
	"bytes"
	"encoding/json"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

const fieldTaskID = "task_id"

func BuildCreateTaskInput(req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		Title:      req.Title,
		ProjectID:  req.ProjectID,
		Milestones: req.Milestones,
		Notes:      req.Notes,
	}
}

// BuildTaskPatch reads the task id and every recognized field out of a raw
// PUT body. Unknown keys are ignored. Whether the patch is empty is left to
// the service.
func BuildTaskPatch(raw dto.UpdateTaskRequest) (uint64, domain.TaskPatch, error) {
	var patch domain.TaskPatch

	taskIDRaw, ok := raw[fieldTaskID]
	if !ok || isJSONNull(taskIDRaw) {
		return 0, patch, domain.ValidationError{Field: fieldTaskID, Reason: "is required"}
	}
	var taskID uint64
	if err := json.Unmarshal(taskIDRaw, &taskID); err != nil || taskID == 0 {
		return 0, patch, domain.ValidationError{Field: fieldTaskID, Reason: "must be a positive integer"}
	}

	var err error
	if patch.Title, err = decodeRequired[string](raw, "title"); err != nil {
		return 0, patch, err
	}
	if patch.Status, err = decodeRequired[domain.TaskStatus](raw, "status"); err != nil {
		return 0, patch, err
	}
	if patch.Priority, err = decodeRequired[domain.TaskPriority](raw, "priority"); err != nil {
		return 0, patch, err
	}
	if patch.NextStep, err = decodeNullable[string](raw, "next_step"); err != nil {
		return 0, patch, err
	}
	if patch.Milestones, err = decodeNullable[string](raw, "milestones"); err != nil {
		return 0, patch, err
	}
	if patch.Notes, err = decodeNullable[string](raw, "notes"); err != nil {
		return 0, patch, err
	}
	if patch.ProjectID, err = decodeNullable[uint64](raw, "project_id"); err != nil {
		return 0, patch, err
	}

	return taskID, patch, nil
}

// decodeRequired handles fields backed by NOT NULL columns: absent is fine,
// null is not.
func decodeRequired[T any](raw dto.UpdateTaskRequest, field string) (*T, error) {
	value, ok := raw[field]
	if !ok {
		return nil, nil
	}
	if isJSONNull(value) {
		return nil, domain.ValidationError{Field: field, Reason: "must not be null"}
	}
	var decoded T
	if err := json.Unmarshal(value, &decoded); err != nil {
		return nil, domain.ValidationError{Field: field, Reason: "has an invalid type"}
	}
	return &decoded, nil
}

func decodeNullable[T any](raw dto.UpdateTaskRequest, field string) (domain.Optional[T], error) {
	value, ok := raw[field]
	if !ok {
		return domain.Optional[T]{}, nil
	}
	if isJSONNull(value) {
		return domain.Null[T](), nil
	}
	var decoded T
	if err := json.Unmarshal(value, &decoded); err != nil {
		return domain.Optional[T]{}, domain.ValidationError{Field: field, Reason: "has an invalid type"}
	}
	return domain.Some(decoded), nil
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
