package domain

// Optional carries a field that may be absent, explicitly null, or set.
// Set reports presence; a present field with a nil Value means null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Set: true, Value: &value}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// TaskPatch is a partial task update. Only present fields are written.
// Title, Status and Priority back NOT NULL columns, so they are either
// absent (nil) or set to a value.
type TaskPatch struct {
	Title      *string
	Status     *TaskStatus
	Priority   *TaskPriority
	NextStep   Optional[string]
	Milestones Optional[string]
	Notes      Optional[string]
	ProjectID  Optional[uint64]
}

// Assignment is one column write produced by a patch.
type Assignment struct {
	Column string
	Value  any
}

func (p TaskPatch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

// Assignments lists the present fields in a fixed column order. Column names
// come only from this allow-list, never from client input.
func (p TaskPatch) Assignments() []Assignment {
	var out []Assignment
	if p.Title != nil {
		out = append(out, Assignment{Column: "title", Value: *p.Title})
	}
	if p.Status != nil {
		out = append(out, Assignment{Column: "status", Value: string(*p.Status)})
	}
	if p.Priority != nil {
		out = append(out, Assignment{Column: "priority", Value: string(*p.Priority)})
	}
	out = appendOptional(out, "next_step", p.NextStep)
	out = appendOptional(out, "milestones", p.Milestones)
	out = appendOptional(out, "notes", p.Notes)
	out = appendOptional(out, "project_id", p.ProjectID)
	return out
}

func appendOptional[T any](out []Assignment, column string, field Optional[T]) []Assignment {
	if !field.Set {
		return out
	}
	if field.Value == nil {
		return append(out, Assignment{Column: column, Value: nil})
	}
	return append(out, Assignment{Column: column, Value: *field.Value})
}
