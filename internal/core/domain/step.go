package domain

import "time"

// CompletedStep is an append-only log entry. CompletedAt is assigned by the
// database on insert.
type CompletedStep struct {
	ID          uint64
	TaskID      uint64
	Description string
	CompletedAt time.Time
}

type StepFilter struct {
	TaskID *uint64
}
