package types

import "errors"

// Sentinel errors for cronconv operations.
var (
	// ErrInvalidExpression is the single externally visible parse failure.
	// Field grammar, field count, mask and domain violations all collapse into it.
	ErrInvalidExpression = errors.New("invalid cron expression")

	// ErrInvalidFields indicates a structured value that violates the
	// active-field or domain invariants of its period.
	ErrInvalidFields = errors.New("invalid expression fields")

	// ErrScheduleNotFound indicates no catalog entry has the requested name.
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrScheduleExists indicates a catalog entry with the same name already exists.
	ErrScheduleExists = errors.New("schedule already exists")

	// ErrInvalidScheduleName indicates an empty or oversized schedule name.
	ErrInvalidScheduleName = errors.New("invalid schedule name")
)
