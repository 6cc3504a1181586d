// Package types provides domain models shared across cronconv components.
//
// Catalog records and sentinel errors live here so the storage, service and
// CLI layers agree on them without importing each other. The expression model
// itself lives in internal/cronexpr.
package types

import "time"

// ScheduleID represents a UUIDv7 schedule identifier.
// String alias keeps database scanning and JSON output trivial.
type ScheduleID string

// Schedule is a named expression stored in the catalog.
// Expression holds the canonical rendering, Source the text as submitted.
type Schedule struct {
	ID         ScheduleID `db:"schedule_id" json:"schedule_id" yaml:"schedule_id"`
	Name       string     `db:"name" json:"name" yaml:"name"`
	Source     string     `db:"source" json:"source" yaml:"source"`
	Expression string     `db:"expression" json:"expression" yaml:"expression"`
	Period     string     `db:"period" json:"period" yaml:"period"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at" yaml:"created_at"`
}

const (
	// MaxScheduleNameLength bounds catalog names, in characters.
	MaxScheduleNameLength = 128

	// MaxExpressionLength bounds submitted expression text. Five fields of
	// fully enumerated minutes stay well under this.
	MaxExpressionLength = 1024
)
