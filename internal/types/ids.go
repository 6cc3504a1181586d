package types

import (
	"time"

	"github.com/google/uuid"
)

// NewScheduleID generates a UUIDv7 schedule identifier.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewScheduleID() ScheduleID {
	return ScheduleID(uuid.Must(uuid.NewV7()).String())
}

// ParseScheduleID validates and converts a string to ScheduleID.
func ParseScheduleID(s string) (ScheduleID, error) {
	_, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return ScheduleID(s), nil
}

// ScheduleIDTime extracts the timestamp embedded in a UUIDv7 ID.
// Returns zero time for invalid UUIDs; caller should check IsZero().
func ScheduleIDTime(id ScheduleID) time.Time {
	u, err := uuid.Parse(string(id))
	if err != nil {
		return time.Time{}
	}
	sec, nsec := u.Time().UnixTime()
	return time.Unix(sec, nsec)
}
