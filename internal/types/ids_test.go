package types

import (
	"testing"
	"time"
)

func TestNewScheduleID(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := NewScheduleID()

	parsed, err := ParseScheduleID(string(id))
	if err != nil {
		t.Fatalf("ParseScheduleID(%q) error = %v", id, err)
	}
	if parsed != id {
		t.Errorf("ParseScheduleID() = %q, want %q", parsed, id)
	}

	ts := ScheduleIDTime(id)
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("ScheduleIDTime() = %v, not near now", ts)
	}
}

func TestParseScheduleID_Invalid(t *testing.T) {
	if _, err := ParseScheduleID("not-a-uuid"); err == nil {
		t.Error("ParseScheduleID(not-a-uuid) = nil error, want error")
	}
	if !ScheduleIDTime("garbage").IsZero() {
		t.Error("ScheduleIDTime(garbage) is not zero")
	}
}
