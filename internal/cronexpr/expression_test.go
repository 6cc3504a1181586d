package cronexpr

import (
	"errors"
	"reflect"
	"testing"

	"github.com/solatis/cronconv/internal/types"
)

func TestNew_Normalizes(t *testing.T) {
	e := mustNew(t, PeriodYear, Fields{
		Minutes:  []int{30, 0, 30},
		WeekDays: []int{7, 1, 0},
		Months:   []int{},
	})

	if got, want := e.Field(FieldMinute), []int{0, 30}; !reflect.DeepEqual(got, want) {
		t.Errorf("minutes = %v, want %v", got, want)
	}
	if got, want := e.Field(FieldWeekDay), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("week-days = %v, want %v", got, want)
	}
	if got := e.Field(FieldMonth); got != nil {
		t.Errorf("months = %v, want wildcard", got)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	minutes := []int{5, 10}
	e := mustNew(t, PeriodHour, Fields{Minutes: minutes})
	minutes[0] = 59

	got := e.Field(FieldMinute)
	if !reflect.DeepEqual(got, []int{5, 10}) {
		t.Fatalf("minutes = %v, want [5 10]", got)
	}
	got[0] = 42
	if e.Field(FieldMinute)[0] != 5 {
		t.Error("Field() exposes internal storage")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		fields Fields
	}{
		{"unset period", periodUnset, Fields{}},
		{"unknown period", Period(42), Fields{}},
		{"reboot with fields", PeriodReboot, Fields{Minutes: []int{0}}},
		{"minute with fields", PeriodMinute, Fields{Minutes: []int{0}}},
		{"hour with hours", PeriodHour, Fields{Hours: []int{1}}},
		{"week with month-days", PeriodWeek, Fields{MonthDays: []int{1}}},
		{"month with months", PeriodMonth, Fields{Months: []int{1}}},
		{"minute out of domain", PeriodHour, Fields{Minutes: []int{60}}},
		{"negative minute", PeriodHour, Fields{Minutes: []int{-1}}},
		{"month-day zero", PeriodMonth, Fields{MonthDays: []int{0}}},
		{"week-day eight", PeriodWeek, Fields{WeekDays: []int{8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.period, tt.fields)
			if !errors.Is(err, types.ErrInvalidFields) {
				t.Errorf("New() error = %v, want ErrInvalidFields", err)
			}
		})
	}
}

func TestExpression_Canonical(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		fields Fields
		want   Period
	}{
		{"empty year is minute", PeriodYear, Fields{}, PeriodMinute},
		{"minutes only", PeriodDay, Fields{Minutes: []int{0}}, PeriodHour},
		{"hours only", PeriodDay, Fields{Hours: []int{3}}, PeriodDay},
		{"week-days", PeriodYear, Fields{WeekDays: []int{1}}, PeriodWeek},
		{"month-days", PeriodYear, Fields{MonthDays: []int{1}, WeekDays: []int{1}}, PeriodMonth},
		{"months", PeriodYear, Fields{Months: []int{2}}, PeriodYear},
		{"reboot unchanged", PeriodReboot, Fields{}, PeriodReboot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustNew(t, tt.period, tt.fields).Canonical()
			if e.Period() != tt.want {
				t.Errorf("Canonical().Period() = %v, want %v", e.Period(), tt.want)
			}
		})
	}

	if !(Expression{}).Canonical().IsZero() {
		t.Error("Canonical() of zero Expression is not zero")
	}
}

func TestPeriod_Names(t *testing.T) {
	for _, p := range Periods {
		got, err := ParsePeriod(p.String())
		if err != nil {
			t.Fatalf("ParsePeriod(%q) error = %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePeriod(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) = nil error, want error")
	}
}

func TestExpression_String(t *testing.T) {
	e := mustNew(t, PeriodDay, Fields{Minutes: []int{0}, Hours: []int{6}})
	if got := e.String(); got != "0 6 * * *" {
		t.Errorf("String() = %q, want %q", got, "0 6 * * *")
	}
}
