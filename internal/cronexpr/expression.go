package cronexpr

import (
	"fmt"
	"slices"

	"github.com/solatis/cronconv/internal/types"
)

// Fields holds one value set per field kind. A nil or empty slice is a
// wildcard.
type Fields struct {
	Minutes   []int
	Hours     []int
	MonthDays []int
	Months    []int
	WeekDays  []int
}

// Get returns the values of kind.
func (f Fields) Get(kind FieldKind) []int {
	switch kind {
	case FieldMinute:
		return f.Minutes
	case FieldHour:
		return f.Hours
	case FieldMonthDay:
		return f.MonthDays
	case FieldMonth:
		return f.Months
	case FieldWeekDay:
		return f.WeekDays
	}
	return nil
}

// Set replaces the values of kind. Unknown kinds are ignored.
func (f *Fields) Set(kind FieldKind, values []int) {
	switch kind {
	case FieldMinute:
		f.Minutes = values
	case FieldHour:
		f.Hours = values
	case FieldMonthDay:
		f.MonthDays = values
	case FieldMonth:
		f.Months = values
	case FieldWeekDay:
		f.WeekDays = values
	}
}

// Expression is a validated, immutable recurrence. Populated value sets are
// strictly ascending, inside their domain, and only present on fields active
// for the period. Week-day 7 is never stored.
//
// The zero Expression is returned for accepted empty input.
type Expression struct {
	period Period
	values [fieldCount][]int
}

// New builds an Expression from a period and value sets. Values are copied,
// sorted and de-duplicated, and week-day 7 becomes 0. A populated field that
// is inactive for the period, or a value outside its domain, fails with
// types.ErrInvalidFields.
func New(period Period, fields Fields) (Expression, error) {
	if _, ok := periodNames[period]; !ok {
		return Expression{}, fmt.Errorf("%w: unknown period %d", types.ErrInvalidFields, int(period))
	}

	e := Expression{period: period}
	active := period.activeFields()
	for _, kind := range FieldKinds {
		values := fields.Get(kind)
		if len(values) == 0 {
			continue
		}
		if !active[kind] {
			return Expression{}, fmt.Errorf("%w: %s not active for %s period", types.ErrInvalidFields, kind, period)
		}
		start, ceiling := kind.Domain()
		for _, v := range values {
			if v < start || v >= ceiling {
				return Expression{}, fmt.Errorf("%w: %s value %d not in [%d,%d)", types.ErrInvalidFields, kind, v, start, ceiling)
			}
		}
		e.values[kind] = normalize(slices.Clone(values), kind)
	}
	return e, nil
}

// Period returns the recurrence granularity.
func (e Expression) Period() Period { return e.period }

// Field returns a copy of the values of kind, or nil for a wildcard.
func (e Expression) Field(kind FieldKind) []int {
	if !kind.valid() {
		return nil
	}
	return slices.Clone(e.values[kind])
}

// Fields returns copies of every value set.
func (e Expression) Fields() Fields {
	var f Fields
	for _, kind := range FieldKinds {
		f.Set(kind, e.Field(kind))
	}
	return f
}

// IsZero reports whether e is the zero Expression produced by accepted empty input.
func (e Expression) IsZero() bool { return e.period == periodUnset }

// Equal reports whether both expressions have the same period and value sets.
func (e Expression) Equal(other Expression) bool {
	if e.period != other.period {
		return false
	}
	for _, kind := range FieldKinds {
		if !slices.Equal(e.values[kind], other.values[kind]) {
			return false
		}
	}
	return true
}

// Canonical narrows the period to the one implied by the populated fields,
// which is the period a render-then-parse cycle reports. Reboot and the zero
// Expression are returned unchanged.
func (e Expression) Canonical() Expression {
	if e.period == periodUnset || e.period == PeriodReboot {
		return e
	}
	out := e
	switch {
	case e.values[FieldMonth] != nil:
		out.period = PeriodYear
	case e.values[FieldMonthDay] != nil:
		out.period = PeriodMonth
	case e.values[FieldWeekDay] != nil:
		out.period = PeriodWeek
	case e.values[FieldHour] != nil:
		out.period = PeriodDay
	case e.values[FieldMinute] != nil:
		out.period = PeriodHour
	default:
		out.period = PeriodMinute
	}
	return out
}

func (e Expression) String() string {
	return NewConverter(Options{Shortcuts: AllShortcuts()}).Render(e)
}
