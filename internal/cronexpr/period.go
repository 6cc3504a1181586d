package cronexpr

import "fmt"

// Period is the coarse recurrence granularity of an expression.
// The zero value is unset and only appears on the zero Expression.
type Period int

const (
	periodUnset Period = iota
	PeriodReboot
	PeriodMinute
	PeriodHour
	PeriodDay
	PeriodWeek
	PeriodMonth
	PeriodYear
)

var periodNames = map[Period]string{
	PeriodReboot: "reboot",
	PeriodMinute: "minute",
	PeriodHour:   "hour",
	PeriodDay:    "day",
	PeriodWeek:   "week",
	PeriodMonth:  "month",
	PeriodYear:   "year",
}

// Periods lists every settable period in ascending granularity.
var Periods = []Period{PeriodReboot, PeriodMinute, PeriodHour, PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

func (p Period) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	if p == periodUnset {
		return "unset"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// ParsePeriod maps a period name to its value.
func ParsePeriod(name string) (Period, error) {
	for p, n := range periodNames {
		if n == name {
			return p, nil
		}
	}
	return periodUnset, fmt.Errorf("unknown period %q", name)
}

// activeFields reports which fields may carry values for the period.
// Reboot and minute periods have none.
func (p Period) activeFields() [fieldCount]bool {
	switch p {
	case PeriodHour:
		return [fieldCount]bool{FieldMinute: true}
	case PeriodDay:
		return [fieldCount]bool{FieldMinute: true, FieldHour: true}
	case PeriodWeek:
		return [fieldCount]bool{FieldMinute: true, FieldHour: true, FieldWeekDay: true}
	case PeriodMonth:
		return [fieldCount]bool{FieldMinute: true, FieldHour: true, FieldMonthDay: true, FieldWeekDay: true}
	case PeriodYear:
		return [fieldCount]bool{true, true, true, true, true}
	default:
		return [fieldCount]bool{}
	}
}

// Active reports whether kind is semantically active under the period.
func (p Period) Active(kind FieldKind) bool {
	return kind.valid() && p.activeFields()[kind]
}
