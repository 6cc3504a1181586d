// internal/cronexpr/field.go
package cronexpr

import "fmt"

/*
 * Field kinds and their numeric domains.
 *
 * Every textual slot of a five-field expression maps to one FieldKind. Each
 * kind owns a half-open domain [start, start+count) that the parser enforces
 * and the serializer relies on when recognizing step progressions.
 *
 * Week-day domain deliberately admits 7 as an alias for Sunday. The parser
 * folds 7 onto 0, so a stored Expression never holds 7.
 */

// FieldKind identifies one of the five textual slots of an expression.
type FieldKind int

const (
	FieldMinute FieldKind = iota
	FieldHour
	FieldMonthDay
	FieldMonth
	FieldWeekDay
)

// fieldCount is the number of whitespace-separated fields in an expression.
const fieldCount = 5

// FieldKinds lists the kinds in textual order.
var FieldKinds = [fieldCount]FieldKind{FieldMinute, FieldHour, FieldMonthDay, FieldMonth, FieldWeekDay}

// domain describes the accepted values of a field kind.
type domain struct {
	start int
	count int
	// span bounds the multiples checked by step collapse: every multiple of
	// n in [0, span) must be present for a set to render as */n.
	span int
}

func (d domain) ceiling() int { return d.start + d.count }

var domains = [fieldCount]domain{
	FieldMinute:   {start: 0, count: 60, span: 60},
	FieldHour:     {start: 0, count: 24, span: 24},
	FieldMonthDay: {start: 1, count: 31, span: 30},
	FieldMonth:    {start: 1, count: 12, span: 11},
	FieldWeekDay:  {start: 0, count: 8, span: 7},
}

var fieldNames = [fieldCount]string{
	FieldMinute:   "minutes",
	FieldHour:     "hours",
	FieldMonthDay: "month-days",
	FieldMonth:    "months",
	FieldWeekDay:  "week-days",
}

// String returns the field name used in configuration and wire formats.
func (k FieldKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return fieldNames[k]
}

// Domain returns the inclusive lower bound and exclusive upper bound of the kind.
func (k FieldKind) Domain() (start, ceiling int) {
	d := domains[k]
	return d.start, d.ceiling()
}

func (k FieldKind) valid() bool {
	return k >= FieldMinute && k <= FieldWeekDay
}

// ParseFieldKind maps a field name back to its kind.
// Accepts the names produced by String.
func ParseFieldKind(name string) (FieldKind, error) {
	for i, n := range fieldNames {
		if n == name {
			return FieldKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}
