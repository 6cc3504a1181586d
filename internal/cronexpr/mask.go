// internal/cronexpr/mask.go
package cronexpr

import (
	"fmt"
	"strings"
)

/*
 * Wildcard mask classification.
 *
 * Before any field is parsed, the five raw fields are reduced to a
 * five-character fingerprint: '*' where the field is exactly "*", '-'
 * otherwise. The fingerprint selects the period, and the period selects which
 * fields get parsed at all. Each field is then parsed in isolation.
 *
 * Matching rules, in order:
 *   - "*****"                 -> minute
 *   - "-****"                 -> hour
 *   - positions 2.. == "***"  -> day
 *   - positions 2.. == "-**"  -> month
 *   - positions 2.. == "-*-"  -> month
 *   - positions 2.. == "**-"  -> week
 *   - positions 3.. == "-*"   -> year
 *   - positions 3.. == "--"   -> year
 *
 * Positions 0 and 1 only matter while the day, month and week-day fields are
 * all wildcards. Any other shape is a classification error.
 */

const (
	wildcard  = "*"
	stepOfOne = "*/1"
)

// splitFields collapses whitespace and requires exactly five fields.
// A field that is exactly "*/1" is rewritten to "*": a step of one is every unit.
func splitFields(text string) ([]string, error) {
	fields := strings.Fields(text)
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w, got %d", errFieldCount, len(fields))
	}
	for i, f := range fields {
		if f == stepOfOne {
			fields[i] = wildcard
		}
	}
	return fields, nil
}

// mask builds the wildcard fingerprint of five fields.
func mask(fields []string) string {
	var b strings.Builder
	for _, f := range fields {
		if f == wildcard {
			b.WriteByte('*')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// classify maps a five-character mask to its period.
func classify(m string) (Period, error) {
	if len(m) != fieldCount {
		return periodUnset, errFieldCount
	}
	switch {
	case m == "*****":
		return PeriodMinute, nil
	case m == "-****":
		return PeriodHour, nil
	case m[2:] == "***":
		return PeriodDay, nil
	case m[2:] == "-**" || m[2:] == "-*-":
		return PeriodMonth, nil
	case m[2:] == "**-":
		return PeriodWeek, nil
	case m[3:] == "-*" || m[3:] == "--":
		return PeriodYear, nil
	default:
		return periodUnset, fmt.Errorf("%w: %s", errMaskPattern, m)
	}
}

// Classify infers the period of a raw five-field expression without parsing
// its fields. Aliases are not resolved.
func Classify(text string) (Period, error) {
	fields, err := splitFields(text)
	if err != nil {
		return periodUnset, err
	}
	return classify(mask(fields))
}
