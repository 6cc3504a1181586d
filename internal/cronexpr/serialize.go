// internal/cronexpr/serialize.go
package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
)

/*
 * Field serialization.
 *
 * Values are rendered in the most compact form the grammar allows:
 *   - empty or nil -> "*"
 *   - a set holding every multiple of n inside the field span -> step form
 *   - otherwise consecutive runs merge into "a-b" tokens, joined by commas
 *
 * Step collapse only recognizes progressions that cover the whole span.
 * A progression that stops short of the span (0,15,30 for minutes) keeps its
 * list form. The step n is the first value, or the second when the first is
 * zero, and collapse requires every value to be a multiple of n and the count
 * to equal the number of multiples of n in [0, span).
 *
 * Endpoints pass through formatValue, which applies humanized labels, leading
 * zeros and the clock format. Step forms never carry formatting.
 */

// run is an inclusive stretch of consecutive values.
type run struct {
	first, last int
}

// compress merges ascending unique values into consecutive runs.
func compress(values []int) []run {
	runs := make([]run, 0, len(values))
	for _, v := range values {
		if n := len(runs); n > 0 && runs[n-1].last+1 == v {
			runs[n-1].last = v
			continue
		}
		runs = append(runs, run{first: v, last: v})
	}
	return runs
}

// stepOf reports the step n when runs form a complete progression over the span.
func stepOf(runs []run, kind FieldKind) (int, bool) {
	if len(runs) < 2 {
		return 0, false
	}
	for _, r := range runs {
		if r.first != r.last {
			return 0, false
		}
	}

	multiple := runs[0].first
	if multiple == 0 {
		multiple = runs[1].first
	}
	if multiple <= 0 {
		return 0, false
	}

	expected := (domains[kind].span-1)/multiple + 1
	if len(runs) != expected {
		return 0, false
	}
	for _, r := range runs {
		if r.first%multiple != 0 {
			return 0, false
		}
	}
	return multiple, true
}

// serializeField renders one field. Values must be ascending and unique.
func serializeField(values []int, kind FieldKind, opts Options) string {
	if len(values) == 0 {
		return wildcard
	}

	runs := compress(values)
	if n, ok := stepOf(runs, kind); ok {
		return "*/" + strconv.Itoa(n)
	}

	tokens := make([]string, len(runs))
	for i, r := range runs {
		if r.first == r.last {
			tokens[i] = formatValue(r.first, kind, opts)
		} else {
			tokens[i] = formatValue(r.first, kind, opts) + "-" + formatValue(r.last, kind, opts)
		}
	}
	return strings.Join(tokens, ",")
}

// formatValue renders a single endpoint.
func formatValue(value int, kind FieldKind, opts Options) string {
	s := strconv.Itoa(value)
	leadingZero := opts.LeadingZero.Applies(kind)
	twentyFour := opts.ClockFormat == Clock24Hour && (kind == FieldHour || kind == FieldMinute)

	switch {
	case opts.Humanize && (kind == FieldWeekDay || kind == FieldMonth):
		if label := opts.Locale.label(kind, value); label != "" {
			s = label
		}
	case value < 10 && (leadingZero || twentyFour):
		s = fmt.Sprintf("%02d", value)
	}

	if kind == FieldHour && opts.ClockFormat == Clock12Hour {
		suffix := "AM"
		if value >= 12 {
			suffix = "PM"
		}
		hour := value % 12
		if hour == 0 {
			hour = 12
		}
		h := strconv.Itoa(hour)
		if hour < 10 && leadingZero {
			h = "0" + h
		}
		s = h + suffix
	}
	return s
}

// SerializeField renders a value set of the given kind with opts.
// The set must be ascending and unique, as produced by ParseField.
func SerializeField(values []int, kind FieldKind, opts Options) string {
	opts.Locale = opts.Locale.WithDefaults()
	return serializeField(values, kind, opts)
}
