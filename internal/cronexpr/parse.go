// internal/cronexpr/parse.go
package cronexpr

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

/*
 * Field parsing.
 *
 * A field is consumed left to right as a sequence of terms. Each term must
 * match one of four grammars, tried in priority order:
 *   1. step over the whole domain, "*" "/" n
 *   2. stepped range, a-b/n
 *   3. range, a-b
 *   4. single value, c
 * A matched term is stripped together with one trailing comma. Text that
 * matches none of the grammars fails the whole field.
 *
 * Steps start from zero, not from the domain start, and keep only the
 * multiples inside the domain: month-days step 2 yields 2,4,...,30.
 *
 * After all terms resolve, week-day 7 folds onto 0, then the set is sorted
 * and de-duplicated.
 */

var (
	stepAllTerm   = regexp.MustCompile(`^\*/([0-9]+),?`)
	stepRangeTerm = regexp.MustCompile(`^([0-9]+)-([0-9]+)/([0-9]+),?`)
	rangeTerm     = regexp.MustCompile(`^([0-9]+)-([0-9]+),?`)
	valueTerm     = regexp.MustCompile(`^([0-9]+),?`)
)

// parseField converts one field into its value set. A nil result with a nil
// error means the field is a wildcard. Labels are resolved through locale
// for month and week-day fields before the grammar applies.
func parseField(text string, kind FieldKind, locale Locale) ([]int, error) {
	if text == wildcard {
		return nil, nil
	}

	d := domains[kind]
	rest := locale.substituteLabels(text, kind)
	values := []int{}

	for rest != "" {
		if m := stepAllTerm.FindStringSubmatch(rest); m != nil {
			n, err := atoi(m[1])
			if err != nil {
				return nil, err
			}
			if n == 0 || n >= d.ceiling() {
				return nil, fmt.Errorf("%w: %d", errInvalidStep, n)
			}
			for i := 0; i < d.ceiling(); i += n {
				if i >= d.start {
					values = append(values, i)
				}
			}
			rest = rest[len(m[0]):]
			continue
		}

		if m := stepRangeTerm.FindStringSubmatch(rest); m != nil {
			a, b, err := atoiPair(m[1], m[2])
			if err != nil {
				return nil, err
			}
			n, err := atoi(m[3])
			if err != nil {
				return nil, err
			}
			if err := checkRange(a, b, d); err != nil {
				return nil, err
			}
			if n == 0 || n >= d.ceiling() {
				return nil, fmt.Errorf("%w: %d", errInvalidStep, n)
			}
			for i := a; i <= b; i += n {
				values = append(values, i)
			}
			rest = rest[len(m[0]):]
			continue
		}

		if m := rangeTerm.FindStringSubmatch(rest); m != nil {
			a, b, err := atoiPair(m[1], m[2])
			if err != nil {
				return nil, err
			}
			if err := checkRange(a, b, d); err != nil {
				return nil, err
			}
			for i := a; i <= b; i++ {
				values = append(values, i)
			}
			rest = rest[len(m[0]):]
			continue
		}

		if m := valueTerm.FindStringSubmatch(rest); m != nil {
			c, err := atoi(m[1])
			if err != nil {
				return nil, err
			}
			if c < d.start || c >= d.ceiling() {
				return nil, fmt.Errorf("%w: %d not in [%d,%d)", errOutOfDomain, c, d.start, d.ceiling())
			}
			values = append(values, c)
			rest = rest[len(m[0]):]
			continue
		}

		return nil, fmt.Errorf("%w: %q", errTermSyntax, rest)
	}

	return normalize(values, kind), nil
}

// checkRange enforces start <= a <= b < ceiling.
func checkRange(a, b int, d domain) error {
	if a < d.start || b >= d.ceiling() || a > b {
		return fmt.Errorf("%w: %d-%d not in [%d,%d)", errOutOfDomain, a, b, d.start, d.ceiling())
	}
	return nil
}

// normalize folds week-day 7 onto 0, then sorts and removes duplicates in place.
func normalize(values []int, kind FieldKind) []int {
	if kind == FieldWeekDay {
		for i, v := range values {
			if v == 7 {
				values[i] = 0
			}
		}
	}
	sort.Ints(values)
	out := values[:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// atoi rejects digit runs too long for int as out of domain.
func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errOutOfDomain, s)
	}
	return n, nil
}

func atoiPair(a, b string) (int, int, error) {
	x, err := atoi(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := atoi(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// ParseField parses a single field of the given kind using the English
// label table. A nil result means the field is a wildcard.
func ParseField(text string, kind FieldKind) ([]int, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("unknown field kind %d", int(kind))
	}
	return parseField(text, kind, EnglishLocale())
}
