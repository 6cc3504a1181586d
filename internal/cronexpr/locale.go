package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DefaultErrorInvalidCron is the English description attached to parse errors.
const DefaultErrorInvalidCron = "Invalid cron expression"

// Locale carries the caller-provided strings used for error messages and
// humanized month and week-day labels. Empty entries fall back to English.
type Locale struct {
	ErrorInvalidCron string
	// WeekDayLabels is indexed by week-day value, Sunday first.
	WeekDayLabels [7]string
	// MonthLabels is indexed by month value minus one, January first.
	MonthLabels [12]string
	// PeriodLabels names each period for presentation. Missing periods use
	// Period.String.
	PeriodLabels map[Period]string
}

// EnglishLocale returns the built-in English locale.
func EnglishLocale() Locale {
	return Locale{
		ErrorInvalidCron: DefaultErrorInvalidCron,
		WeekDayLabels:    [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
		MonthLabels:      [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"},
	}
}

// WithDefaults fills empty entries from the English locale.
func (l Locale) WithDefaults() Locale {
	en := EnglishLocale()
	if l.ErrorInvalidCron == "" {
		l.ErrorInvalidCron = en.ErrorInvalidCron
	}
	for i, label := range l.WeekDayLabels {
		if label == "" {
			l.WeekDayLabels[i] = en.WeekDayLabels[i]
		}
	}
	for i, label := range l.MonthLabels {
		if label == "" {
			l.MonthLabels[i] = en.MonthLabels[i]
		}
	}
	return l
}

// Validate reports labels that humanized rendering could not read back.
// Every week-day and month label must be a run of letters and unique,
// ignoring case, within its table. Empty labels are skipped; WithDefaults
// fills them.
func (l Locale) Validate() error {
	if err := validateLabels("week-day", l.WeekDayLabels[:]); err != nil {
		return err
	}
	return validateLabels("month", l.MonthLabels[:])
}

func validateLabels(table string, labels []string) error {
	for i, label := range labels {
		if label == "" {
			continue
		}
		for _, r := range label {
			if !unicode.IsLetter(r) {
				return fmt.Errorf("%s label %q must contain only letters", table, label)
			}
		}
		for _, other := range labels[:i] {
			if strings.EqualFold(label, other) {
				return fmt.Errorf("duplicate %s label %q", table, label)
			}
		}
	}
	return nil
}

// label returns the humanized label for value, or "" when kind has no labels.
func (l Locale) label(kind FieldKind, value int) string {
	switch kind {
	case FieldWeekDay:
		if value >= 0 && value < len(l.WeekDayLabels) {
			return l.WeekDayLabels[value]
		}
	case FieldMonth:
		if value >= 1 && value <= len(l.MonthLabels) {
			return l.MonthLabels[value-1]
		}
	}
	return ""
}

// PeriodLabel returns the display name of p.
func (l Locale) PeriodLabel(p Period) string {
	if label := l.PeriodLabels[p]; label != "" {
		return label
	}
	return p.String()
}

// lookup resolves a whole label token, ignoring case.
func (l Locale) lookup(kind FieldKind, token string) (int, bool) {
	switch kind {
	case FieldWeekDay:
		for i, label := range l.WeekDayLabels {
			if label != "" && strings.EqualFold(label, token) {
				return i, true
			}
		}
	case FieldMonth:
		for i, label := range l.MonthLabels {
			if label != "" && strings.EqualFold(label, token) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// substituteLabels replaces every whole letter run in text that names a
// label of kind with its numeric value. Letter runs that match no label are
// left in place and fail the field grammar afterwards.
func (l Locale) substituteLabels(text string, kind FieldKind) string {
	if kind != FieldWeekDay && kind != FieldMonth {
		return text
	}

	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if !unicode.IsLetter(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsLetter(runes[j]) {
			j++
		}
		token := string(runes[i:j])
		if value, ok := l.lookup(kind, token); ok {
			b.WriteString(strconv.Itoa(value))
		} else {
			b.WriteString(token)
		}
		i = j
	}
	return b.String()
}
