package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solatis/cronconv/internal/cronexpr"
)

// localeFile is the on-disk shape of a locale override:
//
//	error_invalid_cron: "Expression cron invalide"
//	week_day_labels: [DIM, LUN, MAR, MER, JEU, VEN, SAM]
//	month_labels: [JANV, FEVR, ...]
//	period_labels: {minute: minute, hour: heure}
//
// Every key is optional. Label lists, when present, must be complete, and
// each label must be a unique run of letters.
type localeFile struct {
	ErrorInvalidCron string            `yaml:"error_invalid_cron"`
	WeekDayLabels    []string          `yaml:"week_day_labels"`
	MonthLabels      []string          `yaml:"month_labels"`
	PeriodLabels     map[string]string `yaml:"period_labels"`
}

// LoadLocale reads a YAML locale file. Missing entries fall back to English.
func LoadLocale(path string) (cronexpr.Locale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cronexpr.Locale{}, fmt.Errorf("failed to read locale file: %w", err)
	}
	return ParseLocale(data)
}

// ParseLocale decodes YAML locale data.
func ParseLocale(data []byte) (cronexpr.Locale, error) {
	var f localeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cronexpr.Locale{}, fmt.Errorf("invalid locale YAML: %w", err)
	}

	var locale cronexpr.Locale
	locale.ErrorInvalidCron = f.ErrorInvalidCron

	if len(f.WeekDayLabels) > 0 {
		if len(f.WeekDayLabels) != len(locale.WeekDayLabels) {
			return cronexpr.Locale{}, fmt.Errorf("week_day_labels must have %d entries, got %d", len(locale.WeekDayLabels), len(f.WeekDayLabels))
		}
		copy(locale.WeekDayLabels[:], f.WeekDayLabels)
	}
	if len(f.MonthLabels) > 0 {
		if len(f.MonthLabels) != len(locale.MonthLabels) {
			return cronexpr.Locale{}, fmt.Errorf("month_labels must have %d entries, got %d", len(locale.MonthLabels), len(f.MonthLabels))
		}
		copy(locale.MonthLabels[:], f.MonthLabels)
	}

	if len(f.PeriodLabels) > 0 {
		locale.PeriodLabels = make(map[cronexpr.Period]string, len(f.PeriodLabels))
		for name, label := range f.PeriodLabels {
			p, err := cronexpr.ParsePeriod(name)
			if err != nil {
				return cronexpr.Locale{}, fmt.Errorf("period_labels: %w", err)
			}
			locale.PeriodLabels[p] = label
		}
	}

	locale = locale.WithDefaults()
	if err := locale.Validate(); err != nil {
		return cronexpr.Locale{}, fmt.Errorf("invalid locale: %w", err)
	}
	return locale, nil
}
