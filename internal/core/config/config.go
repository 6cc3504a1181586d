// Package config provides configuration management for cronconv.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/solatis/cronconv/internal/cronexpr"
)

// Config is the full cronconv configuration.
type Config struct {
	Converter ConverterConfig
	Server    ServerConfig
	DB        DBConfig
}

// ConverterConfig holds the conversion options in their textual form.
type ConverterConfig struct {
	AllowEmpty  string
	Shortcuts   []string
	Humanize    bool
	LeadingZero []string
	ClockFormat string
	LocaleFile  string
}

// ServerConfig holds configuration for the gRPC conversion service.
type ServerConfig struct {
	Host           string
	Port           int
	RequestTimeout time.Duration
}

// DBConfig holds the catalog database location.
type DBConfig struct {
	URL string
}

const (
	keywordAll  = "all"
	keywordNone = "none"
)

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Converter: ConverterConfig{
			AllowEmpty:  cronexpr.AllowEmptyForDefault.String(),
			Shortcuts:   defaultShortcutNames(),
			LeadingZero: []string{keywordNone},
		},
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           50061,
			RequestTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			URL: "sqlite://cronconv.db",
		},
	}
}

// defaultShortcutNames lists every alias the default policy enables.
func defaultShortcutNames() []string {
	policy := cronexpr.DefaultShortcuts()
	var names []string
	for _, s := range cronexpr.Shortcuts() {
		if policy.Enabled(s.Name) {
			names = append(names, s.Name)
		}
	}
	return names
}

// Options converts the textual converter settings into cronexpr.Options,
// loading the locale file when one is configured.
func (c ConverterConfig) Options() (cronexpr.Options, error) {
	opts := cronexpr.DefaultOptions()

	allowEmpty, err := cronexpr.ParseAllowEmpty(c.AllowEmpty)
	if err != nil {
		return opts, fmt.Errorf("converter.allow_empty: %w", err)
	}
	opts.AllowEmpty = allowEmpty

	if opts.Shortcuts, err = shortcutPolicy(c.Shortcuts); err != nil {
		return opts, fmt.Errorf("converter.shortcuts: %w", err)
	}
	if opts.LeadingZero, err = leadingZero(c.LeadingZero); err != nil {
		return opts, fmt.Errorf("converter.leading_zero: %w", err)
	}

	clock, err := cronexpr.ParseClockFormat(c.ClockFormat)
	if err != nil {
		return opts, fmt.Errorf("converter.clock_format: %w", err)
	}
	opts.ClockFormat = clock
	opts.Humanize = c.Humanize

	if c.LocaleFile != "" {
		locale, err := LoadLocale(c.LocaleFile)
		if err != nil {
			return opts, fmt.Errorf("converter.locale_file: %w", err)
		}
		opts.Locale = locale
	}
	return opts, nil
}

// shortcutPolicy accepts a list of alias names, or "all" / "none" as the
// only entry. An empty list disables every alias.
func shortcutPolicy(names []string) (cronexpr.ShortcutPolicy, error) {
	if len(names) == 1 {
		switch strings.ToLower(names[0]) {
		case keywordAll:
			return cronexpr.AllShortcuts(), nil
		case keywordNone:
			return cronexpr.NoShortcuts(), nil
		}
	}
	if len(names) == 0 {
		return cronexpr.NoShortcuts(), nil
	}
	return cronexpr.OnlyShortcuts(names...)
}

// leadingZero accepts a list of field names, or "all" / "none" as the only entry.
func leadingZero(names []string) (cronexpr.LeadingZero, error) {
	if len(names) == 1 {
		switch strings.ToLower(names[0]) {
		case keywordAll:
			return cronexpr.LeadingZeroAll(), nil
		case keywordNone:
			return cronexpr.LeadingZero{}, nil
		}
	}
	kinds := make([]cronexpr.FieldKind, 0, len(names))
	for _, name := range names {
		kind, err := cronexpr.ParseFieldKind(name)
		if err != nil {
			return cronexpr.LeadingZero{}, err
		}
		kinds = append(kinds, kind)
	}
	return cronexpr.LeadingZeroFor(kinds...), nil
}
