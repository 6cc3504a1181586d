package cronexpr

import "fmt"

// AllowEmpty controls whether empty input parses successfully.
// The zero value accepts empty input only for the default value.
type AllowEmpty int

const (
	AllowEmptyForDefault AllowEmpty = iota
	AllowEmptyNever
	AllowEmptyAlways
)

var allowEmptyNames = map[AllowEmpty]string{
	AllowEmptyForDefault: "for-default-value",
	AllowEmptyNever:      "never",
	AllowEmptyAlways:     "always",
}

func (a AllowEmpty) String() string {
	if name, ok := allowEmptyNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AllowEmpty(%d)", int(a))
}

// ParseAllowEmpty maps a policy name to its value.
func ParseAllowEmpty(name string) (AllowEmpty, error) {
	for a, n := range allowEmptyNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown allow-empty policy %q (expected never, always or for-default-value)", name)
}

// ClockFormat selects how hour and minute values are displayed.
type ClockFormat int

const (
	ClockNone ClockFormat = iota
	Clock12Hour
	Clock24Hour
)

var clockFormatNames = map[ClockFormat]string{
	ClockNone:   "",
	Clock12Hour: "12-hour-clock",
	Clock24Hour: "24-hour-clock",
}

func (c ClockFormat) String() string {
	if name, ok := clockFormatNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ClockFormat(%d)", int(c))
}

// ParseClockFormat maps a clock format name to its value. The empty name is ClockNone.
func ParseClockFormat(name string) (ClockFormat, error) {
	for c, n := range clockFormatNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown clock format %q (expected 12-hour-clock or 24-hour-clock)", name)
}

// LeadingZero selects the fields whose single-digit values are zero padded.
// The zero value pads nothing.
type LeadingZero struct {
	all   bool
	kinds [fieldCount]bool
}

// LeadingZeroAll pads every field.
func LeadingZeroAll() LeadingZero {
	return LeadingZero{all: true}
}

// LeadingZeroFor pads only the listed fields.
func LeadingZeroFor(kinds ...FieldKind) LeadingZero {
	var z LeadingZero
	for _, k := range kinds {
		if k.valid() {
			z.kinds[k] = true
		}
	}
	return z
}

// Applies reports whether values of kind are padded.
func (z LeadingZero) Applies(kind FieldKind) bool {
	return z.all || (kind.valid() && z.kinds[kind])
}

// Options configures a Converter. Use DefaultOptions as a starting point.
type Options struct {
	AllowEmpty  AllowEmpty
	Shortcuts   ShortcutPolicy
	Humanize    bool
	LeadingZero LeadingZero
	ClockFormat ClockFormat
	Locale      Locale
}

// DefaultOptions mirrors the defaults of the expression editor: empty input
// allowed for the default value, every alias except @reboot recognized, and
// numeric rendering.
func DefaultOptions() Options {
	return Options{
		AllowEmpty: AllowEmptyForDefault,
		Shortcuts:  DefaultShortcuts(),
		Locale:     EnglishLocale(),
	}
}
