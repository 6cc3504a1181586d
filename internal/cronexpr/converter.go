// internal/cronexpr/converter.go
package cronexpr

import (
	"fmt"
	"strings"

	"github.com/solatis/cronconv/internal/types"
)

/*
 * Expression orchestration.
 *
 * Parse flow:
 *   1. Empty input: accepted per AllowEmpty, otherwise invalid
 *   2. Alias lookup: @reboot short-circuits, other aliases expand
 *   3. Split into five fields, classify the wildcard mask into a period
 *   4. Parse only the fields active for that period
 *   5. Assemble the Expression
 *
 * Parsing is atomic: one bad field rejects the whole expression and no
 * partial value is returned. Every internal failure reason collapses into a
 * ParseError of kind InvalidExpression.
 *
 * Render is the inverse and never fails. Inactive fields always render "*".
 * PeriodReboot renders as @reboot even when the shortcut policy disables it;
 * CheckReadable tells callers whether Parse would accept the result.
 *
 * A Converter is read-only after construction and safe for concurrent use.
 */

// Converter converts between textual expressions and Expression values.
type Converter struct {
	opts Options
}

// NewConverter creates a converter. Empty locale entries fall back to English.
func NewConverter(opts Options) *Converter {
	opts.Locale = opts.Locale.WithDefaults()
	return &Converter{opts: opts}
}

// Options returns the converter configuration.
func (c *Converter) Options() Options { return c.opts }

// Parse converts text into an Expression. Empty input is accepted only under
// AllowEmptyAlways and yields the zero Expression.
func (c *Converter) Parse(text string) (Expression, error) {
	return c.parse(text, false)
}

// ParseDefault parses the initial value of an editor. Empty input is also
// accepted under AllowEmptyForDefault.
func (c *Converter) ParseDefault(text string) (Expression, error) {
	return c.parse(text, true)
}

func (c *Converter) parse(text string, first bool) (Expression, error) {
	if text == "" {
		if c.opts.AllowEmpty == AllowEmptyAlways || (first && c.opts.AllowEmpty == AllowEmptyForDefault) {
			return Expression{}, nil
		}
		return Expression{}, c.invalid(text)
	}

	source := text
	if s, ok := c.opts.Shortcuts.resolveShortcut(text); ok {
		if s.Reboot {
			return Expression{period: PeriodReboot}, nil
		}
		source = s.Expansion
	}

	fields, err := splitFields(source)
	if err != nil {
		return Expression{}, c.invalid(text)
	}
	period, err := classify(mask(fields))
	if err != nil {
		return Expression{}, c.invalid(text)
	}

	e := Expression{period: period}
	active := period.activeFields()
	for _, kind := range FieldKinds {
		if !active[kind] {
			continue
		}
		values, err := parseField(fields[kind], kind, c.opts.Locale)
		if err != nil {
			return Expression{}, c.invalid(text)
		}
		e.values[kind] = values
	}
	return e, nil
}

// Render converts an Expression into its canonical text. Only the Humanize
// option affects the output; leading zeros and clock suffixes are display
// concerns handled by Display. The zero Expression renders as "".
func (c *Converter) Render(e Expression) string {
	return c.join(e, Options{Humanize: c.opts.Humanize, Locale: c.opts.Locale})
}

// CheckReadable reports whether Parse on this converter accepts the text
// Render produces for e. Only a reboot Expression can fail, when the
// shortcut policy does not enable RebootAlias.
func (c *Converter) CheckReadable(e Expression) error {
	if e.period == PeriodReboot && !c.opts.Shortcuts.Enabled(RebootAlias) {
		return fmt.Errorf("%w: %s shortcut is not enabled", types.ErrInvalidFields, RebootAlias)
	}
	return nil
}

// Display renders an Expression for presentation with every formatting
// option applied. The result is not guaranteed to parse back.
func (c *Converter) Display(e Expression) string {
	return c.join(e, c.opts)
}

// FormatField renders a single value set with every formatting option applied.
func (c *Converter) FormatField(values []int, kind FieldKind) string {
	if !kind.valid() {
		return wildcard
	}
	return serializeField(values, kind, c.opts)
}

func (c *Converter) join(e Expression, opts Options) string {
	switch e.period {
	case periodUnset:
		return ""
	case PeriodReboot:
		return RebootAlias
	}

	items := make([]string, fieldCount)
	active := e.period.activeFields()
	for _, kind := range FieldKinds {
		if active[kind] {
			items[kind] = serializeField(e.values[kind], kind, opts)
		} else {
			items[kind] = wildcard
		}
	}
	return strings.Join(items, " ")
}
