package cronexpr

import "fmt"

// RebootAlias is the alias token that denotes PeriodReboot.
const RebootAlias = "@reboot"

// Shortcut is a named alias for a canonical expression, or for the reboot
// period when Reboot is set.
type Shortcut struct {
	Name      string
	Expansion string
	Reboot    bool
}

var shortcutTable = []Shortcut{
	{Name: RebootAlias, Reboot: true},
	{Name: "@yearly", Expansion: "0 0 1 1 *"},
	{Name: "@annually", Expansion: "0 0 1 1 *"},
	{Name: "@monthly", Expansion: "0 0 1 * *"},
	{Name: "@weekly", Expansion: "0 0 * * 0"},
	{Name: "@daily", Expansion: "0 0 * * *"},
	{Name: "@midnight", Expansion: "0 0 * * *"},
	{Name: "@hourly", Expansion: "0 * * * *"},
}

// Shortcuts returns the alias table in lookup order.
func Shortcuts() []Shortcut {
	out := make([]Shortcut, len(shortcutTable))
	copy(out, shortcutTable)
	return out
}

type shortcutMode int

const (
	shortcutsNone shortcutMode = iota
	shortcutsAll
	shortcutsSubset
)

// ShortcutPolicy selects which aliases a Converter recognizes.
// The zero value recognizes none.
type ShortcutPolicy struct {
	mode  shortcutMode
	names map[string]bool
}

// NoShortcuts disables alias recognition.
func NoShortcuts() ShortcutPolicy { return ShortcutPolicy{} }

// AllShortcuts enables every alias in the table, including @reboot.
func AllShortcuts() ShortcutPolicy { return ShortcutPolicy{mode: shortcutsAll} }

// OnlyShortcuts enables the named aliases. Names outside the table are rejected.
func OnlyShortcuts(names ...string) (ShortcutPolicy, error) {
	p := ShortcutPolicy{mode: shortcutsSubset, names: make(map[string]bool, len(names))}
	for _, name := range names {
		if _, ok := lookupShortcut(name); !ok {
			return ShortcutPolicy{}, fmt.Errorf("unknown shortcut %q", name)
		}
		p.names[name] = true
	}
	return p, nil
}

// DefaultShortcuts enables every alias except @reboot.
func DefaultShortcuts() ShortcutPolicy {
	p := ShortcutPolicy{mode: shortcutsSubset, names: make(map[string]bool, len(shortcutTable))}
	for _, s := range shortcutTable {
		if !s.Reboot {
			p.names[s.Name] = true
		}
	}
	return p
}

// Enabled reports whether the alias is recognized under the policy.
// Lookup is exact and case-sensitive.
func (p ShortcutPolicy) Enabled(name string) bool {
	switch p.mode {
	case shortcutsAll:
		return true
	case shortcutsSubset:
		return p.names[name]
	default:
		return false
	}
}

// resolveShortcut returns the alias entry for name when the policy enables it.
func (p ShortcutPolicy) resolveShortcut(name string) (Shortcut, bool) {
	if !p.Enabled(name) {
		return Shortcut{}, false
	}
	return lookupShortcut(name)
}

func lookupShortcut(name string) (Shortcut, bool) {
	for _, s := range shortcutTable {
		if s.Name == name {
			return s, true
		}
	}
	return Shortcut{}, false
}
