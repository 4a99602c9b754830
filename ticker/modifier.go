package ticker

import (
	"slices"

	"KeyTicker/keymap"
)

// ModifierGroup is the indicator state of one logical modifier. Values
// handed out by this package are shared between states and must be
// treated as read-only.
type ModifierGroup struct {
	Title   string
	Members []string
	Active  bool
}

// NewModifierGroups returns the Shift, Control, Alt and Meta groups, all
// inactive.
func NewModifierGroups() []*ModifierGroup {
	defs := keymap.Groups()
	groups := make([]*ModifierGroup, 0, len(defs))
	for _, d := range defs {
		groups = append(groups, &ModifierGroup{Title: d.Title, Members: d.Members})
	}
	return groups
}

// Has reports whether code is one of the group's physical keys.
func (g *ModifierGroup) Has(code string) bool {
	return slices.Contains(g.Members, code)
}

// SetActive returns a new group list where every group containing code has
// the given activation. A group gets a new pointer only when its Active
// flag actually flips, so callers can compare pointers to find changes.
func SetActive(groups []*ModifierGroup, code string, active bool) []*ModifierGroup {
	out := make([]*ModifierGroup, len(groups))
	for i, g := range groups {
		if g.Has(code) && g.Active != active {
			cloned := *g
			cloned.Active = active
			out[i] = &cloned
			continue
		}
		out[i] = g
	}
	return out
}
