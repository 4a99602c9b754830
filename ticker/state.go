package ticker

import (
	"slices"

	"KeyTicker/keymap"
)

// State is the complete display state. A State is never modified after it
// is returned from NewState or Step.
type State struct {
	Tickers     []string
	Modifiers   []*ModifierGroup
	ControlHeld bool
}

// NewState returns the state shown before any key activity.
func NewState() State {
	return State{
		Tickers:   InitialTickers(),
		Modifiers: NewModifierGroups(),
	}
}

// Step applies one raw notification and returns the resulting state.
func Step(s State, ev RawEvent) State {
	next, _, _ := Advance(s, ev)
	return next
}

// Advance is Step that also returns the token pushed onto the ticker, if
// the notification produced one.
func Advance(s State, ev RawEvent) (State, string, bool) {
	next := s

	switch ev.Kind {
	case KeyPress:
		if keymap.IsControl(ev.Code) {
			next.ControlHeld = true
		}
	case KeyRelease:
		if keymap.IsControl(ev.Code) {
			next.ControlHeld = false
		}
	}

	token, pushed := Classify(ev, next.ControlHeld)
	if pushed {
		next.Tickers = Push(s.Tickers, token)
	}

	switch ev.Kind {
	case KeyPress:
		next.Modifiers = SetActive(s.Modifiers, ev.Code, true)
	case KeyRelease:
		next.Modifiers = SetActive(s.Modifiers, ev.Code, false)
	}
	return next, token, pushed
}

// Active returns the activation of the group titled title.
func (s State) Active(title string) bool {
	for _, g := range s.Modifiers {
		if g.Title == title {
			return g.Active
		}
	}
	return false
}

// Equal reports whether s and o would render identically.
func (s State) Equal(o State) bool {
	if s.ControlHeld != o.ControlHeld || !slices.Equal(s.Tickers, o.Tickers) {
		return false
	}
	return slices.EqualFunc(s.Modifiers, o.Modifiers, func(a, b *ModifierGroup) bool {
		return a.Title == b.Title && a.Active == b.Active
	})
}
