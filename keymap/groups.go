package keymap

import "slices"

// Group describes one logical modifier and the physical keys that belong to it.
type Group struct {
	Title   string
	Members []string
}

var (
	shiftKeys   = []string{ShiftLeft, ShiftRight}
	controlKeys = []string{ControlLeft, ControlRight}
	altKeys     = []string{Alt, AltGr}
	metaKeys    = []string{MetaLeft, MetaRight}
)

// Groups returns the four modifier groups in display order. Each call
// returns fresh slices.
func Groups() []Group {
	return []Group{
		{Title: Title(ShiftLeft), Members: slices.Clone(shiftKeys)},
		{Title: Title(ControlLeft), Members: slices.Clone(controlKeys)},
		{Title: Title(Alt), Members: slices.Clone(altKeys)},
		{Title: Title(MetaLeft), Members: slices.Clone(metaKeys)},
	}
}

// IsControl reports whether code is one of the physical Control keys.
func IsControl(code string) bool {
	return slices.Contains(controlKeys, code)
}

// clearing is the set of labels whose arrival resets the ticker history.
var clearing = map[string]bool{
	Title(ControlLeft):  true,
	Title(ControlRight): true,
	Title(MetaLeft):     true,
	Title(MetaRight):    true,
	Title(Alt):          true,
	Title(AltGr):        true,
	Title("Esc"):        true,
}

// IsClearing reports whether a display label resets the ticker.
func IsClearing(label string) bool {
	return clearing[label]
}
