// Package ticker contains the keyboard display engine: classification of
// raw key notifications into display labels, the bounded ticker history and
// the modifier indicator state.
//
// Every transition is a pure function over immutable values. State is
// threaded through Step by the caller; nothing in this package keeps
// ambient mutable state.
package ticker

import "fmt"

// Kind identifies the kind of a raw key notification.
type Kind int

const (
	CharacterOnly Kind = iota
	KeyPress
	KeyRelease
)

// Wire names of each Kind. "Some" is the name the keyboard hook uses for
// character-only notifications.
const (
	modeSome          = "Some"
	modeCharacterOnly = "CharacterOnly"
	modeKeyPress      = "KeyPress"
	modeKeyRelease    = "KeyRelease"
)

func (k Kind) String() string {
	switch k {
	case CharacterOnly:
		return modeCharacterOnly
	case KeyPress:
		return modeKeyPress
	case KeyRelease:
		return modeKeyRelease
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a wire mode name to a Kind.
func ParseKind(mode string) (Kind, error) {
	switch mode {
	case modeSome, modeCharacterOnly:
		return CharacterOnly, nil
	case modeKeyPress:
		return KeyPress, nil
	case modeKeyRelease:
		return KeyRelease, nil
	}
	return 0, fmt.Errorf("unknown event mode %q", mode)
}

// RawEvent is one notification from the keyboard hook. Code is a raw key
// identifier for presses and releases, or a literal character for
// CharacterOnly events.
type RawEvent struct {
	Kind Kind
	Code string
}
