package ticker

import (
	"unicode/utf8"

	"KeyTicker/keymap"
)

// Classify derives the display label for ev. Releases never produce a
// label. Codes with no table entry are shown as they are.
func Classify(ev RawEvent, controlHeld bool) (string, bool) {
	if ev.Kind == KeyRelease || ev.Code == "" {
		return "", false
	}

	token := ev.Code

	// Character codes only apply to single-character messages.
	if code, size := utf8.DecodeRuneInString(token); size == len(token) {
		if label, ok := keymap.NamedCode(code); ok {
			return label, true
		}
		if controlHeld {
			if label, ok := keymap.ControlKeyCodes[code]; ok {
				return label, true
			}
		}
	}
	if label, ok := keymap.SpecialKeys[token]; ok {
		return label, true
	}
	return token, true
}
