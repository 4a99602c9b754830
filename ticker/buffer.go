package ticker

import "KeyTicker/keymap"

// MaxTickers is the number of labels kept in the ticker history.
const MaxTickers = 5

// InitialTickers returns the history shown before any key activity.
func InitialTickers() []string {
	return []string{keymap.LabelNone}
}

// Push returns a new history with token appended. Clearing labels replace
// the whole history. The oldest entries are dropped once the history grows
// past MaxTickers. buf is never modified.
func Push(buf []string, token string) []string {
	if keymap.IsClearing(token) {
		return []string{token}
	}

	out := make([]string, 0, len(buf)+1)
	out = append(out, buf...)
	out = append(out, token)
	if excess := len(out) - MaxTickers; excess > 0 {
		out = out[excess:]
	}
	return out
}
