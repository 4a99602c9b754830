// Package keymap holds the static lookup tables used to turn raw key
// identifiers and character codes into display labels. The tables are
// populated at init and never mutated afterwards.
package keymap

// Raw identifiers for the modifier keys, as delivered by the keyboard hook.
const (
	ShiftLeft    = "ShiftLeft"
	ShiftRight   = "ShiftRight"
	ControlLeft  = "ControlLeft"
	ControlRight = "ControlRight"
	Alt          = "Alt"
	AltGr        = "AltGr"
	MetaLeft     = "MetaLeft"
	MetaRight    = "MetaRight"
)

// Labels that carry meaning outside of plain lookup.
const (
	LabelNone      = "NONE"
	LabelShift     = "Shift"
	LabelControl   = "Control"
	LabelAlt       = "Alt"
	LabelAltGr     = "AltGr"
	LabelMeta      = "Meta"
	LabelTab       = "Tab"
	LabelEnter     = "Enter"
	LabelEsc       = "Esc"
	LabelBackspace = "Backspace"
	LabelSpace     = "Space"
)

// SpecialKeys maps raw identifiers (and a few literal strings) with no
// printable glyph to their display label.
var SpecialKeys = map[string]string{
	ShiftLeft:    LabelShift,
	ShiftRight:   LabelShift,
	ControlLeft:  LabelControl,
	ControlRight: LabelControl,
	Alt:          LabelAlt,
	AltGr:        LabelAltGr,
	MetaLeft:     LabelMeta,
	MetaRight:    LabelMeta,

	"Tab":       LabelTab,
	"Return":    LabelEnter,
	"Enter":     LabelEnter,
	"KpReturn":  LabelEnter,
	"Escape":    LabelEsc,
	"Esc":       LabelEsc,
	"Backspace": LabelBackspace,
	"Space":     LabelSpace,
	"\x7f":      LabelBackspace,

	"CapsLock":    "CapsLock",
	"NumLock":     "NumLock",
	"ScrollLock":  "ScrollLock",
	"PrintScreen": "PrtSc",
	"Pause":       "Pause",
	"Function":    "Fn",
	"Insert":      "Ins",
	"Delete":      "Del",
	"Home":        "Home",
	"End":         "End",
	"PageUp":      "PgUp",
	"PageDown":    "PgDn",
	"UpArrow":     "Up",
	"DownArrow":   "Down",
	"LeftArrow":   "Left",
	"RightArrow":  "Right",

	"F1": "F1", "F2": "F2", "F3": "F3", "F4": "F4",
	"F5": "F5", "F6": "F6", "F7": "F7", "F8": "F8",
	"F9": "F9", "F10": "F10", "F11": "F11", "F12": "F12",

	"KeyA": "A", "KeyB": "B", "KeyC": "C", "KeyD": "D", "KeyE": "E",
	"KeyF": "F", "KeyG": "G", "KeyH": "H", "KeyI": "I", "KeyJ": "J",
	"KeyK": "K", "KeyL": "L", "KeyM": "M", "KeyN": "N", "KeyO": "O",
	"KeyP": "P", "KeyQ": "Q", "KeyR": "R", "KeyS": "S", "KeyT": "T",
	"KeyU": "U", "KeyV": "V", "KeyW": "W", "KeyX": "X", "KeyY": "Y",
	"KeyZ": "Z",

	"Num0": "0", "Num1": "1", "Num2": "2", "Num3": "3", "Num4": "4",
	"Num5": "5", "Num6": "6", "Num7": "7", "Num8": "8", "Num9": "9",

	"Kp0": "0", "Kp1": "1", "Kp2": "2", "Kp3": "3", "Kp4": "4",
	"Kp5": "5", "Kp6": "6", "Kp7": "7", "Kp8": "8", "Kp9": "9",
	"KpMinus": "-", "KpPlus": "+", "KpMultiply": "*", "KpDivide": "/",
	"KpDelete": "Del",

	"BackQuote":     "`",
	"Minus":         "-",
	"Equal":         "=",
	"LeftBracket":   "[",
	"RightBracket":  "]",
	"BackSlash":     "\\",
	"IntlBackslash": "\\",
	"SemiColon":     ";",
	"Quote":         "'",
	"Comma":         ",",
	"Dot":           ".",
	"Slash":         "/",
}

// ControlKeyCodes maps control-character codes to the combination that
// produced them. Only consulted while a Control key is held.
var ControlKeyCodes = map[rune]string{
	0:  "Ctrl+@",
	28: "Ctrl+\\",
	29: "Ctrl+]",
	30: "Ctrl+^",
	31: "Ctrl+_",
}

// Character codes that always map to a named label.
var namedCodes = map[rune]string{
	8:  LabelBackspace,
	9:  LabelTab,
	13: LabelEnter,
	27: LabelEsc,
	32: LabelSpace,
}

func init() {
	for c := rune(1); c <= 26; c++ {
		ControlKeyCodes[c] = "Ctrl+" + string('A'+c-1)
	}
}

// NamedCode returns the label for one of the fixed named character codes
// (Tab, Enter, Esc, Backspace, Space).
func NamedCode(c rune) (string, bool) {
	label, ok := namedCodes[c]
	return label, ok
}

// Title returns the display label for a raw identifier, falling back to
// the identifier itself.
func Title(code string) string {
	if label, ok := SpecialKeys[code]; ok {
		return label
	}
	return code
}
