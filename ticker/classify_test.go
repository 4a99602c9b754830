package ticker

import "testing"

func TestClassifyCharacterOnly(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		controlHeld bool
		want        string
	}{
		{"letter", "a", false, "a"},
		{"tab", "\t", false, "Tab"},
		{"enter", "\r", false, "Enter"},
		{"escape", "\x1b", false, "Esc"},
		{"backspace", "\b", false, "Backspace"},
		{"space", " ", false, "Space"},
		{"delete char", "\x7f", false, "Backspace"},
		{"ctrl c held", "\x03", true, "Ctrl+C"},
		{"ctrl c not held", "\x03", false, "\x03"},
		{"ctrl a held", "\x01", true, "Ctrl+A"},
		{"ctrl z held", "\x1a", true, "Ctrl+Z"},
		{"tab wins over ctrl i", "\t", true, "Tab"},
		{"special name", "Escape", false, "Esc"},
		{"unmapped identifier", "Launch", false, "Launch"},
		{"unicode", "é", true, "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(RawEvent{Kind: CharacterOnly, Code: tt.code}, tt.controlHeld)
			if !ok {
				t.Fatalf("Expected a token for %q", tt.code)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassifyKeyPressMatchesCharacterOnly(t *testing.T) {
	for _, code := range []string{"ShiftLeft", "ControlRight", "KeyQ", "Return", "q", "\x03"} {
		for _, held := range []bool{false, true} {
			press, _ := Classify(RawEvent{Kind: KeyPress, Code: code}, held)
			char, _ := Classify(RawEvent{Kind: CharacterOnly, Code: code}, held)
			if press != char {
				t.Errorf("code %q held=%v: press %q != character %q", code, held, press, char)
			}
		}
	}
}

func TestClassifyKeyPressIdentifiers(t *testing.T) {
	cases := map[string]string{
		"ShiftLeft":    "Shift",
		"ShiftRight":   "Shift",
		"ControlLeft":  "Control",
		"ControlRight": "Control",
		"Alt":          "Alt",
		"AltGr":        "AltGr",
		"MetaLeft":     "Meta",
		"MetaRight":    "Meta",
		"KeyA":         "A",
		"Num7":         "7",
		"UpArrow":      "Up",
		"F11":          "F11",
	}
	for code, want := range cases {
		got, ok := Classify(RawEvent{Kind: KeyPress, Code: code}, false)
		if !ok || got != want {
			t.Errorf("Classify(%q) = %q, %v; want %q", code, got, ok, want)
		}
	}
}

func TestClassifyReleaseProducesNothing(t *testing.T) {
	if got, ok := Classify(RawEvent{Kind: KeyRelease, Code: "KeyA"}, false); ok {
		t.Errorf("Expected no token for release, got %q", got)
	}
}

func TestClassifyEmptyCode(t *testing.T) {
	if _, ok := Classify(RawEvent{Kind: CharacterOnly}, false); ok {
		t.Error("Expected no token for empty code")
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"Some":          CharacterOnly,
		"CharacterOnly": CharacterOnly,
		"KeyPress":      KeyPress,
		"KeyRelease":    KeyRelease,
	}
	for mode, want := range cases {
		got, err := ParseKind(mode)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", mode, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %v, want %v", mode, got, want)
		}
	}

	if _, err := ParseKind("KeyRepeat"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
