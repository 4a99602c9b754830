package keymap

import "testing"

func TestControlKeyCodesCoverLetters(t *testing.T) {
	for c := rune(1); c <= 26; c++ {
		want := "Ctrl+" + string('A'+c-1)
		if got := ControlKeyCodes[c]; got != want {
			t.Errorf("code %d: expected %q, got %q", c, want, got)
		}
	}
}

func TestGroupsAreDisjoint(t *testing.T) {
	seen := make(map[string]string)
	for _, g := range Groups() {
		for _, m := range g.Members {
			if other, ok := seen[m]; ok {
				t.Errorf("%q belongs to both %s and %s", m, other, g.Title)
			}
			seen[m] = g.Title
		}
	}
}

func TestGroupsReturnsFreshSlices(t *testing.T) {
	a := Groups()
	a[0].Members[0] = "changed"
	if Groups()[0].Members[0] != ShiftLeft {
		t.Error("Groups shares member slices between calls")
	}
}

func TestClearingSet(t *testing.T) {
	for _, label := range []string{"Control", "Meta", "Alt", "AltGr", "Esc"} {
		if !IsClearing(label) {
			t.Errorf("%q should clear the ticker", label)
		}
	}
	for _, label := range []string{"Shift", "Tab", "a", "NONE", "Ctrl+C"} {
		if IsClearing(label) {
			t.Errorf("%q should not clear the ticker", label)
		}
	}
}

func TestTitleFallsBackToCode(t *testing.T) {
	if got := Title("Unknown42"); got != "Unknown42" {
		t.Errorf("Expected passthrough, got %q", got)
	}
	if got := Title(MetaRight); got != LabelMeta {
		t.Errorf("Expected %q, got %q", LabelMeta, got)
	}
}

func TestIsControl(t *testing.T) {
	if !IsControl(ControlLeft) || !IsControl(ControlRight) {
		t.Error("Expected both Control keys recognised")
	}
	if IsControl(ShiftLeft) || IsControl("Control") {
		t.Error("Only physical Control identifiers count")
	}
}
