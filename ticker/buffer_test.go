package ticker

import (
	"slices"
	"testing"
)

func TestInitialTickers(t *testing.T) {
	if got := InitialTickers(); !slices.Equal(got, []string{"NONE"}) {
		t.Errorf("Expected [NONE], got %v", got)
	}
}

func TestPushAppendsInOrder(t *testing.T) {
	buf := InitialTickers()
	buf = Push(buf, "a")
	buf = Push(buf, "b")
	buf = Push(buf, "c")

	want := []string{"NONE", "a", "b", "c"}
	if !slices.Equal(buf, want) {
		t.Errorf("Expected %v, got %v", want, buf)
	}
}

func TestPushEvictsOldest(t *testing.T) {
	buf := InitialTickers()
	for _, tok := range []string{"a", "b", "c", "d", "e", "f"} {
		buf = Push(buf, tok)
		if len(buf) < 1 || len(buf) > MaxTickers {
			t.Fatalf("Length %d out of bounds after pushing %q", len(buf), tok)
		}
	}

	want := []string{"b", "c", "d", "e", "f"}
	if !slices.Equal(buf, want) {
		t.Errorf("Expected %v, got %v", want, buf)
	}
}

func TestPushDuplicatesAreAppended(t *testing.T) {
	buf := []string{"x"}
	buf = Push(buf, "x")
	buf = Push(buf, "x")
	if !slices.Equal(buf, []string{"x", "x", "x"}) {
		t.Errorf("Expected duplicates kept, got %v", buf)
	}
}

func TestPushClearingTokens(t *testing.T) {
	full := []string{"a", "b", "c", "d", "e"}
	for _, tok := range []string{"Control", "Meta", "Alt", "AltGr", "Esc"} {
		got := Push(full, tok)
		if !slices.Equal(got, []string{tok}) {
			t.Errorf("Push(%q) = %v, want [%s]", tok, got, tok)
		}
	}
}

func TestPushShiftDoesNotClear(t *testing.T) {
	got := Push([]string{"a"}, "Shift")
	if !slices.Equal(got, []string{"a", "Shift"}) {
		t.Errorf("Expected Shift appended, got %v", got)
	}
}

func TestPushDoesNotModifyInput(t *testing.T) {
	buf := make([]string, 0, 10)
	buf = append(buf, "a", "b")
	_ = Push(buf, "c")
	_ = Push(buf, "d")

	if !slices.Equal(buf, []string{"a", "b"}) {
		t.Errorf("Input buffer was modified: %v", buf)
	}
	if got := Push(buf, "e"); &got[0] == &buf[0] {
		t.Error("Push returned a slice sharing the input's backing array")
	}
}
