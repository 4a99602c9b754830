package ticker

import (
	"slices"
	"testing"
)

func press(code string) RawEvent   { return RawEvent{Kind: KeyPress, Code: code} }
func release(code string) RawEvent { return RawEvent{Kind: KeyRelease, Code: code} }
func char(code string) RawEvent    { return RawEvent{Kind: CharacterOnly, Code: code} }

func run(s State, events ...RawEvent) State {
	for _, ev := range events {
		s = Step(s, ev)
	}
	return s
}

func TestNewState(t *testing.T) {
	s := NewState()
	if !slices.Equal(s.Tickers, []string{"NONE"}) {
		t.Errorf("Expected [NONE], got %v", s.Tickers)
	}
	if s.ControlHeld {
		t.Error("ControlHeld should start false")
	}
	for _, g := range s.Modifiers {
		if g.Active {
			t.Errorf("Group %q should start inactive", g.Title)
		}
	}
}

func TestControlCombinationScenario(t *testing.T) {
	s := Step(NewState(), press("ControlLeft"))
	if !s.ControlHeld {
		t.Error("Expected ControlHeld after pressing ControlLeft")
	}
	if !s.Active("Control") {
		t.Error("Expected Control group active")
	}
	if !slices.Equal(s.Tickers, []string{"Control"}) {
		t.Errorf("Expected ticker cleared to [Control], got %v", s.Tickers)
	}

	s = Step(s, char("\x03"))
	if !slices.Equal(s.Tickers, []string{"Control", "Ctrl+C"}) {
		t.Errorf("Expected Ctrl+C appended, got %v", s.Tickers)
	}

	s = Step(s, release("ControlLeft"))
	if s.ControlHeld {
		t.Error("Expected ControlHeld cleared after release")
	}
	if s.Active("Control") {
		t.Error("Expected Control group inactive after release")
	}
	if !slices.Equal(s.Tickers, []string{"Control", "Ctrl+C"}) {
		t.Errorf("Release must not touch the ticker, got %v", s.Tickers)
	}

	s = Step(s, char("\x03"))
	if got := s.Tickers[len(s.Tickers)-1]; got != "\x03" {
		t.Errorf("Expected literal code without control, got %q", got)
	}
}

func TestSixLettersScenario(t *testing.T) {
	s := run(NewState(), press("KeyA"), press("KeyB"), press("KeyC"), press("KeyD"), press("KeyE"), press("KeyF"))
	want := []string{"B", "C", "D", "E", "F"}
	if !slices.Equal(s.Tickers, want) {
		t.Errorf("Expected %v, got %v", want, s.Tickers)
	}
}

func TestAnyReleaseClearsGroup(t *testing.T) {
	s := run(NewState(), press("ShiftLeft"))
	if !s.Active("Shift") {
		t.Fatal("Expected Shift active")
	}
	s = run(s, release("ShiftLeft"))
	if s.Active("Shift") {
		t.Fatal("Expected Shift inactive")
	}

	s = run(s, press("ShiftLeft"), press("ShiftRight"), release("ShiftLeft"))
	if s.Active("Shift") {
		t.Error("A single matching release should clear the group even with a sibling held")
	}
}

func TestRightControlReleaseClearsFlag(t *testing.T) {
	s := run(NewState(), press("ControlLeft"), release("ControlRight"))
	if s.ControlHeld {
		t.Error("Release of any Control key should clear ControlHeld")
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	start := NewState()
	_ = run(start, press("ControlLeft"), char("a"), press("MetaLeft"))
	if !start.Equal(NewState()) {
		t.Error("Step modified its input state")
	}
}

func TestReleaseKeepsTickerSlice(t *testing.T) {
	s := run(NewState(), char("a"))
	next := Step(s, release("KeyA"))
	if &next.Tickers[0] != &s.Tickers[0] {
		t.Error("Release should not rebuild the ticker history")
	}
}

func TestModifierLatchProperty(t *testing.T) {
	seqs := [][]RawEvent{
		{press("AltGr")},
		{press("Alt"), release("Alt")},
		{press("Alt"), press("AltGr"), release("AltGr")},
		{press("Alt"), release("KeyA")},
		{release("Alt"), press("Alt"), press("Alt")},
	}
	for i, seq := range seqs {
		s := run(NewState(), seq...)
		want := seq[len(seq)-1].Kind == KeyPress
		if last := seq[len(seq)-1]; last.Code == "KeyA" {
			want = true
		}
		if got := s.Active("Alt"); got != want {
			t.Errorf("sequence %d: Alt active=%v, want %v", i, got, want)
		}
	}
}

func TestTickerLengthBounds(t *testing.T) {
	s := NewState()
	codes := []string{"a", "ControlLeft", "b", "c", "d", "e", "f", "g", "Escape", "h", "MetaRight", "i"}
	for _, c := range codes {
		s = Step(s, press(c))
		if n := len(s.Tickers); n < 1 || n > MaxTickers {
			t.Fatalf("Ticker length %d out of bounds after %q", n, c)
		}
	}
}

func TestAdvanceReportsPushedToken(t *testing.T) {
	s := NewState()

	s, token, ok := Advance(s, press("ShiftLeft"))
	if !ok || token != "Shift" {
		t.Errorf("Expected Shift to be pushed, got %q %v", token, ok)
	}

	// The tickers compare equal afterwards, but it is still a push.
	full := run(NewState(), char("x"), char("x"), char("x"), char("x"), char("x"))
	_, token, ok = Advance(full, char("x"))
	if !ok || token != "x" {
		t.Errorf("Expected x to be pushed onto a full ticker, got %q %v", token, ok)
	}

	next, _, ok := Advance(s, release("ShiftLeft"))
	if ok {
		t.Error("A release must not push a token")
	}
	if !slices.Equal(next.Tickers, s.Tickers) || next.Active("Shift") {
		t.Errorf("Unexpected state after release: %+v", next)
	}
}
