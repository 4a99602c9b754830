package feed

import (
	"errors"
	"testing"

	"KeyTicker/ticker"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ticker.RawEvent
	}{
		{"some", `{"mode":"Some","message":"a"}`, ticker.RawEvent{Kind: ticker.CharacterOnly, Code: "a"}},
		{"press", `{"mode":"KeyPress","message":"ShiftLeft"}`, ticker.RawEvent{Kind: ticker.KeyPress, Code: "ShiftLeft"}},
		{"release", `{"mode":"KeyRelease","message":"ShiftLeft"}`, ticker.RawEvent{Kind: ticker.KeyRelease, Code: "ShiftLeft"}},
		{"control char", `{"mode":"Some","message":"\u0003"}`, ticker.RawEvent{Kind: ticker.CharacterOnly, Code: "\x03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, data := range []string{
		`{"message":"a"}`,
		`{"mode":"Some"}`,
		`{"mode":"Some","message":""}`,
		`{"mode":"KeyHold","message":"a"}`,
		`{"mode":null,"message":"a"}`,
		`not json`,
	} {
		if _, err := Decode([]byte(data)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Decode(%s): expected ErrMalformed, got %v", data, err)
		}
	}
}
