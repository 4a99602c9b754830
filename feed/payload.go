// Package feed connects the display engine to a source of raw keyboard
// notifications. A Source produces ticker.RawEvent values; Subscribe
// delivers them one at a time, in order, to a single handler.
package feed

import (
	"encoding/json"
	"errors"
	"fmt"

	"KeyTicker/ticker"
)

// ErrMalformed is returned for notifications that do not carry a valid mode
// and a non-empty message. Such notifications are dropped at the boundary.
var ErrMalformed = errors.New("malformed key notification")

// Payload is the wire form of a key notification as sent by the keyboard
// hook process.
type Payload struct {
	Mode    *string `json:"mode"`
	Message *string `json:"message"`
}

// Decode parses and validates one JSON notification.
func Decode(data []byte) (ticker.RawEvent, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return ticker.RawEvent{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return p.Event()
}

// Event validates p and converts it to a RawEvent.
func (p Payload) Event() (ticker.RawEvent, error) {
	if p.Mode == nil {
		return ticker.RawEvent{}, fmt.Errorf("%w: missing mode", ErrMalformed)
	}
	if p.Message == nil || *p.Message == "" {
		return ticker.RawEvent{}, fmt.Errorf("%w: missing message", ErrMalformed)
	}
	kind, err := ticker.ParseKind(*p.Mode)
	if err != nil {
		return ticker.RawEvent{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ticker.RawEvent{Kind: kind, Code: *p.Message}, nil
}
