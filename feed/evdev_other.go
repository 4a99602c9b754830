//go:build !linux

package feed

import (
	"context"

	"KeyTicker/ticker"
)

// EvdevSource is only available on Linux.
type EvdevSource struct{}

// NewEvdevSource returns a source that always fails to start.
func NewEvdevSource(string) *EvdevSource {
	return &EvdevSource{}
}

// Start implements Source.
func (s *EvdevSource) Start(context.Context) (<-chan ticker.RawEvent, error) {
	return nil, ErrUnsupported
}

// Stop implements Source.
func (s *EvdevSource) Stop() error {
	return nil
}
