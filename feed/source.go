package feed

import (
	"context"
	"errors"

	"KeyTicker/ticker"
)

// ErrUnsupported is returned by sources that cannot run on this platform.
var ErrUnsupported = errors.New("feed source not supported on this platform")

// Source is a producer of raw keyboard notifications.
type Source interface {
	// Start begins capturing and returns the channel events are delivered on.
	// The channel is closed once the source has stopped producing.
	Start(ctx context.Context) (<-chan ticker.RawEvent, error)

	// Stop releases the underlying device or listener.
	Stop() error
}
