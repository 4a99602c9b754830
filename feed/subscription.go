package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"KeyTicker/ticker"
)

// Handler receives notifications one at a time.
type Handler func(ticker.RawEvent)

// Subscription delivers the events of one Source to one Handler on a single
// goroutine, in the order the source produced them.
type Subscription struct {
	id      string
	src     Source
	events  <-chan ticker.RawEvent
	handler Handler

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
	stopErr  error
}

// Subscribe starts src and begins delivering its events to h. A start
// failure is returned as is; there is no retry.
func Subscribe(ctx context.Context, src Source, h Handler) (*Subscription, error) {
	events, err := src.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start feed: %w", err)
	}

	s := &Subscription{
		id:      uuid.NewString(),
		src:     src,
		events:  events,
		handler: h,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	slog.Info("feed subscribed", "subscription", s.id)
	go s.loop(ctx)
	return s, nil
}

// ID returns the unique identifier of the subscription.
func (s *Subscription) ID() string {
	return s.id
}

// Done is closed once no more events will be delivered.
func (s *Subscription) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Subscription) loop(ctx context.Context) {
	defer close(s.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case ev, ok := <-s.events:
			if !ok {
				slog.Info("feed closed", "subscription", s.id)
				return
			}
			// Stop may have raced with a pending event.
			select {
			case <-s.stopCh:
				return
			default:
			}
			s.handler(ev)
		}
	}
}

// Unsubscribe stops delivery and stops the source. After it returns the
// handler is not called again. It must not be called from the handler.
func (s *Subscription) Unsubscribe() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.stopErr = s.src.Stop()
		slog.Info("feed unsubscribed", "subscription", s.id)
	})
	return s.stopErr
}
