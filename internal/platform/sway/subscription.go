package sway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ipc "github.com/joshuarubin/go-sway"

	"github.com/mj1618/autotiling/internal/model"
	"github.com/mj1618/autotiling/internal/platform"
)

type item struct {
	ev  platform.Event
	err error
}

// Subscription turns go-sway's callback stream into blocking Next calls.
// Handlers block until Next takes the event, so delivery order is kept.
type Subscription struct {
	items  chan item
	cancel context.CancelFunc

	// done is closed when sway.Subscribe returns; err holds its result.
	done chan struct{}
	err  error

	closeOnce sync.Once
	closed    chan struct{}
}

func subscribe(parent context.Context, types []ipc.EventType) *Subscription {
	ctx, cancel := context.WithCancel(parent)
	s := &Subscription{
		items:  make(chan item),
		cancel: cancel,
		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}
	h := handler{EventHandler: ipc.NoOpEventHandler(), sub: s}
	go func() {
		defer close(s.done)
		s.err = ipc.Subscribe(ctx, h, types...)
	}()
	return s
}

// Next blocks until the next event.
func (s *Subscription) Next() (platform.Event, error) {
	select {
	case it := <-s.items:
		return it.ev, it.err
	case <-s.closed:
		return platform.Event{}, platform.ErrSessionClosed
	case <-s.done:
		if s.err != nil && !errors.Is(s.err, context.Canceled) {
			return platform.Event{}, fmt.Errorf("%w: %v", platform.ErrSessionClosed, s.err)
		}
		return platform.Event{}, platform.ErrSessionClosed
	}
}

// Close ends the subscription. It does not wait for the connection to drain.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	s.cancel()
	return nil
}

func (s *Subscription) send(ctx context.Context, it item) {
	select {
	case s.items <- it:
	case <-s.closed:
	case <-ctx.Done():
	}
}

type handler struct {
	ipc.EventHandler
	sub *Subscription
}

func (h handler) Window(ctx context.Context, e ipc.WindowEvent) {
	var c model.Node
	if err := convert(e.Container, &c); err != nil {
		h.sub.send(ctx, item{err: &platform.MalformedEventError{Kind: platform.EventWindow, Err: err}})
		return
	}
	h.sub.send(ctx, item{ev: platform.Event{Kind: platform.EventWindow, Change: string(e.Change), Container: &c}})
}

func (h handler) Shutdown(ctx context.Context, _ ipc.ShutdownEvent) {
	h.sub.send(ctx, item{err: platform.ErrSessionClosed})
}
