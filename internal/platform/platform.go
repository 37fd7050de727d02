package platform

import (
	"context"

	"github.com/mj1618/autotiling/internal/model"
)

// Session is an open IPC session with the compositor.
type Session interface {
	// Tree fetches a fresh snapshot of the layout tree.
	Tree(ctx context.Context) (*model.Node, error)

	// RunCommand executes a compositor command against the currently
	// focused container.
	RunCommand(ctx context.Context, command string) error

	// Subscribe opens an event stream for the given event kinds.
	Subscribe(ctx context.Context, kinds ...EventKind) (Subscription, error)

	// Version returns a human-readable compositor version.
	Version(ctx context.Context) (string, error)

	Close() error
}

// Subscription yields compositor events in delivery order.
type Subscription interface {
	// Next blocks until the next event arrives. It returns
	// ErrSessionClosed once the compositor shuts down or Close is called,
	// and *MalformedEventError for a single undecodable event.
	Next() (Event, error)

	Close() error
}
