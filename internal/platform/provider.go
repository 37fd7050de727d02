package platform

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned when no compositor backend is registered.
var ErrUnsupported = fmt.Errorf("autotiling has no compositor backend for %s/%s", runtime.GOOS, runtime.GOARCH)

// ErrSessionClosed signals that the event stream has ended.
var ErrSessionClosed = errors.New("compositor session closed")

// ConnectFunc is set by backend packages via init().
// See internal/platform/sway/init.go for the sway/i3 registration.
var ConnectFunc func(ctx context.Context, socketPath string) (Session, error)

// Connect opens a session with the registered backend.
func Connect(ctx context.Context, socketPath string) (Session, error) {
	if ConnectFunc == nil {
		return nil, ErrUnsupported
	}
	return ConnectFunc(ctx, socketPath)
}
