package platform

import (
	"fmt"

	"github.com/mj1618/autotiling/internal/model"
)

// EventKind is a subscribable event category.
type EventKind int

const (
	EventOther EventKind = iota
	EventWindow
	EventShutdown
)

// String returns the name the compositor uses for the event type.
func (k EventKind) String() string {
	switch k {
	case EventWindow:
		return "window"
	case EventShutdown:
		return "shutdown"
	default:
		return "other"
	}
}

// ChangeFocus is the change reason of a window event that moved focus.
const ChangeFocus = "focus"

// Event is a decoded compositor event.
type Event struct {
	Kind   EventKind
	Change string
	// Container is the node attached to a window event. Its geometry may be
	// stale; decisions must use a fresh Tree instead.
	Container *model.Node
}

// IsFocusChange reports whether e is a window focus event.
func (e Event) IsFocusChange() bool {
	return e.Kind == EventWindow && e.Change == ChangeFocus
}

// MalformedEventError is returned by Subscription.Next for an event whose
// payload could not be decoded. The stream stays usable.
type MalformedEventError struct {
	Kind EventKind
	Err  error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed %s event: %v", e.Kind, e.Err)
}

func (e *MalformedEventError) Unwrap() error { return e.Err }
