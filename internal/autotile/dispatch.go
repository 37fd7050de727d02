package autotile

import (
	"context"
	"fmt"

	"github.com/mj1618/autotiling/internal/model"
)

// CommandRunner sends a command to the compositor.
type CommandRunner interface {
	RunCommand(ctx context.Context, command string) error
}

// CommandFor returns the compositor command that sets l on the focused
// container.
func CommandFor(l model.Layout) (string, error) {
	switch l {
	case model.LayoutSplitH:
		return "splith", nil
	case model.LayoutSplitV:
		return "splitv", nil
	default:
		return "", fmt.Errorf("no split command for layout %q", l)
	}
}

// plan fills in the dispatch part of d: keep when the parent already has
// layout, split otherwise.
func plan(d Decision, parent *model.Node, layout model.Layout, why string) (Decision, error) {
	d.Layout = layout
	d.Reason = why
	if parent.Layout == layout {
		d.Action = ActionKeep
		return d, nil
	}
	cmd, err := CommandFor(layout)
	if err != nil {
		return Decision{}, err
	}
	d.Action = ActionSplit
	d.Command = cmd
	return d, nil
}

// Dispatch sends d's command when it calls for a split. Failures are
// returned as *DispatchError and are not retried.
func Dispatch(ctx context.Context, r CommandRunner, d Decision) error {
	if d.Action != ActionSplit {
		return nil
	}
	if err := r.RunCommand(ctx, d.Command); err != nil {
		return &DispatchError{Command: d.Command, Err: err}
	}
	return nil
}
