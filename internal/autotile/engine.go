package autotile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mj1618/autotiling/internal/model"
	"github.com/mj1618/autotiling/internal/platform"
)

// Session is the part of platform.Session the engine uses.
type Session interface {
	CommandRunner
	Tree(ctx context.Context) (*model.Node, error)
	Subscribe(ctx context.Context, kinds ...platform.EventKind) (platform.Subscription, error)
}

// Engine runs one decision per focus event against a compositor session.
type Engine struct {
	session Session
	logger  *slog.Logger
	opts    Options
	dryRun  bool
}

// New creates an engine. With dryRun set, decisions are logged but no
// command is sent.
func New(session Session, logger *slog.Logger, opts Options, dryRun bool) (*Engine, error) {
	if err := ValidateRatio(opts.Ratio); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{session: session, logger: logger, opts: opts, dryRun: dryRun}, nil
}

// ValidateRatio rejects thresholds no window ratio can be compared with.
// Zero is allowed: every window with a non-zero height then gets splitv.
func ValidateRatio(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return fmt.Errorf("invalid ratio %v: must be a finite number >= 0", r)
	}
	return nil
}

// Plan fetches a fresh tree and evaluates it without dispatching.
func (e *Engine) Plan(ctx context.Context) (Decision, error) {
	return e.PlanWith(ctx, e.opts)
}

// PlanWith is Plan with explicit options, for one-off previews.
func (e *Engine) PlanWith(ctx context.Context, opts Options) (Decision, error) {
	tree, err := e.session.Tree(ctx)
	if err != nil {
		return Decision{}, &TreeFetchError{Err: err}
	}
	return Evaluate(tree, opts)
}

// Apply runs one full decision cycle: fetch, evaluate, dispatch.
func (e *Engine) Apply(ctx context.Context) (Decision, error) {
	d, err := e.Plan(ctx)
	if err != nil {
		return Decision{}, err
	}
	if d.Action != ActionSplit {
		e.logger.Debug("no layout change", "action", d.Action, "focused", d.Focused, "reason", d.Reason)
		return d, nil
	}
	if e.dryRun {
		e.logger.Info("dry-run: would dispatch", "command", d.Command, "focused", d.Focused, "parent", d.Parent, "reason", d.Reason)
		return d, nil
	}
	if err := Dispatch(ctx, e.session, d); err != nil {
		return d, err
	}
	e.logger.Info("dispatched", "command", d.Command, "focused", d.Focused, "parent", d.Parent, "reason", d.Reason)
	return d, nil
}

// Handle processes one event. Only window focus changes trigger a decision.
func (e *Engine) Handle(ctx context.Context, ev platform.Event) error {
	if !ev.IsFocusChange() {
		return nil
	}
	if ev.Container != nil {
		e.logger.Debug("focus changed", "container", ev.Container.ID)
	}
	// The container attached to the event can carry stale geometry, so the
	// decision always works from a fresh tree.
	_, err := e.Apply(ctx)
	return err
}

// Run subscribes to window events and handles them in delivery order until
// ctx is cancelled or the session ends. Per-event errors are logged and the
// loop continues; losing the event stream is returned as an error.
func (e *Engine) Run(ctx context.Context) error {
	sub, err := e.session.Subscribe(ctx, platform.EventWindow)
	if err != nil {
		return fmt.Errorf("subscribing to window events: %w", err)
	}
	defer sub.Close()

	stop := context.AfterFunc(ctx, func() { sub.Close() })
	defer stop()

	e.logger.Info("autotiling started", "ratio", e.opts.Ratio, "workspaces", e.opts.Workspaces, "dry_run", e.dryRun)
	for {
		ev, err := sub.Next()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var malformed *platform.MalformedEventError
			if errors.As(err, &malformed) {
				e.logger.Warn("skipping event", "error", err)
				continue
			}
			if errors.Is(err, platform.ErrSessionClosed) {
				return err
			}
			return fmt.Errorf("reading events: %w", err)
		}
		if err := e.Handle(ctx, ev); err != nil {
			e.logger.Error("decision failed", "stage", stage(err), "error", err)
		}
	}
}

func stage(err error) string {
	var (
		fetch    *TreeFetchError
		resolve  *ResolutionError
		dispatch *DispatchError
	)
	switch {
	case errors.As(err, &fetch):
		return "fetch"
	case errors.As(err, &resolve):
		return "resolve"
	case errors.As(err, &dispatch):
		return "dispatch"
	default:
		return "unknown"
	}
}
