package autotile

import (
	"fmt"
	"math"
	"slices"

	"github.com/mj1618/autotiling/internal/model"
)

// DefaultRatio is the height/width threshold above which a window is split
// vertically.
const DefaultRatio = 0.4

// Action is the outcome of a decision.
type Action string

const (
	// ActionIgnore: the focused window is in a state we never touch.
	ActionIgnore Action = "ignore"
	// ActionFiltered: the focused workspace is not in the configured set.
	ActionFiltered Action = "filtered"
	// ActionKeep: the parent already has the chosen layout.
	ActionKeep Action = "keep"
	// ActionSplit: a layout command must be sent.
	ActionSplit Action = "split"
)

// Decision describes what should happen for one tree snapshot.
type Decision struct {
	Action    Action       `yaml:"action"              json:"action"`
	Focused   model.NodeID `yaml:"focused"             json:"focused"`
	Parent    model.NodeID `yaml:"parent,omitempty"    json:"parent,omitempty"`
	Workspace *int         `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Current   model.Layout `yaml:"current,omitempty"   json:"current,omitempty"`
	Layout    model.Layout `yaml:"layout,omitempty"    json:"layout,omitempty"`
	Ratio     float64      `yaml:"ratio,omitempty"     json:"ratio,omitempty"`
	Command   string       `yaml:"command,omitempty"   json:"command,omitempty"`
	Reason    string       `yaml:"reason"              json:"reason"`
}

// Options tunes the policy.
type Options struct {
	// Ratio is the height/width threshold; windows with a larger ratio get
	// a vertical split.
	Ratio float64
	// Workspaces restricts the policy to these workspace numbers. Empty
	// means all workspaces.
	Workspaces []int
}

// Ignored reports whether the focused node is in a state the policy leaves
// alone, with the reason.
func Ignored(n *model.Node) (bool, string) {
	switch {
	case n.Layout == model.LayoutStacked:
		return true, "focused container is stacked"
	case n.Layout == model.LayoutTabbed:
		return true, "focused container is tabbed"
	case n.Type == model.NodeFloatingWindow:
		return true, "focused window is floating"
	case n.Percent != nil && *n.Percent > 1.0:
		return true, "focused window is fullscreen"
	}
	return false, ""
}

// ChooseLayout picks the split orientation for parent given the focused
// window's geometry.
func ChooseLayout(focused, parent *model.Node, ratio float64) (model.Layout, string) {
	if parent.Type == model.NodeWorkspace && len(parent.Nodes) == 1 {
		return model.LayoutSplitH, "only window on its workspace"
	}
	r := focused.Rect.Ratio()
	if r > ratio {
		return model.LayoutSplitV, fmt.Sprintf("height/width %.3f > %.3f", r, ratio)
	}
	return model.LayoutSplitH, fmt.Sprintf("height/width %.3f <= %.3f", r, ratio)
}

// Evaluate resolves the focused node and its parent in root and decides what
// to do. It never talks to the compositor.
func Evaluate(root *model.Node, opts Options) (Decision, error) {
	focused, err := model.Focused(root)
	if err != nil {
		return Decision{}, &ResolutionError{Err: err}
	}
	d := Decision{Focused: focused.ID}
	// Zero-width windows give +Inf, which JSON cannot carry.
	if r := focused.Rect.Ratio(); !math.IsInf(r, 0) && !math.IsNaN(r) {
		d.Ratio = r
	}

	if len(opts.Workspaces) > 0 {
		num, ok := 0, false
		if ws := model.FocusedWorkspace(root); ws != nil {
			num, ok = ws.WorkspaceNum()
		}
		if ok {
			d.Workspace = &num
		}
		if !ok || !slices.Contains(opts.Workspaces, num) {
			d.Action = ActionFiltered
			d.Reason = "workspace not in the configured set"
			return d, nil
		}
	}

	// Ignored windows are checked before the parent lookup: a floating
	// window has no tiling parent and must not surface as an error.
	if skip, why := Ignored(focused); skip {
		d.Action = ActionIgnore
		d.Reason = why
		return d, nil
	}

	parent, err := model.ParentOf(root, focused)
	if err != nil {
		return Decision{}, &ResolutionError{Err: fmt.Errorf("node %d: %w", focused.ID, err)}
	}
	d.Parent = parent.ID
	d.Current = parent.Layout

	layout, why := ChooseLayout(focused, parent, opts.Ratio)
	return plan(d, parent, layout, why)
}
