package output

import (
	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/model"
)

// NodeSummary is a node without its subtree.
type NodeSummary struct {
	ID       model.NodeID   `yaml:"id"                 json:"id"`
	Name     string         `yaml:"name,omitempty"     json:"name,omitempty"`
	Type     model.NodeType `yaml:"type"               json:"type"`
	Layout   model.Layout   `yaml:"layout"             json:"layout"`
	Rect     model.Rect     `yaml:"rect"               json:"rect"`
	Percent  *float64       `yaml:"percent,omitempty"  json:"percent,omitempty"`
	AppID    string         `yaml:"app_id,omitempty"   json:"app_id,omitempty"`
	Num      *int           `yaml:"num,omitempty"      json:"num,omitempty"`
	Children int            `yaml:"children"           json:"children"`
	Floating int            `yaml:"floating,omitempty" json:"floating,omitempty"`
}

// Summarize drops n's children, keeping their counts.
func Summarize(n *model.Node) NodeSummary {
	s := NodeSummary{
		ID:       n.ID,
		Name:     n.Name,
		Type:     n.Type,
		Layout:   n.Layout,
		Rect:     n.Rect,
		Percent:  n.Percent,
		AppID:    n.AppID,
		Children: len(n.Nodes),
		Floating: len(n.FloatingNodes),
	}
	if num, ok := n.WorkspaceNum(); ok {
		s.Num = &num
	}
	return s
}

// TreeResult is the output of `tree`.
type TreeResult struct {
	TS   int64       `yaml:"ts"   json:"ts"`
	Root *model.Node `yaml:"root" json:"root"`
}

// FocusResult is the output of `tree --focused`.
type FocusResult struct {
	TS        int64        `yaml:"ts"                  json:"ts"`
	Focused   NodeSummary  `yaml:"focused"             json:"focused"`
	Parent    *NodeSummary `yaml:"parent,omitempty"    json:"parent,omitempty"`
	Workspace *NodeSummary `yaml:"workspace,omitempty" json:"workspace,omitempty"`
}

// PlanResult is the output of `plan`.
type PlanResult struct {
	TS        int64             `yaml:"ts"        json:"ts"`
	Threshold float64           `yaml:"threshold" json:"threshold"`
	Decision  autotile.Decision `yaml:"decision"  json:"decision"`
}

// NewFocusResult resolves the focused node of root along with its parent
// and workspace, when present.
func NewFocusResult(root *model.Node, ts int64) (FocusResult, error) {
	focused, err := model.Focused(root)
	if err != nil {
		return FocusResult{}, err
	}
	r := FocusResult{TS: ts, Focused: Summarize(focused)}
	if parent, err := model.ParentOf(root, focused); err == nil {
		p := Summarize(parent)
		r.Parent = &p
	}
	if ws := model.FocusedWorkspace(root); ws != nil {
		w := Summarize(ws)
		r.Workspace = &w
	}
	return r, nil
}
