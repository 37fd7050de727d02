package model

import "strconv"

// NodeID identifies a node within one tree snapshot.
type NodeID int64

// NodeType is the kind of element a node represents in the compositor tree.
type NodeType string

const (
	NodeRoot           NodeType = "root"
	NodeOutput         NodeType = "output"
	NodeWorkspace      NodeType = "workspace"
	NodeContainer      NodeType = "con"
	NodeFloatingWindow NodeType = "floating_con"
)

// Layout is the arrangement a container applies to its children.
type Layout string

const (
	LayoutSplitH  Layout = "splith"
	LayoutSplitV  Layout = "splitv"
	LayoutStacked Layout = "stacked"
	LayoutTabbed  Layout = "tabbed"
	LayoutOutput  Layout = "output"
	LayoutNone    Layout = "none"
)

// IsSplit reports whether l is one of the two split orientations.
func (l Layout) IsSplit() bool {
	return l == LayoutSplitH || l == LayoutSplitV
}

// Rect is a screen region in compositor coordinates.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Node is one element of a GET_TREE snapshot: root, output, workspace,
// split container, window or floating window. A snapshot is a copy taken at
// one point in time and is never refreshed in place.
type Node struct {
	ID            NodeID   `yaml:"id"                       json:"id"`
	Name          string   `yaml:"name,omitempty"           json:"name,omitempty"`
	Type          NodeType `yaml:"type"                     json:"type"`
	Layout        Layout   `yaml:"layout"                   json:"layout"`
	Rect          Rect     `yaml:"rect"                     json:"rect"`
	Percent       *float64 `yaml:"percent,omitempty"        json:"percent,omitempty"`
	Focused       bool     `yaml:"focused,omitempty"        json:"focused"`
	Focus         []NodeID `yaml:"focus,omitempty"          json:"focus"`
	Num           *int     `yaml:"num,omitempty"            json:"num,omitempty"`
	AppID         string   `yaml:"app_id,omitempty"         json:"app_id,omitempty"`
	Fullscreen    int      `yaml:"fullscreen_mode,omitempty" json:"fullscreen_mode,omitempty"`
	Nodes         []*Node  `yaml:"nodes,omitempty"          json:"nodes"`
	FloatingNodes []*Node  `yaml:"floating_nodes,omitempty" json:"floating_nodes"`
}

// Ratio returns height divided by width as a float. A zero width yields
// +Inf (or NaN for a zero-sized rect).
func (r Rect) Ratio() float64 {
	return float64(r.Height) / float64(r.Width)
}

// WorkspaceNum returns the workspace number of n. When the tree carries no
// num, it is read from the leading digits of the name, as in "2:web".
func (n *Node) WorkspaceNum() (int, bool) {
	if n.Type != NodeWorkspace {
		return 0, false
	}
	if n.Num != nil {
		return *n.Num, *n.Num >= 0
	}
	digits := n.Name
	for i, r := range n.Name {
		if r < '0' || r > '9' {
			digits = n.Name[:i]
			break
		}
	}
	num, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return num, true
}

// HasTilingChild reports whether id is one of n's direct tiling children.
func (n *Node) HasTilingChild(id NodeID) bool {
	for _, c := range n.Nodes {
		if c.ID == id {
			return true
		}
	}
	return false
}

// child returns the direct child with the given id, searching tiling
// children before floating ones.
func (n *Node) child(id NodeID) *Node {
	for _, c := range n.Nodes {
		if c.ID == id {
			return c
		}
	}
	for _, c := range n.FloatingNodes {
		if c.ID == id {
			return c
		}
	}
	return nil
}
