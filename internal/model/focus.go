package model

import "errors"

// ErrNoFocus is returned when the focus path ends before a match.
var ErrNoFocus = errors.New("no focused node in tree")

// ErrNoParent is returned when the focused node has no tiling parent on
// the focus path.
var ErrNoParent = errors.New("focused node has no parent")

// FindFocused descends the focus path from n and returns the first node
// for which match reports true. At each level the first entry of Focus
// selects the child to continue with; the walk stops with nil when Focus is
// empty or names a child that is not present.
func FindFocused(n *Node, match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	if len(n.Focus) == 0 {
		return nil
	}
	next := n.child(n.Focus[0])
	if next == nil {
		return nil
	}
	return FindFocused(next, match)
}

// Focused returns the focused node of the tree rooted at root.
func Focused(root *Node) (*Node, error) {
	n := FindFocused(root, func(n *Node) bool { return n.Focused })
	if n == nil {
		return nil, ErrNoFocus
	}
	return n, nil
}

// ParentOf returns the node on the focus path that holds target as a direct
// tiling child.
func ParentOf(root, target *Node) (*Node, error) {
	p := FindFocused(root, func(n *Node) bool { return n.HasTilingChild(target.ID) })
	if p == nil {
		return nil, ErrNoParent
	}
	return p, nil
}

// FocusedWorkspace returns the last workspace crossed on the way to the
// focused node, or nil if the focus path never passes through one.
func FocusedWorkspace(root *Node) *Node {
	var ws *Node
	focused := FindFocused(root, func(n *Node) bool {
		if n.Type == NodeWorkspace {
			ws = n
		}
		return n.Focused
	})
	if focused == nil {
		return nil
	}
	return ws
}
