package model

func intp(v int) *int { return &v }

// sampleTree builds root > output > workspace 1 > [win 10, con 20 > [win 21, win 22]]
// with focus on window 22 and a floating window 30 on the workspace.
func sampleTree() *Node {
	w22 := &Node{ID: 22, Type: NodeContainer, Layout: LayoutNone, Rect: Rect{Width: 400, Height: 300}, Focused: true}
	w21 := &Node{ID: 21, Type: NodeContainer, Layout: LayoutNone, Rect: Rect{Width: 400, Height: 300}}
	con := &Node{ID: 20, Type: NodeContainer, Layout: LayoutSplitV, Focus: []NodeID{22, 21}, Nodes: []*Node{w21, w22}}
	w10 := &Node{ID: 10, Type: NodeContainer, Layout: LayoutNone, Rect: Rect{Width: 800, Height: 600}}
	float := &Node{ID: 30, Type: NodeFloatingWindow, Layout: LayoutNone}
	ws := &Node{ID: 3, Type: NodeWorkspace, Name: "1", Num: intp(1), Layout: LayoutSplitH,
		Focus: []NodeID{20, 10, 30}, Nodes: []*Node{w10, con}, FloatingNodes: []*Node{float}}
	out := &Node{ID: 2, Type: NodeOutput, Name: "eDP-1", Layout: LayoutOutput, Focus: []NodeID{3}, Nodes: []*Node{ws}}
	return &Node{ID: 1, Type: NodeRoot, Name: "root", Focus: []NodeID{2}, Nodes: []*Node{out}}
}
