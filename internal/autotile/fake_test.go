package autotile

import (
	"context"
	"errors"
	"sync"

	"github.com/mj1618/autotiling/internal/model"
	"github.com/mj1618/autotiling/internal/platform"
)

// fakeSession serves a fixed tree and records commands. Applying a split
// command updates the focused parent's layout the way the compositor would.
type fakeSession struct {
	mu       sync.Mutex
	tree     func() *model.Node
	treeErr  error
	cmdErr   error
	commands []string
	current  *model.Node
	feed     chan subItem
	subErr   error
}

// subItem is one result of Subscription.Next.
type subItem struct {
	ev  platform.Event
	err error
}

func newFakeSession(tree func() *model.Node) *fakeSession {
	return &fakeSession{tree: tree, feed: make(chan subItem, 16)}
}

func (f *fakeSession) Tree(context.Context) (*model.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.treeErr != nil {
		return nil, f.treeErr
	}
	if f.current == nil {
		f.current = f.tree()
	}
	return f.current, nil
}

func (f *fakeSession) RunCommand(_ context.Context, command string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.commands = append(f.commands, command)
	if f.current == nil {
		return nil
	}
	focused, err := model.Focused(f.current)
	if err != nil {
		return nil
	}
	parent, err := model.ParentOf(f.current, focused)
	if err != nil {
		return nil
	}
	switch command {
	case "splith":
		parent.Layout = model.LayoutSplitH
	case "splitv":
		parent.Layout = model.LayoutSplitV
	}
	return nil
}

func (f *fakeSession) Subscribe(context.Context, ...platform.EventKind) (platform.Subscription, error) {
	if f.subErr != nil {
		return nil, f.subErr
	}
	return &fakeSubscription{feed: f.feed, done: make(chan struct{})}, nil
}

func (f *fakeSession) push(ev platform.Event) { f.feed <- subItem{ev: ev} }

func (f *fakeSession) pushErr(err error) { f.feed <- subItem{err: err} }

func (f *fakeSession) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.commands...)
}

type fakeSubscription struct {
	feed chan subItem
	once sync.Once
	done chan struct{}
}

func (s *fakeSubscription) Next() (platform.Event, error) {
	select {
	case it, ok := <-s.feed:
		if !ok {
			return platform.Event{}, platform.ErrSessionClosed
		}
		return it.ev, it.err
	case <-s.done:
		return platform.Event{}, errors.New("use of closed subscription")
	}
}

func (s *fakeSubscription) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

// twoWindowTree is workspace 1 holding two tiling windows side by side, the
// second focused. The focused window is width x height; the workspace layout
// is parentLayout.
func twoWindowTree(width, height int, parentLayout model.Layout) *model.Node {
	a := &model.Node{ID: 10, Type: model.NodeContainer, Layout: model.LayoutNone, Rect: model.Rect{Width: width, Height: height}}
	b := &model.Node{ID: 11, Type: model.NodeContainer, Layout: model.LayoutNone, Rect: model.Rect{Width: width, Height: height}, Focused: true}
	ws := &model.Node{ID: 4, Type: model.NodeWorkspace, Num: intp(1), Layout: parentLayout,
		Focus: []model.NodeID{11, 10}, Nodes: []*model.Node{a, b}}
	out := &model.Node{ID: 3, Type: model.NodeOutput, Layout: model.LayoutOutput, Focus: []model.NodeID{4}, Nodes: []*model.Node{ws}}
	return &model.Node{ID: 1, Type: model.NodeRoot, Focus: []model.NodeID{3}, Nodes: []*model.Node{out}}
}

// focusedOf returns the focused node of tree, panicking if there is none.
func focusedOf(tree *model.Node) *model.Node {
	n, err := model.Focused(tree)
	if err != nil {
		panic(err)
	}
	return n
}
