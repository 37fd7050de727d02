package sway

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	ipc "github.com/joshuarubin/go-sway"

	"github.com/mj1618/autotiling/internal/model"
	"github.com/mj1618/autotiling/internal/platform"
)

// CommandError is returned when the compositor rejects a command.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %s", e.Command, e.Message)
}

// Session is a platform.Session backed by a go-sway client. Each
// subscription opens its own connection.
type Session struct {
	socketPath string
	client     ipc.Client

	// ctx bounds the client connection and every subscription.
	ctx    context.Context
	cancel context.CancelFunc
}

// Connect dials the IPC socket. An empty socketPath falls back to SWAYSOCK
// and then I3SOCK.
func Connect(ctx context.Context, socketPath string) (*Session, error) {
	path, err := SocketPath(socketPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// go-sway dials $SWAYSOCK for the client and for each subscription.
	if err := os.Setenv("SWAYSOCK", path); err != nil {
		return nil, err
	}
	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	client, err := ipc.New(sctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}
	return &Session{socketPath: path, client: client, ctx: sctx, cancel: cancel}, nil
}

// SocketPath returns the socket this session is connected to.
func (s *Session) SocketPath() string {
	return s.socketPath
}

// Tree fetches the full layout tree.
func (s *Session) Tree(ctx context.Context) (*model.Node, error) {
	n, err := s.client.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_tree: %w", err)
	}
	var root model.Node
	if err := convert(n, &root); err != nil {
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return &root, nil
}

type commandReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RunCommand runs command and fails if any of its sub-commands fail.
func (s *Session) RunCommand(ctx context.Context, command string) error {
	replies, err := s.client.RunCommand(ctx, command)
	var decoded []commandReply
	if cerr := convert(replies, &decoded); cerr != nil && err == nil {
		return fmt.Errorf("decoding command reply: %w", cerr)
	}
	var msgs []string
	for _, r := range decoded {
		if !r.Success {
			msgs = append(msgs, r.Error)
		}
	}
	if len(msgs) > 0 {
		return &CommandError{Command: command, Message: strings.Join(msgs, "; ")}
	}
	if err != nil {
		return fmt.Errorf("run_command: %w", err)
	}
	return nil
}

type versionReply struct {
	HumanReadable string `json:"human_readable"`
}

// Version returns the compositor's human-readable version string.
func (s *Session) Version(ctx context.Context) (string, error) {
	v, err := s.client.GetVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("get_version: %w", err)
	}
	var r versionReply
	if err := convert(v, &r); err != nil {
		return "", fmt.Errorf("decoding version: %w", err)
	}
	return r.HumanReadable, nil
}

// Subscribe starts an event stream on a dedicated connection. Shutdown
// events are always subscribed so the stream ends with the compositor.
func (s *Session) Subscribe(ctx context.Context, kinds ...platform.EventKind) (platform.Subscription, error) {
	types := []ipc.EventType{ipc.EventTypeShutdown}
	for _, k := range kinds {
		switch k {
		case platform.EventWindow:
			types = append(types, ipc.EventTypeWindow)
		case platform.EventShutdown:
		default:
			return nil, fmt.Errorf("cannot subscribe to %v events", k)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return subscribe(s.ctx, types), nil
}

// Close ends the client connection and any open subscriptions.
func (s *Session) Close() error {
	defer s.cancel()
	if c, ok := s.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
