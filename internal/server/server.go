// Package server exposes the autotiling decision as MCP tools so agents can
// inspect the focus tree, preview a split and apply it.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server with the compositor session. Tool calls are
// serialized so decisions never interleave.
type Server struct {
	engine    *autotile.Engine
	session   autotile.Session
	opts      autotile.Options
	logger    *slog.Logger
	sessionMu sync.Mutex
	mcp       *mcpserver.MCPServer
}

// New creates an MCP server bound to session.
func New(session autotile.Session, logger *slog.Logger, opts autotile.Options, dryRun bool) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	engine, err := autotile.New(session, logger, opts, dryRun)
	if err != nil {
		return nil, err
	}
	s := &Server{
		engine:  engine,
		session: session,
		opts:    opts,
		logger:  logger,
		mcp:     mcpserver.NewMCPServer("autotiling", version.Version),
	}
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Return the compositor layout tree. With focused=true, only the focused window, its parent container and its workspace."),
			mcp.WithBoolean("focused", mcp.Description("Only return the focused node, its parent and workspace")),
		),
		s.handleTree,
	)

	s.mcp.AddTool(
		mcp.NewTool("plan",
			mcp.WithDescription("Preview the split the autotiler would apply to the focused container, without changing anything"),
			mcp.WithNumber("ratio", mcp.Description("Height/width threshold above which a vertical split is chosen (default: configured ratio)")),
		),
		s.handlePlan,
	)

	s.mcp.AddTool(
		mcp.NewTool("apply",
			mcp.WithDescription("Run one autotiling decision now and send the split command if the layout differs"),
		),
		s.handleApply,
	)
}
