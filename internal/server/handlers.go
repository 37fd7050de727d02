package server

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/output"
)

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	text, err := output.YAMLString(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) handleTree(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	focused := boolParam(request.GetArguments(), "focused", false)

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	root, err := s.session.Tree(ctx)
	if err != nil {
		return mcp.NewToolResultError((&autotile.TreeFetchError{Err: err}).Error()), nil
	}
	ts := time.Now().Unix()
	if !focused {
		return textResult(output.TreeResult{TS: ts, Root: root})
	}
	r, err := output.NewFocusResult(root, ts)
	if err != nil {
		return mcp.NewToolResultError((&autotile.ResolutionError{Err: err}).Error()), nil
	}
	return textResult(r)
}

func (s *Server) handlePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := s.opts
	opts.Ratio = floatParam(request.GetArguments(), "ratio", s.opts.Ratio)
	if err := autotile.ValidateRatio(opts.Ratio); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	d, err := s.engine.PlanWith(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(output.PlanResult{TS: time.Now().Unix(), Threshold: opts.Ratio, Decision: d})
}

func (s *Server) handleApply(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	d, err := s.engine.Apply(ctx)
	if err != nil {
		s.logger.Error("apply failed", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(output.PlanResult{TS: time.Now().Unix(), Threshold: s.opts.Ratio, Decision: d})
}
