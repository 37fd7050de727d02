package cmd

import (
	"context"
	"fmt"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/platform"
	"github.com/spf13/cobra"
)

// commandContext returns cmd's context, or Background when the command is
// invoked outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// policyOptions builds the policy options from the resolved config.
func policyOptions() autotile.Options {
	return autotile.Options{
		Ratio:      cfg.Ratio,
		Workspaces: cfg.Workspaces,
	}
}

// connect opens a compositor session on the configured socket.
func connect(ctx context.Context) (platform.Session, error) {
	session, err := platform.Connect(ctx, cfg.Socket)
	if err != nil {
		return nil, fmt.Errorf("connecting to compositor: %w", err)
	}
	return session, nil
}
