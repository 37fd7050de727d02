package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/spf13/cobra"
)

// runDaemon handles focus events until the session ends or the process is
// signalled.
func runDaemon(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := connect(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	if v, err := session.Version(ctx); err != nil {
		logger.Warn("could not read compositor version", "error", err)
	} else {
		logger.Info("connected", "compositor", v)
	}

	engine, err := autotile.New(session, logger, policyOptions(), cfg.DryRun)
	if err != nil {
		return err
	}
	return engine.Run(ctx)
}
