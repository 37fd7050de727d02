package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/config"
	"github.com/mj1618/autotiling/internal/output"
	"github.com/mj1618/autotiling/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autotiling",
	Short: "Alternate split orientation automatically in sway and i3",
	Long: `Listen for window focus changes and set the split orientation of the focused
container from the focused window's aspect ratio: windows taller than
ratio x width get a vertical split, all others a horizontal one.

Examples:
  autotiling
  autotiling --ratio 0.6 --workspace 1 --workspace 2
  autotiling plan
  autotiling tree --focused`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDaemon,
}

// cfg and logger are resolved once per invocation in PersistentPreRunE.
var (
	cfg    config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	flags := rootCmd.PersistentFlags()
	flags.Float64P("ratio", "r", autotile.DefaultRatio, "Height/width threshold above which windows get a vertical split")
	flags.IntSliceP("workspace", "w", nil, "Only autotile on this workspace number (repeatable)")
	flags.String("socket", "", "IPC socket path (default: $SWAYSOCK, then $I3SOCK)")
	flags.Bool("dry-run", false, "Log layout commands instead of sending them")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("config", "", "Config file (default: $XDG_CONFIG_HOME/autotiling/config.yaml)")
	flags.String("format", "yaml", "Output format for tree and plan: yaml, json")
	flags.Bool("pretty", false, "Pretty-print JSON output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: cfg.LogLevel,
		}))
		if cfg.File != "" {
			logger.Debug("loaded config", "file", cfg.File)
		}

		format, _ := cmd.Flags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = cmd.Flags().GetBool("pretty")
		return nil
	}
}
