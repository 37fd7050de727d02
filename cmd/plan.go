package cmd

import (
	"time"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/output"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the split that would be applied to the focused container",
	Long: `Run one decision against the current tree and print it without sending any
command. The decision action is one of:

  split     the parent's layout differs; command holds what would be sent
  keep      the parent already has the chosen layout
  ignore    the focused window is stacked, tabbed, floating or fullscreen
  filtered  the focused workspace is not in the --workspace set`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	session, err := connect(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	engine, err := autotile.New(session, logger, policyOptions(), true)
	if err != nil {
		return err
	}
	d, err := engine.Plan(ctx)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), output.PlanResult{
		TS:        time.Now().Unix(),
		Threshold: cfg.Ratio,
		Decision:  d,
	})
}
