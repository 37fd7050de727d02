package cmd

import (
	"time"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/output"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the compositor layout tree",
	Long:  "Fetch a snapshot of the layout tree. With --focused, print only the focused window, its parent container and its workspace.",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Bool("focused", false, "Only print the focused node, its parent and workspace")
}

func runTree(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	focused, _ := cmd.Flags().GetBool("focused")

	session, err := connect(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	root, err := session.Tree(ctx)
	if err != nil {
		return &autotile.TreeFetchError{Err: err}
	}
	ts := time.Now().Unix()
	if !focused {
		return output.Fprint(cmd.OutOrStdout(), output.TreeResult{TS: ts, Root: root})
	}
	r, err := output.NewFocusResult(root, ts)
	if err != nil {
		return &autotile.ResolutionError{Err: err}
	}
	return output.Fprint(cmd.OutOrStdout(), r)
}
