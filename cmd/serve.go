package cmd

import (
	"fmt"

	"github.com/mj1618/autotiling/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing tree, plan and apply tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the autotiling
decision as tools. Agents can inspect the focused container, preview the
split and apply it.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  autotiling serve
  autotiling serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	session, err := connect(commandContext(cmd))
	if err != nil {
		return err
	}
	defer session.Close()

	srv, err := server.New(session, logger, policyOptions(), cfg.DryRun)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.Serve(server.Config{Transport: transport, Port: port})
}
