package cmd

import (
	"github.com/mj1618/yman/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing yman tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the yman
operations as tools: list_sessions, show_session, store_session,
restore_session, diff_session and remove_session.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  yman serve
  yman serve --transport streamable-http --port 8080`,
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

	return server.New(state).Serve(server.Config{
		Transport: transport,
		Port:      port,
	})
}
