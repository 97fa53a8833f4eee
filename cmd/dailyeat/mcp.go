package main

import (
	"context"

	"github.com/spf13/cobra"

	"dailyeat/internal/cli"
	"dailyeat/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the dailyeat MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes the food catalog,
today's tracker and the calendar as MCP tools via STDIO.

Logs are written to stderr so they never mix with the protocol stream.

Example:

  dailyeat mcp --db ./data/dailyeat.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			return mcp.NewServer(version, app.Tracker, app.History, app.Logger).Start()
		})
	},
}
