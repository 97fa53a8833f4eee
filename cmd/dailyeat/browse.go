package main

import (
	"context"

	"github.com/spf13/cobra"

	"dailyeat/internal/cli"
	"dailyeat/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the calendar in an interactive terminal UI",
	Long: `Opens the month browser.

Keys: left/right change month, t jumps to today, +/- step the calorie target,
q quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *cli.App) error {
			return tui.Run(ctx, app.History, app.Tracker)
		})
	},
}
