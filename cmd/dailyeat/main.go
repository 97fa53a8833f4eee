package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dailyeat/internal/backend"
	"dailyeat/internal/cli"
	"dailyeat/internal/config"
)

const version = "0.3.0"

var (
	backendFlag string
	dbPath      string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:     "dailyeat",
	Short:   "Track daily calories against a target and browse the month calendar.",
	Version: fmt.Sprintf("v%s", version),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dailyeat",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

// withApp loads configuration, applies flag overrides, bootstraps the shared
// services and runs fn. The services are closed when fn returns.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *cli.App) error) error {
	cli.LoadEnvFile()
	cfg := config.Load()
	if backendFlag != "" {
		cfg.DataBackend = backendFlag
	}
	if dbPath != "" {
		cfg.SQLiteDBPath = dbPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cli.SetupLogger(cfg.LogLevel)
	ctx := cmd.Context()
	app, err := cli.Bootstrap(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer app.Close()

	return fn(ctx, app)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Data backend: "+backend.TypeNames()+" (overrides DATA_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database file (overrides SQLITE_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(foodsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
