// =============================================================================
// Aralco to Salesforce Migration - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// (extract, transform, version) are attached to it.
//
// CLI STRUCTURE:
//   aralco-migrate
//   ├── extract    (pull samples and statistics from the Aralco database)
//   ├── transform  (produce the Salesforce import files)
//   └── version
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/config"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aralco-migrate",
	Short: "Aralco POS to Salesforce migration toolkit",
	Long: `aralco-migrate moves point-of-sale data out of an Aralco POS database
and into Salesforce-ready import files.

The migration runs in two stages:

  aralco-migrate extract     # export samples and statistics from SQL Server
  aralco-migrate transform   # map the exports into Salesforce import CSVs

The transform stage produces accounts_import.csv, products_import.csv and
pricebook_entries.csv plus a transformation_summary.json describing the
run. Rows that cannot be mapped are counted and reported, never fatal.`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration file named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the slog logger for a command run. --verbose forces
// debug level regardless of the configured one.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
