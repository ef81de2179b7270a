// =============================================================================
// Aralco to Salesforce Migration - Extract Command
// =============================================================================
//
// The extract command connects to the Aralco POS SQL Server database and
// exports the sample files and statistics that the transform command (and
// the humans planning the migration) work from.
//
// COMMAND USAGE:
//   aralco-migrate extract [flags]
//
// FLAGS:
//   --section : Restrict the run to one section: customers, products,
//               transactions or all
//
// Sections are isolated: a failing query is reported and the remaining
// sections still run. Only a failed connection aborts the command.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/extract"
	"github.com/abhishek-notes/aralco-salesforce-migration/pkg/utils"
)

// section restricts extraction to one entity section.
var section string

// extractCmd represents the 'extract' command.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Export samples and statistics from the Aralco database",
	Long: `The extract command connects to the Aralco POS database and exports
sample rows and aggregate statistics for customers, products and
transactions, along with the foreign key graph and a database summary.

The resulting files land in the configured input directory and are the
inputs of 'aralco-migrate transform'. Set ARALCO_DB_PASSWORD in the
environment instead of writing the SQL password into the config file.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(
		&section,
		"section",
		"all",
		"Section to extract: customers, products, transactions or all",
	)
}

// runExtract connects and walks the requested sections.
func runExtract(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	wants := func(name string) bool { return section == "all" || section == name }
	if !wants("customers") && !wants("products") && !wants("transactions") {
		return fmt.Errorf("unknown section %q (want customers, products, transactions or all)", section)
	}

	if err := utils.EnsureDirectories(cfg.InputDir); err != nil {
		return err
	}

	fmt.Println("=== Aralco POS Database Analysis ===")
	fmt.Printf("Connecting to %s on %s...\n", cfg.Database.Name, cfg.Database.Server)

	analyzer, err := extract.Open(ctx, cfg.Database.DSN(), cfg.Database.Name, cfg.InputDir, log)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	// Section failures are reported but never stop the remaining sections.
	var failures int
	run := func(name string, fn func(context.Context) error) {
		if !wants(name) {
			return
		}
		if err := fn(ctx); err != nil {
			failures++
			fmt.Printf("  ✗ %s: %v\n", name, err)
			return
		}
		fmt.Printf("  ✓ %s\n", name)
	}

	run("customers", analyzer.Customers)
	run("products", analyzer.Products)
	run("transactions", analyzer.Transactions)
	if section == "all" {
		run("relationships", analyzer.Relationships)
		run("summary", analyzer.Summary)
	}

	if failures > 0 {
		fmt.Printf("\nAnalysis finished with %d failed section(s). Check %s for partial results.\n",
			failures, cfg.InputDir)
		return nil
	}
	fmt.Printf("\nAnalysis complete. Results are in %s\n", cfg.InputDir)
	return nil
}
