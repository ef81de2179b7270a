// =============================================================================
// Aralco to Salesforce Migration - Transform Command
// =============================================================================
//
// The transform command is the main migration step: it reads the extracted
// Aralco exports and produces the Salesforce import files.
//
// COMMAND USAGE:
//   aralco-migrate transform [flags]
//
// FLAGS:
//   --entity   : Which entity to transform: accounts, products or all
//   --dry-run  : Map and count everything without writing output files
//
// PIPELINE:
//   1. Load configuration
//   2. Create the output directory tree
//   3. Transform customers  -> accounts/accounts_import.csv
//   4. Transform products   -> products/products_import.csv
//                              products/pricebook_entries.csv
//   5. Write transformation_summary.json and print the run summary
//
// Entities are processed sequentially and independently: an unreadable
// product export still leaves a complete account import behind.
//
// =============================================================================

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/config"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/pipeline"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/report"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/salesforce"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
	"github.com/abhishek-notes/aralco-salesforce-migration/pkg/utils"
)

// dryRun maps and counts without writing any output files.
var dryRun bool

// entity restricts the run to one target entity.
var entity string

// transformCmd represents the 'transform' command.
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform Aralco exports into Salesforce import files",
	Long: `The transform command reads the customer and product exports produced by
'aralco-migrate extract' and maps them into Salesforce-ready import CSVs.

Each source row is mapped independently. A row that cannot be mapped (for
example, a customer with no CustomerID) is recorded in the run summary and
skipped; it never aborts the batch. Output column order is fixed by the
Salesforce import schemas and is identical across runs.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform()
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVar(
		&entity,
		"entity",
		"all",
		"Entity to transform: accounts, products or all",
	)
	transformCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Map and count everything without writing output files",
	)
}

// runTransform orchestrates the transformation pipeline.
func runTransform() error {
	startTime := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	doAccounts := entity == "all" || entity == "accounts"
	doProducts := entity == "all" || entity == "products"
	if !doAccounts && !doProducts {
		return fmt.Errorf("unknown entity %q (want accounts, products or all)", entity)
	}

	fmt.Println("=== Aralco to Salesforce Transformation ===")

	if !dryRun {
		if err := utils.EnsureDirectories(cfg.OutputDirs()...); err != nil {
			return err
		}
	}

	driver := pipeline.New(log)

	// Entity-level failures (unreadable source, unwritable destination)
	// abort that entity only; siblings still run.
	var entityErrors []string

	if doAccounts {
		if err := transformAccounts(cfg, driver); err != nil {
			entityErrors = append(entityErrors, fmt.Sprintf("accounts: %v", err))
			fmt.Printf("  ✗ accounts: %v\n", err)
		} else {
			fmt.Printf("  ✓ transformed %d accounts\n", driver.Stats().AccountsProcessed)
		}
	}

	if doProducts {
		priceEntries, err := transformProducts(cfg, driver)
		if err != nil {
			entityErrors = append(entityErrors, fmt.Sprintf("products: %v", err))
			fmt.Printf("  ✗ products: %v\n", err)
		} else {
			fmt.Printf("  ✓ transformed %d products (%d price book entries)\n",
				driver.Stats().ProductsProcessed, priceEntries)
		}
	}

	stats := driver.Stats()
	summary := report.New(time.Now(), stats, driver.Failures(), cfg.ErrorCap)
	if !dryRun {
		if err := summary.WriteFile(cfg.SummaryPath()); err != nil {
			return err
		}
	}

	fmt.Println("\n=== Transformation Summary ===")
	fmt.Printf("Accounts processed:  %d\n", stats.AccountsProcessed)
	fmt.Printf("Products processed:  %d\n", stats.ProductsProcessed)
	fmt.Printf("Orders processed:    %d\n", stats.OrdersProcessed)
	fmt.Printf("Errors encountered:  %d\n", stats.Errors)
	fmt.Printf("Time elapsed:        %s\n", time.Since(startTime).Round(time.Millisecond))
	if dryRun {
		fmt.Println("\nDry run: no files were written.")
	} else {
		fmt.Printf("\nResults written to %s\n", cfg.OutputDir)
	}

	if len(entityErrors) > 0 {
		return fmt.Errorf("transformation finished with failures: %v", entityErrors)
	}
	return nil
}

// transformAccounts runs the account batch against the customer export.
func transformAccounts(cfg *config.Config, driver *pipeline.Driver) error {
	rows, err := source.Open(cfg.CustomersPath())
	if err != nil {
		return err
	}
	defer rows.Close()

	var accounts *pipeline.RelationWriter
	if !dryRun {
		accounts, err = pipeline.CreateRelationFile(cfg.AccountsOutputPath(), salesforce.Account)
		if err != nil {
			return err
		}
		defer accounts.Close()
	}

	if err := driver.TransformAccounts(rows, accounts); err != nil {
		return err
	}
	if accounts != nil {
		return accounts.Close()
	}
	return nil
}

// transformProducts runs the product batch against the product export and
// returns the number of price book entries written.
func transformProducts(cfg *config.Config, driver *pipeline.Driver) (int, error) {
	rows, err := source.Open(cfg.ProductsPath())
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var products, prices *pipeline.RelationWriter
	if !dryRun {
		products, err = pipeline.CreateRelationFile(cfg.ProductsOutputPath(), salesforce.Product)
		if err != nil {
			return 0, err
		}
		defer products.Close()

		prices, err = pipeline.CreateRelationFile(cfg.PricebookOutputPath(), salesforce.PricebookEntry)
		if err != nil {
			return 0, err
		}
		defer prices.Close()
	}

	if err := driver.TransformProducts(rows, products, prices); err != nil {
		return 0, err
	}

	count := 0
	if prices != nil {
		count = prices.Count()
		if err := prices.Close(); err != nil {
			return count, err
		}
	}
	if products != nil {
		if err := products.Close(); err != nil {
			return count, err
		}
	}
	return count, nil
}
