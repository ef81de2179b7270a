// =============================================================================
// Aralco to Salesforce Migration - Batch Transformation Driver
// =============================================================================
//
// The driver walks source rows sequentially, invokes the entity mapper for
// each one, and routes the produced records to their output relations.
//
// ERROR ISOLATION:
//   A row that fails to map is recorded and skipped; the batch always runs
//   to the end of input. Only I/O failures (unreadable source, unwritable
//   destination) abort a run, and then only for that entity - sibling
//   entities are processed independently.
//
// The driver is strictly single-threaded. Rows have no cross-row state, and
// input order is preserved in every output relation.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/mapper"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
)

// Stats holds the running counters for one migration run.
type Stats struct {
	AccountsProcessed int `json:"accounts_processed"`
	ProductsProcessed int `json:"products_processed"`
	OrdersProcessed   int `json:"orders_processed"`
	Errors            int `json:"errors"`
}

// RowFailure describes one row that could not be mapped.
type RowFailure struct {
	// Entity is the target object the row was destined for.
	Entity string

	// RowID is the row's natural identifier, or "Unknown" when blank.
	RowID string

	// Line is the physical row number in the source file.
	Line int

	// Reason is the mapping error description.
	Reason string
}

// Description renders the failure in the run summary format.
func (f RowFailure) Description() string {
	return fmt.Sprintf("%s %s: %s", f.Entity, f.RowID, f.Reason)
}

// Driver accumulates outcomes across the entity batches of one run.
// Outcomes are appended, never revised.
type Driver struct {
	log      *slog.Logger
	stats    Stats
	failures []RowFailure
}

// New creates a driver logging through the given logger.
func New(log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{log: log}
}

// Stats returns the counters accumulated so far.
func (d *Driver) Stats() Stats {
	return d.stats
}

// Failures returns every recorded row failure, in input order.
func (d *Driver) Failures() []RowFailure {
	return d.failures
}

// TransformAccounts maps every customer row to an Account record.
//
// accounts may be nil for a dry run; mapping and counting still happen,
// nothing is written.
func (d *Driver) TransformAccounts(rows source.Reader, accounts *RelationWriter) error {
	for rows.Next() {
		row := rows.Row()

		record, err := mapper.MapAccount(row)
		if err != nil {
			d.recordFailure("Account", rowID(row, "CustomerID"), rows.RowNumber(), err)
			continue
		}

		if accounts != nil {
			if err := accounts.Write(record); err != nil {
				return err
			}
		}
		d.stats.AccountsProcessed++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("account source failed: %w", err)
	}
	return nil
}

// TransformProducts maps every product row to a Product2 record plus an
// optional PricebookEntry. Both writers may be nil for a dry run.
func (d *Driver) TransformProducts(rows source.Reader, products, prices *RelationWriter) error {
	for rows.Next() {
		row := rows.Row()

		record, entry, err := mapper.MapProduct(row)
		if err != nil {
			d.recordFailure("Product", rowID(row, "ProductID"), rows.RowNumber(), err)
			continue
		}

		if products != nil {
			if err := products.Write(record); err != nil {
				return err
			}
		}
		if entry != nil && prices != nil {
			if err := prices.Write(*entry); err != nil {
				return err
			}
		}
		d.stats.ProductsProcessed++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("product source failed: %w", err)
	}
	return nil
}

// recordFailure appends a row failure and bumps the global error counter.
func (d *Driver) recordFailure(entity, id string, line int, err error) {
	failure := RowFailure{
		Entity: entity,
		RowID:  id,
		Line:   line,
		Reason: err.Error(),
	}
	d.failures = append(d.failures, failure)
	d.stats.Errors++
	d.log.Debug("row skipped",
		"entity", entity,
		"row_id", id,
		"line", line,
		"reason", err.Error(),
	)
}

// rowID extracts the natural identifier for error reporting, falling back
// to Unknown when the field is blank or absent.
func rowID(row source.Row, field string) string {
	id := strings.TrimSpace(row.Get(field))
	if id == "" {
		return "Unknown"
	}
	return id
}
