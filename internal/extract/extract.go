// =============================================================================
// Aralco to Salesforce Migration - Database Extract
// =============================================================================
//
// Connects to the Aralco POS SQL Server database and exports the sample
// rows and aggregate statistics the transformation step consumes, plus
// schema findings for migration planning:
//
//   customer_sample.csv / customer_stats.csv
//   product_sample.csv  / product_stats.csv
//   transaction_sample.csv / transaction_stats.csv
//   table_relationships.csv
//   database_summary.json
//
// Each section is independent: a failing query is reported and the next
// section still runs. Only the initial connection is fatal.
//
// =============================================================================

package extract

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/microsoft/go-mssqldb"
)

// sampleSize is the number of rows exported per entity table.
const sampleSize = 100

// Analyzer runs the extract queries against one database connection.
type Analyzer struct {
	db       *sql.DB
	database string
	dir      string
	log      *slog.Logger
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, dsn, database, outputDir string, log *slog.Logger) (*Analyzer, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", database, err)
	}
	return &Analyzer{db: db, database: database, dir: outputDir, log: log}, nil
}

// Close releases the database connection.
func (a *Analyzer) Close() error {
	return a.db.Close()
}

// Customers exports a customer sample and customer statistics.
func (a *Analyzer) Customers(ctx context.Context) error {
	sample := fmt.Sprintf(`
		SELECT TOP %d
			c.CustomerID, c.CustomerNo, c.FirstName, c.LastName,
			c.CompanyName, c.Email, c.Phone, c.Address1, c.City,
			c.ProvinceState, c.PostalCode, c.Country, c.CreditLimit,
			c.AccountBalance, c.Points, c.LastPurchase, c.CreatedDate
		FROM Customer c
		ORDER BY c.CustomerID`, sampleSize)

	count, err := a.queryToCSV(ctx, sample, "customer_sample.csv")
	if err != nil {
		return fmt.Errorf("customer sample: %w", err)
	}
	a.log.Info("exported customer samples", "rows", count)

	stats := `
		SELECT
			COUNT(*) as TotalCustomers,
			COUNT(DISTINCT Email) as UniqueEmails,
			COUNT(CASE WHEN Email IS NOT NULL AND Email != '' THEN 1 END) as CustomersWithEmail,
			COUNT(CASE WHEN CompanyName IS NOT NULL AND CompanyName != '' THEN 1 END) as BusinessAccounts,
			COUNT(CASE WHEN FirstName IS NOT NULL AND FirstName != '' THEN 1 END) as PersonAccounts,
			AVG(CAST(AccountBalance as FLOAT)) as AvgAccountBalance,
			AVG(CAST(Points as FLOAT)) as AvgPoints
		FROM Customer`

	if _, err := a.queryToCSV(ctx, stats, "customer_stats.csv"); err != nil {
		return fmt.Errorf("customer stats: %w", err)
	}
	return nil
}

// Products exports a product sample and statistics over active products.
func (a *Analyzer) Products(ctx context.Context) error {
	sample := fmt.Sprintf(`
		SELECT TOP %d
			p.ProductID, p.Code, p.Description, p.ShortDescription,
			p.Category1, p.Category2, p.Category3, p.Department,
			p.Supplier, p.Cost, p.SellPrice, p.OnHand, p.Status,
			p.CreatedDate
		FROM Product p
		ORDER BY p.ProductID`, sampleSize)

	count, err := a.queryToCSV(ctx, sample, "product_sample.csv")
	if err != nil {
		return fmt.Errorf("product sample: %w", err)
	}
	a.log.Info("exported product samples", "rows", count)

	stats := `
		SELECT
			COUNT(*) as TotalProducts,
			COUNT(DISTINCT Category1) as UniqueCategory1,
			COUNT(DISTINCT Category2) as UniqueCategory2,
			COUNT(DISTINCT Department) as UniqueDepartments,
			COUNT(DISTINCT Supplier) as UniqueSuppliers,
			AVG(CAST(Cost as FLOAT)) as AvgCost,
			AVG(CAST(SellPrice as FLOAT)) as AvgSellPrice,
			SUM(CAST(OnHand as FLOAT)) as TotalInventory
		FROM Product
		WHERE Status = 'A'`

	if _, err := a.queryToCSV(ctx, stats, "product_stats.csv"); err != nil {
		return fmt.Errorf("product stats: %w", err)
	}
	return nil
}

// Transactions exports the last six months of POS transaction headers and
// statistics over completed transactions.
func (a *Analyzer) Transactions(ctx context.Context) error {
	sample := fmt.Sprintf(`
		SELECT TOP %d
			h.POSTransHeadID, h.TransNo, h.TransDate, h.CustomerID,
			h.StoreID, h.EmployeeID, h.SubTotal, h.Tax1, h.Tax2,
			h.Total, h.TransType, h.Status
		FROM POSTransHead h
		WHERE h.TransDate >= DATEADD(month, -6, GETDATE())
		ORDER BY h.TransDate DESC`, sampleSize)

	count, err := a.queryToCSV(ctx, sample, "transaction_sample.csv")
	if err != nil {
		return fmt.Errorf("transaction sample: %w", err)
	}
	a.log.Info("exported transaction samples", "rows", count)

	stats := `
		SELECT
			COUNT(*) as TotalTransactions,
			COUNT(DISTINCT CustomerID) as UniqueCustomers,
			COUNT(DISTINCT StoreID) as UniqueStores,
			COUNT(DISTINCT CAST(TransDate as DATE)) as TransactionDays,
			MIN(TransDate) as EarliestTransaction,
			MAX(TransDate) as LatestTransaction,
			AVG(CAST(Total as FLOAT)) as AvgTransactionValue,
			SUM(CAST(Total as FLOAT)) as TotalRevenue
		FROM POSTransHead
		WHERE Status = 'C'`

	if _, err := a.queryToCSV(ctx, stats, "transaction_stats.csv"); err != nil {
		return fmt.Errorf("transaction stats: %w", err)
	}
	return nil
}

// Relationships exports the foreign key graph. Aralco databases often carry
// no declared foreign keys at all; zero rows is not an error.
func (a *Analyzer) Relationships(ctx context.Context) error {
	query := `
		SELECT
			fk.name AS FK_Name,
			tp.name AS Parent_Table,
			cp.name AS Parent_Column,
			tr.name AS Referenced_Table,
			cr.name AS Referenced_Column
		FROM sys.foreign_keys fk
		INNER JOIN sys.tables tp ON fk.parent_object_id = tp.object_id
		INNER JOIN sys.tables tr ON fk.referenced_object_id = tr.object_id
		INNER JOIN sys.foreign_key_columns fkc ON fk.object_id = fkc.constraint_object_id
		INNER JOIN sys.columns cp ON fkc.parent_column_id = cp.column_id AND fkc.parent_object_id = cp.object_id
		INNER JOIN sys.columns cr ON fkc.referenced_column_id = cr.column_id AND fkc.referenced_object_id = cr.object_id
		ORDER BY tp.name, fk.name`

	count, err := a.queryToCSV(ctx, query, "table_relationships.csv")
	if err != nil {
		return fmt.Errorf("relationships: %w", err)
	}
	if count == 0 {
		a.log.Warn("no foreign key relationships found; database may use application-level relationships")
	} else {
		a.log.Info("exported relationships", "rows", count)
	}
	return nil
}

// tableCount is one row of the table-size findings.
type tableCount struct {
	TableName   string `json:"TableName"`
	RecordCount int64  `json:"RecordCount"`
}

// databaseSummary is the database_summary.json artifact.
type databaseSummary struct {
	AnalysisDate string   `json:"analysis_date"`
	Database     string   `json:"database"`
	Findings     findings `json:"findings"`
}

type findings struct {
	TotalTables int          `json:"total_tables"`
	TopTables   []tableCount `json:"top_10_tables"`
}

// Summary writes database_summary.json with table counts ordered by size.
func (a *Analyzer) Summary(ctx context.Context) error {
	query := `
		SELECT
			t.name as TableName,
			p.rows as RecordCount
		FROM sys.tables t
		INNER JOIN sys.partitions p ON t.object_id = p.object_id
		WHERE p.index_id IN (0, 1)
		ORDER BY p.rows DESC`

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("table counts: %w", err)
	}
	defer rows.Close()

	var counts []tableCount
	for rows.Next() {
		var tc tableCount
		if err := rows.Scan(&tc.TableName, &tc.RecordCount); err != nil {
			return fmt.Errorf("table counts: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("table counts: %w", err)
	}

	top := counts
	if len(top) > 10 {
		top = top[:10]
	}
	summary := databaseSummary{
		AnalysisDate: time.Now().Format(time.RFC3339),
		Database:     a.database,
		Findings: findings{
			TotalTables: len(counts),
			TopTables:   top,
		},
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	path := filepath.Join(a.dir, "database_summary.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	a.log.Info("summary report generated", "path", path)
	return nil
}

// queryToCSV runs a query and writes the result set to a CSV file in the
// output directory, header row first. Returns the number of data rows.
func (a *Analyzer) queryToCSV(ctx context.Context, query, filename string) (int, error) {
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	path := filepath.Join(a.dir, filename)
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return 0, err
	}

	values := make([]sql.NullString, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	count := 0
	record := make([]string, len(columns))
	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return count, err
		}
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			} else {
				record[i] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return count, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, err
	}

	writer.Flush()
	return count, writer.Error()
}
