// =============================================================================
// Aralco to Salesforce Migration - XLSX Source Reader
// =============================================================================
//
// Some Aralco exports arrive as XLSX workbooks instead of CSV. This reader
// exposes the first worksheet through the same streaming Reader interface as
// the CSV path, so the pipeline never cares which format it was handed.
//
// Only the first sheet is read; the exports never carry more than one.
//
// =============================================================================

package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXReader streams rows from the first worksheet of an XLSX export.
type XLSXReader struct {
	file       *excelize.File
	rows       *excelize.Rows
	headers    []string
	currentRow Row
	rowNumber  int
	err        error
}

// OpenXLSX opens an XLSX export and reads the header row of its first sheet.
func OpenXLSX(path string) (*XLSXReader, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		file.Close()
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.Rows(sheets[0])
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	r := &XLSXReader{file: file, rows: rows}
	if err := r.readHeaders(); err != nil {
		rows.Close()
		file.Close()
		return nil, err
	}
	return r, nil
}

// readHeaders reads and cleans the header row.
func (r *XLSXReader) readHeaders() error {
	if !r.rows.Next() {
		return fmt.Errorf("workbook is empty")
	}
	record, err := r.rows.Columns()
	if err != nil {
		return fmt.Errorf("error reading header row: %w", err)
	}
	r.rowNumber++

	headers := make([]string, len(record))
	for i, header := range record {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = header
	}
	r.headers = headers
	return nil
}

// Next advances to the next non-empty data row.
func (r *XLSXReader) Next() bool {
	if r.err != nil {
		return false
	}

	for r.rows.Next() {
		record, err := r.rows.Columns()
		if err != nil {
			r.err = fmt.Errorf("error reading row %d: %w", r.rowNumber+1, err)
			return false
		}
		r.rowNumber++

		if isRecordEmpty(record) {
			continue
		}
		r.currentRow = recordToRow(r.headers, record)
		return true
	}

	if err := r.rows.Error(); err != nil {
		r.err = fmt.Errorf("error iterating rows: %w", err)
	}
	return false
}

// Row returns the current row.
func (r *XLSXReader) Row() Row {
	return r.currentRow
}

// Headers returns the column headers.
func (r *XLSXReader) Headers() []string {
	return r.headers
}

// RowNumber returns the current physical row number (1-indexed).
func (r *XLSXReader) RowNumber() int {
	return r.rowNumber
}

// Err returns any error that occurred during reading.
func (r *XLSXReader) Err() error {
	return r.err
}

// Close closes the row iterator and the workbook.
func (r *XLSXReader) Close() error {
	if err := r.rows.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
