// =============================================================================
// Aralco to Salesforce Migration - CSV Source Reader
// =============================================================================
//
// This module reads Aralco export files in CSV form. The exports produced by
// the extract step always have a single header row followed by data rows, so
// the reader is deliberately simple: header row first, then one Row per
// non-empty data line.
//
// The reader streams rows one at a time rather than loading the whole file,
// which keeps memory flat for large product exports.
//
// USAGE:
//   reader, err := source.OpenCSV(path)
//   if err != nil {
//       return err
//   }
//   defer reader.Close()
//
//   for reader.Next() {
//       row := reader.Row()
//       // Process the row...
//   }
//   if err := reader.Err(); err != nil {
//       return err
//   }
//
// =============================================================================

package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Reader streams source rows from an export file.
type Reader interface {
	// Next advances to the next data row. It returns false at end of input
	// or on error; check Err afterwards.
	Next() bool

	// Row returns the current row as a header-keyed map.
	Row() Row

	// Headers returns the column headers.
	Headers() []string

	// RowNumber returns the current physical row number (1-indexed,
	// header included). Useful for error reporting.
	RowNumber() int

	// Err returns the first error encountered while reading, if any.
	Err() error

	// Close releases the underlying file.
	Close() error
}

// Open opens an export file and selects the reader by extension:
// .xlsx exports go through excelize, everything else is treated as CSV.
func Open(path string) (Reader, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return OpenXLSX(path)
	}
	return OpenCSV(path)
}

// CSVReader streams rows from a CSV export.
type CSVReader struct {
	file       *os.File
	reader     *csv.Reader
	headers    []string
	currentRow Row
	rowNumber  int
	err        error
}

// OpenCSV opens a CSV export and reads its header row.
func OpenCSV(path string) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	// Aralco exports occasionally have ragged rows and stray quotes.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	r := &CSVReader{file: file, reader: reader}
	if err := r.readHeaders(); err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// readHeaders reads and cleans the single header row.
func (r *CSVReader) readHeaders() error {
	record, err := r.reader.Read()
	if err == io.EOF {
		return fmt.Errorf("file is empty")
	}
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
func (r *CSVReader) Next() bool {
	if r.err != nil {
		return false
	}

	record, err := r.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = fmt.Errorf("error reading row %d: %w", r.rowNumber+1, err)
		return false
	}
	r.rowNumber++

	if isRecordEmpty(record) {
		return r.Next()
	}

	r.currentRow = recordToRow(r.headers, record)
	return true
}

// Row returns the current row.
func (r *CSVReader) Row() Row {
	return r.currentRow
}

// Headers returns the column headers.
func (r *CSVReader) Headers() []string {
	return r.headers
}

// RowNumber returns the current physical row number (1-indexed).
func (r *CSVReader) RowNumber() int {
	return r.rowNumber
}

// Err returns any error that occurred during reading.
func (r *CSVReader) Err() error {
	return r.err
}

// Close closes the underlying file.
func (r *CSVReader) Close() error {
	return r.file.Close()
}

// recordToRow builds a Row from a raw record. Columns missing from a ragged
// record are still present in the row, as empty strings, so the mappers see
// the full header vocabulary on every row.
func recordToRow(headers []string, record []string) Row {
	row := make(Row, len(headers))
	for i, header := range headers {
		if i < len(record) {
			row[header] = strings.TrimSpace(record[i])
		} else {
			row[header] = ""
		}
	}
	return row
}

// isRecordEmpty reports whether every cell in the record is blank.
func isRecordEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
