// =============================================================================
// Aralco to Salesforce Migration - Relation Writer
// =============================================================================
//
// Writes target records to a flat CSV relation. The header row and every
// data row follow the schema's declared field order exactly; the import
// jobs on the Salesforce side key on column position.
//
// =============================================================================

package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/salesforce"
)

// RelationWriter emits target records for one schema to a CSV stream.
type RelationWriter struct {
	schema *salesforce.Schema
	csv    *csv.Writer
	closer io.Closer
	count  int
}

// NewRelationWriter wraps a stream and writes the schema header row
// immediately.
func NewRelationWriter(w io.Writer, schema *salesforce.Schema) (*RelationWriter, error) {
	writer := &RelationWriter{
		schema: schema,
		csv:    csv.NewWriter(w),
	}
	if err := writer.csv.Write(schema.Fields); err != nil {
		return nil, fmt.Errorf("failed to write %s header: %w", schema.Name, err)
	}
	return writer, nil
}

// CreateRelationFile creates (or truncates) the output file for a relation
// and returns a writer with the header already written.
func CreateRelationFile(path string, schema *salesforce.Schema) (*RelationWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	// csv.Writer buffers internally, no extra bufio layer needed.
	writer, err := NewRelationWriter(file, schema)
	if err != nil {
		file.Close()
		return nil, err
	}
	writer.closer = file
	return writer, nil
}

// Write appends one record to the relation. Records are written fully
// formed; a record built for a different schema is a programming error.
func (w *RelationWriter) Write(record salesforce.Record) error {
	if record.Schema() != w.schema {
		return fmt.Errorf("record schema %s does not match relation %s",
			record.Schema().Name, w.schema.Name)
	}
	if err := w.csv.Write(record.Values()); err != nil {
		return fmt.Errorf("failed to write %s record: %w", w.schema.Name, err)
	}
	w.count++
	return nil
}

// Count returns the number of data records written so far.
func (w *RelationWriter) Count() int {
	return w.count
}

// Close flushes buffered rows and closes the underlying file, if any.
// Close is idempotent; extra calls are no-ops.
func (w *RelationWriter) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	if w.closer != nil {
		closer := w.closer
		w.closer = nil
		if err := closer.Close(); err != nil && flushErr == nil {
			return fmt.Errorf("failed to close %s relation: %w", w.schema.Name, err)
		}
	}
	if flushErr != nil {
		return fmt.Errorf("failed to flush %s relation: %w", w.schema.Name, flushErr)
	}
	return nil
}
