// =============================================================================
// Aralco to Salesforce Migration - Run Summary
// =============================================================================
//
// After a transformation run the pipeline writes a structured summary
// artifact next to the import files: timestamp, run id, per-entity counts
// and a bounded sample of the row-level failures. Downstream tooling parses
// this file, so the field names are part of the interface.
//
// =============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/pipeline"
)

// DefaultErrorCap bounds the number of failure descriptions carried in the
// summary. Counts are never capped, only the description sample.
const DefaultErrorCap = 100

// Summary is the transformation_summary.json artifact.
type Summary struct {
	TransformationDate string         `json:"transformation_date"`
	RunID              string         `json:"run_id"`
	Statistics         pipeline.Stats `json:"statistics"`
	Errors             []string       `json:"errors"`
}

// New builds a summary for a finished run. errorCap bounds the error list;
// a non-positive cap falls back to DefaultErrorCap.
func New(now time.Time, stats pipeline.Stats, failures []pipeline.RowFailure, errorCap int) Summary {
	if errorCap <= 0 {
		errorCap = DefaultErrorCap
	}
	if len(failures) > errorCap {
		failures = failures[:errorCap]
	}

	// Marshal a [] rather than null when the run was clean.
	descriptions := make([]string, 0, len(failures))
	for _, failure := range failures {
		descriptions = append(descriptions, failure.Description())
	}

	return Summary{
		TransformationDate: now.Format(time.RFC3339),
		RunID:              uuid.NewString(),
		Statistics:         stats,
		Errors:             descriptions,
	}
}

// WriteFile writes the summary as indented JSON.
func (s Summary) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
