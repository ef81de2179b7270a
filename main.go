// =============================================================================
// Aralco to Salesforce Migration - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Aralco to Salesforce migration CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   aralco-migrate transform     - Transform Aralco exports into Salesforce CSVs
//   aralco-migrate extract       - Export samples and statistics from the database
//   aralco-migrate version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/abhishek-notes/aralco-salesforce-migration/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
