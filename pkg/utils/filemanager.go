// =============================================================================
// Aralco to Salesforce Migration - File Utilities
// =============================================================================
//
// Small file system helpers shared by the commands: directory bootstrap for
// the export trees and a few existence/metadata checks used when deciding
// whether a source export is present before starting a run.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"time"
)

// EnsureDirectories creates every listed directory, including parents.
// Existing directories are left untouched.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FileModTime returns the modification time of a file.
func FileModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}
