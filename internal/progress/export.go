package progress

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/lesson-audit/internal/types"
)

// SnapshotFileName returns progress_report_YYYYMMDD_HHMMSS.json for the report's timestamp.
func SnapshotFileName(report *types.ProgressReport) string {
	return fmt.Sprintf("progress_report_%s.json", report.GeneratedAt.Format("20060102_150405"))
}

// Export writes the report as indented JSON into dir and returns the file path.
// Failures are returned as *ExportError; the report itself is never modified.
func Export(report *types.ProgressReport, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, SnapshotFileName(report))

	if err := os.MkdirAll(dir, 0755); err != nil {
		return path, &ExportError{Path: path, Message: "failed to create output directory", Cause: err}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return path, &ExportError{Path: path, Message: "failed to marshal progress report", Cause: err}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return path, &ExportError{Path: path, Message: "failed to write progress report", Cause: err}
	}

	return path, nil
}
