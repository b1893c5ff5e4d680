// Package schemas holds the JSON Schemas for the documents the lesson-audit tools emit.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

const (
	// ProgressReport is the schema for progress snapshots.
	ProgressReport = "progress_report.schema.json"
	// ValidationReport is the schema for exported validation results.
	ValidationReport = "validation_report.schema.json"
)
