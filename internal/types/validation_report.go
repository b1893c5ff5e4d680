//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ValidationReport is the exported outcome of a quality validation run
type ValidationReport struct {
	RunID          string    `json:"run_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	Root           string    `json:"root"`
	Success        bool      `json:"success"`
	TotalFiles     int       `json:"total_files"`
	PassedFiles    int       `json:"passed_files"`
	InvalidLessons []string  `json:"invalid_lessons"`
	Issues         []Finding `json:"issues"`
	Warnings       []Finding `json:"warnings"`
}
