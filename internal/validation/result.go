package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/lesson-audit/internal/types"
)

// Result accumulates the outcome of one validation run. Slices only grow.
type Result struct {
	Issues         []types.Finding
	Warnings       []types.Finding
	TotalFiles     int
	PassedFiles    int
	InvalidLessons []string
}

// Success reports whether no blocking issue was recorded.
func (r *Result) Success() bool {
	return len(r.Issues) == 0
}

// add records the findings of one validated file.
func (r *Result) add(findings []types.Finding) {
	r.TotalFiles++
	blocking := 0
	for _, f := range findings {
		if f.Severity == types.SeverityIssue {
			r.Issues = append(r.Issues, f)
			blocking++
			continue
		}
		r.Warnings = append(r.Warnings, f)
	}
	if blocking == 0 {
		r.PassedFiles++
	}
}

// Report converts the result into its exportable form.
func (r *Result) Report(root, runID string, generatedAt time.Time) *types.ValidationReport {
	return &types.ValidationReport{
		RunID:          runID,
		GeneratedAt:    generatedAt,
		Root:           root,
		Success:        r.Success(),
		TotalFiles:     r.TotalFiles,
		PassedFiles:    r.PassedFiles,
		InvalidLessons: nonNil(r.InvalidLessons),
		Issues:         nonNilFindings(r.Issues),
		Warnings:       nonNilFindings(r.Warnings),
	}
}

// WriteReport writes report as indented JSON to path, creating parent directories.
func WriteReport(path string, report *types.ValidationReport) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write validation report: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilFindings(f []types.Finding) []types.Finding {
	if f == nil {
		return []types.Finding{}
	}
	return f
}
