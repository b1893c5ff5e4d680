package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/lesson-audit/internal/types"
)

// PrintValidationHeader opens a validation run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationHeader() {
	p.printBanner("C Programming Lessons Code Quality Validator")
}

// LevelStarted announces a level as the validator enters it.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) LevelStarted(level types.Level) {
	fmt.Fprintf(p.out, "\nValidating %s level lessons...\n", level.Name)
	fmt.Fprintln(p.out, strings.Repeat("-", 40))
}

// LessonStarted announces a lesson as the validator enters it.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) LessonStarted(lesson types.Lesson) {
	fmt.Fprintf(p.out, "Validating %s...\n", lesson.Path)
}

// PrintValidationSummary outputs counters, every issue and warning, and the verdict.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationSummary(report *types.ValidationReport) {
	if report == nil {
		return
	}

	fmt.Fprintln(p.out)
	p.printBanner("VALIDATION SUMMARY")
	fmt.Fprintf(p.out, "Total files validated: %d\n", report.TotalFiles)
	fmt.Fprintf(p.out, "Files passed: %d\n", report.PassedFiles)
	fmt.Fprintf(p.out, "Issues: %d\n", len(report.Issues))
	fmt.Fprintf(p.out, "Warnings: %d\n", len(report.Warnings))

	if len(report.Issues) > 0 {
		fmt.Fprintln(p.out, "\nISSUES FOUND:")
		fmt.Fprintln(p.out, strings.Repeat("-", 20))
		for _, f := range report.Issues {
			fmt.Fprintf(p.out, "%s %s\n", p.theme.paint(p.theme.Error, glyphFailed), f)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintln(p.out, "\nWARNINGS:")
		fmt.Fprintln(p.out, strings.Repeat("-", 20))
		for _, f := range report.Warnings {
			fmt.Fprintf(p.out, "%s %s\n", p.theme.paint(p.theme.Partial, glyphWarning), f)
		}
	}

	if report.Success {
		fmt.Fprintf(p.out, "\n%s\n", p.theme.paint(p.theme.Success, glyphDone+" All code quality checks passed!"))
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.theme.paint(p.theme.Error,
		fmt.Sprintf("%s Found %d issues that need to be addressed.", glyphFailed, len(report.Issues))))
}
