package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/lesson-audit/internal/types"
)

// PrintProgressReport outputs every section of a progress report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgressReport(report *types.ProgressReport) {
	if report == nil {
		return
	}
	data := report.ProgressData

	p.printBanner("C PROGRAMMING LESSONS - PROGRESS REPORT")
	fmt.Fprintf(p.out, "Generated: %s\n", report.GeneratedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(p.out, "Root:      %s\n\n", report.Root)

	p.printBox("PROJECT OVERVIEW", formatOverview(data.Overview))
	p.printBox("DIFFICULTY LEVEL ANALYSIS", p.formatLevels(data))
	p.printBox("LESSON COMPLETION STATUS", p.formatLessons(data))
	p.printBox("CODE QUALITY ANALYSIS", formatCodeQuality(data.CodeQuality))
	p.printBox("LEARNING RECOMMENDATIONS", formatRecommendation(data.Recommendation))
}

// PrintExportResult reports where the snapshot went, or why it could not be written.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExportResult(path string, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "%s Failed to export progress data: %v\n", p.theme.paint(p.theme.Error, glyphFailed), err)
		return
	}
	fmt.Fprintf(p.out, "Progress data exported to: %s\n", path)
}

func formatOverview(ov types.Overview) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total Lessons:     %d\n", ov.TotalLessons))
	sb.WriteString(fmt.Sprintf("Completed Lessons: %d\n", ov.CompletedLessons))
	sb.WriteString(fmt.Sprintf("Completion Rate:   %.1f%%\n", ov.CompletionRate))
	sb.WriteString(fmt.Sprintf("Total Files:       %d", ov.TotalFiles))
	return sb.String()
}

func (p *Printer) formatLevels(data types.ProgressData) string {
	var sb strings.Builder
	for _, name := range data.LevelOrder {
		st := data.DifficultyLevels[name]
		sb.WriteString(fmt.Sprintf("%s: %s %d/%d lessons (%.1f%%)\n",
			strings.ToUpper(name), levelGlyph(st), st.Completed, st.Total, st.CompletionRate))
		if st.Mismatch {
			sb.WriteString(fmt.Sprintf("  %s Expected %d lessons, found %d\n", glyphWarning, st.Expected, st.Total))
		}
	}
	for _, name := range data.MissingLevels {
		sb.WriteString(fmt.Sprintf("%s: %s Directory not found\n", strings.ToUpper(name), glyphFailed))
	}
	if sb.Len() == 0 {
		return "No levels configured"
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (p *Printer) formatLessons(data types.ProgressData) string {
	var sb strings.Builder
	for i, name := range data.LevelOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s Level:\n", strings.ToUpper(name)))
		rows := data.LessonDetails[name]
		if len(rows) == 0 {
			sb.WriteString("  (no lessons)\n")
		}
		for _, row := range rows {
			status := glyphFailed
			if row.Complete {
				status = glyphDone
			}
			exec := glyphNoArtifact
			if row.HasExecutable {
				exec = glyphExecutable
			}
			sb.WriteString(fmt.Sprintf("  %s %s %s (%d files)\n", status, exec, row.Name, row.FileCount))
		}
	}
	if sb.Len() == 0 {
		return "No lessons found"
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatCodeQuality(cq types.CodeQuality) string {
	if cq.TotalCFiles == 0 {
		return "No C files found for analysis"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total C Files:          %d\n", cq.TotalCFiles))
	sb.WriteString(fmt.Sprintf("Total Lines of Code:    %d\n", cq.TotalLines))
	sb.WriteString(fmt.Sprintf("Average Lines per File: %.1f\n", cq.AvgLinesPerFile))
	sb.WriteString(fmt.Sprintf("Files with Comments:    %.1f%%\n", cq.CommentRate))
	sb.WriteString(fmt.Sprintf("Files with Headers:     %.1f%%", cq.HeaderRate))
	return sb.String()
}

func formatRecommendation(rec types.Recommendation) string {
	var sb strings.Builder
	if rec.AllComplete {
		sb.WriteString("All lessons completed! Consider:\n")
		sb.WriteString("  - Building personal projects\n")
		sb.WriteString("  - Contributing to open source\n")
		sb.WriteString("  - Learning advanced topics\n")
	} else if rec.FocusLevel != "" {
		sb.WriteString(fmt.Sprintf("Focus on: %s level\n", strings.ToUpper(rec.FocusLevel)))
		sb.WriteString(fmt.Sprintf("  Continue with incomplete lessons in %s/\n", rec.FocusLevel))
	}

	if len(rec.General) > 0 {
		sb.WriteString("\nGeneral Recommendations:\n")
		for _, advice := range rec.General {
			sb.WriteString(fmt.Sprintf("  - %s\n", advice))
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func levelGlyph(st types.LevelStats) string {
	switch {
	case st.Completed == st.Total:
		return glyphDone
	case st.Completed > 0:
		return glyphInProgress
	default:
		return glyphNotStarted
	}
}
