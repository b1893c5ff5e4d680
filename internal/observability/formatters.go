// Package observability provides formatted console output for the lesson-audit commands.
package observability

import (
	"fmt"
	"io"
	"strings"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// ruleWidth is the width of section separators
	ruleWidth = 50
)

// Status glyphs
const (
	glyphDone       = "✓"
	glyphInProgress = "◐"
	glyphNotStarted = "○"
	glyphFailed     = "✗"
	glyphWarning    = "!"
	glyphExecutable = "⚙"
	glyphNoArtifact = "·"
)

// Printer handles formatted output for reports
type Printer struct {
	out   io.Writer
	theme Theme
}

// NewPrinter creates a new Printer that writes plain text to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewStyledPrinter creates a Printer that applies theme to headings and glyphs
func NewStyledPrinter(out io.Writer, theme Theme) *Printer {
	return &Printer{out: out, theme: theme}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", p.theme.paint(p.theme.Title, fmt.Sprintf("%-*s", boxWidth-4, title)))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, p.theme.paint(p.theme.Title, title))
	fmt.Fprintln(p.out, rule)
}

// truncate shortens s to max runes, marking the cut with "..."
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
