package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("✓", boxWidth*2))
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.Contains(t, output, "...")
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}

func TestStyledPrinter_PlainThemeMatchesPlainPrinter(t *testing.T) {
	var plain, styled bytes.Buffer
	NewPrinter(&plain).printBox("TITLE", "body")
	NewStyledPrinter(&styled, Theme{}).printBox("TITLE", "body")

	assert.Equal(t, plain.String(), styled.String())
}

func TestStyledPrinter_ColorThemeKeepsText(t *testing.T) {
	var buf bytes.Buffer
	NewStyledPrinter(&buf, ColorTheme()).printBanner("HEADER")

	assert.Contains(t, buf.String(), "HEADER")
	assert.Contains(t, buf.String(), strings.Repeat("=", ruleWidth))
}
