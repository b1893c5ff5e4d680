package observability

import "charm.land/lipgloss/v2"

// Palette
var (
	colorTitle   = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#22C55E")
	colorPartial = lipgloss.Color("#F97316")
	colorError   = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")
)

// Theme holds the styles a Printer applies. The zero Theme prints plain text.
type Theme struct {
	enabled bool

	Title   lipgloss.Style
	Success lipgloss.Style
	Partial lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// ColorTheme returns the styled terminal theme.
func ColorTheme() Theme {
	return Theme{
		enabled: true,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		Success: lipgloss.NewStyle().Bold(true).Foreground(colorSuccess),
		Partial: lipgloss.NewStyle().Foreground(colorPartial),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(colorError),
		Dim:     lipgloss.NewStyle().Foreground(colorDim).Italic(true),
	}
}

func (t Theme) paint(style lipgloss.Style, text string) string {
	if !t.enabled {
		return text
	}
	return style.Render(text)
}
