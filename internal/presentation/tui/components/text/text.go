// Package text renders a styled line of text.
package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the text component.
type Props struct {
	Text      string
	Uppercase bool
	Bold      bool
	Italic    bool
	Color     string
	Width     int
}

// Render renders the text component.
func Render(p Props) string {
	content := p.Text
	if p.Uppercase {
		content = strings.ToUpper(content)
	}
	style := lipgloss.NewStyle().Bold(p.Bold).Italic(p.Italic)
	if p.Color != "" {
		style = style.Foreground(lipgloss.Color(p.Color))
	}
	if p.Width > 0 {
		style = style.Width(p.Width)
	}
	return style.Render(content)
}
