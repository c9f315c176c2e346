// Package separator renders a horizontal rule.
package separator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render renders a rule width cells wide.
func Render(width int, color string) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(strings.Repeat("─", width))
}
