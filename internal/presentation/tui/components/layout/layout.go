// Package layout composes the aside, the main area and the footer.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Aside  string
	Main   string
	Footer string
}

// Render places the aside left of the main area with the footer below both.
func Render(p Props) string {
	content := lipgloss.JoinHorizontal(lipgloss.Top, p.Aside, p.Main)
	if p.Footer == "" {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, p.Footer)
}
