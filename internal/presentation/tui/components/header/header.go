// Package header renders the document header above the preview.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Source  string
	Link    string
	Stale   bool
	Width   int
	Muted   string
}

// Render renders the two header lines.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	link := p.Link
	if link == "" {
		link = "-"
	}
	source := p.Source
	if p.Stale {
		source += " (cached copy)"
	}
	first := fmt.Sprintf("🔗 %s", link)
	second := fmt.Sprintf("🏷️  %s", source)
	if p.Width > 0 {
		first = textutil.Truncate(first, p.Width)
		second = textutil.Truncate(second, p.Width)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Muted)).
		Render(first + "\n" + second)
}
