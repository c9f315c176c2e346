// Package arrowbutton renders the toggle that opens and closes the panel.
package arrowbutton

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
)

// Props defines the properties for the arrow button component.
type Props struct {
	IsOpen bool
	Accent string
}

// Render renders the arrow; pressing it toggles the panel.
func Render(p Props) hit.Block {
	arrow := "→"
	if p.IsOpen {
		arrow = "←"
	}
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Accent)).
		Foreground(lipgloss.Color(p.Accent))

	view := style.Render(arrow)
	return hit.Block{
		View: view,
		Regions: []hit.Region{{
			Area:   panel.Rect{Width: lipgloss.Width(view), Height: lipgloss.Height(view)},
			Action: hit.Action{Kind: hit.Toggle},
		}},
	}
}
