// Package button renders the panel's form buttons.
package button

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
)

// Kind selects the visual treatment of a button.
type Kind int

const (
	// Clear is the secondary, outlined button.
	Clear Kind = iota
	// Submit is the primary, filled button.
	Submit
)

// Props defines the properties for the button component.
type Props struct {
	Title   string
	Kind    Kind
	Focused bool
	Accent  string
	Action  hit.Action
}

// Render renders the button and its pressable region.
func Render(p Props) hit.Block {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Accent))

	if p.Kind == Submit {
		style = style.
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(p.Accent))
	}
	if p.Focused {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}

	view := style.Render(p.Title)
	return hit.Block{
		View: view,
		Regions: []hit.Region{{
			Area:   panel.Rect{Width: lipgloss.Width(view), Height: lipgloss.Height(view)},
			Action: p.Action,
		}},
	}
}
