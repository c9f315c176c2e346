// Package radiogroup renders a row of mutually exclusive options.
package radiogroup

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
)

// Props defines the properties for the radio group component.
type Props struct {
	Title    string
	Field    article.Field
	Control  int
	Options  []article.Option
	Selected article.Option
	Focused  bool
	Width    int
	Accent   string
	Muted    string
}

// Render renders the title and one pressable item per option.
func Render(p Props) hit.Block {
	titleColor := p.Muted
	if p.Focused {
		titleColor = p.Accent
	}
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(titleColor))
	if p.Width > 0 {
		titleStyle = titleStyle.Width(p.Width)
	}
	title := hit.Block{
		View: titleStyle.Render(p.Title),
		Regions: []hit.Region{{
			Area:   panel.Rect{Width: max(p.Width, lipgloss.Width(p.Title)), Height: 1},
			Action: hit.Action{Kind: hit.Focus, Control: p.Control, Field: p.Field},
		}},
	}

	items := make([]hit.Block, 0, len(p.Options))
	for _, opt := range p.Options {
		mark := "( )"
		style := lipgloss.NewStyle()
		if opt.Equal(p.Selected) {
			mark = "(•)"
			style = style.Foreground(lipgloss.Color(p.Accent)).Bold(true)
			if p.Focused {
				style = style.Reverse(true)
			}
		}
		view := style.Render(mark + " " + opt.Label)
		items = append(items, hit.Block{
			View: view,
			Regions: []hit.Region{{
				Area: panel.Rect{Width: lipgloss.Width(view), Height: 1},
				Action: hit.Action{
					Kind:    hit.Pick,
					Control: p.Control,
					Field:   p.Field,
					Option:  opt,
				},
			}},
		})
	}

	return hit.Stack(title, hit.Row(2, items...))
}
