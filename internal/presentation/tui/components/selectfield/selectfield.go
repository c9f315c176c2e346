// Package selectfield renders a drop-down select for one article field.
package selectfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
	"github.com/tesso57/folio/internal/presentation/tui/textutil"
)

// Props defines the properties for the select component.
type Props struct {
	Title    string
	Field    article.Field
	Control  int
	Options  []article.Option
	Selected article.Option
	Focused  bool
	Expanded bool
	Cursor   int
	Swatch   bool
	Width    int
	Accent   string
	Muted    string
}

// Render renders the title, the closed select and, when expanded, its options.
func Render(p Props) hit.Block {
	width := max(p.Width, 8)

	titleColor := p.Muted
	if p.Focused {
		titleColor = p.Accent
	}
	title := lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color(titleColor)).
		Render(p.Title)

	chevron := "▾"
	if p.Expanded {
		chevron = "▴"
	}
	boxStyle := lipgloss.NewStyle().Width(width)
	if p.Focused {
		boxStyle = boxStyle.Reverse(true)
	}
	box := boxStyle.Render(line(p, p.Selected, " ", chevron, width))

	blocks := []hit.Block{
		{View: title, Regions: []hit.Region{region(width, hit.Action{Kind: hit.Focus, Control: p.Control, Field: p.Field})}},
		{View: box, Regions: []hit.Region{region(width, hit.Action{Kind: hit.Expand, Control: p.Control, Field: p.Field})}},
	}

	if p.Expanded {
		for i, opt := range p.Options {
			marker := " "
			if opt.Equal(p.Selected) {
				marker = "✓"
			}
			style := lipgloss.NewStyle().Width(width)
			if i == p.Cursor {
				style = style.Foreground(lipgloss.Color(p.Accent)).Bold(true)
				if marker == " " {
					marker = "›"
				}
			}
			blocks = append(blocks, hit.Block{
				View: style.Render(line(p, opt, marker, "", width)),
				Regions: []hit.Region{region(width, hit.Action{
					Kind:    hit.Pick,
					Control: p.Control,
					Field:   p.Field,
					Option:  opt,
				})},
			})
		}
	}

	return hit.Stack(blocks...)
}

func line(p Props, opt article.Option, marker, suffix string, width int) string {
	left := marker + " "
	if p.Swatch {
		left += lipgloss.NewStyle().Foreground(lipgloss.Color(opt.Value)).Render("██") + " "
	}
	room := width - lipgloss.Width(left) - lipgloss.Width(suffix) - 1
	label := textutil.Truncate(opt.Label, room)
	pad := max(room-lipgloss.Width(label), 0)
	return left + label + strings.Repeat(" ", pad+1) + suffix
}

func region(width int, action hit.Action) hit.Region {
	return hit.Region{Area: panel.Rect{Width: width, Height: 1}, Action: action}
}
