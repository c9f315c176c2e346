// Package paramsform renders the article parameters panel.
package paramsform

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/presentation/tui/components/arrowbutton"
	"github.com/tesso57/folio/internal/presentation/tui/components/button"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
	"github.com/tesso57/folio/internal/presentation/tui/components/radiogroup"
	"github.com/tesso57/folio/internal/presentation/tui/components/selectfield"
	"github.com/tesso57/folio/internal/presentation/tui/components/separator"
	"github.com/tesso57/folio/internal/presentation/tui/components/text"
	"github.com/tesso57/folio/internal/presentation/tui/metrics"
)

// Focusable controls in tab order.
const (
	ControlFontFamily = iota
	ControlFontSize
	ControlFontColor
	ControlBackgroundColor
	ControlContentWidth
	ControlReset
	ControlApply
	ControlCount
)

// NoControl marks that no select is expanded.
const NoControl = -1

// FieldFor returns the article field edited by control.
func FieldFor(control int) (article.Field, bool) {
	switch control {
	case ControlFontFamily:
		return article.FontFamily, true
	case ControlFontSize:
		return article.FontSize, true
	case ControlFontColor:
		return article.FontColor, true
	case ControlBackgroundColor:
		return article.BackgroundColor, true
	case ControlContentWidth:
		return article.ContentWidth, true
	default:
		return 0, false
	}
}

// IsSelect reports whether control is rendered as a drop-down.
func IsSelect(control int) bool {
	_, ok := FieldFor(control)
	return ok && control != ControlFontSize
}

// Props defines the properties for the parameters panel.
type Props struct {
	Open     bool
	Pending  article.State
	Focus    int
	Expanded int
	Cursor   int
	Height   int
	Accent   string
	Border   string
	Muted    string
}

// Render renders the closed arrow or the open panel. Regions are in screen
// coordinates with the panel anchored at the top-left cell. The second
// return value is the panel boundary used for outside-click detection.
func Render(p Props) (hit.Block, panel.Rect) {
	arrow := arrowbutton.Render(arrowbutton.Props{IsOpen: p.Open, Accent: p.Accent})
	if !p.Open {
		return arrow, panel.Rect{}
	}

	inner := metrics.PanelInnerWidth
	blank := hit.Text(" ")
	heading := hit.Text("\n" + text.Render(text.Props{
		Text:      "Set parameters",
		Uppercase: true,
		Bold:      true,
		Width:     inner - metrics.ArrowWidth - 2,
	}))

	body := hit.Stack(
		hit.Row(2, arrow, heading),
		p.selectField(ControlFontFamily, inner, false),
		blank,
		radiogroup.Render(radiogroup.Props{
			Title:    article.FontSize.Title(),
			Field:    article.FontSize,
			Control:  ControlFontSize,
			Options:  article.FontSizeOptions(),
			Selected: p.Pending.FontSizeOption,
			Focused:  p.Focus == ControlFontSize,
			Width:    inner,
			Accent:   p.Accent,
			Muted:    p.Muted,
		}),
		blank,
		p.selectField(ControlFontColor, inner, true),
		hit.Text(separator.Render(inner, p.Muted)),
		p.selectField(ControlBackgroundColor, inner, true),
		blank,
		p.selectField(ControlContentWidth, inner, false),
		blank,
		hit.Row(2,
			button.Render(button.Props{
				Title:   "Reset",
				Kind:    button.Clear,
				Focused: p.Focus == ControlReset,
				Accent:  p.Accent,
				Action:  hit.Action{Kind: hit.Reset, Control: ControlReset},
			}),
			button.Render(button.Props{
				Title:   "Apply",
				Kind:    button.Submit,
				Focused: p.Focus == ControlApply,
				Accent:  p.Accent,
				Action:  hit.Action{Kind: hit.Apply, Control: ControlApply},
			}),
		),
	)

	style := lipgloss.NewStyle().
		Width(metrics.PanelWidth-metrics.PanelBorderRight).
		Padding(metrics.PanelPadY, metrics.PanelPadX).
		Border(lipgloss.RoundedBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(p.Border))
	if p.Height > 0 {
		style = style.Height(p.Height).MaxHeight(p.Height)
	}

	view := style.Render(body.View)
	bounds := panel.Rect{Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
	framed := hit.Block{
		View:    view,
		Regions: clip(body.Offset(metrics.PanelPadX, metrics.PanelPadY).Regions, bounds),
	}
	return framed, bounds
}

// clip drops regions that start outside the visible panel.
func clip(regions []hit.Region, bounds panel.Rect) []hit.Region {
	out := regions[:0]
	for _, r := range regions {
		if bounds.Contains(panel.Point{X: r.Area.X, Y: r.Area.Y}) {
			out = append(out, r)
		}
	}
	return out
}

func (p Props) selectField(control, width int, swatch bool) hit.Block {
	field, _ := FieldFor(control)
	return selectfield.Render(selectfield.Props{
		Title:    field.Title(),
		Field:    field,
		Control:  control,
		Options:  article.OptionsFor(field),
		Selected: p.Pending.Get(field),
		Focused:  p.Focus == control,
		Expanded: p.Expanded == control,
		Cursor:   p.Cursor,
		Swatch:   swatch,
		Width:    width,
		Accent:   p.Accent,
		Muted:    p.Muted,
	})
}
