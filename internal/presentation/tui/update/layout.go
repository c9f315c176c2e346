package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/presentation/tui/components/paramsform"
	"github.com/tesso57/folio/internal/presentation/tui/components/preview"
	"github.com/tesso57/folio/internal/presentation/tui/metrics"
	"github.com/tesso57/folio/internal/presentation/tui/state"
)

type layoutMetrics struct {
	bodyHeight     int
	mainWidth      int
	viewportHeight int
}

// Sync re-renders the aside, resizes the preview viewport and refreshes the
// panel boundary. Call it after every state change.
func Sync(s *state.ModelState, deps Deps) {
	open := deps.Panel.IsOpen()
	if !open {
		collapse(s)
	}

	layout := buildLayoutMetrics(s, open)
	props := paramsform.Props{
		Open:     open,
		Pending:  deps.Panel.Pending(),
		Focus:    s.Focus,
		Expanded: s.Expanded,
		Cursor:   s.Cursor,
		Accent:   deps.Theme.Accent,
		Border:   deps.Theme.Border,
		Muted:    deps.Theme.Muted,
	}
	if s.Height > 0 {
		props.Height = layout.bodyHeight
	}
	s.Aside, s.PanelBounds = paramsform.Render(props)
	if open {
		deps.Panel.SetBoundary(s.PanelBounds)
	} else {
		deps.Panel.SetBoundary(nil)
	}

	layout = buildLayoutMetrics(s, open)
	s.Viewport.Width = layout.mainWidth
	s.Viewport.Height = layout.viewportHeight
	refreshPreview(s, layout.mainWidth, deps)
}

func refreshPreview(s *state.ModelState, width int, deps Deps) {
	if s.Document == nil || s.Width <= 0 {
		return
	}
	if !s.PreviewDirty && s.RenderedWidth == width {
		return
	}
	content, err := preview.Render(preview.Props{
		Title:        s.Document.Title,
		Byline:       s.Document.Byline,
		Body:         s.Document.Body,
		State:        s.Article,
		Width:        width,
		GlamourStyle: deps.Theme.GlamourStyle,
	})
	if err != nil {
		s.Err = err
		if deps.Logger != nil {
			deps.Logger.Error("preview render failed", "err", err)
		}
	} else {
		s.Viewport.SetContent(content)
	}
	s.PreviewDirty = false
	s.RenderedWidth = width
}

func buildLayoutMetrics(s *state.ModelState, panelOpen bool) layoutMetrics {
	bodyHeight := clampMin(s.Height-lipgloss.Height(FooterText(s, panelOpen)), 1)
	asideWidth := s.Aside.Width()
	mainWidth := clampMin(s.Width-asideWidth, 1)

	headerHeight := 0
	if s.Document != nil {
		headerHeight = metrics.HeaderLines
	}
	return layoutMetrics{
		bodyHeight:     bodyHeight,
		mainWidth:      mainWidth,
		viewportHeight: clampMin(bodyHeight-headerHeight, 1),
	}
}

// BodyHeight returns the height above the footer.
func BodyHeight(s *state.ModelState, panelOpen bool) int {
	return buildLayoutMetrics(s, panelOpen).bodyHeight
}

// FooterText returns the footer for the current state. The panel bindings
// replace the global ones while the panel is open.
func FooterText(s *state.ModelState, panelOpen bool) string {
	s.Help.Width = s.Width
	var keys help.KeyMap = &s.Keys
	if panelOpen {
		keys = s.Keys.Panel()
	}
	return state.FooterText(s.Session, s.Loading, s.StatusMessage, state.FooterHelpText(s.Help, keys))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
