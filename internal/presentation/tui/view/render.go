// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/presentation/tui/components/header"
	"github.com/tesso57/folio/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/folio/internal/presentation/tui/components/main"
	"github.com/tesso57/folio/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	Aside       string
	AsideHeight int
	Header      header.Props
	Main        mainview.Props
	Modal       modal.Props
	Footer      string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	aside := p.Aside
	if p.AsideHeight > 0 {
		aside = lipgloss.NewStyle().Height(p.AsideHeight).MaxHeight(p.AsideHeight).Render(aside)
	}

	p.Main.Header = header.Render(p.Header)
	return layout.Render(layout.Props{
		Aside:  aside,
		Main:   mainview.Render(p.Main),
		Footer: p.Footer,
	})
}
