// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/tesso57/folio/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/folio/internal/presentation/tui/components/main"
	"github.com/tesso57/folio/internal/presentation/tui/components/modal"
	"github.com/tesso57/folio/internal/presentation/tui/state"
	"github.com/tesso57/folio/internal/presentation/tui/textutil"
	"github.com/tesso57/folio/internal/presentation/tui/update"
	"github.com/tesso57/folio/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	open := m.panel.IsOpen()
	return view.Props{
		Aside:       m.state.Aside.View,
		AsideHeight: update.BodyHeight(m.state, open),
		Header:      m.buildHeaderProps(),
		Main:        m.buildMainProps(),
		Modal:       m.buildModalProps(),
		Footer:      update.FooterText(m.state, open),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	doc := m.state.Document
	if doc == nil {
		return header.Props{}
	}
	return header.Props{
		Visible: true,
		Source:  textutil.SingleLine(doc.Source.Label()),
		Link:    textutil.SingleLine(doc.Link),
		Stale:   doc.Stale,
		Width:   m.state.Viewport.Width,
		Muted:   m.settings.Theme.Muted,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	var body string
	switch {
	case m.state.Loading:
		body = fmt.Sprintf("\n\n   %s Loading %s...", m.state.Spinner.View(), m.state.Source.Label())
	case m.state.Document != nil:
		body = m.state.Viewport.View()
	}
	if m.state.Err != nil && !m.state.Loading {
		body = fmt.Sprintf("Error: %v\n\n%s", m.state.Err, body)
	}

	return mainview.Props{
		Width:  m.state.Viewport.Width,
		Height: update.BodyHeight(m.state, m.panel.IsOpen()),
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	base := modal.Props{
		Visible: true,
		Width:   m.state.Width,
		Height:  m.state.Height,
		Accent:  m.settings.Theme.Accent,
		Border:  m.settings.Theme.Border,
	}
	switch {
	case m.state.Session == state.OpenSourceView:
		base.Kind = modal.OpenSource
		base.Body = openSourceBody(m.state.TextInput.View(), m.preview.Recent(), m.state.Keys.Forget.Help().Key, m.state.StatusMessage)
	case m.state.Session == state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?\n\n(y/n)"
	case m.state.Help.ShowAll:
		base.Kind = modal.Help
		base.Body = m.state.Help.View(&m.state.Keys)
	default:
		return modal.Props{Visible: false}
	}
	return base
}

func openSourceBody(input string, recent []string, forgetKey, status string) string {
	var b strings.Builder
	b.WriteString("Open a file or feed URL:\n\n")
	b.WriteString(input)
	if len(recent) > 0 {
		b.WriteString("\n\nRecent (type the number):")
		for i, src := range recent {
			fmt.Fprintf(&b, "\n %d. %s", i+1, textutil.Truncate(src, 52))
		}
		fmt.Fprintf(&b, "\n\n(%s forgets the numbered entry)", forgetKey)
	}
	if status != "" {
		b.WriteString("\n\n" + status)
	}
	b.WriteString("\n\n(enter to open, esc to cancel)")
	return b.String()
}
