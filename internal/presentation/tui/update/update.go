// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/application/settings"
	"github.com/tesso57/folio/internal/application/usecase"
	"github.com/tesso57/folio/internal/domain/document"
	"github.com/tesso57/folio/internal/presentation/tui/intent"
	"github.com/tesso57/folio/internal/presentation/tui/pointer"
	"github.com/tesso57/folio/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Panel   *panel.Controller
	Pointer *pointer.Document
	Preview *usecase.PreviewService
	Logger  *log.Logger
	Theme   settings.ThemeConfig
	// OpenBrowser opens a URL outside the terminal.
	OpenBrowser func(string) error
}

// DocumentLoadedMsg is emitted after loading a document.
type DocumentLoadedMsg struct {
	Source   document.Source
	Document *document.Document
	Err      error
}

// LoadDocumentCmd creates a command that loads src through the preview service.
func LoadDocumentCmd(svc *usecase.PreviewService, src document.Source) tea.Cmd {
	return func() tea.Msg {
		doc, err := svc.Load(context.Background(), src)
		return DocumentLoadedMsg{Source: src, Document: doc, Err: err}
	}
}

// StartLoad marks src as the current source and returns the load command.
func StartLoad(s *state.ModelState, src document.Source, deps Deps) tea.Cmd {
	s.Source = src
	s.Loading = true
	s.Err = nil
	s.StatusMessage = ""
	return tea.Batch(s.Spinner.Tick, LoadDocumentCmd(deps.Preview, src))
}

// HandleDocumentLoadedMsg stores the loaded document. Results for a source
// other than the current one are dropped.
func HandleDocumentLoadedMsg(s *state.ModelState, msg DocumentLoadedMsg, deps Deps) {
	if msg.Source.Key() != s.Source.Key() {
		return
	}
	s.Loading = false
	if msg.Err != nil {
		if deps.Logger != nil {
			deps.Logger.Error("document load failed", "source", msg.Source.Key(), "err", msg.Err)
		}
		s.Err = msg.Err
		return
	}
	s.Err = nil
	s.Document = msg.Document
	s.PreviewDirty = true
	s.Viewport.GotoTop()
	if msg.Document != nil && msg.Document.Stale {
		s.StatusMessage = "Offline: showing the cached copy"
	}
}

// HandleWindowSize stores the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.OpenSourceView {
		return handleOpenSourceView(s, msg, deps)
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg, deps)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll {
		switch parsed.Type {
		case intent.ToggleHelp, intent.Back, intent.Quit:
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.OpenSource:
		s.Session = state.OpenSourceView
		s.StatusMessage = ""
		s.TextInput.Reset()
		s.TextInput.Focus()
		return textinput.Blink, true
	}

	if deps.Panel.IsOpen() {
		if cmd, handled := handlePanelIntent(s, parsed, deps); handled {
			return cmd, true
		}
	}

	switch parsed.Type {
	case intent.TogglePanel:
		deps.Panel.Toggle()
		return nil, true
	case intent.Reload:
		return StartLoad(s, s.Source, deps), true
	case intent.OpenLink:
		openLink(s, deps)
		return nil, true
	}

	switch {
	case key.Matches(msg, s.Keys.Top):
		s.Viewport.GotoTop()
		return nil, true
	case key.Matches(msg, s.Keys.Bottom):
		s.Viewport.GotoBottom()
		return nil, true
	}
	return nil, false
}

func openLink(s *state.ModelState, deps Deps) {
	if s.Document == nil || s.Document.Link == "" || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(s.Document.Link); err != nil {
		s.Err = fmt.Errorf("failed to open link: %w", err)
		return
	}
	s.StatusMessage = "Opened " + s.Document.Link
}

func handleOpenSourceView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(s.TextInput.Value())
		s.TextInput.Reset()
		s.Session = state.PreviewView
		if raw == "" {
			return nil, true
		}
		if n, err := strconv.Atoi(raw); err == nil {
			recent := deps.Preview.Recent()
			if n >= 1 && n <= len(recent) {
				raw = recent[n-1]
			}
		}
		src, err := parseSourceInput(raw)
		if err != nil {
			s.Err = err
			return nil, true
		}
		return StartLoad(s, src, deps), true
	case "esc":
		s.TextInput.Reset()
		s.Session = state.PreviewView
		return nil, true
	}
	if key.Matches(msg, s.Keys.Forget) {
		forgetRecent(s, deps)
		return nil, true
	}

	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd, true
}

// forgetRecent drops the recent source whose number is typed in the input.
func forgetRecent(s *state.ModelState, deps Deps) {
	recent := deps.Preview.Recent()
	n, err := strconv.Atoi(strings.TrimSpace(s.TextInput.Value()))
	if err != nil || n < 1 || n > len(recent) {
		s.StatusMessage = "Type the number of a recent source to forget"
		return
	}
	if err := deps.Preview.Forget(n - 1); err != nil {
		s.Err = err
		return
	}
	s.TextInput.Reset()
	s.StatusMessage = "Forgot " + recent[n-1]
	if deps.Logger != nil {
		deps.Logger.Info("recent source forgotten", "source", recent[n-1])
	}
}

// parseSourceInput accepts a path or URL with an optional " #N" entry index.
func parseSourceInput(raw string) (document.Source, error) {
	item := 0
	if before, after, ok := strings.Cut(raw, " #"); ok {
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(after), "%d", &n); err != nil || n < 0 {
			return document.Source{}, fmt.Errorf("invalid entry index %q", after)
		}
		raw, item = strings.TrimSpace(before), n
	}
	return document.ParseSource(raw, item), nil
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		deps.Panel.Teardown()
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}
