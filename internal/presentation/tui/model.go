package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/application/settings"
	"github.com/tesso57/folio/internal/application/usecase"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/domain/document"
	"github.com/tesso57/folio/internal/logging"
	"github.com/tesso57/folio/internal/presentation/tui/components/paramsform"
	"github.com/tesso57/folio/internal/presentation/tui/pointer"
	"github.com/tesso57/folio/internal/presentation/tui/state"
	"github.com/tesso57/folio/internal/presentation/tui/update"
	"github.com/tesso57/folio/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	preview  *usecase.PreviewService
	panel    *panel.Controller
	pointer  *pointer.Document
	logger   *log.Logger
	state    *state.ModelState
}

// NewModel creates a new application model that previews src.
func NewModel(cfg settings.Settings, previewSvc *usecase.PreviewService, src document.Source, logger *log.Logger) *Model {
	logger = logging.OrDiscard(logger)
	st := newModelState(cfg, src)
	target := pointer.NewDocument()
	m := &Model{
		settings: cfg,
		preview:  previewSvc,
		pointer:  target,
		logger:   logger,
		state:    st,
	}
	m.panel = panel.New(m.commit,
		panel.WithEventTarget(target),
		panel.WithLogger(logger.WithPrefix("panel")),
	)
	update.Sync(st, m.deps())
	return m
}

// commit receives every state the panel applies or resets to.
func (m *Model) commit(a article.State) {
	m.state.Article = a
	m.state.PreviewDirty = true
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return update.StartLoad(m.state, m.state.Source, m.deps())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd
	deps := m.deps()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, deps)
		if handled {
			update.Sync(m.state, deps)
			return m, cmd
		}
	case tea.MouseMsg:
		if update.HandleMouseMsg(m.state, msg, deps) {
			update.Sync(m.state, deps)
			return m, nil
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.DocumentLoadedMsg:
		update.HandleDocumentLoadedMsg(m.state, msg, deps)
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state.Session == state.PreviewView {
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	update.Sync(m.state, deps)
	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Panel:       m.panel,
		Pointer:     m.pointer,
		Preview:     m.preview,
		Logger:      m.logger,
		Theme:       m.settings.Theme,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings, src document.Source) *state.ModelState {
	st := &state.ModelState{
		Session:   state.PreviewView,
		TextInput: newTextInput(),
		Viewport:  newViewport(),
		Help:      help.New(),
		Spinner:   newSpinner(cfg.Theme.Accent),
		Keys:      state.NewKeyMap(cfg.KeyMap),
		Source:    src,
		Article:   article.Default(),
		Focus:     paramsform.ControlFontFamily,
		Expanded:  paramsform.NoControl,
	}

	st.Viewport.KeyMap = viewportKeyMap(st.Keys)
	return st
}

// viewportKeyMap scrolls with the configured keys. Horizontal scrolling is
// disabled because left/right change options in the panel.
func viewportKeyMap(k state.KeyMap) viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     k.DownPage,
		PageUp:       k.UpPage,
		HalfPageUp:   key.NewBinding(key.WithDisabled()),
		HalfPageDown: key.NewBinding(key.WithDisabled()),
		Up:           k.Up,
		Down:         k.Down,
		Left:         key.NewBinding(key.WithDisabled()),
		Right:        key.NewBinding(key.WithDisabled()),
	}
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "notes.md or https://example.com/feed.xml #0"
	ti.CharLimit = 512
	ti.Width = 48
	return ti
}

func newSpinner(accent string) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return vp
}
