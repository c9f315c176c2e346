package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/domain/document"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	TextInput     textinput.Model
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Loading       bool
	Keys          KeyMap
	Width         int
	Height        int
	Err           error
	StatusMessage string

	Source   document.Source
	Document *document.Document
	// Article is the last committed selection; the preview renders from it.
	Article article.State

	// Panel focus and drop-down state. Expanded is paramsform.NoControl when
	// every select is collapsed.
	Focus    int
	Expanded int
	Cursor   int

	Aside       hit.Block
	PanelBounds panel.Rect

	PreviewDirty  bool
	RenderedWidth int
}
