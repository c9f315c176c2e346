// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/folio/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	OpenSource
	Reload
	OpenLink
	TogglePanel
	Back
	NextField
	PrevField
	PrevOption
	NextOption
	Up
	Down
	Select
	Apply
	Reset
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent. Panel bindings come first so
// that they win over scrolling keys bound to the same key.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Apply):
		return Intent{Type: Apply}
	case key.Matches(msg, keys.Reset):
		return Intent{Type: Reset}
	case key.Matches(msg, keys.TogglePanel):
		return Intent{Type: TogglePanel}
	case key.Matches(msg, keys.NextField):
		return Intent{Type: NextField}
	case key.Matches(msg, keys.PrevField):
		return Intent{Type: PrevField}
	case key.Matches(msg, keys.Select):
		return Intent{Type: Select}
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.OpenSource):
		return Intent{Type: OpenSource}
	case key.Matches(msg, keys.Reload):
		return Intent{Type: Reload}
	case key.Matches(msg, keys.OpenLink):
		return Intent{Type: OpenLink}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Left):
		return Intent{Type: PrevOption}
	case key.Matches(msg, keys.Right):
		return Intent{Type: NextOption}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	default:
		return Intent{Type: None}
	}
}
