package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/tesso57/folio/internal/application/settings"
	"github.com/tesso57/folio/internal/presentation/tui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up:          "k,up",
		Down:        "j,down",
		Left:        "h,left",
		Right:       "l,right",
		TogglePanel: "p",
		NextField:   "tab",
		PrevField:   "shift+tab",
		Select:      "enter",
		Apply:       "ctrl+s",
		Reset:       "ctrl+r",
		Back:        "esc",
		OpenSource:  "o",
		Reload:      "r",
		OpenLink:    "b",
		Quit:        "q",
	})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{"quit", runes("q"), Quit},
		{"help", runes("?"), ToggleHelp},
		{"open source", runes("o"), OpenSource},
		{"reload", runes("r"), Reload},
		{"open link", runes("b"), OpenLink},
		{"toggle panel", runes("p"), TogglePanel},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, Back},
		{"next field", tea.KeyMsg{Type: tea.KeyTab}, NextField},
		{"prev field", tea.KeyMsg{Type: tea.KeyShiftTab}, PrevField},
		{"prev option", runes("h"), PrevOption},
		{"next option", tea.KeyMsg{Type: tea.KeyRight}, NextOption},
		{"up", runes("k"), Up},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, Down},
		{"select", tea.KeyMsg{Type: tea.KeyEnter}, Select},
		{"apply", tea.KeyMsg{Type: tea.KeyCtrlS}, Apply},
		{"reset", tea.KeyMsg{Type: tea.KeyCtrlR}, Reset},
		{"unbound", runes("z"), None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromKeyMsg(tt.msg, keys).Type)
		})
	}
}
