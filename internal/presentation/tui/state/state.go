// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/folio/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	PreviewView Session = iota
	OpenSourceView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	UpPage      key.Binding
	DownPage    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	TogglePanel key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Select      key.Binding
	Apply       key.Binding
	Reset       key.Binding
	Back        key.Binding
	OpenSource  key.Binding
	Forget      key.Binding
	Reload      key.Binding
	OpenLink    key.Binding
	Quit        key.Binding
	Help        key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.TogglePanel, k.OpenSource, k.Reload, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage, k.Top, k.Bottom},
		{k.TogglePanel, k.NextField, k.PrevField, k.Left, k.Right},
		{k.Select, k.Apply, k.Reset, k.Back},
		{k.OpenSource, k.Reload, k.OpenLink, k.Help, k.Quit},
	}
}

// Panel returns the bindings that apply while the parameters panel is open.
func (k *KeyMap) Panel() help.KeyMap {
	return panelKeys{k}
}

type panelKeys struct {
	k *KeyMap
}

func (p panelKeys) ShortHelp() []key.Binding {
	k := p.k
	return []key.Binding{k.NextField, k.Left, k.Right, k.Select, k.Apply, k.Reset, k.Back}
}

func (p panelKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:          binding(cfg.Up, "up"),
		Down:        binding(cfg.Down, "down"),
		Left:        binding(cfg.Left, "prev option"),
		Right:       binding(cfg.Right, "next option"),
		UpPage:      binding(cfg.UpPage, "pgup"),
		DownPage:    binding(cfg.DownPage, "pgdn"),
		Top:         binding(cfg.Top, "top"),
		Bottom:      binding(cfg.Bottom, "bottom"),
		TogglePanel: binding(cfg.TogglePanel, "parameters"),
		NextField:   binding(cfg.NextField, "next"),
		PrevField:   binding(cfg.PrevField, "prev"),
		Select:      binding(cfg.Select, "select"),
		Apply:       binding(cfg.Apply, "apply"),
		Reset:       binding(cfg.Reset, "reset"),
		Back:        binding(cfg.Back, "close"),
		OpenSource:  binding(cfg.OpenSource, "open"),
		Forget:      binding(cfg.Forget, "forget recent"),
		Reload:      binding(cfg.Reload, "reload"),
		OpenLink:    binding(cfg.OpenLink, "open link"),
		Quit:        binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
