// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// OpenSource asks for a file path or feed URL.
	OpenSource
	// Help lists the key bindings.
	Help
	// Quit asks for confirmation before exiting.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Body    string
	Width   int
	Height  int
	Accent  string
	Border  string
}

// Render renders the dialog centered in Width x Height.
func Render(p Props) string {
	if !p.Visible || p.Kind == None {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(1, 2)

	switch p.Kind {
	case OpenSource:
		style = style.Width(min(60, max(p.Width-4, 20))).BorderForeground(lipgloss.Color(p.Accent))
	case Quit:
		style = style.BorderForeground(lipgloss.Color(p.Accent))
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(p.Body))
}
