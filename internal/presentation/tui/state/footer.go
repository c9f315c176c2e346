package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, status, helpText string) string {
	status = strings.TrimSpace(status)
	if loading || status == "" || session != PreviewView {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}

// FooterHelpText renders the short help of keys over two lines.
func FooterHelpText(h help.Model, keys help.KeyMap) string {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	half := (len(bindings) + 1) / 2
	first := h.ShortHelpView(bindings[:half])
	second := h.ShortHelpView(bindings[half:])
	if second == "" {
		return first
	}
	return first + "\n" + second
}
