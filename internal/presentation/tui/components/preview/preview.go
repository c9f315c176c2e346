// Package preview renders the article with the committed parameters applied.
package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/presentation/tui/metrics"
)

// DefaultGlamourStyle renders plain text so that colours come from the article state.
const DefaultGlamourStyle = "notty"

// Props defines the properties for the preview.
type Props struct {
	Title        string
	Byline       string
	Body         string
	State        article.State
	Width        int
	GlamourStyle string
}

// typeface is how a font family shows up in a terminal.
type typeface struct {
	titleBold      bool
	titleItalic    bool
	titleUppercase bool
	bodyBold       bool
	bodyItalic     bool
}

var typefaces = map[string]typeface{
	"Open Sans":          {titleBold: true},
	"Ubuntu":             {titleBold: true, titleUppercase: true},
	"Cormorant Garamond": {titleItalic: true, bodyItalic: true},
	"Days One":           {titleBold: true, titleUppercase: true, bodyBold: true},
	"Merriweather":       {titleBold: true, titleItalic: true},
}

// ParsePx returns the integer part of a CSS pixel value such as "800px".
func ParsePx(value string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "px"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Columns returns the text width for state within the available columns.
func Columns(state article.State, available int) int {
	cols := ParsePx(state.ContentWidth.Value) / metrics.PxPerColumn
	if cols <= 0 || cols > available {
		cols = available
	}
	return max(cols, 1)
}

// Scale maps the font size to a spacing step: 1 for the smallest size.
func Scale(state article.State) int {
	switch px := ParsePx(state.FontSizeOption.Value); {
	case px >= 38:
		return 3
	case px >= 24:
		return 2
	default:
		return 1
	}
}

// Render returns the article laid out over the full available width.
func Render(p Props) (string, error) {
	if p.Width <= 0 {
		return "", nil
	}
	cols := Columns(p.State, p.Width)

	glamourStyle := p.GlamourStyle
	if glamourStyle == "" {
		glamourStyle = DefaultGlamourStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(cols),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	body, err := r.Render(p.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render article: %w", err)
	}

	face := typefaces[p.State.FontFamilyOption.Value]
	scale := Scale(p.State)
	fg := lipgloss.Color(p.State.FontColor.Value)
	bg := lipgloss.Color(p.State.BackgroundColor.Value)
	base := lipgloss.NewStyle().Width(cols).Foreground(fg).Background(bg)

	var lines []string
	if p.Title != "" {
		title := p.Title
		if face.titleUppercase {
			title = strings.ToUpper(title)
		}
		titleStyle := base.Bold(face.titleBold).Italic(face.titleItalic).Underline(scale >= 2)
		lines = append(lines, titleStyle.Render(title))
		if p.Byline != "" {
			lines = append(lines, base.Faint(true).Render(p.Byline))
		}
		lines = append(lines, base.Render(""))
	}

	bodyStyle := base.Bold(face.bodyBold).Italic(face.bodyItalic)
	for _, line := range spaced(bodyLines(body), scale) {
		lines = append(lines, bodyStyle.Render(line))
	}

	block := strings.Join(lines, "\n")
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(bg)), nil
}

// bodyLines trims the renderer's margins and padding.
func bodyLines(rendered string) []string {
	raw := strings.Split(strings.Trim(rendered, "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, " "))
	}
	minIndent := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent > 0 {
		for i, line := range lines {
			if len(line) >= minIndent {
				lines[i] = line[minIndent:]
			}
		}
	}
	return lines
}

// spaced adds vertical rhythm for larger font sizes: paragraph gaps grow at
// scale 2 and every line gets a gap at scale 3.
func spaced(lines []string, scale int) []string {
	if scale <= 1 {
		return lines
	}
	out := make([]string, 0, len(lines)*2)
	for i, line := range lines {
		out = append(out, line)
		switch {
		case line == "":
			out = append(out, "")
		case scale >= 3 && i+1 < len(lines) && lines[i+1] != "":
			out = append(out, "")
		}
	}
	return out
}
