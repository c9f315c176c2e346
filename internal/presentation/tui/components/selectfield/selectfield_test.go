package selectfield

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/folio/internal/application/panel"
	"github.com/tesso57/folio/internal/domain/article"
	"github.com/tesso57/folio/internal/presentation/tui/components/hit"
)

func props() Props {
	return Props{
		Title:    "Font",
		Field:    article.FontFamily,
		Control:  0,
		Options:  article.FontFamilyOptions(),
		Selected: article.Default().FontFamilyOption,
		Width:    30,
		Accent:   "205",
		Muted:    "240",
	}
}

func TestRenderCollapsed(t *testing.T) {
	b := Render(props())

	assert.Equal(t, 2, b.Height())
	assert.Contains(t, b.View, "Font")
	assert.Contains(t, b.View, "Open Sans")
	assert.Contains(t, b.View, "▾")
	assert.NotContains(t, b.View, "Merriweather")

	action, ok := hit.Find(b.Regions, panel.Point{X: 5, Y: 1})
	require.True(t, ok)
	assert.Equal(t, hit.Expand, action.Kind)
	assert.Equal(t, article.FontFamily, action.Field)

	action, ok = hit.Find(b.Regions, panel.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, hit.Focus, action.Kind)
}

func TestRenderExpanded(t *testing.T) {
	p := props()
	p.Expanded = true
	p.Cursor = 2
	b := Render(p)

	options := article.FontFamilyOptions()
	assert.Equal(t, 2+len(options), b.Height())
	assert.Contains(t, b.View, "▴")
	assert.Contains(t, b.View, "✓")
	assert.Contains(t, b.View, "› Cormorant Garamond")

	action, ok := hit.Find(b.Regions, panel.Point{X: 3, Y: 2 + 4})
	require.True(t, ok)
	assert.Equal(t, hit.Pick, action.Kind)
	assert.Equal(t, options[4], action.Option)
}

func TestRenderKeepsWidth(t *testing.T) {
	p := props()
	p.Swatch = true
	p.Options = article.FontColors()
	p.Selected = article.Default().FontColor
	p.Expanded = true
	p.Width = 24
	b := Render(p)

	for i, l := range strings.Split(b.View, "\n") {
		assert.LessOrEqualf(t, ansi.StringWidth(l), 24, "line %d too wide: %q", i, l)
	}
}
