package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	def := Default()

	assert.Equal(t, "Open Sans", def.FontFamilyOption.Value)
	assert.Equal(t, "18px", def.FontSizeOption.Value)
	assert.Equal(t, "#000000", def.FontColor.Value)
	assert.Equal(t, "#FFFFFF", def.BackgroundColor.Value)
	assert.Equal(t, "800px", def.ContentWidth.Value)

	for _, field := range Fields {
		assert.Truef(t, Contains(field, def.Get(field)), "default %s not in catalog", field)
	}
}

func TestStateWith(t *testing.T) {
	base := Default()
	size := Option{Value: "24px", Label: "24px"}

	got := base.With(FontSize, size)

	require.Equal(t, size, got.FontSizeOption)
	for _, field := range Fields {
		if field == FontSize {
			continue
		}
		assert.Equal(t, base.Get(field), got.Get(field), field.String())
	}
	assert.Equal(t, "18px", base.FontSizeOption.Value, "With must not mutate the receiver")
}

func TestStateEqual(t *testing.T) {
	a := Default()
	b := Default()
	b.FontColor.Label = "relabelled"
	assert.True(t, a.Equal(b))

	c := a.With(ContentWidth, ContentWidths()[0])
	assert.False(t, a.Equal(c))
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	opts := FontColors()
	opts[0] = Option{Value: "mutated"}

	assert.Equal(t, "#000000", FontColors()[0].Value)
	assert.Equal(t, "#000000", Default().FontColor.Value)
}

func TestOptionsFor(t *testing.T) {
	tests := []struct {
		field Field
		count int
	}{
		{FontFamily, 5},
		{FontSize, 3},
		{FontColor, 9},
		{BackgroundColor, 9},
		{ContentWidth, 3},
		{Field(42), 0},
	}
	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			assert.Len(t, OptionsFor(tt.field), tt.count)
		})
	}
}

func TestStep(t *testing.T) {
	sizes := FontSizeOptions()

	assert.Equal(t, sizes[1], Step(FontSize, sizes[0], 1))
	assert.Equal(t, sizes[0], Step(FontSize, sizes[2], 1), "wraps forward")
	assert.Equal(t, sizes[2], Step(FontSize, sizes[0], -1), "wraps backward")
	assert.Equal(t, sizes[1], Step(FontSize, Option{Value: "unknown"}, 1))
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "fontFamilyOption", FontFamily.String())
	assert.Equal(t, "contentWidth", ContentWidth.String())
	assert.Equal(t, "Field(9)", Field(9).String())
	assert.Equal(t, "Background color", BackgroundColor.Title())
}
