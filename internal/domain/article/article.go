// Package article defines the typography options of the article preview.
package article

import "fmt"

// Option is one selectable value of a styling field.
type Option struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	ClassName string `json:"className,omitempty"`
}

// Equal reports whether two options carry the same value.
func (o Option) Equal(other Option) bool {
	return o.Value == other.Value
}

// Field identifies one of the five styling fields.
type Field int

const (
	FontFamily Field = iota
	FontSize
	FontColor
	BackgroundColor
	ContentWidth
)

// Fields lists every field in panel order.
var Fields = []Field{FontFamily, FontSize, FontColor, BackgroundColor, ContentWidth}

// String returns the field's wire name.
func (f Field) String() string {
	switch f {
	case FontFamily:
		return "fontFamilyOption"
	case FontSize:
		return "fontSizeOption"
	case FontColor:
		return "fontColor"
	case BackgroundColor:
		return "backgroundColor"
	case ContentWidth:
		return "contentWidth"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Title returns the human readable caption shown above the field.
func (f Field) Title() string {
	switch f {
	case FontFamily:
		return "Font"
	case FontSize:
		return "Font size"
	case FontColor:
		return "Font color"
	case BackgroundColor:
		return "Background color"
	case ContentWidth:
		return "Content width"
	default:
		return ""
	}
}

// State holds exactly one option per field.
type State struct {
	FontFamilyOption Option `json:"fontFamilyOption"`
	FontSizeOption   Option `json:"fontSizeOption"`
	FontColor        Option `json:"fontColor"`
	BackgroundColor  Option `json:"backgroundColor"`
	ContentWidth     Option `json:"contentWidth"`
}

// Get returns the option selected for field.
func (s State) Get(field Field) Option {
	switch field {
	case FontFamily:
		return s.FontFamilyOption
	case FontSize:
		return s.FontSizeOption
	case FontColor:
		return s.FontColor
	case BackgroundColor:
		return s.BackgroundColor
	case ContentWidth:
		return s.ContentWidth
	default:
		return Option{}
	}
}

// With returns a copy of s with field replaced by option.
// Unknown fields leave the state untouched.
func (s State) With(field Field, option Option) State {
	switch field {
	case FontFamily:
		s.FontFamilyOption = option
	case FontSize:
		s.FontSizeOption = option
	case FontColor:
		s.FontColor = option
	case BackgroundColor:
		s.BackgroundColor = option
	case ContentWidth:
		s.ContentWidth = option
	}
	return s
}

// Equal compares two states field by field using option values.
func (s State) Equal(other State) bool {
	for _, field := range Fields {
		if !s.Get(field).Equal(other.Get(field)) {
			return false
		}
	}
	return true
}
