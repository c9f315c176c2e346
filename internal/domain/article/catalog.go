package article

var fontFamilyOptions = []Option{
	{Value: "Open Sans", Label: "Open Sans", ClassName: "open-sans"},
	{Value: "Ubuntu", Label: "Ubuntu", ClassName: "ubuntu"},
	{Value: "Cormorant Garamond", Label: "Cormorant Garamond", ClassName: "cormorant-garamond"},
	{Value: "Days One", Label: "Days One", ClassName: "days-one"},
	{Value: "Merriweather", Label: "Merriweather", ClassName: "merriweather"},
}

var fontSizeOptions = []Option{
	{Value: "18px", Label: "18px", ClassName: "font-size-18"},
	{Value: "24px", Label: "24px", ClassName: "font-size-24"},
	{Value: "38px", Label: "38px", ClassName: "font-size-38"},
}

var fontColors = []Option{
	{Value: "#000000", Label: "Black", ClassName: "font-black"},
	{Value: "#FFFFFF", Label: "White", ClassName: "font-white"},
	{Value: "#C4C4C4", Label: "Gray", ClassName: "font-gray"},
	{Value: "#FEAFE8", Label: "Pink", ClassName: "font-pink"},
	{Value: "#FD24AF", Label: "Hot pink", ClassName: "font-hot-pink"},
	{Value: "#FFC802", Label: "Yellow", ClassName: "font-yellow"},
	{Value: "#80D994", Label: "Green", ClassName: "font-green"},
	{Value: "#6FC1FD", Label: "Blue", ClassName: "font-blue"},
	{Value: "#5F3FCE", Label: "Purple", ClassName: "font-purple"},
}

var backgroundColors = []Option{
	{Value: "#FFFFFF", Label: "White", ClassName: "bg-white"},
	{Value: "#000000", Label: "Black", ClassName: "bg-black"},
	{Value: "#C4C4C4", Label: "Gray", ClassName: "bg-gray"},
	{Value: "#FEAFE8", Label: "Pink", ClassName: "bg-pink"},
	{Value: "#FD24AF", Label: "Hot pink", ClassName: "bg-hot-pink"},
	{Value: "#FFC802", Label: "Yellow", ClassName: "bg-yellow"},
	{Value: "#80D994", Label: "Green", ClassName: "bg-green"},
	{Value: "#6FC1FD", Label: "Blue", ClassName: "bg-blue"},
	{Value: "#5F3FCE", Label: "Purple", ClassName: "bg-purple"},
}

var contentWidths = []Option{
	{Value: "1394px", Label: "Wide", ClassName: "width-wide"},
	{Value: "948px", Label: "Medium", ClassName: "width-medium"},
	{Value: "800px", Label: "Narrow", ClassName: "width-narrow"},
}

var defaultState = State{
	FontFamilyOption: fontFamilyOptions[0],
	FontSizeOption:   fontSizeOptions[0],
	FontColor:        fontColors[0],
	BackgroundColor:  backgroundColors[0],
	ContentWidth:     contentWidths[2],
}

// Default returns the selection the panel starts from and resets to.
func Default() State { return defaultState }

// FontFamilyOptions returns the selectable font families.
func FontFamilyOptions() []Option { return clone(fontFamilyOptions) }

// FontSizeOptions returns the selectable font sizes.
func FontSizeOptions() []Option { return clone(fontSizeOptions) }

// FontColors returns the selectable font colours.
func FontColors() []Option { return clone(fontColors) }

// BackgroundColors returns the selectable background colours.
func BackgroundColors() []Option { return clone(backgroundColors) }

// ContentWidths returns the selectable content widths.
func ContentWidths() []Option { return clone(contentWidths) }

// OptionsFor returns the catalog of field in display order.
func OptionsFor(field Field) []Option {
	switch field {
	case FontFamily:
		return FontFamilyOptions()
	case FontSize:
		return FontSizeOptions()
	case FontColor:
		return FontColors()
	case BackgroundColor:
		return BackgroundColors()
	case ContentWidth:
		return ContentWidths()
	default:
		return nil
	}
}

// Contains reports whether option belongs to the catalog of field.
func Contains(field Field, option Option) bool {
	return IndexOf(field, option) >= 0
}

// IndexOf returns the catalog position of option for field, or -1.
func IndexOf(field Field, option Option) int {
	for i, candidate := range OptionsFor(field) {
		if candidate.Equal(option) {
			return i
		}
	}
	return -1
}

// Step returns the option delta positions away from current, wrapping around.
func Step(field Field, current Option, delta int) Option {
	options := OptionsFor(field)
	if len(options) == 0 {
		return current
	}
	idx := IndexOf(field, current)
	if idx < 0 {
		idx = 0
	}
	idx = ((idx+delta)%len(options) + len(options)) % len(options)
	return options[idx]
}

func clone(options []Option) []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
