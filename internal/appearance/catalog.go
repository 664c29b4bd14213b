// Package appearance holds the fixed option catalog for article presentation
// and the immutable Settings value built from it.
package appearance

// Option is one selectable choice within a category.
type Option struct {
	Value     string
	Label     string
	ClassName string
}

// Category identifies one of the five adjustable presentation dimensions.
type Category int

const (
	FontFamily Category = iota
	FontSize
	FontColor
	BackgroundColor
	ContentWidth
)

// categoryCount is the number of categories; keep in sync with the constants above.
const categoryCount = 5

var categoryKeys = [categoryCount]string{
	"font-family",
	"font-size",
	"font-color",
	"background-color",
	"content-width",
}

var categoryTitles = [categoryCount]string{
	"Font",
	"Font size",
	"Text color",
	"Background color",
	"Content width",
}

var (
	fontFamilyOptions = []Option{
		{Value: "Open Sans", Label: "Open Sans", ClassName: "open-sans"},
		{Value: "Ubuntu", Label: "Ubuntu", ClassName: "ubuntu"},
		{Value: "Cormorant Garamond", Label: "Cormorant Garamond", ClassName: "cormorant-garamond"},
		{Value: "Days One", Label: "Days One", ClassName: "days-one"},
		{Value: "Merriweather", Label: "Merriweather", ClassName: "merriweather"},
		{Value: "Roboto Mono", Label: "Roboto Mono", ClassName: "roboto-mono"},
	}

	fontSizeOptions = []Option{
		{Value: "18px", Label: "18px", ClassName: "font-size-18"},
		{Value: "25px", Label: "25px", ClassName: "font-size-25"},
		{Value: "38px", Label: "38px", ClassName: "font-size-38"},
	}

	fontColorOptions = []Option{
		{Value: "#000000", Label: "Black", ClassName: "font-black"},
		{Value: "#FFFFFF", Label: "White", ClassName: "font-white"},
		{Value: "#C4C4C4", Label: "Gray", ClassName: "font-gray"},
		{Value: "#FEAFE8", Label: "Pink", ClassName: "font-pink"},
		{Value: "#FD24AF", Label: "Hot pink", ClassName: "font-hot-pink"},
		{Value: "#FFC802", Label: "Yellow", ClassName: "font-yellow"},
		{Value: "#80D994", Label: "Green", ClassName: "font-green"},
		{Value: "#6FC1FD", Label: "Blue", ClassName: "font-blue"},
		{Value: "#5F34C8", Label: "Purple", ClassName: "font-purple"},
	}

	backgroundColorOptions = []Option{
		{Value: "#FFFFFF", Label: "White", ClassName: "bg-white"},
		{Value: "#000000", Label: "Dark", ClassName: "bg-dark"},
		{Value: "#C4C4C4", Label: "Gray", ClassName: "bg-gray"},
		{Value: "#FEAFE8", Label: "Pink", ClassName: "bg-pink"},
		{Value: "#FFC802", Label: "Yellow", ClassName: "bg-yellow"},
		{Value: "#80D994", Label: "Green", ClassName: "bg-green"},
		{Value: "#6FC1FD", Label: "Blue", ClassName: "bg-blue"},
		{Value: "#5F34C8", Label: "Purple", ClassName: "bg-purple"},
		{Value: "#FFF8DC", Label: "Beige", ClassName: "bg-beige"},
	}

	contentWidthOptions = []Option{
		{Value: "1394px", Label: "Wide", ClassName: "width-wide"},
		{Value: "948px", Label: "Narrow", ClassName: "width-narrow"},
	}
)

// Categories returns every category in panel order.
func Categories() []Category {
	return []Category{FontFamily, FontSize, FontColor, BackgroundColor, ContentWidth}
}

// CategoryByKey resolves a category from its key, e.g. "font-size".
func CategoryByKey(key string) (Category, bool) {
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), true
		}
	}
	return 0, false
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// Key returns the machine name of the category.
func (c Category) Key() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryKeys[c]
}

// Title returns the human-readable heading shown next to the control.
func (c Category) Title() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryTitles[c]
}

func (c Category) String() string {
	return c.Key()
}

// Options returns the ordered options of the category. The slice is a copy.
func (c Category) Options() []Option {
	var src []Option
	switch c {
	case FontFamily:
		src = fontFamilyOptions
	case FontSize:
		src = fontSizeOptions
	case FontColor:
		src = fontColorOptions
	case BackgroundColor:
		src = backgroundColorOptions
	case ContentWidth:
		src = contentWidthOptions
	default:
		return nil
	}
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

// Default returns the designated default option of the category.
func (c Category) Default() Option {
	switch c {
	case FontFamily:
		return fontFamilyOptions[0]
	case FontSize:
		return fontSizeOptions[0]
	case FontColor:
		return fontColorOptions[0]
	case BackgroundColor:
		return backgroundColorOptions[0]
	case ContentWidth:
		return contentWidthOptions[0]
	}
	return Option{}
}

// Lookup finds an option by machine value. Labels are accepted as a fallback
// so "Dark" resolves the same as "#000000".
func (c Category) Lookup(value string) (Option, bool) {
	options := c.Options()
	for _, o := range options {
		if o.Value == value {
			return o, true
		}
	}
	for _, o := range options {
		if o.Label == value {
			return o, true
		}
	}
	return Option{}, false
}

// Contains reports whether o is a member of the category's catalog.
func (c Category) Contains(o Option) bool {
	for _, candidate := range c.Options() {
		if candidate == o {
			return true
		}
	}
	return false
}

// IndexOf returns the position of o in the catalog, or -1.
func (c Category) IndexOf(o Option) int {
	for i, candidate := range c.Options() {
		if candidate == o {
			return i
		}
	}
	return -1
}
