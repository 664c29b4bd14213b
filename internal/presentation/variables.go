package presentation

import (
	"fmt"
	"strings"

	"github.com/zam-dot/articleparams/internal/appearance"
)

// Variable is one named presentation parameter consumed by the renderer.
type Variable struct {
	Name  string
	Value string
}

// Variable names, in the order Variables returns them.
const (
	VarFontFamily      = "font-family"
	VarFontSize        = "font-size"
	VarFontColor       = "font-color"
	VarContainerWidth  = "container-width"
	VarBackgroundColor = "background-color"
)

// Variables maps committed settings onto the five presentation parameters.
func Variables(s appearance.Settings) []Variable {
	return []Variable{
		{Name: VarFontFamily, Value: s.FontFamily.Value},
		{Name: VarFontSize, Value: s.FontSize.Value},
		{Name: VarFontColor, Value: s.FontColor.Value},
		{Name: VarContainerWidth, Value: s.ContentWidth.Value},
		{Name: VarBackgroundColor, Value: s.BackgroundColor.Value},
	}
}

// CSS renders the variables as CSS custom property declarations, one per line.
func CSS(s appearance.Settings) string {
	var b strings.Builder
	for _, v := range Variables(s) {
		fmt.Fprintf(&b, "--%s: %s;\n", v.Name, v.Value)
	}
	return b.String()
}
