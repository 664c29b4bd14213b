package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zam-dot/articleparams/internal/appearance"
	"github.com/zam-dot/articleparams/internal/presentation"
)

// ============================================================================
// PRESENTATION VARIABLES -> TERMINAL STYLE
// ============================================================================
// A terminal cannot switch typefaces or scale glyphs, so each variable is
// translated into something a terminal can show:
//
// font-family      -> text treatment (italic serif, bold display, mono headings)
// font-size        -> document margin and emphasis
// font-color       -> document foreground
// container-width  -> word wrap column, px / pxPerColumn
// background-color -> document background and light/dark base theme

const (
	pxPerColumn = 14
	minColumns  = 20
)

type familyTreatment struct {
	italic        bool
	bold          bool
	upperHeadings bool
	headingPrefix string
}

var familyTreatments = map[string]familyTreatment{
	"open-sans":          {},
	"ubuntu":             {upperHeadings: true},
	"cormorant-garamond": {italic: true},
	"days-one":           {bold: true, upperHeadings: true},
	"merriweather":       {italic: true, bold: true},
	"roboto-mono":        {headingPrefix: "// "},
}

type sizeTreatment struct {
	margin uint
	strong bool
}

var sizeTreatments = map[string]sizeTreatment{
	"18px": {margin: 1},
	"25px": {margin: 2},
	"38px": {margin: 4, strong: true},
}

// contentColumns converts the container width into a wrap column that fits
// the available terminal width.
func contentColumns(width appearance.Option, available int) int {
	px := 0
	for _, r := range strings.TrimSuffix(width.Value, "px") {
		if r < '0' || r > '9' {
			break
		}
		px = px*10 + int(r-'0')
	}

	columns := px / pxPerColumn
	if available > 0 && columns > available-2 {
		columns = available - 2
	}
	if columns < minColumns {
		columns = minColumns
	}
	return columns
}

// isDark reports whether hex is closer to black than to white.
func isDark(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l < 0.5
}

// lowContrast reports whether text and background are hard to tell apart.
func lowContrast(s appearance.Settings) bool {
	fg, err := colorful.Hex(s.FontColor.Value)
	if err != nil {
		return false
	}
	bg, err := colorful.Hex(s.BackgroundColor.Value)
	if err != nil {
		return false
	}
	return fg.DistanceLab(bg) < 0.2
}

// articleStyle builds a glamour style config from the presentation variables.
func articleStyle(s appearance.Settings) ansi.StyleConfig {
	vars := presentation.Variables(s)
	lookup := make(map[string]string, len(vars))
	for _, v := range vars {
		lookup[v.Name] = v.Value
	}
	fg := lookup[presentation.VarFontColor]
	bg := lookup[presentation.VarBackgroundColor]

	style := styles.LightStyleConfig
	if isDark(bg) {
		style = styles.DarkStyleConfig
	}

	family := familyTreatments[s.FontFamily.ClassName]
	size := sizeTreatments[s.FontSize.Value]
	margin := size.margin

	style.Document.Color = &fg
	style.Document.BackgroundColor = &bg
	style.Document.Margin = &margin
	style.Document.Italic = boolPtr(family.italic)
	style.Document.Bold = boolPtr(family.bold || size.strong)

	style.Paragraph.Color = &fg
	style.Text.Color = &fg

	style.Heading.Color = &fg
	style.Heading.BackgroundColor = &bg
	style.Heading.Upper = boolPtr(family.upperHeadings)

	// H1 carries its own colours in the base themes; invert text/background instead
	style.H1.Color = &bg
	style.H1.BackgroundColor = &fg
	if family.headingPrefix != "" {
		for _, h := range []*ansi.StyleBlock{&style.H2, &style.H3, &style.H4, &style.H5, &style.H6} {
			h.Prefix = family.headingPrefix + strings.TrimLeft(h.Prefix, "# ")
		}
	}

	style.BlockQuote.Color = &fg
	style.Item.Color = &fg
	return style
}

// renderArticle renders markdown with the committed settings into at most
// available columns. The result is centered on the background colour.
func renderArticle(markdown string, s appearance.Settings, available int) string {
	columns := contentColumns(s.ContentWidth, available)
	bg := lipgloss.Color(s.BackgroundColor.Value)

	body, err := renderMarkdown(markdown, articleStyle(s), columns)
	if err != nil {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.FontColor.Value)).
			Background(bg).
			Render(wordwrap.String(markdown, columns))
	}

	if available <= 0 {
		return body
	}
	return lipgloss.PlaceHorizontal(
		available,
		lipgloss.Center,
		body,
		lipgloss.WithWhitespaceBackground(bg),
	)
}

func renderMarkdown(markdown string, style ansi.StyleConfig, columns int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(columns),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

func boolPtr(b bool) *bool {
	return &b
}
