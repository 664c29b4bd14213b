// Package controls provides the option pickers shown in the panel form.
package controls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/articleparams/internal/appearance"
)

var (
	titleStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(lipgloss.Color("245"))

	focusedTitleStyle = lipgloss.NewStyle().
				Width(18).
				Bold(true).
				Foreground(lipgloss.Color("205"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	focusedValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("238"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Control picks one option out of a fixed list.
type Control interface {
	Title() string
	Selected() appearance.Option
	SetSelected(appearance.Option) bool
	Next() appearance.Option
	Prev() appearance.Option
	View(focused bool) string
}

type picker struct {
	title   string
	options []appearance.Option
	index   int
}

func newPicker(title string, options []appearance.Option, selected appearance.Option) picker {
	p := picker{title: title, options: options}
	p.SetSelected(selected)
	return p
}

func (p *picker) Title() string {
	return p.title
}

func (p *picker) Selected() appearance.Option {
	if len(p.options) == 0 {
		return appearance.Option{}
	}
	return p.options[p.index]
}

// SetSelected moves the selection to o. It reports false when o is not one
// of the options, leaving the selection unchanged.
func (p *picker) SetSelected(o appearance.Option) bool {
	for i, candidate := range p.options {
		if candidate == o {
			p.index = i
			return true
		}
	}
	return false
}

func (p *picker) Next() appearance.Option {
	if len(p.options) > 0 {
		p.index = (p.index + 1) % len(p.options)
	}
	return p.Selected()
}

func (p *picker) Prev() appearance.Option {
	if len(p.options) > 0 {
		p.index = (p.index - 1 + len(p.options)) % len(p.options)
	}
	return p.Selected()
}

func (p *picker) renderTitle(focused bool) string {
	if focused {
		return focusedTitleStyle.Render("▸ " + p.title)
	}
	return titleStyle.Render("  " + p.title)
}

// Select shows the chosen option between arrows; the neighbours are hinted
// only while focused.
type Select struct {
	picker
}

// NewSelect creates a Select over options with selected pre-chosen.
func NewSelect(title string, options []appearance.Option, selected appearance.Option) *Select {
	return &Select{picker: newPicker(title, options, selected)}
}

// View renders the select on one line.
func (s *Select) View(focused bool) string {
	label := s.Selected().Label
	if !focused {
		return s.renderTitle(false) + " " + valueStyle.Render(label)
	}
	position := mutedStyle.Render(positionHint(s.index, len(s.options)))
	return s.renderTitle(true) + " " + focusedValueStyle.Render("‹ "+label+" ›") + " " + position
}

// RadioGroup lays every option out side by side and marks the chosen one.
type RadioGroup struct {
	picker
}

// NewRadioGroup creates a RadioGroup over options with selected pre-chosen.
func NewRadioGroup(title string, options []appearance.Option, selected appearance.Option) *RadioGroup {
	return &RadioGroup{picker: newPicker(title, options, selected)}
}

// View renders the radio group on one line.
func (r *RadioGroup) View(focused bool) string {
	parts := make([]string, len(r.options))
	for i, o := range r.options {
		mark := "○"
		if i == r.index {
			mark = "●"
		}
		item := mark + " " + o.Label
		switch {
		case i == r.index && focused:
			parts[i] = focusedValueStyle.Render(item)
		case i == r.index:
			parts[i] = valueStyle.Render(item)
		default:
			parts[i] = mutedStyle.Render(item)
		}
	}
	return r.renderTitle(focused) + " " + strings.Join(parts, "  ")
}

func positionHint(index, total int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("(%d/%d)", index+1, total)
}
