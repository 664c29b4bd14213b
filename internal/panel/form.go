package panel

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zam-dot/articleparams/internal/appearance"
	"github.com/zam-dot/articleparams/internal/controls"
	"github.com/zam-dot/articleparams/internal/logger"
	"github.com/zam-dot/articleparams/internal/outside"
)

// Width is the number of terminal columns the open panel occupies.
const Width = 52

// Focus positions after the five category fields.
const (
	focusReset = iota + 5
	focusApply
	focusCount
)

// CommittedMsg is emitted after the form pushed a value to the committer.
type CommittedMsg struct {
	Settings appearance.Settings
	Reset    bool
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(1, 2).
			Width(Width - 2)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238"))

	focusedButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

// Form renders the controller as a form and maps key presses onto it.
type Form struct {
	controller *Controller
	controls   []controls.Control
	focus      int
	keys       KeyMap
	log        *logger.Logger
	originX    int
	originY    int
}

// NewForm wires a form around controller. log may be nil.
func NewForm(controller *Controller, log *logger.Logger) *Form {
	draft := controller.Draft()
	f := &Form{
		controller: controller,
		keys:       DefaultKeyMap(),
		log:        log,
	}
	for _, c := range appearance.Categories() {
		if c == appearance.FontSize {
			f.controls = append(f.controls, controls.NewRadioGroup(c.Title(), c.Options(), draft.Get(c)))
			continue
		}
		f.controls = append(f.controls, controls.NewSelect(c.Title(), c.Options(), draft.Get(c)))
	}
	return f
}

// Controller exposes the underlying state machine.
func (f *Form) Controller() *Controller {
	return f.controller
}

// Keys returns the form bindings for help rendering.
func (f *Form) Keys() KeyMap {
	return f.keys
}

// IsOpen reports whether the panel is visible.
func (f *Form) IsOpen() bool {
	return f.controller.IsOpen()
}

// Focus returns the focused position: 0-4 are categories, then Reset, Apply.
func (f *Form) Focus() int {
	return f.focus
}

// SetOrigin records where the panel is drawn so Region can report it.
func (f *Form) SetOrigin(x, y int) {
	f.originX = x
	f.originY = y
}

// Region returns the screen area of the rendered panel.
func (f *Form) Region() outside.Region {
	return outside.Region{
		X:      f.originX,
		Y:      f.originY,
		Width:  Width,
		Height: lipgloss.Height(f.View()),
	}
}

// Toggle opens or closes the panel. Opening reloads the controls from the
// fresh draft.
func (f *Form) Toggle() {
	f.controller.Toggle()
	if f.controller.IsOpen() {
		f.syncControls()
		f.focus = 0
		f.log.Debug("panel opened")
		return
	}
	f.log.Debug("panel closed")
}

// Close handles an outside interaction notification. It matches the
// collaborator signature func(bool) and only acts on false.
func (f *Form) Close(open bool) {
	if open || !f.controller.IsOpen() {
		return
	}
	f.controller.OutsideInteraction()
	f.log.Debug("panel closed by outside interaction")
}

// Apply commits the draft.
func (f *Form) Apply() tea.Cmd {
	f.controller.Apply()
	committed := f.controller.Committed()
	f.log.WithFields(map[string]any{
		"font_family": committed.FontFamily.Value,
		"font_size":   committed.FontSize.Value,
		"font_color":  committed.FontColor.Value,
		"background":  committed.BackgroundColor.Value,
		"width":       committed.ContentWidth.Value,
	}).Info("settings applied")
	return func() tea.Msg {
		return CommittedMsg{Settings: committed}
	}
}

// Reset commits the defaults.
func (f *Form) Reset() tea.Cmd {
	f.controller.Reset()
	f.syncControls()
	f.log.Info("settings reset to defaults")
	committed := f.controller.Committed()
	return func() tea.Msg {
		return CommittedMsg{Settings: committed, Reset: true}
	}
}

// Update handles key presses while the panel is open. Other messages and a
// closed panel are ignored.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.controller.IsOpen() {
		return nil
	}

	switch {
	case key.Matches(keyMsg, f.keys.Close):
		f.Toggle()
	case key.Matches(keyMsg, f.keys.Apply):
		return f.Apply()
	case key.Matches(keyMsg, f.keys.Reset):
		return f.Reset()
	case key.Matches(keyMsg, f.keys.Submit):
		if f.focus == focusReset {
			return f.Reset()
		}
		return f.Apply()
	case key.Matches(keyMsg, f.keys.Up):
		f.focus = (f.focus - 1 + focusCount) % focusCount
	case key.Matches(keyMsg, f.keys.Down):
		f.focus = (f.focus + 1) % focusCount
	case key.Matches(keyMsg, f.keys.Next):
		f.step(true)
	case key.Matches(keyMsg, f.keys.Prev):
		f.step(false)
	}
	return nil
}

// step moves the focused control's selection and writes it into the draft.
// On the button row it moves focus between Reset and Apply instead.
func (f *Form) step(forward bool) {
	if f.focus >= len(f.controls) {
		if f.focus == focusReset {
			f.focus = focusApply
		} else {
			f.focus = focusReset
		}
		return
	}

	category := appearance.Categories()[f.focus]
	control := f.controls[f.focus]
	var chosen appearance.Option
	if forward {
		chosen = control.Next()
	} else {
		chosen = control.Prev()
	}
	if err := f.controller.Set(category, chosen); err != nil {
		f.log.Error(err, "draft update rejected")
		control.SetSelected(f.controller.Draft().Get(category))
	}
}

func (f *Form) syncControls() {
	draft := f.controller.Draft()
	for i, c := range appearance.Categories() {
		f.controls[i].SetSelected(draft.Get(c))
	}
}

// View renders the open panel. A closed panel renders as an empty string.
func (f *Form) View() string {
	if !f.controller.IsOpen() {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("ARTICLE PARAMETERS"))
	b.WriteString("\n\n")

	for i, control := range f.controls {
		if appearance.Categories()[i] == appearance.BackgroundColor {
			b.WriteString(separatorStyle.Render(strings.Repeat("─", Width-8)))
			b.WriteString("\n\n")
		}
		b.WriteString(control.View(f.focus == i))
		b.WriteString("\n\n")
	}

	if f.controller.Dirty() {
		b.WriteString(dirtyStyle.Render("unsaved changes"))
	}
	b.WriteString("\n\n")

	reset := buttonStyle.Render("Reset")
	if f.focus == focusReset {
		reset = focusedButtonStyle.Render("Reset")
	}
	apply := buttonStyle.Render("Apply")
	if f.focus == focusApply {
		apply = focusedButtonStyle.Render("Apply")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, reset, "  ", apply))

	return panelStyle.Render(b.String())
}
