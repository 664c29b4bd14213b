package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the form reacts to while open.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Submit key.Binding
	Apply  key.Binding
	Reset  key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the standard panel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→/l", "next option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Apply: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "apply"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "reset"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Next, k.Submit, k.Reset, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Submit, k.Apply, k.Reset, k.Close},
	}
}
