// Package outside reports pointer presses that land outside a screen region.
package outside

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Region is a rectangle of terminal cells.
type Region struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Detector calls OnChange(false) when a left-button press lands outside
// Region while Active returns true.
type Detector struct {
	Region   func() Region
	Active   func() bool
	OnChange func(bool)
}

// Observe inspects a mouse message. It reports whether OnChange was called.
func (d Detector) Observe(msg tea.MouseMsg) bool {
	if d.Active == nil || !d.Active() {
		return false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if d.Region != nil && d.Region().Contains(msg.X, msg.Y) {
		return false
	}
	if d.OnChange != nil {
		d.OnChange(false)
	}
	return true
}
