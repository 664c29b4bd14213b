package main

import "github.com/charmbracelet/lipgloss"

// ============================================================================
// STYLING SYSTEM
// ============================================================================
// Chrome around the article: header bar, panel toggle button and status line.
// The article itself is styled from the committed settings in renderers.go.

var (
	// headerStyle styles the top bar holding the toggle button and title
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	// toggleStyle is the arrow button that opens the panel
	toggleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63"))

	// toggleOpenStyle marks the button while the panel is open
	toggleOpenStyle = toggleStyle.
			Background(lipgloss.Color("205"))

	// titleStyle styles the article title in the header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	// statusStyle is the line under the article
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	// errorStyle highlights failures in the status line
	errorStyle = statusStyle.
			Foreground(lipgloss.Color("203"))

	// helpStyle pads the key help under the status line
	helpStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// ============================================================================
// COLOR SYSTEM
// ============================================================================
// "63"  - Purple      (toggle button)
// "205" - Pink        (toggle button while open)
// "203" - Red-Orange  (errors)
// "252" - Light Gray  (header text)
// "241" - Dark Gray   (status text)
// "236" - Very Dark   (header/status background)
