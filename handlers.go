package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zam-dot/articleparams/internal/panel"
	"github.com/zam-dot/articleparams/internal/presentation"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case contentLoadedMsg:
		return m.handleContentLoaded(msg)
	case errorMsg:
		return m.handleError(msg)
	case panel.CommittedMsg:
		return m.handleCommitted(msg)
	}

	return m, nil
}

// Handle key messages. While the panel is open it receives every key except
// quit and the panel toggle.
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Toggle) {
		return m.handleTogglePanel()
	}

	if m.form.IsOpen() {
		cmd := m.form.Update(msg)
		if !m.form.IsOpen() {
			m.layout()
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	// Anything else scrolls the article
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Handle mouse messages: the header button toggles the panel, any other
// press outside the open panel closes it, the wheel scrolls the article.
func (m *model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if press && m.onToggleButton(msg.X, msg.Y) {
		return m.handleTogglePanel()
	}

	if m.detector.Observe(msg) {
		m.layout()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleTogglePanel() (tea.Model, tea.Cmd) {
	m.form.Toggle()
	m.layout()
	return m, nil
}

// handleCopy puts the committed presentation variables on the clipboard as CSS
func (m *model) handleCopy() (tea.Model, tea.Cmd) {
	css := presentation.CSS(m.store.Current())
	if err := m.copy(css); err != nil {
		m.log.Error(err, "clipboard write failed")
		m.setStatus("Could not copy: "+err.Error(), true)
		return m, nil
	}
	m.setStatus("Copied presentation variables as CSS", false)
	return m, nil
}

// Message handlers
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	if !m.ready {
		m.viewport = viewport.New(m.articleWidth(), 1)
		m.viewport.YPosition = headerHeight
		m.ready = true
	}

	m.layout()
	return m, nil
}

func (m *model) handleContentLoaded(msg contentLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.article = msg.article
	m.setStatus("Press p or click ▸ Aa to change the article parameters", false)
	m.log.WithFields(map[string]any{
		"source": msg.article.Source,
		"title":  msg.article.Title,
	}).Info("article loaded")

	m.renderContent()
	if m.ready {
		m.viewport.GotoTop()
	}
	return m, nil
}

func (m *model) handleError(msg errorMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.log.Error(msg.err, "article load failed")
	m.article = Article{
		Title:    "Could not load article",
		Markdown: fmt.Sprintf("# Could not load article\n\n%s\n\n`%v`\n", displaySource(msg.source), msg.err),
		Source:   msg.source,
	}
	m.setStatus(msg.err.Error(), true)
	m.renderContent()
	return m, nil
}

// handleCommitted reports the applied settings. The store subscription has
// already re-rendered the article.
func (m *model) handleCommitted(msg panel.CommittedMsg) (tea.Model, tea.Cmd) {
	text := "Settings applied"
	if msg.Reset {
		text = "Settings reset to defaults"
	}
	if lowContrast(msg.Settings) {
		m.setStatus(text+": text and background colors are hard to tell apart", true)
	} else {
		m.setStatus(text, false)
	}
	m.layout()
	return m, nil
}
