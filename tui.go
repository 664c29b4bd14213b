package main

import (
	"context"
	"net/http"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zam-dot/articleparams/internal/appearance"
	"github.com/zam-dot/articleparams/internal/logger"
	"github.com/zam-dot/articleparams/internal/outside"
	"github.com/zam-dot/articleparams/internal/panel"
	"github.com/zam-dot/articleparams/internal/presentation"
)

// ============================================================================
// MESSAGE TYPES FOR ASYNC OPERATIONS
// ============================================================================

// contentLoadedMsg is sent when the article has been read and parsed
type contentLoadedMsg struct {
	article Article
}

// errorMsg is sent when the article fails to load
type errorMsg struct {
	err    error
	source string
}

const (
	headerHeight = 1
	fetchTimeout = 20 * time.Second
)

// ============================================================================
// READER KEY BINDINGS
// ============================================================================

type readerKeyMap struct {
	Toggle key.Binding
	Copy   key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultReaderKeyMap() readerKeyMap {
	return readerKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "parameters"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy css"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k readerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Copy, k.Help, k.Quit}
}

func (k readerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Copy},
		{k.Help, k.Quit},
	}
}

// ============================================================================
// MAIN APPLICATION MODEL
// ============================================================================

// model is the reader: an article viewport with the parameters panel on the
// left and a header button that toggles it.
type model struct {
	store    *presentation.Store
	form     *panel.Form
	detector outside.Detector
	viewport viewport.Model
	help     help.Model
	keys     readerKeyMap
	log      *logger.Logger

	article Article
	source  string
	client  *http.Client
	copy    func(string) error

	width     int
	height    int
	ready     bool
	loading   bool
	status    string
	statusErr bool

	unsubscribe func()
}

// newModel wires the store, the panel and the outside detector together.
func newModel(store *presentation.Store, source string, log *logger.Logger) *model {
	m := &model{
		store:   store,
		form:    panel.NewForm(panel.NewController(store), log),
		help:    help.New(),
		keys:    defaultReaderKeyMap(),
		log:     log,
		source:  source,
		client:  &http.Client{Timeout: fetchTimeout},
		copy:    clipboard.WriteAll,
		loading: true,
		status:  "Loading " + displaySource(source) + "...",
	}
	m.form.SetOrigin(0, headerHeight)
	m.detector = outside.Detector{
		Region:   m.form.Region,
		Active:   m.form.IsOpen,
		OnChange: m.form.Close,
	}
	m.unsubscribe = store.Subscribe(func(appearance.Settings) {
		m.renderContent()
	})
	return m
}

// ============================================================================
// BUBBLE TEA LIFECYCLE METHODS
// ============================================================================

// Init starts loading the article
func (m *model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *model) loadCmd() tea.Cmd {
	client, source := m.client, m.source
	return func() tea.Msg {
		article, err := loadArticle(context.Background(), client, source)
		if err != nil {
			return errorMsg{err: err, source: source}
		}
		return contentLoadedMsg{article: article}
	}
}

// View renders the header, the article (with the panel beside it when open),
// the status line and key help.
func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	body := m.viewport.View()
	if m.form.IsOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.form.View(), body)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		body,
		m.statusView(),
		m.helpView(),
	)
}

// ============================================================================
// VIEW HELPERS
// ============================================================================

func (m *model) toggleButton() string {
	if m.form.IsOpen() {
		return toggleOpenStyle.Render("◂ Aa")
	}
	return toggleStyle.Render("▸ Aa")
}

// onToggleButton reports whether the cell belongs to the header button.
func (m *model) onToggleButton(x, y int) bool {
	return y == 0 && x >= 0 && x < lipgloss.Width(m.toggleButton())
}

func (m *model) headerView() string {
	button := m.toggleButton()
	title := m.article.Title
	if m.loading {
		title = "Loading..."
	}
	room := m.width - lipgloss.Width(button) - 2
	if room < 0 {
		room = 0
	}
	title = truncate.StringWithTail(title, uint(room), "…")
	row := lipgloss.JoinHorizontal(lipgloss.Top, button, titleStyle.Render(title))
	return headerStyle.Width(m.width).MaxWidth(m.width).Render(row)
}

func (m *model) statusView() string {
	style := statusStyle
	if m.statusErr {
		style = errorStyle
	}
	room := m.width - 2
	if room < 0 {
		room = 0
	}
	text := truncate.StringWithTail(m.status, uint(room), "…")
	return style.Width(m.width).MaxWidth(m.width).Render(text)
}

func (m *model) helpView() string {
	if m.form.IsOpen() {
		return helpStyle.Render(m.help.View(m.form.Keys()))
	}
	return helpStyle.Render(m.help.View(m.keys))
}

// articleWidth is the room left for the article next to the panel.
func (m *model) articleWidth() int {
	w := m.width
	if m.form.IsOpen() {
		w -= panel.Width
	}
	if w < 0 {
		w = 0
	}
	return w
}

// layout sizes the viewport for the current window and panel state and
// re-renders the article into it.
func (m *model) layout() {
	if !m.ready {
		return
	}
	m.help.Width = m.width
	chrome := headerHeight + lipgloss.Height(m.statusView()) + lipgloss.Height(m.helpView())
	height := m.height - chrome
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.articleWidth()
	m.viewport.Height = height
	m.renderContent()
}

// renderContent draws the article with the committed settings.
func (m *model) renderContent() {
	if !m.ready || m.loading {
		return
	}
	m.viewport.SetContent(renderArticle(m.article.Markdown, m.store.Current(), m.viewport.Width))
}

func (m *model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func displaySource(source string) string {
	if source == "" || source == builtinSource {
		return "built-in article"
	}
	return source
}
