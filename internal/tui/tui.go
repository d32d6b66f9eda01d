package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/stefanclaw/cardkit/internal/chart"
	"github.com/stefanclaw/cardkit/internal/config"
	"github.com/stefanclaw/cardkit/internal/search"
	"github.com/stefanclaw/cardkit/internal/update"
)

// Options configures the TUI.
type Options struct {
	Searcher  *search.Searcher
	Charts    []chart.Chart
	StartPage string
	Theme     string
	Version   string
	Logger    *zap.Logger
}

// ViewChangedMsg carries a recomputed view from the searcher subscription.
type ViewChangedMsg struct {
	View search.View
}

// UpdateCheckMsg carries the result of a background update check.
type UpdateCheckMsg struct {
	Result *update.Result
	Err    error
}

// UpdateApplyMsg carries the result of an update apply.
type UpdateApplyMsg struct {
	Result *update.Result
	Err    error
}

// Model is the Bubble Tea model for the card browser and dashboard.
type Model struct {
	options  Options
	logger   *zap.Logger
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	page   string
	view   search.View
	notice string // last system message, shown above the card list

	views  chan search.View
	cancel func()

	mdRenderer *glamour.TermRenderer
	width      int
	height     int
	ready      bool
	quitting   bool
}

// New creates a new TUI model and subscribes it to the searcher.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Search cards... (/help for commands)"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = inputPromptStyle.Render("🔍 ")

	page := opts.StartPage
	if page != config.PageDashboard {
		page = config.PageCards
	}

	views := make(chan search.View, 1)
	cancel := func() {}
	if opts.Searcher != nil {
		cancel = opts.Searcher.Subscribe(func(v search.View) {
			publishLatest(views, v)
		})
	}

	return Model{
		options:    opts,
		logger:     logger,
		input:      ti,
		viewport:   viewport.New(80, 20),
		help:       help.New(),
		keys:       defaultKeyMap(),
		page:       page,
		views:      views,
		cancel:     cancel,
		mdRenderer: newMarkdownRenderer(opts.Theme, 72),
	}
}

// publishLatest hands v to the UI loop, replacing any view it has not read yet.
func publishLatest(ch chan search.View, v search.View) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// waitForView reads the next view published by the searcher subscription.
func waitForView(ch <-chan search.View) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return ViewChangedMsg{View: v}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForView(m.views))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()

		case key.Matches(msg, m.keys.SwitchPage):
			m.switchPage()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.clear()
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.handleSubmit()

		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-6, 1)
		m.viewport.Width = m.width
		m.viewport.Height = m.viewportHeight()
		m.mdRenderer = newMarkdownRenderer(m.options.Theme, m.width-8)

		if !m.ready {
			m.ready = true
			m.filter(m.input.Value())
			var initCmds []tea.Cmd
			if update.IsRelease(m.options.Version) {
				initCmds = append(initCmds, m.checkForUpdate())
			}
			m.updateViewport()
			return m, tea.Batch(initCmds...)
		}
		m.updateViewport()
		return m, nil

	case ViewChangedMsg:
		m.view = msg.View
		m.updateViewport()
		return m, waitForView(m.views)

	case UpdateCheckMsg:
		if msg.Err != nil {
			m.logger.Debug("update check failed", zap.Error(msg.Err))
		} else if msg.Result != nil && msg.Result.UpdateAvailable {
			m.setNotice(msg.Result.Summary())
		}
		return m, nil

	case UpdateApplyMsg:
		if msg.Err != nil {
			m.setNotice(fmt.Sprintf("Update failed: %v", msg.Err))
		} else {
			m.setNotice(msg.Result.Summary())
		}
		return m, nil
	}

	// Live filtering on the cards page; slash commands wait for enter.
	before := m.input.Value()
	var inCmd tea.Cmd
	m.input, inCmd = m.input.Update(msg)
	cmds = append(cmds, inCmd)
	if after := m.input.Value(); after != before && !strings.HasPrefix(strings.TrimSpace(after), "/") {
		m.filter(after)
	}

	// Letter keys belong to the search input, not the viewport's vim bindings.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Initializing..."
	}

	total := 0
	if m.options.Searcher != nil {
		total = m.options.Searcher.Catalog().Len()
	}
	status := StatusBar(m.page, m.view, total, m.width)
	separator := lipgloss.NewStyle().
		Foreground(secondaryColor).
		Width(m.width).
		Render(strings.Repeat("─", m.width))

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		status,
		m.input.View(),
		separator,
		m.viewport.View(),
		m.help.View(m.keys),
	)
}

// viewportHeight leaves room for the status bar, input, separator and help line.
func (m *Model) viewportHeight() int {
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// filter sends term to the searcher. The resulting view arrives through the
// subscription as a ViewChangedMsg.
func (m *Model) filter(term string) {
	if m.options.Searcher == nil {
		return
	}
	m.options.Searcher.Filter(term)
}

func (m *Model) switchPage() {
	if m.page == config.PageCards {
		m.setPage(config.PageDashboard)
	} else {
		m.setPage(config.PageCards)
	}
}

func (m *Model) setPage(page string) {
	m.logger.Debug("switching page", zap.String("from", m.page), zap.String("to", page))
	m.page = page
	m.updateViewport()
	m.viewport.GotoTop()
}

func (m *Model) clear() {
	m.notice = ""
	m.input.Reset()
	m.filter("")
	m.updateViewport()
}

func (m *Model) setNotice(s string) {
	m.notice = s
	m.updateViewport()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	cmd := ParseCommand(input)
	if cmd == nil {
		// Plain terms are already applied on every keystroke.
		return m, nil
	}
	m.input.Reset()
	m.logger.Debug("running command", zap.String("name", cmd.Name), zap.String("args", cmd.Args))
	return m.handleCommand(cmd)
}

func (m *Model) updateViewport() {
	var lines []string
	if m.notice != "" {
		lines = append(lines, systemMsgStyle.Render(m.notice), "")
	}

	switch m.page {
	case config.PageDashboard:
		lines = append(lines, renderDashboard(m.options.Charts, m.width))
	default:
		lines = append(lines, renderCardList(m.view, m.width, m.mdRenderer))
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) checkForUpdate() tea.Cmd {
	version := m.options.Version
	return func() tea.Msg {
		res, err := update.Check(context.Background(), version)
		return UpdateCheckMsg{Result: res, Err: err}
	}
}

func (m *Model) applyUpdate() tea.Cmd {
	version := m.options.Version
	return func() tea.Msg {
		res, err := update.Apply(context.Background(), version)
		return UpdateApplyMsg{Result: res, Err: err}
	}
}
