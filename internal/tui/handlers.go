package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stefanclaw/cardkit/internal/config"
	"github.com/stefanclaw/cardkit/internal/update"
)

type commandHandler func(m *Model, args string) (tea.Model, tea.Cmd)

var commandHandlers map[string]commandHandler

func init() {
	commandHandlers = map[string]commandHandler{
		"help":      handleHelp,
		"quit":      handleQuit,
		"exit":      handleQuit,
		"cards":     handleCards,
		"dashboard": handleDashboard,
		"filter":    handleFilter,
		"clear":     handleClear,
		"update":    handleUpdate,
	}
}

func (m *Model) handleCommand(cmd *Command) (tea.Model, tea.Cmd) {
	h, ok := commandHandlers[cmd.Name]
	if !ok {
		m.setNotice(fmt.Sprintf("Unknown command: /%s (try /help)", cmd.Name))
		return m, nil
	}
	return h(m, cmd.Args)
}

func handleQuit(m *Model, args string) (tea.Model, tea.Cmd) {
	return m.quit()
}

func handleHelp(m *Model, args string) (tea.Model, tea.Cmd) {
	m.setNotice(HelpText())
	return m, nil
}

func handleCards(m *Model, args string) (tea.Model, tea.Cmd) {
	m.setPage(config.PageCards)
	return m, nil
}

func handleDashboard(m *Model, args string) (tea.Model, tea.Cmd) {
	m.setPage(config.PageDashboard)
	return m, nil
}

func handleFilter(m *Model, args string) (tea.Model, tea.Cmd) {
	m.input.SetValue(args)
	m.input.CursorEnd()
	m.notice = ""
	if m.page != config.PageCards {
		m.setPage(config.PageCards)
	}
	m.filter(args)
	return m, nil
}

func handleClear(m *Model, args string) (tea.Model, tea.Cmd) {
	m.clear()
	return m, nil
}

func handleUpdate(m *Model, args string) (tea.Model, tea.Cmd) {
	if !update.IsRelease(m.options.Version) {
		m.setNotice("Auto-update is not available for development builds.")
		return m, nil
	}
	m.setNotice("Checking for updates...")
	return m, m.applyUpdate()
}
