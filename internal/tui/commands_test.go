package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stefanclaw/cardkit/internal/config"
)

func TestParseSlashCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantArgs string
	}{
		{"/help", "help", ""},
		{"/quit", "quit", ""},
		{"/filter card one", "filter", "card one"},
		{"/Dashboard", "dashboard", ""},
		{"  /help  ", "help", ""},
	}

	for _, tt := range tests {
		cmd := ParseCommand(tt.input)
		if cmd == nil {
			t.Errorf("ParseCommand(%q) = nil, want command", tt.input)
			continue
		}
		if cmd.Name != tt.wantName {
			t.Errorf("ParseCommand(%q).Name = %q, want %q", tt.input, cmd.Name, tt.wantName)
		}
		if cmd.Args != tt.wantArgs {
			t.Errorf("ParseCommand(%q).Args = %q, want %q", tt.input, cmd.Args, tt.wantArgs)
		}
	}
}

func TestParseSlashCommand_NotACommand(t *testing.T) {
	for _, input := range []string{"card", "card one", "", "  "} {
		if cmd := ParseCommand(input); cmd != nil {
			t.Errorf("ParseCommand(%q) = %+v, want nil", input, cmd)
		}
	}
}

func TestHelpText(t *testing.T) {
	help := HelpText()
	for name := range commandHandlers {
		if !strings.Contains(help, "/"+name) {
			t.Errorf("help text missing command: /%s", name)
		}
	}
}

func TestPageCommands(t *testing.T) {
	m, _ := newTestModel(t)

	m = submit(t, m, "/dashboard")
	if m.page != config.PageDashboard {
		t.Errorf("page = %q after /dashboard", m.page)
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q, commands should reset the input", m.input.Value())
	}

	m = submit(t, m, "/cards")
	if m.page != config.PageCards {
		t.Errorf("page = %q after /cards", m.page)
	}
}

func TestFilterCommand(t *testing.T) {
	m, s := newTestModel(t)
	m = submit(t, m, "/dashboard")

	m = submit(t, m, "/filter two")
	if m.page != config.PageCards {
		t.Errorf("/filter should switch to cards, page = %q", m.page)
	}
	if m.input.Value() != "two" {
		t.Errorf("input = %q, want two", m.input.Value())
	}
	if s.View().Term != "two" {
		t.Errorf("searcher term = %q, want two", s.View().Term)
	}
	m = deliver(t, m)
	if len(m.view.Cards) != 1 || m.view.Cards[0].Title != "Card Two" {
		t.Errorf("view = %v, want [Card Two]", viewTitles(m.view))
	}
}

func TestClearCommand(t *testing.T) {
	m, s := newTestModel(t)
	m = submit(t, m, "/filter six")
	m = submit(t, m, "/clear")

	if s.View().Term != "" {
		t.Errorf("searcher term = %q after /clear, want empty", s.View().Term)
	}
	if m.notice != "" {
		t.Errorf("notice = %q after /clear, want empty", m.notice)
	}
}

func TestHelpCommand(t *testing.T) {
	m, _ := newTestModel(t)
	m = submit(t, m, "/help")
	if !strings.Contains(m.View(), "/dashboard") {
		t.Error("help should be shown in the view")
	}
}

func TestUnknownCommand(t *testing.T) {
	m, _ := newTestModel(t)
	m = submit(t, m, "/foobar")
	if !strings.Contains(m.notice, "Unknown command: /foobar") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestQuitCommand(t *testing.T) {
	for _, input := range []string{"/quit", "/exit"} {
		m, _ := newTestModel(t)
		m = submit(t, m, input)
		if !m.quitting {
			t.Errorf("should be quitting after %s", input)
		}
		if m.View() != "Goodbye!\n" {
			t.Errorf("view after %s = %q", input, m.View())
		}
	}
}

func TestUpdateCommandDevBuild(t *testing.T) {
	m, _ := newTestModel(t)
	m = submit(t, m, "/update")
	if !strings.Contains(m.notice, "development builds") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestPlainEnterIsNoop(t *testing.T) {
	m, s := newTestModel(t)
	m = deliver(t, typeText(t, m, "four"))
	m = press(t, m, tea.KeyEnter)
	if m.input.Value() != "four" || s.View().Term != "four" {
		t.Errorf("enter on a plain term should keep it, input %q term %q", m.input.Value(), s.View().Term)
	}
}
