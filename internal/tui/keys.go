package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SwitchPage key.Binding
	Clear      key.Binding
	Submit     key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchPage: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch page")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run /command")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPage, k.Clear, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchPage, k.Clear, k.Submit},
		{k.PageUp, k.PageDown, k.Quit},
	}
}
