package tui

import "github.com/charmbracelet/bubbles/key"

type timerKeys struct {
	Start    key.Binding
	Pause    key.Binding
	Stop     key.Binding
	Next     key.Binding
	Back     key.Binding
	Settings key.Binding
	Quit     key.Binding
}

func newTimerKeys() timerKeys {
	return timerKeys{
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause:    key.NewBinding(key.WithKeys("p", " ", "space"), key.WithHelp("p/space", "pause")),
		Stop:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
		Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("n/→", "next")),
		Back:     key.NewBinding(key.WithKeys("b", "left"), key.WithHelp("b/←", "back")),
		Settings: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "settings")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k timerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Stop, k.Back, k.Next, k.Settings, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k timerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type settingsKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Apply  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func newSettingsKeys() settingsKeys {
	return settingsKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k settingsKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Apply, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k settingsKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
