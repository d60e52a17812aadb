package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	StartEarlier key.Binding
	StartLater   key.Binding
	EndEarlier   key.Binding
	EndLater     key.Binding
	LimitDown    key.Binding
	LimitUp      key.Binding
	Strategy     key.Binding
	Reset        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		StartEarlier: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "start -30m"),
		),
		StartLater: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "start +30m"),
		),
		EndEarlier: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "end -30m"),
		),
		EndLater: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "end +30m"),
		),
		LimitDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "limit -100"),
		),
		LimitUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "limit +100"),
		),
		Strategy: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next strategy"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
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

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Strategy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.StartEarlier, k.StartLater, k.EndEarlier, k.EndLater},
		{k.LimitDown, k.LimitUp, k.Strategy, k.Reset},
		{k.Help, k.Quit},
	}
}
