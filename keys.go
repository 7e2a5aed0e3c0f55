package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add     key.Binding
	Pick    key.Binding
	Presets key.Binding
	Quit    key.Binding
	Close   key.Binding
	UpDown  key.Binding
	Enter   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Pick:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "pick")),
		Presets: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "presets")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		UpDown:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use preset")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Pick, k.Presets, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Add, k.Pick, k.Presets, k.Quit}}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Close, k.Quit}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Enter, k.Close, k.Quit}}
}
