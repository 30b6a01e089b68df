package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Search    key.Binding
	Blur      key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Reanalyze key.Binding
	ResetZoom key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Reanalyze: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reanalyze")),
	ResetZoom: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "reset zoom")),
}
