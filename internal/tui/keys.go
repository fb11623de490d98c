package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add         key.Binding
	AddBig      key.Binding
	Remove      key.Binding
	Clear       key.Binding
	Orientation key.Binding
	Start       key.Binding
	Center      key.Binding
	MoreSpace   key.Binding
	LessSpace   key.Binding
	MorePad     key.Binding
	LessPad     key.Binding
	Up          key.Binding
	Down        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		AddBig:      key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add large item")),
		Remove:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove last")),
		Clear:       key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear shelf")),
		Orientation: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "flip orientation")),
		Start:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle start corner")),
		Center:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle centering")),
		MoreSpace:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more spacing")),
		LessSpace:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less spacing")),
		MorePad:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "more padding")),
		LessPad:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "less padding")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
