package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	finish     key.Binding
	reset      key.Binding
	up         key.Binding
	down       key.Binding
	done       key.Binding
	add        key.Binding
	edit       key.Binding
	remove     key.Binding
	metadata   key.Binding
	esc        key.Binding
	help       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "play/pause"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset timer"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	done: key.NewBinding(
		key.WithKeys("x", "enter"),
		key.WithHelp("x", "mark done"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add exercise"),
	),
	edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit exercise"),
	),
	remove: key.NewBinding(
		key.WithKeys("delete", "backspace"),
		key.WithHelp("del", "remove exercise"),
	),
	metadata: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "edit workout"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.finish, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.finish, k.reset, k.metadata},
		{k.up, k.down, k.done},
		{k.add, k.edit, k.remove},
		{k.help, k.quit},
	}
}
