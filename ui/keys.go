package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keymap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	add      key.Binding
	edit     key.Binding
	remove   key.Binding
	theme    key.Binding
	hit      key.Binding
	reset    key.Binding
	back     key.Binding
	cancel   key.Binding
	quit     key.Binding
	forceEnd key.Binding
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	hit: key.NewBinding(
		key.WithKeys(" ", "space", "enter"),
		key.WithHelp("space", "count"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	forceEnd: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

func (k keymap) listHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.enter, k.add, k.edit, k.remove, k.theme, k.quit}
}

func (k keymap) countingHelp() []key.Binding {
	return []key.Binding{k.hit, k.reset, k.back, k.quit}
}
