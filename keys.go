package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	Open          key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	JumpPage      key.Binding
	ToggleOverlay key.Binding
	CopyPage      key.Binding
	ExportPage    key.Binding
	OpenHelp      key.Binding
	ScrollDown    key.Binding
	ScrollUp      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open a document"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "]"),
		key.WithHelp("n/]", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "["),
		key.WithHelp("p/[", "previous page"),
	),
	JumpPage: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to page"),
	),
	ToggleOverlay: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "show / dismiss overlay"),
	),
	CopyPage: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy page text"),
	),
	ExportPage: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export page text"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll page (overlay off or locked)"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll page (overlay off or locked)"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Open,
		k.NextPage,
		k.PrevPage,
		k.JumpPage,
		k.ToggleOverlay,
		k.ScrollDown,
		k.ScrollUp,
		k.CopyPage,
		k.ExportPage,
		k.OpenHelp,
		k.Quit,
	}
}
