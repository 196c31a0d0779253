package overlay

import "github.com/charmbracelet/bubbles/key"

type Keymap struct {
	Modifier        key.Binding
	RevealUp        key.Binding
	RevealDown      key.Binding
	MoreTransparent key.Binding
	LessTransparent key.Binding
	ToggleScroll    key.Binding
	ReleaseModifier key.Binding
}

var Keys = Keymap{
	Modifier: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r + click", "set reveal height at pointer"),
	),
	RevealDown: key.NewBinding(
		key.WithKeys("down", "pgdown"),
		key.WithHelp("↓/pgdown", "grow reveal window"),
	),
	RevealUp: key.NewBinding(
		key.WithKeys("up", "pgup"),
		key.WithHelp("↑/pgup", "shrink reveal window"),
	),
	MoreTransparent: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "more transparent"),
	),
	LessTransparent: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "less transparent"),
	),
	ToggleScroll: key.NewBinding(
		key.WithKeys("s", "S"),
		key.WithHelp("s", "toggle scroll lock"),
	),
	ReleaseModifier: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "release precision key"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.RevealDown,
		k.RevealUp,
		k.MoreTransparent,
		k.LessTransparent,
		k.ToggleScroll,
		k.Modifier,
	}
}
