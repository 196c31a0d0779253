package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all dialogs (Open, Export, Help) implement.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
