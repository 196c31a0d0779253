package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpSection is a titled group of key bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// Help lists key bindings grouped by section.
type Help struct {
	visible  bool
	sections []HelpSection
}

func (d Help) Init() tea.Cmd { return nil }

func NewHelpDialog(sections ...HelpSection) *Help {
	return &Help{
		visible:  true,
		sections: sections,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
			return d, nil
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)
	title := lipgloss.NewStyle().Bold(true)

	var blocks []string
	for _, sec := range d.sections {
		lines := []string{title.Render(sec.Title)}
		for _, b := range sec.Bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	helpHint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	content := fmt.Sprintf("%s\n\n%s", strings.Join(blocks, "\n\n"), helpHint)
	return box.Render(content)
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
