package dialogs

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks where to write the text of the displayed page.
type Export struct {
	input   textinput.Model
	visible bool
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName, lastDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export page as: "
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Export{input: ti, visible: true, lastDir: lastDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		s := m.String()
		switch s {
		case "enter":
			val := strings.TrimSpace(d.input.Value())
			if val == "" {
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			path := val
			if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
				path = filepath.Join(d.lastDir, filepath.Base(path))
			}
			log.Printf("ExportDialog:Update::Enter pressed, exporting page to %s\n", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			log.Printf("ExportDialog:Update::Esc pressed, cancel export\n")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to export • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s", d.input.View(), help)
	return box.Render(content)
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
