package dialogs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---------------------------------------------------------------

type (
	OpenConfirmedMsg struct{ Path string }
	OpenCanceledMsg  struct{}
)

// Open is the file-input control: a path prompt resolved against lastDir.
type Open struct {
	input   textinput.Model
	visible bool
	lastDir string
}

func (d Open) Init() tea.Cmd { return d.input.Focus() }

func NewOpenDialog(lastDir string) *Open {
	ti := textinput.New()
	ti.Placeholder = "path/to/document.md"
	ti.Prompt = "Open: "
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()
	return &Open{input: ti, visible: true, lastDir: lastDir}
}

func (d *Open) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter":
			path := d.resolve(d.input.Value())
			if path == "" {
				return d, nil
			}
			log.Printf("OpenDialog:Update::Enter pressed, opening %s\n", path)
			return d, func() tea.Msg { return OpenConfirmedMsg{Path: path} }
		case "esc":
			log.Printf("OpenDialog:Update::Esc pressed, cancel open\n")
			return d, func() tea.Msg { return OpenCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Open) resolve(val string) string {
	path := strings.TrimSpace(val)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if d.lastDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(d.lastDir, path)
	}
	return path
}

func (d Open) View() string {
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
		Render("enter to open • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s", d.input.View(), help)
	return box.Render(content)
}

func (d *Open) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Open) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Open) Focus() tea.Cmd { return d.input.Focus() }
func (d *Open) Blur()          { d.input.Blur() }
func (d Open) IsVisible() bool { return d.visible }
