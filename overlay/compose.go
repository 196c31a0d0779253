package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the colours the overlay is blended from.
type Theme struct {
	Shade     colorful.Color
	PageFG    colorful.Color
	PageBG    colorful.Color
	ControlFG colorful.Color
	ControlBG colorful.Color
	Precision colorful.Color
}

func DefaultTheme() Theme {
	return Theme{
		Shade:     mustHex("#000000"),
		PageFG:    mustHex("#c0c0c0"),
		PageBG:    mustHex("#1c1c1c"),
		ControlFG: mustHex("#000000"),
		ControlBG: mustHex("#ff9f1c"),
		Precision: mustHex("#f5c542"),
	}
}

// mustHex parses a built-in colour literal.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("overlay: bad colour literal " + s)
	}
	return c
}

// WithShade returns the theme with the shade colour parsed from hex.
func (t Theme) WithShade(hex string) (Theme, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return t, err
	}
	t.Shade = c
	return t, nil
}

// Compose draws the overlay over the visible page rows. Rows inside the reveal
// window pass through untouched; rows below it are shaded at the visual's
// opacity and the control row carries the overlay's children.
func Compose(rows []string, width int, v Visual, present bool, theme Theme) string {
	if !present {
		return strings.Join(rows, "\n")
	}
	shade := shadeStyle(v.Opacity, theme)
	out := make([]string, len(rows))
	for i, row := range rows {
		switch {
		case i == v.ControlRow:
			out[i] = controlRow(width, v, theme)
		case i < v.RevealRows || v.Opacity <= 0:
			out[i] = row
		default:
			plain := padRight(ansi.Truncate(ansi.Strip(row), width, ""), width)
			out[i] = shade.Render(plain)
		}
	}
	return strings.Join(out, "\n")
}

func shadeStyle(opacity float64, theme Theme) lipgloss.Style {
	fg := theme.PageFG.BlendRgb(theme.Shade, opacity).Clamped()
	bg := theme.PageBG.BlendRgb(theme.Shade, opacity).Clamped()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}

func controlRow(width int, v Visual, theme Theme) string {
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ControlFG.Hex())).
		Background(lipgloss.Color(theme.ControlBG.Hex()))
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Precision.Hex())).
		Background(lipgloss.Color(theme.ControlBG.Hex())).
		Bold(true)

	line := []rune(strings.Repeat(" ", max(width, 0)))
	end := 0
	for _, c := range v.Children {
		for i, r := range []rune(c.Label) {
			if pos := c.Col + i; pos < len(line) {
				line[pos] = r
				end = pos + 1
			}
		}
	}
	plain := string(line)
	if !v.Precision || end+2 >= len(line) {
		return bar.Render(plain)
	}
	tag := ansi.Truncate(" ◆ precise", len(line)-end-1, "")
	rest := len(line) - end - ansi.StringWidth(tag)
	return bar.Render(string(line[:end])) + hint.Render(tag) + bar.Render(strings.Repeat(" ", max(rest, 0)))
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
