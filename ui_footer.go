package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/peekview/overlay"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type FooterState struct {
	Mode      string
	ModeInput string

	FileName string
	PageInfo string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	ButtonFG   lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

// footerHit is a clickable control on the footer's first line.
type footerHit struct {
	ID       string
	Col, End int
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		ButtonFG:   lipgloss.Color("#8fd3ff"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

var footerButtons = []struct{ id, label string }{
	{overlay.FileInputID, "[Open]"},
	{overlay.PrevPageID, "[◀ Prev]"},
	{overlay.NextPageID, "[Next ▶]"},
}

// RenderFooter renders the two footer lines and the hit boxes of the
// controls on the first line.
func RenderFooter(width int, st FooterState, styles FooterStyles) (string, []footerHit) {
	if width <= 0 {
		return "", nil
	}
	if st.Mode == "" {
		st.Mode = "NORMAL"
	}
	if st.Legend == "" {
		st.Legend = "(? help · o open · n/p page)"
	}

	line1, hits := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2, hits
}

func renderControlBar(width int, st FooterState, styles FooterStyles) (string, []footerHit) {
	gapW := 1

	info := st.PageInfo
	if info == "" {
		info = "No document"
	}
	rightPlain := truncatePlain(" "+info+" ", width)
	rightW := runeWidth(rightPlain)

	leftW := max(width-rightW, 0)
	modeColW := min(runeWidth(st.Mode)+2, leftW)

	var b strings.Builder
	b.WriteString(renderModeSegment(modeColW, st, styles))
	col := modeColW

	var hits []footerHit
	for _, btn := range footerButtons {
		w := runeWidth(btn.label)
		if col+gapW+w > leftW {
			break
		}
		b.WriteString(strings.Repeat(" ", gapW))
		col += gapW
		b.WriteString(applyFG(btn.label, styles.ButtonFG, styles.TextFG))
		hits = append(hits, footerHit{ID: btn.id, Col: col, End: col + w})
		col += w
	}

	fileColW := leftW - col - gapW
	if fileColW > 0 {
		b.WriteString(strings.Repeat(" ", gapW))
		b.WriteString(renderFileSegment(fileColW, st, styles))
		col += gapW + fileColW
	}
	if col < leftW {
		b.WriteString(strings.Repeat(" ", leftW-col))
	}
	b.WriteString(applyFG(rightPlain, styles.FileNameFG, styles.TextFG))
	hits = append(hits, footerHit{ID: overlay.PageInfoID, Col: leftW, End: leftW + rightW})
	return applyBar(b.String(), styles.BarBG, styles.TextFG), hits
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := max(width-legendW, 0)

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	pillPlain := truncatePlain(" "+st.Mode+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderFileSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	filePlain := truncatePlain("▸ "+name, colW)
	remaining := colW - runeWidth(filePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runeWidth(inputPlain)
	}
	pad := strings.Repeat(" ", max(remaining, 0))
	return applyFG(filePlain, styles.FileNameFG, styles.TextFG) + inputPlain + pad
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}
