package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/peekview/logging"
	"github.com/andareed/peekview/overlay"
	"github.com/charmbracelet/lipgloss"
)

// footerView renders the 2-line footer and records the hit boxes of its controls.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:     m.modeLabel(),
		PageInfo: m.pages.PageInfo(),
	}
	if m.filePath != "" {
		st.FileName = filepath.Base(m.filePath)
	}
	if m.ui.loadingPath != "" {
		st.FileName = "loading " + filepath.Base(m.ui.loadingPath) + "..."
	}
	if m.ui.mode == modeCommand {
		st.ModeInput = m.activeCommandLine()
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		v, _ := m.presenter.Visual()
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d off=%d reveal=%d rows=%d op=%.2f page=%d/%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height, m.viewport.YOffset,
			m.state.RevealHeight(), v.RevealRows, v.Opacity, m.pages.PageNumber(), m.pages.Displayed(),
		)
		st.Legend = "(? help · o open · n/p page) |" + debug
	}

	footer, hits := RenderFooter(width, st, DefaultFooterStyles())
	m.ui.footerHits = hits
	return footer
}

func (m *model) modeLabel() string {
	if m.ui.mode == modeCommand {
		return m.commandBadge(m.ui.command.cmd)
	}
	switch {
	case !m.state.Present():
		return "OFF"
	case m.state.ScrollLocked():
		return "LOCKED"
	default:
		return "REVEAL"
	}
}

func (m *model) pageView() string {
	w, h := m.viewport.Width, m.viewport.Height
	if m.pages.Canvas() == nil {
		hint := emptyPageStyle.Render("No document loaded. Press ") +
			emptyHintStyle.Render("o") +
			emptyPageStyle.Render(" to open one.")
		if m.pages.Loaded() {
			hint = emptyPageStyle.Render("Rendering page...")
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, hint)
	}

	rows := strings.Split(m.viewport.View(), "\n")
	for len(rows) < h {
		rows = append(rows, "")
	}
	v, present := m.presenter.Visual()
	return overlay.Compose(rows, w, v, present, m.theme)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.dialogVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(dialogBackdrop),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.pageView(), m.footerView(m.terminalWidth))
}
