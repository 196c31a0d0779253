package main

import (
	"fmt"

	"github.com/andareed/peekview/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpToPage handles a typed page number. The controller ignores out-of-range
// targets on its own; the notice only tells the user why nothing happened.
func (m *model) jumpToPage(n int) tea.Cmd {
	logging.Debugf("jumpToPage %d", n)
	if !m.pages.Loaded() {
		return m.startNotice("No document open", "warn", noticeDuration)
	}
	if n < 1 || n > m.pages.PageCount() {
		return m.startNotice(fmt.Sprintf("Page %d out of range", n), "warn", noticeDuration)
	}
	return m.pages.GoTo(n)
}
