package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/peekview/config"
	"github.com/andareed/peekview/dialogs"
	"github.com/andareed/peekview/engine"
	"github.com/andareed/peekview/overlay"
	"github.com/andareed/peekview/pager"
	tea "github.com/charmbracelet/bubbletea"
)

const threePages = "first page\nalpha\n\fsecond page\nbeta\n\fthird page\ngamma\n"

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func wheel(b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{Button: b, Action: tea.MouseActionPress}
}

// newTestModel returns a sized model with no document open.
func newTestModel(t *testing.T) *model {
	t.Helper()
	m, err := newModel(context.Background(), config.Default(), overlay.DefaultTheme(), "")
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

// openText loads body as path and applies the render of the first page.
func openText(t *testing.T, m *model, path, body string) {
	t.Helper()
	doc, err := m.engine.ForPath(path).Load(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Update(documentLoadedMsg{Path: path, Doc: doc})
	render(t, m, m.pages.GoTo(1))
}

// render runs a render request and feeds its completion back to the model.
func render(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a render request")
	}
	msg, ok := cmd().(pager.RenderedMsg)
	if !ok {
		t.Fatalf("cmd produced %T; want pager.RenderedMsg", msg)
	}
	m.Update(msg)
}

func TestOpenDocumentCreatesOverlay(t *testing.T) {
	m := newTestModel(t)
	if m.state.Present() {
		t.Fatal("overlay present before any document")
	}
	openText(t, m, "notes.txt", threePages)

	if !m.state.Present() {
		t.Fatal("overlay not created on load")
	}
	if m.pages.PageInfo() != "Page 1 of 3" {
		t.Fatalf("page info = %q", m.pages.PageInfo())
	}
	if !strings.Contains(m.viewport.View(), "first page") {
		t.Fatalf("viewport = %q", m.viewport.View())
	}
	if !strings.Contains(m.View(), "Page 1 of 3") {
		t.Fatal("footer missing page info")
	}
}

func TestFailedLoadKeepsCurrentDocument(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.Update(runeKey('s'))

	m.Update(documentLoadedMsg{Path: "broken.bin", Err: errors.New("not text")})

	if m.filePath != "notes.txt" || m.pages.PageCount() != 3 {
		t.Fatalf("document replaced: %s, %d pages", m.filePath, m.pages.PageCount())
	}
	if !m.state.Present() || !m.state.ScrollLocked() {
		t.Fatal("overlay state changed by failed load")
	}
	if m.ui.noticeType != "error" {
		t.Fatalf("notice = %q (%s)", m.ui.noticeMsg, m.ui.noticeType)
	}
}

func TestFailedLoadWithoutDocumentCreatesNoOverlay(t *testing.T) {
	m := newTestModel(t)
	m.Update(documentLoadedMsg{Path: "empty.txt", Err: errors.New("empty")})
	if m.state.Present() || m.pages.Loaded() {
		t.Fatal("failed load produced a document or overlay")
	}
}

func TestWheelAdjustsRevealOnlyWithOverlay(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)

	m.Update(wheel(tea.MouseButtonWheelDown))
	if got := m.state.RevealHeight(); got != 60 {
		t.Fatalf("revealHeight = %d; want 60", got)
	}

	m.Update(runeKey('v'))
	if m.state.Present() {
		t.Fatal("v did not dismiss the overlay")
	}
	m.Update(wheel(tea.MouseButtonWheelDown))
	if got := m.state.RevealHeight(); got != 60 {
		t.Fatalf("wheel without overlay changed reveal to %d", got)
	}
	if !m.presenter.PageScrollAllowed() {
		t.Fatal("page scrolling blocked without overlay")
	}
}

func TestScrollLockedWheelLeavesReveal(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.Update(tea.MouseMsg{Button: tea.MouseButtonForward, Action: tea.MouseActionPress})
	if !m.state.ScrollLocked() {
		t.Fatal("side button did not lock scrolling")
	}
	m.Update(wheel(tea.MouseButtonWheelUp))
	if m.state.RevealHeight() != overlay.DefaultRevealHeight {
		t.Fatalf("revealHeight = %d", m.state.RevealHeight())
	}
}

func TestFooterNextButton(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.View()

	var next *footerHit
	for i := range m.ui.footerHits {
		if m.ui.footerHits[i].ID == overlay.NextPageID {
			next = &m.ui.footerHits[i]
		}
	}
	if next == nil {
		t.Fatalf("no next button in %+v", m.ui.footerHits)
	}
	_, cmd := m.Update(leftClick(next.Col, m.viewport.Height))
	render(t, m, cmd)
	if m.pages.Displayed() != 2 {
		t.Fatalf("displayed = %d; want 2", m.pages.Displayed())
	}
}

func TestFooterButtonsWorkWithoutOverlay(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.Update(runeKey('v'))
	m.View()
	for _, h := range m.ui.footerHits {
		if h.ID == overlay.NextPageID {
			_, cmd := m.Update(leftClick(h.End-1, m.viewport.Height))
			render(t, m, cmd)
		}
	}
	if m.pages.Displayed() != 2 {
		t.Fatalf("displayed = %d; want 2", m.pages.Displayed())
	}
}

func TestOverlayNextButton(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	v, _ := m.presenter.Visual()
	var col int
	for _, c := range v.Children {
		if c.ID == overlay.NextPageID {
			col = c.Col
		}
	}
	_, cmd := m.Update(leftClick(col, v.ControlRow))
	render(t, m, cmd)
	if m.pages.Displayed() != 2 {
		t.Fatalf("displayed = %d; want 2", m.pages.Displayed())
	}
}

func TestPreciseRevealClick(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.Update(runeKey('r'))
	if !m.state.ModifierHeld() {
		t.Fatal("modifier not held")
	}
	m.Update(leftClick(20, 7))
	if got := m.state.RevealHeight(); got != 70 {
		t.Fatalf("revealHeight = %d; want 70", got)
	}
}

func TestNewDocumentResetsOverlay(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(runeKey('s'))

	openText(t, m, "other.txt", "just one page\n")
	if m.state.RevealHeight() != overlay.DefaultRevealHeight ||
		m.state.Transparency() != overlay.DefaultTransparency ||
		m.state.ScrollLocked() {
		t.Fatalf("state not reset: reveal=%d transparency=%v locked=%v",
			m.state.RevealHeight(), m.state.Transparency(), m.state.ScrollLocked())
	}
	if m.pages.PageInfo() != "Page 1 of 1" {
		t.Fatalf("page info = %q", m.pages.PageInfo())
	}
}

func TestJumpCommand(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)

	m.Update(runeKey(':'))
	m.Update(runeKey('3'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	render(t, m, cmd)
	if m.pages.Displayed() != 3 {
		t.Fatalf("displayed = %d; want 3", m.pages.Displayed())
	}

	m.Update(runeKey(':'))
	m.Update(runeKey('9'))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.pages.PageNumber() != 3 || m.ui.noticeType != "warn" {
		t.Fatalf("page = %d notice = %q", m.pages.PageNumber(), m.ui.noticeMsg)
	}
}

func TestExportWritesPlainPage(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	if got := m.exportName(); got != "notes-page-1.txt" {
		t.Fatalf("exportName = %q", got)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	_, cmd := m.Update(dialogs.ExportConfirmedMsg{Path: path})
	msg, ok := cmd().(pageExportedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("export result = %+v", msg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "first page\nalpha") || strings.Contains(string(data), "\x1b[") {
		t.Fatalf("exported = %q", data)
	}
}

func TestStaleRenderIgnoredByModel(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	two := m.pages.Next()
	three := m.pages.Next()
	render(t, m, three)
	render(t, m, two)
	if m.pages.Displayed() != 3 || !strings.Contains(m.viewport.View(), "third page") {
		t.Fatalf("displayed = %d", m.pages.Displayed())
	}
}

func TestFileSelectionLoadsAndRendersFirstPage(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(threePages), 0o644); err != nil {
		t.Fatal(err)
	}

	selected, ok := readFileCmd(path)().(fileSelectedMsg)
	if !ok || selected.Err != nil {
		t.Fatalf("read = %+v", selected)
	}
	_, loadCmd := m.Update(selected)
	if m.ui.loadingPath != path {
		t.Fatalf("loadingPath = %q", m.ui.loadingPath)
	}
	loaded, ok := loadCmd().(documentLoadedMsg)
	if !ok || loaded.Err != nil {
		t.Fatalf("load = %+v", loaded)
	}

	_, cmd := m.Update(loaded)
	if !m.state.Present() || m.pages.PageNumber() != 1 || m.pages.Displayed() != 0 {
		t.Fatalf("present=%v page=%d displayed=%d", m.state.Present(), m.pages.PageNumber(), m.pages.Displayed())
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) != 2 {
		t.Fatalf("load returned %T", cmd())
	}
	// The render request comes first; the second command is the notice timer.
	render(t, m, batch[0])
	if m.pages.PageInfo() != "Page 1 of 3" || !strings.Contains(m.viewport.View(), "first page") {
		t.Fatalf("page info = %q", m.pages.PageInfo())
	}
}

func TestUnreadableFileLeavesNoDocument(t *testing.T) {
	m := newTestModel(t)
	msg := readFileCmd(filepath.Join(t.TempDir(), "missing.txt"))().(fileSelectedMsg)
	if _, cmd := m.Update(msg); cmd == nil || m.pages.Loaded() || m.state.Present() {
		t.Fatal("unreadable file started a load")
	}
	if m.ui.noticeType != "error" {
		t.Fatalf("notice = %q", m.ui.noticeMsg)
	}
}

func TestSurfaceIDs(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.View()

	if got := m.surfaceAt(10, 0); got != engine.CanvasID {
		t.Fatalf("page area = %q; want %q", got, engine.CanvasID)
	}
	if got := m.pages.Canvas().ID; got != engine.CanvasID {
		t.Fatalf("canvas ID = %q", got)
	}
	if got := m.surfaceAt(79, m.viewport.Height); got != overlay.PageInfoID {
		t.Fatalf("footer right edge = %q; want %q", got, overlay.PageInfoID)
	}
	if got := m.surfaceAt(0, m.viewport.Height+1); got != "" {
		t.Fatalf("status line = %q", got)
	}
}

func TestPageInfoClickOpensJump(t *testing.T) {
	m := newTestModel(t)
	openText(t, m, "notes.txt", threePages)
	m.View()
	m.Update(leftClick(79, m.viewport.Height))
	if m.ui.mode != modeCommand || m.ui.command.cmd != CmdJump {
		t.Fatalf("mode = %d cmd = %d", m.ui.mode, m.ui.command.cmd)
	}
}
