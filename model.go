package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/peekview/clipboard"
	"github.com/andareed/peekview/config"
	"github.com/andareed/peekview/dialogs"
	"github.com/andareed/peekview/engine"
	"github.com/andareed/peekview/logging"
	"github.com/andareed/peekview/overlay"
	"github.com/andareed/peekview/pager"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type mode int

const (
	modeView mode = iota
	modeCommand
)

// footerHeight is the number of terminal rows below the page area.
const footerHeight = 2

type (
	// fileSelectedMsg carries raw file content from the file-input control.
	fileSelectedMsg struct {
		Path string
		Data []byte
		Err  error
	}
	documentLoadedMsg struct {
		Path string
		Doc  engine.Document
		Err  error
	}
	pageExportedMsg struct {
		Path string
		Err  error
	}
)

type model struct {
	ctx    context.Context
	engine *engine.TextEngine
	theme  overlay.Theme

	state     *overlay.State
	presenter *overlay.Presenter
	router    *overlay.Router
	pages     *pager.Controller

	viewport       viewport.Model
	ready          bool
	terminalWidth  int
	terminalHeight int

	activeDialog dialogs.Dialog
	ui           uiState
	filePath     string
	initialPath  string
}

func newModel(ctx context.Context, cfg config.Config, theme overlay.Theme, path string) (*model, error) {
	hold, err := cfg.Hold()
	if err != nil {
		return nil, err
	}
	eng := engine.NewTextEngine(engine.Options{
		BaseWidth:     cfg.BaseWidth,
		LinesPerPage:  cfg.LinesPerPage,
		MarkdownStyle: cfg.MarkdownStyle,
	})

	state := overlay.NewState()
	presenter := overlay.NewPresenter(state, cfg.CellHeight)
	pages := pager.New(ctx, presenter, cfg.Scale)

	return &model{
		ctx:         ctx,
		engine:      eng,
		theme:       theme,
		state:       state,
		presenter:   presenter,
		router:      overlay.NewRouter(state, presenter, pages, hold),
		pages:       pages,
		ui:          uiState{mode: modeView},
		initialPath: path,
	}, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("peek: Initialised")
	if m.initialPath != "" {
		return readFileCmd(m.initialPath)
	}
	m.activeDialog = dialogs.NewOpenDialog(m.lastDir())
	return m.activeDialog.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case fileSelectedMsg:
		if msg.Err != nil {
			logging.Errorf("Error reading %s: %v", msg.Path, msg.Err)
			return m, m.startNotice(fmt.Sprintf("Cannot read %s", filepath.Base(msg.Path)), "error", noticeDuration)
		}
		m.ui.loadingPath = msg.Path
		return m, m.loadDocumentCmd(msg.Path, msg.Data)

	case documentLoadedMsg:
		return m, m.openDocument(msg)

	case pager.RenderedMsg:
		current := m.pages.IsCurrent(msg)
		if m.pages.Complete(msg) {
			m.refreshPage(true)
			return m, nil
		}
		if current && msg.Err != nil {
			return m, m.startNotice(fmt.Sprintf("Cannot render page %d", msg.Page), "error", noticeDuration)
		}
		return m, nil

	case overlay.ModifierExpiredMsg:
		return m, m.router.Expire(msg)

	case dialogs.OpenConfirmedMsg:
		m.closeDialog()
		return m, readFileCmd(msg.Path)

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, exportPageCmd(msg.Path, m.pageText())

	case dialogs.OpenCanceledMsg, dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil

	case pageExportedMsg:
		if msg.Err != nil {
			logging.Errorf("Export failed: %v", msg.Err)
			return m, m.startNotice("Export failed: "+msg.Err.Error(), "error", noticeDuration)
		}
		return m, m.startNotice("Exported page to "+msg.Path, "success", noticeDuration)

	case tea.MouseMsg:
		if m.dialogVisible() {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.dialogVisible() {
			return m.updateDialog(msg)
		}
		return m.updateKey(msg)
	}

	if m.dialogVisible() {
		return m.updateDialog(msg)
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height
	pageH := max(height-footerHeight, 1)
	if !m.ready {
		m.viewport = viewport.New(width, pageH)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = pageH
	}
	m.presenter.Resize(width, pageH)
	m.refreshPage(false)
}

func (m *model) loadDocumentCmd(path string, data []byte) tea.Cmd {
	var eng engine.Engine = m.engine.ForPath(path)
	ctx := m.ctx
	return func() tea.Msg {
		doc, err := eng.Load(ctx, data)
		return documentLoadedMsg{Path: path, Doc: doc, Err: err}
	}
}

// openDocument swaps in a freshly loaded document. A failed load leaves the
// current document, page and overlay untouched.
func (m *model) openDocument(msg documentLoadedMsg) tea.Cmd {
	m.ui.loadingPath = ""
	if msg.Err != nil {
		logging.Errorf("Error loading document %s: %v", msg.Path, msg.Err)
		return m.startNotice(fmt.Sprintf("Cannot open %s: %v", filepath.Base(msg.Path), msg.Err), "error", noticeDuration)
	}

	render := m.pages.LoadDocument(msg.Doc, msg.Doc.PageCount())
	m.state.Reset()
	m.presenter.Create()
	m.filePath = msg.Path
	m.viewport.SetContent("")
	m.viewport.GotoTop()

	notice := m.startNotice(fmt.Sprintf("Opened %s (%d pages)", filepath.Base(msg.Path), msg.Doc.PageCount()), "info", noticeDuration)
	return tea.Batch(render, notice)
}

// refreshPage pushes the displayed canvas into the viewport. top scrolls back
// to the start of the page, as after a page turn.
func (m *model) refreshPage(top bool) {
	if !m.ready {
		return
	}
	c := m.pages.Canvas()
	if c == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(c.String())
	if top {
		m.viewport.GotoTop()
	}
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.router.KeyDown(msg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Open):
		return m, m.openDialog(dialogs.NewOpenDialog(m.lastDir()))
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(
			dialogs.HelpSection{Title: "Viewer", Bindings: Keys.Legend()},
			dialogs.HelpSection{Title: "Overlay", Bindings: overlay.Keys.Legend()},
		))
	case key.Matches(msg, Keys.NextPage):
		return m, m.router.Dispatch(overlay.Cmd(overlay.NavigateNext))
	case key.Matches(msg, Keys.PrevPage):
		return m, m.router.Dispatch(overlay.Cmd(overlay.NavigatePrev))
	case key.Matches(msg, Keys.JumpPage):
		m.enterCommandMode(CommandFromPrefix(':'))
		return m, nil
	case key.Matches(msg, Keys.ToggleOverlay):
		m.toggleOverlay()
		return m, nil
	case key.Matches(msg, Keys.CopyPage):
		return m, m.copyPage()
	case key.Matches(msg, Keys.ExportPage):
		if !m.pages.Loaded() {
			return m, m.startNotice("No document open", "warn", noticeDuration)
		}
		return m, m.openDialog(dialogs.NewExportDialog(m.exportName(), m.lastDir()))
	}

	if m.presenter.PageScrollAllowed() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) toggleOverlay() {
	if m.state.Present() {
		m.presenter.Destroy()
		return
	}
	if m.pages.Loaded() {
		m.presenter.Create()
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		delta := 0
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			delta = 1
		case tea.MouseButtonWheelUp:
			delta = -1
		}
		if delta != 0 && m.router.Wheel(delta) {
			return m, nil
		}
		if m.presenter.PageScrollAllowed() {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.router.PointerButton(msg.Button) {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if id := m.surfaceAt(msg.X, msg.Y); id != engine.CanvasID {
		return m, m.activateControl(id)
	}
	_, cmd := m.router.Click(msg.X, msg.Y)
	return m, cmd
}

// surfaceAt returns the logical ID of the target under cell (x,y): the page
// canvas, a footer control, or "" for dead space.
func (m *model) surfaceAt(x, y int) string {
	if y < m.viewport.Height {
		return engine.CanvasID
	}
	if y != m.viewport.Height {
		return ""
	}
	for _, h := range m.ui.footerHits {
		if x >= h.Col && x < h.End {
			return h.ID
		}
	}
	return ""
}

// activateControl runs a document-level control. These work with or without the overlay.
func (m *model) activateControl(id string) tea.Cmd {
	switch id {
	case overlay.FileInputID:
		return m.openDialog(dialogs.NewOpenDialog(m.lastDir()))
	case overlay.PrevPageID:
		return m.pages.Previous()
	case overlay.NextPageID:
		return m.pages.Next()
	case overlay.PageInfoID:
		if m.pages.Loaded() {
			m.enterCommandMode(CmdJump)
		}
	}
	return nil
}

func (m *model) dialogVisible() bool {
	return m.activeDialog != nil && m.activeDialog.IsVisible()
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	if !d.IsVisible() {
		m.activeDialog = nil
	}
	return m, cmd
}

func (m *model) pageText() string {
	c := m.pages.Canvas()
	if c == nil {
		return ""
	}
	lines := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = strings.TrimRight(ansi.Strip(l), " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *model) copyPage() tea.Cmd {
	if m.pages.Canvas() == nil {
		return m.startNotice("No page to copy", "warn", noticeDuration)
	}
	if err := clipboard.Copy(m.pageText()); err != nil {
		logging.Warnf("Copy failed: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied page %d", m.pages.Displayed()), "success", noticeDuration)
}

func (m *model) exportName() string {
	base := strings.TrimSuffix(filepath.Base(m.filePath), filepath.Ext(m.filePath))
	if base == "" || base == "." {
		base = "page"
	}
	return fmt.Sprintf("%s-page-%d.txt", base, m.pages.Displayed())
}

func (m *model) lastDir() string {
	if m.filePath != "" {
		return filepath.Dir(m.filePath)
	}
	return ""
}

func readFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileSelectedMsg{Path: path, Data: data, Err: err}
	}
}

func exportPageCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(text), 0o644)
		return pageExportedMsg{Path: path, Err: err}
	}
}
