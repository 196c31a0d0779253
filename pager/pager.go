// Package pager tracks the current page of the open document and issues
// render requests for it.
package pager

import (
	"context"
	"fmt"

	"github.com/andareed/peekview/engine"
	"github.com/andareed/peekview/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is the part of the overlay presenter the controller drives.
type Overlay interface {
	Reconcile()
	Destroy() bool
}

// RenderedMsg is the completion of a render request. Gen and Page identify
// the request it answers.
type RenderedMsg struct {
	Gen    int
	Page   int
	Canvas *engine.Canvas
	Err    error
}

// Controller is the page cursor of one open document.
//
// pageNumber is the navigation target and moves as soon as a request is
// issued. displayed only moves when that request's completion is applied, so
// a failed or superseded render leaves the previous page on screen.
type Controller struct {
	ctx       context.Context
	overlay   Overlay
	scale     float64
	doc       engine.Document
	gen       int
	pageNum   int
	pageCount int
	displayed int
	canvas    *engine.Canvas
}

func New(ctx context.Context, overlay Overlay, scale float64) *Controller {
	if scale <= 0 {
		scale = engine.DefaultScale
	}
	return &Controller{ctx: ctx, overlay: overlay, scale: scale}
}

func (c *Controller) PageNumber() int        { return c.pageNum }
func (c *Controller) PageCount() int         { return c.pageCount }
func (c *Controller) Displayed() int         { return c.displayed }
func (c *Controller) Canvas() *engine.Canvas { return c.canvas }
func (c *Controller) Loaded() bool           { return c.doc != nil }

// PageInfo is the page-info text for the displayed page.
func (c *Controller) PageInfo() string {
	if c.displayed == 0 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d", c.displayed, c.pageCount)
}

// LoadDocument resets the cursor for doc, destroys any overlay and requests page 1.
func (c *Controller) LoadDocument(doc engine.Document, count int) tea.Cmd {
	c.gen++
	c.doc = doc
	c.pageCount = count
	c.pageNum = 1
	c.displayed = 0
	c.canvas = nil
	c.overlay.Destroy()
	logging.Infof("Document loaded: %d pages (gen %d)", count, c.gen)
	return c.request(1)
}

// GoTo targets page n. Out-of-range targets are a silent no-op.
func (c *Controller) GoTo(n int) tea.Cmd {
	if c.doc == nil || n < 1 || n > c.pageCount {
		logging.Debugf("GoTo(%d) ignored: %d pages", n, c.pageCount)
		return nil
	}
	c.pageNum = n
	return c.request(n)
}

func (c *Controller) Next() tea.Cmd     { return c.GoTo(c.pageNum + 1) }
func (c *Controller) Previous() tea.Cmd { return c.GoTo(c.pageNum - 1) }

func (c *Controller) request(n int) tea.Cmd {
	ctx, doc, gen, scale := c.ctx, c.doc, c.gen, c.scale
	return func() tea.Msg {
		msg := RenderedMsg{Gen: gen, Page: n}
		page, err := doc.Page(ctx, n)
		if err != nil {
			msg.Err = fmt.Errorf("get page %d: %w", n, err)
			return msg
		}
		canvas := engine.NewCanvas()
		if err := page.RenderInto(ctx, canvas, scale); err != nil {
			msg.Err = fmt.Errorf("render page %d: %w", n, err)
			return msg
		}
		msg.Canvas = canvas
		return msg
	}
}

// IsCurrent reports whether msg answers the request for the current target.
func (c *Controller) IsCurrent(msg RenderedMsg) bool {
	return msg.Gen == c.gen && msg.Page == c.pageNum
}

// Complete applies a render completion. Completions from an older document
// or for a page other than the current target are discarded. It reports
// whether the displayed page changed.
func (c *Controller) Complete(msg RenderedMsg) bool {
	if !c.IsCurrent(msg) {
		logging.Debugf("Discarding stale render: page %d gen %d (want page %d gen %d)",
			msg.Page, msg.Gen, c.pageNum, c.gen)
		return false
	}
	if msg.Err != nil {
		logging.Errorf("Error rendering page: %v", msg.Err)
		if c.displayed > 0 {
			c.pageNum = c.displayed
		}
		return false
	}
	c.canvas = msg.Canvas
	c.displayed = msg.Page
	c.overlay.Reconcile()
	return true
}
