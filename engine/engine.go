// Package engine is the rendering engine behind the viewer: it opens raw
// document bytes, splits them into pages and draws a page onto a Canvas.
package engine

import (
	"context"
	"errors"
	"strings"
)

// CanvasID is the logical name of the page drawing target.
const CanvasID = "page-canvas"

// DefaultScale is the fixed scale factor pages are rendered at.
const DefaultScale = 1.5

var (
	ErrEmptyDocument = errors.New("document is empty")
	ErrNotText       = errors.New("document is not valid UTF-8 text")
	ErrPageRange     = errors.New("page out of range")
)

// Engine opens documents from raw file content.
type Engine interface {
	Load(ctx context.Context, data []byte) (Document, error)
}

// Document is an opened, paginated document.
type Document interface {
	PageCount() int
	// Page returns the 1-based page n.
	Page(ctx context.Context, n int) (Page, error)
}

// Page is a renderable page. RenderInto sizes the canvas to the page's
// viewport at the given scale and draws the page onto it.
type Page interface {
	RenderInto(ctx context.Context, c *Canvas, scale float64) error
}

// Canvas is the drawing target pages render into.
type Canvas struct {
	// ID is the logical name the host addresses the page area by.
	ID     string
	Width  int
	Height int
	Lines  []string
}

func NewCanvas() *Canvas {
	return &Canvas{ID: CanvasID}
}

// Resize clears the canvas and sets its viewport.
func (c *Canvas) Resize(width, height int) {
	c.Width = width
	c.Height = height
	c.Lines = make([]string, 0, height)
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines, "\n")
}
