package engine

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

type Format int

const (
	FormatAuto Format = iota
	FormatPlain
	FormatMarkdown
)

const pageBreak = "\f"

// Options tune how a TextEngine paginates and renders.
type Options struct {
	// BaseWidth is the wrap width at scale 1.
	BaseWidth int
	// LinesPerPage paginates documents that carry no form feeds.
	LinesPerPage int
	// MarkdownStyle is a glamour standard style name ("dark", "light", "notty", ...).
	MarkdownStyle string
	Format        Format
}

func DefaultOptions() Options {
	return Options{
		BaseWidth:     52,
		LinesPerPage:  60,
		MarkdownStyle: "dark",
		Format:        FormatAuto,
	}
}

var _ Engine = (*TextEngine)(nil)

// TextEngine opens plain text and Markdown documents.
type TextEngine struct {
	opts Options
}

func NewTextEngine(opts Options) *TextEngine {
	d := DefaultOptions()
	if opts.BaseWidth <= 0 {
		opts.BaseWidth = d.BaseWidth
	}
	if opts.LinesPerPage <= 0 {
		opts.LinesPerPage = d.LinesPerPage
	}
	if opts.MarkdownStyle == "" {
		opts.MarkdownStyle = d.MarkdownStyle
	}
	return &TextEngine{opts: opts}
}

// ForPath returns a copy of the engine with the format picked from the file extension.
func (e *TextEngine) ForPath(path string) *TextEngine {
	cp := *e
	cp.opts.Format = FormatFromPath(path)
	return &cp
}

func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return FormatMarkdown
	case ".txt", ".text", ".log":
		return FormatPlain
	default:
		return FormatAuto
	}
}

func (e *TextEngine) Load(ctx context.Context, data []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return nil, ErrNotText
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	format := e.opts.Format
	if format == FormatAuto {
		format = detectFormat(text)
	}

	return &textDocument{
		pages:  paginate(text, e.opts.LinesPerPage),
		format: format,
		opts:   e.opts,
	}, nil
}

func detectFormat(text string) Format {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			return FormatMarkdown
		}
		return FormatPlain
	}
	return FormatPlain
}

func paginate(text string, linesPerPage int) []string {
	var pages []string
	for _, chunk := range strings.Split(text, pageBreak) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		lines := strings.Split(strings.TrimRight(chunk, "\n"), "\n")
		for len(lines) > linesPerPage {
			pages = append(pages, strings.Join(lines[:linesPerPage], "\n"))
			lines = lines[linesPerPage:]
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

type textDocument struct {
	pages  []string
	format Format
	opts   Options
}

func (d *textDocument) PageCount() int { return len(d.pages) }

func (d *textDocument) Page(ctx context.Context, n int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 1 || n > len(d.pages) {
		return nil, fmt.Errorf("page %d of %d: %w", n, len(d.pages), ErrPageRange)
	}
	return &textPage{source: d.pages[n-1], format: d.format, opts: d.opts}, nil
}

type textPage struct {
	source string
	format Format
	opts   Options
}

func (p *textPage) RenderInto(ctx context.Context, c *Canvas, scale float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if scale <= 0 {
		return fmt.Errorf("invalid scale %v", scale)
	}
	width := int(math.Round(float64(p.opts.BaseWidth) * scale))
	if width < 1 {
		width = 1
	}

	var out string
	switch p.format {
	case FormatMarkdown:
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.opts.MarkdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err = r.Render(p.source)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	default:
		src := strings.ReplaceAll(p.source, "\t", "    ")
		out = wrap.String(wordwrap.String(src, width), width)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	c.Resize(width, len(lines))
	c.Lines = append(c.Lines, lines...)
	return nil
}
