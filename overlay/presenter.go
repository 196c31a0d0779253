package overlay

import (
	"math"

	"github.com/andareed/peekview/logging"
)

// Stable identifiers of the visible surface.
const (
	PrevPageID  = "prev-page"
	NextPageID  = "next-page"
	IndicatorID = "scroll-indicator"
	PageInfoID  = "page-info"
	FileInputID = "file-input"
)

const (
	IndicatorEnabled  = "Scroll Lock: Enabled"
	IndicatorDisabled = "Scroll Lock: Disabled"

	DefaultCellHeight = 10
)

// Element is one visual child of the overlay, laid out on the control row.
type Element struct {
	ID    string
	Label string
	Col   int
	Width int
}

// Visual is the state projected onto the screen.
type Visual struct {
	RevealHeight int // clamped to MinRevealHeight
	RevealRows   int
	Opacity      float64 // 1 - transparency
	Indicator    string
	ControlRow   int
	Precision    bool
	Children     []Element
}

// Presenter materializes the overlay and keeps its visuals in step with State.
type Presenter struct {
	state      *State
	cellHeight int
	width      int
	height     int
	visual     Visual
	reconciles int
}

func NewPresenter(state *State, cellHeight int) *Presenter {
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &Presenter{state: state, cellHeight: cellHeight}
}

func (p *Presenter) CellHeight() int { return p.cellHeight }

// Resize records the page area the overlay is laid out in.
func (p *Presenter) Resize(width, height int) {
	p.width, p.height = width, height
	p.Reconcile()
}

// Create materializes the overlay. It is a no-op when already present.
func (p *Presenter) Create() bool {
	if p.state.overlayPresent {
		return false
	}
	p.visual = Visual{
		Children: []Element{
			{ID: PrevPageID, Label: "[ Previous ]"},
			{ID: NextPageID, Label: "[ Next ]"},
			{ID: IndicatorID},
		},
	}
	p.state.overlayPresent = true
	logging.Infof("Overlay created")
	p.Reconcile()
	return true
}

// Reconcile projects State onto the visuals. No-op while the overlay is absent.
func (p *Presenter) Reconcile() {
	if !p.state.overlayPresent {
		return
	}
	p.reconciles++

	v := &p.visual
	v.RevealHeight = max(p.state.revealHeight, MinRevealHeight)
	v.RevealRows = max(v.RevealHeight/p.cellHeight, 1)
	v.Opacity = math.Round((1-p.state.transparency)*100) / 100
	v.Precision = p.state.modifierHeld
	v.Indicator = IndicatorDisabled
	if p.state.scrollLocked {
		v.Indicator = IndicatorEnabled
	}

	v.ControlRow = v.RevealRows
	if p.height > 0 && v.ControlRow > p.height-1 {
		v.ControlRow = p.height - 1
	}

	col := 1
	for i := range v.Children {
		c := &v.Children[i]
		if c.ID == IndicatorID {
			c.Label = v.Indicator
			col++
		}
		c.Col = col
		c.Width = len([]rune(c.Label))
		col += c.Width + 1
	}
	logging.Debugf("Overlay reconciled: reveal=%d rows=%d opacity=%.2f locked=%v",
		v.RevealHeight, v.RevealRows, v.Opacity, p.state.scrollLocked)
}

// Destroy detaches the overlay, clears the scroll lock and restores page scrolling.
func (p *Presenter) Destroy() bool {
	if !p.state.overlayPresent {
		return false
	}
	p.visual = Visual{}
	p.state.overlayPresent = false
	p.state.scrollLocked = false
	logging.Infof("Overlay removed and scrolling unlocked.")
	return true
}

func (p *Presenter) Visual() (Visual, bool) {
	return p.visual, p.state.overlayPresent
}

// PageScrollAllowed reports whether wheel and arrow input may scroll the page.
func (p *Presenter) PageScrollAllowed() bool {
	return !p.state.overlayPresent || p.state.scrollLocked
}

// HitTest returns the ID of the control at (x,row) in page coordinates, or "".
func (p *Presenter) HitTest(x, row int) string {
	if !p.state.overlayPresent || row != p.visual.ControlRow {
		return ""
	}
	for _, c := range p.visual.Children {
		if c.ID == IndicatorID {
			continue
		}
		if x >= c.Col && x < c.Col+c.Width {
			return c.ID
		}
	}
	return ""
}

// Reconciles counts reconcile passes that touched a present overlay.
func (p *Presenter) Reconciles() int { return p.reconciles }
