package overlay

import (
	"time"

	"github.com/andareed/peekview/logging"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultModifierHold is how long a modifier key-down counts as held. Terminals
// report no key release, so the hold is renewed by key repeat and expires on its own.
// It outlasts the usual initial key-repeat delay (660ms on X11).
const DefaultModifierHold = 700 * time.Millisecond

// Navigator turns pages. Both calls return the render request to run.
type Navigator interface {
	Next() tea.Cmd
	Previous() tea.Cmd
}

// ModifierExpiredMsg releases the modifier armed with the same Seq.
type ModifierExpiredMsg struct{ Seq int }

// Router maps input channels onto Commands and applies them.
type Router struct {
	state     *State
	presenter *Presenter
	pages     Navigator
	keys      Keymap
	hold      time.Duration
	seq       int
}

func NewRouter(state *State, presenter *Presenter, pages Navigator, hold time.Duration) *Router {
	if hold <= 0 {
		hold = DefaultModifierHold
	}
	return &Router{
		state:     state,
		presenter: presenter,
		pages:     pages,
		keys:      Keys,
		hold:      hold,
	}
}

// Dispatch applies commands in order and reconciles once if any of them
// changed the state. Navigation results are batched into the returned Cmd.
func (r *Router) Dispatch(commands ...Command) tea.Cmd {
	changed := false
	var cmds []tea.Cmd
	for _, c := range commands {
		logging.Debugf("Router: dispatch %s", c)
		switch c.Kind {
		case NavigatePrev:
			cmds = append(cmds, r.pages.Previous())
		case NavigateNext:
			cmds = append(cmds, r.pages.Next())
		case IncreaseReveal:
			changed = r.state.IncreaseReveal() || changed
		case DecreaseReveal:
			changed = r.state.DecreaseReveal() || changed
		case IncreaseTransparency:
			changed = r.state.IncreaseTransparency() || changed
		case DecreaseTransparency:
			changed = r.state.DecreaseTransparency() || changed
		case ToggleScroll:
			if r.state.ToggleScroll() {
				logging.Infof("Scroll mode %s", lockWord(r.state.ScrollLocked()))
				changed = true
			}
		case PreciseReveal:
			changed = r.state.SetRevealHeightAbsolute(c.Y) || changed
		case ModifierDown:
			changed = r.state.SetModifierHeld(true) || changed
		case ModifierUp:
			changed = r.state.SetModifierHeld(false) || changed
		}
	}
	if changed {
		r.presenter.Reconcile()
	}
	return tea.Batch(cmds...)
}

// KeyDown routes a key press. The modifier key is tracked whether or not the
// overlay is present; every other key needs the overlay. handled is false when
// the key should fall through to the host (page scrolling or app keys).
func (r *Router) KeyDown(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if key.Matches(msg, r.keys.Modifier) {
		r.Dispatch(Cmd(ModifierDown))
		r.seq++
		seq := r.seq
		return true, tea.Tick(r.hold, func(time.Time) tea.Msg { return ModifierExpiredMsg{Seq: seq} })
	}
	if key.Matches(msg, r.keys.ReleaseModifier) && r.state.ModifierHeld() {
		r.seq++
		return true, r.Dispatch(Cmd(ModifierUp))
	}
	if !r.state.Present() {
		return false, nil
	}

	switch {
	case key.Matches(msg, r.keys.RevealDown):
		if r.state.ScrollLocked() {
			return false, nil
		}
		return true, r.Dispatch(Cmd(IncreaseReveal))
	case key.Matches(msg, r.keys.RevealUp):
		if r.state.ScrollLocked() {
			return false, nil
		}
		return true, r.Dispatch(Cmd(DecreaseReveal))
	case key.Matches(msg, r.keys.MoreTransparent):
		return true, r.Dispatch(Cmd(IncreaseTransparency))
	case key.Matches(msg, r.keys.LessTransparent):
		return true, r.Dispatch(Cmd(DecreaseTransparency))
	case key.Matches(msg, r.keys.ToggleScroll):
		return true, r.Dispatch(Cmd(ToggleScroll))
	}
	return false, nil
}

// KeyUp routes a key release.
func (r *Router) KeyUp(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, r.keys.Modifier) {
		return r.Dispatch(Cmd(ModifierUp))
	}
	return nil
}

// Expire handles the hold timer. Timers armed before the latest key-down are stale.
func (r *Router) Expire(msg ModifierExpiredMsg) tea.Cmd {
	if msg.Seq != r.seq {
		return nil
	}
	return r.KeyUp(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
}

// Wheel adjusts the reveal window. Positive delta grows it. Ignored while the
// overlay is absent or scroll-locked, in which case the page scrolls instead.
func (r *Router) Wheel(delta int) bool {
	if !r.state.Present() || r.state.ScrollLocked() {
		return false
	}
	switch {
	case delta > 0:
		r.Dispatch(Cmd(IncreaseReveal))
	case delta < 0:
		r.Dispatch(Cmd(DecreaseReveal))
	}
	return true
}

// PointerButton toggles the scroll lock on the side (forward) button.
func (r *Router) PointerButton(b tea.MouseButton) bool {
	if !r.state.Present() || b != tea.MouseButtonForward {
		return false
	}
	r.Dispatch(Cmd(ToggleScroll))
	return true
}

// Click handles a press at page cell (x,row). With the modifier held it
// places the reveal edge at the pointer; otherwise it activates a control.
func (r *Router) Click(x, row int) (handled bool, cmd tea.Cmd) {
	if !r.state.Present() {
		return false, nil
	}
	if r.state.ModifierHeld() {
		return true, r.Dispatch(PreciseRevealAt(row * r.presenter.CellHeight()))
	}
	switch r.presenter.HitTest(x, row) {
	case PrevPageID:
		return true, r.Dispatch(Cmd(NavigatePrev))
	case NextPageID:
		return true, r.Dispatch(Cmd(NavigateNext))
	}
	return false, nil
}

func lockWord(locked bool) string {
	if locked {
		return "enabled"
	}
	return "disabled"
}
