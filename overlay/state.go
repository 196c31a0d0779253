// Package overlay holds the reveal-window overlay: its state, the presenter
// that projects the state into visual properties, and the router that maps
// input onto state mutations.
package overlay

import "math"

const (
	DefaultRevealHeight = 50
	DefaultTransparency = 0.8
	MinRevealHeight     = 10

	revealStep       = 10
	transparencyStep = 0.1
)

// State is the overlay's mutable model. It is owned by the host model for
// the lifetime of an open document and injected into Presenter and Router.
// Mutations report whether anything changed; none of them touch visuals.
type State struct {
	revealHeight   int
	transparency   float64
	scrollLocked   bool
	overlayPresent bool
	modifierHeld   bool
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the defaults used when a new document is opened.
func (s *State) Reset() {
	s.revealHeight = DefaultRevealHeight
	s.transparency = DefaultTransparency
	s.scrollLocked = false
	s.overlayPresent = false
	s.modifierHeld = false
}

func (s *State) RevealHeight() int     { return s.revealHeight }
func (s *State) Transparency() float64 { return s.transparency }
func (s *State) ScrollLocked() bool    { return s.scrollLocked }
func (s *State) Present() bool         { return s.overlayPresent }
func (s *State) ModifierHeld() bool    { return s.modifierHeld }

func (s *State) IncreaseReveal() bool {
	if s.scrollLocked {
		return false
	}
	s.revealHeight += revealStep
	return true
}

func (s *State) DecreaseReveal() bool {
	if s.scrollLocked || s.revealHeight <= MinRevealHeight {
		return false
	}
	s.revealHeight -= revealStep
	if s.revealHeight < MinRevealHeight {
		s.revealHeight = MinRevealHeight
	}
	return true
}

func (s *State) IncreaseTransparency() bool {
	if s.transparency >= 1.0 {
		return false
	}
	s.transparency = clampUnit(roundTenth(s.transparency + transparencyStep))
	return true
}

func (s *State) DecreaseTransparency() bool {
	if s.transparency <= 0.0 {
		return false
	}
	s.transparency = clampUnit(roundTenth(s.transparency - transparencyStep))
	return true
}

// ToggleScroll flips the scroll lock. It only applies while the overlay is present.
func (s *State) ToggleScroll() bool {
	if !s.overlayPresent {
		return false
	}
	s.scrollLocked = !s.scrollLocked
	return true
}

// SetRevealHeightAbsolute stores y as-is. Display clamping is the presenter's job.
func (s *State) SetRevealHeightAbsolute(y int) bool {
	s.revealHeight = y
	return true
}

func (s *State) SetModifierHeld(held bool) bool {
	if s.modifierHeld == held {
		return false
	}
	s.modifierHeld = held
	return true
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
