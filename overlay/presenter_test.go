package overlay

import "testing"

func TestCreateIsIdempotent(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	if !p.Create() {
		t.Fatal("first Create reported no-op")
	}
	if p.Create() {
		t.Fatal("second Create should be a no-op")
	}
	v, ok := p.Visual()
	if !ok || len(v.Children) != 3 {
		t.Fatalf("visual = %+v, present=%v", v, ok)
	}
	if p.Reconciles() != 1 {
		t.Fatalf("reconciles = %d; want 1", p.Reconciles())
	}
}

func TestReconcileNoopWhenAbsent(t *testing.T) {
	p := NewPresenter(NewState(), 10)
	p.Reconcile()
	if p.Reconciles() != 0 {
		t.Fatal("Reconcile ran without overlay")
	}
}

func TestReconcileProjection(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	p.Create()

	v, _ := p.Visual()
	if v.RevealHeight != 50 || v.RevealRows != 5 {
		t.Errorf("reveal = %d rows = %d; want 50 / 5", v.RevealHeight, v.RevealRows)
	}
	// higher transparency is more see-through
	if v.Opacity != 0.2 {
		t.Errorf("opacity = %v; want 0.2", v.Opacity)
	}
	if v.Indicator != "Scroll Lock: Disabled" {
		t.Errorf("indicator = %q", v.Indicator)
	}

	s.ToggleScroll()
	s.IncreaseTransparency()
	p.Reconcile()
	v, _ = p.Visual()
	if v.Indicator != "Scroll Lock: Enabled" {
		t.Errorf("indicator = %q", v.Indicator)
	}
	if v.Opacity != 0.1 {
		t.Errorf("opacity = %v; want 0.1", v.Opacity)
	}
	for _, c := range v.Children {
		if c.ID == IndicatorID && c.Label != IndicatorEnabled {
			t.Errorf("indicator child label = %q", c.Label)
		}
	}
}

func TestReconcileClampsDisplayHeight(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	p.Create()
	s.SetRevealHeightAbsolute(0)
	p.Reconcile()

	v, _ := p.Visual()
	if v.RevealHeight != MinRevealHeight || v.RevealRows != 1 {
		t.Fatalf("display reveal = %d rows = %d", v.RevealHeight, v.RevealRows)
	}
	if s.RevealHeight() != 0 {
		t.Fatalf("state should keep the raw value, got %d", s.RevealHeight())
	}
}

func TestControlRowStaysOnScreen(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	p.Resize(80, 8)
	p.Create()
	s.SetRevealHeightAbsolute(500)
	p.Reconcile()
	v, _ := p.Visual()
	if v.ControlRow != 7 {
		t.Fatalf("control row = %d; want 7", v.ControlRow)
	}
}

func TestDestroyResetsLockAndScrolling(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	if p.Destroy() {
		t.Fatal("Destroy without overlay should be a no-op")
	}
	p.Create()
	s.ToggleScroll()
	if !p.Destroy() {
		t.Fatal("Destroy reported no-op")
	}
	if s.Present() || s.ScrollLocked() {
		t.Fatalf("state after destroy: %+v", *s)
	}
	if v, ok := p.Visual(); ok || len(v.Children) != 0 {
		t.Fatalf("dangling visuals: %+v", v)
	}
	if !p.PageScrollAllowed() {
		t.Fatal("page scrolling not restored")
	}
}

func TestPageScrollAllowed(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	p.Create()
	if p.PageScrollAllowed() {
		t.Fatal("unlocked overlay should own the wheel")
	}
	s.ToggleScroll()
	if !p.PageScrollAllowed() {
		t.Fatal("locked overlay should let the page scroll")
	}
}

func TestHitTest(t *testing.T) {
	s := NewState()
	p := NewPresenter(s, 10)
	if got := p.HitTest(2, 5); got != "" {
		t.Fatalf("hit without overlay: %q", got)
	}
	p.Create()
	v, _ := p.Visual()
	prev, next := v.Children[0], v.Children[1]

	tests := []struct {
		x, row int
		want   string
	}{
		{prev.Col, v.ControlRow, PrevPageID},
		{prev.Col + prev.Width - 1, v.ControlRow, PrevPageID},
		{next.Col, v.ControlRow, NextPageID},
		{next.Col + next.Width, v.ControlRow, ""},
		{prev.Col, v.ControlRow + 1, ""},
		{0, v.ControlRow, ""},
	}
	for _, tt := range tests {
		if got := p.HitTest(tt.x, tt.row); got != tt.want {
			t.Errorf("HitTest(%d,%d) = %q; want %q", tt.x, tt.row, got, tt.want)
		}
	}
}
