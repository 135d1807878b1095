package qtip

import (
	"errors"
	"testing"
)

func TestAcquireSameKeyReturnsSameInstance(t *testing.T) {
	p1, err := Acquire(t.Name(), 2)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { Release(p1) })

	if !IsAcquired(t.Name()) {
		t.Fatal("IsAcquired false for an active key")
	}

	p2, err := Acquire(t.Name(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("second acquisition of an active key returned a different panel")
	}
	if p2.GetColumnCount() != 2 {
		t.Errorf("re-acquire disturbed the grid: %d columns", p2.GetColumnCount())
	}
}

func TestAcquireValidation(t *testing.T) {
	if _, err := Acquire(nil, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil key: got %v, want ErrInvalidArgument", err)
	}

	// a bad initial layout unwinds the acquisition entirely
	if _, err := Acquire(t.Name(), 2, Align(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad layout: got %v, want ErrInvalidArgument", err)
	}
	if IsAcquired(t.Name()) {
		t.Error("failed acquisition left an active panel behind")
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	p, err := Acquire(t.Name(), 3, AlignLeft, AlignCenter, AlignRight)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddHeader("A", "B", "C"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.SetCell(1, 1, "spanning", ColSpan(3)); err != nil {
		t.Fatal(err)
	}

	Release(p)

	if IsAcquired(t.Name()) {
		t.Fatal("key still active after release")
	}

	// reacquiring yields a blank grid; columns do not survive a full
	// release, only a Clear
	p2, err := Acquire(t.Name(), 0)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { Release(p2) })

	if p2 != p {
		t.Log("note: panel pool handed out a different instance (other tests interleaved)")
	}
	if got := p2.GetLineCount(); got != 0 {
		t.Errorf("recycled panel has %d lines", got)
	}
	if got := p2.GetColumnCount(); got != 0 {
		t.Errorf("recycled panel has %d columns", got)
	}
	if len(p2.spans) != 0 {
		t.Errorf("recycled panel has %d colspan requests", len(p2.spans))
	}
	if p2.Width() != 0 || p2.Height() != 0 {
		t.Errorf("recycled panel has size %dx%d", p2.Width(), p2.Height())
	}
}

func TestReleaseIdempotent(t *testing.T) {
	p, err := Acquire(t.Name(), 1)
	if err != nil {
		t.Fatal(err)
	}

	Release(p)
	idle := panelPool.Idle()
	Release(p) // double release must be a no-op
	if got := panelPool.Idle(); got != idle {
		t.Errorf("double release pushed the panel again: idle %d -> %d", idle, got)
	}
}

func TestReleaseForeignPanelNoop(t *testing.T) {
	Release(nil)
	Release(&Panel{}) // never acquired, must not touch the registry or pools

	idle := panelPool.Idle()
	Release(&Panel{})
	if got := panelPool.Idle(); got != idle {
		t.Errorf("foreign release reached the pool: idle %d -> %d", idle, got)
	}
}

func TestReleaseHookErrorsReported(t *testing.T) {
	var reported []error
	old := ErrorHandler
	ErrorHandler = func(err error) { reported = append(reported, err) }
	t.Cleanup(func() { ErrorHandler = old })

	hookErr := errors.New("hook failed")
	p, err := Acquire(t.Name(), 1)
	if err != nil {
		t.Fatal(err)
	}
	p.OnRelease(func(*Panel) error { return hookErr })

	Release(p)

	if IsAcquired(t.Name()) {
		t.Error("hook error blocked the release")
	}
	if len(reported) != 1 || !errors.Is(reported[0], hookErr) {
		t.Errorf("reported = %v, want the hook error", reported)
	}
}

func TestReleaseHookPanicContained(t *testing.T) {
	var reported []error
	old := ErrorHandler
	ErrorHandler = func(err error) { reported = append(reported, err) }
	t.Cleanup(func() { ErrorHandler = old })

	p, err := Acquire(t.Name(), 1)
	if err != nil {
		t.Fatal(err)
	}
	p.OnRelease(func(*Panel) error { panic("boom") })

	Release(p) // must not panic through

	if IsAcquired(t.Name()) {
		t.Error("hook panic blocked the release")
	}
	if len(reported) != 1 {
		t.Errorf("panic not reported: %v", reported)
	}
}

func TestActiveKeys(t *testing.T) {
	p1, err := Acquire(t.Name()+"/a", 1)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { Release(p1) })
	p2, err := Acquire(t.Name()+"/b", 1)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { Release(p2) })

	found := 0
	for _, k := range ActiveKeys() {
		if k == t.Name()+"/a" || k == t.Name()+"/b" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("ActiveKeys missing test panels: %v", ActiveKeys())
	}
}

func TestSurfaceLifecycle(t *testing.T) {
	p, err := Acquire(t.Name(), 2)
	if err != nil {
		t.Fatal(err)
	}

	s := &recordingSurface{}
	p.SetSurface(s)
	if _, err := p.AddLine("hello", "world"); err != nil {
		t.Fatal(err)
	}

	if s.w != p.Width()+2 || s.h != p.Height()+2 {
		t.Errorf("surface size %dx%d, want padded %dx%d", s.w, s.h, p.Width()+2, p.Height()+2)
	}

	p.Show()
	p.Hide()
	if s.shows != 1 || s.hides != 1 {
		t.Errorf("show/hide not forwarded: %d/%d", s.shows, s.hides)
	}

	Release(p)
	if s.resets != 1 {
		t.Errorf("release did not reset the surface: %d resets", s.resets)
	}
}

type recordingSurface struct {
	w, h   int
	shows  int
	hides  int
	resets int
}

func (s *recordingSurface) SetSize(w, h int) { s.w, s.h = w, h }
func (s *recordingSurface) Show()            { s.shows++ }
func (s *recordingSurface) Hide()            { s.hides++ }
func (s *recordingSurface) Reset()           { s.resets++ }
