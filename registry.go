package qtip

import "fmt"

// Panel registry: acquire-by-key, idempotent release, recycle.
//
// At most one live panel exists per key. Acquiring an already-active key
// returns the existing instance; releasing anything but the active panel
// for its key is a no-op.

var (
	activePanels = make(map[any]*Panel)

	panelPool = NewPool(func() *Panel { return &Panel{} }, nil)
)

// Acquire returns the panel registered under key, creating one from the
// panel pool when the key is not active. key may be any comparable value
// and must not be nil. columns > 0 applies an initial column layout; a
// layout error unwinds the acquisition and is returned.
func Acquire(key any, columns int, aligns ...Align) (*Panel, error) {
	if key == nil {
		return nil, invalidArgf("nil panel key")
	}
	if p, ok := activePanels[key]; ok {
		return p, nil
	}

	p := panelPool.Acquire()
	p.initGrid(key)
	activePanels[key] = p

	if columns > 0 {
		if err := p.SetColumnLayout(columns, aligns...); err != nil {
			Release(p)
			return nil, err
		}
	}
	return p, nil
}

// Release tears down p's grid, returns every owned resource to its pool
// and recycles the panel itself. Releasing a panel that is not the active
// one for its key (already released, or foreign) is a no-op.
//
// A registered OnRelease hook runs first; its error (or panic) goes to
// ErrorHandler and never blocks the teardown.
func Release(p *Panel) {
	if p == nil || p.state != stateActive {
		return
	}
	if activePanels[p.key] != p {
		return
	}
	p.state = stateReleasing

	if hook := p.onRelease; hook != nil {
		runReleaseHook(p, hook)
	}

	delete(activePanels, p.key)
	unscheduleLayout(p)
	p.teardownGrid()
	panelPool.Release(p)
}

// runReleaseHook isolates user code so teardown is unconditional.
func runReleaseHook(p *Panel, hook func(*Panel) error) {
	defer func() {
		if r := recover(); r != nil {
			ErrorHandler(fmt.Errorf("release hook for key %v panicked: %v", p.key, r))
		}
	}()
	if err := hook(p); err != nil {
		ErrorHandler(fmt.Errorf("release hook for key %v: %w", p.key, err))
	}
}

// IsAcquired reports whether a panel is currently active under key.
func IsAcquired(key any) bool {
	_, ok := activePanels[key]
	return ok
}

// ActiveKeys returns the keys of all currently acquired panels, in no
// particular order.
func ActiveKeys() []any {
	keys := make([]any, 0, len(activePanels))
	for k := range activePanels {
		keys = append(keys, k)
	}
	return keys
}
