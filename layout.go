package qtip

// Deferred layout resolution.
//
// Multi-column cells never grow columns at SetCell time. They record a
// width request against their literal column range and mark the panel
// dirty; the next tick drains every dirty panel in one pass. Many spanning
// cells mutating the same ranges within a tick therefore cost one
// reconciliation, not one per mutation.

var (
	// pendingLayouts is the process-wide dirty-set. Single UI thread by
	// contract, so a plain map.
	pendingLayouts = make(map[*Panel]struct{})

	// layoutArmed is the one-shot "flush on next tick" trigger.
	layoutArmed bool
)

// RequestTick, when set, is invoked once each time the dirty-set goes from
// disarmed to armed. Hosts wire it to their frame scheduler so a tick (and
// with it FlushLayouts) is guaranteed to follow a colspan mutation.
var RequestTick func()

// requestSpanWidth records that the cells over r collectively want width w.
// A repeated request against the same literal range keeps the larger
// width. Every covered column is frozen for margin edits until resolution.
func (p *Panel) requestSpanWidth(r spanRange, w int) {
	if cur, ok := p.spans[r]; !ok || w > cur {
		p.spans[r] = w
	}
	for i := r.start; i <= r.end; i++ {
		p.columns[i-1].inSpan = true
	}
	scheduleLayout(p)
}

// scheduleLayout marks p dirty. Idempotent - re-adding a dirty panel is a
// no-op and does not re-arm the trigger.
func scheduleLayout(p *Panel) {
	if p.dirty {
		return
	}
	p.dirty = true
	pendingLayouts[p] = struct{}{}
	if !layoutArmed {
		layoutArmed = true
		if RequestTick != nil {
			RequestTick()
		}
	}
}

// unscheduleLayout removes p from the dirty-set. Called by Release, Clear
// and forced resolution so no redundant pass runs later.
func unscheduleLayout(p *Panel) {
	if !p.dirty {
		return
	}
	p.dirty = false
	delete(pendingLayouts, p)
}

// PendingLayouts returns how many panels await deferred resolution.
func PendingLayouts() int { return len(pendingLayouts) }

// FlushLayouts resolves every panel that was pending when the tick fired.
// This is the host tick's entry point. The trigger disarms first and the
// pass works off a snapshot of the dirty-set, so a panel dirtied while
// draining (a resolution side effect, say) arms a fresh tick and waits for
// it instead of extending this pass.
func FlushLayouts() {
	layoutArmed = false
	batch := make([]*Panel, 0, len(pendingLayouts))
	for p := range pendingLayouts {
		batch = append(batch, p)
	}
	for _, p := range batch {
		if !p.dirty {
			continue
		}
		unscheduleLayout(p)
		p.resolveLayout()
	}
}

// ForceLayoutResolution resolves p's pending colspans synchronously,
// bypassing the tick. Presentation-time callers use it to measure final
// panel size before showing.
func ForceLayoutResolution(p *Panel) {
	unscheduleLayout(p)
	p.resolveLayout()
}

// ----------------------------------------------------------------------------
// resolution
// ----------------------------------------------------------------------------

func (p *Panel) resolveLayout() {
	if len(p.spans) == 0 {
		return
	}
	p.resolveSpans()
	for _, c := range p.columns {
		c.inSpan = false
	}
	p.recomputeHeights()
	p.syncSurface()
}

// spanDeficit returns how much width r still lacks to satisfy want:
// requested width minus current column widths and the inner margins.
func (p *Panel) spanDeficit(r spanRange, want int) int {
	have := 0
	for i := r.start; i <= r.end; i++ {
		c := p.columns[i-1]
		have += c.width
		if i > r.start {
			have += c.leftMargin
		}
	}
	return want - have
}

// resolveSpans grows columns until no request lacks width. Each round drops
// every satisfied request, then resolves the one with the greatest
// per-column deficit - the widest marginal need wins, so no range is starved
// behind a request with a large absolute but small per-column need. Growth
// is monotonic and each round removes at least one request, so this
// terminates.
func (p *Panel) resolveSpans() {
	for len(p.spans) > 0 {
		var (
			best     spanRange
			bestNeed int
			found    bool
		)
		for r, want := range p.spans {
			need := p.spanDeficit(r, want)
			if need <= 0 {
				delete(p.spans, r)
				continue
			}
			// per-column comparison without floats:
			// need/r.cols() > bestNeed/best.cols()
			if !found || need*best.cols() > bestNeed*r.cols() {
				best, bestNeed, found = r, need, true
			}
		}
		if !found {
			return
		}

		per := (bestNeed + best.cols() - 1) / best.cols() // ceil: fully satisfy
		for i := best.start; i <= best.end; i++ {
			p.growColumn(p.columns[i-1], per)
		}
		delete(p.spans, best)
	}
}

// recomputeHeights re-derives every line's height at the final column
// widths. Column growth from spans can change the wrap of unrelated cells
// sharing those columns, so every occupied cell is re-asked. Heights only
// grow within a session.
func (p *Panel) recomputeHeights() {
	for _, ln := range p.lines {
		tallest := 0
		for col, slot := range ln.cells {
			if slot.covered() {
				continue
			}
			slot.cell.AssignWidth(p.spanWidth(col, slot.colSpan))
			if h := slot.cell.ContentHeight(); h > tallest {
				tallest = h
			}
		}
		p.growLine(ln, tallest-ln.height)
	}
}

// spanWidth returns the total width of the n columns starting at col,
// inner margins included.
func (p *Panel) spanWidth(col, n int) int {
	w := 0
	for i := col; i < col+n && i <= len(p.columns); i++ {
		c := p.columns[i-1]
		w += c.width
		if i > col {
			w += c.leftMargin
		}
	}
	return w
}
