package qtip

// Read-only introspection over the shared recyclers and the registry.
// Purely diagnostic; nothing here mutates state.

// PoolStats is a point-in-time snapshot of one recycler.
type PoolStats struct {
	Idle      int // reset instances waiting in the free list
	InUse     int // constructed instances currently out on loan
	Allocated int // total ever constructed
}

func snapshot[T any](p *Pool[T]) PoolStats {
	return PoolStats{Idle: p.Idle(), InUse: p.InUse(), Allocated: p.Allocated()}
}

// Stats returns per-pool usage keyed by resource kind.
func Stats() map[string]PoolStats {
	return map[string]PoolStats{
		"panels":   snapshot(panelPool),
		"columns":  snapshot(columnPool),
		"lines":    snapshot(linePool),
		"slots":    snapshot(slotPool),
		"cellmaps": snapshot(cellMapPool),
		"spanmaps": snapshot(spanMapPool),
	}
}
