package qtip

// Pool is a LIFO free-list recycler. Release resets an item and pushes it;
// Acquire pops the most recently released item, constructing a fresh one
// only when the list is empty. Construction is the only path that pays the
// expensive initializer - reuse skips it.
//
// Pools never reject an acquire or release. Double-release is the caller's
// bug; owning types guard it one level up (textCell.pooled, the panel
// state check in Release) so a second release degrades to a no-op.
type Pool[T any] struct {
	free  []T
	alloc func() T
	reset func(T)

	allocated int // total constructed, for introspection
}

// NewPool creates a pool that constructs items with alloc and resets them
// with reset before they re-enter the free list. reset may be nil when the
// type resets itself elsewhere.
func NewPool[T any](alloc func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{alloc: alloc, reset: reset}
}

// Acquire pops the last released item, or constructs a new one.
func (p *Pool[T]) Acquire() T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero // drop the pool's reference
		p.free = p.free[:n-1]
		return v
	}
	p.allocated++
	return p.alloc()
}

// Release resets item and pushes it for reuse.
func (p *Pool[T]) Release(item T) {
	if p.reset != nil {
		p.reset(item)
	}
	p.free = append(p.free, item)
}

// Idle returns how many reset items are waiting in the free list.
func (p *Pool[T]) Idle() int { return len(p.free) }

// Allocated returns how many items this pool has ever constructed.
func (p *Pool[T]) Allocated() int { return p.allocated }

// InUse returns how many constructed items are currently out on loan.
func (p *Pool[T]) InUse() int { return p.allocated - len(p.free) }
