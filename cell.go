package qtip

// CellProvider is a pluggable factory for one family of content cells. Each
// provider owns a pool of its concrete cell type, so cells always recycle
// through the provider that made them, never through the generic pools.
//
// New renderer families are built by extension: embed an existing provider's
// cell type to share its plumbing while keeping an independent pool (see
// barCell, which embeds textCell).
type CellProvider interface {
	// AcquireCell returns a reset cell of this provider's concrete type,
	// constructing one only when the provider's pool is empty.
	AcquireCell() Cell

	// ReleaseCell runs the cell's cleanup hook, if any, and returns it to
	// this provider's pool. Cells of a foreign type are ignored.
	ReleaseCell(Cell)
}

// Cell is one piece of rendered content occupying a line and a contiguous
// column range of a panel.
type Cell interface {
	// Setup renders value into the cell honoring cfg and returns the outer
	// width and height the cell wants. The natural content width is clamped
	// into [cfg.MinWidth, cfg.MaxWidth]; Setup fails with ErrInvalidArgument
	// when MaxWidth < MinWidth or MaxWidth < LeftPad+RightPad.
	Setup(p *Panel, value any, cfg CellConfig) (width, height int, err error)

	// AssignWidth records the final width the layout gave this cell, which
	// may exceed the natural width after colspan resolution.
	AssignWidth(w int)

	// ContentHeight recomputes the cell's height at its currently assigned
	// width. Called during deferred recomputation, after column growth may
	// have changed wrapping.
	ContentHeight() int

	// Draw returns the cell's content rendered at its assigned width.
	Draw() string
}

// CellCleaner is an optional hook a cell type may implement; providers run
// it before pooling the cell on release.
type CellCleaner interface {
	CleanupCell()
}

// CellConfig carries the presentation parameters SetCell hands to Setup.
// Zero values mean "panel default" for Font/Align and "unconstrained" for
// the width clamp.
type CellConfig struct {
	Font     Font
	Align    Align
	LeftPad  int
	RightPad int
	MinWidth int
	MaxWidth int

	// Extra holds provider-specific trailing arguments, passed through
	// untouched.
	Extra []any
}
