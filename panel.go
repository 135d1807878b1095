package qtip

// Panel is one keyed grid of columns, lines and cells. Panels are never
// constructed directly - Acquire hands them out and Release recycles them
// (see registry.go). All geometry is in terminal cells and excludes the fixed
// border padding.
type Panel struct {
	key any

	columns []*Column
	lines   []*Line

	// pending colspan width requests, one entry per literal column range,
	// keeping the widest request seen.
	spans map[spanRange]int

	width  int // content width, margins included
	height int // content height

	hMargin int // gap between adjacent columns
	vMargin int // gap between adjacent lines

	font       Font
	headerFont Font
	provider   CellProvider

	scrollStep int
	maxHeight  int // 0 = no overflow limit

	surface   Surface
	onRelease func(*Panel) error

	state panelState
	dirty bool // member of the pending layout set
}

type panelState uint8

const (
	stateUnallocated panelState = iota
	stateActive
	stateReleasing
)

// spanRange keys a pending colspan request by its literal column range.
type spanRange struct {
	start, end int
}

func (r spanRange) cols() int { return r.end - r.start + 1 }

// Column is a vertical grid track. Width only grows between clears; the
// x offset is kept current as earlier columns grow.
type Column struct {
	index      int
	align      Align
	width      int
	x          int // left edge within the content box
	leftMargin int // gap from the previous column; column 1 is always 0
	inSpan     bool
}

// Index returns the column's 1-based position.
func (c *Column) Index() int { return c.index }

// Align returns the column's justification.
func (c *Column) Align() Align { return c.align }

// Width returns the column's current width.
func (c *Column) Width() int { return c.width }

// X returns the column's left edge offset within the content box.
func (c *Column) X() int { return c.x }

// LeftMargin returns the gap from the previous column.
func (c *Column) LeftMargin() int { return c.leftMargin }

func (c *Column) reset() { *c = Column{} }

// Line is a horizontal grid track. Height only grows within a layout
// session; the cells map holds anchored slots plus covered markers for
// columns inside a span.
type Line struct {
	index  int
	height int
	y      int // top edge within the content box
	header bool
	cells  map[int]*cellSlot
}

// Index returns the line's 1-based position.
func (l *Line) Index() int { return l.index }

// Height returns the line's current height.
func (l *Line) Height() int { return l.height }

// Y returns the line's top edge offset within the content box.
func (l *Line) Y() int { return l.y }

// IsHeader reports whether the line was added with AddHeader.
func (l *Line) IsHeader() bool { return l.header }

func (l *Line) reset() {
	*l = Line{}
}

// cellSlot binds a cell to its anchor position. A covered marker is a slot
// with a nil cell whose anchor names the column the covering cell starts
// at; that is what lets overlap checks tell "empty" from "spanned".
type cellSlot struct {
	cell     Cell
	provider CellProvider
	anchor   int // anchoring column; == own key for anchored slots
	colSpan  int
	width    int // natural width from Setup
	height   int
}

func (s *cellSlot) covered() bool { return s.cell == nil }

func (s *cellSlot) reset() { *s = cellSlot{} }

// ----------------------------------------------------------------------------
// shared pools
// ----------------------------------------------------------------------------

// Process-wide recyclers for grid structure. Cells are deliberately absent:
// they recycle through their provider's own pool.
var (
	columnPool = NewPool(func() *Column { return &Column{} }, (*Column).reset)
	linePool   = NewPool(func() *Line { return &Line{} }, (*Line).reset)
	slotPool   = NewPool(func() *cellSlot { return &cellSlot{} }, (*cellSlot).reset)

	cellMapPool = NewPool(
		func() map[int]*cellSlot { return make(map[int]*cellSlot, 8) },
		func(m map[int]*cellSlot) { clear(m) },
	)
	spanMapPool = NewPool(
		func() map[spanRange]int { return make(map[spanRange]int, 4) },
		func(m map[spanRange]int) { clear(m) },
	)
)

// ----------------------------------------------------------------------------
// panel configuration
// ----------------------------------------------------------------------------

// Key returns the opaque key this panel was acquired under.
func (p *Panel) Key() any { return p.key }

// Width returns the current content width, cell margins included but the
// fixed border padding excluded.
func (p *Panel) Width() int { return p.width }

// Height returns the current content height.
func (p *Panel) Height() int { return p.height }

// GetColumnCount returns the number of declared columns.
func (p *Panel) GetColumnCount() int { return len(p.columns) }

// GetLineCount returns the number of lines.
func (p *Panel) GetLineCount() int { return len(p.lines) }

// Column returns the column at the 1-based index.
func (p *Panel) Column(i int) (*Column, error) {
	if i < 1 || i > len(p.columns) {
		return nil, outOfRangef("column %d of %d", i, len(p.columns))
	}
	return p.columns[i-1], nil
}

// Line returns the line at the 1-based index.
func (p *Panel) Line(i int) (*Line, error) {
	if i < 1 || i > len(p.lines) {
		return nil, outOfRangef("line %d of %d", i, len(p.lines))
	}
	return p.lines[i-1], nil
}

// GetCell returns the cell visible at (line, col). A column covered by a
// span resolves to the spanning cell. ok is false for empty or invalid
// positions.
func (p *Panel) GetCell(line, col int) (Cell, bool) {
	if line < 1 || line > len(p.lines) {
		return nil, false
	}
	ln := p.lines[line-1]
	slot, ok := ln.cells[col]
	if !ok {
		return nil, false
	}
	if slot.covered() {
		slot = ln.cells[slot.anchor]
		if slot == nil {
			return nil, false
		}
	}
	return slot.cell, slot.cell != nil
}

// SetCellMargins sets the horizontal gap between columns and the vertical
// gap between lines. Affects geometry created after the call; Clear resets
// both to the package defaults.
func (p *Panel) SetCellMargins(h, v int) error {
	if h < 0 || v < 0 {
		return invalidArgf("negative cell margin %d/%d", h, v)
	}
	p.hMargin, p.vMargin = h, v
	return nil
}

// SetFont sets the default font for regular lines.
func (p *Panel) SetFont(f Font) { p.font = f }

// SetHeaderFont sets the default font for header lines.
func (p *Panel) SetHeaderFont(f Font) { p.headerFont = f }

// SetDefaultProvider sets the provider used when SetCell names none.
func (p *Panel) SetDefaultProvider(cp CellProvider) {
	if cp != nil {
		p.provider = cp
	}
}

// SetScrollStep sets the per-step scroll distance used by the host's
// scrollbar logic. The core only stores it.
func (p *Panel) SetScrollStep(n int) { p.scrollStep = n }

// ScrollStep returns the configured scroll step.
func (p *Panel) ScrollStep() int { return p.scrollStep }

// SetMaxHeight caps the presented height; Render truncates content beyond
// it. Zero means unlimited.
func (p *Panel) SetMaxHeight(h int) { p.maxHeight = h }

// MaxHeight returns the configured overflow limit.
func (p *Panel) MaxHeight() int { return p.maxHeight }

// SetSurface attaches the host surface the panel reports its size to.
func (p *Panel) SetSurface(s Surface) {
	p.surface = s
	p.syncSurface()
}

// OnRelease registers a cleanup hook run when the panel is released.
// Errors from the hook go to ErrorHandler; they never block release.
func (p *Panel) OnRelease(fn func(*Panel) error) { p.onRelease = fn }

// Show forwards to the attached surface.
func (p *Panel) Show() {
	if p.surface != nil {
		p.surface.Show()
	}
}

// Hide forwards to the attached surface.
func (p *Panel) Hide() {
	if p.surface != nil {
		p.surface.Hide()
	}
}

// syncSurface pushes the padded outer size to the surface.
func (p *Panel) syncSurface() {
	if p.surface != nil {
		p.surface.SetSize(p.width+2*panelPadding, p.height+2*panelPadding)
	}
}

// ----------------------------------------------------------------------------
// lifecycle internals (driven by the registry)
// ----------------------------------------------------------------------------

// initGrid puts a fresh-or-recycled panel into its blank active shape.
func (p *Panel) initGrid(key any) {
	p.key = key
	p.spans = spanMapPool.Acquire()
	p.hMargin = DefaultHMargin
	p.vMargin = DefaultVMargin
	p.font = DefaultFont
	p.headerFont = DefaultHeaderFont
	p.provider = TextProvider
	p.surface = NopSurface{}
	p.state = stateActive
}

// Clear releases every line and cell and zeroes the panel's size, keeping
// the declared columns (with widths reset) so the grid can be refilled
// without re-declaring its layout. Margins, fonts, provider, scroll step
// and max height return to defaults. Columns do NOT survive a full
// Release/Acquire cycle - only Clear preserves them.
func (p *Panel) Clear() {
	p.releaseLines()
	clear(p.spans)
	unscheduleLayout(p)

	p.width, p.height = 0, 0
	p.hMargin, p.vMargin = DefaultHMargin, DefaultVMargin
	p.font = DefaultFont
	p.headerFont = DefaultHeaderFont
	p.provider = TextProvider
	p.scrollStep = 0
	p.maxHeight = 0

	for _, c := range p.columns {
		c.width = 0
		c.inSpan = false
		c.x = p.width + c.leftMargin
		p.width += c.leftMargin
	}
	p.syncSurface()
}

// teardownGrid returns every owned resource to its pool. Called by Release
// only; the panel is unkeyed and ready for the panel pool afterwards.
func (p *Panel) teardownGrid() {
	p.releaseLines()
	for _, c := range p.columns {
		columnPool.Release(c)
	}
	p.columns = p.columns[:0]

	spanMapPool.Release(p.spans)
	p.spans = nil

	if p.surface != nil {
		p.surface.Reset()
	}

	p.key = nil
	p.width, p.height = 0, 0
	p.scrollStep, p.maxHeight = 0, 0
	p.onRelease = nil
	p.surface = nil
	p.state = stateUnallocated
}

func (p *Panel) releaseLines() {
	for _, ln := range p.lines {
		for col, slot := range ln.cells {
			if !slot.covered() && slot.cell != nil {
				slot.provider.ReleaseCell(slot.cell)
			}
			delete(ln.cells, col)
			slotPool.Release(slot)
		}
		cellMapPool.Release(ln.cells)
		ln.cells = nil
		linePool.Release(ln)
	}
	p.lines = p.lines[:0]
}
