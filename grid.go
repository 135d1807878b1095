package qtip

// Grid authoring: column declaration, line appending, and SetCell.
//
// Simple (span 1) cells size their column eagerly; multi-column cells only
// record a width request against their literal column range and leave the
// growing to the deferred pass in layout.go. Row heights always grow
// eagerly.

// SetColumnLayout declares or updates count columns in one call. Existing
// columns keep their width and margin, only the justification is updated;
// missing columns are appended. Fewer justifications than columns default
// the remainder to AlignLeft.
func (p *Panel) SetColumnLayout(count int, aligns ...Align) error {
	if count < 1 {
		return invalidArgf("column count %d", count)
	}
	if len(aligns) > count {
		return invalidArgf("%d justifications for %d columns", len(aligns), count)
	}
	for _, a := range aligns {
		if !a.valid() {
			return invalidArgf("justification %d", a)
		}
	}

	for i := 0; i < count; i++ {
		align := AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		if i < len(p.columns) {
			p.columns[i].align = align
		} else if _, err := p.AddColumn(align); err != nil {
			return err
		}
	}
	return nil
}

// AddColumn appends one column anchored right of the previous one, with the
// panel's current horizontal margin as its left gap (column 1 has none).
// The gap widens the panel immediately; the column itself starts at width
// zero. Returns the new column's 1-based index.
func (p *Panel) AddColumn(align Align) (int, error) {
	if !align.valid() {
		return 0, invalidArgf("justification %d", align)
	}

	c := columnPool.Acquire()
	c.index = len(p.columns) + 1
	c.align = align
	if c.index > 1 {
		c.leftMargin = p.hMargin
	}
	c.x = p.width + c.leftMargin
	p.width += c.leftMargin
	p.columns = append(p.columns, c)
	p.syncSurface()
	return c.index, nil
}

// SetColumnLeftMargin changes the gap between col and its left neighbour,
// shifting the column and everything right of it. Column 1's margin is
// fixed at zero. Fails with ErrConflictingState while the column sits in an
// unresolved colspan, since its geometry would be re-derived underneath the
// pending request.
func (p *Panel) SetColumnLeftMargin(col, margin int) error {
	if col < 1 || col > len(p.columns) {
		return outOfRangef("column %d of %d", col, len(p.columns))
	}
	if col == 1 {
		return invalidArgf("column 1 has a fixed zero margin")
	}
	if margin < 0 {
		return invalidArgf("negative margin %d", margin)
	}
	c := p.columns[col-1]
	if c.inSpan {
		return errConflictf("column %d is inside an unresolved colspan", col)
	}

	delta := margin - c.leftMargin
	c.leftMargin = margin
	p.shiftColumns(col, delta)
	p.width += delta
	p.syncSurface()
	return nil
}

// shiftColumns moves column from (1-based) and all later columns by dx.
func (p *Panel) shiftColumns(from, dx int) {
	if dx == 0 {
		return
	}
	for i := from - 1; i < len(p.columns); i++ {
		p.columns[i].x += dx
	}
}

// growColumn widens a column and shifts everything right of it.
func (p *Panel) growColumn(c *Column, dw int) {
	if dw <= 0 {
		return
	}
	c.width += dw
	p.shiftColumns(c.index+1, dw)
	p.width += dw
	p.syncSurface()
}

// growLine raises a line's height and shifts everything below it.
func (p *Panel) growLine(ln *Line, dh int) {
	if dh <= 0 {
		return
	}
	ln.height += dh
	for i := ln.index; i < len(p.lines); i++ {
		p.lines[i].y += dh
	}
	p.height += dh
	p.syncSurface()
}

// AddLine appends a row below the existing ones and fills one cell per
// positional value, left to right, with span 1 and the panel defaults.
// Nil values leave their column empty. Returns the new line's 1-based
// index. Fails with ErrPrecondition before any column is declared.
func (p *Panel) AddLine(values ...any) (int, error) {
	return p.appendLine(false, values)
}

// AddHeader is AddLine with the line marked as a header, which switches
// the default font to the panel's header font.
func (p *Panel) AddHeader(values ...any) (int, error) {
	return p.appendLine(true, values)
}

func (p *Panel) appendLine(header bool, values []any) (int, error) {
	if len(p.columns) == 0 {
		return 0, errPreconditionf("no columns declared")
	}
	if len(values) > len(p.columns) {
		return 0, outOfRangef("%d values for %d columns", len(values), len(p.columns))
	}

	ln := linePool.Acquire()
	ln.index = len(p.lines) + 1
	ln.header = header
	ln.cells = cellMapPool.Acquire()
	if ln.index > 1 {
		ln.y = p.height + p.vMargin
		p.height += p.vMargin
	}
	p.lines = append(p.lines, ln)

	for i, v := range values {
		if v == nil {
			continue
		}
		if _, err := p.SetCell(ln.index, i+1, v); err != nil {
			return ln.index, err
		}
	}
	p.syncSurface()
	return ln.index, nil
}

// ----------------------------------------------------------------------------
// SetCell
// ----------------------------------------------------------------------------

type cellOptions struct {
	font     *Font
	align    *Align
	colSpan  int
	provider CellProvider
	leftPad  int
	rightPad int
	minWidth int
	maxWidth int
	extra    []any
}

// CellOption customizes one SetCell call.
type CellOption func(*cellOptions)

// CellFont overrides the line's default font for this cell.
func CellFont(f Font) CellOption { return func(o *cellOptions) { o.font = &f } }

// CellAlign overrides the column justification for this cell.
func CellAlign(al Align) CellOption { return func(o *cellOptions) { o.align = &al } }

// ColSpan makes the cell cover n columns starting at its own. Zero and
// negative values count back from the panel's right edge: 0 spans to the
// last column, -1 to the second-to-last, and so on.
func ColSpan(n int) CellOption {
	return func(o *cellOptions) { o.colSpan = n }
}

// Provider renders the cell with cp instead of the panel default.
func Provider(cp CellProvider) CellOption { return func(o *cellOptions) { o.provider = cp } }

// Padding adds left/right padding inside the cell.
func Padding(left, right int) CellOption {
	return func(o *cellOptions) { o.leftPad, o.rightPad = left, right }
}

// MinWidth clamps the cell's natural width from below.
func MinWidth(w int) CellOption { return func(o *cellOptions) { o.minWidth = w } }

// MaxWidth clamps the cell's natural width from above; text wraps to fit.
func MaxWidth(w int) CellOption { return func(o *cellOptions) { o.maxWidth = w } }

// ExtraArgs passes provider-specific trailing arguments through to Setup.
func ExtraArgs(args ...any) CellOption { return func(o *cellOptions) { o.extra = args } }

// SetCell places value at (line, col). A nil value clears the position,
// releasing any cell (and span coverage) anchored there.
//
// The existing cell object is reused in place when the provider is
// unchanged; otherwise the old cell goes back to its provider and a fresh
// one is drawn from the requested (or default) provider.
//
// Returns the 1-based index of the next free column on the line, or 0 when
// the span reached the last column. Validation runs before any mutation:
// on error the grid is exactly as it was.
func (p *Panel) SetCell(line, col int, value any, opts ...CellOption) (int, error) {
	var o cellOptions
	o.colSpan = 1
	for _, opt := range opts {
		opt(&o)
	}

	if line < 1 || line > len(p.lines) {
		return 0, outOfRangef("line %d of %d", line, len(p.lines))
	}
	if col < 1 || col > len(p.columns) {
		return 0, outOfRangef("column %d of %d", col, len(p.columns))
	}
	if o.maxWidth > 0 && o.maxWidth < o.minWidth {
		return 0, invalidArgf("max width %d below min width %d", o.maxWidth, o.minWidth)
	}
	if o.maxWidth > 0 && o.maxWidth < o.leftPad+o.rightPad {
		return 0, invalidArgf("max width %d below padding %d", o.maxWidth, o.leftPad+o.rightPad)
	}

	// resolve the span to a literal [col, end] range
	end := col + o.colSpan - 1
	if o.colSpan <= 0 {
		end = len(p.columns) + o.colSpan
	}
	if end > len(p.columns) || end < col {
		return 0, outOfRangef("colspan %d at column %d of %d", o.colSpan, col, len(p.columns))
	}
	span := end - col + 1

	ln := p.lines[line-1]

	// overlap check across the whole target range before touching anything
	for j := col; j <= end; j++ {
		if s, ok := ln.cells[j]; ok && s.anchor != col {
			return 0, errOverlapf("line %d columns %d-%d collide with cell at column %d", line, col, end, s.anchor)
		}
	}

	if value == nil {
		p.clearCellAt(ln, col)
		return p.nextFreeCol(ln, end), nil
	}

	// reuse the anchored cell when the provider is compatible
	old := ln.cells[col]
	provider := o.provider
	if provider == nil {
		provider = p.provider
	}
	reuse := old != nil && (o.provider == nil || o.provider == old.provider)
	var cell Cell
	if reuse {
		cell = old.cell
		provider = old.provider
	} else {
		cell = provider.AcquireCell()
	}

	cfg := CellConfig{
		Font:     p.font,
		Align:    p.columns[col-1].align,
		LeftPad:  o.leftPad,
		RightPad: o.rightPad,
		MinWidth: o.minWidth,
		MaxWidth: o.maxWidth,
		Extra:    o.extra,
	}
	if ln.header {
		cfg.Font = p.headerFont
	}
	if o.font != nil {
		cfg.Font = *o.font
	}
	if o.align != nil {
		cfg.Align = *o.align
	}

	// nothing in the grid changes until Setup succeeds: a provider error
	// here leaves the line exactly as it was
	w, h, err := cell.Setup(p, value, cfg)
	if err != nil {
		if !reuse {
			provider.ReleaseCell(cell)
		}
		return 0, err
	}

	slot := old
	if !reuse {
		if old != nil {
			p.clearCellAt(ln, col)
		}
		slot = slotPool.Acquire()
		slot.cell = cell
		slot.provider = provider
		slot.anchor = col
		ln.cells[col] = slot
	}

	// adjust span coverage: drop markers beyond the new range, add missing
	if slot.colSpan > span {
		for j := col + span; j <= col+slot.colSpan-1 && j <= len(p.columns); j++ {
			if s, ok := ln.cells[j]; ok && s.covered() && s.anchor == col {
				delete(ln.cells, j)
				slotPool.Release(s)
			}
		}
	}
	for j := col + 1; j <= end; j++ {
		if _, ok := ln.cells[j]; !ok {
			m := slotPool.Acquire()
			m.anchor = col
			ln.cells[j] = m
		}
	}
	slot.colSpan = span
	slot.width, slot.height = w, h

	if span == 1 {
		p.growColumn(p.columns[col-1], w-p.columns[col-1].width)
	} else {
		p.requestSpanWidth(spanRange{col, end}, w)
	}
	p.growLine(ln, h-ln.height)

	return p.nextFreeCol(ln, end), nil
}

// clearCellAt removes the cell anchored at col along with its coverage
// markers, returning the cell to its provider and the slots to their pool.
func (p *Panel) clearCellAt(ln *Line, col int) {
	slot, ok := ln.cells[col]
	if !ok || slot.covered() {
		return
	}
	for j := col + 1; j < col+slot.colSpan; j++ {
		if s, ok := ln.cells[j]; ok && s.covered() && s.anchor == col {
			delete(ln.cells, j)
			slotPool.Release(s)
		}
	}
	slot.provider.ReleaseCell(slot.cell)
	delete(ln.cells, col)
	slotPool.Release(slot)
}

// nextFreeCol returns the first column index after end with no slot, or 0
// when the line is full to the right edge.
func (p *Panel) nextFreeCol(ln *Line, end int) int {
	for j := end + 1; j <= len(p.columns); j++ {
		if _, ok := ln.cells[j]; !ok {
			return j
		}
	}
	return 0
}
