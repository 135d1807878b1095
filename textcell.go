package qtip

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// textCell is the default content cell: a block of text rendered with a
// font, justification and horizontal padding. Width is measured in display
// cells (wide runes count double), and content re-wraps when the layout
// assigns a width narrower than the natural one.
type textCell struct {
	raw      string // unwrapped source text
	font     Font
	align    Align
	leftPad  int
	rightPad int
	width    int // assigned outer width, pads included

	pooled bool // guards double-release
}

func cellText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// maxLineWidth returns the display width of the widest line in s.
func maxLineWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}

// Setup implements Cell.
func (c *textCell) Setup(p *Panel, value any, cfg CellConfig) (int, int, error) {
	if cfg.MaxWidth > 0 && cfg.MaxWidth < cfg.MinWidth {
		return 0, 0, invalidArgf("max width %d below min width %d", cfg.MaxWidth, cfg.MinWidth)
	}
	if cfg.MaxWidth > 0 && cfg.MaxWidth < cfg.LeftPad+cfg.RightPad {
		return 0, 0, invalidArgf("max width %d below padding %d", cfg.MaxWidth, cfg.LeftPad+cfg.RightPad)
	}

	c.raw = cellText(value)
	c.font = cfg.Font
	c.align = cfg.Align
	c.leftPad = cfg.LeftPad
	c.rightPad = cfg.RightPad

	width := maxLineWidth(c.raw) + c.leftPad + c.rightPad
	if cfg.MaxWidth > 0 && width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	c.width = width

	return width, c.ContentHeight(), nil
}

// AssignWidth implements Cell.
func (c *textCell) AssignWidth(w int) { c.width = w }

// ContentHeight implements Cell. Height is the wrapped line count at the
// currently assigned width.
func (c *textCell) ContentHeight() int {
	return countLines(c.wrapped())
}

// wrapped returns the text word-wrapped to the inner (pad-excluded) width.
func (c *textCell) wrapped() string {
	inner := c.width - c.leftPad - c.rightPad
	if inner < 1 {
		inner = 1
	}
	if maxLineWidth(c.raw) <= inner {
		return c.raw
	}
	return wordwrap.String(c.raw, inner)
}

// Draw implements Cell.
func (c *textCell) Draw() string {
	return c.font.
		PaddingLeft(c.leftPad).
		PaddingRight(c.rightPad).
		Width(c.width).
		Align(c.align.position()).
		Render(c.wrapped())
}

// reset clears the cell for reuse, keeping nothing from the prior owner.
// A reset cell is by definition pool-owned, which is what makes a second
// ReleaseCell a no-op.
func (c *textCell) reset() {
	*c = textCell{pooled: true}
}

// ----------------------------------------------------------------------------
// provider
// ----------------------------------------------------------------------------

type textProvider struct {
	pool *Pool[*textCell]
}

// TextProvider is the default content provider: plain text cells. Panels
// use it whenever SetCell names no other provider.
var TextProvider CellProvider = &textProvider{
	pool: NewPool(func() *textCell { return &textCell{} }, (*textCell).reset),
}

func (tp *textProvider) AcquireCell() Cell {
	c := tp.pool.Acquire()
	c.pooled = false
	return c
}

func (tp *textProvider) ReleaseCell(cell Cell) {
	c, ok := cell.(*textCell)
	if !ok || c.pooled {
		return
	}
	if cl, ok := cell.(CellCleaner); ok {
		cl.CleanupCell()
	}
	tp.pool.Release(c)
}
