package qtip

import "strings"

// barCell renders a progress bar. It embeds textCell for all width/height
// plumbing and only synthesizes the bar text, demonstrating how a renderer
// family extends an existing one while keeping its own pool.
type barCell struct {
	textCell
	fraction float64
}

const (
	barFilledRune = '█'
	barEmptyRune  = '░'
	barDefaultLen = 10
)

// barFraction interprets the supported value shapes.
func barFraction(value any) float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v) / 100
	default:
		f = 0
	}
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f
}

// Setup implements Cell. value is a fraction in [0,1] (float) or a percent
// (int); anything else renders an empty bar.
func (c *barCell) Setup(p *Panel, value any, cfg CellConfig) (int, int, error) {
	c.fraction = barFraction(value)

	length := barDefaultLen
	if cfg.MinWidth > 0 {
		length = cfg.MinWidth - cfg.LeftPad - cfg.RightPad
	}
	if length < 1 {
		length = 1
	}

	filled := int(c.fraction*float64(length) + 0.5)
	bar := strings.Repeat(string(barFilledRune), filled) +
		strings.Repeat(string(barEmptyRune), length-filled)

	return c.textCell.Setup(p, bar, cfg)
}

type barProvider struct {
	pool *Pool[*barCell]
}

// BarProvider renders progress-bar cells. Pass it to SetCell via Provider:
//
//	p.SetCell(1, 2, 0.45, Provider(BarProvider))
var BarProvider CellProvider = &barProvider{
	pool: NewPool(func() *barCell { return &barCell{} }, (*barCell).reset),
}

func (bp *barProvider) AcquireCell() Cell {
	c := bp.pool.Acquire()
	c.pooled = false
	return c
}

func (bp *barProvider) ReleaseCell(cell Cell) {
	c, ok := cell.(*barCell)
	if !ok || c.pooled {
		return
	}
	if cl, ok := cell.(CellCleaner); ok {
		cl.CleanupCell()
	}
	bp.pool.Release(c)
}

func (c *barCell) reset() {
	*c = barCell{}
	c.textCell.pooled = true
}
