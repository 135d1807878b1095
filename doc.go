// Package qtip is a retained-mode, grid-based layout engine for transient,
// reusable on-screen panels: keyed grids of columns and lines whose cells
// hold pluggable content.
//
// Panels are acquired by key and recycled through process-wide pools:
//
//	p, err := qtip.Acquire("unit tooltip", 2, qtip.AlignLeft, qtip.AlignRight)
//	...
//	p.AddHeader("Stat", "Value")
//	p.AddLine("Health", "100")
//	line, _ := p.AddLine()
//	p.SetCell(line, 1, "A note spanning both columns", qtip.ColSpan(0))
//	...
//	qtip.Release(p)
//
// Simple cells grow their column immediately. Cells spanning several
// columns only record a width request; the next tick (FlushLayouts) or an
// explicit ForceLayoutResolution distributes the missing width over the
// spanned columns and recomputes row heights at the final widths. Hosts
// drive the tick themselves, typically from their frame loop.
//
// The package assumes a single logical UI thread and does no locking.
package qtip
