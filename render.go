package qtip

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render lays the panel out as a styled string: lines stacked with their
// vertical margins, cells placed at their column offsets, the whole content
// box wrapped in the fixed border padding. Pending colspans are resolved
// synchronously first, so the output always reflects final geometry.
//
// Overflow beyond SetMaxHeight is truncated; scrollbars belong to the host.
func Render(p *Panel) string {
	ForceLayoutResolution(p)

	blocks := make([]string, 0, len(p.lines)*2)
	spacer := lipgloss.NewStyle().Width(p.width)
	for i, ln := range p.lines {
		if i > 0 && p.vMargin > 0 {
			blocks = append(blocks, spacer.Height(p.vMargin).Render(""))
		}
		blocks = append(blocks, p.renderLine(ln))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)

	if p.maxHeight > 0 {
		rows := strings.Split(content, "\n")
		if len(rows) > p.maxHeight {
			content = strings.Join(rows[:p.maxHeight], "\n")
		}
	}

	return lipgloss.NewStyle().
		Padding(panelPadding).
		Width(p.width + 2*panelPadding).
		Render(content)
}

// renderLine joins the line's cells left to right. Empty columns become
// blanks of the column width so later columns stay at their offsets.
func (p *Panel) renderLine(ln *Line) string {
	segs := make([]string, 0, len(p.columns)*2)
	gap := lipgloss.NewStyle()

	for col := 1; col <= len(p.columns); {
		c := p.columns[col-1]
		if col > 1 && c.leftMargin > 0 {
			segs = append(segs, gap.Width(c.leftMargin).Height(ln.height).Render(""))
		}

		slot, ok := ln.cells[col]
		if !ok || slot.covered() {
			segs = append(segs, gap.Width(c.width).Height(ln.height).Render(""))
			col++
			continue
		}

		w := p.spanWidth(col, slot.colSpan)
		slot.cell.AssignWidth(w)
		segs = append(segs, lipgloss.NewStyle().
			Width(w).
			Height(ln.height).
			Render(slot.cell.Draw()))
		col += slot.colSpan
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, segs...)
}
