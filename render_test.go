package qtip

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHeaderAndLine(t *testing.T) {
	p := testPanel(t, 3, AlignLeft, AlignCenter, AlignRight)
	if _, err := p.AddHeader("A", "B", "C"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddLine("x", "y", "z"); err != nil {
		t.Fatal(err)
	}

	out := Render(p)
	rows := strings.Split(out, "\n")

	// content rows plus top/bottom padding
	if len(rows) != 2+2*panelPadding {
		t.Fatalf("rendered %d rows, want %d", len(rows), 2+2*panelPadding)
	}
	for i, row := range rows {
		if got := lipgloss.Width(row); got != lipgloss.Width(rows[0]) || got < p.Width() {
			t.Errorf("row %d width = %d, want a uniform width >= %d", i, got, p.Width())
		}
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "z") {
		t.Errorf("cell content missing from output:\n%s", out)
	}
}

func TestRenderResolvesPendingSpans(t *testing.T) {
	p := testPanel(t, 3)
	if _, err := p.AddLine(); err != nil {
		t.Fatal(err)
	}
	if _, err := p.SetCell(1, 1, "wide spanning text", ColSpan(3)); err != nil {
		t.Fatal(err)
	}
	if PendingLayouts() != 1 {
		t.Fatal("span did not schedule the panel")
	}

	out := Render(p)

	if PendingLayouts() != 0 {
		t.Error("Render left the panel in the dirty-set")
	}
	if !strings.Contains(out, "wide spanning text") {
		t.Errorf("span content missing or wrapped:\n%s", out)
	}
}

func TestRenderHonorsMaxHeight(t *testing.T) {
	p := testPanel(t, 1)
	for i := 0; i < 10; i++ {
		if _, err := p.AddLine("row"); err != nil {
			t.Fatal(err)
		}
	}
	p.SetMaxHeight(4)

	out := Render(p)
	if got := strings.Count(out, "row"); got != 4 {
		t.Errorf("rendered %d rows under a max height of 4, want 4", got)
	}
}

func TestRenderVerticalMargins(t *testing.T) {
	p := testPanel(t, 1)
	if err := p.SetCellMargins(DefaultHMargin, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddLine("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddLine("b"); err != nil {
		t.Fatal(err)
	}

	if p.Height() != 3 {
		t.Fatalf("height = %d, want 3 (two rows and a margin)", p.Height())
	}

	out := Render(p)
	rows := strings.Split(out, "\n")
	if len(rows) != 3+2*panelPadding {
		t.Errorf("rendered %d rows, want %d", len(rows), 3+2*panelPadding)
	}
}
