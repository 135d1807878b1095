// tipdemo: a tick-driven host for qtip panels. Updates a stats panel every
// tick, mutates colspans to exercise the deferred layout pass, and drains
// the dirty-set on each tick before presenting.
package main

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lilyball/qtip"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	frame int
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			qtip.Release(mustPanel())
			return m, tea.Quit
		}
	case tickMsg:
		m.frame++
		m.rebuild()
		// the host tick: resolve every panel dirtied since the last one
		qtip.FlushLayouts()
		return m, tick()
	}
	return m, nil
}

func mustPanel() *qtip.Panel {
	p, err := qtip.Acquire("tipdemo", 3, qtip.AlignLeft, qtip.AlignCenter, qtip.AlignRight)
	if err != nil {
		log.Fatal(err)
	}
	return p
}

// rebuild refills the panel in place, the way a mouse-over tooltip would be
// refilled on every show.
func (m model) rebuild() {
	p := mustPanel()
	p.Clear()
	if err := p.SetColumnLayout(3, qtip.AlignLeft, qtip.AlignCenter, qtip.AlignRight); err != nil {
		log.Fatal(err)
	}

	line, err := p.AddHeader()
	if err != nil {
		log.Fatal(err)
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	if _, err := p.SetCell(line, 1, "qtip demo: deferred colspan layout",
		qtip.ColSpan(0), qtip.CellAlign(qtip.AlignCenter), qtip.CellFont(title)); err != nil {
		log.Fatal(err)
	}

	if _, err := p.AddHeader("metric", "bar", "value"); err != nil {
		log.Fatal(err)
	}

	for i, name := range []string{"alpha", "beta", "gamma"} {
		frac := float64((m.frame*7+i*29)%100) / 100
		line, err := p.AddLine(name)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := p.SetCell(line, 2, frac, qtip.Provider(qtip.BarProvider)); err != nil {
			log.Fatal(err)
		}
		if _, err := p.SetCell(line, 3, fmt.Sprintf("%3.0f%%", frac*100)); err != nil {
			log.Fatal(err)
		}
	}

	footer := lipgloss.NewStyle().Faint(true)
	line, err = p.AddLine()
	if err != nil {
		log.Fatal(err)
	}
	if _, err := p.SetCell(line, 1,
		fmt.Sprintf("frame %d · %d panel(s) pending layout · press q to quit", m.frame, qtip.PendingLayouts()),
		qtip.ColSpan(0), qtip.CellFont(footer)); err != nil {
		log.Fatal(err)
	}
}

func (m model) View() string {
	if !qtip.IsAcquired("tipdemo") {
		return "bye\n"
	}
	return qtip.Render(mustPanel()) + "\n"
}

func main() {
	if _, err := tea.NewProgram(model{}).Run(); err != nil {
		log.Fatal(err)
	}
}
