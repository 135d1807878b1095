package qtip

import "github.com/charmbracelet/lipgloss"

// Align is a column or cell justification.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the justification's token form for error messages and logs.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "LEFT"
	case AlignCenter:
		return "CENTER"
	case AlignRight:
		return "RIGHT"
	default:
		return "INVALID"
	}
}

func (a Align) valid() bool { return a <= AlignRight }

// position converts to the lipgloss horizontal position for rendering.
func (a Align) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Font is the style applied to a cell's text. Zero value renders plain.
type Font = lipgloss.Style

// Package-wide font defaults. Panels snapshot these on acquisition; change
// them before acquiring to restyle new panels.
var (
	DefaultFont       = lipgloss.NewStyle()
	DefaultHeaderFont = lipgloss.NewStyle().Bold(true)
)

// Default cell margins, in terminal cells. Horizontal is the gap between
// adjacent columns, vertical the gap between adjacent lines. Panels reset
// to these on Clear.
const (
	DefaultHMargin = 2
	DefaultVMargin = 0
)

// panelPadding is the fixed border padding around the content box. Content
// width/height exclude it; Surface sizing and Render include it.
const panelPadding = 1
