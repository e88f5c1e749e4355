package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
const (
	ColorAccent = "86"  // Cyan/green - titles, modifier
	ColorLit    = "205" // Magenta - lit data lines
	ColorDanger = "196" // Red - error line
	ColorMuted  = "241" // Gray - dark lines, hints
	ColorText   = "252" // Light gray - normal text
)

// Styles contains the front panel style definitions.
var Styles = struct {
	Title  lipgloss.Style
	Panel  lipgloss.Style
	Lit    lipgloss.Style
	Dark   lipgloss.Style
	Error  lipgloss.Style
	Mod    lipgloss.Style
	Label  lipgloss.Style
	Status lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorLit)).
		Padding(1, 2).
		Margin(1),
	Lit: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLit)).
		Bold(true),
	Dark: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Mod: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
}
