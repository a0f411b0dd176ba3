package render

import "github.com/charmbracelet/lipgloss"

// Styles selects the colour applied to each output element. A zero
// style leaves the text unchanged, so PlainStyles renders without any
// escape sequences.
type Styles struct {
	Path   lipgloss.Style
	Key    lipgloss.Style
	String lipgloss.Style
	Number lipgloss.Style
	Bool   lipgloss.Style
	Null   lipgloss.Style
}

// DefaultStyles is the colour palette used when output goes to a
// terminal.
func DefaultStyles() Styles {
	return Styles{
		Path:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		String: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Number: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Bool:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		Null:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Faint(true),
	}
}

// PlainStyles renders every element without colour.
func PlainStyles() Styles {
	return Styles{}
}
