package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary values
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleFieldName = lipgloss.NewStyle().Foreground(colorGray)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
	styleError     = lipgloss.NewStyle().Foreground(colorRed)
	styleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
)

// printField writes one aligned "name: value" line of label output.
func printField(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s %s\n", styleFieldName.Render(fmt.Sprintf("%-11s", name+":")), styleValue.Render(value))
}
