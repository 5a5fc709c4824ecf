package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette.
var (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
)

// styles holds the line styles for one output stream.
type styles struct {
	notice  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// newStyles binds the palette to w. Color is detected from w unless noColor
// forces plain text.
func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		notice:  r.NewStyle().Foreground(colorYellow),
		success: r.NewStyle().Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
	}
}
