package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// printer writes progress lines in text mode and stays silent otherwise.
type printer struct {
	w       io.Writer
	enabled bool
	styles  styles
}

func newPrinter(w io.Writer, enabled, noColor bool) *printer {
	return &printer{
		w:       w,
		enabled: enabled,
		styles:  newStyles(w, noColor),
	}
}

func (p *printer) notice(format string, args ...any) {
	p.line(&p.styles.notice, format, args...)
}

func (p *printer) success(format string, args ...any) {
	p.line(&p.styles.success, format, args...)
}

func (p *printer) failure(format string, args ...any) {
	p.line(&p.styles.failure, format, args...)
}

func (p *printer) plain(format string, args ...any) {
	p.line(nil, format, args...)
}

func (p *printer) line(style *lipgloss.Style, format string, args ...any) {
	if !p.enabled {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if style != nil {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}
