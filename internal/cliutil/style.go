package cliutil

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/erraggy/taxokit/internal/issues"
	"github.com/erraggy/taxokit/internal/severity"
)

// Semantic colors for console output.
var (
	ErrorColor   = lipgloss.Color("#e53935")
	WarningColor = lipgloss.Color("#FFC107")
	InfoColor    = lipgloss.Color("#2196F3")
	SuccessColor = lipgloss.Color("#8BC34A")
)

// ColorEnabled reports whether colored output should be used. Color is off
// when disabled by flag or when the NO_COLOR environment variable is set.
func ColorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}

// Printer writes severity-colored lines to a writer.
type Printer struct {
	w       io.Writer
	color   bool
	error   lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
}

// NewPrinter returns a Printer for w. With color false, or when w is not a
// color-capable terminal, lines are written without escape sequences.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		color:   color,
		error:   r.NewStyle().Foreground(ErrorColor),
		warning: r.NewStyle().Foreground(WarningColor),
		info:    r.NewStyle().Foreground(InfoColor),
		success: r.NewStyle().Foreground(SuccessColor),
	}
}

func (p *Printer) line(style lipgloss.Style, text string) {
	if p.color {
		text = style.Render(text)
	}
	Writef(p.w, "%s\n", text)
}

// Error writes an error line.
func (p *Printer) Error(text string) { p.line(p.error, text) }

// Warning writes a warning line.
func (p *Printer) Warning(text string) { p.line(p.warning, text) }

// Info writes an informational line.
func (p *Printer) Info(text string) { p.line(p.info, text) }

// Success writes a success line.
func (p *Printer) Success(text string) { p.line(p.success, text) }

// Issue writes a finding in the color of its severity.
func (p *Printer) Issue(issue issues.Issue) {
	switch issue.Severity {
	case severity.SeverityError:
		p.Error(issue.String())
	case severity.SeverityWarning:
		p.Warning(issue.String())
	default:
		p.Info(issue.String())
	}
}
