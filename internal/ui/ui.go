package ui

import (
	"io"

	"github.com/fatih/color"

	"github.com/sokinpui/nobom/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	ErrorColor   = color.New(color.FgRed)
)

var (
	// Out receives the per-file status lines.
	Out io.Writer = color.Output
	// Err receives diagnostics that are not part of the per-file report.
	Err io.Writer = color.Error
)

// DisableColor turns off ANSI sequences for every writer in this package.
// Colors are already off when stdout is not a terminal.
func DisableColor() {
	color.NoColor = true
}

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(Err, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(Err, format+"\n", a...)
}

// Report prints the status line for one file to Out.
func Report(r model.Result) {
	c := InfoColor
	switch r.Status {
	case model.Removed:
		c = SuccessColor
	case model.Failed:
		c = ErrorColor
	}
	c.Fprintln(Out, r.Message())
}
