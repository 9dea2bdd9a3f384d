package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/mifasm/assembler"
	"github.com/ezrec/mifasm/translate"
)

var f = translate.From

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// isTerminal returns true if w is a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// reporter writes diagnostics for a human reader.
type reporter struct {
	w     io.Writer
	color bool
}

func (rep *reporter) paint(color string, text string) string {
	if !rep.color {
		return text
	}
	return color + text + ansiReset
}

// report writes a single diagnostic.
func (rep *reporter) report(diag assembler.Diagnostic) {
	var kind string
	switch {
	case diag.Warning && diag.LineNo > 0:
		kind = rep.paint(ansiYellow, f("Warning on line %d", diag.LineNo))
	case diag.Warning:
		kind = rep.paint(ansiYellow, f("Warning"))
	case diag.LineNo > 0:
		kind = rep.paint(ansiRed, f("Error on line %d", diag.LineNo))
	default:
		kind = rep.paint(ansiRed, f("Error"))
	}

	fmt.Fprintf(rep.w, "%v: %v\n", kind, diag.Err)
}

// error writes an error that is not tied to a source line.
func (rep *reporter) error(err error) {
	rep.report(assembler.Diagnostic{Err: err})
}

// diagnostics writes every diagnostic in the order it was reported.
func (rep *reporter) diagnostics(diags *assembler.Diagnostics) {
	for diag := range diags.All() {
		rep.report(diag)
	}
}
