package assembler

import (
	"errors"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/mifasm/internal"
)

// Diagnostic is an error or warning tied to a source line.
type Diagnostic struct {
	LineNo  int   // Source line, 0 when the problem has no line.
	Warning bool  // Warnings do not fail the assembly.
	Err     error // Underlying error.
}

func (diag Diagnostic) Error() string {
	if diag.LineNo > 0 {
		return f("line %d: %v", diag.LineNo, diag.Err)
	}
	return diag.Err.Error()
}

func (diag Diagnostic) Unwrap() error {
	return diag.Err
}

// Diagnostics accumulates the problems found during one assembly run.
// The zero value is ready to use.
type Diagnostics struct {
	Verbose bool // If set, logs each diagnostic as it is reported.

	reports []Diagnostic
	errors  int
}

func (ds *Diagnostics) add(diag Diagnostic) {
	if ds.Verbose {
		log.Printf("diagnostic: %v", diag)
	}
	ds.reports = append(ds.reports, diag)
	if !diag.Warning {
		ds.errors++
	}
}

// Report records an error. Pass lineno 0 for errors without a line.
func (ds *Diagnostics) Report(lineno int, err error) {
	ds.add(Diagnostic{LineNo: lineno, Err: err})
}

// Warn records a warning, which is not counted as an error.
func (ds *Diagnostics) Warn(lineno int, err error) {
	ds.add(Diagnostic{LineNo: lineno, Warning: true, Err: err})
}

// HasErrors returns true if any error has been reported.
func (ds *Diagnostics) HasErrors() bool {
	return ds.errors > 0
}

// Count returns the number of errors reported.
func (ds *Diagnostics) Count() int {
	return ds.errors
}

// Reset discards all diagnostics.
func (ds *Diagnostics) Reset() {
	ds.reports = ds.reports[:0]
	ds.errors = 0
}

// All iterates over errors and warnings in the order they were reported.
func (ds *Diagnostics) All() iter.Seq[Diagnostic] {
	return slices.Values(ds.reports)
}

// Errors iterates over the reported errors.
func (ds *Diagnostics) Errors() iter.Seq[Diagnostic] {
	return internal.IterSeqFilter(ds.All(), func(diag Diagnostic) bool { return !diag.Warning })
}

// Warnings iterates over the reported warnings.
func (ds *Diagnostics) Warnings() iter.Seq[Diagnostic] {
	return internal.IterSeqFilter(ds.All(), func(diag Diagnostic) bool { return diag.Warning })
}

// Err joins all reported errors, or returns nil if there are none.
func (ds *Diagnostics) Err() error {
	var errs []error
	for diag := range ds.Errors() {
		errs = append(errs, diag)
	}
	return errors.Join(errs...)
}
