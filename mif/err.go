package mif

import (
	"errors"

	"github.com/ezrec/mifasm/translate"
)

var f = translate.From

var (
	ErrOutputCreate = errors.New(f("cannot create output file"))
)

// ErrOutput reports an output file that could not be created or written.
type ErrOutput struct {
	Path string
	Err  error
}

func (err *ErrOutput) Error() string {
	return f("cannot open output file '%v'", err.Path)
}

func (err *ErrOutput) Unwrap() []error {
	return []error{ErrOutputCreate, err.Err}
}
