package assembler

import (
	"errors"

	"github.com/ezrec/mifasm/translate"
)

var f = translate.From

var (
	ErrFileOpen           = errors.New(f("cannot open file"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelUndefined     = errors.New(f("label undefined"))
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrOperandMissing     = errors.New(f("operands missing"))
)

// ErrFile reports a source file that could not be opened.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("cannot open file '%v'", err.Path)
}

func (err *ErrFile) Unwrap() []error {
	return []error{ErrFileOpen, err.Err}
}

// ErrLabelDuplicated names a label defined more than once.
type ErrLabelDuplicated string

func (el ErrLabelDuplicated) Error() string {
	return f("duplicate label '%v'", string(el))
}

func (el ErrLabelDuplicated) Is(err error) bool {
	return err == ErrLabelDuplicate
}

// ErrLabelMissing names a branch or jump target that was never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("undefined label '%v'", string(el))
}

func (el ErrLabelMissing) Is(err error) bool {
	return err == ErrLabelUndefined
}

type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("unknown instruction '%v'", string(em))
}

func (em ErrMnemonic) Is(err error) bool {
	return err == ErrInstructionUnknown
}

// ErrOperandCount reports an instruction with too few operands.
type ErrOperandCount struct {
	Mnemonic string
	Want     int
	Got      int
}

func (err ErrOperandCount) Error() string {
	return f("'%v' requires %d operands, got %d", err.Mnemonic, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrOperandMissing
}

// ErrStage is returned when a pipeline checkpoint finds errors.
type ErrStage struct {
	Stage string
	Count int
}

func (err *ErrStage) Error() string {
	return f("%v failed with %d errors", err.Stage, err.Count)
}
