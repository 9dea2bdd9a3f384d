package mips

import (
	"errors"

	"github.com/ezrec/mifasm/translate"
)

var f = translate.From

var (
	// Operand errors
	ErrRegisterInvalid  = errors.New(f("invalid register"))
	ErrImmediateInvalid = errors.New(f("invalid immediate value"))
)

// ErrRegister is returned for an operand that is not `$` followed by a number.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("invalid register '%v'", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

// ErrRegisterRange is returned for a register number outside [0,31].
type ErrRegisterRange string

func (err ErrRegisterRange) Error() string {
	return f("register number out of range: %v", string(err))
}

func (err ErrRegisterRange) Is(target error) bool {
	return target == ErrRegisterInvalid
}

// ErrImmediate is returned for an operand that is neither a decimal nor a
// 0x-prefixed hexadecimal literal.
type ErrImmediate string

func (err ErrImmediate) Error() string {
	return f("invalid immediate value '%v'", string(err))
}

func (err ErrImmediate) Is(target error) bool {
	return target == ErrImmediateInvalid
}
