package config

import (
	"errors"

	"github.com/ezrec/mifasm/translate"
)

var f = translate.From

var (
	ErrSetting = errors.New(f("invalid setting"))
)

// ErrType reports a setting bound to a value of the wrong type.
type ErrType struct {
	Name string // Setting name.
	Want string // Expected starlark type.
	Got  string // Actual starlark type.
}

func (err *ErrType) Error() string {
	return f("setting '%v' must be %v, not %v", err.Name, err.Want, err.Got)
}

func (err *ErrType) Is(target error) bool {
	return target == ErrSetting
}

// ErrRange reports a setting whose value is out of range.
type ErrRange struct {
	Name  string // Setting name.
	Value string // Offending value.
}

func (err *ErrRange) Error() string {
	return f("setting '%v' out of range: %v", err.Name, err.Value)
}

func (err *ErrRange) Is(target error) bool {
	return target == ErrSetting
}
