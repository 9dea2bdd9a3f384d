package mips

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

const (
	REGISTER_SIGIL = "$" // Prefix of every register operand.
	REGISTER_COUNT = 32  // General purpose registers.
)

// Register is a general purpose register number.
type Register uint8

// String returns the canonical numeric form, e.g. `$29`.
func (reg Register) String() string {
	return fmt.Sprintf("%v%d", REGISTER_SIGIL, uint8(reg))
}

// aliasMap maps the conventional register names to register numbers.
var aliasMap = map[string]Register{
	"$zero": 0,
	"$at":   1,
	"$v0":   2, "$v1": 3,
	"$a0": 4, "$a1": 5, "$a2": 6, "$a3": 7,
	"$t0": 8, "$t1": 9, "$t2": 10, "$t3": 11,
	"$t4": 12, "$t5": 13, "$t6": 14, "$t7": 15,
	"$s0": 16, "$s1": 17, "$s2": 18, "$s3": 19,
	"$s4": 20, "$s5": 21, "$s6": 22, "$s7": 23,
	"$t8": 24, "$t9": 25,
	"$k0": 26, "$k1": 27,
	"$gp": 28,
	"$sp": 29,
	"$fp": 30,
	"$ra": 31,
}

// ResolveAlias returns the canonical numeric form of a register alias.
// Matching is case-insensitive; ok is false when operand is not an alias.
func ResolveAlias(operand string) (canonical string, ok bool) {
	reg, ok := aliasMap[strings.ToLower(operand)]
	if !ok {
		return
	}

	canonical = reg.String()
	return
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]Register {
	return maps.Clone(aliasMap)
}

// ParseRegister parses a numeric register operand such as `$8`.
func ParseRegister(operand string) (reg Register, err error) {
	if len(operand) < 2 || !strings.HasPrefix(operand, REGISTER_SIGIL) {
		err = ErrRegister(operand)
		return
	}

	n, perr := strconv.Atoi(operand[len(REGISTER_SIGIL):])
	if perr != nil {
		err = ErrRegister(operand)
		return
	}

	if n < 0 || n >= REGISTER_COUNT {
		err = ErrRegisterRange(operand)
		return
	}

	reg = Register(n)
	return
}

// ParseImmediate parses a decimal or 0x-prefixed hexadecimal literal.
// Hexadecimal literals cover the full 32 bits and are returned as their
// two's complement value.
func ParseImmediate(operand string) (value int32, err error) {
	if len(operand) > 2 && operand[0] == '0' && (operand[1] == 'x' || operand[1] == 'X') {
		var u64 uint64
		u64, err = strconv.ParseUint(operand[2:], 16, 32)
		if err != nil {
			err = ErrImmediate(operand)
			return
		}
		value = int32(uint32(u64))
		return
	}

	i64, err := strconv.ParseInt(operand, 10, 32)
	if err != nil {
		err = ErrImmediate(operand)
		return
	}

	value = int32(i64)
	return
}
