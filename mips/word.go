package mips

import (
	"fmt"
)

// Word is a single 32-bit instruction word.
type Word uint32

// Field is a bit-field of a Word, counted from the LSB.
type Field struct {
	Shift uint // Position of the field's LSB.
	Width uint // Width of the field in bits.
}

// Instruction word fields, MSB first.
var (
	FIELD_OPCODE = Field{Shift: 26, Width: 6}
	FIELD_RS     = Field{Shift: 21, Width: 5}
	FIELD_RT     = Field{Shift: 16, Width: 5}
	FIELD_RD     = Field{Shift: 11, Width: 5}
	FIELD_SHAMT  = Field{Shift: 6, Width: 5}
	FIELD_FUNCT  = Field{Shift: 0, Width: 6}
	FIELD_IMM    = Field{Shift: 0, Width: 16}
	FIELD_TARGET = Field{Shift: 0, Width: 26}
)

// Mask returns the unshifted mask of the field.
func (fd Field) Mask() uint32 {
	return uint32((uint64(1) << fd.Width) - 1)
}

// Get extracts the field from a word.
func (fd Field) Get(word Word) uint32 {
	return (uint32(word) >> fd.Shift) & fd.Mask()
}

// Set returns word with the field replaced by value, truncated to the
// field width.
func (fd Field) Set(word Word, value uint32) Word {
	mask := fd.Mask() << fd.Shift
	return Word((uint32(word) &^ mask) | ((value << fd.Shift) & mask))
}

// Hex returns the 8 digit uppercase hexadecimal form of the word.
func (word Word) Hex() string {
	return fmt.Sprintf("%08X", uint32(word))
}

// Opcode returns the 6-bit opcode of the word.
func (word Word) Opcode() uint8 {
	return uint8(FIELD_OPCODE.Get(word))
}

// Funct returns the 6-bit function code of the word.
func (word Word) Funct() uint8 {
	return uint8(FIELD_FUNCT.Get(word))
}

// Rs returns the rs register field.
func (word Word) Rs() Register {
	return Register(FIELD_RS.Get(word))
}

// Rt returns the rt register field.
func (word Word) Rt() Register {
	return Register(FIELD_RT.Get(word))
}

// Rd returns the rd register field.
func (word Word) Rd() Register {
	return Register(FIELD_RD.Get(word))
}

// Shamt returns the shift amount field.
func (word Word) Shamt() uint8 {
	return uint8(FIELD_SHAMT.Get(word))
}

// Imm returns the raw 16-bit immediate field.
func (word Word) Imm() uint16 {
	return uint16(FIELD_IMM.Get(word))
}

// Offset returns the immediate field sign extended.
func (word Word) Offset() int16 {
	return int16(word.Imm())
}

// Target returns the 26-bit jump target field.
func (word Word) Target() uint32 {
	return FIELD_TARGET.Get(word)
}
