// Package mips describes the instruction set targeted by the assembler.
//
// Every real mnemonic maps to exactly one Instruction: a Format (operand
// layout), a 6-bit opcode and, for register formats, a 6-bit function
// code. Instruction words are 32 bits wide and are built and taken apart
// with the Field accessors, so each bit-field can be checked in
// isolation.
//
// The package also owns the register syntax: `$` followed by a number in
// [0,31], plus the conventional register aliases ($zero, $sp, $ra, ...).
package mips
