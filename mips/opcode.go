// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mips

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Format is the operand layout of an instruction.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R_TRIPLE = Format(0) // register-triple
	FORMAT_R_SHIFT  = Format(1) // register-shift
	FORMAT_R_SOURCE = Format(2) // register-only
	FORMAT_I_TRIPLE = Format(3) // immediate-triple
	FORMAT_I_PAIR   = Format(4) // immediate-pair
	FORMAT_I_BRANCH = Format(5) // branch-triple
	FORMAT_I_MEMORY = Format(6) // load-store-offset
	FORMAT_J_TARGET = Format(7) // jump-target
)

// Operands returns the number of source operands the format requires.
// Memory operands count as two: `offset($base)` is split by the tokenizer.
func (format Format) Operands() int {
	switch format {
	case FORMAT_R_TRIPLE, FORMAT_R_SHIFT, FORMAT_I_TRIPLE, FORMAT_I_BRANCH, FORMAT_I_MEMORY:
		return 3
	case FORMAT_I_PAIR:
		return 2
	case FORMAT_R_SOURCE, FORMAT_J_TARGET:
		return 1
	}
	return 0
}

// Register returns true for formats that carry a function code.
func (format Format) Register() bool {
	return format <= FORMAT_R_SOURCE
}

// Labelled returns true for formats whose last operand is a label.
func (format Format) Labelled() bool {
	return format == FORMAT_I_BRANCH || format == FORMAT_J_TARGET
}

// Instruction is the static definition of a real mnemonic.
type Instruction struct {
	Mnemonic string
	Format   Format
	Opcode   uint8 // 6-bit opcode.
	Funct    uint8 // 6-bit function code, register formats only.
}

// instructionMap maps mnemonics to instruction definitions.
var instructionMap = map[string]Instruction{
	"add":   {"add", FORMAT_R_TRIPLE, 0b000000, 0b100000},
	"addu":  {"addu", FORMAT_R_TRIPLE, 0b000000, 0b100001},
	"addi":  {"addi", FORMAT_I_TRIPLE, 0b001000, 0},
	"addiu": {"addiu", FORMAT_I_TRIPLE, 0b001001, 0},
	"and":   {"and", FORMAT_R_TRIPLE, 0b000000, 0b100100},
	"andi":  {"andi", FORMAT_I_TRIPLE, 0b001100, 0},
	"beq":   {"beq", FORMAT_I_BRANCH, 0b000100, 0},
	"bne":   {"bne", FORMAT_I_BRANCH, 0b000101, 0},
	"j":     {"j", FORMAT_J_TARGET, 0b000010, 0},
	"jal":   {"jal", FORMAT_J_TARGET, 0b000011, 0},
	"jr":    {"jr", FORMAT_R_SOURCE, 0b000000, 0b001000},
	"lbu":   {"lbu", FORMAT_I_MEMORY, 0b100100, 0},
	"lhu":   {"lhu", FORMAT_I_MEMORY, 0b100101, 0},
	"lui":   {"lui", FORMAT_I_PAIR, 0b001111, 0},
	"lw":    {"lw", FORMAT_I_MEMORY, 0b100011, 0},
	"nor":   {"nor", FORMAT_R_TRIPLE, 0b000000, 0b100111},
	"or":    {"or", FORMAT_R_TRIPLE, 0b000000, 0b100101},
	"ori":   {"ori", FORMAT_I_TRIPLE, 0b001101, 0},
	"sb":    {"sb", FORMAT_I_MEMORY, 0b101000, 0},
	"sh":    {"sh", FORMAT_I_MEMORY, 0b101001, 0},
	"sll":   {"sll", FORMAT_R_SHIFT, 0b000000, 0b000000},
	"slt":   {"slt", FORMAT_R_TRIPLE, 0b000000, 0b101010},
	"slti":  {"slti", FORMAT_I_TRIPLE, 0b001010, 0},
	"sltiu": {"sltiu", FORMAT_I_TRIPLE, 0b001011, 0},
	"sltu":  {"sltu", FORMAT_R_TRIPLE, 0b000000, 0b101011},
	"srl":   {"srl", FORMAT_R_SHIFT, 0b000000, 0b000010},
	"sub":   {"sub", FORMAT_R_TRIPLE, 0b000000, 0b100010},
	"subu":  {"subu", FORMAT_R_TRIPLE, 0b000000, 0b100011},
	"sw":    {"sw", FORMAT_I_MEMORY, 0b101011, 0},
}

// Lookup returns the instruction for a lowercase mnemonic.
func Lookup(mnemonic string) (inst Instruction, ok bool) {
	inst, ok = instructionMap[mnemonic]
	return
}

// Instructions iterates over all instructions, ordered by mnemonic.
func Instructions() iter.Seq[Instruction] {
	return func(yield func(inst Instruction) bool) {
		for _, mnemonic := range slices.Sorted(maps.Keys(instructionMap)) {
			if !yield(instructionMap[mnemonic]) {
				return
			}
		}
	}
}

// Fields holds the operand values of one instruction word.
// Fields not used by a format are ignored when encoding and zero when
// decoding.
type Fields struct {
	Rs     Register
	Rt     Register
	Rd     Register
	Shamt  uint8
	Imm    uint16 // Immediate or branch offset, two's complement.
	Target uint32 // 26-bit jump target.
}

// Encode packs fields into an instruction word according to the format.
func (inst Instruction) Encode(fields Fields) (word Word) {
	word = FIELD_OPCODE.Set(word, uint32(inst.Opcode))

	switch inst.Format {
	case FORMAT_R_TRIPLE:
		word = FIELD_RS.Set(word, uint32(fields.Rs))
		word = FIELD_RT.Set(word, uint32(fields.Rt))
		word = FIELD_RD.Set(word, uint32(fields.Rd))
	case FORMAT_R_SHIFT:
		word = FIELD_RT.Set(word, uint32(fields.Rt))
		word = FIELD_RD.Set(word, uint32(fields.Rd))
		word = FIELD_SHAMT.Set(word, uint32(fields.Shamt))
	case FORMAT_R_SOURCE:
		word = FIELD_RS.Set(word, uint32(fields.Rs))
	case FORMAT_I_TRIPLE, FORMAT_I_BRANCH, FORMAT_I_MEMORY:
		word = FIELD_RS.Set(word, uint32(fields.Rs))
		word = FIELD_RT.Set(word, uint32(fields.Rt))
		word = FIELD_IMM.Set(word, uint32(fields.Imm))
	case FORMAT_I_PAIR:
		word = FIELD_RT.Set(word, uint32(fields.Rt))
		word = FIELD_IMM.Set(word, uint32(fields.Imm))
	case FORMAT_J_TARGET:
		word = FIELD_TARGET.Set(word, fields.Target)
	}

	if inst.Format.Register() {
		word = FIELD_FUNCT.Set(word, uint32(inst.Funct))
	}

	return
}

// Decode unpacks the fields the format uses from an instruction word.
func (inst Instruction) Decode(word Word) (fields Fields) {
	switch inst.Format {
	case FORMAT_R_TRIPLE:
		fields.Rs, fields.Rt, fields.Rd = word.Rs(), word.Rt(), word.Rd()
	case FORMAT_R_SHIFT:
		fields.Rt, fields.Rd, fields.Shamt = word.Rt(), word.Rd(), word.Shamt()
	case FORMAT_R_SOURCE:
		fields.Rs = word.Rs()
	case FORMAT_I_TRIPLE, FORMAT_I_BRANCH, FORMAT_I_MEMORY:
		fields.Rs, fields.Rt, fields.Imm = word.Rs(), word.Rt(), word.Imm()
	case FORMAT_I_PAIR:
		fields.Rt, fields.Imm = word.Rt(), word.Imm()
	case FORMAT_J_TARGET:
		fields.Target = word.Target()
	}

	return
}

// Decode finds the instruction an instruction word was encoded from.
func Decode(word Word) (inst Instruction, ok bool) {
	for candidate := range Instructions() {
		if candidate.Opcode != word.Opcode() {
			continue
		}
		if candidate.Format.Register() && candidate.Funct != word.Funct() {
			continue
		}
		return candidate, true
	}

	return
}

// unsignedImm lists the instructions whose immediate is a bit pattern.
var unsignedImm = map[string]bool{
	"andi": true,
	"ori":  true,
	"lui":  true,
}

// String returns the assembly language representation of the word.
func (word Word) String() (out string) {
	inst, ok := Decode(word)
	if !ok {
		return fmt.Sprintf(".word 0x%08x", uint32(word))
	}

	fields := inst.Decode(word)

	imm := fmt.Sprintf("%d", int16(fields.Imm))
	if unsignedImm[inst.Mnemonic] {
		imm = fmt.Sprintf("0x%x", fields.Imm)
	}

	switch inst.Format {
	case FORMAT_R_TRIPLE:
		out = fmt.Sprintf("%v %v, %v, %v", inst.Mnemonic, fields.Rd, fields.Rs, fields.Rt)
	case FORMAT_R_SHIFT:
		out = fmt.Sprintf("%v %v, %v, %d", inst.Mnemonic, fields.Rd, fields.Rt, fields.Shamt)
	case FORMAT_R_SOURCE:
		out = fmt.Sprintf("%v %v", inst.Mnemonic, fields.Rs)
	case FORMAT_I_TRIPLE:
		out = fmt.Sprintf("%v %v, %v, %v", inst.Mnemonic, fields.Rt, fields.Rs, imm)
	case FORMAT_I_PAIR:
		out = fmt.Sprintf("%v %v, %v", inst.Mnemonic, fields.Rt, imm)
	case FORMAT_I_BRANCH:
		out = fmt.Sprintf("%v %v, %v, %v", inst.Mnemonic, fields.Rs, fields.Rt, imm)
	case FORMAT_I_MEMORY:
		out = fmt.Sprintf("%v %v, %v(%v)", inst.Mnemonic, fields.Rt, imm, fields.Rs)
	case FORMAT_J_TARGET:
		out = fmt.Sprintf("%v %d", inst.Mnemonic, fields.Target)
	}

	return
}
