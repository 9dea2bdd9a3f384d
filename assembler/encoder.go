package assembler

import (
	"github.com/ezrec/mifasm/mips"
)

// Encode translates each instruction line into an instruction word.
//
// Lines with an unknown mnemonic or too few operands are reported and
// produce no output, though they still consume their address. Invalid
// registers and immediates are reported and encoded as zero. A branch or
// jump to an undefined label is reported and encoded as an all-zero word.
func Encode(diag *Diagnostics, lines []SourceLine, labels LabelTable) (encoded []EncodedInstruction) {
	address := 0
	for _, line := range lines {
		if !line.Instruction() {
			continue
		}

		inst, ok := mips.Lookup(line.Mnemonic)
		if !ok {
			diag.Report(line.LineNo, ErrMnemonic(line.Mnemonic))
			address++
			continue
		}

		want := inst.Format.Operands()
		if len(line.Operands) < want {
			diag.Report(line.LineNo, ErrOperandCount{Mnemonic: line.Mnemonic, Want: want, Got: len(line.Operands)})
			address++
			continue
		}

		enc := &encoder{diag: diag, line: line, labels: labels, address: address}

		encoded = append(encoded, EncodedInstruction{
			Address: address,
			LineNo:  line.LineNo,
			Word:    enc.encode(inst),
			Text:    line.Text,
		})
		address++
	}

	return
}

// branchOffset computes the encoded offset from address to target.
// Forward branches encode (target - address) - 1, backward branches
// encode -(address - target).
func branchOffset(address, target int) int32 {
	if target > address {
		return int32(target-address) - 1
	}
	return -int32(address - target)
}

// encoder holds the state for encoding a single line.
type encoder struct {
	diag    *Diagnostics
	line    SourceLine
	labels  LabelTable
	address int
}

// register parses operand n as a register, reporting errors as register 0.
func (enc *encoder) register(n int) mips.Register {
	reg, err := mips.ParseRegister(enc.line.Operands[n])
	if err != nil {
		enc.diag.Report(enc.line.LineNo, err)
	}
	return reg
}

// immediate parses operand n as an immediate, reporting errors as 0.
func (enc *encoder) immediate(n int) int32 {
	value, err := mips.ParseImmediate(enc.line.Operands[n])
	if err != nil {
		enc.diag.Report(enc.line.LineNo, err)
	}
	return value
}

// label resolves operand n as a label address.
func (enc *encoder) label(n int) (address int, ok bool) {
	name := enc.line.Operands[n]
	address, ok = enc.labels.Lookup(name)
	if !ok {
		enc.diag.Report(enc.line.LineNo, ErrLabelMissing(name))
	}
	return
}

// encode builds the instruction word. Operands are evaluated in source
// order so diagnostics come out in the order they appear on the line.
func (enc *encoder) encode(inst mips.Instruction) (word mips.Word) {
	var fields mips.Fields

	switch inst.Format {
	case mips.FORMAT_R_TRIPLE:
		// add $d, $s, $t
		fields.Rd = enc.register(0)
		fields.Rs = enc.register(1)
		fields.Rt = enc.register(2)
	case mips.FORMAT_R_SHIFT:
		// sll $d, $t, shamt
		fields.Rd = enc.register(0)
		fields.Rt = enc.register(1)
		fields.Shamt = uint8(enc.immediate(2))
	case mips.FORMAT_R_SOURCE:
		// jr $s
		fields.Rs = enc.register(0)
	case mips.FORMAT_I_TRIPLE:
		// addi $t, $s, imm
		fields.Rt = enc.register(0)
		fields.Rs = enc.register(1)
		fields.Imm = uint16(enc.immediate(2))
	case mips.FORMAT_I_PAIR:
		// lui $t, imm
		fields.Rt = enc.register(0)
		fields.Imm = uint16(enc.immediate(1))
	case mips.FORMAT_I_BRANCH:
		// beq $s, $t, label
		fields.Rs = enc.register(0)
		fields.Rt = enc.register(1)
		target, ok := enc.label(2)
		if !ok {
			return
		}
		fields.Imm = uint16(branchOffset(enc.address, target))
	case mips.FORMAT_I_MEMORY:
		// lw $t, offset($s), split by the tokenizer into $t, offset, $s
		fields.Rt = enc.register(0)
		fields.Imm = uint16(enc.immediate(1))
		fields.Rs = enc.register(2)
	case mips.FORMAT_J_TARGET:
		// j label
		target, ok := enc.label(0)
		if !ok {
			return
		}
		fields.Target = uint32(target)
	}

	return inst.Encode(fields)
}
