package assembler

import (
	"fmt"
	"slices"

	"github.com/ezrec/mifasm/mips"
)

// ExpandPseudos returns a new line list with the pseudo-instructions nop,
// move and li replaced by real instructions. The first instruction of an
// expansion keeps the label, line number and text of the pseudo line.
//
// A pseudo-instruction with too few operands, or an li whose value cannot
// be parsed, is reported and passed through unexpanded.
func ExpandPseudos(diag *Diagnostics, lines []SourceLine) (expanded []SourceLine) {
	expanded = make([]SourceLine, 0, len(lines))
	for _, line := range lines {
		line.Operands = slices.Clone(line.Operands)
		expanded = append(expanded, expandPseudo(diag, line)...)
	}
	return
}

// expandPseudo expands a single line.
func expandPseudo(diag *Diagnostics, line SourceLine) []SourceLine {
	zero := mips.Register(0).String()

	switch line.Mnemonic {
	case "nop":
		// nop => sll $0, $0, 0
		line.Mnemonic = "sll"
		line.Operands = []string{zero, zero, "0"}
	case "move":
		// move $d, $s => add $d, $s, $0
		if len(line.Operands) < 2 {
			diag.Report(line.LineNo, ErrOperandCount{Mnemonic: line.Mnemonic, Want: 2, Got: len(line.Operands)})
			break
		}
		line.Mnemonic = "add"
		line.Operands = []string{line.Operands[0], line.Operands[1], zero}
	case "li":
		if len(line.Operands) < 2 {
			diag.Report(line.LineNo, ErrOperandCount{Mnemonic: line.Mnemonic, Want: 2, Got: len(line.Operands)})
			break
		}
		value, err := mips.ParseImmediate(line.Operands[1])
		if err != nil {
			diag.Report(line.LineNo, err)
			break
		}
		return expandLoadImmediate(line, uint32(value))
	}

	return []SourceLine{line}
}

// expandLoadImmediate expands `li $d, value`.
func expandLoadImmediate(line SourceLine, value uint32) []SourceLine {
	dst := line.Operands[0]
	zero := mips.Register(0).String()

	if value <= 0xffff {
		// li $d, imm16 => ori $d, $0, imm16
		line.Mnemonic = "ori"
		line.Operands = []string{dst, zero, line.Operands[1]}
		return []SourceLine{line}
	}

	// li $d, imm32 => lui $d, upper; ori $d, $d, lower
	upper := line
	upper.Mnemonic = "lui"
	upper.Operands = []string{dst, fmt.Sprintf("0x%x", value>>16)}

	lower := line
	lower.Label = ""
	lower.Mnemonic = "ori"
	lower.Operands = []string{dst, dst, fmt.Sprintf("0x%x", value&0xffff)}

	return []SourceLine{upper, lower}
}
