package assembler

import (
	"strings"
)

// SourceLine is one non-blank, comment stripped line of assembly.
type SourceLine struct {
	LineNo   int      // 1-based line number in the source.
	Text     string   // Trimmed original text, for output annotation.
	Label    string   // Label defined on this line, if any.
	Mnemonic string   // Lowercase mnemonic, empty for label-only lines.
	Operands []string // Registers, immediates and label references.
}

// Instruction returns true if the line occupies an address.
func (line SourceLine) Instruction() bool {
	return len(line.Mnemonic) != 0
}

// String returns the line in normalized assembly syntax.
func (line SourceLine) String() string {
	var sb strings.Builder
	if len(line.Label) != 0 {
		sb.WriteString(line.Label)
		sb.WriteString(LABEL_DELIMITER)
		if line.Instruction() {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(line.Mnemonic)
	if len(line.Operands) != 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(line.Operands, ", "))
	}
	return sb.String()
}
