package assembler

import (
	"github.com/ezrec/mifasm/mips"
)

// ResolveAliases rewrites named register operands, such as `$sp`, to their
// numeric form in place. Other operands are left untouched.
func ResolveAliases(lines []SourceLine) {
	for n := range lines {
		operands := lines[n].Operands
		for i, operand := range operands {
			canonical, ok := mips.ResolveAlias(operand)
			if ok {
				operands[i] = canonical
			}
		}
	}
}
