// Package assembler translates MIPS-like assembly text into instruction words.
//
// Assembly runs as five forward stages over a slice of SourceLine:
//
//	Tokenize          text -> []SourceLine
//	ResolveAliases    $sp -> $29, in place
//	ExpandPseudos     nop, move, li -> real instructions
//	BuildLabelTable   label -> instruction address
//	Encode            []SourceLine -> []EncodedInstruction
//
// Every stage reports problems to a Diagnostics accumulator and keeps
// going, so a single run surfaces every defect in the source. The
// Assembler checks the accumulator after tokenizing, after building the
// label table and after encoding, and stops at the first checkpoint that
// finds errors.
//
// Each Assembler owns its Diagnostics; separate Assemblers may run
// concurrently.
package assembler
