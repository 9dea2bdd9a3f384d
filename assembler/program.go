package assembler

import (
	"fmt"
	"io"
	"iter"

	"github.com/ezrec/mifasm/mips"
)

// EncodedInstruction is an assembled instruction word and its source.
type EncodedInstruction struct {
	Address int       // Instruction address.
	LineNo  int       // Source line number.
	Word    mips.Word // Instruction word.
	Text    string    // Original source text.
}

// Hex returns the 8 digit uppercase hexadecimal encoding.
func (ei EncodedInstruction) Hex() string {
	return ei.Word.Hex()
}

// Program is the output of a successful assembly.
type Program struct {
	Instructions []EncodedInstruction
}

// Words iterates over the instruction words by address.
func (prog *Program) Words() iter.Seq2[int, mips.Word] {
	return func(yield func(address int, word mips.Word) bool) {
		for _, ei := range prog.Instructions {
			if !yield(ei.Address, ei.Word) {
				return
			}
		}
	}
}

// Binary returns the instruction words in address order.
func (prog *Program) Binary() (bins []uint32) {
	for _, word := range prog.Words() {
		bins = append(bins, uint32(word))
	}

	return
}

// Debug returns the instruction at address, or nil.
func (prog *Program) Debug(address int) *EncodedInstruction {
	for n := range prog.Instructions {
		if prog.Instructions[n].Address == address {
			return &prog.Instructions[n]
		}
	}

	return nil
}

// Listing writes one line per instruction: address, word, disassembly and
// source text.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, ei := range prog.Instructions {
		_, err = fmt.Fprintf(w, "%03x  %v  %-24v %v\n", ei.Address, ei.Hex(), ei.Word.String(), ei.Text)
		if err != nil {
			return
		}
	}

	return
}
