// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"io"
	"log"
)

// Pipeline checkpoints.
const (
	STAGE_TOKENIZE = "tokenize"
	STAGE_LABEL    = "label"
	STAGE_ENCODE   = "encode"
)

// Assembler runs the assembly pipeline and keeps the state of the last run.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Diagnostics Diagnostics  // Errors and warnings of the last run.
	Lines       []SourceLine // Lines after pseudo-instruction expansion.
	Label       LabelTable   // Map of labels to instruction addresses.
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.reset()
	return asm.assemble(Tokenize(&asm.Diagnostics, input))
}

// ParseFile assembles the file at path into a Program.
func (asm *Assembler) ParseFile(path string) (prog *Program, err error) {
	asm.reset()
	return asm.assemble(TokenizeFile(&asm.Diagnostics, path))
}

// reset clears the state of any previous run.
func (asm *Assembler) reset() {
	asm.Diagnostics.Reset()
	asm.Diagnostics.Verbose = asm.Verbose
	asm.Lines = nil
	asm.Label = nil
}

// checkpoint returns an ErrStage if errors have been reported.
func (asm *Assembler) checkpoint(stage string) (err error) {
	if asm.Verbose {
		log.Printf("%v: %d errors", stage, asm.Diagnostics.Count())
	}

	if asm.Diagnostics.HasErrors() {
		err = &ErrStage{Stage: stage, Count: asm.Diagnostics.Count()}
	}

	return
}

// assemble runs the stages after tokenizing.
func (asm *Assembler) assemble(lines []SourceLine) (prog *Program, err error) {
	diag := &asm.Diagnostics

	err = asm.checkpoint(STAGE_TOKENIZE)
	if err != nil {
		return
	}

	ResolveAliases(lines)
	asm.Lines = ExpandPseudos(diag, lines)

	asm.Label = BuildLabelTable(diag, asm.Lines)
	err = asm.checkpoint(STAGE_LABEL)
	if err != nil {
		return
	}

	encoded := Encode(diag, asm.Lines, asm.Label)
	err = asm.checkpoint(STAGE_ENCODE)
	if err != nil {
		return
	}

	prog = &Program{
		Instructions: encoded,
	}

	return
}
