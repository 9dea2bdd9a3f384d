package assembler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mifasm/mips"
)

func TestResolveAliases(t *testing.T) {
	assert := assert.New(t)

	lines := []SourceLine{
		{LineNo: 1, Mnemonic: "add", Operands: []string{"$t0", "$ZERO", "$8"}},
		{LineNo: 2, Mnemonic: "lw", Operands: []string{"$RA", "4", "$sp"}},
		{LineNo: 3, Mnemonic: "beq", Operands: []string{"$s7", "$t9", "zero"}},
		{LineNo: 4, Label: "only"},
	}

	ResolveAliases(lines)

	assert.Equal([]string{"$8", "$0", "$8"}, lines[0].Operands)
	assert.Equal([]string{"$31", "4", "$29"}, lines[1].Operands)
	assert.Equal([]string{"$23", "$25", "zero"}, lines[2].Operands)
	assert.Nil(lines[3].Operands)
}

func TestExpandPseudos(t *testing.T) {
	assert := assert.New(t)

	lines := []SourceLine{
		{1, "start: nop", "start", "nop", nil},
		{2, "move $8, $9", "", "move", []string{"$8", "$9"}},
		{3, "li $8, 0x00001234", "", "li", []string{"$8", "0x00001234"}},
		{4, "big: li $9, 0x12345678", "big", "li", []string{"$9", "0x12345678"}},
		{5, "add $1, $2, $3", "", "add", []string{"$1", "$2", "$3"}},
		{6, "li $10, -1", "", "li", []string{"$10", "-1"}},
		{7, "li $11, 65535", "", "li", []string{"$11", "65535"}},
		{8, "li $12, 65536", "", "li", []string{"$12", "65536"}},
	}

	diag := &Diagnostics{}
	expanded := ExpandPseudos(diag, lines)
	assert.False(diag.HasErrors())

	expected := []SourceLine{
		{1, "start: nop", "start", "sll", []string{"$0", "$0", "0"}},
		{2, "move $8, $9", "", "add", []string{"$8", "$9", "$0"}},
		{3, "li $8, 0x00001234", "", "ori", []string{"$8", "$0", "0x00001234"}},
		{4, "big: li $9, 0x12345678", "big", "lui", []string{"$9", "0x1234"}},
		{4, "big: li $9, 0x12345678", "", "ori", []string{"$9", "$9", "0x5678"}},
		{5, "add $1, $2, $3", "", "add", []string{"$1", "$2", "$3"}},
		{6, "li $10, -1", "", "lui", []string{"$10", "0xffff"}},
		{6, "li $10, -1", "", "ori", []string{"$10", "$10", "0xffff"}},
		{7, "li $11, 65535", "", "ori", []string{"$11", "$0", "65535"}},
		{8, "li $12, 65536", "", "lui", []string{"$12", "0x1"}},
		{8, "li $12, 65536", "", "ori", []string{"$12", "$12", "0x0"}},
	}
	assert.Equal(expected, expanded)

	// The input is left alone.
	assert.Equal("nop", lines[0].Mnemonic)
	assert.Equal("li", lines[3].Mnemonic)
	assert.Equal([]string{"$9", "0x12345678"}, lines[3].Operands)
}

func TestExpandPseudosErrors(t *testing.T) {
	assert := assert.New(t)

	lines := []SourceLine{
		{1, "move $8", "", "move", []string{"$8"}},
		{2, "li $8", "", "li", []string{"$8"}},
		{3, "li $8, lots", "", "li", []string{"$8", "lots"}},
		{4, "nop", "", "nop", nil},
	}

	diag := &Diagnostics{}
	expanded := ExpandPseudos(diag, lines)
	assert.Equal(3, diag.Count())

	// Failed pseudos pass through unexpanded.
	assert.Equal(lines[:3], expanded[:3])
	assert.Equal("sll", expanded[3].Mnemonic)

	var reports []Diagnostic
	for report := range diag.Errors() {
		reports = append(reports, report)
	}
	assert.Len(reports, 3)

	var eo ErrOperandCount
	assert.True(errors.As(reports[0], &eo))
	assert.Equal(ErrOperandCount{Mnemonic: "move", Want: 2, Got: 1}, eo)
	assert.Equal(1, reports[0].LineNo)

	assert.True(errors.As(reports[1], &eo))
	assert.Equal(ErrOperandCount{Mnemonic: "li", Want: 2, Got: 1}, eo)

	assert.True(errors.Is(reports[2], mips.ErrImmediateInvalid))
	assert.Equal(3, reports[2].LineNo)
}

func TestBuildLabelTable(t *testing.T) {
	assert := assert.New(t)

	lines := []SourceLine{
		{LineNo: 1, Label: "a"},
		{LineNo: 2, Mnemonic: "add"},
		{LineNo: 3, Label: "b", Mnemonic: "add"},
		{LineNo: 4, Label: "c"},
		{LineNo: 5, Label: "a", Mnemonic: "sub"},
		{LineNo: 6, Mnemonic: "j"},
		{LineNo: 7, Label: "end"},
	}

	diag := &Diagnostics{}
	labels := BuildLabelTable(diag, lines)

	assert.Equal(LabelTable{"a": 0, "b": 1, "c": 2, "end": 4}, labels)

	assert.Equal(1, diag.Count())
	for report := range diag.Errors() {
		assert.Equal(5, report.LineNo)
		assert.True(errors.Is(report, ErrLabelDuplicate))
		assert.Equal("line 5: duplicate label 'a'", report.Error())
	}

	address, ok := labels.Lookup("c")
	assert.True(ok)
	assert.Equal(2, address)

	_, ok = labels.Lookup("A")
	assert.False(ok)
}
