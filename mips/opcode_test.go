package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		format   Format
		name     string
		operands int
		register bool
		labelled bool
	}){
		{FORMAT_R_TRIPLE, "register-triple", 3, true, false},
		{FORMAT_R_SHIFT, "register-shift", 3, true, false},
		{FORMAT_R_SOURCE, "register-only", 1, true, false},
		{FORMAT_I_TRIPLE, "immediate-triple", 3, false, false},
		{FORMAT_I_PAIR, "immediate-pair", 2, false, false},
		{FORMAT_I_BRANCH, "branch-triple", 3, false, true},
		{FORMAT_I_MEMORY, "load-store-offset", 3, false, false},
		{FORMAT_J_TARGET, "jump-target", 1, false, true},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.format.String())
		assert.Equal(entry.operands, entry.format.Operands(), entry.name)
		assert.Equal(entry.register, entry.format.Register(), entry.name)
		assert.Equal(entry.labelled, entry.format.Labelled(), entry.name)
	}

	assert.Equal("Format(9)", Format(9).String())
	assert.Equal(0, Format(9).Operands())
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	inst, ok := Lookup("sw")
	assert.True(ok)
	assert.Equal(Instruction{"sw", FORMAT_I_MEMORY, 0b101011, 0}, inst)

	_, ok = Lookup("ADD")
	assert.False(ok)
	_, ok = Lookup("nop")
	assert.False(ok)

	var mnemonics []string
	for inst := range Instructions() {
		mnemonics = append(mnemonics, inst.Mnemonic)
	}
	assert.Len(mnemonics, 29)
	assert.Equal("add", mnemonics[0])
	assert.Equal("sw", mnemonics[len(mnemonics)-1])
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		fields Fields
		word   Word
	}){
		{"add $3, $1, $2", Fields{Rd: 3, Rs: 1, Rt: 2}, 0x00221820},
		{"sub $8, $9, $10", Fields{Rd: 8, Rs: 9, Rt: 10}, 0x012a4022},
		{"sll $0, $0, 0", Fields{}, 0x00000000},
		{"sll $2, $3, 4", Fields{Rd: 2, Rt: 3, Shamt: 4}, 0x00031100},
		{"srl $2, $3, 31", Fields{Rd: 2, Rt: 3, Shamt: 31}, 0x000317c2},
		{"jr $31", Fields{Rs: 31}, 0x03e00008},
		{"addi $8, $0, -1", Fields{Rt: 8, Rs: 0, Imm: 0xffff}, 0x2008ffff},
		{"ori $8, $0, 0x1234", Fields{Rt: 8, Imm: 0x1234}, 0x34081234},
		{"lui $8, 0x1234", Fields{Rt: 8, Imm: 0x1234}, 0x3c081234},
		{"beq $1, $2, 2", Fields{Rs: 1, Rt: 2, Imm: 2}, 0x10220002},
		{"bne $1, $2, -3", Fields{Rs: 1, Rt: 2, Imm: 0xfffd}, 0x1422fffd},
		{"lw $8, 4($29)", Fields{Rt: 8, Rs: 29, Imm: 4}, 0x8fa80004},
		{"sw $31, 0($29)", Fields{Rt: 31, Rs: 29}, 0xafbf0000},
		{"j 5", Fields{Target: 5}, 0x08000005},
		{"jal 1", Fields{Target: 1}, 0x0c000001},
	}

	for _, entry := range table {
		var mnemonic string
		for n, c := range entry.text {
			if c == ' ' {
				mnemonic = entry.text[:n]
				break
			}
		}
		inst, ok := Lookup(mnemonic)
		assert.True(ok, entry.text)
		word := inst.Encode(entry.fields)
		assert.Equal(entry.word.Hex(), word.Hex(), entry.text)
		assert.Equal(entry.text, word.String())
	}
}

func TestEncodeIgnoresUnusedFields(t *testing.T) {
	assert := assert.New(t)

	all := Fields{Rs: 31, Rt: 31, Rd: 31, Shamt: 31, Imm: 0xffff, Target: 0x3ffffff}

	table := [](struct {
		mnemonic string
		word     Word
	}){
		{"add", 0x03fff820}, // shamt stays zero
		{"sll", 0x001fffc0}, // rs stays zero
		{"jr", 0x03e00008},  // rt, rd and shamt stay zero
		{"lui", 0x3c1fffff}, // rs stays zero
		{"j", 0x0bffffff},
	}

	for _, entry := range table {
		inst, ok := Lookup(entry.mnemonic)
		assert.True(ok)
		assert.Equal(entry.word.Hex(), inst.Encode(all).Hex(), entry.mnemonic)
	}
}

// fieldsFor returns operands using only the fields of the format.
func fieldsFor(format Format, seed uint32) (fields Fields) {
	rs := Register(seed % 32)
	rt := Register((seed / 32) % 32)
	rd := Register((seed / 1024) % 32)
	switch format {
	case FORMAT_R_TRIPLE:
		fields = Fields{Rs: rs, Rt: rt, Rd: rd}
	case FORMAT_R_SHIFT:
		fields = Fields{Rt: rt, Rd: rd, Shamt: uint8(seed>>15) & 0x1f}
	case FORMAT_R_SOURCE:
		fields = Fields{Rs: rs}
	case FORMAT_I_TRIPLE, FORMAT_I_BRANCH, FORMAT_I_MEMORY:
		fields = Fields{Rs: rs, Rt: rt, Imm: uint16(seed >> 7)}
	case FORMAT_I_PAIR:
		fields = Fields{Rt: rt, Imm: uint16(seed >> 9)}
	case FORMAT_J_TARGET:
		fields = Fields{Target: seed & 0x3ffffff}
	}
	return
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	seeds := []uint32{0, 1, 0x1f, 0x3ff, 0x7fff, 0xa5a5a5a5, 0x5a5a5a5a, 0xffffffff}

	for inst := range Instructions() {
		for _, seed := range seeds {
			fields := fieldsFor(inst.Format, seed)
			word := inst.Encode(fields)

			assert.Equal(fields, inst.Decode(word), inst.Mnemonic)

			decoded, ok := Decode(word)
			assert.True(ok, inst.Mnemonic)
			assert.Equal(inst, decoded, inst.Mnemonic)
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("add", uint32(0))
	f.Add("lw", uint32(0xffffffff))
	f.Add("j", uint32(0x12345678))

	f.Fuzz(func(t *testing.T, mnemonic string, seed uint32) {
		inst, ok := Lookup(mnemonic)
		if !ok {
			return
		}
		fields := fieldsFor(inst.Format, seed)
		word := inst.Encode(fields)
		assert.Equal(t, fields, inst.Decode(word))
	})
}

func TestWordString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("lw $8, -4($29)", Word(0x8fa8fffc).String())
	assert.Equal("andi $2, $2, 0xff", Word(0x304200ff).String())
	assert.Equal("slti $2, $3, -1", Word(0x2862ffff).String())
	assert.Equal(".word 0xfc000000", Word(0xfc000000).String())
	assert.Equal(".word 0x0000003f", Word(0x0000003f).String())
}
