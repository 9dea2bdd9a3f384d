package assembler

// LabelTable maps label names to instruction addresses.
type LabelTable map[string]int

// Lookup returns the address bound to label.
func (labels LabelTable) Lookup(label string) (address int, ok bool) {
	address, ok = labels[label]
	return
}

// BuildLabelTable assigns sequential addresses, starting at 0, to the
// instruction lines and binds each label to the address of the
// instruction it precedes. A label defined twice is reported and keeps
// its first binding.
func BuildLabelTable(diag *Diagnostics, lines []SourceLine) (labels LabelTable) {
	labels = make(LabelTable, 16)

	address := 0
	for _, line := range lines {
		if len(line.Label) != 0 {
			if _, ok := labels[line.Label]; ok {
				diag.Report(line.LineNo, ErrLabelDuplicated(line.Label))
			} else {
				labels[line.Label] = address
			}
		}
		if line.Instruction() {
			address++
		}
	}

	return
}
