package assembler

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"
)

const (
	COMMENT_MARKER  = "#" // Starts a comment running to end of line.
	LABEL_DELIMITER = ":" // Ends a label definition.
)

// TokenizeFile tokenizes the file at path. If the file cannot be opened an
// ErrFile is reported and no lines are returned.
func TokenizeFile(diag *Diagnostics, path string) (lines []SourceLine) {
	inf, err := os.Open(path)
	if err != nil {
		diag.Report(0, &ErrFile{Path: path, Err: err})
		return
	}
	defer inf.Close()

	return Tokenize(diag, inf)
}

// Tokenize splits assembly text into SourceLines, skipping blank and
// comment-only lines.
func Tokenize(diag *Diagnostics, input io.Reader) (lines []SourceLine) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if diag.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, ok := tokenizeLine(text, lineno)
		if ok {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		diag.Report(lineno+1, err)
	}

	return
}

// tokenizeLine parses a single physical line.
func tokenizeLine(text string, lineno int) (line SourceLine, ok bool) {
	code, _, _ := strings.Cut(text, COMMENT_MARKER)
	code = strings.TrimSpace(code)
	if len(code) == 0 {
		return
	}

	line = SourceLine{
		LineNo: lineno,
		Text:   strings.TrimSpace(text),
	}
	ok = true

	if label, rest, found := strings.Cut(code, LABEL_DELIMITER); found {
		line.Label = strings.TrimSpace(label)
		code = strings.TrimSpace(rest)
		if len(code) == 0 {
			return
		}
	}

	split := strings.IndexAny(code, " \t")
	if split < 0 {
		line.Mnemonic = strings.ToLower(code)
		return
	}
	line.Mnemonic = strings.ToLower(code[:split])

	for _, operand := range splitOperands(strings.TrimSpace(code[split:])) {
		line.Operands = append(line.Operands, splitMemory(operand)...)
	}

	return
}

// splitOperands splits an operand list on commas outside parentheses.
func splitOperands(text string) (operands []string) {
	var current strings.Builder
	depth := 0
	for _, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if c == ',' && depth == 0 {
			operands = append(operands, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(c)
	}
	if current.Len() != 0 {
		operands = append(operands, strings.TrimSpace(current.String()))
	}
	return
}

// splitMemory splits `offset(base)` into its offset and base operands.
// Other operands pass through unchanged.
func splitMemory(operand string) []string {
	lparen := strings.IndexByte(operand, '(')
	rparen := strings.IndexByte(operand, ')')
	if lparen < 0 || rparen <= lparen {
		return []string{operand}
	}

	return []string{
		strings.TrimSpace(operand[:lparen]),
		strings.TrimSpace(operand[lparen+1 : rparen]),
	}
}
