package tokenizer

import (
	"fmt"
	"strings"
)

// Kind identifies the pattern that produced a token: its index in the table
// the Tokenizer was compiled from.
type Kind int

// Token is a classified slice of the input.
type Token struct {
	Kind   Kind
	Lexeme string
	Offset int
}

// End is the offset just past the lexeme.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}

// Position is a 1-based line and column.
type Position struct {
	Line, Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf converts a byte offset in text into a line and column. Columns
// count bytes.
func PositionOf(text string, offset int) Position {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return Position{Line: line, Column: col}
}
