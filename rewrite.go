package plantgen

import (
	"strings"
	"unicode/utf8"
)

// Rewriter produces the next generation of a string.
type Rewriter interface {
	Rewrite(input string) string
}

// Rewrite applies g to every symbol of input once, in parallel: each position
// is replaced based on input alone, never on output already written.
func Rewrite(input string, g Grammar) string {
	var sb strings.Builder
	sb.Grow(rewrittenSize(input, g))
	for i := 0; i < len(input); {
		r, width := utf8.DecodeRuneInString(input[i:])
		if successor, ok := g.rules[Symbol(r)]; ok && !isInvalidByte(r, width) {
			sb.WriteString(successor)
		} else {
			sb.WriteString(input[i : i+width])
		}
		i += width
	}
	return sb.String()
}

// rewrittenSize is the exact byte length of Rewrite(input, g).
func rewrittenSize(input string, g Grammar) int {
	size := 0
	for i := 0; i < len(input); {
		r, width := utf8.DecodeRuneInString(input[i:])
		if successor, ok := g.rules[Symbol(r)]; ok && !isInvalidByte(r, width) {
			size += len(successor)
		} else {
			size += width
		}
		i += width
	}
	return size
}

// isInvalidByte reports whether a decoded rune stands for a byte that is not
// valid UTF-8. Such bytes are copied through unchanged.
func isInvalidByte(r rune, width int) bool {
	return r == utf8.RuneError && width == 1
}

// SymbolCount returns the number of symbols in str.
func SymbolCount(str string) int {
	return utf8.RuneCountInString(str)
}
