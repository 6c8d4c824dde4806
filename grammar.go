package plantgen

import (
	"sort"
	"strconv"
	"strings"
)

// Grammar maps each symbol to the string that replaces it in the next
// generation. Symbols without a rule are replaced by themselves. A Grammar is
// never modified after construction.
type Grammar struct {
	rules map[Symbol]string
}

// NewGrammar copies rules into a new Grammar.
func NewGrammar(rules map[Symbol]string) Grammar {
	copied := make(map[Symbol]string, len(rules))
	for s, successor := range rules {
		copied[s] = successor
	}
	return Grammar{rules: copied}
}

// Lookup returns the replacement for s and whether an explicit rule exists.
func (g Grammar) Lookup(s Symbol) (string, bool) {
	successor, ok := g.rules[s]
	if !ok {
		return string(s), false
	}
	return successor, true
}

func (g Grammar) Len() int {
	return len(g.rules)
}

// Predecessors returns the symbols that have an explicit rule.
func (g Grammar) Predecessors() SymbolSet {
	set := make(SymbolSet, len(g.rules))
	for s := range g.rules {
		set.Add(s)
	}
	return set
}

// Alphabet returns every symbol that appears in a rule, on either side.
func (g Grammar) Alphabet() SymbolSet {
	set := g.Predecessors()
	for _, successor := range g.rules {
		for s := range SymbolsOf(successor) {
			set.Add(s)
		}
	}
	return set
}

func (g Grammar) Rewrite(input string) string {
	return Rewrite(input, g)
}

func (g Grammar) String() string {
	keys := g.Predecessors().AsSlice()
	var sb strings.Builder
	for i, s := range keys {
		sb.WriteString(strconv.QuoteRune(rune(s)))
		sb.WriteString(": ")
		sb.WriteString(strconv.Quote(g.rules[s]))
		if i != len(keys)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
