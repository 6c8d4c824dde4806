package plantgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteLiteral(t *testing.T) {
	g := NewGrammar(map[Symbol]string{'X': "F[+FX][-FX]FFX"})
	assert.Equal(t, "F[+FX][-FX]FFX", Rewrite("X", g))
}

func TestRewriteIdentityFallback(t *testing.T) {
	g := NewGrammar(map[Symbol]string{'X': "FX"})

	for _, s := range []Symbol{'Z', 'F', '[', ']', '+', 'é'} {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, string(s), Rewrite(string(s), g))
			replacement, ok := g.Lookup(s)
			assert.False(t, ok)
			assert.Equal(t, string(s), replacement)
		})
	}
}

func TestRewriteKeepsInvalidBytes(t *testing.T) {
	g := NewGrammar(map[Symbol]string{'A': "AB", '\uFFFD': "R"})

	for _, input := range []string{"A\xffB", "\xff", "\xe2\x82A", "Q\xc3"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			out := Rewrite(input, g)
			assert.Equal(t, strings.ReplaceAll(input, "A", "AB"), out)
			assert.Equal(t, len(out), rewrittenSize(input, g))
		})
	}

	// a well-formed replacement character still has its rule applied
	assert.Equal(t, "R", Rewrite("\uFFFD", g))
}

func TestRewriteLengthAdditivity(t *testing.T) {
	g, err := ParseGrammar(map[string]string{
		"X": "F[+FX][-FX][++X][--X]FFX",
		"F": "FF",
		"E": "E",
	})
	require.NoError(t, err)

	inputs := []string{"", "X", "F", "XFX", "[E]+-Q", "FXFXE"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			expected := 0
			for _, r := range input {
				replacement, _ := g.Lookup(Symbol(r))
				expected += SymbolCount(replacement)
			}
			assert.Equal(t, expected, SymbolCount(Rewrite(input, g)))
		})
	}
}

func TestRewriteIsParallel(t *testing.T) {
	// A -> B must not feed into B -> C within one pass.
	g := NewGrammar(map[Symbol]string{'A': "B", 'B': "C"})
	assert.Equal(t, "BC", Rewrite("AB", g))
}

func TestRewriteDoesNotAliasRules(t *testing.T) {
	rules := map[Symbol]string{'A': "AB"}
	g := NewGrammar(rules)
	rules['A'] = "changed"

	assert.Equal(t, "AB", Rewrite("A", g))
}

func TestRewrittenSizeIsExact(t *testing.T) {
	g := NewGrammar(map[Symbol]string{'a': "ää", 'b': ""})
	input := "abcé"
	assert.Equal(t, len(Rewrite(input, g)), rewrittenSize(input, g))
}

func TestGrammarAlphabet(t *testing.T) {
	g := NewGrammar(map[Symbol]string{'X': "F[+X]", 'F': "FF"})

	assert.Equal(t, []Symbol{'F', 'X'}, g.Predecessors().AsSlice())
	assert.Equal(t, []Symbol{'+', 'F', 'X', '[', ']'}, g.Alphabet().AsSlice())
	assert.Equal(t, []Symbol{'A', 'B'}, SymbolsOf("ABBA").AsSlice())
}

func TestParseGrammarRejectsMultiRuneKeys(t *testing.T) {
	_, err := ParseGrammar(map[string]string{"XY": "F"})
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = ParseGrammar(map[string]string{"": "F"})
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestParseGrammarRejectsEmptySuccessor(t *testing.T) {
	_, err := ParseGrammar(map[string]string{"X": "FX", "E": ""})
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestGenerationLengthNeverDecreases(t *testing.T) {
	g, err := ParseGrammar(map[string]string{"X": "F[+X][-X]FX", "F": "FF"})
	require.NoError(t, err)

	ls := NewLSystem("X", g)
	previous := 0
	for n, generation := range ls.Generations(6) {
		assert.GreaterOrEqual(t, SymbolCount(generation), previous, "generation %d", n)
		previous = SymbolCount(generation)
	}
}
