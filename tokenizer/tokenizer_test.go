package tokenizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchAtPrecedence(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)
	forward, _ := tok.Kind("FORWARD")
	right, _ := tok.Kind("RIGHT")

	token, err := tok.MatchAt("f++-", 0)
	require.NoError(t, err)
	assert.Equal(t, Token{Kind: forward, Lexeme: "f", Offset: 0}, token)
	assert.Equal(t, "FORWARD", tok.Name(token.Kind))

	token, err = tok.MatchAt("f++-", 1)
	require.NoError(t, err)
	assert.Equal(t, Token{Kind: right, Lexeme: "+", Offset: 1}, token)
}

func TestMatchAtEarliestDeclaredWins(t *testing.T) {
	tok := MustCompile([]Definition{
		{Name: "SHORT", Pattern: `a`},
		{Name: "LONG", Pattern: `a+`},
	})

	token, err := tok.MatchAt("aaa", 0)
	require.NoError(t, err)
	assert.Equal(t, "SHORT", tok.Name(token.Kind))
	assert.Equal(t, "a", token.Lexeme)

	reversed := MustCompile([]Definition{
		{Name: "LONG", Pattern: `a+`},
		{Name: "SHORT", Pattern: `a`},
	})
	token, err = reversed.MatchAt("aaa", 0)
	require.NoError(t, err)
	assert.Equal(t, "LONG", reversed.Name(token.Kind))
	assert.Equal(t, "aaa", token.Lexeme)
}

func TestMatchAtIsAnchored(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)

	_, err := tok.MatchAt("Qf", 0)
	var noMatch *NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, 0, noMatch.Offset)

	token, err := tok.MatchAt("Qf", 1)
	require.NoError(t, err)
	assert.Equal(t, "f", token.Lexeme)
}

func TestMatchAtNoMatch(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)

	_, err := tok.MatchAt("Q", 0)
	assert.ErrorIs(t, err, ErrNoMatch)
	var noMatch *NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, 0, noMatch.Offset)

	_, err = tok.MatchAt("f", 1)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestMatchAtOutOfRange(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)

	_, err := tok.MatchAt("f", 2)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
	_, err = tok.MatchAt("f", -1)
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		defs     []Definition
		options  []Options
		expected error
	}{
		{"empty table", nil, nil, ErrInvalidPattern},
		{"bad regexp", []Definition{{Name: "A", Pattern: `(`}}, nil, ErrInvalidPattern},
		{"unbalanced group", []Definition{{Name: "A", Pattern: `a)|(b`}}, nil, ErrInvalidPattern},
		{"no name", []Definition{{Name: " ", Pattern: `a`}}, nil, ErrInvalidPattern},
		{"duplicate", []Definition{{Name: "A", Pattern: `a`}, {Name: "A", Pattern: `b`}}, nil, ErrInvalidPattern},
		{"star", []Definition{{Name: "A", Pattern: `a*`}}, nil, ErrZeroLengthMatch},
		{"empty alternative", []Definition{{Name: "A", Pattern: `a|`}}, nil, ErrZeroLengthMatch},
		{"empty pattern", []Definition{{Name: "A", Pattern: ``}}, nil, ErrZeroLengthMatch},
		{"unknown skip", DefaultDefinitions, []Options{{Skip: []string{"NOPE"}}}, ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.defs, tt.options...)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestZeroLengthMatchAtScanTime(t *testing.T) {
	// \b never matches the empty string on its own, so it passes Compile.
	tok := MustCompile([]Definition{
		{Name: "BOUNDARY", Pattern: `\b`},
		{Name: "SPACE", Pattern: ` `},
	})

	token, err := tok.MatchAt(" a", 0)
	require.NoError(t, err)
	assert.Equal(t, "SPACE", tok.Name(token.Kind))

	_, err = tok.MatchAt("a", 0)
	assert.ErrorIs(t, err, ErrZeroLengthMatch)

	tokens, err := tok.All(" a")
	assert.ErrorIs(t, err, ErrZeroLengthMatch)
	assert.Len(t, tokens, 1)
}

func TestTokensScan(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)

	tokens, err := tok.All("f + - r l\n")
	require.NoError(t, err)

	var names []string
	var lexemes string
	for _, token := range tokens {
		names = append(names, tok.Name(token.Kind))
		lexemes += token.Lexeme
	}
	assert.Equal(t, []string{
		"FORWARD", "IGNORE", "RIGHT", "IGNORE", "LEFT", "IGNORE",
		"IGNORE", "IGNORE", "IGNORE", "IGNORE",
	}, names)
	assert.Equal(t, "f + - r l\n", lexemes)

	for i := 1; i < len(tokens); i++ {
		assert.Equal(t, tokens[i-1].End(), tokens[i].Offset)
	}
}

func TestTokensSkip(t *testing.T) {
	tok := MustCompile(DefaultDefinitions, Options{Skip: []string{"IGNORE"}})

	tokens, err := tok.All("f + - r l\n")
	require.NoError(t, err)

	var names []string
	for _, token := range tokens {
		names = append(names, tok.Name(token.Kind))
	}
	assert.Equal(t, []string{"FORWARD", "RIGHT", "LEFT"}, names)
	assert.Equal(t, []int{0, 2, 4}, []int{tokens[0].Offset, tokens[1].Offset, tokens[2].Offset})
}

func TestTokensStopsAtFirstError(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)

	tokens, err := tok.All("f+Qf")
	assert.Len(t, tokens, 2)
	var noMatch *NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, 2, noMatch.Offset)

	count := 0
	for _, err := range tok.Tokens("f+Qf") {
		count++
		if err != nil {
			assert.ErrorIs(t, err, ErrNoMatch)
		}
	}
	assert.Equal(t, 3, count)
}

func TestTokensRestartable(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)
	seq := tok.Tokens("f+-f")

	collect := func() []Token {
		var tokens []Token
		for token, err := range seq {
			require.NoError(t, err)
			tokens = append(tokens, token)
		}
		return tokens
	}

	first := collect()
	assert.Len(t, first, 4)
	assert.Equal(t, first, collect())

	for token := range seq {
		assert.Equal(t, 0, token.Offset)
		break
	}
}

func TestTokensEmptyInput(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)
	tokens, err := tok.All("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestPositionOf(t *testing.T) {
	text := "f+\n-fQ\n"
	tests := []struct {
		offset   int
		expected Position
	}{
		{0, Position{1, 1}},
		{1, Position{1, 2}},
		{3, Position{2, 1}},
		{5, Position{2, 3}},
		{7, Position{3, 1}},
		{99, Position{3, 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PositionOf(text, tt.offset))
	}
	assert.Equal(t, "2:3", PositionOf(text, 5).String())
}

func TestKindLookup(t *testing.T) {
	tok := MustCompile(DefaultDefinitions)
	assert.Equal(t, 4, tok.Kinds())

	kind, ok := tok.Kind("LEFT")
	assert.True(t, ok)
	assert.Equal(t, Kind(2), kind)

	_, ok = tok.Kind("UP")
	assert.False(t, ok)
	assert.Equal(t, "Kind(9)", tok.Name(9))
}
