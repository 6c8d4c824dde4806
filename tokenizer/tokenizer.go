// Package tokenizer classifies text with an ordered table of regular
// expressions. Earlier entries take precedence: at any offset the first entry
// whose pattern matches there decides the token kind, even if a later entry
// would match more text.
package tokenizer

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// Definition names one kind of token and the pattern that recognizes it.
type Definition struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// DefaultDefinitions classify the turtle alphabet of the plant renderer.
var DefaultDefinitions = []Definition{
	{Name: "FORWARD", Pattern: `f`},
	{Name: "RIGHT", Pattern: `\+`},
	{Name: "LEFT", Pattern: `\-`},
	{Name: "IGNORE", Pattern: `r|l| |\n`},
}

// Options are options for the tokenizer
type Options struct {
	// Skip lists kinds, by name, that Tokens and All leave out.
	Skip []string
}

type rule struct {
	name    string
	pattern *regexp.Regexp
}

// Tokenizer is immutable once compiled and safe for concurrent use.
type Tokenizer struct {
	rules []rule
	skip  map[Kind]bool
}

// Compile builds a Tokenizer from defs, in order.
func Compile(defs []Definition, options ...Options) (*Tokenizer, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no definitions", ErrInvalidPattern)
	}

	t := &Tokenizer{
		rules: make([]rule, 0, len(defs)),
		skip:  make(map[Kind]bool),
	}
	seen := make(map[string]bool, len(defs))

	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: definition with pattern %q has no name", ErrInvalidPattern, def.Pattern)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate kind %s", ErrInvalidPattern, name)
		}
		seen[name] = true

		if _, err := regexp.Compile(def.Pattern); err != nil {
			return nil, fmt.Errorf("%w: kind %s: %v", ErrInvalidPattern, name, err)
		}
		re, err := regexp.Compile(`^(?:` + def.Pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("%w: kind %s: %v", ErrInvalidPattern, name, err)
		}
		if re.MatchString("") {
			return nil, fmt.Errorf("%w: kind %s (%q)", ErrZeroLengthMatch, name, def.Pattern)
		}
		t.rules = append(t.rules, rule{name: name, pattern: re})
	}

	for _, opt := range options {
		for _, name := range opt.Skip {
			kind, ok := t.Kind(name)
			if !ok {
				return nil, fmt.Errorf("%w: cannot skip unknown kind %s", ErrInvalidPattern, name)
			}
			t.skip[kind] = true
		}
	}

	return t, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(defs []Definition, options ...Options) *Tokenizer {
	t, err := Compile(defs, options...)
	if err != nil {
		panic(err)
	}
	return t
}

// Kind returns the kind declared under name.
func (t *Tokenizer) Kind(name string) (Kind, bool) {
	for i, r := range t.rules {
		if r.name == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Name returns the declared name of kind.
func (t *Tokenizer) Name(kind Kind) string {
	if kind < 0 || int(kind) >= len(t.rules) {
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
	return t.rules[kind].name
}

// Kinds returns the number of configured kinds.
func (t *Tokenizer) Kinds() int {
	return len(t.rules)
}

// MatchAt classifies the text starting exactly at offset.
func (t *Tokenizer) MatchAt(text string, offset int) (Token, error) {
	if offset < 0 || offset > len(text) {
		return Token{}, fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetOutOfRange, offset, len(text))
	}
	rest := text[offset:]

	for i, r := range t.rules {
		loc := r.pattern.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			continue
		}
		if loc[1] == 0 {
			return Token{}, fmt.Errorf("%w: kind %s at offset %d", ErrZeroLengthMatch, r.name, offset)
		}
		return Token{Kind: Kind(i), Lexeme: rest[:loc[1]], Offset: offset}, nil
	}

	return Token{}, &NoMatchError{Offset: offset}
}

// Tokens scans text from the start. The sequence stops after the last token
// or after yielding the first error. Each range over it scans again.
func (t *Tokenizer) Tokens(text string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		offset := 0
		for offset < len(text) {
			token, err := t.MatchAt(text, offset)
			if err != nil {
				yield(Token{}, err)
				return
			}
			offset = token.End()

			if t.skip[token.Kind] {
				continue
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

// All collects Tokens into a slice. On error it returns the tokens scanned
// before the failure.
func (t *Tokenizer) All(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text))
	for token, err := range t.Tokens(text) {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
