package plantgen

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"pgregory.net/rand"
)

type WeightedRule struct {
	Probability float64
	Successor   string
}

// ProductionRule lists the alternative successors of one symbol.
type ProductionRule struct {
	Predecessor Symbol
	Weights     []WeightedRule
}

func NewProductionRule(predecessor Symbol, weights []WeightedRule) ProductionRule {
	return ProductionRule{
		Predecessor: predecessor,
		Weights:     weights,
	}
}

func (r *ProductionRule) String() string {
	var sb strings.Builder
	sb.WriteRune('"')
	sb.WriteRune(rune(r.Predecessor))
	sb.WriteRune('"')
	sb.WriteString(": `")
	for i, wt := range r.Weights {
		sb.WriteString(strconv.FormatFloat(wt.Probability, 'f', 2, 64))
		sb.WriteString(" ")
		sb.WriteString(wt.Successor)
		if i != len(r.Weights)-1 {
			sb.WriteString("; ")
		}
	}
	sb.WriteString("`")
	return sb.String()
}

// ChooseSuccessor picks a successor with probability proportional to its
// weight. A rule whose weights sum to zero keeps its predecessor.
func (r *ProductionRule) ChooseSuccessor(rng *rand.Rand) string {
	total := 0.0
	for _, wt := range r.Weights {
		total += wt.Probability
	}
	if total <= 0 {
		return string(r.Predecessor)
	}
	random := rng.Float64() * total
	for _, wt := range r.Weights {
		random -= wt.Probability
		if random < 0 {
			return wt.Successor
		}
	}
	// float rounding can leave random at exactly zero
	return r.Weights[len(r.Weights)-1].Successor
}

// StochasticGrammar rewrites each symbol with one of several weighted
// successors. Symbols without a rule are kept. It owns its random source and
// must not be shared between goroutines.
type StochasticGrammar struct {
	rules map[Symbol]ProductionRule
	seed  uint64
	rng   *rand.Rand
}

func NewStochasticGrammar(rules map[Symbol]ProductionRule, seed uint64) *StochasticGrammar {
	copied := make(map[Symbol]ProductionRule, len(rules))
	for s, rule := range rules {
		weights := make([]WeightedRule, len(rule.Weights))
		copy(weights, rule.Weights)
		copied[s] = NewProductionRule(rule.Predecessor, weights)
	}
	return &StochasticGrammar{
		rules: copied,
		seed:  seed,
		rng:   rand.New(seed),
	}
}

// Reset rewinds the random source to the grammar's seed.
func (g *StochasticGrammar) Reset() {
	g.rng = rand.New(g.seed)
}

// Rule returns the weighted successors of s.
func (g *StochasticGrammar) Rule(s Symbol) (ProductionRule, bool) {
	rule, ok := g.rules[s]
	return rule, ok
}

func (g *StochasticGrammar) Rewrite(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))
	for i := 0; i < len(input); {
		r, width := utf8.DecodeRuneInString(input[i:])
		rule, ok := g.Rule(Symbol(r))
		if !ok || isInvalidByte(r, width) {
			sb.WriteString(input[i : i+width])
		} else {
			sb.WriteString(rule.ChooseSuccessor(g.rng))
		}
		i += width
	}
	return sb.String()
}

// Overlay returns a stochastic grammar that falls back to base for symbols
// without a weighted rule.
func (g *StochasticGrammar) Overlay(base Grammar) *StochasticGrammar {
	rules := make(map[Symbol]ProductionRule, len(g.rules)+base.Len())
	for s, successor := range base.rules {
		rules[s] = NewProductionRule(s, []WeightedRule{{Probability: 1, Successor: successor}})
	}
	for s, rule := range g.rules {
		rules[s] = rule
	}
	return NewStochasticGrammar(rules, g.seed)
}

func isSymbol(str string) bool {
	return utf8.RuneCountInString(str) == 1
}
