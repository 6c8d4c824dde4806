package plantgen

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRule parses weighted successors written as
// "0.5 F[+F]F; 0.5 F[-F]F". Each group is a weight followed by a non-empty
// successor.
func ParseRule(str string) ([]WeightedRule, error) {
	groups := strings.Split(strings.ReplaceAll(str, "\n", ""), ";")
	var weights []WeightedRule

	for _, group := range groups {
		if strings.TrimSpace(group) == "" {
			continue
		}
		fields := strings.Fields(group)
		weight, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad weight %q", ErrInvalidRule, fields[0])
		}
		if weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %q", ErrInvalidRule, fields[0])
		}
		if len(fields) == 1 {
			return nil, fmt.Errorf("%w: weight %q has no successor", ErrInvalidRule, fields[0])
		}
		weights = append(weights, WeightedRule{
			Probability: weight,
			Successor:   strings.Join(fields[1:], ""),
		})
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no successors in %q", ErrInvalidRule, str)
	}
	return weights, nil
}

// ParseRules parses a map of weighted rule strings keyed by predecessor.
func ParseRules(rulesMap map[string]string) (map[Symbol]ProductionRule, error) {
	parsedRules := make(map[Symbol]ProductionRule, len(rulesMap))

	for _, key := range sortedKeys(rulesMap) {
		if !isSymbol(key) {
			return nil, fmt.Errorf("%w: rule key %q must be a single character", ErrInvalidSymbol, key)
		}
		weights, err := ParseRule(rulesMap[key])
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", key, err)
		}
		predecessor := Symbol([]rune(key)[0])
		parsedRules[predecessor] = NewProductionRule(predecessor, weights)
	}

	return parsedRules, nil
}

// ParseGrammar builds a deterministic Grammar from string keys. Successors
// may not be empty, so a generation is never shorter than the one before.
func ParseGrammar(rulesMap map[string]string) (Grammar, error) {
	rules := make(map[Symbol]string, len(rulesMap))
	for _, key := range sortedKeys(rulesMap) {
		if !isSymbol(key) {
			return Grammar{}, fmt.Errorf("%w: rule key %q must be a single character", ErrInvalidSymbol, key)
		}
		if rulesMap[key] == "" {
			return Grammar{}, fmt.Errorf("%w: rule %q has an empty successor", ErrInvalidRule, key)
		}
		rules[Symbol([]rune(key)[0])] = rulesMap[key]
	}
	return NewGrammar(rules), nil
}
