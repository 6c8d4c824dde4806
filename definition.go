package plantgen

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viktordanov/plantgen/tokenizer"
)

// Definition is the YAML description of a plant.
type Definition struct {
	Name            string                 `yaml:"name"`
	Axiom           string                 `yaml:"axiom"`
	Rules           map[string]string      `yaml:"rules"`
	StochasticRules map[string]string      `yaml:"stochastic_rules"`
	Commands        map[string]string      `yaml:"commands"`
	Angle           float64                `yaml:"angle"`
	Step            float64                `yaml:"step"`
	StepDecay       float64                `yaml:"step_decay"`
	Generations     int                    `yaml:"generations"`
	Seed            uint64                 `yaml:"seed"`
	Start           TurtleState            `yaml:"start"`
	Output          string                 `yaml:"output"`
	Tokens          []tokenizer.Definition `yaml:"tokens"`
}

// DefaultRules grow the branching plant drawn when no rules are configured.
var DefaultRules = map[string]string{
	"X": "F[+FX][-FX][++X][--X]FFX",
	"F": "FF",
	"l": "l+r+",
	"r": "-l-r",
}

// DefaultDefinition returns the fractal plant with its usual parameters.
func DefaultDefinition() *Definition {
	rules := make(map[string]string, len(DefaultRules))
	for k, v := range DefaultRules {
		rules[k] = v
	}
	tokens := make([]tokenizer.Definition, len(tokenizer.DefaultDefinitions))
	copy(tokens, tokenizer.DefaultDefinitions)

	return &Definition{
		Name:        "fractal-plant",
		Axiom:       "X",
		Rules:       rules,
		Angle:       34.5,
		Step:        50,
		StepDecay:   1.7,
		Generations: 6,
		Seed:        1,
		Start:       TurtleState{X: 0, Y: -200, Heading: 90},
		Output:      "plant.svg",
		Tokens:      tokens,
	}
}

// LoadDefinition reads a definition file. A missing file yields the default
// definition.
func LoadDefinition(path string) (*Definition, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultDefinition()
		def.Output = os.ExpandEnv(def.Output)
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer f.Close()

	return DecodeDefinition(f)
}

// DecodeDefinition reads one YAML document. Unknown fields are rejected and
// omitted fields take their default values.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	def := DefaultDefinition()
	def.Rules = nil
	def.Tokens = nil

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}

	applyDefaults(def)
	if err := def.Validate(); err != nil {
		return nil, err
	}
	def.Output = os.ExpandEnv(def.Output)

	return def, nil
}

func applyDefaults(def *Definition) {
	if len(def.Rules) == 0 && len(def.StochasticRules) == 0 {
		def.Rules = DefaultDefinition().Rules
	}
	if len(def.Tokens) == 0 {
		def.Tokens = DefaultDefinition().Tokens
	}
}

// Validate checks the values that decoding cannot.
func (d *Definition) Validate() error {
	if d.Axiom == "" {
		return fmt.Errorf("%w: axiom must not be empty", ErrInvalidDefinition)
	}
	if math.IsNaN(d.Angle) || math.IsInf(d.Angle, 0) {
		return fmt.Errorf("%w: angle must be finite, got %v", ErrInvalidDefinition, d.Angle)
	}
	if !(d.Step > 0) || math.IsInf(d.Step, 0) {
		return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidDefinition, d.Step)
	}
	if !(d.StepDecay > 0) || math.IsInf(d.StepDecay, 0) {
		return fmt.Errorf("%w: step_decay must be positive, got %v", ErrInvalidDefinition, d.StepDecay)
	}
	if d.Generations < 0 {
		return fmt.Errorf("%w: generations must be non-negative, got %d", ErrInvalidDefinition, d.Generations)
	}
	for key := range d.Commands {
		if !isSymbol(key) {
			return fmt.Errorf("%w: command key %q must be a single character", ErrInvalidDefinition, key)
		}
	}
	for key := range d.StochasticRules {
		if _, ok := d.Rules[key]; ok {
			return fmt.Errorf("%w: symbol %q has both a rule and a stochastic rule", ErrInvalidDefinition, key)
		}
	}
	return nil
}

// Build turns the definition into a ready-to-draw Plant.
func (d *Definition) Build() (*Plant, error) {
	grammar, err := ParseGrammar(d.Rules)
	if err != nil {
		return nil, err
	}

	var rewriter Rewriter = grammar
	if len(d.StochasticRules) > 0 {
		rules, err := ParseRules(d.StochasticRules)
		if err != nil {
			return nil, err
		}
		rewriter = NewStochasticGrammar(rules, d.Seed).Overlay(grammar)
	}

	commands, err := d.commandTable()
	if err != nil {
		return nil, err
	}

	tok, err := tokenizer.Compile(d.Tokens)
	if err != nil {
		return nil, err
	}

	interp := NewInterpreter(d.Angle, d.Step)
	interp.Commands = commands

	return &Plant{
		Name:        d.Name,
		System:      NewLSystem(d.Axiom, rewriter),
		Interpreter: interp,
		Start:       d.Start,
		StepDecay:   d.StepDecay,
		Generations: d.Generations,
		Tokenizer:   tok,
	}, nil
}

func (d *Definition) commandTable() (CommandTable, error) {
	if len(d.Commands) == 0 {
		return DefaultCommands, nil
	}
	overrides := make(CommandTable, len(d.Commands))
	for key, name := range d.Commands {
		c, err := ParseCommand(name)
		if err != nil {
			return nil, err
		}
		overrides[Symbol([]rune(key)[0])] = c
	}
	return DefaultCommands.With(overrides), nil
}
