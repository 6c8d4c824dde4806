package plantgen

import (
	"iter"
	"math"

	"github.com/viktordanov/plantgen/tokenizer"
)

// Plant is a built Definition.
type Plant struct {
	Name        string
	System      *LSystem
	Interpreter *Interpreter
	Start       TurtleState
	StepDecay   float64
	Generations int
	Tokenizer   *tokenizer.Tokenizer
}

// StepAt is the segment length used to draw generation n. Generations 0 and
// 1 share the base step; every later generation divides it by StepDecay so
// the plant keeps roughly the same size while it grows.
func (p *Plant) StepAt(n int) float64 {
	if n <= 1 {
		return p.Interpreter.Step
	}
	return p.Interpreter.Step / math.Pow(p.StepDecay, float64(n-1))
}

// Generation returns the command string of generation n.
func (p *Plant) Generation(n int) string {
	return p.System.Iterate(n)
}

// Execute returns the ops that draw generation n.
func (p *Plant) Execute(n int) ([]DrawOp, error) {
	return p.interpreterAt(n).Execute(p.Generation(n), p.Start)
}

// Render draws generation n onto canvas.
func (p *Plant) Render(n int, canvas Canvas) error {
	return p.interpreterAt(n).Render(p.Generation(n), p.Start, canvas)
}

// Grow yields every generation from the axiom to p.Generations along with
// the interpreter configured to draw it.
func (p *Plant) Grow() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for n, commands := range p.System.Generations(p.Generations) {
			frame := Frame{Commands: commands, Interpreter: p.interpreterAt(n), Start: p.Start}
			if !yield(n, frame) {
				return
			}
		}
	}
}

// Frame is one generation ready to be drawn.
type Frame struct {
	Commands    string
	Interpreter *Interpreter
	Start       TurtleState
}

func (f Frame) Render(canvas Canvas) error {
	return f.Interpreter.Render(f.Commands, f.Start, canvas)
}

func (p *Plant) interpreterAt(n int) *Interpreter {
	return &Interpreter{
		Commands: p.Interpreter.Commands,
		Angle:    p.Interpreter.Angle,
		Step:     p.StepAt(n),
	}
}
