package plantgen

import (
	"fmt"
	"math"
)

type Point struct {
	X, Y float64
}

// TurtleState is the position and heading of the turtle. Heading is in
// degrees, 0 along +X, growing counter-clockwise.
type TurtleState struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
}

func (s TurtleState) Position() Point {
	return Point{X: s.X, Y: s.Y}
}

// BranchStack holds saved states for open branches, innermost last.
type BranchStack []TurtleState

func (bs *BranchStack) Push(s TurtleState) {
	*bs = append(*bs, s)
}

func (bs *BranchStack) Pop() (TurtleState, error) {
	n := len(*bs)
	if n == 0 {
		return TurtleState{}, ErrStackUnderflow
	}
	top := (*bs)[n-1]
	*bs = (*bs)[:n-1]
	return top, nil
}

func (bs BranchStack) Len() int {
	return len(bs)
}

type OpKind uint8

const (
	OpDraw OpKind = iota
	OpMove
	OpHeading
)

func (k OpKind) String() string {
	switch k {
	case OpDraw:
		return "draw"
	case OpMove:
		return "move"
	case OpHeading:
		return "heading"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// DrawOp is one side effect of the turtle. Draw and Move carry the segment
// travelled; Heading ops only carry the new heading.
type DrawOp struct {
	Kind    OpKind
	From    Point
	To      Point
	Heading float64
}

// Turtle is the state machine behind the interpreter. Every primitive
// reports its effect to emit in the order it happens.
type Turtle struct {
	state TurtleState
	stack BranchStack
	emit  func(DrawOp)
}

func NewTurtle(initial TurtleState, emit func(DrawOp)) *Turtle {
	if emit == nil {
		emit = func(DrawOp) {}
	}
	return &Turtle{state: initial, emit: emit}
}

func (t *Turtle) State() TurtleState {
	return t.state
}

// Depth is the number of open branches.
func (t *Turtle) Depth() int {
	return t.stack.Len()
}

func (t *Turtle) ForwardDraw(length float64) {
	from, to := t.advance(length)
	t.emit(DrawOp{Kind: OpDraw, From: from, To: to, Heading: t.state.Heading})
}

func (t *Turtle) ForwardMove(length float64) {
	from, to := t.advance(length)
	t.emit(DrawOp{Kind: OpMove, From: from, To: to, Heading: t.state.Heading})
}

func (t *Turtle) TurnRight(angle float64) {
	t.state.Heading -= angle
	t.emitHeading()
}

func (t *Turtle) TurnLeft(angle float64) {
	t.state.Heading += angle
	t.emitHeading()
}

func (t *Turtle) Push() {
	t.stack.Push(t.state)
}

// Pop returns to the state saved by the matching Push. The jump back is
// reported as a Move followed by a Heading op.
func (t *Turtle) Pop() error {
	saved, err := t.stack.Pop()
	if err != nil {
		return err
	}
	from := t.state.Position()
	t.state = saved
	t.emit(DrawOp{Kind: OpMove, From: from, To: saved.Position(), Heading: saved.Heading})
	t.emitHeading()
	return nil
}

func (t *Turtle) advance(length float64) (Point, Point) {
	from := t.state.Position()
	rad := t.state.Heading * math.Pi / 180
	t.state.X += length * math.Cos(rad)
	t.state.Y += length * math.Sin(rad)
	return from, t.state.Position()
}

func (t *Turtle) emitHeading() {
	p := t.state.Position()
	t.emit(DrawOp{Kind: OpHeading, From: p, To: p, Heading: t.state.Heading})
}
