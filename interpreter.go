package plantgen

import "fmt"

// Interpreter turns a command string into turtle movements.
type Interpreter struct {
	Commands CommandTable
	Angle    float64
	Step     float64
}

func NewInterpreter(angle, step float64) *Interpreter {
	return &Interpreter{
		Commands: DefaultCommands,
		Angle:    angle,
		Step:     step,
	}
}

// Execute runs commands from initial and returns every op in order. It stops
// at the first ']' without an open branch; the error wraps ErrStackUnderflow.
func (in *Interpreter) Execute(commands string, initial TurtleState) ([]DrawOp, error) {
	ops := make([]DrawOp, 0, len(commands))
	err := in.run(commands, initial, func(op DrawOp) {
		ops = append(ops, op)
	})
	return ops, err
}

// Render replays commands onto canvas as the ops are produced.
func (in *Interpreter) Render(commands string, initial TurtleState, canvas Canvas) error {
	canvas.Clear()
	canvas.PenUp()
	canvas.MoveTo(initial.X, initial.Y)
	canvas.SetHeading(initial.Heading)

	return in.run(commands, initial, func(op DrawOp) {
		switch op.Kind {
		case OpDraw:
			canvas.PenDown()
			canvas.MoveTo(op.To.X, op.To.Y)
		case OpMove:
			canvas.PenUp()
			canvas.MoveTo(op.To.X, op.To.Y)
		case OpHeading:
			canvas.SetHeading(op.Heading)
		}
	})
}

func (in *Interpreter) run(commands string, initial TurtleState, emit func(DrawOp)) error {
	table := in.Commands
	if table == nil {
		table = DefaultCommands
	}
	turtle := NewTurtle(initial, emit)

	offset := 0
	for _, r := range commands {
		switch table.Lookup(Symbol(r)) {
		case DrawForward:
			turtle.ForwardDraw(in.Step)
		case MoveForward:
			turtle.ForwardMove(in.Step)
		case TurnRight:
			turtle.TurnRight(in.Angle)
		case TurnLeft:
			turtle.TurnLeft(in.Angle)
		case Push:
			turtle.Push()
		case Pop:
			if err := turtle.Pop(); err != nil {
				return fmt.Errorf("%w: %q at offset %d", err, r, offset)
			}
		default:
			return fmt.Errorf("%w: command table maps %q to unknown command", ErrInvalidDefinition, r)
		}
		offset++
	}
	return nil
}
