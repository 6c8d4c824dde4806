package plantgen

import (
	"fmt"
	"strings"
)

// Command is the turtle primitive a symbol stands for.
type Command uint8

const (
	DrawForward Command = iota
	MoveForward
	TurnRight
	TurnLeft
	Push
	Pop
)

func (c Command) String() string {
	switch c {
	case DrawForward:
		return "DrawForward"
	case MoveForward:
		return "MoveForward"
	case TurnRight:
		return "TurnRight"
	case TurnLeft:
		return "TurnLeft"
	case Push:
		return "Push"
	case Pop:
		return "Pop"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand accepts the names printed by Command.String, case-insensitively.
func ParseCommand(name string) (Command, error) {
	for c := DrawForward; c <= Pop; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown command %q", ErrInvalidDefinition, name)
}

// CommandTable maps symbols to commands.
type CommandTable map[Symbol]Command

// DefaultCommands is the table of the classic branching plant.
var DefaultCommands = CommandTable{
	'F': DrawForward,
	'l': DrawForward,
	'r': DrawForward,
	'f': MoveForward,
	'+': TurnRight,
	'-': TurnLeft,
	'[': Push,
	']': Pop,
}

// Lookup returns the command for s.
//
// Symbols missing from the table draw forward, so rule variables such as X
// also draw a segment. Map them to another command to change that.
func (ct CommandTable) Lookup(s Symbol) Command {
	c, ok := ct[s]
	if !ok {
		return DrawForward
	}
	return c
}

// With returns a copy of ct with overrides applied.
func (ct CommandTable) With(overrides CommandTable) CommandTable {
	merged := make(CommandTable, len(ct)+len(overrides))
	for s, c := range ct {
		merged[s] = c
	}
	for s, c := range overrides {
		merged[s] = c
	}
	return merged
}
