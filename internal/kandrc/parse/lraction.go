package parse

import (
	"fmt"

	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
)

// ActionType tags what a single parse-table cell instructs the driver to do.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionGoto
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionGoto:
		return "goto"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Cell is one entry of the dense (state, symbol) parse table. Terminal
// columns hold ActionShift, ActionReduce, ActionAccept, or the zero value
// ActionError; non-terminal columns hold ActionGoto or ActionError.
type Cell struct {
	Type ActionType

	// State is the destination state. Used by ActionShift and ActionGoto.
	State int

	// Symbol and Production describe the reduced production A -> Production,
	// used by ActionReduce.
	Symbol     string
	Production grammar.Production
}

func (c Cell) String() string {
	switch c.Type {
	case ActionShift:
		return fmt.Sprintf("s%d", c.State)
	case ActionGoto:
		return fmt.Sprintf("%d", c.State)
	case ActionReduce:
		return fmt.Sprintf("r%s -> %s", c.Symbol, c.Production.String())
	case ActionAccept:
		return "acc"
	default:
		return ""
	}
}
