package grammar

import (
	"fmt"
	"strings"
)

// LR0Item is a production with a dot marking how much of its right-hand side
// has been matched against the input so far: NonTerminal -> Left . Right.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

func (lr0 LR0Item) Equal(o any) bool {
	other, ok := o.(LR0Item)
	if !ok {
		otherPtr, ok := o.(*LR0Item)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if lr0.NonTerminal != other.NonTerminal {
		return false
	} else if len(lr0.Left) != len(other.Left) {
		return false
	} else if len(lr0.Right) != len(other.Right) {
		return false
	}

	for i := range lr0.Left {
		if lr0.Left[i] != other.Left[i] {
			return false
		}
	}
	for i := range lr0.Right {
		if lr0.Right[i] != other.Right[i] {
			return false
		}
	}

	return true
}

// AtEnd returns whether the dot has reached the end of the production, i.e.
// whether this item calls for a reduction.
func (lr0 LR0Item) AtEnd() bool {
	return len(lr0.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot and true, or "" and
// false if the dot is already at the end.
func (lr0 LR0Item) NextSymbol() (string, bool) {
	if lr0.AtEnd() {
		return "", false
	}
	return lr0.Right[0], true
}

// Advance returns a copy of lr0 with the dot moved one symbol to the right.
// Panics if the dot is already at the end.
func (lr0 LR0Item) Advance() LR0Item {
	if lr0.AtEnd() {
		panic("cannot advance an item whose dot is already at the end")
	}

	moved := lr0.Right[0]

	next := LR0Item{
		NonTerminal: lr0.NonTerminal,
		Left:        make([]string, len(lr0.Left)+1),
		Right:       make([]string, len(lr0.Right)-1),
	}
	copy(next.Left, lr0.Left)
	next.Left[len(lr0.Left)] = moved
	copy(next.Right, lr0.Right[1:])

	return next
}

// LR1Item is an LR(0) item paired with a single lookahead terminal.
// Canonical LR(1) item sets never merge items that share a core but differ
// in lookahead, unlike LALR(1).
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (lr1 LR1Item) Equal(o any) bool {
	other, ok := o.(LR1Item)
	if !ok {
		otherPtr, ok := o.(*LR1Item)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	if !lr1.LR0Item.Equal(other.LR0Item) {
		return false
	} else if lr1.Lookahead != other.Lookahead {
		return false
	}

	return true
}

// Advance returns a copy of lr1 with the dot moved one symbol to the right,
// keeping the same lookahead.
func (lr1 LR1Item) Advance() LR1Item {
	return LR1Item{
		LR0Item:   lr1.LR0Item.Advance(),
		Lookahead: lr1.Lookahead,
	}
}

func (item LR0Item) String() string {
	nonTermPhrase := ""
	if item.NonTerminal != "" {
		nonTermPhrase = fmt.Sprintf("%s -> ", item.NonTerminal)
	}

	left := strings.Join(item.Left, " ")
	right := strings.Join(item.Right, " ")

	if len(left) > 0 {
		left = left + " "
	}
	if len(right) > 0 {
		right = " " + right
	}

	return fmt.Sprintf("%s%s.%s", nonTermPhrase, left, right)
}

func (item LR1Item) String() string {
	return fmt.Sprintf("%s, %s", item.LR0Item.String(), item.Lookahead)
}
