// Package parse synthesizes a dense LR(1) parse table from a canonical
// state machine and drives it over a token stream to produce a concrete
// syntax tree.
package parse

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/lindqvist/kandrc/internal/kandrc/automaton"
	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/lindqvist/kandrc/internal/kandrc/types"
)

// SymbolTable assigns a stable integer column index to every grammar symbol
// a Table needs a column for: every terminal, then the end-of-input
// sentinel, then every non-terminal of the augmented grammar. Synthesis and
// lookup both go through this so a Table's column layout never depends on
// map iteration order.
type SymbolTable struct {
	symbols      []string
	index        map[string]int
	numTerminals int
}

// NewSymbolTable builds the column layout for g, which must already be
// augmented.
func NewSymbolTable(g grammar.Grammar) SymbolTable {
	st := SymbolTable{index: map[string]int{}}

	for _, t := range g.Terminals() {
		st.index[t] = len(st.symbols)
		st.symbols = append(st.symbols, t)
	}
	if _, ok := st.index[types.TokenEndOfText.ID()]; !ok {
		st.index[types.TokenEndOfText.ID()] = len(st.symbols)
		st.symbols = append(st.symbols, types.TokenEndOfText.ID())
	}
	st.numTerminals = len(st.symbols)

	for _, nt := range g.NonTerminals() {
		st.index[nt] = len(st.symbols)
		st.symbols = append(st.symbols, nt)
	}

	return st
}

// IndexOf returns the column index assigned to sym, or -1 if sym has none.
func (st SymbolTable) IndexOf(sym string) int {
	idx, ok := st.index[sym]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the total number of columns (terminals + non-terminals).
func (st SymbolTable) Len() int {
	return len(st.symbols)
}

// Table is the synthesized dense action/goto matrix: one row per automaton
// state, one column per grammar symbol (via Symbols).
type Table struct {
	Grammar grammar.Grammar
	Symbols SymbolTable
	Start   int

	cells [][]Cell
}

// Action returns the cell for (state, symbol). Returns the zero Cell
// (ActionError) if state or symbol is out of range.
func (t *Table) Action(state int, symbol string) Cell {
	idx := t.Symbols.IndexOf(symbol)
	if idx < 0 || state < 0 || state >= len(t.cells) {
		return Cell{}
	}
	return t.cells[state][idx]
}

// Goto returns the destination state registered for (state, nonTerminal),
// or an error if there is none.
func (t *Table) Goto(state int, nonTerminal string) (int, error) {
	cell := t.Action(state, nonTerminal)
	if cell.Type != ActionGoto {
		return 0, fmt.Errorf("GOTO[%d, %q] is an error entry", state, nonTerminal)
	}
	return cell.State, nil
}

func (t *Table) set(state int, symbol string, cell Cell) {
	idx := t.Symbols.IndexOf(symbol)
	if idx < 0 {
		return
	}
	t.cells[state][idx] = cell
}

// Synthesize builds the dense parse table from a canonical LR(1) state
// machine (§7). For every state, reduce actions are written before shift
// actions, so a state with both on the same terminal — the dangling-else
// shift/reduce conflict, the only one this grammar produces — ends up with
// the shift action: conflicts are resolved by this write order, never
// detected or reported (§9).
func Synthesize(sm *automaton.StateMachine) (*Table, error) {
	g := sm.Grammar // already augmented by automaton.Build
	symbols := NewSymbolTable(g)

	t := &Table{
		Grammar: g,
		Symbols: symbols,
		Start:   0,
		cells:   make([][]Cell, len(sm.States)),
	}
	for i := range t.cells {
		t.cells[i] = make([]Cell, symbols.Len())
	}

	for _, state := range sm.States {
		for _, item := range state.Items.Values() {
			if !item.AtEnd() {
				continue
			}
			if item.NonTerminal == grammar.AugmentedStart {
				t.set(state.ID, types.TokenEndOfText.ID(), Cell{Type: ActionAccept})
				continue
			}
			t.set(state.ID, item.Lookahead, Cell{
				Type:       ActionReduce,
				Symbol:     item.NonTerminal,
				Production: grammar.Production(item.Left),
			})
		}
	}

	for _, state := range sm.States {
		for sym, toID := range state.Transitions {
			if g.IsTerminal(sym) {
				t.set(state.ID, sym, Cell{Type: ActionShift, State: toID})
			} else {
				t.set(state.ID, sym, Cell{Type: ActionGoto, State: toID})
			}
		}
	}

	return t, nil
}

// String renders the table as an ASCII grid: one row per state, "A:" columns
// for actions on terminals, "G:" columns for gotos on non-terminals.
func (t *Table) String() string {
	terms := t.Symbols.symbols[:t.Symbols.numTerminals]
	nonTerms := t.Symbols.symbols[t.Symbols.numTerminals:]

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, "A:"+term)
	}
	headers = append(headers, "|")
	for _, nt := range nonTerms {
		headers = append(headers, "G:"+nt)
	}

	data := [][]string{headers}

	for state := 0; state < len(t.cells); state++ {
		row := []string{fmt.Sprintf("%d", state), "|"}
		for _, term := range terms {
			row = append(row, t.Action(state, term).String())
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			row = append(row, t.Action(state, nt).String())
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
