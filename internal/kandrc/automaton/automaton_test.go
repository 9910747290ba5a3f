package automaton

import (
	"testing"

	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Build_purpleDragonExample445(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> C C ;
		C -> c C | d ;
	`)

	sm, err := Build(g)
	assert.NoError(err)

	// Purple Dragon Book, example 4.45: the canonical LR(1) collection for
	// this grammar has exactly 10 states.
	assert.Len(sm.States, 10)
}

func Test_Build_startStateIsZero(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`S -> a ;`)

	sm, err := Build(g)
	assert.NoError(err)
	assert.NotEmpty(sm.States)
	assert.Equal(0, sm.States[0].ID)
}

func Test_Build_rejectsInvalidGrammar(t *testing.T) {
	assert := assert.New(t)

	_, err := Build(grammar.Grammar{})
	assert.Error(err)
}

func Test_Closure_addsProductionsOfNextNonTerminal(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> a B ;
		B -> b | c ;
	`).Augmented()

	kernel := newItemSet()
	start := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: grammar.AugmentedStart, Right: []string{"S"}},
		Lookahead: "$",
	}
	kernel.Set(start.String(), start)

	closed := Closure(g, kernel)

	// closure must add the S-item, since S is the next non-terminal of the
	// start item; B itself doesn't reach until "a" is shifted, so at this
	// point we expect the start item and the S -> .a B item with lookahead $.
	assert.True(closed.Has(start.String()))

	sProd := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: "S", Right: []string{"a", "B"}},
		Lookahead: "$",
	}
	assert.True(closed.Has(sProd.String()))
}

func Test_Goto_advancesDotAndRecloses(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> a B ;
		B -> b | c ;
	`).Augmented()

	kernel := newItemSet()
	start := grammar.LR1Item{
		LR0Item:   grammar.LR0Item{NonTerminal: grammar.AugmentedStart, Right: []string{"S"}},
		Lookahead: "$",
	}
	kernel.Set(start.String(), start)
	closed := Closure(g, kernel)

	onA := Goto(g, closed, "a")
	assert.False(onA.Empty())

	// after shifting "a", B -> .b and B -> .c must be in the closure, since
	// S -> a . B now expects a B next.
	bB := grammar.LR1Item{LR0Item: grammar.LR0Item{NonTerminal: "B", Right: []string{"b"}}, Lookahead: "$"}
	bC := grammar.LR1Item{LR0Item: grammar.LR0Item{NonTerminal: "B", Right: []string{"c"}}, Lookahead: "$"}
	assert.True(onA.Has(bB.String()))
	assert.True(onA.Has(bC.String()))

	onSomethingElse := Goto(g, closed, "z")
	assert.True(onSomethingElse.Empty())
}
