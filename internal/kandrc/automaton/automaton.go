// Package automaton builds the canonical LR(1) state machine for a grammar:
// item-set closure, GOTO, and the worklist construction that assigns each
// discovered state a sequential integer id.
package automaton

import (
	"fmt"

	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/lindqvist/kandrc/internal/kandrc/icerrors"
	"github.com/lindqvist/kandrc/internal/kandrc/types"
	"github.com/lindqvist/kandrc/internal/util"
)

// MaxStates bounds the worklist so a runaway grammar (or a bug in Closure)
// fails fast instead of growing the state machine without limit.
const MaxStates = 100000

// ItemSet is a set of LR(1) items, keyed by their canonical string form so
// duplicate items (same core, same lookahead) collapse automatically.
type ItemSet = util.SVSet[grammar.LR1Item]

func newItemSet() ItemSet {
	return util.NewSVSet[grammar.LR1Item]()
}

// canonicalKey is the string used to tell whether two item sets are the same
// state: items sorted and joined, so two sets built in different discovery
// order still compare equal.
func canonicalKey(set ItemSet) string {
	return set.StringOrdered()
}

// Closure computes the closure of set under g: for every item
// [A -> α•Bβ, a] in the set, and every production B -> γ, add
// [B -> •γ, b] for every b in FIRST(βa), iterating to a fixed point.
func Closure(g grammar.Grammar, set ItemSet) ItemSet {
	closure := set.Copy()

	updated := true
	for updated {
		updated = false

		for _, item := range closure.Values() {
			sym, ok := item.NextSymbol()
			if !ok || !g.IsNonTerminal(sym) {
				continue
			}

			rest := append(append([]string{}, item.Right[1:]...), item.Lookahead)
			lookaheads := g.FIRSTOfSequence(rest)

			rule := g.Rule(sym)
			for _, prod := range rule.Productions {
				for _, la := range lookaheads.Elements() {
					newItem := grammar.LR1Item{
						LR0Item: grammar.LR0Item{
							NonTerminal: sym,
							Right:       append([]string{}, prod...),
						},
						Lookahead: la,
					}
					key := newItem.String()
					if !closure.Has(key) {
						closure.Set(key, newItem)
						updated = true
					}
				}
			}
		}
	}

	return closure
}

// Goto computes the state reached from set on grammar symbol sym: advance
// every item in set whose next symbol is sym, then close the result.
func Goto(g grammar.Grammar, set ItemSet, sym string) ItemSet {
	kernel := newItemSet()

	for _, item := range set.Values() {
		next, ok := item.NextSymbol()
		if !ok || next != sym {
			continue
		}
		advanced := item.Advance()
		kernel.Set(advanced.String(), advanced)
	}

	if kernel.Empty() {
		return kernel
	}

	return Closure(g, kernel)
}

// outgoingSymbols returns every grammar symbol that appears immediately
// after the dot in some item of set, in a stable order (terminals and
// non-terminals as they were first encountered).
func outgoingSymbols(set ItemSet) []string {
	seen := util.NewStringSet()
	var order []string

	for _, key := range util.OrderedKeys(set) {
		item := set[key]
		sym, ok := item.NextSymbol()
		if !ok {
			continue
		}
		if !seen.Has(sym) {
			seen.Add(sym)
			order = append(order, sym)
		}
	}

	return order
}

// State is one node of the canonical LR(1) state machine: its id (assigned
// at registration time, 0 is always the start state), its item set, and its
// outgoing transitions keyed by grammar symbol.
type State struct {
	ID          int
	Items       ItemSet
	Transitions map[string]int
}

// StateMachine is the canonical collection of LR(1) states and the
// transitions between them, built from a single grammar.
type StateMachine struct {
	Grammar grammar.Grammar
	States  []State
}

// Build runs the canonical LR(1) construction (§4.3): starting from the
// closure of [$start -> •S, $], repeatedly compute GOTO on every outgoing
// symbol of every discovered state until no new item sets appear. g must not
// already be augmented; Build augments it itself so that callers always
// work with the original grammar's start symbol.
func Build(g grammar.Grammar) (*StateMachine, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("automaton: invalid grammar: %w", err)
	}

	oldStart := g.StartSymbol()
	aug := g.Augmented()

	startItem := grammar.LR1Item{
		LR0Item: grammar.LR0Item{
			NonTerminal: grammar.AugmentedStart,
			Right:       []string{oldStart},
		},
		Lookahead: types.TokenEndOfText.ID(),
	}

	startKernel := newItemSet()
	startKernel.Set(startItem.String(), startItem)
	startSet := Closure(aug, startKernel)

	sm := &StateMachine{Grammar: aug}
	indexOf := map[string]int{}

	register := func(set ItemSet) int {
		key := canonicalKey(set)
		if id, ok := indexOf[key]; ok {
			return id
		}
		id := len(sm.States)
		sm.States = append(sm.States, State{
			ID:          id,
			Items:       set,
			Transitions: map[string]int{},
		})
		indexOf[key] = id
		return id
	}

	register(startSet)

	for i := 0; i < len(sm.States); i++ {
		if len(sm.States) > MaxStates {
			return nil, icerrors.NewCapacityError("LR(1) state count", len(sm.States), MaxStates)
		}

		from := sm.States[i]
		for _, sym := range outgoingSymbols(from.Items) {
			next := Goto(aug, from.Items, sym)
			if next.Empty() {
				continue
			}
			toID := register(next)
			// sm.States may have grown via register; re-fetch before mutating.
			sm.States[i].Transitions[sym] = toID
		}
	}

	return sm, nil
}
