package parse

import (
	"github.com/lindqvist/kandrc/internal/kandrc/automaton"
	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
)

// GenerateCanonicalLR1Parser builds the canonical LR(1) state machine for g
// (§4.2, §4.3) and synthesizes a parser from it (§7). g must not already be
// augmented; Build augments it internally.
func GenerateCanonicalLR1Parser(g grammar.Grammar) (*Parser, error) {
	sm, err := automaton.Build(g)
	if err != nil {
		return nil, err
	}

	table, err := Synthesize(sm)
	if err != nil {
		return nil, err
	}

	return New(table), nil
}
