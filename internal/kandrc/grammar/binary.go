package grammar

import (
	"fmt"

	"github.com/dekarrin/rezi"
	"github.com/lindqvist/kandrc/internal/kandrc/lex"
	"github.com/lindqvist/kandrc/internal/util"
)

// MarshalBinary encodes g so it can be persisted without re-running the DSL
// parse that produced it, the way a host process caches a built automaton
// and table instead of re-synthesizing them on every startup.
func (g Grammar) MarshalBinary() ([]byte, error) {
	var data []byte

	data = append(data, util.EncStringSlice(g.termOrder)...)
	for _, id := range g.termOrder {
		cl := g.terminals[id]
		data = append(data, util.EncString(cl.ID())...)
		data = append(data, util.EncString(cl.Human())...)
	}

	data = append(data, util.EncStringSlice(g.ruleOrder)...)
	for _, nt := range g.ruleOrder {
		rule := g.rules[nt]
		data = append(data, util.EncInt(len(rule.Productions))...)
		for _, prod := range rule.Productions {
			data = append(data, util.EncStringSlice(prod)...)
		}
	}

	data = append(data, util.EncString(g.start)...)

	return data, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into g, replacing
// any existing contents.
func (g *Grammar) UnmarshalBinary(data []byte) error {
	*g = Grammar{}
	g.init()

	termOrder, n, err := util.DecStringSlice(data)
	if err != nil {
		return fmt.Errorf("decoding terminal order: %w", err)
	}
	data = data[n:]

	for _, id := range termOrder {
		classID, n, err := util.DecString(data)
		if err != nil {
			return fmt.Errorf("decoding terminal %q class id: %w", id, err)
		}
		data = data[n:]

		human, n, err := util.DecString(data)
		if err != nil {
			return fmt.Errorf("decoding terminal %q human name: %w", id, err)
		}
		data = data[n:]

		g.AddTerm(id, lex.NewTokenClass(classID, human))
	}

	ruleOrder, n, err := util.DecStringSlice(data)
	if err != nil {
		return fmt.Errorf("decoding rule order: %w", err)
	}
	data = data[n:]

	for _, nt := range ruleOrder {
		prodCount, n, err := util.DecInt(data)
		if err != nil {
			return fmt.Errorf("decoding rule %q production count: %w", nt, err)
		}
		data = data[n:]

		for i := 0; i < prodCount; i++ {
			prod, n, err := util.DecStringSlice(data)
			if err != nil {
				return fmt.Errorf("decoding rule %q production %d: %w", nt, i, err)
			}
			data = data[n:]
			g.AddRule(nt, Production(prod))
		}
	}

	start, _, err := util.DecString(data)
	if err != nil {
		return fmt.Errorf("decoding start symbol: %w", err)
	}
	g.start = start

	return nil
}

// Encode returns the rezi-framed binary encoding of g, suitable for writing
// to a file or other byte-oriented store and later recovered with Decode.
func Encode(g Grammar) []byte {
	return rezi.EncBinary(g)
}

// Decode reverses Encode.
func Decode(data []byte) (Grammar, error) {
	var g Grammar
	n, err := rezi.DecBinary(data, &g)
	if err != nil {
		return Grammar{}, err
	}
	if n != len(data) {
		return Grammar{}, fmt.Errorf("decoded byte count mismatch: consumed %d/%d bytes", n, len(data))
	}
	return g, nil
}
