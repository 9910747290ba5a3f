package parse

import (
	"testing"

	"github.com/lindqvist/kandrc/internal/kandrc/automaton"
	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/stretchr/testify/assert"
)

// Test_Encode_Decode_roundTrip checks that a table built once, persisted,
// and reloaded parses identically to the original, the round trip a host
// process relies on to cache a built table instead of re-synthesizing it on
// every startup.
func Test_Encode_Decode_roundTrip(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> C C ;
		C -> c C | d ;
	`)

	sm, err := automaton.Build(g)
	assert.NoError(err)

	orig, err := Synthesize(sm)
	assert.NoError(err)

	data := Encode(orig)

	got, err := Decode(data)
	assert.NoError(err)

	assert.Equal(orig.Start, got.Start)
	assert.Equal(orig.Symbols.symbols, got.Symbols.symbols)
	assert.Equal(orig.Symbols.numTerminals, got.Symbols.numTerminals)

	parser := New(got)
	stream := mockTokens("c", "c", "d", "d")
	tree, err := parser.Parse(stream)
	assert.NoError(err)

	expect := `( S )
  |---: ( C )
  |       |---: (TERM "c")
  |       \---: ( C )
  |               |---: (TERM "c")
  |               \---: ( C )
  |                       \---: (TERM "d")
  \---: ( C )
          \---: (TERM "d")`

	assert.Equal(expect, tree.String())
}
