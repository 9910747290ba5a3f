package lex

import (
	"testing"

	"github.com/lindqvist/kandrc/internal/kandrc/types"
	"github.com/stretchr/testify/assert"
)

func Test_ToLeaf(t *testing.T) {
	assert := assert.New(t)

	cls := NewTokenClass("id", "identifier")
	tok := NewToken(cls, "foo", 1, 1, "foo = 1;")

	leaf := ToLeaf(tok)

	assert.True(leaf.Terminal)
	assert.Equal("id", leaf.Value)
	assert.Equal(tok, leaf.Source)
}

func Test_NewSliceStream_appendsEndOfInput(t *testing.T) {
	assert := assert.New(t)

	toks := []types.Token{
		NewToken(NewTokenClass("id", "identifier"), "x", 1, 1, "x ;"),
		NewToken(NewTokenClass("semi", ";"), ";", 1, 2, "x ;"),
	}

	stream := NewSliceStream(toks)

	first := stream.Next()
	assert.Equal("id", first.Class().ID())

	second := stream.Next()
	assert.Equal("semi", second.Class().ID())

	assert.True(stream.HasNext() == false || stream.Peek().Class().ID() == types.TokenEndOfText.ID())

	end := stream.Next()
	assert.Equal(types.TokenEndOfText.ID(), end.Class().ID())
}

func Test_NewSliceStream_doesNotDuplicateExistingEndOfInput(t *testing.T) {
	assert := assert.New(t)

	toks := []types.Token{
		NewToken(NewTokenClass("id", "identifier"), "x", 1, 1, "x"),
		NewToken(types.TokenEndOfText, "", 1, 2, "x"),
	}

	stream := NewSliceStream(toks)

	stream.Next()
	end := stream.Next()
	assert.Equal(types.TokenEndOfText.ID(), end.Class().ID())
	assert.False(stream.HasNext())
}
