package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Token_String(t *testing.T) {
	assert := assert.New(t)

	tok := NewToken(NewTokenClass("id", "identifier"), "foo", 2, 4, "  foo = 1;")

	assert.Equal(`id "foo"@2:4`, tok.String())
}

func Test_TokenClass_Equal(t *testing.T) {
	assert := assert.New(t)

	a := NewTokenClass("semi", ";")
	b := NewTokenClass("semi", ";")
	c := NewTokenClass("comma", ",")

	assert.True(a.Equal(b))
	assert.False(a.Equal(c))
}
