package icerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeToken struct {
	lexeme   string
	line     int
	linePos  int
	fullLine string
}

func (f fakeToken) Lexeme() string   { return f.lexeme }
func (f fakeToken) Line() int        { return f.line }
func (f fakeToken) LinePos() int     { return f.linePos }
func (f fakeToken) FullLine() string { return f.fullLine }

func Test_NewSyntaxErrorFromToken_FullMessage(t *testing.T) {
	assert := assert.New(t)

	tok := fakeToken{lexeme: "}", line: 3, linePos: 5, fullLine: "    if (x) {"}
	err := NewSyntaxErrorFromToken(`unexpected "}"`, tok)

	assert.Equal(`unexpected "}"`, err.Error())
	assert.Equal("unexpected \"}\"\nline 3:\n    if (x) {\n    ^", FullMessage(err))
}

func Test_NewSyntaxError_hasNoSourceContext(t *testing.T) {
	assert := assert.New(t)

	err := NewSyntaxError("grammar has no start symbol")

	assert.Equal("grammar has no start symbol", FullMessage(err))
}

func Test_NewCapacityError(t *testing.T) {
	assert := assert.New(t)

	err := NewCapacityError("LR(1) state count", 100001, 100000)

	assert.Contains(err.Error(), "LR(1) state count")
	assert.Contains(err.Error(), "100001")
	assert.Contains(err.Error(), "100000")
}
