package parse

import (
	"testing"

	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_GenerateCanonicalLR1Parser_expressionPrecedence(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		E -> E plus T | T ;
		T -> T star F | F ;
		F -> lparen E rparen | id ;
	`)

	parser, err := GenerateCanonicalLR1Parser(g)
	assert.NoError(err)

	stream := mockTokens("id", "star", "id", "plus", "id")
	tree, err := parser.Parse(stream)
	assert.NoError(err)

	expect := `( E )
  |---: ( E )
  |       \---: ( T )
  |               |---: ( T )
  |               |       \---: ( F )
  |               |               \---: (TERM "id")
  |               |---: (TERM "star")
  |               \---: ( F )
  |                       \---: (TERM "id")
  |---: (TERM "plus")
  \---: ( T )
          \---: ( F )
                  \---: (TERM "id")`

	assert.Equal(expect, tree.String())
}

func Test_GenerateCanonicalLR1Parser_danglingElseShiftsRatherThanReduces(t *testing.T) {
	assert := assert.New(t)

	// A minimal grammar with the classic dangling-else shape: "if e if e
	// stmt else stmt" must attach the else to the innermost if, which
	// requires the parser to shift "else" rather than reduce the
	// unterminated if at the point of ambiguity.
	g := grammar.MustParse(`
		stmt -> if expr stmt
		      | if expr stmt else stmt
		      | other ;
	`)

	parser, err := GenerateCanonicalLR1Parser(g)
	assert.NoError(err)

	stream := mockTokens("if", "expr", "if", "expr", "other", "else", "other")
	tree, err := parser.Parse(stream)
	assert.NoError(err)

	expect := `( stmt )
  |---: (TERM "if")
  |---: (TERM "expr")
  \---: ( stmt )
          |---: (TERM "if")
          |---: (TERM "expr")
          |---: ( stmt )
          |       \---: (TERM "other")
          |---: (TERM "else")
          \---: ( stmt )
                  \---: (TERM "other")`

	assert.Equal(expect, tree.String())
}

func Test_GenerateCanonicalLR1Parser_rejectsUnexpectedToken(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> a b ;
	`)

	parser, err := GenerateCanonicalLR1Parser(g)
	assert.NoError(err)

	stream := mockTokens("a", "a")
	_, err = parser.Parse(stream)
	assert.Error(err)
}

func Test_Synthesize_purpleDragonExample445(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(`
		S -> C C ;
		C -> c C | d ;
	`)

	parser, err := GenerateCanonicalLR1Parser(g)
	assert.NoError(err)

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
