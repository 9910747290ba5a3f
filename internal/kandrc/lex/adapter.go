package lex

import "github.com/lindqvist/kandrc/internal/kandrc/types"

// ToLeaf adapts a single lexed token into a terminal parse-tree node, the
// one-to-one mapping described as the token adapter: the grammar symbol is
// the token's class ID, and the token itself is retained on the node for
// source location and literal text.
func ToLeaf(tok types.Token) *types.ParseTree {
	return &types.ParseTree{
		Terminal: true,
		Value:    tok.Class().ID(),
		Source:   tok,
	}
}

// sliceStream is a TokenStream over an in-memory slice of tokens, terminated
// implicitly by types.TokenEndOfText once exhausted. Used to drive the
// parser in tests and by any caller that already has a fully-lexed token
// slice rather than a lazy stream.
type sliceStream struct {
	toks []types.Token
	pos  int
	end  types.Token
}

// NewSliceStream returns a TokenStream over toks. If the last token in toks
// is not already of the end-of-input class, an end-of-input token is
// appended so the stream always terminates with $.
func NewSliceStream(toks []types.Token) types.TokenStream {
	s := &sliceStream{toks: toks}
	if len(toks) == 0 || toks[len(toks)-1].Class().ID() != types.TokenEndOfText.ID() {
		s.end = NewToken(types.TokenEndOfText, "", 0, 0, "")
	} else {
		s.end = toks[len(toks)-1]
		s.toks = toks[:len(toks)-1]
	}
	return s
}

func (s *sliceStream) Next() types.Token {
	t := s.Peek()
	if s.pos < len(s.toks) {
		s.pos++
	}
	return t
}

func (s *sliceStream) Peek() types.Token {
	if s.pos >= len(s.toks) {
		return s.end
	}
	return s.toks[s.pos]
}

func (s *sliceStream) HasNext() bool {
	return s.pos < len(s.toks)
}
