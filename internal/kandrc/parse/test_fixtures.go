package parse

import (
	"github.com/lindqvist/kandrc/internal/kandrc/lex"
	"github.com/lindqvist/kandrc/internal/kandrc/types"
)

// mockTokens builds a token stream out of bare grammar-symbol names, for
// driving a parser built from a grammar.MustParse grammar in tests without
// needing a real lexer. A trailing "$" is optional; NewSliceStream appends
// one if it isn't already there.
func mockTokens(ofTerm ...string) types.TokenStream {
	toks := make([]types.Token, len(ofTerm))
	for i, sym := range ofTerm {
		toks[i] = lex.NewToken(types.MakeDefaultClass(sym), sym, 1, i+1, "")
	}
	return lex.NewSliceStream(toks)
}
