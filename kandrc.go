// Package kandrc parses K&R C source, tokenized elsewhere, into a concrete
// syntax tree using a canonical LR(1) bottom-up parser built once from the
// language's static grammar.
package kandrc

import (
	"sync"

	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/lindqvist/kandrc/internal/kandrc/parse"
	"github.com/lindqvist/kandrc/internal/kandrc/types"
)

var (
	engineOnce sync.Once
	engine     *parse.Parser
	engineErr  error
)

func sharedParser() (*parse.Parser, error) {
	engineOnce.Do(func() {
		engine, engineErr = parse.GenerateCanonicalLR1Parser(grammar.KandRC())
	})
	return engine, engineErr
}

// Parse drives the canonical LR(1) parser for K&R C over stream and returns
// the concrete syntax tree rooted at translation-unit. The caller supplies
// stream; lexing and the token-to-terminal mapping are the lexer's and
// lex.ToLeaf's responsibility respectively, not this package's.
func Parse(stream types.TokenStream) (*types.ParseTree, error) {
	p, err := sharedParser()
	if err != nil {
		return nil, err
	}
	return p.Parse(stream)
}

// RegisterTraceListener installs fn to receive one line of trace output per
// token read and per shift, reduce, and goto the shared parser performs. Building the shared
// parser first if necessary; an error from that build is silently dropped
// here and surfaced instead on the next call to Parse.
func RegisterTraceListener(fn func(string)) {
	if p, err := sharedParser(); err == nil {
		p.RegisterTraceListener(fn)
	}
}
