package types

// TokenStream feeds the shift-reduce driver one token at a time. A real
// lexer can implement this lazily over source text; lex.NewSliceStream
// implements it eagerly over an in-memory slice for tests and for callers
// that already have a fully-lexed token list.
type TokenStream interface {
	// Next returns the next token in the stream and advances the stream by
	// one token.
	Next() Token

	// Peek returns the next token in the stream without advancing it.
	Peek() Token

	// HasNext reports whether the stream has any tokens left before the
	// end-of-input sentinel.
	HasNext() bool
}
