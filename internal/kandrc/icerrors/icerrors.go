// Package icerrors defines the error types raised by the automaton and parse
// packages.
package icerrors

import "fmt"

// syntaxError is an error encountered while driving the shift-reduce parser
// against a token stream. It carries enough positional detail to render a
// source line and caret, the way a compiler front-end reports it.
type syntaxError struct {
	msg      string
	fullLine string
	line     int
	linePos  int
	lexeme   string
}

func (e *syntaxError) Error() string {
	return e.msg
}

// FullMessage renders the error message followed by the offending source
// line and a caret pointing at the token's position on that line.
func (e *syntaxError) FullMessage() string {
	if e.fullLine == "" {
		return e.msg
	}

	caret := ""
	for i := 1; i < e.linePos; i++ {
		caret += " "
	}
	caret += "^"

	return fmt.Sprintf("%s\nline %d:\n%s\n%s", e.msg, e.line, e.fullLine, caret)
}

// Token is the minimal surface of a lexed token needed to report a syntax
// error against it.
type Token interface {
	Lexeme() string
	Line() int
	LinePos() int
	FullLine() string
}

// NewSyntaxError returns a syntax error with the given message, not
// associated with any particular token.
func NewSyntaxError(msg string) error {
	return &syntaxError{msg: msg}
}

// NewSyntaxErrorFromToken returns a syntax error for msg that occurred at
// tok, with FullMessage able to render the source context around it.
func NewSyntaxErrorFromToken(msg string, tok Token) error {
	return &syntaxError{
		msg:      msg,
		fullLine: tok.FullLine(),
		line:     tok.Line(),
		linePos:  tok.LinePos(),
		lexeme:   tok.Lexeme(),
	}
}

// FullMessage returns the fully-rendered message of err if it is a syntax
// error produced by this package, or err.Error() otherwise.
func FullMessage(err error) string {
	if synErr, ok := err.(*syntaxError); ok {
		return synErr.FullMessage()
	}
	return err.Error()
}

// capacityError is raised when the engine's static limit on the LR(1) state
// count would be exceeded by a grammar.
type capacityError struct {
	msg string
}

func (e *capacityError) Error() string {
	return e.msg
}

// NewCapacityError returns an error reporting that limit was exceeded by
// value, identified by what.
func NewCapacityError(what string, value, limit int) error {
	return &capacityError{
		msg: fmt.Sprintf("%s is %d, exceeding the limit of %d", what, value, limit),
	}
}
