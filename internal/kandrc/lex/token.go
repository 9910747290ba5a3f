package lex

import (
	"fmt"

	"github.com/lindqvist/kandrc/internal/kandrc/types"
)

// implementation of TokenClass interface for lex package use only.
type lexerClass struct {
	id   string
	name string
}

func (lc lexerClass) ID() string {
	return lc.id
}

func (lc lexerClass) Human() string {
	return lc.name
}

func (lc lexerClass) Equal(o any) bool {
	other, ok := o.(types.TokenClass)
	if !ok {
		otherPtr, ok := o.(*types.TokenClass)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return other.ID() == lc.ID()
}

func NewTokenClass(id string, human string) lexerClass {
	return lexerClass{id: id, name: human}
}

// implementation of Token interface for lex package use only
type lexerToken struct {
	class   types.TokenClass
	lexed   string
	linePos int
	lineNum int
	line    string
}

// NewToken builds a concrete Token from scanner output: the class it was
// lexed as, the literal text lexed, and its position in the source (a
// 1-indexed line number and 1-indexed character-of-line), plus the full text
// of the line it appears on for error reporting.
func NewToken(class types.TokenClass, lexeme string, line, linePos int, fullLine string) types.Token {
	return lexerToken{
		class:   class,
		lexed:   lexeme,
		lineNum: line,
		linePos: linePos,
		line:    fullLine,
	}
}

func (lt lexerToken) Class() types.TokenClass {
	return lt.class
}

func (lt lexerToken) Lexeme() string {
	return lt.lexed
}

func (lt lexerToken) LinePos() int {
	return lt.linePos
}

func (lt lexerToken) Line() int {
	return lt.lineNum
}

func (lt lexerToken) FullLine() string {
	return lt.line
}

func (lt lexerToken) String() string {
	return fmt.Sprintf("%s %q@%d:%d", lt.class.ID(), lt.lexed, lt.lineNum, lt.linePos)
}
