package types

import "strings"

// TokenClass is a terminal symbol as the lexer reports it: the grammar-facing
// ID a shift/reduce/goto cell is indexed by, plus a human name for error
// messages. A lexer producing tokens for this engine supplies its own
// concrete implementation; the parser only ever calls through this
// interface.
type TokenClass interface {
	// ID returns the grammar symbol this class stands for. It must be unique
	// across every terminal of the grammar being parsed, since parse.Table
	// looks up action columns by this value.
	ID() string

	// Human returns a human-readable name for the token class, for use in
	// contexts such as error reporting.
	Human() string

	// Equal reports whether two classes name the same terminal. Two classes
	// with equal IDs must always compare equal; ID alone is what the parse
	// table keys on, so Equal must never be stricter than that.
	Equal(o any) bool
}

// simpleTokenClass is the minimal concrete TokenClass backing
// MakeDefaultClass: a terminal whose ID is its lower-cased spelling and
// whose human name is the spelling as given. Used for ad-hoc terminals in
// grammars built from the textual DSL, where no lexer-specific class is
// needed.
type simpleTokenClass string

func (class simpleTokenClass) ID() string {
	return strings.ToLower(string(class))
}

func (class simpleTokenClass) Human() string {
	return string(class)
}

func (class simpleTokenClass) Equal(o any) bool {
	other, ok := o.(TokenClass)
	if !ok {
		otherPtr, ok := o.(*TokenClass)
		if !ok {
			return false
		}
		if otherPtr == nil {
			return false
		}
		other = *otherPtr
	}

	return other.ID() == class.ID()
}

// TokenEndOfText is the sentinel terminal ("$") marking the end of the token
// stream. Every parse table reserves a column for it regardless of whether
// the grammar's own terminal set mentions it, and the accept action is
// always keyed on it.
const TokenEndOfText = simpleTokenClass("$")

// MakeDefaultClass takes a string and returns a TokenClass using the
// lower-case version of the string as its ID and the un-modified string as
// its human-readable name.
func MakeDefaultClass(s string) TokenClass {
	return simpleTokenClass(s)
}
