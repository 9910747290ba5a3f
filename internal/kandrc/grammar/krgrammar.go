package grammar

import "github.com/lindqvist/kandrc/internal/kandrc/lex"

// kandRTerminals is every terminal symbol of the K&R C grammar (§6), mapped
// to the human-readable form that should appear in error messages. The
// grammar symbol itself (the map key) is what the token adapter (§4.6)
// expects out of a token's Class().ID(), and what a reduce/shift cell in
// the parse table is indexed by.
var kandRTerminals = []struct {
	id    string
	human string
}{
	// punctuators
	{"plus", "+"}, {"inc", "++"}, {"plus-eq", "+="},
	{"minus", "-"}, {"dec", "--"}, {"minus-eq", "-="}, {"arrow", "->"},
	{"star", "*"}, {"star-eq", "*="},
	{"slash", "/"}, {"slash-eq", "/="},
	{"percent", "%"}, {"percent-eq", "%="},
	{"amp", "&"}, {"amp-amp", "&&"},
	{"pipe", "|"}, {"pipe-pipe", "||"},
	{"caret", "^"},
	{"question", "?"}, {"colon", ":"}, {"semi", ";"}, {"comma", ","},
	{"lparen", "("}, {"rparen", ")"},
	{"lbracket", "["}, {"rbracket", "]"},
	{"lbrace", "{"}, {"rbrace", "}"},
	{"assign", "="}, {"eq", "=="}, {"ne", "!="},
	{"lt", "<"}, {"gt", ">"}, {"le", "<="}, {"ge", ">="},
	{"shl", "<<"}, {"shr", ">>"},
	{"ellipsis", "..."},

	// reserved words
	{"void", "void"}, {"char", "char"}, {"short", "short"}, {"int", "int"},
	{"long", "long"}, {"float", "float"}, {"double", "double"},
	{"signed", "signed"}, {"unsigned", "unsigned"},
	{"auto", "auto"}, {"register", "register"}, {"static", "static"},
	{"extern", "extern"}, {"typedef", "typedef"},
	{"goto", "goto"}, {"continue", "continue"}, {"break", "break"}, {"return", "return"},
	{"for", "for"}, {"do", "do"}, {"while", "while"},
	{"if", "if"}, {"else", "else"}, {"switch", "switch"}, {"case", "case"}, {"default", "default"},
	{"enum", "enum"}, {"struct", "struct"}, {"union", "union"},
	{"const", "const"}, {"volatile", "volatile"},

	// literals and identifiers
	{"id", "identifier"}, {"int-const", "integer constant"},
	{"char-const", "character constant"}, {"string-lit", "string literal"},
}

// kandRProductions is the K&R C grammar (§6), written in the textual DSL
// (supplemented feature, SPEC_FULL.md). Three transcription issues noted
// against the source grammar are handled here per §9 (the first two fixed,
// the third kept as is):
//
//   - struct-declaration-list now derives only struct-declaration (the
//     comma-separated declarator forms live under struct-declarator-list,
//     reached through struct-declaration), instead of the source's
//     inconsistent duplicate production.
//   - enum-specifier's braced forms use "rbrace", not the source's
//     transcribed "rbracket".
//   - iteration-statement's for-form still enumerates all eight
//     combinations of its three optional clauses, separated by "semi" as
//     the source grammar does; this is tedious but correct, not a bug.
//
// The dangling-else conflict (selection-statement's two "if" productions)
// is deliberately left in the grammar as ambiguous CFG; it is resolved at
// table-synthesis time by write order (parse/table.go), not here.
//
// This grammar omits "sizeof", "!", "~", and the bitwise-or/and/xor compound
// assignment operators found in the full ANSI C grammar, because none of
// those tokens appear in the terminal alphabet of §6.
const kandRProductions = `
translation-unit -> external-declaration
                   | translation-unit external-declaration ;

external-declaration -> function-definition
                       | declaration ;

function-definition -> declaration-specifiers declarator declaration-list compound-statement
                      | declaration-specifiers declarator compound-statement
                      | declarator declaration-list compound-statement
                      | declarator compound-statement ;

declaration -> declaration-specifiers semi
             | declaration-specifiers init-declarator-list semi ;

declaration-list -> declaration
                   | declaration-list declaration ;

declaration-specifiers -> storage-class-specifier
                         | storage-class-specifier declaration-specifiers
                         | type-specifier
                         | type-specifier declaration-specifiers
                         | type-qualifier
                         | type-qualifier declaration-specifiers ;

storage-class-specifier -> auto | register | static | extern | typedef ;

type-specifier -> void | char | short | int | long | float | double | signed | unsigned
                 | struct-or-union-specifier
                 | enum-specifier ;

type-qualifier -> const | volatile ;

struct-or-union-specifier -> struct-or-union id lbrace struct-declaration-list rbrace
                            | struct-or-union lbrace struct-declaration-list rbrace
                            | struct-or-union id ;

struct-or-union -> struct | union ;

struct-declaration-list -> struct-declaration
                          | struct-declaration-list struct-declaration ;

struct-declaration -> specifier-qualifier-list struct-declarator-list semi ;

specifier-qualifier-list -> type-specifier specifier-qualifier-list
                           | type-specifier
                           | type-qualifier specifier-qualifier-list
                           | type-qualifier ;

struct-declarator-list -> struct-declarator
                         | struct-declarator-list comma struct-declarator ;

struct-declarator -> declarator
                    | declarator colon constant-expression
                    | colon constant-expression ;

enum-specifier -> enum id lbrace enumerator-list rbrace
                 | enum lbrace enumerator-list rbrace
                 | enum id ;

enumerator-list -> enumerator
                  | enumerator-list comma enumerator ;

enumerator -> id
            | id assign constant-expression ;

declarator -> pointer direct-declarator
            | direct-declarator ;

direct-declarator -> id
                    | lparen declarator rparen
                    | direct-declarator lbracket constant-expression rbracket
                    | direct-declarator lbracket rbracket
                    | direct-declarator lparen parameter-type-list rparen
                    | direct-declarator lparen identifier-list rparen
                    | direct-declarator lparen rparen ;

pointer -> star type-qualifier-list
         | star
         | star type-qualifier-list pointer
         | star pointer ;

type-qualifier-list -> type-qualifier
                      | type-qualifier-list type-qualifier ;

parameter-type-list -> parameter-list
                      | parameter-list comma ellipsis ;

parameter-list -> parameter-declaration
                 | parameter-list comma parameter-declaration ;

parameter-declaration -> declaration-specifiers declarator
                        | declaration-specifiers abstract-declarator
                        | declaration-specifiers ;

identifier-list -> id
                  | identifier-list comma id ;

type-name -> specifier-qualifier-list
           | specifier-qualifier-list abstract-declarator ;

abstract-declarator -> pointer
                      | direct-abstract-declarator
                      | pointer direct-abstract-declarator ;

direct-abstract-declarator -> lparen abstract-declarator rparen
                             | direct-abstract-declarator lbracket constant-expression rbracket
                             | lbracket constant-expression rbracket
                             | direct-abstract-declarator lbracket rbracket
                             | lbracket rbracket
                             | direct-abstract-declarator lparen parameter-type-list rparen
                             | lparen parameter-type-list rparen
                             | direct-abstract-declarator lparen rparen
                             | lparen rparen ;

initializer -> assignment-expression
             | lbrace initializer-list rbrace
             | lbrace initializer-list comma rbrace ;

initializer-list -> initializer
                   | initializer-list comma initializer ;

init-declarator-list -> init-declarator
                       | init-declarator-list comma init-declarator ;

init-declarator -> declarator
                  | declarator assign initializer ;

statement -> labeled-statement
           | compound-statement
           | expression-statement
           | selection-statement
           | iteration-statement
           | jump-statement ;

labeled-statement -> id colon statement
                    | case constant-expression colon statement
                    | default colon statement ;

compound-statement -> lbrace rbrace
                     | lbrace statement-list rbrace
                     | lbrace declaration-list rbrace
                     | lbrace declaration-list statement-list rbrace ;

statement-list -> statement
                 | statement-list statement ;

expression-statement -> semi
                       | expression semi ;

selection-statement -> if lparen expression rparen statement
                      | if lparen expression rparen statement else statement
                      | switch lparen expression rparen statement ;

iteration-statement -> while lparen expression rparen statement
                      | do statement while lparen expression rparen semi
                      | for lparen semi semi rparen statement
                      | for lparen expression semi semi rparen statement
                      | for lparen semi expression semi rparen statement
                      | for lparen semi semi expression rparen statement
                      | for lparen expression semi expression semi rparen statement
                      | for lparen expression semi semi expression rparen statement
                      | for lparen semi expression semi expression rparen statement
                      | for lparen expression semi expression semi expression rparen statement ;

jump-statement -> goto id semi
                 | continue semi
                 | break semi
                 | return semi
                 | return expression semi ;

expression -> assignment-expression
            | expression comma assignment-expression ;

assignment-expression -> conditional-expression
                        | unary-expression assignment-operator assignment-expression ;

assignment-operator -> assign | plus-eq | minus-eq | star-eq | slash-eq | percent-eq ;

conditional-expression -> logical-or-expression
                         | logical-or-expression question expression colon conditional-expression ;

constant-expression -> conditional-expression ;

logical-or-expression -> logical-and-expression
                        | logical-or-expression pipe-pipe logical-and-expression ;

logical-and-expression -> inclusive-or-expression
                         | logical-and-expression amp-amp inclusive-or-expression ;

inclusive-or-expression -> exclusive-or-expression
                          | inclusive-or-expression pipe exclusive-or-expression ;

exclusive-or-expression -> and-expression
                          | exclusive-or-expression caret and-expression ;

and-expression -> equality-expression
                 | and-expression amp equality-expression ;

equality-expression -> relational-expression
                      | equality-expression eq relational-expression
                      | equality-expression ne relational-expression ;

relational-expression -> shift-expression
                        | relational-expression lt shift-expression
                        | relational-expression gt shift-expression
                        | relational-expression le shift-expression
                        | relational-expression ge shift-expression ;

shift-expression -> additive-expression
                   | shift-expression shl additive-expression
                   | shift-expression shr additive-expression ;

additive-expression -> multiplicative-expression
                      | additive-expression plus multiplicative-expression
                      | additive-expression minus multiplicative-expression ;

multiplicative-expression -> cast-expression
                            | multiplicative-expression star cast-expression
                            | multiplicative-expression slash cast-expression
                            | multiplicative-expression percent cast-expression ;

cast-expression -> unary-expression
                  | lparen type-name rparen cast-expression ;

unary-expression -> postfix-expression
                   | inc unary-expression
                   | dec unary-expression
                   | unary-operator cast-expression ;

unary-operator -> amp | star | plus | minus ;

postfix-expression -> primary-expression
                     | postfix-expression lbracket expression rbracket
                     | postfix-expression lparen rparen
                     | postfix-expression lparen argument-expression-list rparen
                     | postfix-expression arrow id
                     | postfix-expression inc
                     | postfix-expression dec ;

argument-expression-list -> assignment-expression
                           | argument-expression-list comma assignment-expression ;

primary-expression -> id
                     | int-const
                     | char-const
                     | string-lit
                     | lparen expression rparen ;
`

// KandRC returns the K&R C grammar (§6): 207 productions over the terminal
// alphabet above, with translation-unit as its start symbol.
func KandRC() Grammar {
	g := Grammar{}
	for _, t := range kandRTerminals {
		g.AddTerm(t.id, lex.NewTokenClass(t.id, t.human))
	}

	// The terminal alphabet of §6 has no "." token, only "->"; K&R C's
	// struct member-access-by-value form (x.y) is therefore not
	// representable and postfix-expression only derives the pointer form.

	g, err := ParseWith(g, kandRProductions)
	if err != nil {
		panic("kandrc: static grammar failed to parse: " + err.Error())
	}
	return g
}
