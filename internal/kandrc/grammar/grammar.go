// Package grammar holds the static definition of a context-free grammar:
// its terminals (token classes supplied by the lexer), its non-terminals and
// their productions, and FIRST-set computation over them.
package grammar

import (
	"fmt"
	"strings"

	"github.com/lindqvist/kandrc/internal/kandrc/types"
	"github.com/lindqvist/kandrc/internal/util"
)

// AugmentedStart is the synthetic non-terminal introduced by Augmented to
// give the state machine builder a single, unambiguous start item.
const AugmentedStart = "$start"

// Production is the right-hand side of a rule: an ordered sequence of grammar
// symbols. An empty Production is never used by this grammar (see FIRST).
type Production []string

func (p Production) String() string {
	if len(p) == 0 {
		return "ε"
	}
	return strings.Join(p, " ")
}

func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Rule is every production registered for a single non-terminal.
type Rule struct {
	NonTerminal string
	Productions []Production
}

func (r Rule) String() string {
	alts := make([]string, len(r.Productions))
	for i := range r.Productions {
		alts[i] = r.Productions[i].String()
	}
	return fmt.Sprintf("%s -> %s", r.NonTerminal, strings.Join(alts, " | "))
}

func (r Rule) Equal(o Rule) bool {
	if r.NonTerminal != o.NonTerminal {
		return false
	}
	if len(r.Productions) != len(o.Productions) {
		return false
	}
	for i := range r.Productions {
		if !r.Productions[i].Equal(o.Productions[i]) {
			return false
		}
	}
	return true
}

// Grammar is a mutable builder for, and then the static holder of, a
// context-free grammar. The zero value is ready to use.
type Grammar struct {
	rules     map[string]Rule
	ruleOrder []string

	terminals map[string]types.TokenClass
	termOrder []string

	start string
}

func (g *Grammar) init() {
	if g.rules == nil {
		g.rules = map[string]Rule{}
	}
	if g.terminals == nil {
		g.terminals = map[string]types.TokenClass{}
	}
}

// AddTerm registers a terminal symbol with the token class the lexer will
// report it under. id is the grammar-facing symbol name.
func (g *Grammar) AddTerm(id string, class types.TokenClass) {
	g.init()
	if _, already := g.terminals[id]; !already {
		g.termOrder = append(g.termOrder, id)
	}
	g.terminals[id] = class
}

// AddRule adds one alternative production to the rule for nonTerminal,
// creating the rule if this is its first production. The non-terminal named
// in the very first call to AddRule becomes the grammar's start symbol.
func (g *Grammar) AddRule(nonTerminal string, production Production) {
	g.init()

	r, exists := g.rules[nonTerminal]
	if !exists {
		r = Rule{NonTerminal: nonTerminal}
		g.ruleOrder = append(g.ruleOrder, nonTerminal)
		if g.start == "" {
			g.start = nonTerminal
		}
	}
	r.Productions = append(r.Productions, production)
	g.rules[nonTerminal] = r
}

// Rule returns the registered productions for the given non-terminal, or the
// zero Rule if none have been registered.
func (g Grammar) Rule(nonTerminal string) Rule {
	return g.rules[nonTerminal]
}

// NonTerminals returns every non-terminal with at least one registered
// production, in the order rules were first added.
func (g Grammar) NonTerminals() []string {
	nts := make([]string, len(g.ruleOrder))
	copy(nts, g.ruleOrder)
	return nts
}

// Terminals returns every registered terminal symbol, in the order they were
// added.
func (g Grammar) Terminals() []string {
	ts := make([]string, len(g.termOrder))
	copy(ts, g.termOrder)
	return ts
}

// Term returns the token class registered for terminal id.
func (g Grammar) Term(id string) (types.TokenClass, bool) {
	cl, ok := g.terminals[id]
	return cl, ok
}

// TermFor returns the grammar symbol registered for the given token class's
// ID, which is how the token adapter (§4.6) maps a lexed token to a
// terminal symbol.
func (g Grammar) TermFor(class types.TokenClass) (string, bool) {
	for _, id := range g.termOrder {
		if g.terminals[id].Equal(class) {
			return id, true
		}
	}
	return "", false
}

// StartSymbol is the non-terminal named in the first call to AddRule.
func (g Grammar) StartSymbol() string {
	return g.start
}

// IsTerminal reports whether sym is a registered terminal, or the
// end-of-input sentinel. Every other symbol is assumed to be a non-terminal;
// by occurrence rather than by spelling convention, since the K&R grammar's
// non-terminal names (translation-unit, direct-declarator, ...) carry no
// case marker the way the generic toolkit this is adapted from assumes.
func (g Grammar) IsTerminal(sym string) bool {
	if sym == types.TokenEndOfText.ID() {
		return true
	}
	_, ok := g.terminals[sym]
	return ok
}

// IsNonTerminal reports whether sym has at least one registered production.
func (g Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

// Validate checks that the grammar is minimally well-formed: it has at least
// one terminal, at least one rule, a start symbol with a registered rule,
// and every symbol referenced on a right-hand side is either a known
// terminal or a non-terminal with its own rule.
func (g Grammar) Validate() error {
	if len(g.terminals) == 0 {
		return fmt.Errorf("grammar has no terminals defined")
	}
	if len(g.rules) == 0 {
		return fmt.Errorf("grammar has no rules defined")
	}
	if g.start == "" || g.rules[g.start].NonTerminal == "" {
		return fmt.Errorf("grammar has no valid start symbol")
	}

	for _, nt := range g.ruleOrder {
		rule := g.rules[nt]
		for _, prod := range rule.Productions {
			if len(prod) == 0 {
				return fmt.Errorf("rule %q has an empty production; this grammar does not support epsilon productions", nt)
			}
			for _, sym := range prod {
				if g.IsTerminal(sym) {
					continue
				}
				if _, ok := g.rules[sym]; !ok {
					return fmt.Errorf("rule %q references undefined symbol %q", nt, sym)
				}
			}
		}
	}

	return nil
}

// Augmented returns a copy of g with a synthetic start rule
// $start -> StartSymbol() prepended, the conventional trick that gives the
// canonical LR(1) state machine a single unambiguous start item and a clean
// accept condition (reducing $start is the only way to finish).
func (g Grammar) Augmented() Grammar {
	aug := g.Copy()

	if _, exists := aug.rules[AugmentedStart]; exists {
		return aug
	}

	old := aug.start
	aug.start = AugmentedStart
	aug.ruleOrder = append([]string{AugmentedStart}, aug.ruleOrder...)
	aug.rules[AugmentedStart] = Rule{
		NonTerminal: AugmentedStart,
		Productions: []Production{{old}},
	}

	return aug
}

// Copy returns a deep copy of the grammar.
func (g Grammar) Copy() Grammar {
	cp := Grammar{}
	cp.init()

	cp.termOrder = append(cp.termOrder, g.termOrder...)
	for k, v := range g.terminals {
		cp.terminals[k] = v
	}

	cp.ruleOrder = append(cp.ruleOrder, g.ruleOrder...)
	for k, r := range g.rules {
		newProds := make([]Production, len(r.Productions))
		for i, p := range r.Productions {
			newProds[i] = append(Production{}, p...)
		}
		cp.rules[k] = Rule{NonTerminal: r.NonTerminal, Productions: newProds}
	}

	cp.start = g.start

	return cp
}

// FIRST returns the set of terminals that may begin some derivation of sym.
// If sym is itself a terminal, FIRST(sym) = {sym}. The grammar has no
// epsilon productions (§4.1), so FIRST need not propagate through nullable
// prefixes: a production's FIRST contribution is entirely determined by its
// first symbol.
func (g Grammar) FIRST(sym string) util.StringSet {
	return g.first(sym, util.StringSet{})
}

func (g Grammar) first(sym string, visiting util.StringSet) util.StringSet {
	if g.IsTerminal(sym) {
		return util.StringSetOf([]string{sym})
	}

	result := util.StringSet{}

	if visiting.Has(sym) {
		// Cycle detected (left recursion through sym); re-entry contributes
		// nothing further, breaking the cycle per §4.1.
		return result
	}

	visiting = visiting.Copy()
	visiting.Add(sym)

	rule, ok := g.rules[sym]
	if !ok {
		return result
	}

	for _, prod := range rule.Productions {
		if len(prod) == 0 {
			continue
		}
		head := prod[0]
		if g.IsTerminal(head) {
			result.Add(head)
		} else if head != sym {
			result.AddAll(g.first(head, visiting))
		}
	}

	return result
}

// FIRSTOfSequence returns FIRST(syms[0]...) for a non-empty sequence of
// grammar symbols. Since this grammar has no epsilon productions, that is
// simply FIRST of the first symbol: no symbol in the sequence can derive
// empty, so nothing past syms[0] can ever contribute to the lookahead.
func (g Grammar) FIRSTOfSequence(syms []string) util.StringSet {
	if len(syms) == 0 {
		return util.StringSet{}
	}
	return g.FIRST(syms[0])
}

func (g Grammar) String() string {
	var sb strings.Builder
	for _, nt := range g.ruleOrder {
		sb.WriteString(g.rules[nt].String())
		sb.WriteRune('\n')
	}
	return sb.String()
}
