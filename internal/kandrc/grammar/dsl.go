package grammar

import (
	"fmt"
	"strings"

	"github.com/lindqvist/kandrc/internal/kandrc/types"
)

// Parse reads a grammar from a small textual DSL and returns it, with every
// terminal it mentions registered.
//
// The DSL is line-oriented: each rule is one or more lines of the form
//
//	nonterminal -> alt1 symbol | alt2 symbol symbol ;
//
// with alternatives separated by "|" and terminated by a literal ";". A rule
// may span several physical lines; only the trailing ";" ends it. Symbols
// are whitespace-separated tokens. Any symbol that never appears as the
// left-hand side of a rule is treated as a terminal and auto-registered
// with a default token class (see types.MakeDefaultClass), unless it was
// already registered in the base grammar given to ParseWith.
func Parse(src string) (Grammar, error) {
	return ParseWith(Grammar{}, src)
}

// MustParse is like Parse but panics on error. Used pervasively in tests to
// build small example grammars inline.
func MustParse(src string) Grammar {
	g, err := Parse(src)
	if err != nil {
		panic(err.Error())
	}
	return g
}

// ParseWith is like Parse but starts from base (typically a grammar that
// already has its terminals registered with real token classes), adding
// rules parsed from src on top of it.
func ParseWith(base Grammar, src string) (Grammar, error) {
	g := base.Copy()

	rawRules, err := splitRules(src)
	if err != nil {
		return g, err
	}

	type parsedRule struct {
		nt   string
		alts []Production
	}
	var parsed []parsedRule
	lhsSeen := map[string]bool{}

	for _, raw := range rawRules {
		sides := strings.SplitN(raw, "->", 2)
		if len(sides) != 2 {
			return g, fmt.Errorf("grammar dsl: rule missing '->': %q", raw)
		}

		nt := strings.TrimSpace(sides[0])
		if nt == "" {
			return g, fmt.Errorf("grammar dsl: rule has empty left-hand side: %q", raw)
		}
		lhsSeen[nt] = true

		var alts []Production
		for _, altStr := range strings.Split(sides[1], "|") {
			fields := strings.Fields(altStr)
			if len(fields) == 0 {
				return g, fmt.Errorf("grammar dsl: empty production for %q (epsilon is not supported)", nt)
			}
			alts = append(alts, Production(fields))
		}

		parsed = append(parsed, parsedRule{nt: nt, alts: alts})
	}

	// Any symbol used on a right-hand side that is never a left-hand side is
	// a terminal; register it (if not already known) before adding rules, so
	// AddRule/IsTerminal classification is stable regardless of rule order.
	for _, r := range parsed {
		for _, alt := range r.alts {
			for _, sym := range alt {
				if lhsSeen[sym] {
					continue
				}
				if sym == types.TokenEndOfText.ID() {
					continue
				}
				if _, known := g.Term(sym); known {
					continue
				}
				g.AddTerm(sym, types.MakeDefaultClass(sym))
			}
		}
	}

	for _, r := range parsed {
		for _, alt := range r.alts {
			g.AddRule(r.nt, alt)
		}
	}

	return g, nil
}

// splitRules breaks src into one raw string per rule, delimited by ";".
func splitRules(src string) ([]string, error) {
	var rules []string

	for _, part := range strings.Split(src, ";") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		rules = append(rules, trimmed)
	}

	return rules, nil
}
