package parse

import (
	"fmt"

	"github.com/lindqvist/kandrc/internal/kandrc/icerrors"
	"github.com/lindqvist/kandrc/internal/kandrc/lex"
	"github.com/lindqvist/kandrc/internal/kandrc/types"
	"github.com/lindqvist/kandrc/internal/util"
)

// frame is one entry of the parser's stack: a parse-tree node paired with
// the automaton state the parser moved to when it was pushed. The bottom
// frame (pushed before any input is read) has a nil node.
type frame struct {
	node  *types.ParseTree
	state int
}

// Parser drives a synthesized Table over a token stream to build a single
// concrete syntax tree (§4.5).
type Parser struct {
	table *Table
	trace func(string)
}

// New returns a parser driven by table.
func New(table *Table) *Parser {
	return &Parser{table: table}
}

// RegisterTraceListener installs fn to receive one line of trace output per
// token read and per shift, reduce, and goto the driver performs. Passing nil
// disables tracing.
func (p *Parser) RegisterTraceListener(fn func(string)) {
	p.trace = fn
}

func (p *Parser) notifyf(format string, args ...interface{}) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}

// Parse consumes stream and returns the concrete syntax tree rooted at the
// grammar's start symbol. Parsing halts with an error on the first token
// with no valid action; there is no error-recovery pass (§4.5, Non-goals).
func (p *Parser) Parse(stream types.TokenStream) (*types.ParseTree, error) {
	stack := util.Stack[frame]{}
	stack.Push(frame{state: p.table.Start})

	a := stream.Next()
	p.notifyf("next token: %s", a.String())

	for {
		s := stack.Peek().state
		act := p.table.Action(s, a.Class().ID())

		switch act.Type {
		case ActionShift:
			p.notifyf("shift %d on %q", act.State, a.Class().ID())
			stack.Push(frame{node: lex.ToLeaf(a), state: act.State})
			a = stream.Next()
			p.notifyf("next token: %s", a.String())

		case ActionReduce:
			p.notifyf("reduce %s -> %s", act.Symbol, act.Production.String())

			node := &types.ParseTree{Value: act.Symbol}
			node.Children = make([]*types.ParseTree, len(act.Production))
			for i := len(act.Production) - 1; i >= 0; i-- {
				node.Children[i] = stack.Pop().node
			}

			t := stack.Peek().state
			toState, err := p.table.Goto(t, act.Symbol)
			if err != nil {
				return nil, icerrors.NewSyntaxErrorFromToken(
					fmt.Sprintf("no transition from state %d on %q", t, act.Symbol), a)
			}
			p.notifyf("goto %d on %q", toState, act.Symbol)
			stack.Push(frame{node: node, state: toState})

		case ActionAccept:
			return stack.Peek().node, nil

		default:
			return nil, icerrors.NewSyntaxErrorFromToken(
				fmt.Sprintf("unexpected %s in state %d; %s", a.Class().Human(), s, p.expectedString(s)), a)
		}
	}
}

// expectedString lists every terminal with a non-error action in state, for
// use in the syntax error raised when none of them match the lookahead.
func (p *Parser) expectedString(state int) string {
	var expected []types.TokenClass
	for _, id := range p.table.Grammar.Terminals() {
		cl, _ := p.table.Grammar.Term(id)
		if p.table.Action(state, id).Type != ActionError {
			expected = append(expected, cl)
		}
	}

	if len(expected) == 0 {
		return "no valid continuation in this state"
	}

	names := make([]string, len(expected))
	for i := range expected {
		names[i] = expected[i].Human()
	}

	return "expected " + util.MakeTextList(names)
}
