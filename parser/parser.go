package parser

import (
	"strings"

	"github.com/xiam/suokif/ast"
	"github.com/xiam/suokif/lexer"
)

// frame is an open list. It owns its children until it is closed and handed
// to the enclosing frame.
type frame struct {
	start    int
	pending  ast.OperatorKind
	children []*ast.Node
}

type parser struct {
	in    string
	stack []*frame
}

func newParser(in string) *parser {
	return &parser{
		in: in,
		stack: []*frame{
			{children: []*ast.Node{}},
		},
	}
}

// Parse builds the top-level nodes of in. Every node is located within in.
func Parse(in string) ([]*ast.Node, error) {
	if strings.TrimSpace(in) == "" {
		return nil, ErrEmptyInput
	}
	return ParseTokens(in, lexer.Tokenize(in))
}

// ParseTokens builds the top-level nodes from tokens previously scanned out
// of in.
func ParseTokens(in string, tokens []lexer.Token) ([]*ast.Node, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	p := newParser(in)
	for i := range tokens {
		if err := p.consume(tokens[i]); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

func (p *parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

func (p *parser) consume(tok lexer.Token) error {
	start, end := tok.Span()

	switch tok.Type() {
	case lexer.TokenOpenExpression:
		p.open(start)
	case lexer.TokenCloseExpression:
		return p.close(start, end)
	default:
		p.atom(tok.Text(), start, end)
	}
	return nil
}

func (p *parser) open(start int) {
	p.stack = append(p.stack, &frame{
		start:    start,
		children: []*ast.Node{},
	})
}

func (p *parser) atom(text string, start, end int) {
	node := Classify(text)

	f := p.top()
	if len(p.stack) > 1 && len(f.children) == 0 && node.Type() == ast.NodeTypeOperator {
		f.pending = node.Operator()
	}
	f.children = append(f.children, node.WithSpan(ast.Span{Start: start, End: end}))
}

func (p *parser) close(start, end int) error {
	if len(p.stack) < 2 {
		return newSyntaxError(ErrUnmatchedCloseParen, p.in, start)
	}

	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	var node *ast.Node
	if f.pending != ast.OperatorNone {
		node = ast.NewOperator(f.pending, f.children[1:]...)
	} else {
		node = ast.NewExpression(f.children...)
	}

	parent := p.top()
	parent.children = append(parent.children, node.WithSpan(ast.Span{Start: f.start, End: end}))
	return nil
}

func (p *parser) finish() ([]*ast.Node, error) {
	if len(p.stack) > 1 {
		// report the outermost list left open
		return nil, newSyntaxError(ErrUnclosedOpenParen, p.in, p.stack[1].start)
	}
	return p.stack[0].children, nil
}
