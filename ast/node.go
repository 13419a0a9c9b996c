package ast

import (
	"fmt"
	"strings"
)

// Span is a half-open range of byte offsets into the compiled text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the slice of in covered by the span, or an empty string if
// the span does not fit in.
func (s Span) Text(in string) string {
	if s.Start < 0 || s.End > len(in) || s.Start > s.End {
		return ""
	}
	return in[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Node is a single element of the AST. The NodeType decides which fields are
// meaningful:
//
//	string, number, boolean  raw text and value
//	symbol, variable         name
//	expression               children
//	operator                 operator kind and children (the keyword excluded)
//
// Nodes are never modified once built.
type Node struct {
	nt NodeType
	op OperatorKind

	text     string
	v        interface{}
	children []*Node

	span    Span
	spanned bool
}

func newNode(nt NodeType, text string, v interface{}) *Node {
	return &Node{
		nt:   nt,
		text: text,
		v:    v,
	}
}

// NewExpression creates a generic parenthesized list.
func NewExpression(children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		nt:       NodeTypeExpression,
		children: children,
	}
}

// NewOperator creates an operator node. children are the elements following
// the keyword.
func NewOperator(kind OperatorKind, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		nt:       NodeTypeOperator,
		op:       kind,
		text:     kind.Keyword(),
		children: children,
	}
}

// WithSpan returns a copy of the node located at s.
func (n Node) WithSpan(s Span) *Node {
	n.span = s
	n.spanned = true
	return &n
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Operator returns the operator kind, or OperatorNone for nodes that are not
// operators.
func (n *Node) Operator() OperatorKind {
	return n.op
}

// Name returns the name of a symbol or variable. Variables are named without
// their "?" sigil.
func (n *Node) Name() string {
	switch n.nt {
	case NodeTypeSymbol, NodeTypeVariable:
		return n.text
	}
	return ""
}

// Raw returns the text the node was written as, excluding any children.
func (n *Node) Raw() string {
	if n.nt == NodeTypeVariable {
		return "?" + n.text
	}
	return n.text
}

// Children returns the ordered children of an expression or operator node.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// Span returns the location of the node, if it has one.
func (n *Node) Span() (Span, bool) {
	return n.span, n.spanned
}

// Text returns the source text of the node within in, the text the node was
// parsed from.
func (n *Node) Text(in string) string {
	if !n.spanned {
		return ""
	}
	return n.span.Text(in)
}

// IsAtom returns true for literals, symbols and variables.
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeAtom > 0
}

// IsVector returns true for expressions and operators.
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) String() string {
	switch n.nt {
	case NodeTypeString:
		return fmt.Sprintf("String(%s)", n.text)
	case NodeTypeNumber:
		return fmt.Sprintf("Number(%s)", formatNumber(n.Number()))
	case NodeTypeBoolean:
		return fmt.Sprintf("Boolean(%v)", n.Bool())
	case NodeTypeSymbol:
		return fmt.Sprintf("Symbol(%s)", n.text)
	case NodeTypeVariable:
		return fmt.Sprintf("Variable(%s)", n.text)
	case NodeTypeExpression:
		return fmt.Sprintf("Expression(%s)", FormatList(n.children))
	case NodeTypeOperator:
		name := n.op.String()
		return fmt.Sprintf("%s%s(%s)", strings.ToUpper(name[:1]), name[1:], FormatList(n.children))
	}
	return "Invalid()"
}

// FormatList renders nodes as a bracketed, comma separated list.
func FormatList(nodes []*Node) string {
	s := make([]string, 0, len(nodes))
	for i := range nodes {
		s = append(s, nodes[i].String())
	}
	return "[" + strings.Join(s, ", ") + "]"
}

// Equal reports whether a and b have the same structure and text. Spans are
// ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.nt != b.nt || a.op != b.op || a.text != b.text {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants depth-first. fn receives each node and
// its nearest enclosing expression or operator (nil at the top level). When
// fn returns false the children of that node are skipped.
func Walk(n *Node, fn func(n *Node, parent *Node) bool) {
	walk(n, nil, fn)
}

func walk(n *Node, parent *Node, fn func(*Node, *Node) bool) {
	if !fn(n, parent) {
		return
	}
	for _, child := range n.children {
		walk(child, n, fn)
	}
}
