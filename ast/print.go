package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable tree of nodes to w. When in is not empty the
// source text of every vector node is shown next to it.
func Print(w io.Writer, nodes []*Node, in string) {
	for i := range nodes {
		printLevel(w, nodes[i], in, 0)
	}
}

func printLevel(w io.Writer, n *Node, in string, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())

	switch n.Type() {
	case NodeTypeExpression, NodeTypeOperator:
		if n.Type() == NodeTypeOperator {
			fmt.Fprintf(w, "%s ", n.Operator().Keyword())
		}
		fmt.Fprintf(w, "[%d]", n.Len())
		printSpan(w, n, in)
		fmt.Fprintln(w)
		for _, child := range n.Children() {
			printLevel(w, child, in, level+1)
		}

	case NodeTypeString, NodeTypeNumber, NodeTypeBoolean, NodeTypeSymbol, NodeTypeVariable:
		fmt.Fprintf(w, "%s", n.Raw())
		if s, ok := n.Span(); ok {
			fmt.Fprintf(w, " %v", s)
		}
		fmt.Fprintln(w)

	default:
		panic("unknown node type")
	}
}

func printSpan(w io.Writer, n *Node, in string) {
	s, ok := n.Span()
	if !ok {
		return
	}
	fmt.Fprintf(w, " %v", s)
	if in != "" {
		fmt.Fprintf(w, " %q", s.Text(in))
	}
}

// Encode transforms a node back into KIF text. Literals keep the text they
// were written with.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

// EncodeAll encodes each node on its own line.
func EncodeAll(nodes []*Node) []byte {
	lines := make([]string, 0, len(nodes))
	for i := range nodes {
		lines = append(lines, encodeNode(nodes[i]))
	}
	return []byte(strings.Join(lines, "\n"))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeExpression, NodeTypeOperator:
		elems := make([]string, 0, n.Len()+1)
		if n.Type() == NodeTypeOperator {
			elems = append(elems, n.Operator().Keyword())
		}
		for _, child := range n.Children() {
			elems = append(elems, encodeNode(child))
		}
		return "(" + strings.Join(elems, " ") + ")"

	case NodeTypeString, NodeTypeNumber, NodeTypeBoolean, NodeTypeSymbol, NodeTypeVariable:
		return n.Raw()

	default:
		panic("unknown node type")
	}
}
