package ast

import (
	"math"
	"strconv"
)

// NewString creates a string literal. raw keeps its quotes; escapes are not
// decoded.
func NewString(raw string) *Node {
	return newNode(NodeTypeString, raw, raw)
}

// NewNumber creates a numeric literal written as raw.
func NewNumber(v float64, raw string) *Node {
	return newNode(NodeTypeNumber, raw, v)
}

// NewBoolean creates a boolean literal written as raw.
func NewBoolean(v bool, raw string) *Node {
	return newNode(NodeTypeBoolean, raw, v)
}

// NewSymbol creates a symbol node
func NewSymbol(name string) *Node {
	return newNode(NodeTypeSymbol, name, nil)
}

// NewVariable creates a variable node. name must not include the "?" sigil.
func NewVariable(name string) *Node {
	return newNode(NodeTypeVariable, name, nil)
}

// Value returns the Go value of a literal node: a string for strings, a
// float64 for numbers and a bool for booleans. Other nodes return nil.
func (n *Node) Value() interface{} {
	return n.v
}

// Number returns the value of a numeric literal
func (n *Node) Number() float64 {
	if f, ok := n.v.(float64); ok {
		return f
	}
	return math.NaN()
}

// Bool returns the value of a boolean literal
func (n *Node) Bool() bool {
	b, _ := n.v.(bool)
	return b
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
