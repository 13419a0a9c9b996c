// Package suokif compiles SUO-KIF text into an AST whose nodes keep their
// source location, and indexes the symbols found in it.
package suokif

import (
	"github.com/pkg/errors"

	"github.com/xiam/suokif/ast"
	"github.com/xiam/suokif/parser"
)

// Compiler keeps the AST and symbol table of the last successful Compile.
// Every call replaces both; nothing accumulates across calls. A Compiler must
// not be used by several goroutines at once.
type Compiler struct {
	in      string
	nodes   []*ast.Node
	symbols *SymbolTable
}

// New creates a Compiler with no results.
func New() *Compiler {
	return &Compiler{
		nodes:   []*ast.Node{},
		symbols: newSymbolTable(),
	}
}

// Compile parses in and rebuilds the symbol table from the result. On error
// the previous results are left untouched.
func (c *Compiler) Compile(in string) ([]*ast.Node, error) {
	nodes, err := parser.Parse(in)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	c.in = in
	c.nodes = nodes
	c.symbols = BuildSymbolTable(nodes)

	return nodes, nil
}

// AST returns the top-level nodes of the last compile.
func (c *Compiler) AST() []*ast.Node {
	return c.nodes
}

// Symbols returns the symbol table of the last compile.
func (c *Compiler) Symbols() *SymbolTable {
	return c.symbols
}

// Source returns the text of the last compile. Node spans point into it.
func (c *Compiler) Source() string {
	return c.in
}

// Usages returns the nodes referencing name in the last compile.
func (c *Compiler) Usages(name string) []*ast.Node {
	return c.symbols.Lookup(name)
}

func (c *Compiler) String() string {
	return "Compiled AST: " + ast.FormatList(c.nodes)
}

// Compile is a shortcut for New().Compile(in) that also returns the symbol
// table.
func Compile(in string) ([]*ast.Node, *SymbolTable, error) {
	c := New()
	nodes, err := c.Compile(in)
	if err != nil {
		return nil, nil, err
	}
	return nodes, c.Symbols(), nil
}
