package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/suokif/ast"
	"github.com/xiam/suokif/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		if node.Type() == ast.NodeTypeOperator {
			fmt.Printf("%s<%s kind=%q>\n", indent, node.Type(), node.Operator())
		} else {
			fmt.Printf("%s<%s>\n", indent, node.Type())
		}
		children := node.Children()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), node.Raw(), node.Type())
}

func main() {
	input := `(forall (?X) (=> (instance ?X Human) (exists (?Y) (mother ?X ?Y))))`

	nodes, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range nodes {
		printTree(node)
	}
}
