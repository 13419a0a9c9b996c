package main

import (
	"log"
	"os"

	"github.com/xiam/suokif/ast"
	"github.com/xiam/suokif/parser"
)

func main() {
	input := `(and (instance Mary Human) (not (= Mary "😊")) (age Mary 3.27))`

	nodes, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, nodes, input)
}
