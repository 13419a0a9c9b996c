package main

import (
	"fmt"

	"github.com/xiam/suokif/lexer"
)

func main() {
	input := `
		; every human is an animal
		(=> (instance ?X Human)
			(instance ?X Animal))
		(documentation Human EnglishLanguage "A featherless biped.")
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		start, _ := tok.Span()
		line, col := lexer.Position(input, start)
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
