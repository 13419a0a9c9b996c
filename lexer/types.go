package lexer

import "unicode"

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenString                    // Double quoted string: "..."
	TokenAtom                      // Any other run of non-separator characters
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  []rune{'('},
	TokenCloseExpression: []rune{')'},
}

const (
	quote     = '"'
	semicolon = ';'
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenString:          "string",
	TokenAtom:            "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r)
}

func isWordBreak(r rune) bool {
	return r == eof || isSeparator(r) || isOpenExpression(r) || isCloseExpression(r)
}
