package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	start int
	end   int
}

// NewToken creates a lexical unit spanning in[start:end]
func NewToken(tt TokenType, lexeme string, start int, end int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		start:  start,
		end:    end,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Span returns the half-open byte offsets of the lexical unit within the
// scanned text.
func (t Token) Span() (int, int) {
	return t.start, t.end
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.start, t.end)
}
