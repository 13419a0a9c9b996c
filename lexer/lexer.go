package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

type lexState func(*Lexer) lexState

var (
	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)
)

// New initializes a Lexer over the given text
func New(in string) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer. Comments and separators are consumed
// but never emitted.
type Lexer struct {
	in string

	tokens []Token

	start  int
	offset int
}

// Scan reads the whole input and returns the tokens found in it, in order.
// Scanning never fails: anything that is not a comment, a string or a
// parenthesis ends up as an atom.
func (lx *Lexer) Scan() []Token {
	lx.start, lx.offset = 0, 0
	lx.tokens = []Token{}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	return lx.tokens
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: lx.in[lx.start:lx.offset],

		start: lx.start,
		end:   lx.offset,
	})
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return r
}

func (lx *Lexer) next() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.in[lx.offset:])
	lx.offset += w
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == eof:
		return nil

	case isSeparator(r):
		return lexSeparator
	case r == semicolon:
		return lexComment
	case r == quote:
		return lexString

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	default:
		return lexAtom
	}
}

func lexSeparator(lx *Lexer) lexState {
	for isSeparator(lx.peek()) {
		lx.next()
	}
	lx.ignore()
	return lexDefaultState
}

func lexComment(lx *Lexer) lexState {
	for r := lx.peek(); r != eof && r != '\n'; r = lx.peek() {
		lx.next()
	}
	lx.ignore()
	return lexDefaultState
}

// lexString consumes everything up to the next double quote. There are no
// escapes. Without a closing quote the text is scanned as an atom instead.
func lexString(lx *Lexer) lexState {
	i := strings.IndexRune(lx.in[lx.offset:], quote)
	if i < 0 {
		return lexAtom
	}
	lx.offset += i + 1
	lx.emit(TokenString)
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for !isWordBreak(lx.peek()) {
		lx.next()
	}
	lx.emit(TokenAtom)
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

// Tokenize returns all the tokens within the given text.
func Tokenize(in string) []Token {
	return New(in).Scan()
}

// Position translates a byte offset within in into a 1-based line and column.
// Columns count runes, not bytes.
func Position(in string, offset int) (int, int) {
	if offset > len(in) {
		offset = len(in)
	}
	if offset < 0 {
		offset = 0
	}

	head := in[:offset]
	line := strings.Count(head, "\n") + 1
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		head = head[i+1:]
	}
	return line, utf8.RuneCountInString(head) + 1
}
