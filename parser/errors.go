package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/suokif/lexer"
)

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrUnmatchedCloseParen = errors.New("unexpected ')'")
	ErrUnclosedOpenParen   = errors.New("unclosed '('")
)

// SyntaxError locates a structural error within the parsed text.
type SyntaxError struct {
	Err    error
	Offset int
	Line   int
	Column int
}

func newSyntaxError(err error, in string, offset int) *SyntaxError {
	line, col := lexer.Position(in, offset)
	return &SyntaxError{
		Err:    err,
		Offset: offset,
		Line:   line,
		Column: col,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying sentinel, for github.com/pkg/errors.
func (e *SyntaxError) Cause() error {
	return e.Err
}
