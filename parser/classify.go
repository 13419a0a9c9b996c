package parser

import (
	"strconv"
	"strings"

	"github.com/xiam/suokif/ast"
)

// Classify turns the text of a single atom or string token into a leaf node.
// The result has no span. The order of the checks matters: "?1" is a
// variable, "true" a boolean and "and" an operator, never numbers or symbols.
//
// A keyword yields an operator with no children. Whether it heads a list is
// decided later by the tree builder.
func Classify(text string) *ast.Node {
	switch {
	case strings.HasPrefix(text, `"`), strings.HasPrefix(text, "`"):
		return ast.NewString(text)

	case strings.HasPrefix(text, "?"):
		return ast.NewVariable(text[1:])

	case text == "true":
		return ast.NewBoolean(true, text)
	case text == "false":
		return ast.NewBoolean(false, text)
	}

	if kind, ok := ast.LookupOperator(text); ok {
		return ast.NewOperator(kind)
	}

	if f, ok := parseNumber(text); ok {
		return ast.NewNumber(f, text)
	}

	return ast.NewSymbol(text)
}

// parseNumber accepts decimal and exponent notation, including "inf" and
// "nan". Hexadecimal and underscore-separated forms are left as symbols.
// Values out of range become infinities.
func parseNumber(text string) (float64, bool) {
	if strings.ContainsRune(text, '_') {
		return 0, false
	}
	digits := strings.TrimLeft(text, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}
