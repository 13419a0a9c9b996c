package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`-1 -2.22`,

		`(instance Mary Human)`,

		`(=> (instance ?X Human) (instance ?X Animal))`,

		`(foo a b c-d-e-f "ghi")`,

		`(foo
			a ?b
			c-d-e-f
			"g
			hi"
		)`,

		`; Mary is a human
		(instance Mary Human) ; trailing`,

		`(documentation Human EnglishLanguage "A member of the species (Homo sapiens).")`,

		`(fn1 (:A "ðŸ˜Š"))`,
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i])
		t.Logf("tokens: %v", tokens)

		assert.NotEmpty(t, tokens)
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{
				TokenAtom,
			},
		},
		{
			"",
			[]TokenType{},
		},
		{
			" \n\t ; only a comment\n",
			[]TokenType{},
		},
		{
			`(+
				(1
				()))`,
			[]TokenType{
				TokenOpenExpression,
				TokenAtom,
				TokenOpenExpression,
				TokenAtom,
				TokenOpenExpression,
				TokenCloseExpression,
				TokenCloseExpression,
				TokenCloseExpression,
			},
		},
		{
			`(say "hello (world)")`,
			[]TokenType{
				TokenOpenExpression,
				TokenAtom,
				TokenString,
				TokenCloseExpression,
			},
		},
		{
			`(say "unterminated (x)`,
			[]TokenType{
				TokenOpenExpression,
				TokenAtom,
				TokenAtom,
				TokenOpenExpression,
				TokenAtom,
				TokenCloseExpression,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			"(instance Gemini AI)",
			[]string{"(", "instance", "Gemini", "AI", ")"},
		},
		{
			"; comment\n(foo bar)",
			[]string{"(", "foo", "bar", ")"},
		},
		{
			`(foo;bar baz)`,
			[]string{"(", "foo;bar", "baz", ")"},
		},
		{
			`"abc"def`,
			[]string{`"abc"`, "def"},
		},
		{
			`abc"def ghi"`,
			[]string{`abc"def`, `ghi"`},
		},
		{
			`(p "x" "y")`,
			[]string{"(", "p", `"x"`, `"y"`, ")"},
		},
		{
			"\"multi\nline\"",
			[]string{"\"multi\nline\""},
		},
		{
			"`quoted (p)",
			[]string{"`quoted", "(", "p", ")"},
		},
		{
			"(?X ? =>)",
			[]string{"(", "?X", "?", "=>", ")"},
		},
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)

		texts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			texts = append(texts, tok.Text())
		}
		assert.Equal(t, testCases[i].Out, texts)
	}
}

func TestTokenSpans(t *testing.T) {
	in := "  (ab \"c d\")\n; x\nef"
	tokens := Tokenize(in)

	assert.Equal(t, 5, len(tokens))
	for _, tok := range tokens {
		start, end := tok.Span()
		assert.Equal(t, tok.Text(), in[start:end])
	}

	start, end := tokens[2].Span()
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
	assert.True(t, tokens[2].Is(TokenString))
}

func TestScanTwice(t *testing.T) {
	lx := New("(a b)")

	first := lx.Scan()
	second := lx.Scan()

	assert.Equal(t, first, second)
	assert.Equal(t, 4, len(second))
}

func TestPosition(t *testing.T) {
	testCases := []struct {
		In     string
		Offset int
		Line   int
		Col    int
	}{
		{"", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"a\nbc", 2, 2, 1},
		{"a\nbc", 3, 2, 2},
		{"\n\n\nABCDF efgh\n", 9, 4, 7},
		{"😊(", len("😊"), 1, 2},
		{"abc", 10, 1, 4},
	}

	for _, tc := range testCases {
		line, col := Position(tc.In, tc.Offset)
		assert.Equal(t, tc.Line, line, "line of %q@%d", tc.In, tc.Offset)
		assert.Equal(t, tc.Col, col, "col of %q@%d", tc.In, tc.Offset)
	}
}
