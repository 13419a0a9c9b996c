package suokif

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/suokif/ast"
	"github.com/xiam/suokif/parser"
)

func TestCompilerCreate(t *testing.T) {
	c := New()
	assert.NotNil(t, c)
	assert.Empty(t, c.AST())
	assert.Equal(t, 0, c.Symbols().Len())
	assert.Equal(t, "Compiled AST: []", c.String())
}

func TestCompilerCompile(t *testing.T) {
	c := New()

	nodes, err := c.Compile("(instance Gemini AI)")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	assert.Equal(t, nodes, c.AST())
	assert.Equal(t, "(instance Gemini AI)", c.Source())
	assert.Equal(t, "Compiled AST: [Expression([Symbol(instance), Symbol(Gemini), Symbol(AI)])]", c.String())

	usages := c.Usages("Gemini")
	require.Len(t, usages, 1)
	assert.Same(t, nodes[0], usages[0])
}

func TestCompilerReplacesResults(t *testing.T) {
	c := New()

	{
		_, err := c.Compile("(instance Mary Human)")
		require.NoError(t, err)
		assert.Len(t, c.Usages("Mary"), 1)
	}

	{
		_, err := c.Compile("(instance Mary Human)")
		require.NoError(t, err)
		assert.Len(t, c.Usages("Mary"), 1, "references must not accumulate")
	}

	{
		_, err := c.Compile("(subclass Human Animal)")
		require.NoError(t, err)
		assert.Empty(t, c.Usages("Mary"))
		assert.Equal(t, []string{"subclass", "Human", "Animal"}, c.Symbols().Names())
	}
}

func TestCompilerErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{"", parser.ErrEmptyInput},
		{"  ; nothing here\n", parser.ErrEmptyInput},
		{"(and (p a)", parser.ErrUnclosedOpenParen},
		{"(p a))", parser.ErrUnmatchedCloseParen},
	}

	c := New()
	_, err := c.Compile("(kept Result)")
	require.NoError(t, err)

	for _, tc := range testCases {
		nodes, err := c.Compile(tc.In)
		assert.Nil(t, nodes)
		assert.True(t, errors.Is(err, tc.Err), "input %q: %v", tc.In, err)

		assert.Equal(t, "(kept Result)", c.Source(), "a failed compile keeps the previous result")
		assert.Len(t, c.Usages("kept"), 1)
	}
}

func TestCompile(t *testing.T) {
	nodes, st, err := Compile("(and (instance Mary Human) (instance Mary Animal))")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	assert.Equal(t, ast.OperatorAnd, nodes[0].Operator())
	assert.Len(t, st.Lookup("Mary"), 2)
	assert.Len(t, st.Lookup("instance"), 2)

	_, st, err = Compile(")")
	assert.Error(t, err)
	assert.Nil(t, st)
}
