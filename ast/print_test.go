package ast

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTree() *Node {
	// (=> (instance ?X Human) true)
	return NewOperator(OperatorConditional,
		NewExpression(NewSymbol("instance"), NewVariable("X"), NewSymbol("Human")).WithSpan(Span{4, 23}),
		NewBoolean(true, "true").WithSpan(Span{24, 28}),
	).WithSpan(Span{0, 29})
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{sampleTree(), "(=> (instance ?X Human) true)"},
		{NewExpression(), "()"},
		{NewOperator(OperatorAnd), "(and)"},
		{NewExpression(NewSymbol("foo"), NewOperator(OperatorAnd)), "(foo (and))"},
		{NewExpression(NewString(`"a b"`), NewNumber(3.5, "3.5")), `("a b" 3.5)`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.Out, string(Encode(tc.In)))
	}

	assert.Equal(t, "a\n(b)", string(EncodeAll([]*Node{NewSymbol("a"), NewExpression(NewSymbol("b"))})))
}

func TestPrint(t *testing.T) {
	in := "(=> (instance ?X Human) true)"

	var buf bytes.Buffer
	Print(&buf, []*Node{sampleTree()}, in)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		`(operator): => [2] [0:29] "(=> (instance ?X Human) true)"`,
		`    (expression): [3] [4:23] "(instance ?X Human)"`,
		`        (symbol): instance`,
		`        (variable): ?X`,
		`        (symbol): Human`,
		`    (boolean): true [24:28]`,
	}, lines)
}

func TestMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal([]*Node{sampleTree()})
	require.NoError(t, err)

	var docs []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &docs))
	require.Len(t, docs, 1)

	assert.Equal(t, "operator", docs[0]["type"])
	assert.Equal(t, "=>", docs[0]["operator"])
	assert.Equal(t, []interface{}{0, 29}, docs[0]["span"])

	children := docs[0]["children"].([]interface{})
	require.Len(t, children, 2)

	expr := children[0].(map[string]interface{})
	assert.Equal(t, "expression", expr["type"])
	variable := expr["children"].([]interface{})[1].(map[string]interface{})
	assert.Equal(t, "variable", variable["type"])
	assert.Equal(t, "X", variable["name"])

	boolean := children[1].(map[string]interface{})
	assert.Equal(t, true, boolean["value"])
}

func TestMarshalJSON(t *testing.T) {
	node := NewExpression(
		NewNumber(3.5, "3.5"),
		NewBoolean(false, "false"),
		NewVariable(""),
	)

	out, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "expression",
		"children": [
			{"type": "number", "raw": "3.5", "value": 3.5},
			{"type": "boolean", "raw": "false", "value": false},
			{"type": "variable", "name": ""}
		]
	}`, string(out))
}
