package ast

import (
	"encoding/json"
	"math"
)

type document struct {
	Type     string      `yaml:"type" json:"type"`
	Operator string      `yaml:"operator,omitempty" json:"operator,omitempty"`
	Name     *string     `yaml:"name,omitempty" json:"name,omitempty"`
	Raw      string      `yaml:"raw,omitempty" json:"raw,omitempty"`
	Value    interface{} `yaml:"value,omitempty" json:"value,omitempty"`
	Span     []int       `yaml:"span,flow,omitempty" json:"span,omitempty"`
	Children []*Node     `yaml:"children,omitempty" json:"children,omitempty"`
}

func (n *Node) document() document {
	doc := document{
		Type: n.nt.String(),
	}

	switch n.nt {
	case NodeTypeSymbol, NodeTypeVariable:
		name := n.text
		doc.Name = &name
	case NodeTypeString, NodeTypeBoolean:
		doc.Raw = n.text
		doc.Value = n.v
	case NodeTypeNumber:
		doc.Raw = n.text
		// NaN and infinities have no JSON form; raw still carries them.
		if f := n.Number(); !math.IsNaN(f) && !math.IsInf(f, 0) {
			doc.Value = f
		}
	case NodeTypeOperator:
		doc.Operator = n.op.Keyword()
		doc.Children = n.children
	case NodeTypeExpression:
		doc.Children = n.children
	}

	if n.spanned {
		doc.Span = []int{n.span.Start, n.span.End}
	}
	return doc
}

// MarshalYAML implements yaml.Marshaler
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.document(), nil
}

// MarshalJSON implements json.Marshaler
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.document())
}
