package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeAtom   NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeInvalid NodeType = 0

	NodeTypeString   = nodeTypeAtom | 1
	NodeTypeNumber   = nodeTypeAtom | 2
	NodeTypeBoolean  = nodeTypeAtom | 4
	NodeTypeSymbol   = nodeTypeAtom | 8
	NodeTypeVariable = nodeTypeAtom | 16

	NodeTypeExpression = nodeTypeVector | 1
	NodeTypeOperator   = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return "invalid"
}

var nodeTypeName = map[NodeType]string{
	NodeTypeString:     "string",
	NodeTypeNumber:     "number",
	NodeTypeBoolean:    "boolean",
	NodeTypeSymbol:     "symbol",
	NodeTypeVariable:   "variable",
	NodeTypeExpression: "expression",
	NodeTypeOperator:   "operator",
}

// OperatorKind identifies one of the reserved logical operators.
type OperatorKind uint8

// Operator kinds
const (
	OperatorNone          OperatorKind = iota
	OperatorConditional                // "=>"
	OperatorBiconditional              // "<=>"
	OperatorAnd                        // "and"
	OperatorOr                         // "or"
	OperatorNot                        // "not"
	OperatorExists                     // "exists"
	OperatorForall                     // "forall"
	OperatorEquality                   // "="
)

var operatorKeywords = map[OperatorKind]string{
	OperatorConditional:   "=>",
	OperatorBiconditional: "<=>",
	OperatorAnd:           "and",
	OperatorOr:            "or",
	OperatorNot:           "not",
	OperatorExists:        "exists",
	OperatorForall:        "forall",
	OperatorEquality:      "=",
}

var operatorNames = map[OperatorKind]string{
	OperatorNone:          "none",
	OperatorConditional:   "conditional",
	OperatorBiconditional: "biconditional",
	OperatorAnd:           "and",
	OperatorOr:            "or",
	OperatorNot:           "not",
	OperatorExists:        "exists",
	OperatorForall:        "forall",
	OperatorEquality:      "equality",
}

var keywordOperators = func() map[string]OperatorKind {
	m := make(map[string]OperatorKind, len(operatorKeywords))
	for k, v := range operatorKeywords {
		m[v] = k
	}
	return m
}()

// LookupOperator returns the operator kind for a reserved keyword. Matching
// is exact and case sensitive.
func LookupOperator(keyword string) (OperatorKind, bool) {
	k, ok := keywordOperators[keyword]
	return k, ok
}

// Keyword returns the reserved word the operator is written with.
func (k OperatorKind) Keyword() string {
	return operatorKeywords[k]
}

func (k OperatorKind) String() string {
	if s, ok := operatorNames[k]; ok {
		return s
	}
	return operatorNames[OperatorNone]
}
