package suokif

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/xiam/suokif/ast"
)

// SymbolTable maps symbol names to the nodes they are referenced from. A
// reference is the nearest expression or operator enclosing the symbol, or
// the symbol itself when it appears at the top level.
type SymbolTable struct {
	names []string
	refs  map[string][]*ast.Node
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		names: []string{},
		refs:  make(map[string][]*ast.Node),
	}
}

// BuildSymbolTable indexes every symbol found in nodes. Variables and
// literals are not indexed.
func BuildSymbolTable(nodes []*ast.Node) *SymbolTable {
	st := newSymbolTable()
	for _, node := range nodes {
		ast.Walk(node, func(n *ast.Node, parent *ast.Node) bool {
			if n.Type() != ast.NodeTypeSymbol {
				return true
			}
			ref := parent
			if ref == nil {
				ref = n
			}
			st.add(n.Name(), ref)
			return true
		})
	}
	return st
}

func (st *SymbolTable) add(name string, node *ast.Node) {
	if _, ok := st.refs[name]; !ok {
		st.names = append(st.names, name)
	}
	st.refs[name] = append(st.refs[name], node)
}

// Lookup returns the references of name in the order they were found. The
// same node appears once per occurrence of the symbol within it. Unknown
// names yield an empty list.
func (st *SymbolTable) Lookup(name string) []*ast.Node {
	if refs, ok := st.refs[name]; ok {
		return refs
	}
	return []*ast.Node{}
}

// Names returns the indexed names in order of first appearance.
func (st *SymbolTable) Names() []string {
	return st.names
}

// Len returns the number of distinct names.
func (st *SymbolTable) Len() int {
	return len(st.names)
}

// Suggest returns up to max known names that look like name, closest first.
func (st *SymbolTable) Suggest(name string, max int) []string {
	type candidate struct {
		name     string
		distance int
	}

	folded := strings.ToLower(name)
	threshold := len(name)/3 + 1

	candidates := []candidate{}
	for _, known := range st.names {
		if known == name {
			continue
		}
		d := fuzzy.LevenshteinDistance(folded, strings.ToLower(known))
		if d <= threshold || fuzzy.MatchNormalizedFold(name, known) {
			candidates = append(candidates, candidate{name: known, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	suggestions := []string{}
	for i := 0; i < len(candidates) && i < max; i++ {
		suggestions = append(suggestions, candidates[i].name)
	}
	return suggestions
}

func (st *SymbolTable) String() string {
	return fmt.Sprintf("SymbolTable([%s])", strings.Join(st.names, " "))
}
