package semantic

import (
	"fmt"

	"jsbind/internal/ast"
)

// Stats are counts taken from the AST before binding. They size the arenas
// and double as an independent check of the scope count.
type Stats struct {
	Nodes      int `json:"nodes"`
	Scopes     int `json:"scopes"`
	Symbols    int `json:"symbols"`
	References int `json:"references"`
}

// CountStats walks prog once. Scopes counts the Program plus every construct
// that opens a scope; Symbols and References count binding identifiers and
// identifier references, an upper bound for the real tables.
func CountStats(prog *ast.Program) Stats {
	var s Stats
	if prog == nil {
		return s
	}
	ast.Inspect(prog, func(n ast.Node) bool {
		s.Nodes++
		if _, ok := ScopeFlagsFor(n.Kind()); ok {
			s.Scopes++
		}
		switch n.(type) {
		case *ast.BindingIdentifier:
			s.Symbols++
		case *ast.IdentifierReference:
			s.References++
		}
		return true
	})
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d scopes=%d symbols=%d references=%d", s.Nodes, s.Scopes, s.Symbols, s.References)
}
