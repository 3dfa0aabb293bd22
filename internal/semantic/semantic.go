package semantic

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// Semantic is the immutable result of one Build.
type Semantic struct {
	SourceType   ast.SourceType
	Path         string
	Strings      *source.Interner
	Nodes        *Nodes
	Scopes       *ScopeTree
	Symbols      *SymbolTable
	Classes      *ClassTable
	UnusedLabels []NodeID
	// ModuleRecord is nil unless Options.ModuleRecord was set.
	ModuleRecord *ModuleRecord
	// JSDoc is nil unless Options.JSDoc was set.
	JSDoc *JSDocs
	Stats Stats
}

// SymbolNamed returns the symbol that name resolves to from scope.
func (s *Semantic) SymbolNamed(scope ScopeID, name string) (SymbolID, bool) {
	return s.Scopes.Lookup(scope, name)
}

// ReferencesOf returns the references resolved to sym.
func (s *Semantic) ReferencesOf(sym SymbolID) []ReferenceID {
	if rec := s.Symbols.Get(sym); rec != nil {
		return rec.References
	}
	return nil
}

// IsGlobal reports whether ref stayed unresolved.
func (s *Semantic) IsGlobal(ref ReferenceID) bool {
	r := s.Symbols.Reference(ref)
	return r != nil && !r.IsResolved()
}

// Validate walks every table checking structural invariants. It returns nil
// when everything is consistent; otherwise all detected issues are joined.
func (s *Semantic) Validate() error {
	var errs []error
	errs = append(errs, s.validateNodes()...)
	errs = append(errs, s.validateScopes()...)
	errs = append(errs, s.validateSymbols()...)
	errs = append(errs, s.validateReferences()...)
	return errors.Join(errs...)
}

func index[T ~uint32](i int) (T, error) {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		return 0, fmt.Errorf("index %d overflows: %w", i, err)
	}
	return T(v), nil
}

func (s *Semantic) validateNodes() []error {
	var errs []error
	for i := 1; i <= s.Nodes.Len(); i++ {
		id, err := index[NodeID](i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		n := s.Nodes.Get(id)
		if i == 1 {
			if n.Parent.IsValid() {
				errs = append(errs, fmt.Errorf("root node has parent %d", n.Parent))
			}
			if n.Kind != ast.KindProgram {
				errs = append(errs, fmt.Errorf("root node is %s, not Program", n.Kind))
			}
			continue
		}
		if !n.Parent.IsValid() || n.Parent >= id {
			errs = append(errs, fmt.Errorf("node %d has invalid parent %d", id, n.Parent))
			continue
		}
		if !s.Nodes.Contains(n.Parent, id) {
			errs = append(errs, fmt.Errorf("node %d lies outside its parent %d", id, n.Parent))
		}
		found := false
		for c := range s.Nodes.Children(n.Parent) {
			if c == id {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("node %d parent %d missing child link", id, n.Parent))
		}
		if s.Scopes.Get(n.Scope) == nil {
			errs = append(errs, fmt.Errorf("node %d has invalid scope %d", id, n.Scope))
		}
	}
	return errs
}

func (s *Semantic) validateScopes() []error {
	var errs []error
	for i := 1; i <= s.Scopes.Len(); i++ {
		id, err := index[ScopeID](i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sc := s.Scopes.Get(id)
		if i == 1 {
			if sc.Parent.IsValid() {
				errs = append(errs, fmt.Errorf("root scope has parent %d", sc.Parent))
			}
		} else if !sc.Parent.IsValid() || sc.Parent >= id {
			errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", id, sc.Parent))
		} else {
			found := false
			for c := range s.Scopes.Children(sc.Parent) {
				if c == id {
					found = true
					break
				}
			}
			if !found {
				errs = append(errs, fmt.Errorf("scope %d parent %d missing child link", id, sc.Parent))
			}
		}
		if n := s.Scopes.Pending(id); n != 0 {
			errs = append(errs, fmt.Errorf("scope %d still has %d pending references", id, n))
		}
		for name, sym := range sc.Bindings {
			rec := s.Symbols.Get(sym)
			if rec == nil {
				errs = append(errs, fmt.Errorf("scope %d binds %q to missing symbol %d", id, s.Strings.MustLookup(name), sym))
				continue
			}
			if rec.Scope != id {
				errs = append(errs, fmt.Errorf("symbol %d bound in scope %d but owned by %d", sym, id, rec.Scope))
			}
			if rec.Name != name {
				errs = append(errs, fmt.Errorf("symbol %d bound under a different name", sym))
			}
		}
	}
	return errs
}

func (s *Semantic) validateSymbols() []error {
	var errs []error
	for _, id := range s.Symbols.IDs() {
		sym := s.Symbols.Get(id)
		sc := s.Scopes.Get(sym.Scope)
		if sc == nil {
			errs = append(errs, fmt.Errorf("symbol %d has invalid scope %d", id, sym.Scope))
			continue
		}
		if sc.Bindings[sym.Name] != id && !sym.Shadowed {
			errs = append(errs, fmt.Errorf("symbol %d is not bound in its scope %d", id, sym.Scope))
		}
		for _, ref := range sym.References {
			r := s.Symbols.Reference(ref)
			if r == nil || r.Symbol != id {
				errs = append(errs, fmt.Errorf("symbol %d lists reference %d that points elsewhere", id, ref))
			}
		}
	}
	return errs
}

func (s *Semantic) validateReferences() []error {
	var errs []error
	unresolved := make(map[ReferenceID]struct{})
	for _, refs := range s.Scopes.unresolved {
		for _, ref := range refs {
			unresolved[ref] = struct{}{}
		}
	}
	for _, id := range s.Symbols.ReferenceIDs() {
		r := s.Symbols.Reference(id)
		if s.Nodes.Get(r.Node) == nil {
			errs = append(errs, fmt.Errorf("reference %d has invalid node %d", id, r.Node))
		}
		_, global := unresolved[id]
		switch {
		case r.IsResolved() && global:
			errs = append(errs, fmt.Errorf("reference %d is both resolved and unresolved", id))
		case !r.IsResolved() && !global:
			errs = append(errs, fmt.Errorf("reference %d was lost", id))
		case r.IsResolved() && s.Symbols.Get(r.Symbol) == nil:
			errs = append(errs, fmt.Errorf("reference %d points to missing symbol %d", id, r.Symbol))
		}
	}
	return errs
}
