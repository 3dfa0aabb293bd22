package semantic

import (
	"fmt"
	"iter"
	"slices"

	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// Scope is one lexical region.
type Scope struct {
	Flags    ScopeFlags
	Parent   ScopeID
	Node     NodeID
	Bindings map[source.StringID]SymbolID
	// pending holds references not yet resolved; drained on leave.
	pending map[source.StringID][]ReferenceID
	end     ScopeID
}

// ScopeTree stores every scope of a file. Scopes are allocated in preorder,
// so a subtree occupies a contiguous id range.
type ScopeTree struct {
	arena   arena[Scope]
	strings *source.Interner
	// unresolved collects the references left over at the root.
	unresolved map[source.StringID][]ReferenceID
}

func newScopeTree(capacity int, strings *source.Interner) *ScopeTree {
	return &ScopeTree{
		arena:      newArena[Scope]("scopes", capacity),
		strings:    strings,
		unresolved: make(map[source.StringID][]ReferenceID),
	}
}

// ScopeFlagsFor reports whether an AST kind opens a scope and with which
// base flags. StrictMode and inherited modifiers are added on entry.
func ScopeFlagsFor(kind ast.Kind) (ScopeFlags, bool) {
	switch kind {
	case ast.KindProgram:
		return ScopeTop, true
	case ast.KindFunction:
		return ScopeFunction, true
	case ast.KindArrowFunctionExpression:
		return ScopeFunction | ScopeArrow, true
	case ast.KindStaticBlock:
		return ScopeClassStaticBlock, true
	case ast.KindTSModuleDeclaration:
		return ScopeTsModuleBlock, true
	case ast.KindCatchClause:
		return ScopeCatchClause, true
	case ast.KindBlockStatement,
		ast.KindForStatement, ast.KindForInStatement, ast.KindForOfStatement,
		ast.KindSwitchStatement,
		ast.KindClass,
		ast.KindTSTypeAliasDeclaration, ast.KindTSInterfaceDeclaration, ast.KindTSEnumDeclaration,
		ast.KindTSMethodSignature, ast.KindTSCallSignatureDeclaration, ast.KindTSConstructSignatureDeclaration,
		ast.KindTSFunctionType, ast.KindTSConstructorType:
		return ScopeEmpty, true
	}
	return ScopeEmpty, false
}

func (t *ScopeTree) add(parent ScopeID, node NodeID, flags ScopeFlags) ScopeID {
	if parent.IsValid() && t.arena.at(uint32(parent)) == nil {
		panic(fmt.Errorf("scope tree: %w: unknown parent scope %d", errInvariant, parent))
	}
	return ScopeID(t.arena.push(Scope{
		Flags:    flags,
		Parent:   parent,
		Node:     node,
		Bindings: make(map[source.StringID]SymbolID),
		pending:  make(map[source.StringID][]ReferenceID),
	}))
}

func (t *ScopeTree) close(id ScopeID) {
	if s := t.arena.at(uint32(id)); s != nil {
		s.end = ScopeID(t.arena.last()) + 1
	}
}

// newScopeFlags computes the flags of a child scope of parent.
func (t *ScopeTree) newScopeFlags(flags ScopeFlags, parent ScopeID) ScopeFlags {
	p := t.Get(parent)
	if p == nil {
		return flags
	}
	if p.Flags.IsStrict() {
		flags |= ScopeStrictMode
	}
	if !flags.IsFunction() {
		flags |= p.Flags & ScopeModifiers
	}
	return flags
}

// Len reports the number of scopes.
func (t *ScopeTree) Len() int { return t.arena.len() }

// Root returns the program scope.
func (t *ScopeTree) Root() ScopeID {
	if t.arena.len() == 0 {
		return NoScopeID
	}
	return 1
}

// Get returns the scope or nil for an invalid id.
func (t *ScopeTree) Get(id ScopeID) *Scope { return t.arena.at(uint32(id)) }

// Flags returns a scope's flags.
func (t *ScopeTree) Flags(id ScopeID) ScopeFlags {
	if s := t.Get(id); s != nil {
		return s.Flags
	}
	return ScopeEmpty
}

// Parent returns the parent scope; NoScopeID for the root.
func (t *ScopeTree) Parent(id ScopeID) ScopeID {
	if s := t.Get(id); s != nil {
		return s.Parent
	}
	return NoScopeID
}

// Node returns the AST node that opened the scope.
func (t *ScopeTree) Node(id ScopeID) NodeID {
	if s := t.Get(id); s != nil {
		return s.Node
	}
	return NoNodeID
}

// Ancestors yields id and then its parents up to the root.
func (t *ScopeTree) Ancestors(id ScopeID) iter.Seq[ScopeID] {
	return func(yield func(ScopeID) bool) {
		for s := id; s.IsValid(); s = t.Parent(s) {
			if !yield(s) {
				return
			}
		}
	}
}

// Children yields the direct child scopes of id in creation order.
func (t *ScopeTree) Children(id ScopeID) iter.Seq[ScopeID] {
	return func(yield func(ScopeID) bool) {
		s := t.Get(id)
		if s == nil {
			return
		}
		for c := id + 1; c < s.end; {
			if !yield(c) {
				return
			}
			child := t.Get(c)
			if child == nil || child.end <= c {
				return
			}
			c = child.end
		}
	}
}

// Binding returns the symbol bound to name directly in scope id.
func (t *ScopeTree) Binding(id ScopeID, name string) (SymbolID, bool) {
	s := t.Get(id)
	if s == nil {
		return NoSymbolID, false
	}
	key, ok := t.strings.Find(name)
	if !ok {
		return NoSymbolID, false
	}
	sym, ok := s.Bindings[key]
	return sym, ok
}

// Lookup walks from id to the root and returns the first binding of name.
func (t *ScopeTree) Lookup(id ScopeID, name string) (SymbolID, bool) {
	for s := range t.Ancestors(id) {
		if sym, ok := t.Binding(s, name); ok {
			return sym, true
		}
	}
	return NoSymbolID, false
}

// BindingNames returns the names bound in scope id, sorted.
func (t *ScopeTree) BindingNames(id ScopeID) []string {
	s := t.Get(id)
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Bindings))
	for key := range s.Bindings {
		names = append(names, t.strings.MustLookup(key))
	}
	slices.Sort(names)
	return names
}

// IsStrict reports whether code in scope id is strict mode code.
func (t *ScopeTree) IsStrict(id ScopeID) bool { return t.Flags(id).IsStrict() }

// FunctionScope returns the nearest enclosing function or root scope.
func (t *ScopeTree) FunctionScope(id ScopeID) ScopeID {
	for s := range t.Ancestors(id) {
		if t.Flags(s)&(ScopeFunction|ScopeTop) != 0 {
			return s
		}
	}
	return NoScopeID
}

// UnresolvedReferences returns the references left unresolved at the root,
// keyed by name.
func (t *ScopeTree) UnresolvedReferences() map[string][]ReferenceID {
	out := make(map[string][]ReferenceID, len(t.unresolved))
	for key, refs := range t.unresolved {
		out[t.strings.MustLookup(key)] = slices.Clone(refs)
	}
	return out
}

// Pending reports how many references wait in scope id. Zero for every scope
// once the builder has finished.
func (t *ScopeTree) Pending(id ScopeID) int {
	s := t.Get(id)
	if s == nil {
		return 0
	}
	n := 0
	for _, refs := range s.pending {
		n += len(refs)
	}
	return n
}

// EnterScope opens a child of the current scope. The node-level Class flag
// and a "use strict" directive force StrictMode.
func (b *Builder) EnterScope(flags ScopeFlags, node NodeID) ScopeID {
	flags = b.scopes.newScopeFlags(flags, b.state.Scope)
	if b.state.NodeFlags&NodeClass != 0 {
		flags |= ScopeStrictMode
	}
	id := b.scopes.add(b.state.Scope, node, flags)
	b.state.Scope = id
	// export flag applies to the declaration's own name only
	b.scopeSymbolFlags = append(b.scopeSymbolFlags, b.state.SymbolFlags)
	b.state.SymbolFlags = SymbolNone
	return id
}

// LeaveScope resolves the current scope's pending references and moves to
// the parent. The root scope is never left; see finishRoot.
func (b *Builder) LeaveScope() {
	cur := b.state.Scope
	parent := b.scopes.Parent(cur)
	if !parent.IsValid() {
		panic(fmt.Errorf("leave scope: %w: scope %d has no parent", errInvariant, cur))
	}
	b.resolveReferencesForCurrentScope()
	b.scopes.close(cur)
	b.state.Scope = parent
	if n := len(b.scopeSymbolFlags); n > 0 {
		b.state.SymbolFlags = b.scopeSymbolFlags[n-1]
		b.scopeSymbolFlags = b.scopeSymbolFlags[:n-1]
	}
}
