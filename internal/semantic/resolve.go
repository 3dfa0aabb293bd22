package semantic

import (
	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// DeclareReference records a use of name in the current scope. The
// reference stays pending until its scope is left.
func (b *Builder) DeclareReference(name string, node NodeID, flags ReferenceFlags) ReferenceID {
	key := b.strings.Intern(name)
	id := b.symbols.createReference(Reference{
		Name:  key,
		Node:  node,
		Scope: b.state.Scope,
		Flags: flags,
	})
	scope := b.scopes.Get(b.state.Scope)
	if scope == nil {
		b.scopes.unresolved[key] = append(b.scopes.unresolved[key], id)
		return id
	}
	scope.pending[key] = append(scope.pending[key], id)
	return id
}

// referenceIdentifier is called for every IdentifierReference. The flags
// set up by the enclosing construct are consumed here.
func (b *Builder) referenceIdentifier(ident *ast.IdentifierReference) {
	flags := b.takeReferenceFlags()
	b.DeclareReference(ident.Name, b.state.Node, flags)
}

func (b *Builder) takeReferenceFlags() ReferenceFlags {
	flags := b.currentReferenceFlags
	b.currentReferenceFlags = ReferenceNone
	if flags == ReferenceNone {
		return ReferenceRead
	}
	return flags
}

// resolveReferencesForCurrentScope drains the pending map of the current
// scope. References satisfied by a binding of the scope are attached to
// it; the rest move to the parent, or to the unresolved set at the root.
func (b *Builder) resolveReferencesForCurrentScope() {
	id := b.state.Scope
	scope := b.scopes.Get(id)
	if scope == nil || len(scope.pending) == 0 {
		return
	}
	parent := b.scopes.Get(scope.Parent)
	for name, refs := range scope.pending {
		sym, bound := scope.Bindings[name]
		rest := refs
		if bound {
			rest = b.attach(sym, refs)
		}
		if len(rest) == 0 {
			continue
		}
		if parent != nil {
			parent.pending[name] = append(parent.pending[name], rest...)
		} else {
			b.scopes.unresolved[name] = append(b.scopes.unresolved[name], rest...)
		}
	}
	clear(scope.pending)
}

// attach resolves every reference in refs that sym can satisfy and returns
// the ones it cannot.
func (b *Builder) attach(sym SymbolID, refs []ReferenceID) []ReferenceID {
	symFlags := b.symbols.Flags(sym)
	var rest []ReferenceID
	for _, ref := range refs {
		r := b.symbols.Reference(ref)
		if r == nil {
			continue
		}
		if !canResolve(symFlags, r.Flags) {
			rest = append(rest, ref)
			continue
		}
		if symFlags.CanBeReferencedByValue() && r.Flags.IsValue() {
			r.Flags &^= ReferenceType
		} else {
			r.Flags = ReferenceType
		}
		b.symbols.resolve(ref, sym)
	}
	return rest
}

func canResolve(sym SymbolFlags, ref ReferenceFlags) bool {
	return (ref.IsValue() && sym.CanBeReferencedByValue()) ||
		(ref.IsType() && sym.CanBeReferencedByType()) ||
		(ref.IsValueAsType() && sym.CanBeReferencedByValueAsType())
}

// finishRoot resolves what is left at the program scope; whatever remains
// is global.
func (b *Builder) finishRoot() {
	b.resolveReferencesForCurrentScope()
	b.scopes.close(b.state.Scope)
}

func (b *Builder) intern(name string) source.StringID { return b.strings.Intern(name) }
