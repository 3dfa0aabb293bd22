package semantic

import (
	"jsbind/internal/source"
)

// Symbol is one declared binding.
type Symbol struct {
	Name         source.StringID
	Span         source.Span // span of the first declaring identifier
	Flags        SymbolFlags
	Scope        ScopeID
	Declarations []NodeID
	References   []ReferenceID
	// Redeclarations lists the spans of later declarations collapsed onto
	// this symbol.
	Redeclarations []source.Span
	// Shadowed is set when a body declaration took the name over in the
	// same scope: `(function f() { let f })`. The scope no longer binds it.
	Shadowed bool
}

// Reference is one identifier use.
type Reference struct {
	Name   source.StringID
	Node   NodeID
	Scope  ScopeID // scope the use occurs in
	Flags  ReferenceFlags
	Symbol SymbolID // NoSymbolID while unresolved
}

// IsResolved reports whether the reference was bound to a symbol.
func (r *Reference) IsResolved() bool { return r.Symbol.IsValid() }

// SymbolTable stores symbols and references of one file.
type SymbolTable struct {
	symbols    arena[Symbol]
	references arena[Reference]
	strings    *source.Interner
}

func newSymbolTable(symbols, references int, strings *source.Interner) *SymbolTable {
	return &SymbolTable{
		symbols:    newArena[Symbol]("symbols", symbols),
		references: newArena[Reference]("references", references),
		strings:    strings,
	}
}

func (t *SymbolTable) createSymbol(span source.Span, name source.StringID, flags SymbolFlags, scope ScopeID, node NodeID) SymbolID {
	return SymbolID(t.symbols.push(Symbol{
		Name:         name,
		Span:         span,
		Flags:        flags,
		Scope:        scope,
		Declarations: []NodeID{node},
	}))
}

func (t *SymbolTable) createReference(ref Reference) ReferenceID {
	return ReferenceID(t.references.push(ref))
}

// Len reports the number of symbols.
func (t *SymbolTable) Len() int { return t.symbols.len() }

// ReferenceLen reports the number of references.
func (t *SymbolTable) ReferenceLen() int { return t.references.len() }

// Get returns a symbol or nil for an invalid id.
func (t *SymbolTable) Get(id SymbolID) *Symbol { return t.symbols.at(uint32(id)) }

// Reference returns a reference or nil for an invalid id.
func (t *SymbolTable) Reference(id ReferenceID) *Reference { return t.references.at(uint32(id)) }

// Name returns the symbol's name.
func (t *SymbolTable) Name(id SymbolID) string {
	if sym := t.Get(id); sym != nil {
		return t.strings.MustLookup(sym.Name)
	}
	return ""
}

// ReferenceName returns the referenced identifier.
func (t *SymbolTable) ReferenceName(id ReferenceID) string {
	if ref := t.Reference(id); ref != nil {
		return t.strings.MustLookup(ref.Name)
	}
	return ""
}

// Flags returns a symbol's flags.
func (t *SymbolTable) Flags(id SymbolID) SymbolFlags {
	if sym := t.Get(id); sym != nil {
		return sym.Flags
	}
	return SymbolNone
}

// Scope returns the owning scope of a symbol.
func (t *SymbolTable) Scope(id SymbolID) ScopeID {
	if sym := t.Get(id); sym != nil {
		return sym.Scope
	}
	return NoScopeID
}

// IDs returns every symbol id in allocation order.
func (t *SymbolTable) IDs() []SymbolID {
	out := make([]SymbolID, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		out = append(out, SymbolID(i)) //nolint:gosec // bounded by arena size
	}
	return out
}

// ReferenceIDs returns every reference id in allocation order.
func (t *SymbolTable) ReferenceIDs() []ReferenceID {
	out := make([]ReferenceID, 0, t.ReferenceLen())
	for i := 1; i <= t.ReferenceLen(); i++ {
		out = append(out, ReferenceID(i)) //nolint:gosec // bounded by arena size
	}
	return out
}

// resolve binds ref to sym.
func (t *SymbolTable) resolve(ref ReferenceID, sym SymbolID) {
	r := t.Reference(ref)
	s := t.Get(sym)
	if r == nil || s == nil {
		return
	}
	r.Symbol = sym
	s.References = append(s.References, ref)
}

func (t *SymbolTable) addRedeclaration(id SymbolID, span source.Span) {
	if sym := t.Get(id); sym != nil {
		sym.Redeclarations = append(sym.Redeclarations, span)
	}
}

func (t *SymbolTable) addDeclaration(id SymbolID, node NodeID) {
	if sym := t.Get(id); sym != nil && node.IsValid() {
		sym.Declarations = append(sym.Declarations, node)
	}
}

func (t *SymbolTable) unionFlags(id SymbolID, flags SymbolFlags) {
	if sym := t.Get(id); sym != nil {
		sym.Flags |= flags
	}
}
