package semantic

// NodeID identifies a node in the node store.
type NodeID uint32

// NoNodeID marks the absence of a node (parent of the root).
const NoNodeID NodeID = 0

// IsValid reports whether the id refers to an allocated node.
func (id NodeID) IsValid() bool { return id != NoNodeID }

// ScopeID identifies a scope in the scope tree.
type ScopeID uint32

// NoScopeID marks the absence of a scope (parent of the root scope).
const NoScopeID ScopeID = 0

// IsValid reports whether the id refers to an allocated scope.
func (id ScopeID) IsValid() bool { return id != NoScopeID }

// SymbolID identifies a symbol in the symbol table.
type SymbolID uint32

// NoSymbolID marks an unresolved reference.
const NoSymbolID SymbolID = 0

// IsValid reports whether the id refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// ReferenceID identifies an identifier use site.
type ReferenceID uint32

// NoReferenceID marks the absence of a reference.
const NoReferenceID ReferenceID = 0

// IsValid reports whether the id refers to an allocated reference.
func (id ReferenceID) IsValid() bool { return id != NoReferenceID }
