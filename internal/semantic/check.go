package semantic

import (
	"jsbind/internal/ast"
	"jsbind/internal/diag"
)

// CheckContext is the read-only view handed to early-error checks. The
// builder implements it; checks must only report diagnostics.
type CheckContext interface {
	SourceText() string
	SourceType() ast.SourceType
	Nodes() *Nodes
	Scopes() *ScopeTree
	Symbols() *SymbolTable
	Classes() *ClassTable
	ModuleRecord() *ModuleRecord
	CurrentScope() ScopeID
	StrictMode() bool
	Reporter() diag.Reporter
}

// EarlyChecker validates syntax rules that need binding context.
type EarlyChecker interface {
	// CheckNode runs when the traversal leaves node id.
	CheckNode(ctx CheckContext, id NodeID)
	// CheckModuleRecord runs once after the module record is built.
	CheckModuleRecord(ctx CheckContext)
}

var _ CheckContext = (*Builder)(nil)

func (b *Builder) SourceText() string          { return b.opts.SourceText }
func (b *Builder) SourceType() ast.SourceType  { return b.sourceType }
func (b *Builder) Nodes() *Nodes               { return b.nodes }
func (b *Builder) Scopes() *ScopeTree          { return b.scopes }
func (b *Builder) Symbols() *SymbolTable       { return b.symbols }
func (b *Builder) Classes() *ClassTable        { return b.classes }
func (b *Builder) ModuleRecord() *ModuleRecord { return b.module }
func (b *Builder) CurrentScope() ScopeID       { return b.state.Scope }
func (b *Builder) Reporter() diag.Reporter     { return b.reporter }

// Checkers runs several checkers in order.
type Checkers []EarlyChecker

func (cs Checkers) CheckNode(ctx CheckContext, id NodeID) {
	for _, c := range cs {
		c.CheckNode(ctx, id)
	}
}

func (cs Checkers) CheckModuleRecord(ctx CheckContext) {
	for _, c := range cs {
		c.CheckModuleRecord(ctx)
	}
}
