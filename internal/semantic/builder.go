package semantic

import (
	"errors"
	"path/filepath"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/source"
	"jsbind/internal/trace"
)

// errInvariant is wrapped into every panic raised for a broken structural
// invariant. Such a panic is a bug in the builder or in the AST, never in
// the analysed program.
var errInvariant = errors.New("semantic invariant violated")

// IsInvariantError reports whether err (usually a recovered panic value)
// comes from a structural invariant check.
func IsInvariantError(err error) bool { return errors.Is(err, errInvariant) }

// Options configure one Build call.
type Options struct {
	SourceType ast.SourceType
	SourceText string
	// Path is the file path; the module record is keyed by its absolute form.
	Path string
	// ModuleRecord enables the extra pass over top-level imports and exports.
	ModuleRecord bool
	// Checker runs early-error checks on leaving every node. Nil disables them.
	Checker EarlyChecker
	Tracer  trace.Tracer
	// ParentSpan nests the "semantic" trace span under a caller's span.
	ParentSpan     uint64
	MaxDiagnostics int
	// Strings lets several files share one interner. A fresh one is made when nil.
	Strings *source.Interner
	// JSDoc attaches /** */ comments from Program.Comments to the nodes they
	// document. SourceText, when set, rules out comments not directly
	// before the node.
	JSDoc bool
}

// Result is what Build returns: the semantic model and the diagnostics
// reported while building it.
type Result struct {
	Semantic    *Semantic
	Diagnostics *diag.Bag
}

// State is the traversal cursor. It is saved and restored strictly LIFO
// around constructs that change it.
type State struct {
	Node        NodeID
	Scope       ScopeID
	NodeFlags   NodeFlags
	SymbolFlags SymbolFlags
}

// Builder runs the single binding pass.
type Builder struct {
	opts       Options
	sourceType ast.SourceType
	strings    *source.Interner
	nodes      *Nodes
	scopes     *ScopeTree
	symbols    *SymbolTable
	classes    *ClassTable
	labels     labelStack
	module     *ModuleRecord
	jsdoc      *jsdocBuilder

	state            State
	scopeSymbolFlags []SymbolFlags
	// currentReferenceFlags is set by a parent construct and consumed by the
	// next IdentifierReference.
	currentReferenceFlags ReferenceFlags
	namespaces            []SymbolID
	importKind            ast.ImportExportKind
	exportKind            ast.ImportExportKind

	bag      *diag.Bag
	reporter diag.Reporter
	checker  EarlyChecker
	tracer   trace.Tracer
	stats    Stats
}

// Build analyses prog and returns the semantic model.
func Build(prog *ast.Program, opts Options) *Result {
	stats := CountStats(prog)
	b := newBuilder(opts, stats)
	return b.Build(prog)
}

// NewBuilder returns a builder with no scope entered. It is mostly useful
// for driving EnterScope/LeaveScope by hand.
func NewBuilder(opts Options) *Builder {
	return newBuilder(opts, Stats{})
}

func newBuilder(opts Options, stats Stats) *Builder {
	strings := opts.Strings
	if strings == nil {
		strings = source.NewInternerSize(stats.Symbols + stats.References)
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Builder{
		opts:       opts,
		sourceType: opts.SourceType,
		strings:    strings,
		nodes:      newNodes(stats.Nodes),
		scopes:     newScopeTree(stats.Scopes, strings),
		symbols:    newSymbolTable(stats.Symbols, stats.References, strings),
		classes:    newClassTable(),
		labels:     newLabelStack(),
		bag:        bag,
		reporter:   diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		checker:    opts.Checker,
		tracer:     tracer,
		stats:      stats,
	}
}

// Build runs the traversal over prog. A builder is single use.
func (b *Builder) Build(prog *ast.Program) *Result {
	span := trace.Begin(b.tracer, trace.ScopePass, "semantic", b.opts.ParentSpan)
	if b.sourceType == (ast.SourceType{}) {
		b.sourceType = prog.SourceType
	}
	if b.opts.JSDoc {
		b.jsdoc = newJSDocBuilder(prog, b.opts.SourceText)
	}

	b.visitProgram(prog)

	var docs *JSDocs
	if b.jsdoc != nil {
		docs = b.jsdoc.finish()
	}

	if b.opts.ModuleRecord {
		mspan := trace.Begin(b.tracer, trace.ScopeModule, "module_record", span.Anchor())
		b.module = buildModuleRecord(prog, b.modulePath())
		if b.checker != nil {
			b.checker.CheckModuleRecord(b)
		}
		mspan.End("")
	}

	sem := &Semantic{
		SourceType:   b.sourceType,
		Path:         b.opts.Path,
		Strings:      b.strings,
		Nodes:        b.nodes,
		Scopes:       b.scopes,
		Symbols:      b.symbols,
		Classes:      b.classes,
		UnusedLabels: b.labels.unused,
		ModuleRecord: b.module,
		JSDoc:        docs,
		Stats:        b.stats,
	}
	span.WithCount("nodes", b.nodes.Len()).
		WithCount("scopes", b.scopes.Len()).
		WithCount("symbols", b.symbols.Len()).
		WithCount("diagnostics", b.bag.Len()).
		End("")
	return &Result{Semantic: sem, Diagnostics: b.bag}
}

func (b *Builder) modulePath() string {
	if b.opts.Path == "" {
		return ""
	}
	abs, err := filepath.Abs(b.opts.Path)
	if err != nil {
		return filepath.Clean(b.opts.Path)
	}
	return abs
}

// State returns a copy of the traversal cursor.
func (b *Builder) State() State { return b.state }

// StrictMode reports whether the code at the cursor is strict: either the
// scope is strict or the cursor is inside a class.
func (b *Builder) StrictMode() bool {
	return b.scopes.IsStrict(b.state.Scope) || b.state.NodeFlags&NodeClass != 0
}

// Diagnostics returns the bag collecting this builder's reports.
func (b *Builder) Diagnostics() *diag.Bag { return b.bag }

func (b *Builder) enterNode(n ast.Node) NodeID {
	id := b.nodes.add(n, b.state.Node, b.state.Scope, b.state.NodeFlags)
	if b.jsdoc != nil && b.jsdoc.enter(id, n.Kind(), n.Span().Start) {
		b.nodes.Get(id).Flags |= NodeJSDoc
	}
	b.state.Node = id
	return id
}

// leaveNode runs the early-error checker for the node under the cursor and
// moves the cursor back to the parent.
func (b *Builder) leaveNode() {
	id := b.state.Node
	if !id.IsValid() {
		return
	}
	if b.checker != nil {
		b.checker.CheckNode(b, id)
	}
	b.nodes.close(id)
	b.state.Node = b.nodes.Parent(id)
}
