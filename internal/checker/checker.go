// Package checker reports the early errors that need binding context: the
// strictness of the enclosing code, enclosing labels and loops, class
// members and the module record. It plugs into semantic.Build as its
// EarlyChecker and only ever reports diagnostics.
package checker

import (
	"fmt"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/semantic"
	"jsbind/internal/source"
)

// Checker runs the JavaScript early-error battery and, for TypeScript
// sources, the TypeScript one. It keeps no state between nodes.
type Checker struct {
	// SkipTypeScript disables the TypeScript battery even for .ts files.
	SkipTypeScript bool
}

var _ semantic.EarlyChecker = (*Checker)(nil)

// New returns a checker with both batteries enabled.
func New() *Checker { return &Checker{} }

// nodeCtx bundles what every single check needs.
type nodeCtx struct {
	semantic.CheckContext
	id   semantic.NodeID
	node *semantic.SemanticNode
}

func (c nodeCtx) errorf(code diag.Code, span source.Span, format string, args ...any) *diag.ReportBuilder {
	return diag.ReportError(c.Reporter(), code, span, fmt.Sprintf(format, args...))
}

// strict reports whether the node sits in strict mode code. The cursor
// has already left the node, so the node's own scope and flags are used.
func (c nodeCtx) strict() bool {
	return c.Scopes().IsStrict(c.node.Scope) || c.node.Flags&semantic.NodeClass != 0
}

func (c nodeCtx) typescript() bool { return c.SourceType().TypeScript }

// CheckNode implements semantic.EarlyChecker.
func (ch *Checker) CheckNode(ctx semantic.CheckContext, id semantic.NodeID) {
	sn := ctx.Nodes().Get(id)
	if sn == nil {
		return
	}
	c := nodeCtx{CheckContext: ctx, id: id, node: sn}
	checkJavaScript(c)
	if c.typescript() && !ch.SkipTypeScript {
		checkTypeScript(c)
	}
}

func checkJavaScript(c nodeCtx) {
	switch n := c.node.Node.(type) {
	case *ast.BindingIdentifier:
		checkBindingIdentifier(c, n)
	case *ast.IdentifierReference:
		checkIdentifierName(c, n.Name, n.Span())
	case *ast.LabelIdentifier:
		checkIdentifierName(c, n.Name, n.Span())
	case *ast.PrivateIdentifier:
		checkPrivateIdentifier(c, n)
	case *ast.NumericLiteral:
		checkNumericLiteral(c, n)
	case *ast.WithStatement:
		checkWith(c, n)
	case *ast.UnaryExpression:
		checkDelete(c, n)
	case *ast.LabeledStatement:
		checkLabeled(c, n)
	case *ast.BreakStatement:
		checkBreak(c, n)
	case *ast.ContinueStatement:
		checkContinue(c, n)
	case *ast.ReturnStatement:
		checkReturn(c, n)
	case *ast.ForInStatement:
		checkForHead(c, n.Left, false)
	case *ast.ForOfStatement:
		checkForHead(c, n.Left, true)
	case *ast.Function:
		if n.Body != nil {
			checkUseStrictParams(c, n.Body.Directives, n.Params)
		}
	case *ast.ArrowFunctionExpression:
		if n.Body != nil && !n.Expression {
			checkUseStrictParams(c, n.Body.Directives, n.Params)
		}
	case *ast.ClassBody:
		checkClassBody(c, n)
	case *ast.MetaProperty:
		checkMetaProperty(c, n)
	case *ast.AwaitExpression:
		checkInParameters(c, diag.SynAwaitInParameters, "await", n.Span())
	case *ast.YieldExpression:
		checkInParameters(c, diag.SynYieldInParameters, "yield", n.Span())
	}
}

// CheckModuleRecord implements semantic.EarlyChecker. TypeScript sources
// are skipped: exports may name types and ambient declarations.
func (ch *Checker) CheckModuleRecord(ctx semantic.CheckContext) {
	rec := ctx.ModuleRecord()
	if rec == nil || ctx.SourceType().TypeScript {
		return
	}
	r := ctx.Reporter()
	root := ctx.Scopes().Root()
	for _, e := range rec.LocalExports {
		if e.Default || e.LocalName.Name == "" {
			continue
		}
		if _, ok := ctx.Scopes().Binding(root, e.LocalName.Name); !ok {
			diag.ReportError(r, diag.SemaUndefinedExport, e.LocalName.Span,
				fmt.Sprintf("export '%s' is not defined", e.LocalName.Name)).Emit()
		}
	}
	for _, dup := range rec.DuplicateExports {
		// default is reported once, below
		if dup.Name == "default" {
			continue
		}
		b := diag.ReportError(r, diag.SemaDuplicateExport, dup.Span,
			fmt.Sprintf("duplicated export '%s'", dup.Name))
		if first, ok := rec.ExportedBindings[dup.Name]; ok {
			b = b.WithNote(first, "exported here first")
		}
		b.Emit()
	}
	defaults := rec.DefaultExports()
	for _, sp := range defaults[min(1, len(defaults)):] {
		diag.ReportError(r, diag.SemaDuplicateDefault, sp, "duplicated default export").
			WithNote(defaults[0], "default exported here first").
			Emit()
	}
}
