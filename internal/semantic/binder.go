package semantic

import (
	"fmt"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/source"
)

// bind creates the symbols a node declares. It runs when the traversal
// enters the node, before its children are visited.
func (b *Builder) bind(n ast.Node) {
	switch n := n.(type) {
	case *ast.VariableDeclarator:
		b.bindVariableDeclarator(n)
	case *ast.Function:
		if n.IsDeclaration() {
			b.bindFunctionDeclaration(n)
		}
	case *ast.Class:
		if n.Type == ast.ClassDeclaration {
			b.bindClassDeclaration(n)
		}
	case *ast.FormalParameter:
		b.bindFormalParameter(n)
	case *ast.CatchParameter:
		b.bindCatchParameter(n)
	case *ast.ImportSpecifier:
		b.bindImport(n.Local, n.ImportKind)
	case *ast.ImportDefaultSpecifier:
		b.bindImport(n.Local, ast.KindValue)
	case *ast.ImportNamespaceSpecifier:
		b.bindImport(n.Local, ast.KindValue)
	case *ast.TSImportEqualsDeclaration:
		b.bindImport(n.ID, n.ImportKind)
	case *ast.TSTypeAliasDeclaration:
		b.declareIdent(n.ID, b.ambient(SymbolTypeAlias, n.Declare), SymbolTypeAliasExcludes)
	case *ast.TSInterfaceDeclaration:
		b.declareIdent(n.ID, b.ambient(SymbolInterface, n.Declare), SymbolInterfaceExcludes)
	case *ast.TSEnumDeclaration:
		b.bindEnum(n)
	case *ast.TSEnumMember:
		name := ast.ModuleExportName(n.ID)
		if name != "" {
			b.DeclareSymbol(n.ID.Span(), name, SymbolEnumMember, SymbolEnumMemberExcludes)
		}
	case *ast.TSTypeParameter:
		b.declareIdent(n.Name, SymbolTypeParameter, SymbolTypeParameterExcludes)
	case *ast.TSModuleDeclaration:
		b.bindModuleDeclaration(n)
	}
}

// DeclareSymbol binds name in the current scope.
func (b *Builder) DeclareSymbol(span source.Span, name string, includes, excludes SymbolFlags) SymbolID {
	includes |= b.state.SymbolFlags & SymbolExport
	return b.DeclareSymbolOnScope(span, name, b.state.Scope, includes, excludes)
}

// DeclareSymbolOnScope binds name in scope. A binding whose flags intersect
// excludes is a redeclaration: one diagnostic is reported and the existing
// symbol is reused. Either way the existing binding absorbs the new flags.
func (b *Builder) DeclareSymbolOnScope(span source.Span, name string, scope ScopeID, includes, excludes SymbolFlags) SymbolID {
	s := b.scopes.Get(scope)
	if s == nil {
		panic(fmt.Errorf("declare %q: %w: scope %d does not exist", name, errInvariant, scope))
	}
	if existing, ok := b.checkRedeclaration(scope, span, name, excludes, true); ok {
		b.redeclared(existing, includes)
		return existing
	}
	key := b.intern(name)
	if existing, ok := s.Bindings[key]; ok {
		b.symbols.unionFlags(existing, includes)
		b.symbols.addDeclaration(existing, b.state.Node)
		b.symbols.addRedeclaration(existing, span)
		return existing
	}
	id := b.symbols.createSymbol(span, key, includes, scope, b.state.Node)
	s.Bindings[key] = id
	return id
}

// checkRedeclaration reports whether scope already binds name with flags
// that intersect excludes; report controls the diagnostic.
func (b *Builder) checkRedeclaration(scope ScopeID, span source.Span, name string, excludes SymbolFlags, report bool) (SymbolID, bool) {
	s := b.scopes.Get(scope)
	if s == nil {
		return NoSymbolID, false
	}
	key, ok := b.strings.Find(name)
	if !ok {
		return NoSymbolID, false
	}
	existing, ok := s.Bindings[key]
	if !ok {
		return NoSymbolID, false
	}
	if b.symbols.Flags(existing)&excludes == 0 {
		return NoSymbolID, false
	}
	if report {
		b.reportRedeclaration(name, b.symbols.Get(existing).Span, span)
		b.symbols.addRedeclaration(existing, span)
	}
	return existing, true
}

// redeclared folds a conflicting declaration into the existing symbol.
func (b *Builder) redeclared(existing SymbolID, includes SymbolFlags) {
	b.symbols.unionFlags(existing, includes)
	b.symbols.addDeclaration(existing, b.state.Node)
}

func (b *Builder) reportRedeclaration(name string, first, again source.Span) {
	diag.ReportError(b.reporter, diag.SemaRedeclaration, again,
		fmt.Sprintf("identifier '%s' has already been declared", name)).
		WithNote(first, fmt.Sprintf("'%s' was first declared here", name)).
		Emit()
}

// declareHoisted binds a `var` in the nearest Var scope. Every scope between
// the current one and the target is checked for a conflicting lexical
// binding first.
func (b *Builder) declareHoisted(span source.Span, name string, includes, excludes SymbolFlags) SymbolID {
	includes |= b.state.SymbolFlags & SymbolExport
	target := b.state.Scope
	for s := range b.scopes.Ancestors(b.state.Scope) {
		target = s
		flags := b.scopes.Flags(s)
		if flags.IsVar() {
			break
		}
		if existing, ok := b.checkRedeclaration(s, span, name, SymbolValue, false); ok {
			// `catch (e) { var e }` is allowed for a simple catch binding.
			if b.symbols.Flags(existing)&(SymbolFunctionScopedVariable|SymbolCatchVariable) == SymbolFunctionScopedVariable|SymbolCatchVariable {
				continue
			}
			b.reportRedeclaration(name, b.symbols.Get(existing).Span, span)
			b.symbols.addRedeclaration(existing, span)
			b.redeclared(existing, includes)
			return existing
		}
	}
	return b.DeclareSymbolOnScope(span, name, target, includes, excludes)
}

// declareLexical binds a block scoped name. Inside a catch body the catch
// parameter is checked too: every catch binding conflicts with a lexical
// name of the body, block functions included. Directly in a function
// expression's scope the name shadows the expression's own name.
func (b *Builder) declareLexical(span source.Span, name string, includes, excludes SymbolFlags) SymbolID {
	cur := b.scopes.Get(b.state.Scope)
	if cur != nil && !cur.Flags.IsFunction() && b.scopes.Flags(cur.Parent).IsCatch() {
		if existing, ok := b.checkRedeclaration(cur.Parent, span, name, excludes|SymbolCatchVariable, true); ok {
			b.redeclared(existing, includes)
			return existing
		}
	}
	if own := b.expressionName(b.state.Scope, name); own.IsValid() {
		return b.shadow(own, span, name, includes)
	}
	return b.DeclareSymbol(span, name, includes, excludes)
}

// expressionName returns the symbol of a function expression's own name when
// scope is that function's scope and nothing else has joined the binding.
func (b *Builder) expressionName(scope ScopeID, name string) SymbolID {
	s := b.scopes.Get(scope)
	if s == nil || !s.Flags.IsFunction() || s.Flags.IsArrow() {
		return NoSymbolID
	}
	sn := b.nodes.Get(s.Node)
	if sn == nil {
		return NoSymbolID
	}
	fn, ok := sn.Node.(*ast.Function)
	if !ok || fn.Type != ast.FunctionExpression || fn.ID == nil || fn.ID.Name != name {
		return NoSymbolID
	}
	key, ok := b.strings.Find(name)
	if !ok {
		return NoSymbolID
	}
	sym, ok := s.Bindings[key]
	if !ok || b.symbols.Flags(sym) != SymbolFunction {
		return NoSymbolID
	}
	return sym
}

// shadow rebinds name in the current scope to a fresh symbol. The old one
// stays in the table, marked Shadowed, with the references resolved so far.
func (b *Builder) shadow(old SymbolID, span source.Span, name string, includes SymbolFlags) SymbolID {
	key := b.intern(name)
	id := b.symbols.createSymbol(span, key, includes, b.state.Scope, b.state.Node)
	b.symbols.Get(old).Shadowed = true
	b.scopes.Get(b.state.Scope).Bindings[key] = id
	return id
}

func (b *Builder) declareIdent(id *ast.BindingIdentifier, includes, excludes SymbolFlags) SymbolID {
	if id == nil {
		return NoSymbolID
	}
	return b.DeclareSymbol(id.Span(), id.Name, includes, excludes)
}

func (b *Builder) ambient(flags SymbolFlags, declare bool) SymbolFlags {
	if declare || b.sourceType.Definition {
		flags |= SymbolAmbient
	}
	return flags
}

func (b *Builder) bindVariableDeclarator(n *ast.VariableDeclarator) {
	var includes, excludes SymbolFlags
	switch n.VarKind {
	case ast.VarKindVar:
		includes, excludes = SymbolFunctionScopedVariable, SymbolFunctionScopedVariableExcludes
	case ast.VarKindConst:
		includes, excludes = SymbolBlockScopedVariable|SymbolConstVariable, SymbolBlockScopedVariableExcludes
	default:
		includes, excludes = SymbolBlockScopedVariable, SymbolBlockScopedVariableExcludes
	}
	ast.BoundNames(n.ID, func(id *ast.BindingIdentifier) {
		if n.VarKind == ast.VarKindVar {
			b.declareHoisted(id.Span(), id.Name, includes, excludes)
			return
		}
		b.declareLexical(id.Span(), id.Name, includes, excludes)
	})
	b.makeNamespacesValueLike()
}

func (b *Builder) bindFunctionDeclaration(n *ast.Function) {
	b.makeNamespacesValueLike()
	if n.ID == nil {
		return
	}
	includes, excludes := SymbolFunction, SymbolFunctionExcludes
	if b.scopes.Flags(b.state.Scope).IsVar() || (!b.StrictMode() && !n.Async && !n.Generator) {
		includes |= SymbolFunctionScopedVariable
	} else {
		includes |= SymbolBlockScopedVariable
		excludes = SymbolBlockScopedVariableExcludes
	}
	includes = b.ambient(includes, n.Declare)
	if b.scopes.Flags(b.state.Scope).IsVar() {
		b.DeclareSymbol(n.ID.Span(), n.ID.Name, includes, excludes)
		return
	}
	// в блоке функция лексическая даже в sloppy-режиме
	b.declareLexical(n.ID.Span(), n.ID.Name, includes, excludes)
}

// bindFunctionExpressionName binds the name of a function expression in its
// own scope. Nothing outside can see it.
func (b *Builder) bindFunctionExpressionName(n *ast.Function) {
	if n.ID != nil {
		b.DeclareSymbol(n.ID.Span(), n.ID.Name, SymbolFunction, SymbolNone)
	}
}

func (b *Builder) bindClassDeclaration(n *ast.Class) {
	b.makeNamespacesValueLike()
	if n.ID == nil {
		return
	}
	b.declareLexical(n.ID.Span(), n.ID.Name, b.ambient(SymbolClass, n.Declare), SymbolClassExcludes)
}

func (b *Builder) bindClassExpressionName(n *ast.Class) {
	if n.ID != nil {
		b.DeclareSymbol(n.ID.Span(), n.ID.Name, SymbolClass, SymbolNone)
	}
}

func (b *Builder) bindFormalParameter(n *ast.FormalParameter) {
	parent := b.nodes.Parent(b.state.Node)
	var list *ast.FormalParameters
	if sn := b.nodes.Get(parent); sn != nil {
		list, _ = sn.Node.(*ast.FormalParameters)
	}
	if list == nil {
		panic(fmt.Errorf("formal parameter: %w: parent is %s", errInvariant, b.nodes.Kind(parent)))
	}
	excludes := SymbolFunctionScopedVariableExcludes
	if list.ParamsKind != ast.ParamsFormal || b.StrictMode() || !list.IsSimple() {
		excludes |= SymbolFunctionScopedVariable
	}
	ast.BoundNames(n.Pattern, func(id *ast.BindingIdentifier) {
		b.DeclareSymbol(id.Span(), id.Name, SymbolFunctionScopedVariable, excludes)
	})
}

func (b *Builder) bindCatchParameter(n *ast.CatchParameter) {
	if id, ok := n.Pattern.(*ast.BindingIdentifier); ok {
		b.DeclareSymbol(id.Span(), id.Name, SymbolFunctionScopedVariable|SymbolCatchVariable, SymbolNone)
		return
	}
	ast.BoundNames(n.Pattern, func(id *ast.BindingIdentifier) {
		b.DeclareSymbol(id.Span(), id.Name, SymbolBlockScopedVariable|SymbolCatchVariable, SymbolBlockScopedVariableExcludes)
	})
}

func (b *Builder) bindImport(local *ast.BindingIdentifier, kind ast.ImportExportKind) {
	includes := SymbolImport
	if kind == ast.KindType || b.importKind == ast.KindType {
		includes = SymbolTypeImport
	}
	b.declareIdent(local, includes, SymbolImportExcludes)
}

func (b *Builder) bindEnum(n *ast.TSEnumDeclaration) {
	b.makeNamespacesValueLike()
	if n.Const {
		b.declareIdent(n.ID, b.ambient(SymbolConstEnum, n.Declare), SymbolConstEnumExcludes)
		return
	}
	b.declareIdent(n.ID, b.ambient(SymbolRegularEnum, n.Declare), SymbolRegularEnumExcludes)
}

// bindModuleDeclaration binds `namespace N` as a type-only namespace. It
// turns into a value module once a value declaration is seen inside.
func (b *Builder) bindModuleDeclaration(n *ast.TSModuleDeclaration) {
	id, ok := n.ID.(*ast.BindingIdentifier)
	if !ok || n.ModuleKind == ast.TSModuleGlobal {
		b.namespaces = append(b.namespaces, NoSymbolID)
		return
	}
	flags := b.ambient(SymbolNameSpaceModule, n.Declare)
	if b.nodes.ParentKind(b.state.Node) == ast.KindTSModuleDeclaration {
		// `namespace a.b {}`: b is an exported member of a
		flags |= SymbolExport
	}
	sym := b.declareIdent(id, flags, SymbolNameSpaceModuleExcludes)
	b.namespaces = append(b.namespaces, sym)
}

func (b *Builder) makeNamespacesValueLike() {
	for _, sym := range b.namespaces {
		if !sym.IsValid() || b.symbols.Flags(sym)&SymbolAmbient != 0 {
			continue
		}
		b.symbols.unionFlags(sym, SymbolValueModule)
	}
}
