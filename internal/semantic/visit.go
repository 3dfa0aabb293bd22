package semantic

import (
	"jsbind/internal/ast"
)

// visitOpt visits p unless it is a nil pointer.
func visitOpt[P interface {
	*T
	ast.Node
}, T any](b *Builder, p P) {
	if p != nil {
		b.visit(p)
	}
}

func visitList[N ast.Node](b *Builder, list []N) {
	for _, n := range list {
		b.visit(n)
	}
}

// visit is the single dispatch of the traversal. Constructs that open a
// scope, bind in an unusual order or set up reference flags have their own
// method; everything else is walked generically.
func (b *Builder) visit(n ast.Node) {
	if n == nil {
		return
	}
	switch n := n.(type) {
	case *ast.Program:
		b.visitProgram(n)
	case *ast.BlockStatement:
		b.visitBlock(n)
	case *ast.ForStatement:
		b.visitFor(n)
	case *ast.ForInStatement:
		b.visitForInOf(n, n.Left, n.Right, n.Body)
	case *ast.ForOfStatement:
		b.visitForInOf(n, n.Left, n.Right, n.Body)
	case *ast.SwitchStatement:
		b.visitSwitch(n)
	case *ast.CatchClause:
		b.visitCatchClause(n)
	case *ast.CatchParameter:
		b.visitCatchParameter(n)
	case *ast.LabeledStatement:
		b.visitLabeled(n)
	case *ast.BreakStatement:
		b.visitJump(n, n.Label)
	case *ast.ContinueStatement:
		b.visitJump(n, n.Label)

	case *ast.Function:
		b.visitFunction(n, ScopeEmpty)
	case *ast.ArrowFunctionExpression:
		b.visitArrow(n)
	case *ast.Class:
		b.visitClass(n)
	case *ast.MethodDefinition:
		b.visitMethod(n)
	case *ast.ObjectProperty:
		b.visitObjectProperty(n)
	case *ast.StaticBlock:
		b.visitStaticBlock(n)

	case *ast.IdentifierReference:
		b.enterNode(n)
		b.referenceIdentifier(n)
		b.leaveNode()
	case *ast.PrivateIdentifier:
		b.visitPrivateIdentifier(n)
	case *ast.AssignmentExpression:
		b.visitAssignment(n)
	case *ast.UpdateExpression:
		b.enterNode(n)
		b.visitTarget(n.Argument, ReferenceReadWrite)
		b.leaveNode()
	case *ast.MemberExpression:
		b.visitMember(n)
	case *ast.YieldExpression:
		b.visitYield(n)
	case *ast.ArrayAssignmentTarget:
		b.enterNode(n)
		b.currentReferenceFlags = ReferenceNone
		for _, el := range n.Elements {
			b.visitTarget(el, ReferenceWrite)
		}
		visitOpt(b, n.Rest)
		b.leaveNode()
	case *ast.ObjectAssignmentTarget:
		b.enterNode(n)
		b.currentReferenceFlags = ReferenceNone
		visitList(b, n.Properties)
		visitOpt(b, n.Rest)
		b.leaveNode()
	case *ast.AssignmentTargetWithDefault:
		b.enterNode(n)
		b.visitTarget(n.Binding, ReferenceWrite)
		b.visit(n.Init)
		b.leaveNode()
	case *ast.AssignmentTargetPropertyIdentifier:
		b.enterNode(n)
		if n.Binding != nil {
			b.visitTarget(n.Binding, ReferenceWrite)
		}
		b.visit(n.Init)
		b.leaveNode()
	case *ast.AssignmentTargetPropertyProperty:
		b.enterNode(n)
		b.visit(n.Name)
		b.visitTarget(n.Binding, ReferenceWrite)
		b.leaveNode()
	case *ast.AssignmentTargetRest:
		b.enterNode(n)
		b.visitTarget(n.Target, ReferenceWrite)
		b.leaveNode()

	case *ast.ImportDeclaration:
		b.enterNode(n)
		b.importKind = n.ImportKind
		visitList(b, n.Specifiers)
		b.importKind = ast.KindValue
		visitOpt(b, n.Source)
		b.leaveNode()
	case *ast.ExportNamedDeclaration:
		b.visitExportNamed(n)
	case *ast.ExportSpecifier:
		b.visitExportSpecifier(n)
	case *ast.ExportDefaultDeclaration:
		b.visitExportDefault(n)
	case *ast.TSExportAssignment:
		b.enterNode(n)
		if ident, ok := n.Expression.(*ast.IdentifierReference); ok {
			b.visitWithFlags(ident, ReferenceRead|ReferenceType)
		} else {
			b.visit(n.Expression)
		}
		b.leaveNode()

	case *ast.TSTypeAliasDeclaration:
		b.visitTypeAlias(n)
	case *ast.TSInterfaceDeclaration:
		b.visitInterface(n)
	case *ast.TSEnumDeclaration:
		b.visitEnum(n)
	case *ast.TSModuleDeclaration:
		b.visitModuleDeclaration(n)
	case *ast.TSImportEqualsDeclaration:
		b.visitImportEquals(n)
	case *ast.TSMethodSignature:
		b.enterNode(n)
		if n.Computed {
			b.visitWithFlags(n.Key, ReferenceValueAsType)
		} else {
			b.visit(n.Key)
		}
		b.visitSignature(n.TypeParameters, n.Params, n.ReturnType)
		b.leaveNode()
	case *ast.TSCallSignatureDeclaration:
		b.enterNode(n)
		b.visitSignature(n.TypeParameters, n.Params, n.ReturnType)
		b.leaveNode()
	case *ast.TSConstructSignatureDeclaration:
		b.enterNode(n)
		b.visitSignature(n.TypeParameters, n.Params, n.ReturnType)
		b.leaveNode()
	case *ast.TSFunctionType:
		b.enterNode(n)
		b.visitSignature(n.TypeParameters, n.Params, n.ReturnType)
		b.leaveNode()
	case *ast.TSConstructorType:
		b.enterNode(n)
		b.visitSignature(n.TypeParameters, n.Params, n.ReturnType)
		b.leaveNode()
	case *ast.TSPropertySignature:
		b.enterNode(n)
		if n.Computed {
			b.visitWithFlags(n.Key, ReferenceValueAsType)
		} else {
			b.visit(n.Key)
		}
		visitOpt(b, n.TypeAnnotation)
		b.leaveNode()
	case *ast.TSTypeReference:
		b.enterNode(n)
		b.visitWithFlags(n.TypeName, ReferenceType)
		visitOpt(b, n.TypeArguments)
		b.leaveNode()
	case *ast.TSTypeQuery:
		b.enterNode(n)
		b.visitWithFlags(n.ExprName, ReferenceValueAsType)
		visitOpt(b, n.TypeArguments)
		b.leaveNode()
	case *ast.TSTypeParameterInstantiation:
		b.enterNode(n)
		saved := b.currentReferenceFlags
		b.currentReferenceFlags = ReferenceNone
		visitList(b, n.Params)
		b.currentReferenceFlags = saved
		b.leaveNode()
	case *ast.TSInterfaceHeritage:
		b.enterNode(n)
		b.visitWithFlags(n.Expression, ReferenceType)
		visitOpt(b, n.TypeArguments)
		b.leaveNode()
	case *ast.TSClassImplements:
		b.enterNode(n)
		b.visitWithFlags(n.Expression, ReferenceType)
		visitOpt(b, n.TypeArguments)
		b.leaveNode()
	case *ast.TSTypeAssertion:
		// the type is written first but must not take the target flags
		b.enterNode(n)
		b.visitWithFlags(n.TypeAnnotation, ReferenceNone)
		b.visit(n.Expression)
		b.leaveNode()

	default:
		b.walk(n)
	}
}

// walk enters n, binds what it declares and visits its children in source
// order.
func (b *Builder) walk(n ast.Node) {
	b.enterNode(n)
	b.bind(n)
	ast.EachChild(n, b.visit)
	b.leaveNode()
}

// visitWithFlags visits n with the given reference flags pending, then
// restores whatever was pending before.
func (b *Builder) visitWithFlags(n ast.Node, flags ReferenceFlags) {
	saved := b.currentReferenceFlags
	b.currentReferenceFlags = flags
	b.visit(n)
	b.currentReferenceFlags = saved
}

// visitTarget visits an assignment target; identifiers reached directly get
// flags.
func (b *Builder) visitTarget(t ast.Target, flags ReferenceFlags) {
	if t == nil {
		return
	}
	b.currentReferenceFlags = flags
	b.visit(t)
	b.currentReferenceFlags = ReferenceNone
}

func (b *Builder) visitProgram(p *ast.Program) {
	id := b.enterNode(p)
	flags := ScopeTop
	if b.sourceType.Strict() || ast.HasUseStrict(p.Directives) {
		flags |= ScopeStrictMode
	}
	b.EnterScope(flags, id)
	visitList(b, p.Directives)
	visitList(b, p.Body)
	b.finishRoot()
	b.leaveNode()
}

func (b *Builder) visitBlock(n *ast.BlockStatement) {
	id := b.enterNode(n)
	b.EnterScope(ScopeEmpty, id)
	visitList(b, n.Body)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitFor(n *ast.ForStatement) {
	id := b.enterNode(n)
	b.EnterScope(ScopeEmpty, id)
	b.visit(n.Init)
	b.visit(n.Test)
	b.visit(n.Update)
	b.visit(n.Body)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitForInOf(n ast.Stmt, left ast.Node, right ast.Expr, body ast.Stmt) {
	id := b.enterNode(n)
	b.EnterScope(ScopeEmpty, id)
	if target, ok := left.(ast.Target); ok {
		b.visitTarget(target, ReferenceWrite)
	} else {
		b.visit(left)
	}
	b.visit(right)
	b.visit(body)
	b.LeaveScope()
	b.leaveNode()
}

// visitSwitch evaluates the discriminant outside the case block scope.
func (b *Builder) visitSwitch(n *ast.SwitchStatement) {
	id := b.enterNode(n)
	b.visit(n.Discriminant)
	b.EnterScope(ScopeEmpty, id)
	visitList(b, n.Cases)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitCatchClause(n *ast.CatchClause) {
	id := b.enterNode(n)
	b.EnterScope(ScopeCatchClause, id)
	visitOpt(b, n.Param)
	visitOpt(b, n.Body)
	b.LeaveScope()
	b.leaveNode()
}

// visitCatchParameter resolves the parameter's default values before the
// catch body is entered.
func (b *Builder) visitCatchParameter(n *ast.CatchParameter) {
	b.enterNode(n)
	b.bind(n)
	b.visit(n.Pattern)
	b.resolveReferencesForCurrentScope()
	b.leaveNode()
}

func (b *Builder) visitLabeled(n *ast.LabeledStatement) {
	id := b.enterNode(n)
	name := ""
	if n.Label != nil {
		name = n.Label.Name
	}
	b.labels.push(name, id)
	visitOpt(b, n.Label)
	b.visit(n.Body)
	b.labels.pop()
	b.leaveNode()
}

func (b *Builder) visitJump(n ast.Stmt, label *ast.LabelIdentifier) {
	b.enterNode(n)
	if label != nil {
		b.labels.mark(label.Name)
		b.visit(label)
	}
	b.leaveNode()
}

// visitFunction handles declarations, expressions and method values. A
// declaration binds its name in the enclosing scope; an expression binds
// it inside its own scope.
func (b *Builder) visitFunction(n *ast.Function, modifiers ScopeFlags) {
	id := b.enterNode(n)
	b.bind(n)
	flags := ScopeFunction | modifiers
	if n.Body != nil && ast.HasUseStrict(n.Body.Directives) {
		flags |= ScopeStrictMode
	}
	b.EnterScope(flags, id)
	if n.Type == ast.FunctionExpression {
		b.bindFunctionExpressionName(n)
	}
	visitOpt(b, n.ID)
	visitOpt(b, n.TypeParameters)
	visitOpt(b, n.ThisParam)
	visitOpt(b, n.Params)
	visitOpt(b, n.ReturnType)
	if n.Params.HasParameters() || n.ReturnType != nil {
		// parameter defaults must not see bindings of the body
		b.resolveReferencesForCurrentScope()
	}
	visitOpt(b, n.Body)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitArrow(n *ast.ArrowFunctionExpression) {
	id := b.enterNode(n)
	b.makeNamespacesValueLike()
	flags := ScopeFunction | ScopeArrow
	if !n.Expression && n.Body != nil && ast.HasUseStrict(n.Body.Directives) {
		flags |= ScopeStrictMode
	}
	b.EnterScope(flags, id)
	visitOpt(b, n.TypeParameters)
	visitOpt(b, n.Params)
	visitOpt(b, n.ReturnType)
	if n.Params.HasParameters() || n.ReturnType != nil {
		b.resolveReferencesForCurrentScope()
	}
	visitOpt(b, n.Body)
	b.LeaveScope()
	b.leaveNode()
}

// visitClass marks everything from the class keyword on as class code,
// which is strict. A declaration binds before the class scope opens, an
// expression binds inside it.
func (b *Builder) visitClass(n *ast.Class) {
	id := b.enterNode(n)
	saved := b.state.NodeFlags
	b.state.NodeFlags |= NodeClass
	b.bind(n)
	visitList(b, n.Decorators)
	visitOpt(b, n.ID)
	b.EnterScope(ScopeEmpty, id)
	if n.Type == ast.ClassExpression {
		b.bindClassExpressionName(n)
	}
	b.classes.enter(id, n.Body)
	visitOpt(b, n.TypeParameters)
	b.visit(n.SuperClass)
	visitOpt(b, n.SuperTypeArgs)
	visitList(b, n.Implements)
	visitOpt(b, n.Body)
	b.classes.leave()
	b.LeaveScope()
	b.state.NodeFlags = saved
	b.leaveNode()
}

func methodModifiers(kind ast.MethodKind) ScopeFlags {
	switch kind {
	case ast.MethodKindConstructor:
		return ScopeConstructor
	case ast.MethodKindGet:
		return ScopeGetAccessor
	case ast.MethodKindSet:
		return ScopeSetAccessor
	}
	return ScopeEmpty
}

func (b *Builder) visitMethod(n *ast.MethodDefinition) {
	b.enterNode(n)
	visitList(b, n.Decorators)
	b.visit(n.Key)
	if n.Value != nil {
		b.visitFunction(n.Value, methodModifiers(n.MethodKind))
	}
	b.leaveNode()
}

func (b *Builder) visitObjectProperty(n *ast.ObjectProperty) {
	b.enterNode(n)
	b.visit(n.Key)
	fn, ok := n.Value.(*ast.Function)
	switch {
	case ok && n.PropKind == ast.PropertyGet:
		b.visitFunction(fn, ScopeGetAccessor)
	case ok && n.PropKind == ast.PropertySet:
		b.visitFunction(fn, ScopeSetAccessor)
	default:
		b.visit(n.Value)
	}
	b.leaveNode()
}

func (b *Builder) visitStaticBlock(n *ast.StaticBlock) {
	id := b.enterNode(n)
	b.EnterScope(ScopeClassStaticBlock, id)
	visitList(b, n.Body)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitPrivateIdentifier(n *ast.PrivateIdentifier) {
	id := b.enterNode(n)
	switch b.nodes.ParentKind(id) {
	case ast.KindMemberExpression, ast.KindBinaryExpression:
		b.classes.addPrivateReference(PrivateReference{Name: n.Name, Span: n.Span(), Node: id})
	}
	b.leaveNode()
}

func (b *Builder) visitAssignment(n *ast.AssignmentExpression) {
	b.enterNode(n)
	flags := ReferenceWrite
	if n.Operator != "=" {
		flags = ReferenceReadWrite
	}
	b.visitTarget(n.Left, flags)
	b.visit(n.Right)
	b.leaveNode()
}

// visitMember strips Write: in `a.b = 1` the object is only read.
func (b *Builder) visitMember(n *ast.MemberExpression) {
	b.enterNode(n)
	b.currentReferenceFlags &^= ReferenceWrite
	b.visit(n.Object)
	b.currentReferenceFlags = ReferenceNone
	b.visit(n.Property)
	b.leaveNode()
}

func (b *Builder) visitYield(n *ast.YieldExpression) {
	id := b.enterNode(n)
	for a := range b.nodes.Ancestors(id) {
		if b.nodes.Kind(a) == ast.KindFunction {
			b.nodes.Get(a).Flags |= NodeHasYield
			break
		}
	}
	b.visit(n.Argument)
	b.leaveNode()
}

func (b *Builder) visitExportNamed(n *ast.ExportNamedDeclaration) {
	b.enterNode(n)
	if n.Declaration != nil {
		saved := b.state.SymbolFlags
		b.state.SymbolFlags |= SymbolExport
		b.visit(n.Declaration)
		b.state.SymbolFlags = saved
	}
	savedKind := b.exportKind
	b.exportKind = n.ExportKind
	for _, spec := range n.Specifiers {
		if n.Source != nil {
			// re-exports name bindings of another module
			b.walkExportSpecifierNames(spec)
			continue
		}
		b.visit(spec)
	}
	b.exportKind = savedKind
	visitOpt(b, n.Source)
	b.leaveNode()
}

func (b *Builder) visitExportSpecifier(n *ast.ExportSpecifier) {
	b.enterNode(n)
	saved := b.state.NodeFlags
	b.state.NodeFlags |= NodeExportSpecifier
	flags := ReferenceRead | ReferenceType
	if n.ExportKind == ast.KindType || b.exportKind == ast.KindType {
		flags = ReferenceType
	}
	b.visitWithFlags(n.Local, flags)
	if n.Exported != nil && n.Exported.Span() != n.Local.Span() {
		b.visit(n.Exported)
	}
	b.state.NodeFlags = saved
	b.leaveNode()
}

func (b *Builder) walkExportSpecifierNames(n *ast.ExportSpecifier) {
	b.enterNode(n)
	saved := b.state.NodeFlags
	b.state.NodeFlags |= NodeExportSpecifier
	ast.EachChild(n, b.visit)
	b.state.NodeFlags = saved
	b.leaveNode()
}

func (b *Builder) visitExportDefault(n *ast.ExportDefaultDeclaration) {
	b.enterNode(n)
	switch decl := n.Declaration.(type) {
	case *ast.IdentifierReference:
		b.visitWithFlags(decl, ReferenceRead|ReferenceType)
	case *ast.Function, *ast.Class:
		saved := b.state.SymbolFlags
		b.state.SymbolFlags |= SymbolExport
		b.visit(decl)
		b.state.SymbolFlags = saved
	default:
		b.visit(n.Declaration)
	}
	b.leaveNode()
}

func (b *Builder) visitTypeAlias(n *ast.TSTypeAliasDeclaration) {
	id := b.enterNode(n)
	b.bind(n)
	visitOpt(b, n.ID)
	b.EnterScope(ScopeEmpty, id)
	visitOpt(b, n.TypeParameters)
	b.visit(n.TypeAnnotation)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitInterface(n *ast.TSInterfaceDeclaration) {
	id := b.enterNode(n)
	b.bind(n)
	visitOpt(b, n.ID)
	b.EnterScope(ScopeEmpty, id)
	visitOpt(b, n.TypeParameters)
	visitList(b, n.Extends)
	visitOpt(b, n.Body)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitEnum(n *ast.TSEnumDeclaration) {
	id := b.enterNode(n)
	b.bind(n)
	visitOpt(b, n.ID)
	b.EnterScope(ScopeEmpty, id)
	visitList(b, n.Members)
	b.LeaveScope()
	b.leaveNode()
}

func (b *Builder) visitModuleDeclaration(n *ast.TSModuleDeclaration) {
	id := b.enterNode(n)
	b.bind(n)
	b.visit(n.ID)
	flags := ScopeTsModuleBlock
	if block, ok := n.Body.(*ast.TSModuleBlock); ok && ast.HasUseStrict(block.Directives) {
		flags |= ScopeStrictMode
	}
	b.EnterScope(flags, id)
	b.visit(n.Body)
	b.LeaveScope()
	b.namespaces = b.namespaces[:len(b.namespaces)-1]
	b.leaveNode()
}

func (b *Builder) visitImportEquals(n *ast.TSImportEqualsDeclaration) {
	b.enterNode(n)
	b.bind(n)
	visitOpt(b, n.ID)
	switch n.ModuleReference.(type) {
	case *ast.IdentifierReference, *ast.TSQualifiedName:
		b.visitWithFlags(n.ModuleReference, ReferenceRead|ReferenceType)
	default:
		b.visit(n.ModuleReference)
	}
	b.leaveNode()
}

// visitSignature opens the scope of a signature-like type for its type
// parameters and parameters. The caller has entered the node.
func (b *Builder) visitSignature(tp *ast.TSTypeParameterDeclaration, params *ast.FormalParameters, ret *ast.TSTypeAnnotation) {
	b.EnterScope(ScopeEmpty, b.state.Node)
	visitOpt(b, tp)
	visitOpt(b, params)
	visitOpt(b, ret)
	b.LeaveScope()
}
