package ast

// Inspect traverses the tree rooted at node in source order. f is called
// for every node; when it returns false the children are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	EachChild(node, func(child Node) {
		Inspect(child, f)
	})
}

// EachChild calls visit for every direct child of n in source order.
func EachChild(n Node, visit func(Node)) {
	switch n := n.(type) {
	case *Program:
		each(visit, n.Directives)
		each(visit, n.Body)
	case *BindingIdentifier:
		ptr(visit, n.TypeAnnotation)

	// statements
	case *BlockStatement:
		each(visit, n.Body)
	case *ExpressionStatement:
		opt(visit, n.Expression)
	case *IfStatement:
		opt(visit, n.Test)
		opt(visit, n.Consequent)
		opt(visit, n.Alternate)
	case *ForStatement:
		opt(visit, n.Init)
		opt(visit, n.Test)
		opt(visit, n.Update)
		opt(visit, n.Body)
	case *ForInStatement:
		opt(visit, n.Left)
		opt(visit, n.Right)
		opt(visit, n.Body)
	case *ForOfStatement:
		opt(visit, n.Left)
		opt(visit, n.Right)
		opt(visit, n.Body)
	case *WhileStatement:
		opt(visit, n.Test)
		opt(visit, n.Body)
	case *DoWhileStatement:
		opt(visit, n.Body)
		opt(visit, n.Test)
	case *ReturnStatement:
		opt(visit, n.Argument)
	case *BreakStatement:
		ptr(visit, n.Label)
	case *ContinueStatement:
		ptr(visit, n.Label)
	case *LabeledStatement:
		ptr(visit, n.Label)
		opt(visit, n.Body)
	case *SwitchStatement:
		opt(visit, n.Discriminant)
		each(visit, n.Cases)
	case *SwitchCase:
		opt(visit, n.Test)
		each(visit, n.Consequent)
	case *ThrowStatement:
		opt(visit, n.Argument)
	case *TryStatement:
		ptr(visit, n.Block)
		ptr(visit, n.Handler)
		ptr(visit, n.Finalizer)
	case *CatchClause:
		ptr(visit, n.Param)
		ptr(visit, n.Body)
	case *CatchParameter:
		opt(visit, n.Pattern)
	case *WithStatement:
		opt(visit, n.Object)
		opt(visit, n.Body)
	case *VariableDeclaration:
		each(visit, n.Declarations)
	case *VariableDeclarator:
		opt(visit, n.ID)
		opt(visit, n.Init)

	// functions
	case *Function:
		ptr(visit, n.ID)
		ptr(visit, n.TypeParameters)
		ptr(visit, n.ThisParam)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
		ptr(visit, n.Body)
	case *FunctionBody:
		each(visit, n.Directives)
		each(visit, n.Statements)
	case *FormalParameters:
		each(visit, n.Items)
	case *FormalParameter:
		each(visit, n.Decorators)
		opt(visit, n.Pattern)
	case *ArrowFunctionExpression:
		ptr(visit, n.TypeParameters)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
		ptr(visit, n.Body)

	// classes
	case *Class:
		each(visit, n.Decorators)
		ptr(visit, n.ID)
		ptr(visit, n.TypeParameters)
		opt(visit, n.SuperClass)
		ptr(visit, n.SuperTypeArgs)
		each(visit, n.Implements)
		ptr(visit, n.Body)
	case *ClassBody:
		each(visit, n.Body)
	case *MethodDefinition:
		each(visit, n.Decorators)
		opt(visit, n.Key)
		ptr(visit, n.Value)
	case *PropertyDefinition:
		each(visit, n.Decorators)
		opt(visit, n.Key)
		ptr(visit, n.TypeAnnotation)
		opt(visit, n.Value)
	case *StaticBlock:
		each(visit, n.Body)
	case *Decorator:
		opt(visit, n.Expression)

	// expressions
	case *TemplateLiteral:
		for i, q := range n.Quasis {
			visit(q)
			if i < len(n.Expressions) {
				opt(visit, n.Expressions[i])
			}
		}
	case *TaggedTemplateExpression:
		opt(visit, n.Tag)
		ptr(visit, n.TypeArguments)
		ptr(visit, n.Quasi)
	case *ArrayExpression:
		each(visit, n.Elements)
	case *ObjectExpression:
		each(visit, n.Properties)
	case *ObjectProperty:
		opt(visit, n.Key)
		opt(visit, n.Value)
	case *SpreadElement:
		opt(visit, n.Argument)
	case *UnaryExpression:
		opt(visit, n.Argument)
	case *UpdateExpression:
		opt(visit, n.Argument)
	case *BinaryExpression:
		opt(visit, n.Left)
		opt(visit, n.Right)
	case *LogicalExpression:
		opt(visit, n.Left)
		opt(visit, n.Right)
	case *AssignmentExpression:
		opt(visit, n.Left)
		opt(visit, n.Right)
	case *ConditionalExpression:
		opt(visit, n.Test)
		opt(visit, n.Consequent)
		opt(visit, n.Alternate)
	case *CallExpression:
		opt(visit, n.Callee)
		ptr(visit, n.TypeArguments)
		each(visit, n.Arguments)
	case *NewExpression:
		opt(visit, n.Callee)
		ptr(visit, n.TypeArguments)
		each(visit, n.Arguments)
	case *MemberExpression:
		opt(visit, n.Object)
		opt(visit, n.Property)
	case *ChainExpression:
		opt(visit, n.Expression)
	case *SequenceExpression:
		each(visit, n.Expressions)
	case *ParenthesizedExpression:
		opt(visit, n.Expression)
	case *YieldExpression:
		opt(visit, n.Argument)
	case *AwaitExpression:
		opt(visit, n.Argument)
	case *MetaProperty:
		ptr(visit, n.Meta)
		ptr(visit, n.Property)
	case *ImportExpression:
		opt(visit, n.Source)
		opt(visit, n.Options)

	// patterns
	case *ObjectPattern:
		each(visit, n.Properties)
		ptr(visit, n.Rest)
		ptr(visit, n.TypeAnnotation)
	case *BindingProperty:
		if !n.Shorthand {
			opt(visit, n.Key)
		}
		opt(visit, n.Value)
	case *ArrayPattern:
		each(visit, n.Elements)
		ptr(visit, n.Rest)
		ptr(visit, n.TypeAnnotation)
	case *AssignmentPattern:
		opt(visit, n.Left)
		opt(visit, n.Right)
	case *RestElement:
		opt(visit, n.Argument)
		ptr(visit, n.TypeAnnotation)
	case *ArrayAssignmentTarget:
		each(visit, n.Elements)
		ptr(visit, n.Rest)
	case *ObjectAssignmentTarget:
		each(visit, n.Properties)
		ptr(visit, n.Rest)
	case *AssignmentTargetWithDefault:
		opt(visit, n.Binding)
		opt(visit, n.Init)
	case *AssignmentTargetPropertyIdentifier:
		ptr(visit, n.Binding)
		opt(visit, n.Init)
	case *AssignmentTargetPropertyProperty:
		opt(visit, n.Name)
		opt(visit, n.Binding)
	case *AssignmentTargetRest:
		opt(visit, n.Target)

	// modules
	case *ImportDeclaration:
		each(visit, n.Specifiers)
		ptr(visit, n.Source)
	case *ImportSpecifier:
		if n.Imported != nil && n.Imported.Span() != n.Local.Span() {
			visit(n.Imported)
		}
		ptr(visit, n.Local)
	case *ImportDefaultSpecifier:
		ptr(visit, n.Local)
	case *ImportNamespaceSpecifier:
		ptr(visit, n.Local)
	case *ExportNamedDeclaration:
		opt(visit, n.Declaration)
		each(visit, n.Specifiers)
		ptr(visit, n.Source)
	case *ExportSpecifier:
		opt(visit, n.Local)
		if n.Exported != nil && n.Exported.Span() != n.Local.Span() {
			visit(n.Exported)
		}
	case *ExportDefaultDeclaration:
		opt(visit, n.Declaration)
	case *ExportAllDeclaration:
		opt(visit, n.Exported)
		ptr(visit, n.Source)

	// typescript
	case *TSTypeAliasDeclaration:
		ptr(visit, n.ID)
		ptr(visit, n.TypeParameters)
		opt(visit, n.TypeAnnotation)
	case *TSInterfaceDeclaration:
		ptr(visit, n.ID)
		ptr(visit, n.TypeParameters)
		each(visit, n.Extends)
		ptr(visit, n.Body)
	case *TSInterfaceHeritage:
		opt(visit, n.Expression)
		ptr(visit, n.TypeArguments)
	case *TSInterfaceBody:
		each(visit, n.Body)
	case *TSClassImplements:
		opt(visit, n.Expression)
		ptr(visit, n.TypeArguments)
	case *TSEnumDeclaration:
		ptr(visit, n.ID)
		each(visit, n.Members)
	case *TSEnumMember:
		opt(visit, n.ID)
		opt(visit, n.Initializer)
	case *TSModuleDeclaration:
		opt(visit, n.ID)
		opt(visit, n.Body)
	case *TSModuleBlock:
		each(visit, n.Directives)
		each(visit, n.Body)
	case *TSImportEqualsDeclaration:
		ptr(visit, n.ID)
		opt(visit, n.ModuleReference)
	case *TSExternalModuleReference:
		ptr(visit, n.Expression)
	case *TSExportAssignment:
		opt(visit, n.Expression)
	case *TSNamespaceExportDeclaration:
		ptr(visit, n.ID)
	case *TSAsExpression:
		opt(visit, n.Expression)
		opt(visit, n.TypeAnnotation)
	case *TSSatisfiesExpression:
		opt(visit, n.Expression)
		opt(visit, n.TypeAnnotation)
	case *TSNonNullExpression:
		opt(visit, n.Expression)
	case *TSTypeAssertion:
		opt(visit, n.TypeAnnotation)
		opt(visit, n.Expression)
	case *TSInstantiationExpression:
		opt(visit, n.Expression)
		ptr(visit, n.TypeArguments)
	case *TSTypeAnnotation:
		opt(visit, n.TypeAnnotation)
	case *TSTypeParameterDeclaration:
		each(visit, n.Params)
	case *TSTypeParameter:
		ptr(visit, n.Name)
		opt(visit, n.Constraint)
		opt(visit, n.Default)
	case *TSTypeParameterInstantiation:
		each(visit, n.Params)
	case *TSTypeReference:
		opt(visit, n.TypeName)
		ptr(visit, n.TypeArguments)
	case *TSQualifiedName:
		opt(visit, n.Left)
		ptr(visit, n.Right)
	case *TSTypeLiteral:
		each(visit, n.Members)
	case *TSPropertySignature:
		opt(visit, n.Key)
		ptr(visit, n.TypeAnnotation)
	case *TSMethodSignature:
		opt(visit, n.Key)
		ptr(visit, n.TypeParameters)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
	case *TSCallSignatureDeclaration:
		ptr(visit, n.TypeParameters)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
	case *TSConstructSignatureDeclaration:
		ptr(visit, n.TypeParameters)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
	case *TSIndexSignature:
		each(visit, n.Parameters)
		ptr(visit, n.TypeAnnotation)
	case *TSUnionType:
		each(visit, n.Types)
	case *TSIntersectionType:
		each(visit, n.Types)
	case *TSArrayType:
		opt(visit, n.ElementType)
	case *TSTupleType:
		each(visit, n.ElementTypes)
	case *TSFunctionType:
		ptr(visit, n.TypeParameters)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
	case *TSConstructorType:
		ptr(visit, n.TypeParameters)
		ptr(visit, n.Params)
		ptr(visit, n.ReturnType)
	case *TSTypeQuery:
		opt(visit, n.ExprName)
		ptr(visit, n.TypeArguments)
	case *TSLiteralType:
		opt(visit, n.Literal)
	case *TSTypeOperator:
		opt(visit, n.TypeAnnotation)
	case *TSIndexedAccessType:
		opt(visit, n.ObjectType)
		opt(visit, n.IndexType)
	case *TSParenthesizedType:
		opt(visit, n.TypeAnnotation)
	case *TSTypePredicate:
		opt(visit, n.ParameterName)
		ptr(visit, n.TypeAnnotation)
	}
}

func opt(visit func(Node), n Node) {
	if n != nil {
		visit(n)
	}
}

func ptr[P interface {
	*T
	Node
}, T any](visit func(Node), p P) {
	if p != nil {
		visit(p)
	}
}

func each[N Node](visit func(Node), list []N) {
	for _, n := range list {
		opt(visit, n)
	}
}
