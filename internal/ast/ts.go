package ast

type TSModuleKind uint8

const (
	TSModuleNamespace TSModuleKind = iota
	TSModuleModule
	TSModuleGlobal
)

// Declarations.
type (
	TSTypeAliasDeclaration struct {
		Base
		ID             *BindingIdentifier
		TypeParameters *TSTypeParameterDeclaration
		TypeAnnotation TSType
		Declare        bool
	}
	TSInterfaceDeclaration struct {
		Base
		ID             *BindingIdentifier
		TypeParameters *TSTypeParameterDeclaration
		Extends        []*TSInterfaceHeritage
		Body           *TSInterfaceBody
		Declare        bool
	}
	TSInterfaceHeritage struct {
		Base
		Expression    Expr
		TypeArguments *TSTypeParameterInstantiation
	}
	TSInterfaceBody struct {
		Base
		Body []Signature
	}
	TSClassImplements struct {
		Base
		Expression    Node // *IdentifierReference | *TSQualifiedName
		TypeArguments *TSTypeParameterInstantiation
	}
	TSEnumDeclaration struct {
		Base
		ID      *BindingIdentifier
		Members []*TSEnumMember
		Const   bool
		Declare bool
	}
	TSEnumMember struct {
		Base
		ID          Node // *IdentifierName | *StringLiteral
		Initializer Expr
	}
	TSModuleDeclaration struct {
		Base
		ID         Node // *BindingIdentifier | *StringLiteral
		Body       Node // nil | *TSModuleBlock | *TSModuleDeclaration (a.b.c)
		ModuleKind TSModuleKind
		Declare    bool
	}
	TSModuleBlock struct {
		Base
		Directives []*Directive
		Body       []Stmt
	}
	TSImportEqualsDeclaration struct {
		Base
		ID              *BindingIdentifier
		ModuleReference Node // *TSExternalModuleReference | *IdentifierReference | *TSQualifiedName
		ImportKind      ImportExportKind
	}
	TSExternalModuleReference struct {
		Base
		Expression *StringLiteral
	}
	TSExportAssignment struct {
		Base
		Expression Expr
	}
	TSNamespaceExportDeclaration struct {
		Base
		ID *IdentifierName
	}
)

// Expressions carrying types.
type (
	TSAsExpression struct {
		Base
		Expression     Expr
		TypeAnnotation TSType
	}
	TSSatisfiesExpression struct {
		Base
		Expression     Expr
		TypeAnnotation TSType
	}
	TSNonNullExpression struct {
		Base
		Expression Expr
	}
	TSTypeAssertion struct {
		Base
		Expression     Expr
		TypeAnnotation TSType
	}
	TSInstantiationExpression struct {
		Base
		Expression    Expr
		TypeArguments *TSTypeParameterInstantiation
	}
)

// Types.
type (
	TSTypeAnnotation struct {
		Base
		TypeAnnotation TSType
	}
	TSTypeParameterDeclaration struct {
		Base
		Params []*TSTypeParameter
	}
	TSTypeParameter struct {
		Base
		Name       *BindingIdentifier
		Constraint TSType
		Default    TSType
		In         bool
		Out        bool
		Const      bool
	}
	TSTypeParameterInstantiation struct {
		Base
		Params []TSType
	}
	TSTypeReference struct {
		Base
		TypeName      Node // *IdentifierReference | *TSQualifiedName
		TypeArguments *TSTypeParameterInstantiation
	}
	TSQualifiedName struct {
		Base
		Left  Node // *IdentifierReference | *TSQualifiedName | *ThisExpression
		Right *IdentifierName
	}
	// TSKeywordType - any, string, number, void, never, this, ...
	TSKeywordType struct {
		Base
		Keyword string
	}
	TSTypeLiteral struct {
		Base
		Members []Signature
	}
	TSPropertySignature struct {
		Base
		Key            Node
		Computed       bool
		Optional       bool
		Readonly       bool
		TypeAnnotation *TSTypeAnnotation
	}
	TSMethodSignature struct {
		Base
		Key            Node
		Computed       bool
		Optional       bool
		MethodKind     MethodKind
		TypeParameters *TSTypeParameterDeclaration
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
	}
	TSCallSignatureDeclaration struct {
		Base
		TypeParameters *TSTypeParameterDeclaration
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
	}
	TSConstructSignatureDeclaration struct {
		Base
		TypeParameters *TSTypeParameterDeclaration
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
	}
	TSIndexSignature struct {
		Base
		Parameters     []*BindingIdentifier
		TypeAnnotation *TSTypeAnnotation
		Readonly       bool
		Static         bool
	}
	TSUnionType struct {
		Base
		Types []TSType
	}
	TSIntersectionType struct {
		Base
		Types []TSType
	}
	TSArrayType struct {
		Base
		ElementType TSType
	}
	TSTupleType struct {
		Base
		ElementTypes []TSType
	}
	TSFunctionType struct {
		Base
		TypeParameters *TSTypeParameterDeclaration
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
	}
	TSConstructorType struct {
		Base
		Abstract       bool
		TypeParameters *TSTypeParameterDeclaration
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
	}
	// TSTypeQuery - `typeof x` в позиции типа.
	TSTypeQuery struct {
		Base
		ExprName      Node // *IdentifierReference | *TSQualifiedName
		TypeArguments *TSTypeParameterInstantiation
	}
	TSLiteralType struct {
		Base
		Literal Expr
	}
	TSTypeOperator struct {
		Base
		Operator       string
		TypeAnnotation TSType
	}
	TSIndexedAccessType struct {
		Base
		ObjectType TSType
		IndexType  TSType
	}
	TSParenthesizedType struct {
		Base
		TypeAnnotation TSType
	}
	TSTypePredicate struct {
		Base
		ParameterName  Node // *IdentifierName | *TSKeywordType (this)
		Asserts        bool
		TypeAnnotation *TSTypeAnnotation
	}
	// TSOpaqueType stands for type syntax the binder does not look into
	// (mapped, conditional, template literal types, ...). Its references
	// are not tracked.
	TSOpaqueType struct {
		Base
		Type string
	}
)

// IsTypeName reports whether e is an entity name usable in a heritage clause:
// an identifier or a dotted member chain of identifiers.
func IsTypeName(e Node) bool {
	switch e := e.(type) {
	case *IdentifierReference:
		return true
	case *MemberExpression:
		if e.Computed || e.Optional {
			return false
		}
		if _, ok := e.Property.(*IdentifierName); !ok {
			return false
		}
		return IsTypeName(e.Object)
	case *TSQualifiedName:
		return true
	}
	return false
}
