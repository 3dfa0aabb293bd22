package ast

type ClassType uint8

const (
	ClassDeclaration ClassType = iota
	ClassExpression
)

type MethodKind uint8

const (
	MethodKindMethod MethodKind = iota
	MethodKindConstructor
	MethodKindGet
	MethodKindSet
)

func (k MethodKind) String() string {
	switch k {
	case MethodKindConstructor:
		return "constructor"
	case MethodKindGet:
		return "get"
	case MethodKindSet:
		return "set"
	}
	return "method"
}

type (
	Class struct {
		Base
		Type           ClassType
		ID             *BindingIdentifier
		TypeParameters *TSTypeParameterDeclaration
		SuperClass     Expr
		SuperTypeArgs  *TSTypeParameterInstantiation
		Implements     []*TSClassImplements
		Body           *ClassBody
		Decorators     []*Decorator
		Abstract       bool
		Declare        bool
	}
	ClassBody struct {
		Base
		Body []ClassElement
	}
	MethodDefinition struct {
		Base
		MethodKind    MethodKind
		Key           Node // *IdentifierName | *PrivateIdentifier | *StringLiteral | Expr (Computed)
		Computed      bool
		Static        bool
		Value         *Function
		Decorators    []*Decorator
		Abstract      bool
		Optional      bool
		Override      bool
		Accessibility string
	}
	PropertyDefinition struct {
		Base
		Key            Node
		Computed       bool
		Static         bool
		Value          Expr
		TypeAnnotation *TSTypeAnnotation
		Decorators     []*Decorator
		Accessor       bool
		Declare        bool
		Abstract       bool
		Optional       bool
		Definite       bool
		Readonly       bool
		Override       bool
		Accessibility  string
	}
	StaticBlock struct {
		Base
		Body []Stmt
	}
	Decorator struct {
		Base
		Expression Expr
	}
)

// KeyName returns the static name of a class member key, and whether the
// key is a private name. Computed keys yield "".
func KeyName(key Node, computed bool) (string, bool) {
	if computed {
		return "", false
	}
	switch k := key.(type) {
	case *IdentifierName:
		return k.Name, false
	case *PrivateIdentifier:
		return k.Name, true
	case *StringLiteral:
		return k.Value, false
	case *NumericLiteral:
		return k.Raw, false
	}
	return "", false
}
