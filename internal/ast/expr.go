package ast

type PropertyKind uint8

const (
	PropertyInit PropertyKind = iota
	PropertyGet
	PropertySet
)

type (
	BooleanLiteral struct {
		Base
		Value bool
	}
	NullLiteral struct {
		Base
	}
	NumericLiteral struct {
		Base
		Value float64
		Raw   string
	}
	BigIntLiteral struct {
		Base
		Raw string
	}
	StringLiteral struct {
		Base
		Value string
		Raw   string
	}
	RegExpLiteral struct {
		Base
		Pattern string
		Flags   string
	}
	TemplateLiteral struct {
		Base
		Quasis      []*TemplateElement
		Expressions []Expr
	}
	TemplateElement struct {
		Base
		Raw  string
		Tail bool
	}
	TaggedTemplateExpression struct {
		Base
		Tag           Expr
		Quasi         *TemplateLiteral
		TypeArguments *TSTypeParameterInstantiation
	}
	ThisExpression struct {
		Base
	}
	Super struct {
		Base
	}
	ArrayExpression struct {
		Base
		Elements []Expr // nil - дырка
	}
	ObjectExpression struct {
		Base
		Properties []Node // *ObjectProperty | *SpreadElement
	}
	ObjectProperty struct {
		Base
		PropKind  PropertyKind
		Key       Node
		Value     Expr
		Method    bool
		Shorthand bool
		Computed  bool
	}
	SpreadElement struct {
		Base
		Argument Expr
	}
	UnaryExpression struct {
		Base
		Operator string
		Argument Expr
	}
	UpdateExpression struct {
		Base
		Operator string
		Prefix   bool
		Argument Target
	}
	BinaryExpression struct {
		Base
		Operator string
		Left     Expr // *PrivateIdentifier для `#x in obj`
		Right    Expr
	}
	LogicalExpression struct {
		Base
		Operator string
		Left     Expr
		Right    Expr
	}
	AssignmentExpression struct {
		Base
		Operator string
		Left     Target
		Right    Expr
	}
	ConditionalExpression struct {
		Base
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}
	CallExpression struct {
		Base
		Callee        Expr
		Arguments     []Expr
		Optional      bool
		TypeArguments *TSTypeParameterInstantiation
	}
	NewExpression struct {
		Base
		Callee        Expr
		Arguments     []Expr
		TypeArguments *TSTypeParameterInstantiation
	}
	MemberExpression struct {
		Base
		Object   Expr
		Property Node // *IdentifierName | *PrivateIdentifier | Expr (Computed)
		Computed bool
		Optional bool
	}
	ChainExpression struct {
		Base
		Expression Expr
	}
	SequenceExpression struct {
		Base
		Expressions []Expr
	}
	ParenthesizedExpression struct {
		Base
		Expression Expr
	}
	YieldExpression struct {
		Base
		Delegate bool
		Argument Expr
	}
	AwaitExpression struct {
		Base
		Argument Expr
	}
	MetaProperty struct {
		Base
		Meta     *IdentifierName
		Property *IdentifierName
	}
	ImportExpression struct {
		Base
		Source  Expr
		Options Expr
	}
)

// Is reports whether the meta property is meta.property.
func (m *MetaProperty) Is(meta, property string) bool {
	return m.Meta != nil && m.Property != nil && m.Meta.Name == meta && m.Property.Name == property
}
