package ast

type FunctionType uint8

const (
	FunctionDeclaration FunctionType = iota
	FunctionExpression
	TSDeclareFunction
)

type ParamsKind uint8

const (
	// ParamsFormal - обычные параметры function, допускают дубли в sloppy mode.
	ParamsFormal ParamsKind = iota
	// ParamsUnique - методы и аксессоры.
	ParamsUnique
	ParamsArrow
	// ParamsSignature - параметры в типах и сигнатурах.
	ParamsSignature
)

type (
	Function struct {
		Base
		Type           FunctionType
		ID             *BindingIdentifier
		Generator      bool
		Async          bool
		Declare        bool
		TypeParameters *TSTypeParameterDeclaration
		ThisParam      *TSTypeAnnotation
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
		Body           *FunctionBody // nil для перегрузок и declare
	}
	FunctionBody struct {
		Base
		Directives []*Directive
		Statements []Stmt
	}
	FormalParameters struct {
		Base
		ParamsKind ParamsKind
		Items      []*FormalParameter
	}
	FormalParameter struct {
		Base
		Pattern       Pattern // *RestElement для rest-параметра
		Decorators    []*Decorator
		Accessibility string
		Readonly      bool
		Override      bool
	}
	ArrowFunctionExpression struct {
		Base
		Async          bool
		Expression     bool // тело - выражение, обёрнутое в FunctionBody
		TypeParameters *TSTypeParameterDeclaration
		Params         *FormalParameters
		ReturnType     *TSTypeAnnotation
		Body           *FunctionBody
	}
)

// IsDeclaration reports function declarations including TS overload heads.
func (f *Function) IsDeclaration() bool {
	return f.Type == FunctionDeclaration || f.Type == TSDeclareFunction
}

// IsSimple reports a parameter list of plain identifiers only.
func (p *FormalParameters) IsSimple() bool {
	if p == nil {
		return true
	}
	for _, item := range p.Items {
		if _, ok := item.Pattern.(*BindingIdentifier); !ok {
			return false
		}
	}
	return true
}

// HasParameters reports whether the list is non-empty.
func (p *FormalParameters) HasParameters() bool {
	return p != nil && len(p.Items) > 0
}
