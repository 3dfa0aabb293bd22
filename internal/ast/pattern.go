package ast

// Binding patterns.
type (
	ObjectPattern struct {
		Base
		Properties     []*BindingProperty
		Rest           *RestElement
		TypeAnnotation *TSTypeAnnotation
	}
	BindingProperty struct {
		Base
		Key       Node
		Value     Pattern
		Computed  bool
		Shorthand bool
	}
	ArrayPattern struct {
		Base
		Elements       []Pattern // nil - дырка
		Rest           *RestElement
		TypeAnnotation *TSTypeAnnotation
	}
	AssignmentPattern struct {
		Base
		Left  Pattern
		Right Expr
	}
	RestElement struct {
		Base
		Argument       Pattern
		TypeAnnotation *TSTypeAnnotation
	}
)

// Assignment targets.
type (
	ArrayAssignmentTarget struct {
		Base
		Elements []Target // nil - дырка
		Rest     *AssignmentTargetRest
	}
	ObjectAssignmentTarget struct {
		Base
		Properties []Node // *AssignmentTargetPropertyIdentifier | *AssignmentTargetPropertyProperty
		Rest       *AssignmentTargetRest
	}
	AssignmentTargetWithDefault struct {
		Base
		Binding Target
		Init    Expr
	}
	// `{a = 1} = obj`
	AssignmentTargetPropertyIdentifier struct {
		Base
		Binding *IdentifierReference
		Init    Expr
	}
	// `{key: target} = obj`
	AssignmentTargetPropertyProperty struct {
		Base
		Name     Node
		Computed bool
		Binding  Target
	}
	AssignmentTargetRest struct {
		Base
		Target Target
	}
)

// BoundNames calls fn for every identifier a binding pattern declares, in
// source order.
func BoundNames(p Pattern, fn func(*BindingIdentifier)) {
	switch p := p.(type) {
	case *BindingIdentifier:
		fn(p)
	case *ObjectPattern:
		for _, prop := range p.Properties {
			BoundNames(prop.Value, fn)
		}
		if p.Rest != nil {
			BoundNames(p.Rest, fn)
		}
	case *ArrayPattern:
		for _, el := range p.Elements {
			if el != nil {
				BoundNames(el, fn)
			}
		}
		if p.Rest != nil {
			BoundNames(p.Rest, fn)
		}
	case *AssignmentPattern:
		BoundNames(p.Left, fn)
	case *RestElement:
		BoundNames(p.Argument, fn)
	}
}

// PatternAnnotation returns the type annotation written on a pattern.
func PatternAnnotation(p Pattern) *TSTypeAnnotation {
	switch p := p.(type) {
	case *BindingIdentifier:
		return p.TypeAnnotation
	case *ObjectPattern:
		return p.TypeAnnotation
	case *ArrayPattern:
		return p.TypeAnnotation
	case *RestElement:
		return p.TypeAnnotation
	case *AssignmentPattern:
		return PatternAnnotation(p.Left)
	}
	return nil
}
