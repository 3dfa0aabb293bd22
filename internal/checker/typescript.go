package checker

import (
	"jsbind/internal/ast"
	"jsbind/internal/diag"
)

func checkTypeScript(c nodeCtx) {
	switch n := c.node.Node.(type) {
	case *ast.TSInterfaceDeclaration:
		for _, h := range n.Extends {
			if h.Expression != nil && !ast.IsTypeName(h.Expression) {
				c.errorf(diag.TSInterfaceExtends, h.Span(), "an interface can only extend an identifier or qualified name").Emit()
			}
		}
	case *ast.TSEnumDeclaration:
		checkEnumMembers(c, n)
	case *ast.TSModuleDeclaration:
		checkNamespacePlacement(c, n)
	case *ast.FormalParameters:
		checkOptionalParameters(c, n)
	case *ast.MethodDefinition:
		if n.Abstract {
			checkAbstractMember(c, n.Key)
			if n.Value != nil && n.Value.Body != nil {
				name, _ := ast.KeyName(n.Key, n.Computed)
				c.errorf(diag.TSAbstractMethodBody, n.Key.Span(), "method '%s' cannot have an implementation because it is marked abstract", name).Emit()
			}
		}
	case *ast.PropertyDefinition:
		checkPropertyDefinition(c, n)
	case *ast.ForInStatement:
		checkForHeadAnnotation(c, n.Left, diag.TSForInAnnotation, "in")
	case *ast.ForOfStatement:
		checkForHeadAnnotation(c, n.Left, diag.TSForOfAnnotation, "of")
	case *ast.VariableDeclarator:
		checkDeclarator(c, n)
	}
}

// checkEnumMembers: once a member is initialised with a string, every later
// member needs its own initializer.
func checkEnumMembers(c nodeCtx, n *ast.TSEnumDeclaration) {
	afterString := false
	for _, m := range n.Members {
		switch m.Initializer.(type) {
		case nil:
			if afterString {
				c.errorf(diag.TSEnumMemberInitializer, m.Span(), "enum member must have initializer").Emit()
			}
		case *ast.StringLiteral, *ast.TemplateLiteral:
			afterString = true
		default:
			afterString = false
		}
	}
}

func checkNamespacePlacement(c nodeCtx, n *ast.TSModuleDeclaration) {
	if n.ModuleKind == ast.TSModuleGlobal {
		return
	}
	switch c.Nodes().ParentKind(c.id) {
	case ast.KindProgram, ast.KindTSModuleBlock, ast.KindTSModuleDeclaration, ast.KindExportNamedDeclaration:
		return
	}
	c.errorf(diag.TSNamespacePlacement, n.Span(), "a namespace declaration is only allowed at the top level of a namespace or module").Emit()
}

func optionalIdent(p ast.Pattern) bool {
	id, ok := p.(*ast.BindingIdentifier)
	return ok && id.Optional
}

func checkOptionalParameters(c nodeCtx, params *ast.FormalParameters) {
	var optional *ast.FormalParameter
	for _, item := range params.Items {
		switch p := item.Pattern.(type) {
		case *ast.AssignmentPattern:
			if optionalIdent(p.Left) {
				c.errorf(diag.TSOptionalWithInitializer, item.Span(), "parameter cannot have question mark and initializer").Emit()
			}
		case *ast.RestElement:
		default:
			if optionalIdent(p) {
				if optional == nil {
					optional = item
				}
				continue
			}
			if optional != nil {
				c.errorf(diag.TSRequiredAfterOptional, item.Span(), "a required parameter cannot follow an optional parameter").
					WithNote(optional.Span(), "optional parameter here").
					Emit()
			}
		}
	}
}

// checkAbstractMember requires the enclosing class to be abstract.
func checkAbstractMember(c nodeCtx, key ast.Node) {
	body := c.Nodes().Parent(c.id)
	cls, ok := c.Nodes().Get(c.Nodes().Parent(body)).Node.(*ast.Class)
	if !ok || cls.Abstract {
		return
	}
	c.errorf(diag.TSAbstractOutsideAbstract, key.Span(), "abstract members can only appear within an abstract class").Emit()
}

func checkPropertyDefinition(c nodeCtx, n *ast.PropertyDefinition) {
	if n.Abstract {
		checkAbstractMember(c, n.Key)
		if n.Value != nil {
			name, _ := ast.KeyName(n.Key, n.Computed)
			c.errorf(diag.TSAbstractPropertyInit, n.Value.Span(), "property '%s' cannot have an initializer because it is marked abstract", name).Emit()
		}
	}
	if !n.Definite {
		return
	}
	switch {
	case n.Optional || n.Declare || n.Abstract:
		c.errorf(diag.TSDefiniteNotPermitted, n.Key.Span(), "a definite assignment assertion '!' is not permitted in this context").Emit()
	case n.Value != nil:
		c.errorf(diag.TSDefiniteWithInitializer, n.Key.Span(), "declarations with initializers cannot also have definite assignment assertions").Emit()
	case n.TypeAnnotation == nil:
		c.errorf(diag.TSDefiniteWithoutType, n.Key.Span(), "declarations with definite assignment assertions must also have type annotations").Emit()
	}
}

func checkForHeadAnnotation(c nodeCtx, left ast.Node, code diag.Code, loop string) {
	decl, ok := left.(*ast.VariableDeclaration)
	if !ok {
		return
	}
	for _, d := range decl.Declarations {
		if ann := ast.PatternAnnotation(d.ID); ann != nil {
			c.errorf(code, ann.Span(), "the left-hand side of a 'for...%s' statement cannot use a type annotation", loop).Emit()
		}
	}
}

func checkDeclarator(c nodeCtx, n *ast.VariableDeclarator) {
	if id, ok := n.ID.(*ast.BindingIdentifier); ok && id.Optional {
		c.errorf(diag.TSOptionalNotAllowed, id.Span(), "a variable declaration cannot be optional").Emit()
	}
	if !n.Definite {
		return
	}
	_, simple := n.ID.(*ast.BindingIdentifier)
	declare := false
	if decl, ok := c.Nodes().Get(c.Nodes().Parent(c.id)).Node.(*ast.VariableDeclaration); ok {
		declare = decl.Declare
	}
	head := false
	switch c.Nodes().Kind(c.Nodes().Parent(c.Nodes().Parent(c.id))) {
	case ast.KindForInStatement, ast.KindForOfStatement:
		head = true
	}
	switch {
	case !simple || declare || head || n.VarKind == ast.VarKindConst:
		c.errorf(diag.TSDefiniteNotPermitted, n.ID.Span(), "a definite assignment assertion '!' is not permitted in this context").Emit()
	case n.Init != nil:
		c.errorf(diag.TSDefiniteWithInitializer, n.ID.Span(), "declarations with initializers cannot also have definite assignment assertions").Emit()
	case ast.PatternAnnotation(n.ID) == nil:
		c.errorf(diag.TSDefiniteWithoutType, n.ID.Span(), "declarations with definite assignment assertions must also have type annotations").Emit()
	}
}
