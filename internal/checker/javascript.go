package checker

import (
	"strings"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/source"
)

// strictReserved are the words reserved only in strict mode code.
var strictReserved = map[string]struct{}{
	"implements": {},
	"interface":  {},
	"let":        {},
	"package":    {},
	"private":    {},
	"protected":  {},
	"public":     {},
	"static":     {},
	"yield":      {},
}

func checkBindingIdentifier(c nodeCtx, n *ast.BindingIdentifier) {
	if c.strict() && (n.Name == "eval" || n.Name == "arguments") {
		c.errorf(diag.SynStrictBindingName, n.Span(), "'%s' cannot be used as a binding name in strict mode", n.Name).Emit()
		return
	}
	checkIdentifierName(c, n.Name, n.Span())
}

func checkIdentifierName(c nodeCtx, name string, span source.Span) {
	st := c.SourceType()
	if name == "await" && st.Module && !st.Definition {
		c.errorf(diag.SynAwaitInModule, span, "'await' is a reserved word in module code").Emit()
		return
	}
	if _, ok := strictReserved[name]; ok && c.strict() {
		c.errorf(diag.SynStrictReservedWord, span, "'%s' is a reserved word in strict mode", name).Emit()
	}
}

// checkPrivateIdentifier looks for an enclosing class declaring the name.
// A class heritage clause is evaluated outside its own class body.
func checkPrivateIdentifier(c nodeCtx, n *ast.PrivateIdentifier) {
	switch c.Nodes().ParentKind(c.id) {
	case ast.KindMemberExpression, ast.KindBinaryExpression:
	default:
		return
	}
	nodes := c.Nodes()
	for a := range nodes.Ancestors(c.id) {
		if nodes.Kind(a) != ast.KindClass {
			continue
		}
		if cls, ok := nodes.Get(a).Node.(*ast.Class); ok && cls.SuperClass != nil {
			if sup, ok := nodes.Lookup(cls.SuperClass); ok && nodes.Contains(sup, c.id) {
				continue
			}
		}
		if cid, ok := c.Classes().ByNode(a); ok && c.Classes().DeclaresPrivate(cid, n.Name) {
			return
		}
	}
	c.errorf(diag.SemaUndeclaredPrivate, n.Span(), "private field '#%s' must be declared in an enclosing class", n.Name).Emit()
}

func checkNumericLiteral(c nodeCtx, n *ast.NumericLiteral) {
	raw := n.Raw
	if len(raw) < 2 || raw[0] != '0' || raw[1] < '0' || raw[1] > '9' || !c.strict() {
		return
	}
	for i := 1; i < len(raw); i++ {
		if raw[i] == '8' || raw[i] == '9' {
			c.errorf(diag.SynLegacyOctal, n.Span(), "decimals with leading zeros are not allowed in strict mode").
				WithFix("remove the leading zeros", diag.FixEdit{Span: n.Span(), NewText: trimLeadingZeros(raw)}).
				Emit()
			return
		}
	}
	c.errorf(diag.SynLegacyOctal, n.Span(), "octal literals are not allowed in strict mode").
		WithFix("use the 0o prefix", diag.FixEdit{Span: n.Span(), NewText: "0o" + strings.TrimLeft(raw, "0")}).
		Emit()
}

func trimLeadingZeros(raw string) string {
	s := strings.TrimLeft(raw, "0")
	if s == "" || s[0] == '.' || s[0] == 'e' || s[0] == 'E' {
		return "0" + s
	}
	return s
}

func checkWith(c nodeCtx, n *ast.WithStatement) {
	if c.strict() || c.typescript() {
		c.errorf(diag.SynWithInStrict, n.Span(), "'with' statements are not allowed in strict mode").Emit()
	}
}

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenthesizedExpression)
		if !ok {
			return e
		}
		e = p.Expression
	}
}

func checkDelete(c nodeCtx, n *ast.UnaryExpression) {
	if n.Operator != "delete" {
		return
	}
	arg := unparen(n.Argument)
	if chain, ok := arg.(*ast.ChainExpression); ok {
		arg = chain.Expression
	}
	switch arg := arg.(type) {
	case *ast.IdentifierReference:
		if c.strict() {
			c.errorf(diag.SynDeleteIdentifier, n.Span(), "delete of an unqualified identifier in strict mode").Emit()
		}
	case *ast.MemberExpression:
		if _, ok := arg.Property.(*ast.PrivateIdentifier); ok {
			c.errorf(diag.SemaInvalidPrivateDelete, arg.Span(), "private fields cannot be deleted").Emit()
		}
	}
}

// boundary reports node kinds that labels and jumps cannot cross.
func boundary(k ast.Kind) bool {
	switch k {
	case ast.KindFunction, ast.KindArrowFunctionExpression, ast.KindStaticBlock, ast.KindProgram:
		return true
	}
	return false
}

func iteration(k ast.Kind) bool {
	switch k {
	case ast.KindForStatement, ast.KindForInStatement, ast.KindForOfStatement,
		ast.KindWhileStatement, ast.KindDoWhileStatement:
		return true
	}
	return false
}

func labelOf(n ast.Node) *ast.LabelIdentifier {
	if l, ok := n.(*ast.LabeledStatement); ok {
		return l.Label
	}
	return nil
}

func checkLabeled(c nodeCtx, n *ast.LabeledStatement) {
	if n.Label == nil {
		return
	}
	nodes := c.Nodes()
	for a := range nodes.Ancestors(c.id) {
		sn := nodes.Get(a)
		if boundary(sn.Kind) {
			return
		}
		if outer := labelOf(sn.Node); outer != nil && outer.Name == n.Label.Name {
			c.errorf(diag.SynDuplicateLabel, n.Label.Span(), "label '%s' has already been declared", n.Label.Name).
				WithNote(outer.Span(), "first declared here").
				Emit()
			return
		}
	}
}

func checkBreak(c nodeCtx, n *ast.BreakStatement) {
	nodes := c.Nodes()
	for a := range nodes.Ancestors(c.id) {
		sn := nodes.Get(a)
		if boundary(sn.Kind) {
			break
		}
		if n.Label == nil {
			if iteration(sn.Kind) || sn.Kind == ast.KindSwitchStatement {
				return
			}
			continue
		}
		if l := labelOf(sn.Node); l != nil && l.Name == n.Label.Name {
			return
		}
	}
	if n.Label != nil {
		c.errorf(diag.SynUndefinedLabel, n.Label.Span(), "use of undefined label '%s'", n.Label.Name).Emit()
		return
	}
	c.errorf(diag.SynIllegalBreak, n.Span(), "illegal break statement").Emit()
}

func checkContinue(c nodeCtx, n *ast.ContinueStatement) {
	nodes := c.Nodes()
	for a := range nodes.Ancestors(c.id) {
		sn := nodes.Get(a)
		if boundary(sn.Kind) {
			break
		}
		if n.Label == nil {
			if iteration(sn.Kind) {
				return
			}
			continue
		}
		l := labelOf(sn.Node)
		if l == nil || l.Name != n.Label.Name {
			continue
		}
		// `a: b: while (x) continue a;` targets the loop through nested labels
		body := sn.Node.(*ast.LabeledStatement).Body
		for {
			inner, ok := body.(*ast.LabeledStatement)
			if !ok {
				break
			}
			body = inner.Body
		}
		if body == nil || !iteration(body.Kind()) {
			c.errorf(diag.SynContinueNonLoop, n.Label.Span(), "label '%s' does not denote an iteration statement", n.Label.Name).
				WithNote(l.Span(), "label declared here").
				Emit()
		}
		return
	}
	if n.Label != nil {
		c.errorf(diag.SynUndefinedLabel, n.Label.Span(), "use of undefined label '%s'", n.Label.Name).Emit()
		return
	}
	c.errorf(diag.SynIllegalContinue, n.Span(), "illegal continue statement: no surrounding iteration statement").Emit()
}

func checkReturn(c nodeCtx, n *ast.ReturnStatement) {
	for a := range c.Nodes().Ancestors(c.id) {
		switch c.Nodes().Kind(a) {
		case ast.KindFunction, ast.KindArrowFunctionExpression:
			return
		case ast.KindStaticBlock, ast.KindProgram:
			c.errorf(diag.SynReturnOutsideFunction, n.Span(), "illegal return statement").Emit()
			return
		}
	}
}

func checkForHead(c nodeCtx, left ast.Node, of bool) {
	decl, ok := left.(*ast.VariableDeclaration)
	if !ok || len(decl.Declarations) == 0 {
		return
	}
	loop := "in"
	if of {
		loop = "of"
	}
	if len(decl.Declarations) > 1 {
		c.errorf(diag.SynForHeadMultipleDecls, decl.Span(), "only a single declaration is allowed in a for-%s statement", loop).Emit()
	}
	first := decl.Declarations[0]
	if first.Init == nil {
		return
	}
	// Annex B keeps `for (var x = 1 in o)` in sloppy scripts
	_, simple := first.ID.(*ast.BindingIdentifier)
	if of || c.strict() || decl.VarKind.Lexical() || !simple {
		c.errorf(diag.SynForHeadInitializer, first.Span(), "for-%s loop variable declaration may not have an initializer", loop).Emit()
	}
}

func checkUseStrictParams(c nodeCtx, directives []*ast.Directive, params *ast.FormalParameters) {
	if params.IsSimple() {
		return
	}
	for _, d := range directives {
		if d.Value == "use strict" {
			c.errorf(diag.SynIllegalUseStrict, d.Span(), "illegal 'use strict' directive in function with non-simple parameter list").
				WithNote(params.Span(), "non-simple parameters").
				Emit()
			return
		}
	}
}

type privateDecl struct {
	span   source.Span
	kind   ast.MethodKind
	static bool
	paired bool
}

// checkClassBody reports a second constructor implementation and private
// names declared twice. A getter and a setter of the same staticness may
// share a name.
func checkClassBody(c nodeCtx, body *ast.ClassBody) {
	var ctor *ast.MethodDefinition
	privates := make(map[string]*privateDecl)
	for _, el := range body.Body {
		var (
			key      ast.Node
			computed bool
			static   bool
			kind     = ast.MethodKindMethod
		)
		switch el := el.(type) {
		case *ast.MethodDefinition:
			key, computed, static, kind = el.Key, el.Computed, el.Static, el.MethodKind
			if el.MethodKind == ast.MethodKindConstructor && el.Value != nil && el.Value.Body != nil {
				if ctor != nil {
					c.errorf(diag.SynDuplicateConstructor, el.Key.Span(), "multiple constructor implementations are not allowed").
						WithNote(ctor.Key.Span(), "first constructor here").
						Emit()
				} else {
					ctor = el
				}
			}
		case *ast.PropertyDefinition:
			key, computed, static = el.Key, el.Computed, el.Static
		default:
			continue
		}
		name, private := ast.KeyName(key, computed)
		if !private {
			continue
		}
		prev, ok := privates[name]
		if !ok {
			privates[name] = &privateDecl{span: key.Span(), kind: kind, static: static}
			continue
		}
		if !prev.paired && prev.static == static && accessorPair(prev.kind, kind) {
			prev.paired = true
			continue
		}
		c.errorf(diag.SemaDuplicatePrivate, key.Span(), "private name '#%s' has already been declared", name).
			WithNote(prev.span, "first declared here").
			Emit()
	}
}

func accessorPair(a, b ast.MethodKind) bool {
	return (a == ast.MethodKindGet && b == ast.MethodKindSet) || (a == ast.MethodKindSet && b == ast.MethodKindGet)
}

func checkMetaProperty(c nodeCtx, n *ast.MetaProperty) {
	switch {
	case n.Is("import", "meta"):
		if !c.SourceType().Module {
			c.errorf(diag.SynImportMetaOutsideModule, n.Span(), "import.meta is only valid in module code").Emit()
		}
	case n.Is("new", "target"):
		for a := range c.Nodes().Ancestors(c.id) {
			switch c.Nodes().Kind(a) {
			case ast.KindFunction, ast.KindStaticBlock, ast.KindPropertyDefinition:
				return
			case ast.KindProgram:
				c.errorf(diag.SynNewTargetOutsideFunction, n.Span(), "new.target expression is not allowed here").Emit()
				return
			}
		}
	}
}

// checkInParameters reports await and yield expressions inside the formal
// parameters of the nearest function.
func checkInParameters(c nodeCtx, code diag.Code, keyword string, span source.Span) {
	for a := range c.Nodes().Ancestors(c.id) {
		switch c.Nodes().Kind(a) {
		case ast.KindFormalParameters:
			c.errorf(code, span, "'%s' expression is not allowed in formal parameters", keyword).Emit()
			return
		case ast.KindFunction, ast.KindArrowFunctionExpression, ast.KindStaticBlock, ast.KindProgram:
			return
		}
	}
}
