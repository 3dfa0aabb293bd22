package ast

import (
	"encoding/json"
	"strings"
)

func (d *decoder) expr(o object) Expr {
	b := d.base(o)
	switch t := o.typ(); t {
	case "Identifier":
		return d.identRef(o)
	case "PrivateIdentifier":
		return &PrivateIdentifier{Base: b, Name: d.str(o, "name")}
	case "Literal":
		return d.literal(o)
	case "TemplateLiteral":
		return d.template(o)
	case "TaggedTemplateExpression":
		return &TaggedTemplateExpression{
			Base:          b,
			Tag:           d.expr(d.required(o, "tag")),
			Quasi:         d.template(d.required(o, "quasi")),
			TypeArguments: d.typeArgs(o),
		}
	case "ThisExpression":
		return &ThisExpression{Base: b}
	case "Super":
		return &Super{Base: b}
	case "ArrayExpression":
		return &ArrayExpression{Base: b, Elements: d.exprs(d.list(o, "elements"))}
	case "ObjectExpression":
		e := &ObjectExpression{Base: b}
		for _, raw := range d.list(o, "properties") {
			p := d.obj(raw)
			if p.typ() == "SpreadElement" {
				e.Properties = append(e.Properties, d.expr(p))
				continue
			}
			e.Properties = append(e.Properties, d.property(p))
		}
		return e
	case "SpreadElement":
		return &SpreadElement{Base: b, Argument: d.expr(d.required(o, "argument"))}
	case "FunctionExpression":
		return d.function(o, FunctionExpression)
	case "ArrowFunctionExpression":
		return d.arrow(o)
	case "ClassExpression":
		return d.class(o, ClassExpression)
	case "UnaryExpression":
		return &UnaryExpression{Base: b, Operator: d.str(o, "operator"), Argument: d.expr(d.required(o, "argument"))}
	case "UpdateExpression":
		return &UpdateExpression{
			Base:     b,
			Operator: d.str(o, "operator"),
			Prefix:   d.flag(o, "prefix"),
			Argument: d.target(d.required(o, "argument")),
		}
	case "BinaryExpression":
		return &BinaryExpression{
			Base:     b,
			Operator: d.str(o, "operator"),
			Left:     d.expr(d.required(o, "left")),
			Right:    d.expr(d.required(o, "right")),
		}
	case "LogicalExpression":
		return &LogicalExpression{
			Base:     b,
			Operator: d.str(o, "operator"),
			Left:     d.expr(d.required(o, "left")),
			Right:    d.expr(d.required(o, "right")),
		}
	case "AssignmentExpression":
		return &AssignmentExpression{
			Base:     b,
			Operator: d.str(o, "operator"),
			Left:     d.target(d.required(o, "left")),
			Right:    d.expr(d.required(o, "right")),
		}
	case "ConditionalExpression":
		return &ConditionalExpression{
			Base:       b,
			Test:       d.expr(d.required(o, "test")),
			Consequent: d.expr(d.required(o, "consequent")),
			Alternate:  d.expr(d.required(o, "alternate")),
		}
	case "CallExpression":
		return &CallExpression{
			Base:          b,
			Callee:        d.expr(d.required(o, "callee")),
			Arguments:     d.exprs(d.list(o, "arguments")),
			Optional:      d.flag(o, "optional"),
			TypeArguments: d.typeArgs(o),
		}
	case "NewExpression":
		return &NewExpression{
			Base:          b,
			Callee:        d.expr(d.required(o, "callee")),
			Arguments:     d.exprs(d.list(o, "arguments")),
			TypeArguments: d.typeArgs(o),
		}
	case "MemberExpression":
		return d.member(o)
	case "ChainExpression":
		return &ChainExpression{Base: b, Expression: d.expr(d.required(o, "expression"))}
	case "SequenceExpression":
		return &SequenceExpression{Base: b, Expressions: d.exprs(d.list(o, "expressions"))}
	case "ParenthesizedExpression":
		return &ParenthesizedExpression{Base: b, Expression: d.expr(d.required(o, "expression"))}
	case "YieldExpression":
		return &YieldExpression{Base: b, Delegate: d.flag(o, "delegate"), Argument: d.optExpr(d.field(o, "argument"))}
	case "AwaitExpression":
		return &AwaitExpression{Base: b, Argument: d.expr(d.required(o, "argument"))}
	case "MetaProperty":
		return &MetaProperty{Base: b, Meta: d.identName(d.required(o, "meta")), Property: d.identName(d.required(o, "property"))}
	case "ImportExpression":
		return &ImportExpression{Base: b, Source: d.expr(d.required(o, "source")), Options: d.optExpr(d.field(o, "options"))}
	case "TSAsExpression":
		return &TSAsExpression{Base: b, Expression: d.expr(d.required(o, "expression")), TypeAnnotation: d.tsType(d.required(o, "typeAnnotation"))}
	case "TSSatisfiesExpression":
		return &TSSatisfiesExpression{Base: b, Expression: d.expr(d.required(o, "expression")), TypeAnnotation: d.tsType(d.required(o, "typeAnnotation"))}
	case "TSTypeAssertion":
		return &TSTypeAssertion{Base: b, Expression: d.expr(d.required(o, "expression")), TypeAnnotation: d.tsType(d.required(o, "typeAnnotation"))}
	case "TSNonNullExpression":
		return &TSNonNullExpression{Base: b, Expression: d.expr(d.required(o, "expression"))}
	case "TSInstantiationExpression":
		return &TSInstantiationExpression{Base: b, Expression: d.expr(d.required(o, "expression")), TypeArguments: d.typeArgs(o)}
	default:
		if strings.HasPrefix(t, "JSX") {
			d.fail(DecodeUnsupported, o, "JSX is not supported")
		}
		d.fail(DecodeUnknownNode, o, "unknown expression type %q", t)
	}
	return nil
}

func (d *decoder) literal(o object) Expr {
	b := d.base(o)
	raw := d.str(o, "raw")
	if re := d.field(o, "regex"); re != nil {
		return &RegExpLiteral{Base: b, Pattern: d.str(re, "pattern"), Flags: d.str(re, "flags")}
	}
	if o.has("bigint") {
		return &BigIntLiteral{Base: b, Raw: raw}
	}
	value := o["value"]
	if isNull(value) {
		return &NullLiteral{Base: b}
	}
	switch value[0] {
	case 't', 'f':
		return &BooleanLiteral{Base: b, Value: value[0] == 't'}
	case '"':
		return &StringLiteral{Base: b, Value: d.str(o, "value"), Raw: raw}
	}
	var f float64
	if err := json.Unmarshal(value, &f); err != nil {
		d.fail(DecodeMalformed, o, "unsupported literal value")
	}
	return &NumericLiteral{Base: b, Value: f, Raw: raw}
}

func (d *decoder) template(o object) *TemplateLiteral {
	t := &TemplateLiteral{Base: d.base(o), Expressions: d.exprs(d.list(o, "expressions"))}
	for _, raw := range d.list(o, "quasis") {
		q := d.obj(raw)
		el := &TemplateElement{Base: d.base(q), Tail: d.flag(q, "tail")}
		if v := d.field(q, "value"); v != nil {
			el.Raw = d.str(v, "raw")
		}
		t.Quasis = append(t.Quasis, el)
	}
	return t
}

func (d *decoder) member(o object) *MemberExpression {
	m := &MemberExpression{
		Base:     d.base(o),
		Object:   d.expr(d.required(o, "object")),
		Computed: d.flag(o, "computed"),
		Optional: d.flag(o, "optional"),
	}
	p := d.required(o, "property")
	switch {
	case m.Computed:
		m.Property = d.expr(p)
	case p.typ() == "PrivateIdentifier":
		m.Property = &PrivateIdentifier{Base: d.base(p), Name: d.str(p, "name")}
	default:
		m.Property = d.identName(p)
	}
	return m
}

// propKey decodes a property or member key.
func (d *decoder) propKey(o object, computed bool) Node {
	if computed {
		return d.expr(o)
	}
	switch o.typ() {
	case "Identifier":
		return d.identName(o)
	case "PrivateIdentifier":
		return &PrivateIdentifier{Base: d.base(o), Name: d.str(o, "name")}
	}
	return d.expr(o)
}

func (d *decoder) property(o object) *ObjectProperty {
	if o.typ() != "Property" {
		d.fail(DecodeUnknownNode, o, "expected Property")
	}
	p := &ObjectProperty{
		Base:      d.base(o),
		Method:    d.flag(o, "method"),
		Shorthand: d.flag(o, "shorthand"),
		Computed:  d.flag(o, "computed"),
	}
	switch d.str(o, "kind") {
	case "get":
		p.PropKind = PropertyGet
	case "set":
		p.PropKind = PropertySet
	}
	p.Key = d.propKey(d.required(o, "key"), p.Computed)
	v := d.required(o, "value")
	if v.typ() == "FunctionExpression" && (p.Method || p.PropKind != PropertyInit) {
		p.Value = d.functionWith(v, FunctionExpression, ParamsUnique)
	} else {
		p.Value = d.expr(v)
	}
	return p
}

// pattern decodes a binding pattern.
func (d *decoder) pattern(o object) Pattern {
	b := d.base(o)
	switch t := o.typ(); t {
	case "Identifier":
		return d.bindingIdent(o)
	case "ObjectPattern":
		p := &ObjectPattern{Base: b, TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation"))}
		for _, raw := range d.list(o, "properties") {
			c := d.obj(raw)
			if c.typ() == "RestElement" {
				p.Rest = d.rest(c)
				continue
			}
			prop := &BindingProperty{
				Base:      d.base(c),
				Computed:  d.flag(c, "computed"),
				Shorthand: d.flag(c, "shorthand"),
			}
			prop.Key = d.propKey(d.required(c, "key"), prop.Computed)
			prop.Value = d.pattern(d.required(c, "value"))
			p.Properties = append(p.Properties, prop)
		}
		return p
	case "ArrayPattern":
		p := &ArrayPattern{Base: b, TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation"))}
		for _, raw := range d.list(o, "elements") {
			c := d.obj(raw)
			switch {
			case c == nil:
				p.Elements = append(p.Elements, nil)
			case c.typ() == "RestElement":
				p.Rest = d.rest(c)
			default:
				p.Elements = append(p.Elements, d.pattern(c))
			}
		}
		return p
	case "AssignmentPattern":
		return &AssignmentPattern{Base: b, Left: d.pattern(d.required(o, "left")), Right: d.expr(d.required(o, "right"))}
	case "RestElement":
		return d.rest(o)
	default:
		d.fail(DecodeUnsupported, o, "%s is not a binding pattern", t)
	}
	return nil
}

func (d *decoder) rest(o object) *RestElement {
	return &RestElement{
		Base:           d.base(o),
		Argument:       d.pattern(d.required(o, "argument")),
		TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation")),
	}
}

// target decodes the left side of an assignment, update or for-in/of.
func (d *decoder) target(o object) Target {
	b := d.base(o)
	switch t := o.typ(); t {
	case "Identifier":
		return d.identRef(o)
	case "MemberExpression":
		return d.member(o)
	case "ObjectPattern":
		ot := &ObjectAssignmentTarget{Base: b}
		for _, raw := range d.list(o, "properties") {
			c := d.obj(raw)
			if c.typ() == "RestElement" {
				ot.Rest = &AssignmentTargetRest{Base: d.base(c), Target: d.target(d.required(c, "argument"))}
				continue
			}
			ot.Properties = append(ot.Properties, d.targetProperty(c))
		}
		return ot
	case "ArrayPattern":
		at := &ArrayAssignmentTarget{Base: b}
		for _, raw := range d.list(o, "elements") {
			c := d.obj(raw)
			switch {
			case c == nil:
				at.Elements = append(at.Elements, nil)
			case c.typ() == "RestElement":
				at.Rest = &AssignmentTargetRest{Base: d.base(c), Target: d.target(d.required(c, "argument"))}
			default:
				at.Elements = append(at.Elements, d.targetMaybeDefault(c))
			}
		}
		return at
	case "ParenthesizedExpression", "TSAsExpression", "TSSatisfiesExpression", "TSNonNullExpression", "TSTypeAssertion":
		if tg, ok := d.expr(o).(Target); ok {
			return tg
		}
	}
	d.fail(DecodeUnsupported, o, "invalid assignment target")
	return nil
}

func (d *decoder) targetMaybeDefault(o object) Target {
	if o.typ() == "AssignmentPattern" {
		return &AssignmentTargetWithDefault{
			Base:    d.base(o),
			Binding: d.target(d.required(o, "left")),
			Init:    d.expr(d.required(o, "right")),
		}
	}
	return d.target(o)
}

func (d *decoder) targetProperty(o object) Node {
	computed := d.flag(o, "computed")
	v := d.required(o, "value")
	if d.flag(o, "shorthand") {
		p := &AssignmentTargetPropertyIdentifier{Base: d.base(o)}
		if v.typ() == "AssignmentPattern" {
			p.Binding = d.identRef(d.required(v, "left"))
			p.Init = d.expr(d.required(v, "right"))
		} else {
			p.Binding = d.identRef(v)
		}
		return p
	}
	return &AssignmentTargetPropertyProperty{
		Base:     d.base(o),
		Name:     d.propKey(d.required(o, "key"), computed),
		Computed: computed,
		Binding:  d.targetMaybeDefault(v),
	}
}

func (d *decoder) function(o object, typ FunctionType) *Function {
	return d.functionWith(o, typ, ParamsFormal)
}

func (d *decoder) functionWith(o object, typ FunctionType, kind ParamsKind) *Function {
	f := &Function{
		Base:           d.base(o),
		Type:           typ,
		Generator:      d.flag(o, "generator"),
		Async:          d.flag(o, "async"),
		Declare:        d.flag(o, "declare"),
		TypeParameters: d.typeParams(d.field(o, "typeParameters")),
		ReturnType:     d.typeAnnotation(d.field(o, "returnType")),
	}
	if id := d.field(o, "id"); id != nil {
		f.ID = d.bindingIdent(id)
	}
	f.Params, f.ThisParam = d.params(o, kind)
	if body := d.field(o, "body"); body != nil {
		f.Body = d.functionBody(body)
	}
	return f
}

func (d *decoder) functionBody(o object) *FunctionBody {
	fb := &FunctionBody{Base: d.base(o)}
	fb.Directives, fb.Statements = d.prologue(d.list(o, "body"))
	return fb
}

func (d *decoder) arrow(o object) *ArrowFunctionExpression {
	a := &ArrowFunctionExpression{
		Base:           d.base(o),
		Async:          d.flag(o, "async"),
		Expression:     d.flag(o, "expression"),
		TypeParameters: d.typeParams(d.field(o, "typeParameters")),
		ReturnType:     d.typeAnnotation(d.field(o, "returnType")),
	}
	a.Params, _ = d.params(o, ParamsArrow)
	body := d.required(o, "body")
	if body.typ() == "BlockStatement" {
		a.Expression = false
		a.Body = d.functionBody(body)
		return a
	}
	a.Expression = true
	e := d.expr(body)
	a.Body = &FunctionBody{
		Base:       Base{Loc: e.Span()},
		Statements: []Stmt{&ExpressionStatement{Base: Base{Loc: e.Span()}, Expression: e}},
	}
	return a
}

// params decodes the "params" array of a function-like node. A leading
// TS `this` parameter is split off and returned separately.
func (d *decoder) params(o object, kind ParamsKind) (*FormalParameters, *TSTypeAnnotation) {
	fp := &FormalParameters{ParamsKind: kind}
	var this *TSTypeAnnotation
	for i, raw := range d.list(o, "params") {
		p := d.obj(raw)
		if i == 0 && p.typ() == "Identifier" && d.str(p, "name") == "this" {
			this = d.typeAnnotation(d.field(p, "typeAnnotation"))
			continue
		}
		fp.Items = append(fp.Items, d.param(p))
	}
	// ESTree has no node for the list itself.
	start := d.span(o)
	start.End = start.Start
	fp.Loc = start
	for i, item := range fp.Items {
		if i == 0 {
			fp.Loc = item.Span()
			continue
		}
		fp.Loc = fp.Loc.Cover(item.Span())
	}
	return fp, this
}

func (d *decoder) param(o object) *FormalParameter {
	if o.typ() == "TSParameterProperty" {
		inner := d.required(o, "parameter")
		return &FormalParameter{
			Base:          d.base(o),
			Pattern:       d.pattern(inner),
			Decorators:    d.decorators(o),
			Accessibility: d.str(o, "accessibility"),
			Readonly:      d.flag(o, "readonly"),
			Override:      d.flag(o, "override"),
		}
	}
	return &FormalParameter{Base: d.base(o), Pattern: d.pattern(o), Decorators: d.decorators(o)}
}

func (d *decoder) class(o object, typ ClassType) *Class {
	c := &Class{
		Base:           d.base(o),
		Type:           typ,
		TypeParameters: d.typeParams(d.field(o, "typeParameters")),
		SuperClass:     d.optExpr(d.field(o, "superClass")),
		Decorators:     d.decorators(o),
		Abstract:       d.flag(o, "abstract"),
		Declare:        d.flag(o, "declare"),
	}
	if id := d.field(o, "id"); id != nil {
		c.ID = d.bindingIdent(id)
	}
	c.SuperTypeArgs = d.typeArgsField(o, "superTypeArguments", "superTypeParameters")
	for _, raw := range d.list(o, "implements") {
		impl := d.obj(raw)
		c.Implements = append(c.Implements, &TSClassImplements{
			Base:          d.base(impl),
			Expression:    d.entityName(d.required(impl, "expression")),
			TypeArguments: d.typeArgs(impl),
		})
	}
	body := d.required(o, "body")
	c.Body = &ClassBody{Base: d.base(body)}
	for _, raw := range d.list(body, "body") {
		c.Body.Body = append(c.Body.Body, d.classElement(d.obj(raw)))
	}
	return c
}

func (d *decoder) classElement(o object) ClassElement {
	b := d.base(o)
	t := o.typ()
	switch t {
	case "MethodDefinition", "TSAbstractMethodDefinition":
		m := &MethodDefinition{
			Base:          b,
			Computed:      d.flag(o, "computed"),
			Static:        d.flag(o, "static"),
			Decorators:    d.decorators(o),
			Abstract:      t == "TSAbstractMethodDefinition",
			Optional:      d.flag(o, "optional"),
			Override:      d.flag(o, "override"),
			Accessibility: d.str(o, "accessibility"),
		}
		switch d.str(o, "kind") {
		case "constructor":
			m.MethodKind = MethodKindConstructor
		case "get":
			m.MethodKind = MethodKindGet
		case "set":
			m.MethodKind = MethodKindSet
		}
		m.Key = d.propKey(d.required(o, "key"), m.Computed)
		m.Value = d.functionWith(d.required(o, "value"), FunctionExpression, ParamsUnique)
		return m
	case "PropertyDefinition", "TSAbstractPropertyDefinition", "AccessorProperty", "TSAbstractAccessorProperty":
		p := &PropertyDefinition{
			Base:           b,
			Computed:       d.flag(o, "computed"),
			Static:         d.flag(o, "static"),
			Value:          d.optExpr(d.field(o, "value")),
			TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation")),
			Decorators:     d.decorators(o),
			Accessor:       strings.HasSuffix(t, "AccessorProperty"),
			Declare:        d.flag(o, "declare"),
			Abstract:       strings.HasPrefix(t, "TSAbstract"),
			Optional:       d.flag(o, "optional"),
			Definite:       d.flag(o, "definite"),
			Readonly:       d.flag(o, "readonly"),
			Override:       d.flag(o, "override"),
			Accessibility:  d.str(o, "accessibility"),
		}
		p.Key = d.propKey(d.required(o, "key"), p.Computed)
		return p
	case "StaticBlock":
		return &StaticBlock{Base: b, Body: d.stmts(d.list(o, "body"))}
	case "TSIndexSignature":
		return d.indexSignature(o)
	}
	d.fail(DecodeUnknownNode, o, "unknown class element %q", t)
	return nil
}
