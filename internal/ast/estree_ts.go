package ast

import (
	"encoding/json"
	"strings"

	"fortio.org/safecast"
)

// tsStmt decodes TS-only declarations. It returns nil for unknown types.
func (d *decoder) tsStmt(o object) Stmt {
	b := d.base(o)
	switch o.typ() {
	case "TSTypeAliasDeclaration":
		return &TSTypeAliasDeclaration{
			Base:           b,
			ID:             d.bindingIdent(d.required(o, "id")),
			TypeParameters: d.typeParams(d.field(o, "typeParameters")),
			TypeAnnotation: d.tsType(d.required(o, "typeAnnotation")),
			Declare:        d.flag(o, "declare"),
		}
	case "TSInterfaceDeclaration":
		decl := &TSInterfaceDeclaration{
			Base:           b,
			ID:             d.bindingIdent(d.required(o, "id")),
			TypeParameters: d.typeParams(d.field(o, "typeParameters")),
			Declare:        d.flag(o, "declare"),
		}
		for _, raw := range d.list(o, "extends") {
			h := d.obj(raw)
			decl.Extends = append(decl.Extends, &TSInterfaceHeritage{
				Base:          d.base(h),
				Expression:    d.expr(d.required(h, "expression")),
				TypeArguments: d.typeArgs(h),
			})
		}
		body := d.required(o, "body")
		decl.Body = &TSInterfaceBody{Base: d.base(body), Body: d.signatures(d.list(body, "body"))}
		return decl
	case "TSEnumDeclaration":
		decl := &TSEnumDeclaration{
			Base:    b,
			ID:      d.bindingIdent(d.required(o, "id")),
			Const:   d.flag(o, "const"),
			Declare: d.flag(o, "declare"),
		}
		members := d.list(o, "members")
		if body := d.field(o, "body"); body != nil {
			members = d.list(body, "members")
		}
		for _, raw := range members {
			m := d.obj(raw)
			decl.Members = append(decl.Members, &TSEnumMember{
				Base:        d.base(m),
				ID:          d.moduleName(d.required(m, "id")),
				Initializer: d.optExpr(d.field(m, "initializer")),
			})
		}
		return decl
	case "TSModuleDeclaration":
		return d.tsModule(o)
	case "TSImportEqualsDeclaration":
		decl := &TSImportEqualsDeclaration{
			Base:       b,
			ID:         d.bindingIdent(d.required(o, "id")),
			ImportKind: d.ieKind(o, "importKind"),
		}
		ref := d.required(o, "moduleReference")
		if ref.typ() == "TSExternalModuleReference" {
			decl.ModuleReference = &TSExternalModuleReference{
				Base:       d.base(ref),
				Expression: d.stringLit(d.required(ref, "expression")),
			}
		} else {
			decl.ModuleReference = d.entityName(ref)
		}
		return decl
	case "TSExportAssignment":
		return &TSExportAssignment{Base: b, Expression: d.expr(d.required(o, "expression"))}
	case "TSNamespaceExportDeclaration":
		return &TSNamespaceExportDeclaration{Base: b, ID: d.identName(d.required(o, "id"))}
	}
	return nil
}

// tsModule decodes a module declaration. A dotted id (`namespace a.b {}`)
// is split into nested declarations, innermost last.
func (d *decoder) tsModule(o object) *TSModuleDeclaration {
	kind := TSModuleNamespace
	switch k := d.str(o, "kind"); {
	case k == "global" || d.flag(o, "global"):
		kind = TSModuleGlobal
	case k == "module":
		kind = TSModuleModule
	}

	var ids []object
	for id := d.required(o, "id"); ; {
		if id.typ() != "TSQualifiedName" {
			ids = append([]object{id}, ids...)
			break
		}
		ids = append([]object{d.required(id, "right")}, ids...)
		id = d.required(id, "left")
	}

	var body Node
	if c := d.field(o, "body"); c != nil {
		if c.typ() == "TSModuleDeclaration" {
			body = d.tsModule(c)
		} else {
			blk := &TSModuleBlock{Base: d.base(c)}
			blk.Directives, blk.Body = d.prologue(d.list(c, "body"))
			body = blk
		}
	}

	loc := d.span(o)
	var decl *TSModuleDeclaration
	for i := len(ids) - 1; i >= 0; i-- {
		decl = &TSModuleDeclaration{ModuleKind: kind, Body: body}
		if i == 0 {
			decl.Loc = loc
			decl.Declare = d.flag(o, "declare")
		} else {
			decl.Loc = d.span(ids[i])
			decl.Loc.End = loc.End
			decl.ModuleKind = TSModuleNamespace
		}
		if ids[i].typ() == "Literal" {
			decl.ID = d.stringLit(ids[i])
		} else {
			decl.ID = d.bindingIdent(ids[i])
		}
		body = decl
	}
	return decl
}

// entityName decodes `a` or `a.b.c` in type or heritage position.
func (d *decoder) entityName(o object) Node {
	switch o.typ() {
	case "Identifier":
		return d.identRef(o)
	case "ThisExpression":
		return &ThisExpression{Base: d.base(o)}
	case "TSQualifiedName", "MemberExpression":
		right := d.field(o, "right")
		left := d.field(o, "left")
		if o.typ() == "MemberExpression" {
			left, right = d.required(o, "object"), d.required(o, "property")
		}
		if left == nil || right == nil {
			d.fail(DecodeMissingField, o, "qualified name needs both sides")
		}
		return &TSQualifiedName{Base: d.base(o), Left: d.entityName(left), Right: d.identName(right)}
	}
	d.fail(DecodeUnsupported, o, "expected entity name")
	return nil
}

func (d *decoder) typeAnnotation(o object) *TSTypeAnnotation {
	if o == nil {
		return nil
	}
	if o.typ() != "TSTypeAnnotation" {
		t := d.tsType(o)
		return &TSTypeAnnotation{Base: Base{Loc: t.Span()}, TypeAnnotation: t}
	}
	return &TSTypeAnnotation{Base: d.base(o), TypeAnnotation: d.tsType(d.required(o, "typeAnnotation"))}
}

func (d *decoder) typeParams(o object) *TSTypeParameterDeclaration {
	if o == nil {
		return nil
	}
	decl := &TSTypeParameterDeclaration{Base: d.base(o)}
	for _, raw := range d.list(o, "params") {
		p := d.obj(raw)
		tp := &TSTypeParameter{
			Base:  d.base(p),
			In:    d.flag(p, "in"),
			Out:   d.flag(p, "out"),
			Const: d.flag(p, "const"),
		}
		if name := d.field(p, "name"); name != nil {
			tp.Name = d.bindingIdent(name)
		} else {
			// older dumps carry the name as a plain string
			loc := d.span(p)
			name := d.str(p, "name")
			if n, err := safecast.Conv[uint32](len(name)); err == nil {
				loc.End = loc.Start + n
			}
			tp.Name = &BindingIdentifier{Base: Base{Loc: loc}, Name: name}
		}
		if c := d.field(p, "constraint"); c != nil {
			tp.Constraint = d.tsType(c)
		}
		if c := d.field(p, "default"); c != nil {
			tp.Default = d.tsType(c)
		}
		decl.Params = append(decl.Params, tp)
	}
	return decl
}

func (d *decoder) typeArgs(o object) *TSTypeParameterInstantiation {
	return d.typeArgsField(o, "typeArguments", "typeParameters")
}

// typeArgsField reads type arguments from the first present key; TS-ESTree
// renamed typeParameters to typeArguments on references and calls.
func (d *decoder) typeArgsField(o object, keys ...string) *TSTypeParameterInstantiation {
	for _, key := range keys {
		c := d.field(o, key)
		if c == nil || c.typ() != "TSTypeParameterInstantiation" {
			continue
		}
		inst := &TSTypeParameterInstantiation{Base: d.base(c)}
		for _, raw := range d.list(c, "params") {
			inst.Params = append(inst.Params, d.tsType(d.obj(raw)))
		}
		return inst
	}
	return nil
}

func (d *decoder) tsTypes(raws []json.RawMessage) []TSType {
	out := make([]TSType, 0, len(raws))
	for _, raw := range raws {
		out = append(out, d.tsType(d.obj(raw)))
	}
	return out
}

func (d *decoder) tsType(o object) TSType {
	if o == nil {
		d.fail(DecodeMissingField, nil, "missing type")
	}
	b := d.base(o)
	t := o.typ()
	if strings.HasSuffix(t, "Keyword") && strings.HasPrefix(t, "TS") {
		kw := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(t, "TS"), "Keyword"))
		return &TSKeywordType{Base: b, Keyword: kw}
	}
	switch t {
	case "TSThisType":
		return &TSKeywordType{Base: b, Keyword: "this"}
	case "TSTypeReference":
		return &TSTypeReference{Base: b, TypeName: d.entityName(d.required(o, "typeName")), TypeArguments: d.typeArgs(o)}
	case "TSTypeLiteral":
		return &TSTypeLiteral{Base: b, Members: d.signatures(d.list(o, "members"))}
	case "TSUnionType":
		return &TSUnionType{Base: b, Types: d.tsTypes(d.list(o, "types"))}
	case "TSIntersectionType":
		return &TSIntersectionType{Base: b, Types: d.tsTypes(d.list(o, "types"))}
	case "TSArrayType":
		return &TSArrayType{Base: b, ElementType: d.tsType(d.required(o, "elementType"))}
	case "TSTupleType":
		tt := &TSTupleType{Base: b}
		for _, raw := range d.list(o, "elementTypes") {
			tt.ElementTypes = append(tt.ElementTypes, d.tupleElement(d.obj(raw)))
		}
		return tt
	case "TSFunctionType", "TSConstructorType":
		params, _ := d.params(o, ParamsSignature)
		tp := d.typeParams(d.field(o, "typeParameters"))
		ret := d.typeAnnotation(d.field(o, "returnType"))
		if t == "TSConstructorType" {
			return &TSConstructorType{Base: b, Abstract: d.flag(o, "abstract"), TypeParameters: tp, Params: params, ReturnType: ret}
		}
		return &TSFunctionType{Base: b, TypeParameters: tp, Params: params, ReturnType: ret}
	case "TSTypeQuery":
		q := &TSTypeQuery{Base: b, TypeArguments: d.typeArgs(o)}
		name := d.required(o, "exprName")
		if name.typ() == "TSImportType" {
			return &TSOpaqueType{Base: b, Type: t}
		}
		q.ExprName = d.entityName(name)
		return q
	case "TSLiteralType":
		return &TSLiteralType{Base: b, Literal: d.expr(d.required(o, "literal"))}
	case "TSTypeOperator":
		return &TSTypeOperator{Base: b, Operator: d.str(o, "operator"), TypeAnnotation: d.tsType(d.required(o, "typeAnnotation"))}
	case "TSIndexedAccessType":
		return &TSIndexedAccessType{Base: b, ObjectType: d.tsType(d.required(o, "objectType")), IndexType: d.tsType(d.required(o, "indexType"))}
	case "TSParenthesizedType":
		return &TSParenthesizedType{Base: b, TypeAnnotation: d.tsType(d.required(o, "typeAnnotation"))}
	case "TSTypePredicate":
		p := &TSTypePredicate{Base: b, Asserts: d.flag(o, "asserts"), TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation"))}
		name := d.required(o, "parameterName")
		if name.typ() == "TSThisType" {
			p.ParameterName = &TSKeywordType{Base: d.base(name), Keyword: "this"}
		} else {
			p.ParameterName = d.identName(name)
		}
		return p
	}
	if strings.HasPrefix(t, "JSX") {
		d.fail(DecodeUnsupported, o, "JSX is not supported")
	}
	return &TSOpaqueType{Base: b, Type: t}
}

func (d *decoder) tupleElement(o object) TSType {
	switch o.typ() {
	case "TSNamedTupleMember":
		return d.tsType(d.required(o, "elementType"))
	case "TSOptionalType", "TSRestType":
		return d.tsType(d.required(o, "typeAnnotation"))
	}
	return d.tsType(o)
}

func (d *decoder) signatures(raws []json.RawMessage) []Signature {
	out := make([]Signature, 0, len(raws))
	for _, raw := range raws {
		out = append(out, d.signature(d.obj(raw)))
	}
	return out
}

func (d *decoder) signature(o object) Signature {
	b := d.base(o)
	switch t := o.typ(); t {
	case "TSPropertySignature":
		s := &TSPropertySignature{
			Base:           b,
			Computed:       d.flag(o, "computed"),
			Optional:       d.flag(o, "optional"),
			Readonly:       d.flag(o, "readonly"),
			TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation")),
		}
		s.Key = d.propKey(d.required(o, "key"), s.Computed)
		return s
	case "TSMethodSignature":
		s := &TSMethodSignature{
			Base:           b,
			Computed:       d.flag(o, "computed"),
			Optional:       d.flag(o, "optional"),
			TypeParameters: d.typeParams(d.field(o, "typeParameters")),
			ReturnType:     d.typeAnnotation(d.field(o, "returnType")),
		}
		switch d.str(o, "kind") {
		case "get":
			s.MethodKind = MethodKindGet
		case "set":
			s.MethodKind = MethodKindSet
		}
		s.Key = d.propKey(d.required(o, "key"), s.Computed)
		s.Params, _ = d.params(o, ParamsSignature)
		return s
	case "TSCallSignatureDeclaration":
		s := &TSCallSignatureDeclaration{
			Base:           b,
			TypeParameters: d.typeParams(d.field(o, "typeParameters")),
			ReturnType:     d.typeAnnotation(d.field(o, "returnType")),
		}
		s.Params, _ = d.params(o, ParamsSignature)
		return s
	case "TSConstructSignatureDeclaration":
		s := &TSConstructSignatureDeclaration{
			Base:           b,
			TypeParameters: d.typeParams(d.field(o, "typeParameters")),
			ReturnType:     d.typeAnnotation(d.field(o, "returnType")),
		}
		s.Params, _ = d.params(o, ParamsSignature)
		return s
	case "TSIndexSignature":
		return d.indexSignature(o)
	default:
		d.fail(DecodeUnknownNode, o, "unknown signature %q", t)
	}
	return nil
}

func (d *decoder) indexSignature(o object) *TSIndexSignature {
	s := &TSIndexSignature{
		Base:           d.base(o),
		TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation")),
		Readonly:       d.flag(o, "readonly"),
		Static:         d.flag(o, "static"),
	}
	for _, raw := range d.list(o, "parameters") {
		s.Parameters = append(s.Parameters, d.bindingIdent(d.obj(raw)))
	}
	return s
}
