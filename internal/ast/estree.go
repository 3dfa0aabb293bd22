package ast

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"

	"jsbind/internal/source"
)

// DecodeErrorKind classifies decoding failures.
type DecodeErrorKind uint8

const (
	DecodeMalformed DecodeErrorKind = iota
	DecodeUnknownNode
	DecodeMissingField
	DecodeUnsupported
)

// DecodeError describes why an ESTree document could not be decoded.
type DecodeError struct {
	Kind DecodeErrorKind
	Type string // ESTree type of the offending node, if known
	Span source.Span
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("estree: ")
	if e.Type != "" {
		fmt.Fprintf(&b, "%s at %d: ", e.Type, e.Span.Start)
	}
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeESTree decodes an ESTree (or TS-ESTree) Program document. Offsets are
// taken from "start"/"end" or from "range" and are interpreted as byte
// offsets into the file's source text.
func DecodeESTree(data []byte, file source.FileID) (prog *Program, err error) {
	var root object
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Kind: DecodeMalformed, Msg: "invalid JSON", Err: err}
	}
	d := &decoder{file: file}
	defer func() {
		if r := recover(); r != nil {
			var de *DecodeError
			if e, ok := r.(error); ok && errors.As(e, &de) {
				prog, err = nil, de
				return
			}
			panic(r)
		}
	}()
	if t := root.typ(); t != "Program" {
		d.fail(DecodeUnknownNode, root, "root node must be Program, got %q", t)
	}
	return d.program(root), nil
}

type object map[string]json.RawMessage

func (o object) typ() string {
	var s string
	if raw, ok := o["type"]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

func (o object) has(key string) bool {
	raw, ok := o[key]
	return ok && !isNull(raw)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

type decoder struct {
	file source.FileID
}

func (d *decoder) fail(kind DecodeErrorKind, o object, format string, args ...any) {
	e := &DecodeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	if o != nil {
		e.Type = o.typ()
		e.Span = d.span(o)
	}
	panic(e)
}

func (d *decoder) obj(raw json.RawMessage) object {
	if isNull(raw) {
		return nil
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		panic(&DecodeError{Kind: DecodeMalformed, Msg: "expected object", Err: err})
	}
	return o
}

func (d *decoder) field(o object, key string) object {
	return d.obj(o[key])
}

func (d *decoder) required(o object, key string) object {
	c := d.field(o, key)
	if c == nil {
		d.fail(DecodeMissingField, o, "missing %q", key)
	}
	return c
}

func (d *decoder) list(o object, key string) []json.RawMessage {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil
	}
	var out []json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		d.fail(DecodeMalformed, o, "field %q must be an array", key)
	}
	return out
}

func (d *decoder) str(o object, key string) string {
	var s string
	if raw, ok := o[key]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &s); err != nil {
			d.fail(DecodeMalformed, o, "field %q must be a string", key)
		}
	}
	return s
}

func (d *decoder) flag(o object, key string) bool {
	var b bool
	if raw, ok := o[key]; ok && !isNull(raw) {
		_ = json.Unmarshal(raw, &b)
	}
	return b
}

func (d *decoder) offset(o object, key string) uint32 {
	var f float64
	if err := json.Unmarshal(o[key], &f); err != nil || f < 0 || f > math.MaxUint32 {
		d.fail(DecodeMalformed, nil, "bad offset %q", key)
	}
	v, err := safecast.Conv[uint32](int64(f))
	if err != nil {
		d.fail(DecodeMalformed, nil, "offset overflow: %v", err)
	}
	return v
}

func (d *decoder) span(o object) source.Span {
	if o.has("start") && o.has("end") {
		return source.Span{File: d.file, Start: d.offset(o, "start"), End: d.offset(o, "end")}
	}
	if o.has("range") {
		var r [2]float64
		if err := json.Unmarshal(o["range"], &r); err == nil && r[0] >= 0 && r[1] >= r[0] && r[1] <= math.MaxUint32 {
			return source.Span{File: d.file, Start: uint32(r[0]), End: uint32(r[1])}
		}
	}
	return source.Span{File: d.file}
}

func (d *decoder) base(o object) Base {
	return Base{Loc: d.span(o)}
}

func (d *decoder) program(o object) *Program {
	p := &Program{Base: d.base(o)}
	p.SourceType.Module = d.str(o, "sourceType") == "module"
	if h := d.field(o, "hashbang"); h != nil {
		p.Hashbang = d.str(h, "value")
	}
	p.Directives, p.Body = d.prologue(d.list(o, "body"))
	for _, raw := range d.list(o, "comments") {
		c := d.obj(raw)
		switch t := c.typ(); t {
		case "Block", "Line":
			p.Comments = append(p.Comments, &Comment{Base: d.base(c), Block: t == "Block", Value: d.str(c, "value")})
		case "Shebang", "Hashbang":
		default:
			d.fail(DecodeUnknownNode, c, "unknown comment type %q", t)
		}
	}
	return p
}

// prologue splits leading directive statements off a statement list.
func (d *decoder) prologue(raws []json.RawMessage) ([]*Directive, []Stmt) {
	var dirs []*Directive
	i := 0
	for ; i < len(raws); i++ {
		o := d.obj(raws[i])
		if o.typ() != "ExpressionStatement" || !o.has("directive") {
			break
		}
		dirs = append(dirs, &Directive{Base: d.base(o), Value: d.str(o, "directive")})
	}
	return dirs, d.stmts(raws[i:])
}

func (d *decoder) stmts(raws []json.RawMessage) []Stmt {
	out := make([]Stmt, 0, len(raws))
	for _, raw := range raws {
		out = append(out, d.stmt(d.obj(raw)))
	}
	return out
}

func (d *decoder) optStmt(o object) Stmt {
	if o == nil {
		return nil
	}
	return d.stmt(o)
}

func (d *decoder) optExpr(o object) Expr {
	if o == nil {
		return nil
	}
	return d.expr(o)
}

func (d *decoder) exprs(raws []json.RawMessage) []Expr {
	out := make([]Expr, 0, len(raws))
	for _, raw := range raws {
		out = append(out, d.optExpr(d.obj(raw)))
	}
	return out
}

func (d *decoder) block(o object) *BlockStatement {
	if o == nil {
		return nil
	}
	return &BlockStatement{Base: d.base(o), Body: d.stmts(d.list(o, "body"))}
}

func (d *decoder) label(o object) *LabelIdentifier {
	if o == nil {
		return nil
	}
	return &LabelIdentifier{Base: d.base(o), Name: d.str(o, "name")}
}

func (d *decoder) stmt(o object) Stmt {
	b := d.base(o)
	switch t := o.typ(); t {
	case "ExpressionStatement":
		return &ExpressionStatement{Base: b, Expression: d.expr(d.required(o, "expression"))}
	case "BlockStatement":
		return d.block(o)
	case "EmptyStatement":
		return &EmptyStatement{Base: b}
	case "DebuggerStatement":
		return &DebuggerStatement{Base: b}
	case "IfStatement":
		return &IfStatement{
			Base:       b,
			Test:       d.expr(d.required(o, "test")),
			Consequent: d.stmt(d.required(o, "consequent")),
			Alternate:  d.optStmt(d.field(o, "alternate")),
		}
	case "ForStatement":
		s := &ForStatement{Base: b, Test: d.optExpr(d.field(o, "test")), Update: d.optExpr(d.field(o, "update"))}
		if init := d.field(o, "init"); init != nil {
			if init.typ() == "VariableDeclaration" {
				s.Init = d.varDecl(init)
			} else {
				s.Init = d.expr(init)
			}
		}
		s.Body = d.stmt(d.required(o, "body"))
		return s
	case "ForInStatement":
		return &ForInStatement{Base: b, Left: d.forLeft(d.required(o, "left")), Right: d.expr(d.required(o, "right")), Body: d.stmt(d.required(o, "body"))}
	case "ForOfStatement":
		return &ForOfStatement{Base: b, Await: d.flag(o, "await"), Left: d.forLeft(d.required(o, "left")), Right: d.expr(d.required(o, "right")), Body: d.stmt(d.required(o, "body"))}
	case "WhileStatement":
		return &WhileStatement{Base: b, Test: d.expr(d.required(o, "test")), Body: d.stmt(d.required(o, "body"))}
	case "DoWhileStatement":
		return &DoWhileStatement{Base: b, Body: d.stmt(d.required(o, "body")), Test: d.expr(d.required(o, "test"))}
	case "ReturnStatement":
		return &ReturnStatement{Base: b, Argument: d.optExpr(d.field(o, "argument"))}
	case "BreakStatement":
		return &BreakStatement{Base: b, Label: d.label(d.field(o, "label"))}
	case "ContinueStatement":
		return &ContinueStatement{Base: b, Label: d.label(d.field(o, "label"))}
	case "LabeledStatement":
		return &LabeledStatement{Base: b, Label: d.label(d.required(o, "label")), Body: d.stmt(d.required(o, "body"))}
	case "SwitchStatement":
		s := &SwitchStatement{Base: b, Discriminant: d.expr(d.required(o, "discriminant"))}
		for _, raw := range d.list(o, "cases") {
			c := d.obj(raw)
			s.Cases = append(s.Cases, &SwitchCase{
				Base:       d.base(c),
				Test:       d.optExpr(d.field(c, "test")),
				Consequent: d.stmts(d.list(c, "consequent")),
			})
		}
		return s
	case "ThrowStatement":
		return &ThrowStatement{Base: b, Argument: d.expr(d.required(o, "argument"))}
	case "TryStatement":
		s := &TryStatement{Base: b, Block: d.block(d.required(o, "block")), Finalizer: d.block(d.field(o, "finalizer"))}
		if h := d.field(o, "handler"); h != nil {
			cc := &CatchClause{Base: d.base(h), Body: d.block(d.required(h, "body"))}
			if p := d.field(h, "param"); p != nil {
				pat := d.pattern(p)
				cc.Param = &CatchParameter{Base: Base{Loc: pat.Span()}, Pattern: pat}
			}
			s.Handler = cc
		}
		return s
	case "WithStatement":
		return &WithStatement{Base: b, Object: d.expr(d.required(o, "object")), Body: d.stmt(d.required(o, "body"))}
	case "VariableDeclaration":
		return d.varDecl(o)
	case "FunctionDeclaration":
		return d.function(o, FunctionDeclaration)
	case "TSDeclareFunction":
		return d.function(o, TSDeclareFunction)
	case "ClassDeclaration":
		return d.class(o, ClassDeclaration)
	case "ImportDeclaration":
		return d.importDecl(o)
	case "ExportNamedDeclaration":
		return d.exportNamed(o)
	case "ExportDefaultDeclaration":
		return d.exportDefault(o)
	case "ExportAllDeclaration":
		return &ExportAllDeclaration{
			Base:       b,
			Exported:   d.moduleName(d.field(o, "exported")),
			Source:     d.stringLit(d.required(o, "source")),
			ExportKind: d.ieKind(o, "exportKind"),
		}
	default:
		if s := d.tsStmt(o); s != nil {
			return s
		}
		d.fail(DecodeUnknownNode, o, "unknown statement type %q", t)
	}
	return nil
}

func (d *decoder) varKind(o object) VariableKind {
	switch d.str(o, "kind") {
	case "let":
		return VarKindLet
	case "const":
		return VarKindConst
	case "using":
		return VarKindUsing
	case "await using":
		return VarKindAwaitUsing
	}
	return VarKindVar
}

func (d *decoder) varDecl(o object) *VariableDeclaration {
	v := &VariableDeclaration{Base: d.base(o), VarKind: d.varKind(o), Declare: d.flag(o, "declare")}
	for _, raw := range d.list(o, "declarations") {
		c := d.obj(raw)
		v.Declarations = append(v.Declarations, &VariableDeclarator{
			Base:     d.base(c),
			VarKind:  v.VarKind,
			ID:       d.pattern(d.required(c, "id")),
			Init:     d.optExpr(d.field(c, "init")),
			Definite: d.flag(c, "definite"),
		})
	}
	return v
}

func (d *decoder) forLeft(o object) Node {
	if o.typ() == "VariableDeclaration" {
		return d.varDecl(o)
	}
	return d.target(o)
}

func (d *decoder) stringLit(o object) *StringLiteral {
	if o == nil {
		return nil
	}
	return &StringLiteral{Base: d.base(o), Value: d.str(o, "value"), Raw: d.str(o, "raw")}
}

func (d *decoder) identName(o object) *IdentifierName {
	if o == nil {
		return nil
	}
	return &IdentifierName{Base: d.base(o), Name: d.str(o, "name")}
}

func (d *decoder) identRef(o object) *IdentifierReference {
	return &IdentifierReference{Base: d.base(o), Name: d.str(o, "name")}
}

func (d *decoder) bindingIdent(o object) *BindingIdentifier {
	if o == nil {
		return nil
	}
	if o.typ() != "Identifier" {
		d.fail(DecodeUnsupported, o, "expected binding identifier")
	}
	return &BindingIdentifier{
		Base:           d.base(o),
		Name:           d.str(o, "name"),
		TypeAnnotation: d.typeAnnotation(d.field(o, "typeAnnotation")),
		Optional:       d.flag(o, "optional"),
	}
}

// moduleName decodes an import/export name: an identifier or a string.
func (d *decoder) moduleName(o object) Node {
	if o == nil {
		return nil
	}
	if o.typ() == "Literal" {
		return d.stringLit(o)
	}
	return d.identName(o)
}

func (d *decoder) ieKind(o object, key string) ImportExportKind {
	if d.str(o, key) == "type" {
		return KindType
	}
	return KindValue
}

func (d *decoder) decorators(o object) []*Decorator {
	raws := d.list(o, "decorators")
	if len(raws) == 0 {
		return nil
	}
	out := make([]*Decorator, 0, len(raws))
	for _, raw := range raws {
		c := d.obj(raw)
		out = append(out, &Decorator{Base: d.base(c), Expression: d.expr(d.required(c, "expression"))})
	}
	return out
}

func (d *decoder) importDecl(o object) *ImportDeclaration {
	decl := &ImportDeclaration{
		Base:       d.base(o),
		Source:     d.stringLit(d.required(o, "source")),
		ImportKind: d.ieKind(o, "importKind"),
		Phase:      d.str(o, "phase"),
	}
	for _, raw := range d.list(o, "specifiers") {
		s := d.obj(raw)
		local := d.bindingIdent(d.required(s, "local"))
		switch s.typ() {
		case "ImportSpecifier":
			decl.Specifiers = append(decl.Specifiers, &ImportSpecifier{
				Base:       d.base(s),
				Imported:   d.moduleName(d.required(s, "imported")),
				Local:      local,
				ImportKind: d.ieKind(s, "importKind"),
			})
		case "ImportDefaultSpecifier":
			decl.Specifiers = append(decl.Specifiers, &ImportDefaultSpecifier{Base: d.base(s), Local: local})
		case "ImportNamespaceSpecifier":
			decl.Specifiers = append(decl.Specifiers, &ImportNamespaceSpecifier{Base: d.base(s), Local: local})
		default:
			d.fail(DecodeUnknownNode, s, "unknown import specifier")
		}
	}
	return decl
}

func (d *decoder) exportNamed(o object) *ExportNamedDeclaration {
	decl := &ExportNamedDeclaration{
		Base:       d.base(o),
		Source:     d.stringLit(d.field(o, "source")),
		ExportKind: d.ieKind(o, "exportKind"),
	}
	if c := d.field(o, "declaration"); c != nil {
		decl.Declaration = d.stmt(c)
	}
	for _, raw := range d.list(o, "specifiers") {
		s := d.obj(raw)
		spec := &ExportSpecifier{
			Base:       d.base(s),
			Exported:   d.moduleName(d.required(s, "exported")),
			ExportKind: d.ieKind(s, "exportKind"),
		}
		local := d.required(s, "local")
		if decl.Source == nil && local.typ() == "Identifier" {
			spec.Local = d.identRef(local)
		} else {
			spec.Local = d.moduleName(local)
		}
		decl.Specifiers = append(decl.Specifiers, spec)
	}
	return decl
}

func (d *decoder) exportDefault(o object) *ExportDefaultDeclaration {
	decl := &ExportDefaultDeclaration{Base: d.base(o)}
	c := d.required(o, "declaration")
	switch c.typ() {
	case "FunctionDeclaration":
		decl.Declaration = d.function(c, FunctionDeclaration)
	case "TSDeclareFunction":
		decl.Declaration = d.function(c, TSDeclareFunction)
	case "ClassDeclaration":
		decl.Declaration = d.class(c, ClassDeclaration)
	case "TSInterfaceDeclaration":
		decl.Declaration = d.tsStmt(c)
	default:
		decl.Declaration = d.expr(c)
	}
	return decl
}
