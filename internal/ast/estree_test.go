package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// "use strict";
// let a = 1;
const directiveProgram = `{"type":"Program","start":0,"end":24,"sourceType":"script","body":[
 {"type":"ExpressionStatement","start":0,"end":13,"directive":"use strict",
  "expression":{"type":"Literal","start":0,"end":12,"value":"use strict","raw":"\"use strict\""}},
 {"type":"VariableDeclaration","start":14,"end":24,"kind":"let","declarations":[
  {"type":"VariableDeclarator","start":18,"end":23,
   "id":{"type":"Identifier","start":18,"end":19,"name":"a"},
   "init":{"type":"Literal","start":22,"end":23,"value":1,"raw":"1"}}]}]}`

func TestDecodeDirectivesAndDeclarations(t *testing.T) {
	prog, err := DecodeESTree([]byte(directiveProgram), 3)
	require.NoError(t, err)

	require.Len(t, prog.Directives, 1)
	assert.Equal(t, "use strict", prog.Directives[0].Value)
	assert.True(t, HasUseStrict(prog.Directives))
	assert.False(t, prog.SourceType.Module)

	require.Len(t, prog.Body, 1)
	decl, ok := prog.Body[0].(*VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, VarKindLet, decl.VarKind)
	require.Len(t, decl.Declarations, 1)
	id, ok := decl.Declarations[0].ID.(*BindingIdentifier)
	require.True(t, ok)
	assert.Equal(t, "a", id.Name)
	assert.EqualValues(t, 3, id.Span().File)
	assert.EqualValues(t, 18, id.Span().Start)
	lit, ok := decl.Declarations[0].Init.(*NumericLiteral)
	require.True(t, ok)
	assert.InDelta(t, 1.0, lit.Value, 0)
}

func TestDecodeRangeSpans(t *testing.T) {
	src := `{"type":"Program","range":[0,5],"sourceType":"module","body":[
	 {"type":"EmptyStatement","range":[4,5]}]}`
	prog, err := DecodeESTree([]byte(src), 0)
	require.NoError(t, err)
	assert.True(t, prog.SourceType.Module)
	assert.EqualValues(t, 4, prog.Body[0].Span().Start)
	assert.EqualValues(t, 5, prog.Body[0].Span().End)
}

// f = x => x + 1
func TestDecodeArrowExpressionBody(t *testing.T) {
	src := `{"type":"Program","start":0,"end":14,"body":[{"type":"ExpressionStatement","start":0,"end":14,
	 "expression":{"type":"AssignmentExpression","start":0,"end":14,"operator":"=",
	  "left":{"type":"Identifier","start":0,"end":1,"name":"f"},
	  "right":{"type":"ArrowFunctionExpression","start":4,"end":14,"expression":true,
	   "params":[{"type":"Identifier","start":4,"end":5,"name":"x"}],
	   "body":{"type":"BinaryExpression","start":9,"end":14,"operator":"+",
	    "left":{"type":"Identifier","start":9,"end":10,"name":"x"},
	    "right":{"type":"Literal","start":13,"end":14,"value":1,"raw":"1"}}}}}]}`
	prog, err := DecodeESTree([]byte(src), 0)
	require.NoError(t, err)

	assign := prog.Body[0].(*ExpressionStatement).Expression.(*AssignmentExpression)
	_, isRef := assign.Left.(*IdentifierReference)
	assert.True(t, isRef, "assignment target must be a reference")

	arrow := assign.Right.(*ArrowFunctionExpression)
	assert.True(t, arrow.Expression)
	assert.Equal(t, ParamsArrow, arrow.Params.ParamsKind)
	require.Len(t, arrow.Body.Statements, 1)
	assert.Equal(t, arrow.Body.Span(), arrow.Body.Statements[0].Span())
	assert.EqualValues(t, 4, arrow.Params.Span().Start)
	assert.EqualValues(t, 5, arrow.Params.Span().End)
}

// ({a, b: [c = 1]} = o)
func TestDecodeDestructuringTarget(t *testing.T) {
	src := `{"type":"Program","start":0,"end":21,"body":[{"type":"ExpressionStatement","start":0,"end":21,
	 "expression":{"type":"AssignmentExpression","start":1,"end":20,"operator":"=",
	  "left":{"type":"ObjectPattern","start":1,"end":16,"properties":[
	   {"type":"Property","start":2,"end":3,"shorthand":true,"kind":"init",
	    "key":{"type":"Identifier","start":2,"end":3,"name":"a"},
	    "value":{"type":"Identifier","start":2,"end":3,"name":"a"}},
	   {"type":"Property","start":5,"end":15,"kind":"init",
	    "key":{"type":"Identifier","start":5,"end":6,"name":"b"},
	    "value":{"type":"ArrayPattern","start":8,"end":15,"elements":[
	     {"type":"AssignmentPattern","start":9,"end":14,
	      "left":{"type":"Identifier","start":9,"end":10,"name":"c"},
	      "right":{"type":"Literal","start":13,"end":14,"value":1,"raw":"1"}}]}}]},
	  "right":{"type":"Identifier","start":19,"end":20,"name":"o"}}}]}`
	prog, err := DecodeESTree([]byte(src), 0)
	require.NoError(t, err)

	assign := prog.Body[0].(*ExpressionStatement).Expression.(*AssignmentExpression)
	obj := assign.Left.(*ObjectAssignmentTarget)
	require.Len(t, obj.Properties, 2)
	short := obj.Properties[0].(*AssignmentTargetPropertyIdentifier)
	assert.Equal(t, "a", short.Binding.Name)

	prop := obj.Properties[1].(*AssignmentTargetPropertyProperty)
	arr := prop.Binding.(*ArrayAssignmentTarget)
	withDefault := arr.Elements[0].(*AssignmentTargetWithDefault)
	assert.Equal(t, "c", withDefault.Binding.(*IdentifierReference).Name)

	var names []string
	Inspect(prog, func(n Node) bool {
		if ref, ok := n.(*IdentifierReference); ok {
			names = append(names, ref.Name)
		}
		return true
	})
	assert.Equal(t, []string{"a", "c", "o"}, names)
}

// namespace a.b.c {}
func TestDecodeQualifiedNamespace(t *testing.T) {
	src := `{"type":"Program","start":0,"end":18,"sourceType":"module","body":[
	 {"type":"TSModuleDeclaration","start":0,"end":18,"kind":"namespace",
	  "id":{"type":"TSQualifiedName","start":10,"end":15,
	   "left":{"type":"TSQualifiedName","start":10,"end":13,
	    "left":{"type":"Identifier","start":10,"end":11,"name":"a"},
	    "right":{"type":"Identifier","start":12,"end":13,"name":"b"}},
	   "right":{"type":"Identifier","start":14,"end":15,"name":"c"}},
	  "body":{"type":"TSModuleBlock","start":16,"end":18,"body":[]}}]}`
	prog, err := DecodeESTree([]byte(src), 0)
	require.NoError(t, err)

	var names []string
	var n Node = prog.Body[0]
	for {
		m, ok := n.(*TSModuleDeclaration)
		if !ok {
			break
		}
		names = append(names, m.ID.(*BindingIdentifier).Name)
		assert.EqualValues(t, 18, m.Span().End)
		n = m.Body
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	_, isBlock := n.(*TSModuleBlock)
	assert.True(t, isBlock)
}

func TestDecodeClassMembers(t *testing.T) {
	// class A { #x; constructor(private y) {} static {} }
	src := `{"type":"Program","start":0,"end":52,"body":[
	 {"type":"ClassDeclaration","start":0,"end":52,
	  "id":{"type":"Identifier","start":6,"end":7,"name":"A"},
	  "body":{"type":"ClassBody","start":8,"end":52,"body":[
	   {"type":"PropertyDefinition","start":10,"end":13,
	    "key":{"type":"PrivateIdentifier","start":10,"end":12,"name":"x"}},
	   {"type":"MethodDefinition","start":14,"end":40,"kind":"constructor",
	    "key":{"type":"Identifier","start":14,"end":25,"name":"constructor"},
	    "value":{"type":"FunctionExpression","start":25,"end":40,
	     "params":[{"type":"TSParameterProperty","start":26,"end":35,"accessibility":"private",
	      "parameter":{"type":"Identifier","start":34,"end":35,"name":"y"}}],
	     "body":{"type":"BlockStatement","start":38,"end":40,"body":[]}}},
	   {"type":"StaticBlock","start":41,"end":50,"body":[]}]}}]}`
	prog, err := DecodeESTree([]byte(src), 0)
	require.NoError(t, err)

	class := prog.Body[0].(*Class)
	require.Len(t, class.Body.Body, 3)
	name, private := KeyName(class.Body.Body[0].(*PropertyDefinition).Key, false)
	assert.Equal(t, "x", name)
	assert.True(t, private)

	ctor := class.Body.Body[1].(*MethodDefinition)
	assert.Equal(t, MethodKindConstructor, ctor.MethodKind)
	assert.Equal(t, ParamsUnique, ctor.Value.Params.ParamsKind)
	assert.Equal(t, "private", ctor.Value.Params.Items[0].Accessibility)
	assert.IsType(t, &StaticBlock{}, class.Body.Body[2])
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind DecodeErrorKind
	}{
		{"malformed", `{"type":`, DecodeMalformed},
		{"not a program", `{"type":"EmptyStatement","start":0,"end":1}`, DecodeUnknownNode},
		{"unknown statement", `{"type":"Program","start":0,"end":1,"body":[{"type":"Frobnicate","start":0,"end":1}]}`, DecodeUnknownNode},
		{"jsx", `{"type":"Program","start":0,"end":7,"body":[{"type":"ExpressionStatement","start":0,"end":7,
		  "expression":{"type":"JSXElement","start":0,"end":7}}]}`, DecodeUnsupported},
		{"missing field", `{"type":"Program","start":0,"end":6,"body":[{"type":"ThrowStatement","start":0,"end":6}]}`, DecodeMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeESTree([]byte(tt.src), 0)
			require.Error(t, err)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.kind, de.Kind)
		})
	}
}

func TestSourceTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want SourceType
	}{
		{"a.js", SourceType{}},
		{"a.mjs", SourceType{Module: true}},
		{"a.ts", SourceType{Module: true, TypeScript: true}},
		{"a.cts", SourceType{TypeScript: true}},
		{"lib/a.d.ts.json", SourceType{Module: true, TypeScript: true, Definition: true}},
		{"A.TSX", SourceType{Module: true, TypeScript: true, JSX: true}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SourceTypeFromPath(tt.path), tt.path)
	}
}

// /** doc */ // line
// let a;
const commentedProgram = `{"type":"Program","start":0,"end":26,"sourceType":"script","body":[
 {"type":"VariableDeclaration","start":20,"end":26,"kind":"let","declarations":[
  {"type":"VariableDeclarator","start":24,"end":25,"id":{"type":"Identifier","start":24,"end":25,"name":"a"},"init":null}]}],
 "comments":[
  {"type":"Block","value":"* doc ","start":0,"end":10},
  {"type":"Line","value":" line","start":11,"end":18}]}`

func TestDecodeComments(t *testing.T) {
	prog, err := DecodeESTree([]byte(commentedProgram), 1)
	require.NoError(t, err)
	require.Len(t, prog.Comments, 2)

	doc := prog.Comments[0]
	assert.True(t, doc.Block)
	assert.True(t, doc.IsJSDoc())
	assert.EqualValues(t, 10, doc.Span().End)
	assert.False(t, prog.Comments[1].IsJSDoc())

	for value, want := range map[string]bool{"": false, "*": false, "**": false, "* x": true, "** x": true, " x": false} {
		c := &Comment{Block: true, Value: value}
		assert.Equal(t, want, c.IsJSDoc(), "%q", value)
	}

	_, err = DecodeESTree([]byte(`{"type":"Program","body":[],"comments":[{"type":"Weird","value":""}]}`), 1)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, DecodeUnknownNode, de.Kind)
}
