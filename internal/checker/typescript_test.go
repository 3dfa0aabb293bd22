package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/semantic"
)

// interface I extends foo() {}
// enum E { A = "a", B }
// enum F { A = 1, B }
// function ns() { namespace N {} }
// namespace Top { namespace Inner {} }
const declarations = `{"type":"Program","sourceType":"module","body":[
 {"type":"TSInterfaceDeclaration","id":{"type":"Identifier","name":"I"},
  "extends":[{"type":"TSInterfaceHeritage","expression":{"type":"CallExpression","callee":{"type":"Identifier","name":"foo"},"arguments":[]}}],
  "body":{"type":"TSInterfaceBody","body":[]}},
 {"type":"TSEnumDeclaration","id":{"type":"Identifier","name":"E"},"members":[
  {"type":"TSEnumMember","id":{"type":"Identifier","name":"A"},"initializer":{"type":"Literal","value":"a","raw":"\"a\""}},
  {"type":"TSEnumMember","id":{"type":"Identifier","name":"B"}}]},
 {"type":"TSEnumDeclaration","id":{"type":"Identifier","name":"F"},"members":[
  {"type":"TSEnumMember","id":{"type":"Identifier","name":"A"},"initializer":{"type":"Literal","value":1,"raw":"1"}},
  {"type":"TSEnumMember","id":{"type":"Identifier","name":"B"}}]},
 {"type":"FunctionDeclaration","id":{"type":"Identifier","name":"ns"},"params":[],"body":{"type":"BlockStatement","body":[
  {"type":"TSModuleDeclaration","kind":"namespace","id":{"type":"Identifier","name":"N"},"body":{"type":"TSModuleBlock","body":[]}}]}},
 {"type":"TSModuleDeclaration","kind":"namespace","id":{"type":"Identifier","name":"Top"},"body":{"type":"TSModuleBlock","body":[
  {"type":"TSModuleDeclaration","kind":"namespace","id":{"type":"Identifier","name":"Inner"},"body":{"type":"TSModuleBlock","body":[]}}]}}]}`

func TestTypeScriptDeclarations(t *testing.T) {
	bag := run(t, []byte(declarations), tsModule)
	assert.Equal(t, map[diag.Code]int{
		diag.TSInterfaceExtends:      1,
		diag.TSEnumMemberInitializer: 1,
		diag.TSNamespacePlacement:    1,
	}, counts(bag))
}

// function p(a?: number = 1, b?: string, c: number, ...rest: number[]) {}
const parameters = `{"type":"Program","sourceType":"module","body":[
 {"type":"FunctionDeclaration","id":{"type":"Identifier","name":"p"},"params":[
  {"type":"AssignmentPattern","left":{"type":"Identifier","name":"a","optional":true,
    "typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSNumberKeyword"}}},
   "right":{"type":"Literal","value":1,"raw":"1"}},
  {"type":"Identifier","name":"b","optional":true,"typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSStringKeyword"}}},
  {"type":"Identifier","name":"c","typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSNumberKeyword"}}},
  {"type":"RestElement","argument":{"type":"Identifier","name":"rest"},
   "typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSArrayType","elementType":{"type":"TSNumberKeyword"}}}}],
  "body":{"type":"BlockStatement","body":[]}}]}`

func TestTypeScriptParameters(t *testing.T) {
	bag := run(t, []byte(parameters), tsModule)
	assert.Equal(t, map[diag.Code]int{
		diag.TSOptionalWithInitializer: 1,
		diag.TSRequiredAfterOptional:   1,
	}, counts(bag))
	for _, d := range bag.Items() {
		if d.Code == diag.TSRequiredAfterOptional {
			require.Len(t, d.Notes, 1)
		}
	}
}

// class C { abstract m() {} abstract x = 1; }
// abstract class D { abstract m(): void; abstract y: number; }
const abstractMembers = `{"type":"Program","sourceType":"module","body":[
 {"type":"ClassDeclaration","id":{"type":"Identifier","name":"C"},"superClass":null,"body":{"type":"ClassBody","body":[
  {"type":"TSAbstractMethodDefinition","kind":"method","static":false,"computed":false,"key":{"type":"Identifier","name":"m","start":19,"end":20},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[]}}},
  {"type":"TSAbstractPropertyDefinition","static":false,"computed":false,"key":{"type":"Identifier","name":"x","start":35,"end":36},
   "value":{"type":"Literal","value":1,"raw":"1"}}]}},
 {"type":"ClassDeclaration","abstract":true,"id":{"type":"Identifier","name":"D"},"superClass":null,"body":{"type":"ClassBody","body":[
  {"type":"TSAbstractMethodDefinition","kind":"method","static":false,"computed":false,"key":{"type":"Identifier","name":"m"},
   "value":{"type":"TSEmptyBodyFunctionExpression","id":null,"params":[],"body":null,
    "returnType":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSVoidKeyword"}}}},
  {"type":"TSAbstractPropertyDefinition","static":false,"computed":false,"key":{"type":"Identifier","name":"y"},"value":null,
   "typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSNumberKeyword"}}}]}}]}`

func TestAbstractMembers(t *testing.T) {
	bag := run(t, []byte(abstractMembers), tsModule)
	assert.Equal(t, map[diag.Code]int{
		diag.TSAbstractMethodBody:      1,
		diag.TSAbstractPropertyInit:    1,
		diag.TSAbstractOutsideAbstract: 2,
	}, counts(bag))
}

func ident(name string, typ string) string {
	s := `{"type":"Identifier","name":"` + name + `"`
	if typ != "" {
		s += `,"typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"` + typ + `"}}`
	}
	return s
}

// for (let k: string in o) {}
// for (const v: number of o) {}
// let d1!: number = 1; let d2!; const d3!: number = 1; let q?: number; let ok!: number;
var variables = `{"type":"Program","sourceType":"module","body":[
 {"type":"VariableDeclaration","kind":"let","declarations":[{"type":"VariableDeclarator","id":` + ident("o", "") + `},"init":null}]},
 {"type":"ForInStatement","left":{"type":"VariableDeclaration","kind":"let","declarations":[
   {"type":"VariableDeclarator","id":` + ident("k", "TSStringKeyword") + `},"init":null}]},
  "right":{"type":"Identifier","name":"o"},"body":{"type":"BlockStatement","body":[]}},
 {"type":"ForOfStatement","await":false,"left":{"type":"VariableDeclaration","kind":"const","declarations":[
   {"type":"VariableDeclarator","id":` + ident("v", "TSNumberKeyword") + `},"init":null}]},
  "right":{"type":"Identifier","name":"o"},"body":{"type":"BlockStatement","body":[]}},
 {"type":"VariableDeclaration","kind":"let","declarations":[
  {"type":"VariableDeclarator","definite":true,"id":` + ident("d1", "TSNumberKeyword") + `},"init":{"type":"Literal","value":1,"raw":"1"}}]},
 {"type":"VariableDeclaration","kind":"let","declarations":[
  {"type":"VariableDeclarator","definite":true,"id":` + ident("d2", "") + `},"init":null}]},
 {"type":"VariableDeclaration","kind":"const","declarations":[
  {"type":"VariableDeclarator","definite":true,"id":` + ident("d3", "TSNumberKeyword") + `},"init":{"type":"Literal","value":1,"raw":"1"}}]},
 {"type":"VariableDeclaration","kind":"let","declarations":[
  {"type":"VariableDeclarator","id":{"type":"Identifier","name":"q","optional":true,
   "typeAnnotation":{"type":"TSTypeAnnotation","typeAnnotation":{"type":"TSNumberKeyword"}}},"init":null}]},
 {"type":"VariableDeclaration","kind":"let","declarations":[
  {"type":"VariableDeclarator","definite":true,"id":` + ident("ok", "TSNumberKeyword") + `},"init":null}]}]}`

func TestVariableAnnotations(t *testing.T) {
	bag := run(t, []byte(variables), tsModule)
	assert.Equal(t, map[diag.Code]int{
		diag.TSForInAnnotation:         1,
		diag.TSForOfAnnotation:         1,
		diag.TSDefiniteWithInitializer: 1,
		diag.TSDefiniteWithoutType:     1,
		diag.TSDefiniteNotPermitted:    1,
		diag.TSOptionalNotAllowed:      1,
	}, counts(bag))
}

func TestTypeScriptBatteryIsOptional(t *testing.T) {
	prog, err := ast.DecodeESTree([]byte(variables), 1)
	require.NoError(t, err)
	res := semantic.Build(prog, semantic.Options{
		SourceType: tsModule,
		Checker:    &Checker{SkipTypeScript: true},
	})
	assert.Zero(t, res.Diagnostics.Len(), "%v", res.Diagnostics.Items())
}

func TestJavaScriptSourceSkipsTypeScriptChecks(t *testing.T) {
	bag := run(t, []byte(abstractMembers), module)
	assert.Zero(t, bag.Len(), "%v", bag.Items())
}
