package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/semantic"
)

var (
	script   = ast.SourceType{}
	module   = ast.SourceType{Module: true}
	tsModule = ast.SourceType{Module: true, TypeScript: true}
)

func run(t *testing.T, data []byte, st ast.SourceType) *diag.Bag {
	t.Helper()
	prog, err := ast.DecodeESTree(data, 1)
	require.NoError(t, err)
	res := semantic.Build(prog, semantic.Options{
		SourceType:   st,
		Path:         "input.js",
		ModuleRecord: st.Module,
		Checker:      New(),
	})
	require.NoError(t, res.Semantic.Validate())
	return res.Diagnostics
}

func runFixture(t *testing.T, name string, st ast.SourceType) *diag.Bag {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".json"))
	require.NoError(t, err)
	return run(t, data, st)
}

func counts(bag *diag.Bag) map[diag.Code]int {
	out := make(map[diag.Code]int)
	for _, d := range bag.Items() {
		out[d.Code]++
	}
	return out
}

func TestStrictScript(t *testing.T) {
	bag := runFixture(t, "strict", script)
	assert.Equal(t, map[diag.Code]int{
		diag.SynWithInStrict:          1,
		diag.SynDeleteIdentifier:      1,
		diag.SynStrictBindingName:     1,
		diag.SynStrictReservedWord:    1,
		diag.SynLegacyOctal:           2,
		diag.SynIllegalUseStrict:      1,
		diag.SynForHeadInitializer:    1,
		diag.SynReturnOutsideFunction: 1,
	}, counts(bag))

	var fixes []string
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.SynWithInStrict:
			assert.Equal(t, uint32(14), d.Primary.Start)
		case diag.SynLegacyOctal:
			require.Len(t, d.Fixes, 1)
			fixes = append(fixes, d.Fixes[0].Edits[0].NewText)
		}
	}
	assert.ElementsMatch(t, []string{"0o17", "9"}, fixes)
}

func TestTrimLeadingZeros(t *testing.T) {
	assert.Equal(t, "9", trimLeadingZeros("009"))
	assert.Equal(t, "0.5", trimLeadingZeros("00.5"))
	assert.Equal(t, "0", trimLeadingZeros("00"))
}

func TestSloppyScriptIsClean(t *testing.T) {
	bag := runFixture(t, "sloppy", script)
	assert.Zero(t, bag.Len(), "%v", bag.Items())
}

func TestSloppyCodeBecomesStrictAsModule(t *testing.T) {
	c := counts(runFixture(t, "sloppy", module))
	assert.Equal(t, 1, c[diag.SynWithInStrict])
	assert.Equal(t, 1, c[diag.SynDeleteIdentifier])
	assert.Equal(t, 1, c[diag.SynStrictBindingName])
	assert.Equal(t, 1, c[diag.SynStrictReservedWord])
	assert.Equal(t, 1, c[diag.SynLegacyOctal])
	assert.Equal(t, 1, c[diag.SynForHeadInitializer])
}

func TestContinueTargets(t *testing.T) {
	bag := runFixture(t, "labels", script)
	require.Equal(t, 1, bag.Len(), "%v", bag.Items())
	d := bag.Items()[0]
	assert.Equal(t, diag.SynContinueNonLoop, d.Code)
	assert.Equal(t, "label 'a' does not denote an iteration statement", d.Message)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, uint32(0), d.Notes[0].Span.Start)
}

func TestModuleRecordChecks(t *testing.T) {
	bag := runFixture(t, "module", module)
	assert.Equal(t, map[diag.Code]int{
		diag.SemaUndefinedExport:  1,
		diag.SemaDuplicateExport:  1,
		diag.SemaDuplicateDefault: 1,
	}, counts(bag))
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.SemaUndefinedExport:
			assert.Equal(t, "export 'missing' is not defined", d.Message)
		case diag.SemaDuplicateExport:
			assert.Equal(t, "duplicated export 'a'", d.Message)
			require.Len(t, d.Notes, 1)
		}
	}
}

// x: x: ;
const duplicateLabel = `{"type":"Program","sourceType":"script","body":[
 {"type":"LabeledStatement","label":{"type":"Identifier","name":"x"},
  "body":{"type":"LabeledStatement","label":{"type":"Identifier","name":"x"},"body":{"type":"EmptyStatement"}}},
 {"type":"LabeledStatement","label":{"type":"Identifier","name":"y"},
  "body":{"type":"ExpressionStatement","expression":{"type":"FunctionExpression","id":null,"params":[],
   "body":{"type":"BlockStatement","body":[
    {"type":"LabeledStatement","label":{"type":"Identifier","name":"y"},"body":{"type":"EmptyStatement"}}]}}}}]}`

func TestDuplicateLabel(t *testing.T) {
	bag := run(t, []byte(duplicateLabel), script)
	require.Equal(t, 1, bag.Len(), "a function body starts a fresh label set")
	assert.Equal(t, diag.SynDuplicateLabel, bag.Items()[0].Code)
}

// l: for (;;) { function g() { break l; } }
// break;
// for (var a, b in o);
// while (x) { () => { continue; }; }
const jumps = `{"type":"Program","sourceType":"script","body":[
 {"type":"LabeledStatement","label":{"type":"Identifier","name":"l"},
  "body":{"type":"ForStatement","init":null,"test":null,"update":null,"body":{"type":"BlockStatement","body":[
   {"type":"FunctionDeclaration","id":{"type":"Identifier","name":"g"},"params":[],"body":{"type":"BlockStatement","body":[
    {"type":"BreakStatement","label":{"type":"Identifier","name":"l"}}]}}]}}},
 {"type":"BreakStatement","label":null},
 {"type":"ForInStatement","left":{"type":"VariableDeclaration","kind":"var","declarations":[
   {"type":"VariableDeclarator","id":{"type":"Identifier","name":"a"},"init":null},
   {"type":"VariableDeclarator","id":{"type":"Identifier","name":"b"},"init":null}]},
  "right":{"type":"Identifier","name":"o"},"body":{"type":"EmptyStatement"}},
 {"type":"WhileStatement","test":{"type":"Identifier","name":"x"},"body":{"type":"BlockStatement","body":[
  {"type":"ExpressionStatement","expression":{"type":"ArrowFunctionExpression","params":[],"expression":false,
   "body":{"type":"BlockStatement","body":[{"type":"ContinueStatement","label":null}]}}}]}}]}`

func TestJumpsDoNotCrossFunctions(t *testing.T) {
	bag := run(t, []byte(jumps), script)
	assert.Equal(t, map[diag.Code]int{
		diag.SynUndefinedLabel:       1,
		diag.SynIllegalBreak:         1,
		diag.SynForHeadMultipleDecls: 1,
		diag.SynIllegalContinue:      1,
	}, counts(bag))
}

// class A {
// constructor() {} constructor() {}
// #x; get #y() {} set #y(v) {} #x() {}
// m() { delete this.#x; return this.#z; }
// }
// class Outer { #p; m() { class Inner { n() { return this.#p; } } } }
const classes = `{"type":"Program","sourceType":"script","body":[
 {"type":"ClassDeclaration","id":{"type":"Identifier","name":"A"},"superClass":null,"body":{"type":"ClassBody","body":[
  {"type":"MethodDefinition","kind":"constructor","static":false,"computed":false,"key":{"type":"Identifier","name":"constructor"},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[]}}},
  {"type":"MethodDefinition","kind":"constructor","static":false,"computed":false,"key":{"type":"Identifier","name":"constructor"},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[]}}},
  {"type":"PropertyDefinition","static":false,"computed":false,"key":{"type":"PrivateIdentifier","name":"x"},"value":null},
  {"type":"MethodDefinition","kind":"get","static":false,"computed":false,"key":{"type":"PrivateIdentifier","name":"y"},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[]}}},
  {"type":"MethodDefinition","kind":"set","static":false,"computed":false,"key":{"type":"PrivateIdentifier","name":"y"},
   "value":{"type":"FunctionExpression","id":null,"params":[{"type":"Identifier","name":"v"}],"body":{"type":"BlockStatement","body":[]}}},
  {"type":"MethodDefinition","kind":"method","static":false,"computed":false,"key":{"type":"PrivateIdentifier","name":"x"},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[]}}},
  {"type":"MethodDefinition","kind":"method","static":false,"computed":false,"key":{"type":"Identifier","name":"m"},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[
    {"type":"ExpressionStatement","expression":{"type":"UnaryExpression","operator":"delete","prefix":true,
     "argument":{"type":"MemberExpression","computed":false,"object":{"type":"ThisExpression"},"property":{"type":"PrivateIdentifier","name":"x"}}}},
    {"type":"ReturnStatement","argument":
     {"type":"MemberExpression","computed":false,"object":{"type":"ThisExpression"},"property":{"type":"PrivateIdentifier","name":"z"}}}]}}}]}},
 {"type":"ClassDeclaration","id":{"type":"Identifier","name":"Outer"},"superClass":null,"body":{"type":"ClassBody","body":[
  {"type":"PropertyDefinition","static":false,"computed":false,"key":{"type":"PrivateIdentifier","name":"p"},"value":null},
  {"type":"MethodDefinition","kind":"method","static":false,"computed":false,"key":{"type":"Identifier","name":"m"},
   "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[
    {"type":"ClassDeclaration","id":{"type":"Identifier","name":"Inner"},"superClass":null,"body":{"type":"ClassBody","body":[
     {"type":"MethodDefinition","kind":"method","static":false,"computed":false,"key":{"type":"Identifier","name":"n"},
      "value":{"type":"FunctionExpression","id":null,"params":[],"body":{"type":"BlockStatement","body":[
       {"type":"ReturnStatement","argument":
        {"type":"MemberExpression","computed":false,"object":{"type":"ThisExpression"},"property":{"type":"PrivateIdentifier","name":"p"}}}]}}}]}}]}}}]}}]}`

func TestClassMembers(t *testing.T) {
	bag := run(t, []byte(classes), script)
	assert.Equal(t, map[diag.Code]int{
		diag.SynDuplicateConstructor:  1,
		diag.SemaDuplicatePrivate:     1,
		diag.SemaInvalidPrivateDelete: 1,
		diag.SemaUndeclaredPrivate:    1,
	}, counts(bag))
	for _, d := range bag.Items() {
		if d.Code == diag.SemaUndeclaredPrivate {
			assert.Equal(t, "private field '#z' must be declared in an enclosing class", d.Message)
		}
	}
}

// new.target; import.meta;
// function f() { new.target; () => new.target; }
const metaProperties = `{"type":"Program","sourceType":"script","body":[
 {"type":"ExpressionStatement","expression":{"type":"MetaProperty","meta":{"type":"Identifier","name":"new"},"property":{"type":"Identifier","name":"target"}}},
 {"type":"ExpressionStatement","expression":{"type":"MetaProperty","meta":{"type":"Identifier","name":"import"},"property":{"type":"Identifier","name":"meta"}}},
 {"type":"FunctionDeclaration","id":{"type":"Identifier","name":"f"},"params":[],"body":{"type":"BlockStatement","body":[
  {"type":"ExpressionStatement","expression":{"type":"MetaProperty","meta":{"type":"Identifier","name":"new"},"property":{"type":"Identifier","name":"target"}}},
  {"type":"ExpressionStatement","expression":{"type":"ArrowFunctionExpression","params":[],"expression":true,
   "body":{"type":"MetaProperty","meta":{"type":"Identifier","name":"new"},"property":{"type":"Identifier","name":"target"}}}}]}}]}`

func TestMetaProperties(t *testing.T) {
	c := counts(run(t, []byte(metaProperties), script))
	assert.Equal(t, 1, c[diag.SynNewTargetOutsideFunction])
	assert.Equal(t, 1, c[diag.SynImportMetaOutsideModule])

	c = counts(run(t, []byte(metaProperties), module))
	assert.Zero(t, c[diag.SynImportMetaOutsideModule])
}

// var await;
const awaitBinding = `{"type":"Program","body":[
 {"type":"VariableDeclaration","kind":"var","declarations":[
  {"type":"VariableDeclarator","id":{"type":"Identifier","name":"await"},"init":null}]}]}`

func TestAwaitIdentifier(t *testing.T) {
	assert.Equal(t, 1, run(t, []byte(awaitBinding), module).Count(diag.SynAwaitInModule))
	assert.Zero(t, run(t, []byte(awaitBinding), script).Len())
}

// async function f(a = await x) {}
// function* g(b = yield) {}
// async function h() { const c = async (d = 1) => await d; }
const parameterExpressions = `{"type":"Program","body":[
 {"type":"FunctionDeclaration","async":true,"id":{"type":"Identifier","name":"f"},
  "params":[{"type":"AssignmentPattern","left":{"type":"Identifier","name":"a"},
   "right":{"type":"AwaitExpression","argument":{"type":"Identifier","name":"x"}}}],
  "body":{"type":"BlockStatement","body":[]}},
 {"type":"FunctionDeclaration","generator":true,"id":{"type":"Identifier","name":"g"},
  "params":[{"type":"AssignmentPattern","left":{"type":"Identifier","name":"b"},
   "right":{"type":"YieldExpression","delegate":false,"argument":null}}],
  "body":{"type":"BlockStatement","body":[]}},
 {"type":"FunctionDeclaration","async":true,"id":{"type":"Identifier","name":"h"},"params":[],
  "body":{"type":"BlockStatement","body":[
   {"type":"VariableDeclaration","kind":"const","declarations":[
    {"type":"VariableDeclarator","id":{"type":"Identifier","name":"c"},
     "init":{"type":"ArrowFunctionExpression","async":true,"expression":true,
      "params":[{"type":"AssignmentPattern","left":{"type":"Identifier","name":"d"},"right":{"type":"Literal","value":1,"raw":"1"}}],
      "body":{"type":"AwaitExpression","argument":{"type":"Identifier","name":"d"}}}}]}]}}]}`

func TestAwaitAndYieldInParameters(t *testing.T) {
	bag := run(t, []byte(parameterExpressions), script)
	assert.Equal(t, map[diag.Code]int{
		diag.SynAwaitInParameters: 1,
		diag.SynYieldInParameters: 1,
	}, counts(bag))
}

// Two checkers report the same problem at the same span; the binder keeps one.
func TestCheckersComposeDeduplicated(t *testing.T) {
	prog, err := ast.DecodeESTree([]byte(awaitBinding), 1)
	require.NoError(t, err)
	res := semantic.Build(prog, semantic.Options{
		SourceType: module,
		Checker:    semantic.Checkers{New(), New()},
	})
	assert.Equal(t, 1, res.Diagnostics.Count(diag.SynAwaitInModule))
}
