package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jsbind/internal/ast"
	"jsbind/internal/semantic"
	"jsbind/internal/source"
)

// let a = 1;
// function f(b) { return a + b + g; }
const dumpSource = "let a = 1;\nfunction f(b) { return a + b + g; }\n"

const dumpESTree = `{"type":"Program","sourceType":"script","start":0,"end":47,"body":[
 {"type":"VariableDeclaration","kind":"let","start":0,"end":10,"declarations":[
  {"type":"VariableDeclarator","start":4,"end":9,
   "id":{"type":"Identifier","name":"a","start":4,"end":5},
   "init":{"type":"Literal","value":1,"raw":"1","start":8,"end":9}}]},
 {"type":"FunctionDeclaration","start":11,"end":46,"generator":false,"async":false,
  "id":{"type":"Identifier","name":"f","start":20,"end":21},
  "params":[{"type":"Identifier","name":"b","start":22,"end":23}],
  "body":{"type":"BlockStatement","start":25,"end":46,"body":[
   {"type":"ReturnStatement","start":27,"end":44,"argument":
    {"type":"BinaryExpression","operator":"+","start":34,"end":43,
     "left":{"type":"BinaryExpression","operator":"+","start":34,"end":39,
      "left":{"type":"Identifier","name":"a","start":34,"end":35},
      "right":{"type":"Identifier","name":"b","start":38,"end":39}},
     "right":{"type":"Identifier","name":"g","start":42,"end":43}}}]}}]}`

func buildDump(t *testing.T, data, text string, st ast.SourceType) (*semantic.Semantic, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("dump.js", []byte(text))
	prog, err := ast.DecodeESTree([]byte(data), id)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	res := semantic.Build(prog, semantic.Options{SourceType: st, SourceText: text, Path: "dump.js", ModuleRecord: st.Module})
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics.Items())
	}
	return res.Semantic, fs
}

func TestDumpScopes(t *testing.T) {
	sem, fs := buildDump(t, dumpESTree, dumpSource, ast.SourceType{})

	var buf bytes.Buffer
	if err := DumpScopes(&buf, sem, fs, DumpOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "scope 1 Program [top] 1:1\n  bindings: a f\n") {
		t.Errorf("unexpected root scope dump:\n%s", out)
	}
	if !strings.Contains(out, "  scope 2 ") || !strings.Contains(out, "bindings: b") {
		t.Errorf("missing function scope:\n%s", out)
	}

	buf.Reset()
	if err := DumpScopes(&buf, sem, fs, DumpOpts{JSON: true}); err != nil {
		t.Fatal(err)
	}
	var root ScopeJSON
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(root.Bindings) != 2 || len(root.Children) == 0 {
		t.Errorf("unexpected root: %+v", root)
	}
}

func TestDumpSymbols(t *testing.T) {
	sem, fs := buildDump(t, dumpESTree, dumpSource, ast.SourceType{})
	out := BuildSymbolsOutput(sem, fs, PathModeBasename)

	if len(out.Symbols) != sem.Symbols.Len() {
		t.Fatalf("dumped %d symbols, table has %d", len(out.Symbols), sem.Symbols.Len())
	}
	if first := out.Symbols[0]; first.ID != 1 || first.Name != "a" {
		t.Errorf("first row = %d %s, want 1 a", first.ID, first.Name)
	}
	names := map[string]SymbolJSON{}
	for i, s := range out.Symbols {
		if s.ID != i+1 {
			t.Errorf("row %d has id %d", i, s.ID)
		}
		names[s.Name] = s
	}
	a, ok := names["a"]
	if !ok || len(a.References) != 1 || a.References[0].Location.StartLine != 2 {
		t.Errorf("unexpected symbol a: %+v", a)
	}
	if a.Flags != "let" {
		t.Errorf("a flags = %q", a.Flags)
	}
	if len(out.Unresolved) != 1 || out.Unresolved[0].Name != "g" {
		t.Errorf("unexpected unresolved: %+v", out.Unresolved)
	}

	var buf bytes.Buffer
	if err := DumpSymbols(&buf, sem, fs, DumpOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "1 a [let] scope=1 1:5 refs=1\n") {
		t.Errorf("unexpected first row:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "global g 2:32") {
		t.Errorf("missing global line:\n%s", buf.String())
	}
}

// /** answer */
// let a = 1;
const docSource = "/** answer */\nlet a = 1;\n"

const docESTree = `{"type":"Program","sourceType":"script","start":0,"end":25,"body":[
 {"type":"VariableDeclaration","kind":"let","start":14,"end":24,"declarations":[
  {"type":"VariableDeclarator","start":18,"end":23,
   "id":{"type":"Identifier","name":"a","start":18,"end":19},
   "init":{"type":"Literal","value":1,"raw":"1","start":22,"end":23}}]}],
 "comments":[{"type":"Block","value":"* answer ","start":0,"end":13}]}`

func TestDumpSymbolsJSDoc(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("doc.js", []byte(docSource))
	prog, err := ast.DecodeESTree([]byte(docESTree), id)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	res := semantic.Build(prog, semantic.Options{SourceText: docSource, Path: "doc.js", JSDoc: true})
	out := BuildSymbolsOutput(res.Semantic, fs, PathModeBasename)
	if len(out.Symbols) != 1 || out.Symbols[0].JSDoc != "answer" {
		t.Fatalf("unexpected symbols: %+v", out.Symbols)
	}

	var buf bytes.Buffer
	if err := DumpSymbols(&buf, res.Semantic, fs, DumpOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  doc \"answer\"\n") {
		t.Errorf("missing doc line:\n%s", buf.String())
	}
}

// import x, { y as z } from "./dep.js";
// export { z };
// export * as ns from "./all.js";
const moduleSource = "import x, { y as z } from \"./dep.js\";\nexport { z };\nexport * as ns from \"./all.js\";\n"

const moduleESTree = `{"type":"Program","sourceType":"module","start":0,"end":84,"body":[
 {"type":"ImportDeclaration","start":0,"end":37,"specifiers":[
  {"type":"ImportDefaultSpecifier","start":7,"end":8,"local":{"type":"Identifier","name":"x","start":7,"end":8}},
  {"type":"ImportSpecifier","start":12,"end":18,
   "imported":{"type":"Identifier","name":"y","start":12,"end":13},
   "local":{"type":"Identifier","name":"z","start":17,"end":18}}],
  "source":{"type":"Literal","value":"./dep.js","raw":"\"./dep.js\"","start":26,"end":36}},
 {"type":"ExportNamedDeclaration","start":38,"end":51,"declaration":null,"source":null,"specifiers":[
  {"type":"ExportSpecifier","start":47,"end":48,
   "local":{"type":"Identifier","name":"z","start":47,"end":48},
   "exported":{"type":"Identifier","name":"z","start":47,"end":48}}]},
 {"type":"ExportAllDeclaration","start":52,"end":83,
  "exported":{"type":"Identifier","name":"ns","start":64,"end":66},
  "source":{"type":"Literal","value":"./all.js","raw":"\"./all.js\"","start":72,"end":82}}]}`

func TestDumpModuleRecord(t *testing.T) {
	sem, fs := buildDump(t, moduleESTree, moduleSource, ast.SourceType{Module: true})
	out := BuildModuleRecordOutput(sem.ModuleRecord, fs, PathModeBasename)

	if !out.HasModuleSyntax {
		t.Error("expected module syntax")
	}
	if got := strings.Join(out.RequestedModules, ","); got != "./dep.js,./all.js" {
		t.Errorf("requested modules = %s", got)
	}
	if len(out.Imports) != 2 || out.Imports[0].Kind != "default" || out.Imports[1].ImportName != "y" {
		t.Errorf("unexpected imports: %+v", out.Imports)
	}
	if len(out.LocalExports) != 1 || out.LocalExports[0].ExportName != "z" {
		t.Errorf("unexpected local exports: %+v", out.LocalExports)
	}
	if len(out.IndirectExports)+len(out.StarExports) != 1 {
		t.Errorf("expected one re-export: %+v %+v", out.IndirectExports, out.StarExports)
	}

	var buf bytes.Buffer
	if err := DumpModuleRecord(&buf, sem.ModuleRecord, fs, DumpOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `import default default from "./dep.js" as x`) {
		t.Errorf("unexpected dump:\n%s", buf.String())
	}
	if err := DumpModuleRecord(&buf, nil, fs, DumpOpts{}); err == nil {
		t.Error("expected an error for a missing record")
	}
}
