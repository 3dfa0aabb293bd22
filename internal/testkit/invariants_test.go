package testkit

import (
	"strings"
	"testing"

	"jsbind/internal/ast"
	"jsbind/internal/source"
)

const text = "let a = [1, 2];\n"

func decode(t *testing.T, data string) (*ast.Program, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte(text))
	prog, err := ast.DecodeESTree([]byte(data), id)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return prog, fs.Get(id)
}

func TestCheckSpanInvariantsAcceptsWellFormed(t *testing.T) {
	prog, sf := decode(t, `{"type":"Program","sourceType":"script","range":[0,15],"body":[
	 {"type":"VariableDeclaration","kind":"let","range":[0,15],"declarations":[
	  {"type":"VariableDeclarator","range":[4,14],
	   "id":{"type":"Identifier","name":"a","range":[4,5]},
	   "init":{"type":"ArrayExpression","range":[8,14],"elements":[
	    {"type":"Literal","value":1,"raw":"1","range":[9,10]},
	    {"type":"Literal","value":2,"raw":"2","range":[12,13]}]}}]}]}`)
	if err := CheckSpanInvariants(prog, sf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckSpanInvariantsRejectsEscapingChild(t *testing.T) {
	prog, sf := decode(t, `{"type":"Program","sourceType":"script","range":[0,15],"body":[
	 {"type":"VariableDeclaration","kind":"let","range":[0,15],"declarations":[
	  {"type":"VariableDeclarator","range":[4,9],
	   "id":{"type":"Identifier","name":"a","range":[4,5]},
	   "init":{"type":"ArrayExpression","range":[8,14],"elements":[]}}]}]}`)
	err := CheckSpanInvariants(prog, sf)
	if err == nil || !strings.Contains(err.Error(), "outside its parent") {
		t.Fatalf("expected containment error, got %v", err)
	}
}

func TestCheckSpanInvariantsRejectsOverlongProgram(t *testing.T) {
	prog, sf := decode(t, `{"type":"Program","sourceType":"script","range":[0,99],"body":[]}`)
	if err := CheckSpanInvariants(prog, sf); err == nil {
		t.Fatal("expected an error for a span past the end of the text")
	}
}
