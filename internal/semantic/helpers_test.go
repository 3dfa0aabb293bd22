package semantic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
)

// fixture decodes testdata/<name>.json, an ESTree dump of testdata/<name>.js.
func fixture(t *testing.T, name string) (*ast.Program, string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".json"))
	require.NoError(t, err)
	prog, err := ast.DecodeESTree(data, 1)
	require.NoError(t, err)
	text, err := os.ReadFile(filepath.Join("testdata", name+".js"))
	require.NoError(t, err)
	return prog, string(text)
}

func buildFixture(t *testing.T, name string, opts Options) *Result {
	t.Helper()
	prog, text := fixture(t, name)
	opts.SourceText = text
	if opts.Path == "" {
		opts.Path = filepath.Join("testdata", name+".js")
	}
	res := Build(prog, opts)
	require.NoError(t, res.Semantic.Validate())
	return res
}

func buildJSON(t *testing.T, src string, opts Options) *Result {
	t.Helper()
	prog, err := ast.DecodeESTree([]byte(src), 1)
	require.NoError(t, err)
	res := Build(prog, opts)
	require.NoError(t, res.Semantic.Validate())
	return res
}

// bindingScope finds the first scope, in preorder, that binds name.
func bindingScope(sem *Semantic, name string) (ScopeID, SymbolID) {
	for i := 1; i <= sem.Scopes.Len(); i++ {
		id := ScopeID(i)
		if sym, ok := sem.Scopes.Binding(id, name); ok {
			return id, sym
		}
	}
	return NoScopeID, NoSymbolID
}

func referencesNamed(sem *Semantic, name string) []*Reference {
	var out []*Reference
	for _, id := range sem.Symbols.ReferenceIDs() {
		if sem.Symbols.ReferenceName(id) == name {
			out = append(out, sem.Symbols.Reference(id))
		}
	}
	return out
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}
