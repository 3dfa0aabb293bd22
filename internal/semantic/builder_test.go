package semantic

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsbind/internal/ast"
	"jsbind/internal/diag"
	"jsbind/internal/source"
)

var allFixtures = []string{
	"mixed", "redeclare", "hoist_collision", "forward", "strict",
	"sloppy_class", "catch", "labels", "module", "params",
}

func TestScopeCountMatchesStats(t *testing.T) {
	for _, name := range allFixtures {
		t.Run(name, func(t *testing.T) {
			prog, _ := fixture(t, name)
			stats := CountStats(prog)
			res := Build(prog, Options{})
			assert.Equal(t, stats.Scopes, res.Semantic.Scopes.Len())
			assert.LessOrEqual(t, res.Semantic.Symbols.Len(), stats.Symbols)
		})
	}
}

func TestEveryFixtureValidates(t *testing.T) {
	for _, name := range allFixtures {
		t.Run(name, func(t *testing.T) {
			res := buildFixture(t, name, Options{ModuleRecord: true})
			sem := res.Semantic
			for i := 1; i <= sem.Scopes.Len(); i++ {
				assert.Zero(t, sem.Scopes.Pending(ScopeID(i)))
			}
		})
	}
}

func TestDeclarationInsideOwningScopeNode(t *testing.T) {
	for _, name := range allFixtures {
		t.Run(name, func(t *testing.T) {
			sem := buildFixture(t, name, Options{}).Semantic
			for _, id := range sem.Symbols.IDs() {
				sym := sem.Symbols.Get(id)
				owner := sem.Nodes.Get(sem.Scopes.Node(sym.Scope))
				require.NotNil(t, owner, "symbol %s", sem.Symbols.Name(id))
				assert.True(t, owner.Node.Span().Contains(sym.Span),
					"%s %s outside %s", sem.Symbols.Name(id), sym.Span, owner.Kind)
			}
		})
	}
}

func TestDuplicateLet(t *testing.T) {
	res := buildFixture(t, "redeclare", Options{})
	require.Equal(t, []diag.Code{diag.SemaRedeclaration}, codes(res.Diagnostics))

	d := res.Diagnostics.Items()[0]
	assert.Equal(t, "identifier 'a' has already been declared", d.Message)
	require.Len(t, d.Notes, 1)
	assert.EqualValues(t, 4, d.Notes[0].Span.Start)
	assert.EqualValues(t, 15, d.Primary.Start)

	_, sym := bindingScope(res.Semantic, "a")
	rec := res.Semantic.Symbols.Get(sym)
	assert.Len(t, rec.Declarations, 2)
	assert.Len(t, rec.Redeclarations, 1)
}

func TestVarHoistsOutOfBlocks(t *testing.T) {
	sem := buildFixture(t, "mixed", Options{}).Semantic

	listScope, _ := bindingScope(sem, "list")
	posScope, pos := bindingScope(sem, "positive")
	require.True(t, pos.IsValid())
	assert.Equal(t, listScope, posScope)
	assert.True(t, sem.Scopes.Flags(posScope).IsFunction())
	assert.NotZero(t, sem.Symbols.Flags(pos)&SymbolFunctionScopedVariable)

	// `i` stays inside the for scope
	iScope, _ := bindingScope(sem, "i")
	assert.Equal(t, ast.KindForStatement, sem.Nodes.Kind(sem.Scopes.Node(iScope)))

	// `return positive` reads the hoisted binding
	refs := referencesNamed(sem, "positive")
	require.Len(t, refs, 1)
	assert.Equal(t, pos, refs[0].Symbol)
}

func TestHoistedVarCollidesWithLet(t *testing.T) {
	res := buildFixture(t, "hoist_collision", Options{})
	assert.Equal(t, []diag.Code{diag.SemaRedeclaration}, codes(res.Diagnostics))
	assert.Equal(t, 1, res.Semantic.Symbols.Len())

	// the rejected `var` still leaves its flags on the symbol
	_, a := bindingScope(res.Semantic, "a")
	flags := res.Semantic.Symbols.Flags(a)
	assert.NotZero(t, flags&SymbolBlockScopedVariable)
	assert.NotZero(t, flags&SymbolFunctionScopedVariable)
	assert.Len(t, res.Semantic.Symbols.Get(a).Declarations, 2)
}

// "use strict"; function outer() { let y; { var y; } }
const strictHoistCollision = `{"type":"Program","sourceType":"script","body":[
 {"type":"ExpressionStatement","expression":{"type":"Literal","value":"use strict","raw":"\"use strict\""},"directive":"use strict"},
 {"type":"FunctionDeclaration","id":{"type":"Identifier","name":"outer"},"params":[],"body":{"type":"BlockStatement","body":[
  {"type":"VariableDeclaration","kind":"let","declarations":[
   {"type":"VariableDeclarator","id":{"type":"Identifier","name":"y"},"init":null}]},
  {"type":"BlockStatement","body":[
   {"type":"VariableDeclaration","kind":"var","declarations":[
    {"type":"VariableDeclarator","id":{"type":"Identifier","name":"y"},"init":null}]}]}]}}]}`

func TestStrictHoistedVarCollidesWithLet(t *testing.T) {
	res := buildJSON(t, strictHoistCollision, Options{})
	assert.Equal(t, []diag.Code{diag.SemaRedeclaration}, codes(res.Diagnostics))

	sem := res.Semantic
	fnScope, y := bindingScope(sem, "y")
	require.True(t, y.IsValid())
	assert.True(t, sem.Scopes.Flags(fnScope).IsFunction())
	assert.True(t, sem.Scopes.IsStrict(fnScope))

	var blocks []ScopeID
	for c := range sem.Scopes.Children(fnScope) {
		blocks = append(blocks, c)
	}
	require.Len(t, blocks, 1)
	assert.True(t, sem.Scopes.IsStrict(blocks[0]))
	assert.Empty(t, sem.Scopes.BindingNames(blocks[0]), "var y is not bound in the block")
}

// (function f() { let f; return f; })
const shadowedExpressionName = `{"type":"Program","sourceType":"script","body":[
 {"type":"ExpressionStatement","expression":{"type":"FunctionExpression","id":{"type":"Identifier","name":"f"},"params":[],
  "body":{"type":"BlockStatement","body":[
   {"type":"VariableDeclaration","kind":"let","declarations":[
    {"type":"VariableDeclarator","id":{"type":"Identifier","name":"f"},"init":null}]},
   {"type":"ReturnStatement","argument":{"type":"Identifier","name":"f"}}]}}}]}`

func TestLetShadowsFunctionExpressionName(t *testing.T) {
	res := buildJSON(t, shadowedExpressionName, Options{})
	assert.Empty(t, codes(res.Diagnostics))

	sem := res.Semantic
	require.Equal(t, 2, sem.Symbols.Len())
	own := SymbolID(1)
	assert.Equal(t, SymbolFunction, sem.Symbols.Flags(own))
	assert.True(t, sem.Symbols.Get(own).Shadowed)

	fnScope, let := bindingScope(sem, "f")
	require.True(t, let.IsValid())
	assert.NotEqual(t, own, let)
	assert.True(t, sem.Scopes.Flags(fnScope).IsFunction())
	assert.NotZero(t, sem.Symbols.Flags(let)&SymbolBlockScopedVariable)

	refs := referencesNamed(sem, "f")
	require.Len(t, refs, 1)
	assert.Equal(t, let, refs[0].Symbol)
}

// (function f() { var f; let f; })
const varThenLetOnExpressionName = `{"type":"Program","sourceType":"script","body":[
 {"type":"ExpressionStatement","expression":{"type":"FunctionExpression","id":{"type":"Identifier","name":"f"},"params":[],
  "body":{"type":"BlockStatement","body":[
   {"type":"VariableDeclaration","kind":"var","declarations":[
    {"type":"VariableDeclarator","id":{"type":"Identifier","name":"f"},"init":null}]},
   {"type":"VariableDeclaration","kind":"let","declarations":[
    {"type":"VariableDeclarator","id":{"type":"Identifier","name":"f"},"init":null}]}]}}}]}`

func TestLetAfterVarOnExpressionNameConflicts(t *testing.T) {
	res := buildJSON(t, varThenLetOnExpressionName, Options{})
	assert.Equal(t, []diag.Code{diag.SemaRedeclaration}, codes(res.Diagnostics))
	assert.Equal(t, 1, res.Semantic.Symbols.Len())
}

// try {} catch (e) { function e() {} }
const catchBlockFunction = `{"type":"Program","sourceType":"script","body":[
 {"type":"TryStatement","block":{"type":"BlockStatement","body":[]},"finalizer":null,
  "handler":{"type":"CatchClause","param":{"type":"Identifier","name":"e"},"body":{"type":"BlockStatement","body":[
   {"type":"FunctionDeclaration","id":{"type":"Identifier","name":"e"},"params":[],"body":{"type":"BlockStatement","body":[]}}]}}}]}`

func TestSloppyBlockFunctionCollidesWithCatchParameter(t *testing.T) {
	res := buildJSON(t, catchBlockFunction, Options{})
	assert.Equal(t, []diag.Code{diag.SemaRedeclaration}, codes(res.Diagnostics))

	sem := res.Semantic
	catchScope, e := bindingScope(sem, "e")
	require.True(t, e.IsValid())
	assert.True(t, sem.Scopes.Flags(catchScope).IsCatch())
	assert.Len(t, sem.Symbols.Get(e).Redeclarations, 1)
	assert.NotZero(t, sem.Symbols.Flags(e)&SymbolFunction)
}

func TestForwardResolution(t *testing.T) {
	sem := buildFixture(t, "forward", Options{}).Semantic

	for _, name := range []string{"f", "g", "later"} {
		root := sem.Scopes.Root()
		sym, ok := sem.Scopes.Binding(root, name)
		require.True(t, ok, name)
		refs := referencesNamed(sem, name)
		require.Len(t, refs, 1, name)
		assert.Equal(t, sym, refs[0].Symbol, name)
		assert.Len(t, sem.ReferencesOf(sym), 1, name)
	}
	assert.Empty(t, sem.Scopes.UnresolvedReferences())
}

func TestStrictInheritance(t *testing.T) {
	sem := buildFixture(t, "strict", Options{}).Semantic
	for i := 1; i <= sem.Scopes.Len(); i++ {
		assert.True(t, sem.Scopes.IsStrict(ScopeID(i)), "scope %d", i)
	}

	sem = buildFixture(t, "sloppy_class", Options{}).Semantic
	root := sem.Scopes.Root()
	assert.False(t, sem.Scopes.IsStrict(root))
	sloppy, _ := sem.Scopes.Binding(root, "sloppy")
	fnScope := ScopeID(0)
	for c := range sem.Scopes.Children(root) {
		if sem.Scopes.Node(c) == sem.Symbols.Get(sloppy).Declarations[0] {
			fnScope = c
		}
	}
	require.True(t, fnScope.IsValid())
	assert.False(t, sem.Scopes.IsStrict(fnScope))

	nestedScope, _ := bindingScope(sem, "nested")
	require.True(t, nestedScope.IsValid())
	for s := range sem.Scopes.Ancestors(nestedScope) {
		if s == root {
			break
		}
		assert.True(t, sem.Scopes.IsStrict(s), "scope %d below class", s)
	}
}

func TestModuleSourceIsStrict(t *testing.T) {
	sem := buildFixture(t, "module", Options{}).Semantic
	assert.True(t, sem.SourceType.Module)
	assert.True(t, sem.Scopes.IsStrict(sem.Scopes.Root()))
}

func TestGlobalReferences(t *testing.T) {
	sem := buildFixture(t, "mixed", Options{}).Semantic
	globals := sem.Scopes.UnresolvedReferences()
	assert.Contains(t, globals, "console")
	assert.Contains(t, globals, "Math")
	assert.NotContains(t, globals, "total")
	assert.NotContains(t, globals, "square")
	for _, ref := range globals["console"] {
		assert.True(t, sem.IsGlobal(ref))
	}

	// `total += x` both reads and writes the global-scope var
	_, total := bindingScope(sem, "total")
	var rw int
	for _, ref := range sem.ReferencesOf(total) {
		f := sem.Symbols.Reference(ref).Flags
		if f.IsRead() && f.IsWrite() {
			rw++
		}
	}
	assert.Equal(t, 1, rw)
}

func TestCatchParameterScoping(t *testing.T) {
	res := buildFixture(t, "catch", Options{})
	assert.Equal(t, []diag.Code{diag.SemaRedeclaration, diag.SemaRedeclaration}, codes(res.Diagnostics))

	sem := res.Semantic
	eScope, e := bindingScope(sem, "e")
	require.True(t, e.IsValid())
	// the first `catch (e)` owns its parameter, `var e` goes to the program
	assert.True(t, sem.Scopes.Flags(eScope).IsTop())
	var catches []ScopeID
	for i := 1; i <= sem.Scopes.Len(); i++ {
		if sem.Scopes.Flags(ScopeID(i)).IsCatch() {
			catches = append(catches, ScopeID(i))
		}
	}
	require.Len(t, catches, 3)
	catchE, ok := sem.Scopes.Binding(catches[0], "e")
	require.True(t, ok)
	assert.True(t, sem.Symbols.Flags(catchE).IsCatchVariable())
	assert.NotEqual(t, e, catchE)
	msg, ok := sem.Scopes.Binding(catches[2], "message")
	require.True(t, ok)
	assert.Len(t, sem.Symbols.Get(msg).Redeclarations, 1)
}

func TestParameters(t *testing.T) {
	res := buildFixture(t, "params", Options{})
	assert.Zero(t, res.Diagnostics.Len(), "sloppy duplicate params are allowed")

	sem := res.Semantic
	refs := referencesNamed(sem, "y")
	require.Len(t, refs, 1)
	_, y := bindingScope(sem, "y")
	assert.Equal(t, y, refs[0].Symbol, "default value sees later parameter")
}

type scopeSnap struct {
	Flags  ScopeFlags
	Parent ScopeID
	Node   NodeID
	Names  []string
}

type symbolSnap struct {
	Name  string
	Flags SymbolFlags
	Scope ScopeID
	Decls []NodeID
	Refs  []ReferenceID
}

type refSnap struct {
	Name   string
	Node   NodeID
	Scope  ScopeID
	Flags  ReferenceFlags
	Symbol SymbolID
}

type nodeSnap struct {
	Kind   ast.Kind
	Parent NodeID
	Scope  ScopeID
	Flags  NodeFlags
	Span   source.Span
}

type snapshot struct {
	Nodes   []nodeSnap
	Scopes  []scopeSnap
	Symbols []symbolSnap
	Refs    []refSnap
	Unused  []NodeID
}

func snap(sem *Semantic) snapshot {
	var s snapshot
	for i := 1; i <= sem.Nodes.Len(); i++ {
		n := sem.Nodes.Get(NodeID(i))
		s.Nodes = append(s.Nodes, nodeSnap{n.Kind, n.Parent, n.Scope, n.Flags, n.Node.Span()})
	}
	for i := 1; i <= sem.Scopes.Len(); i++ {
		id := ScopeID(i)
		s.Scopes = append(s.Scopes, scopeSnap{sem.Scopes.Flags(id), sem.Scopes.Parent(id), sem.Scopes.Node(id), sem.Scopes.BindingNames(id)})
	}
	for _, id := range sem.Symbols.IDs() {
		sym := sem.Symbols.Get(id)
		s.Symbols = append(s.Symbols, symbolSnap{sem.Symbols.Name(id), sym.Flags, sym.Scope, sym.Declarations, sym.References})
	}
	for _, id := range sem.Symbols.ReferenceIDs() {
		r := sem.Symbols.Reference(id)
		s.Refs = append(s.Refs, refSnap{sem.Symbols.ReferenceName(id), r.Node, r.Scope, r.Flags, r.Symbol})
	}
	s.Unused = sem.UnusedLabels
	return s
}

func TestRebuildIsIsomorphic(t *testing.T) {
	for _, name := range allFixtures {
		t.Run(name, func(t *testing.T) {
			first := buildFixture(t, name, Options{})
			second := buildFixture(t, name, Options{})
			if diff := deep.Equal(snap(first.Semantic), snap(second.Semantic)); diff != nil {
				t.Error(diff)
			}
			assert.Equal(t, codes(first.Diagnostics), codes(second.Diagnostics))
		})
	}
}

func TestLeaveRootScopePanics(t *testing.T) {
	b := NewBuilder(Options{})
	root := b.EnterScope(ScopeTop|ScopeStrictMode, NoNodeID)
	require.Equal(t, root, b.Scopes().Root())

	x := b.DeclareSymbol(source.Span{}, "x", SymbolBlockScopedVariable, SymbolBlockScopedVariableExcludes)
	block := b.EnterScope(ScopeEmpty, NoNodeID)
	assert.True(t, b.Scopes().IsStrict(block), "child inherits strict mode")
	inner := b.EnterScope(ScopeEmpty, NoNodeID)
	ref := b.DeclareReference("x", NoNodeID, ReferenceRead)
	missing := b.DeclareReference("y", NoNodeID, ReferenceRead)
	b.LeaveScope()
	assert.Equal(t, 2, b.Scopes().Pending(block))
	b.LeaveScope()
	assert.Equal(t, root, b.CurrentScope())
	assert.Equal(t, 2, b.Scopes().Pending(root))
	assert.NotEqual(t, inner, block)

	b.finishRoot()
	assert.Equal(t, x, b.Symbols().Reference(ref).Symbol)
	assert.False(t, b.Symbols().Reference(missing).IsResolved())

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok, "panic value %v", r)
		assert.True(t, IsInvariantError(err))
	}()
	b.LeaveScope()
}
