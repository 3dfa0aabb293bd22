package semantic

import (
	"strings"

	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// JSDoc is a /** */ comment documenting the node that follows it.
type JSDoc struct {
	Span source.Span
	Text string // body between the delimiters
}

// Body returns the comment text with the leading `*` of every line removed.
func (d JSDoc) Body() string {
	lines := strings.Split(strings.TrimPrefix(d.Text, "*"), "\n")
	for i, l := range lines {
		l = strings.TrimSpace(l)
		lines[i] = strings.TrimSpace(strings.TrimPrefix(l, "*"))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// JSDocs maps documented nodes to their comments. A node may carry several,
// the nearest is last. Comments that precede no documentable node are kept
// as unattached.
type JSDocs struct {
	attached   map[NodeID][]JSDoc
	unattached []JSDoc
}

// Of returns the nearest comment documenting id.
func (t *JSDocs) Of(id NodeID) (JSDoc, bool) {
	all := t.All(id)
	if len(all) == 0 {
		return JSDoc{}, false
	}
	return all[len(all)-1], true
}

// All returns every comment documenting id in source order.
func (t *JSDocs) All(id NodeID) []JSDoc {
	if t == nil {
		return nil
	}
	return t.attached[id]
}

// Unattached returns the comments that document nothing.
func (t *JSDocs) Unattached() []JSDoc {
	if t == nil {
		return nil
	}
	return t.unattached
}

// Len reports the number of documented nodes.
func (t *JSDocs) Len() int {
	if t == nil {
		return 0
	}
	return len(t.attached)
}

// jsdocBuilder attaches comments while nodes are entered in preorder. A
// comment is anchored at the start of the first node entered after it and
// goes to the first documentable node starting there.
type jsdocBuilder struct {
	text     string
	pending  []JSDoc
	open     []JSDoc
	anchor   uint32
	anchored bool
	out      *JSDocs
}

func newJSDocBuilder(prog *ast.Program, text string) *jsdocBuilder {
	j := &jsdocBuilder{text: text, out: &JSDocs{attached: make(map[NodeID][]JSDoc)}}
	for _, c := range prog.Comments {
		if c.IsJSDoc() {
			j.pending = append(j.pending, JSDoc{Span: c.Span(), Text: c.Value})
		}
	}
	return j
}

// enter reports whether comments were attached to id.
func (j *jsdocBuilder) enter(id NodeID, kind ast.Kind, start uint32) bool {
	if j.anchored && start > j.anchor {
		j.drop()
	}
	for len(j.pending) > 0 && j.pending[0].Span.End <= start {
		j.open = append(j.open, j.pending[0])
		j.pending = j.pending[1:]
	}
	if len(j.open) == 0 {
		return false
	}
	if !j.anchored {
		j.anchored, j.anchor = true, start
		j.keepLeading(start)
	}
	if start != j.anchor || !documentable(kind) || len(j.open) == 0 {
		return false
	}
	j.out.attached[id] = append(j.out.attached[id], j.open...)
	j.open = nil
	j.anchored = false
	return true
}

// keepLeading moves to unattached the open comments separated from start by
// anything but whitespace and comments. Without source text every comment
// counts as leading.
func (j *jsdocBuilder) keepLeading(start uint32) {
	if j.text == "" {
		return
	}
	kept := j.open[:0]
	for _, c := range j.open {
		if trivia(j.text, c.Span.End, start) {
			kept = append(kept, c)
		} else {
			j.out.unattached = append(j.out.unattached, c)
		}
	}
	j.open = kept
}

func (j *jsdocBuilder) drop() {
	j.out.unattached = append(j.out.unattached, j.open...)
	j.open = nil
	j.anchored = false
}

func (j *jsdocBuilder) finish() *JSDocs {
	j.drop()
	j.out.unattached = append(j.out.unattached, j.pending...)
	j.pending = nil
	return j.out
}

// trivia reports whether text[from:to] holds only whitespace and comments.
func trivia(text string, from, to uint32) bool {
	if from > to || int(to) > len(text) {
		return false
	}
	s := text[from:to]
	for len(s) > 0 {
		switch {
		case s[0] == ' ' || s[0] == '\t' || s[0] == '\n' || s[0] == '\r' || s[0] == '\v' || s[0] == '\f':
			s = s[1:]
		case strings.HasPrefix(s, "//"):
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				return true
			}
			s = s[i+1:]
		case strings.HasPrefix(s, "/*"):
			i := strings.Index(s[2:], "*/")
			if i < 0 {
				return false
			}
			s = s[i+4:]
		default:
			return false
		}
	}
	return true
}

// documentable lists the node kinds a JSDoc comment can describe.
func documentable(k ast.Kind) bool {
	switch k {
	case ast.KindBlockStatement, ast.KindEmptyStatement, ast.KindExpressionStatement,
		ast.KindIfStatement, ast.KindForStatement, ast.KindForInStatement, ast.KindForOfStatement,
		ast.KindWhileStatement, ast.KindDoWhileStatement, ast.KindReturnStatement,
		ast.KindBreakStatement, ast.KindContinueStatement, ast.KindLabeledStatement,
		ast.KindSwitchStatement, ast.KindSwitchCase, ast.KindThrowStatement, ast.KindTryStatement,
		ast.KindCatchClause, ast.KindWithStatement, ast.KindDebuggerStatement,
		ast.KindVariableDeclaration, ast.KindFunction, ast.KindArrowFunctionExpression,
		ast.KindClass, ast.KindMethodDefinition, ast.KindPropertyDefinition, ast.KindStaticBlock,
		ast.KindObjectProperty, ast.KindParenthesizedExpression, ast.KindFormalParameter,
		ast.KindImportDeclaration, ast.KindExportNamedDeclaration,
		ast.KindExportDefaultDeclaration, ast.KindExportAllDeclaration,
		ast.KindTSTypeAliasDeclaration, ast.KindTSInterfaceDeclaration, ast.KindTSEnumDeclaration,
		ast.KindTSEnumMember, ast.KindTSModuleDeclaration, ast.KindTSImportEqualsDeclaration,
		ast.KindTSExportAssignment, ast.KindTSPropertySignature, ast.KindTSMethodSignature,
		ast.KindTSCallSignatureDeclaration, ast.KindTSConstructSignatureDeclaration,
		ast.KindTSIndexSignature:
		return true
	}
	return false
}

// SymbolJSDoc returns the comment documenting the declaration of sym. The
// lookup climbs from a declarator or declaration into the statement that
// wraps it, so `/** d */ export const x = 1` documents x.
func (s *Semantic) SymbolJSDoc(sym SymbolID) (JSDoc, bool) {
	rec := s.Symbols.Get(sym)
	if rec == nil || len(rec.Declarations) == 0 || s.JSDoc == nil {
		return JSDoc{}, false
	}
	for id := rec.Declarations[0]; id.IsValid(); id = s.Nodes.Parent(id) {
		if doc, ok := s.JSDoc.Of(id); ok {
			return doc, true
		}
		switch s.Nodes.ParentKind(id) {
		case ast.KindVariableDeclaration, ast.KindExportNamedDeclaration, ast.KindExportDefaultDeclaration:
		default:
			return JSDoc{}, false
		}
	}
	return JSDoc{}, false
}
