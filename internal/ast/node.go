package ast

import (
	"path/filepath"
	"strings"

	"jsbind/internal/source"
)

// Node is any ESTree/TS-ESTree node. Concrete types are pointers to the
// structs in this package; the interface set below is closed.
type Node interface {
	Span() source.Span
	Kind() Kind
}

type (
	Stmt interface {
		Node
		stmtNode()
	}
	Expr interface {
		Node
		exprNode()
	}
	// Pattern - связывающие шаблоны (let/const/var, параметры, catch).
	Pattern interface {
		Node
		patternNode()
	}
	// Target - цели присваивания (`a = 1`, `[a, b] = c`, `for (a of b)`).
	Target interface {
		Node
		targetNode()
	}
	ClassElement interface {
		Node
		classElementNode()
	}
	TSType interface {
		Node
		tsTypeNode()
	}
	// Signature is a member of an interface body or a type literal.
	Signature interface {
		Node
		signatureNode()
	}
)

// Base carries the location shared by every node.
type Base struct {
	Loc source.Span
}

func (b *Base) Span() source.Span { return b.Loc }

// SourceType describes how a file must be analysed.
type SourceType struct {
	Module       bool
	TypeScript   bool
	Definition   bool // .d.ts
	JSX          bool
	AlwaysStrict bool
}

// Strict reports whether the whole file is strict mode code.
func (st SourceType) Strict() bool {
	return st.Module || st.AlwaysStrict
}

func (st SourceType) String() string {
	parts := make([]string, 0, 4)
	if st.Module {
		parts = append(parts, "module")
	} else {
		parts = append(parts, "script")
	}
	if st.TypeScript {
		parts = append(parts, "ts")
	}
	if st.Definition {
		parts = append(parts, "dts")
	}
	if st.JSX {
		parts = append(parts, "jsx")
	}
	return strings.Join(parts, "+")
}

// SourceTypeFromPath guesses the source type from a file name. A trailing
// ".json" (ESTree dump next to its source) is ignored.
func SourceTypeFromPath(path string) SourceType {
	name := strings.TrimSuffix(strings.ToLower(filepath.Base(path)), ".json")
	var st SourceType
	switch {
	case strings.HasSuffix(name, ".d.ts"), strings.HasSuffix(name, ".d.mts"), strings.HasSuffix(name, ".d.cts"):
		st.TypeScript, st.Definition, st.Module = true, true, true
	case strings.HasSuffix(name, ".tsx"):
		st.TypeScript, st.JSX, st.Module = true, true, true
	case strings.HasSuffix(name, ".ts"), strings.HasSuffix(name, ".mts"):
		st.TypeScript, st.Module = true, true
	case strings.HasSuffix(name, ".cts"):
		st.TypeScript = true
	case strings.HasSuffix(name, ".mjs"):
		st.Module = true
	case strings.HasSuffix(name, ".jsx"):
		st.JSX, st.Module = true, true
	}
	return st
}
