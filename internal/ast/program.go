package ast

import "strings"

// Program is the root of every file.
type Program struct {
	Base
	SourceType SourceType
	Hashbang   string
	Directives []*Directive
	Body       []Stmt
	// Comments come from the top-level "comments" array, in source order.
	Comments []*Comment
}

// Comment is a source comment. It is not a Node: the tree walkers skip it.
type Comment struct {
	Base
	Block bool   // /* */ rather than //
	Value string // text without the delimiters
}

// IsJSDoc reports whether c is a /** */ documentation comment.
func (c *Comment) IsJSDoc() bool {
	return c.Block && len(c.Value) > 1 && c.Value[0] == '*' && strings.Trim(c.Value, "*") != ""
}

// Directive is a prologue string such as "use strict". Value holds the raw
// text between the quotes.
type Directive struct {
	Base
	Value string
}

// HasUseStrict reports whether the prologue contains an exact "use strict".
func HasUseStrict(directives []*Directive) bool {
	for _, d := range directives {
		if d.Value == "use strict" {
			return true
		}
	}
	return false
}

type (
	BindingIdentifier struct {
		Base
		Name           string
		TypeAnnotation *TSTypeAnnotation
		Optional       bool
	}
	IdentifierReference struct {
		Base
		Name string
	}
	// IdentifierName - имя свойства/члена, никогда не связывается.
	IdentifierName struct {
		Base
		Name string
	}
	LabelIdentifier struct {
		Base
		Name string
	}
	PrivateIdentifier struct {
		Base
		Name string // без '#'
	}
)
