package ast

type ImportExportKind uint8

const (
	KindValue ImportExportKind = iota
	KindType
)

type (
	ImportDeclaration struct {
		Base
		Specifiers []Node // *ImportSpecifier | *ImportDefaultSpecifier | *ImportNamespaceSpecifier
		Source     *StringLiteral
		ImportKind ImportExportKind
		Phase      string // "", "source", "defer"
	}
	ImportSpecifier struct {
		Base
		Imported   Node // *IdentifierName | *StringLiteral
		Local      *BindingIdentifier
		ImportKind ImportExportKind
	}
	ImportDefaultSpecifier struct {
		Base
		Local *BindingIdentifier
	}
	ImportNamespaceSpecifier struct {
		Base
		Local *BindingIdentifier
	}
	ExportNamedDeclaration struct {
		Base
		Declaration Stmt
		Specifiers  []*ExportSpecifier
		Source      *StringLiteral
		ExportKind  ImportExportKind
	}
	ExportSpecifier struct {
		Base
		Local      Node // *IdentifierReference без source, иначе *IdentifierName | *StringLiteral
		Exported   Node // *IdentifierName | *StringLiteral
		ExportKind ImportExportKind
	}
	ExportDefaultDeclaration struct {
		Base
		Declaration Node // *Function | *Class | *TSInterfaceDeclaration | Expr
	}
	ExportAllDeclaration struct {
		Base
		Exported   Node // nil | *IdentifierName | *StringLiteral
		Source     *StringLiteral
		ExportKind ImportExportKind
	}
)

// ModuleExportName returns the string value of an import/export name node.
func ModuleExportName(n Node) string {
	switch n := n.(type) {
	case *IdentifierName:
		return n.Name
	case *IdentifierReference:
		return n.Name
	case *StringLiteral:
		return n.Value
	case *BindingIdentifier:
		return n.Name
	}
	return ""
}
