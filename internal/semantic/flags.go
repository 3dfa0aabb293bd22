package semantic

import "strings"

// ScopeFlags describe what kind of region a scope is.
type ScopeFlags uint16

const (
	ScopeStrictMode ScopeFlags = 1 << iota
	ScopeTop
	ScopeFunction
	ScopeArrow
	ScopeClassStaticBlock
	ScopeTsModuleBlock
	ScopeConstructor
	ScopeGetAccessor
	ScopeSetAccessor
	ScopeCatchClause

	ScopeEmpty ScopeFlags = 0
	// ScopeVar marks scopes that receive hoisted `var` declarations.
	ScopeVar = ScopeTop | ScopeFunction | ScopeClassStaticBlock | ScopeTsModuleBlock
	// ScopeModifiers are inherited by non-function child scopes.
	ScopeModifiers = ScopeConstructor | ScopeGetAccessor | ScopeSetAccessor
)

var scopeFlagNames = []flagName[ScopeFlags]{
	{ScopeStrictMode, "strict"},
	{ScopeTop, "top"},
	{ScopeFunction, "function"},
	{ScopeArrow, "arrow"},
	{ScopeClassStaticBlock, "static-block"},
	{ScopeTsModuleBlock, "ts-module"},
	{ScopeConstructor, "constructor"},
	{ScopeGetAccessor, "get"},
	{ScopeSetAccessor, "set"},
	{ScopeCatchClause, "catch"},
}

func (f ScopeFlags) String() string { return formatFlags(f, scopeFlagNames, "block") }

func (f ScopeFlags) IsStrict() bool   { return f&ScopeStrictMode != 0 }
func (f ScopeFlags) IsTop() bool      { return f&ScopeTop != 0 }
func (f ScopeFlags) IsFunction() bool { return f&ScopeFunction != 0 }
func (f ScopeFlags) IsArrow() bool    { return f&ScopeArrow != 0 }
func (f ScopeFlags) IsVar() bool      { return f&ScopeVar != 0 }
func (f ScopeFlags) IsCatch() bool    { return f&ScopeCatchClause != 0 }

// SymbolFlags describe how a name was declared.
type SymbolFlags uint32

const (
	SymbolFunctionScopedVariable SymbolFlags = 1 << iota // var, parameters
	SymbolBlockScopedVariable                            // let, const, using
	SymbolConstVariable
	SymbolClass
	SymbolCatchVariable
	SymbolFunction
	SymbolImport
	SymbolTypeImport
	SymbolTypeAlias
	SymbolInterface
	SymbolRegularEnum
	SymbolConstEnum
	SymbolEnumMember
	SymbolTypeParameter
	SymbolNameSpaceModule
	SymbolValueModule
	SymbolAmbient
	SymbolExport

	SymbolNone     SymbolFlags = 0
	SymbolVariable             = SymbolFunctionScopedVariable | SymbolBlockScopedVariable
	SymbolEnum                 = SymbolRegularEnum | SymbolConstEnum
	SymbolValue                = SymbolVariable | SymbolClass | SymbolFunction | SymbolEnum | SymbolEnumMember | SymbolValueModule | SymbolImport
	SymbolType                 = SymbolClass | SymbolInterface | SymbolEnum | SymbolEnumMember | SymbolTypeParameter | SymbolTypeAlias | SymbolTypeImport
)

// Excludes: a new declaration with the matching includes conflicts with an
// existing binding whose flags intersect the mask.
const (
	SymbolFunctionScopedVariableExcludes = SymbolValue &^ (SymbolFunctionScopedVariable | SymbolFunction)
	SymbolBlockScopedVariableExcludes    = SymbolValue
	SymbolFunctionExcludes               = SymbolValue &^ (SymbolFunctionScopedVariable | SymbolFunction | SymbolValueModule)
	SymbolClassExcludes                  = (SymbolValue | SymbolTypeAlias) &^ SymbolValueModule
	SymbolInterfaceExcludes              = SymbolType &^ (SymbolInterface | SymbolClass)
	SymbolTypeAliasExcludes              = SymbolType
	SymbolRegularEnumExcludes            = (SymbolValue | SymbolType) &^ (SymbolRegularEnum | SymbolValueModule)
	SymbolConstEnumExcludes              = (SymbolValue | SymbolType) &^ SymbolConstEnum
	SymbolEnumMemberExcludes             = SymbolEnumMember
	SymbolValueModuleExcludes            = SymbolValue &^ (SymbolFunction | SymbolClass | SymbolRegularEnum | SymbolValueModule)
	SymbolNameSpaceModuleExcludes        = SymbolNone
	SymbolTypeParameterExcludes          = SymbolType
	SymbolImportExcludes                 = SymbolValue | SymbolTypeImport
)

var symbolFlagNames = []flagName[SymbolFlags]{
	{SymbolFunctionScopedVariable, "var"},
	{SymbolBlockScopedVariable, "let"},
	{SymbolConstVariable, "const"},
	{SymbolClass, "class"},
	{SymbolCatchVariable, "catch"},
	{SymbolFunction, "function"},
	{SymbolImport, "import"},
	{SymbolTypeImport, "type-import"},
	{SymbolTypeAlias, "type"},
	{SymbolInterface, "interface"},
	{SymbolRegularEnum, "enum"},
	{SymbolConstEnum, "const-enum"},
	{SymbolEnumMember, "enum-member"},
	{SymbolTypeParameter, "type-param"},
	{SymbolNameSpaceModule, "namespace"},
	{SymbolValueModule, "value-module"},
	{SymbolAmbient, "ambient"},
	{SymbolExport, "export"},
}

func (f SymbolFlags) String() string { return formatFlags(f, symbolFlagNames, "none") }

func (f SymbolFlags) IsVariable() bool      { return f&SymbolVariable != 0 }
func (f SymbolFlags) IsFunction() bool      { return f&SymbolFunction != 0 }
func (f SymbolFlags) IsClass() bool         { return f&SymbolClass != 0 }
func (f SymbolFlags) IsImport() bool        { return f&(SymbolImport|SymbolTypeImport) != 0 }
func (f SymbolFlags) IsExport() bool        { return f&SymbolExport != 0 }
func (f SymbolFlags) IsCatchVariable() bool { return f&SymbolCatchVariable != 0 }
func (f SymbolFlags) IsConst() bool         { return f&SymbolConstVariable != 0 }

// CanBeReferencedByValue reports whether an expression may name the symbol.
func (f SymbolFlags) CanBeReferencedByValue() bool {
	return f&SymbolValue != 0
}

// CanBeReferencedByType reports whether a type position may name the symbol.
func (f SymbolFlags) CanBeReferencedByType() bool {
	return f&(SymbolType|SymbolImport|SymbolNameSpaceModule|SymbolValueModule) != 0
}

// CanBeReferencedByValueAsType covers `typeof x` in type positions, which
// also accepts type-only imports.
func (f SymbolFlags) CanBeReferencedByValueAsType() bool {
	return f&(SymbolValue|SymbolTypeImport) != 0
}

// ReferenceFlags describe how an identifier is used.
type ReferenceFlags uint8

const (
	ReferenceRead ReferenceFlags = 1 << iota
	ReferenceWrite
	ReferenceType
	// ReferenceValueAsType marks `typeof x` in a type position.
	ReferenceValueAsType

	ReferenceNone      ReferenceFlags = 0
	ReferenceReadWrite                = ReferenceRead | ReferenceWrite
	ReferenceValue                    = ReferenceRead | ReferenceWrite
)

var referenceFlagNames = []flagName[ReferenceFlags]{
	{ReferenceRead, "read"},
	{ReferenceWrite, "write"},
	{ReferenceType, "type"},
	{ReferenceValueAsType, "value-as-type"},
}

func (f ReferenceFlags) String() string { return formatFlags(f, referenceFlagNames, "none") }

func (f ReferenceFlags) IsRead() bool        { return f&ReferenceRead != 0 }
func (f ReferenceFlags) IsWrite() bool       { return f&ReferenceWrite != 0 }
func (f ReferenceFlags) IsType() bool        { return f&ReferenceType != 0 }
func (f ReferenceFlags) IsValue() bool       { return f&ReferenceValue != 0 }
func (f ReferenceFlags) IsValueAsType() bool { return f&ReferenceValueAsType != 0 }

// NodeFlags carry traversal context recorded on every node.
type NodeFlags uint8

const (
	// NodeClass is set for nodes inside a class (implicitly strict).
	NodeClass NodeFlags = 1 << iota
	// NodeExportSpecifier is set while visiting export specifier names.
	NodeExportSpecifier
	// NodeHasYield is set on functions that contain a yield expression.
	NodeHasYield
	// NodeJSDoc marks nodes with an attached JSDoc comment.
	NodeJSDoc
)

var nodeFlagNames = []flagName[NodeFlags]{
	{NodeClass, "class"},
	{NodeExportSpecifier, "export-specifier"},
	{NodeHasYield, "has-yield"},
	{NodeJSDoc, "jsdoc"},
}

func (f NodeFlags) String() string { return formatFlags(f, nodeFlagNames, "none") }

type flagName[F ~uint8 | ~uint16 | ~uint32] struct {
	bit  F
	name string
}

func formatFlags[F ~uint8 | ~uint16 | ~uint32](f F, names []flagName[F], empty string) string {
	if f == 0 {
		return empty
	}
	parts := make([]string, 0, 4)
	for _, n := range names {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
