package ast

// Kind tags every AST node type. The set is closed: semantic dispatch
// switches over it exhaustively.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgram
	KindDirective
	KindBindingIdentifier
	KindIdentifierReference
	KindIdentifierName
	KindLabelIdentifier
	KindPrivateIdentifier
	KindBlockStatement
	KindEmptyStatement
	KindExpressionStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindLabeledStatement
	KindSwitchStatement
	KindSwitchCase
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindCatchParameter
	KindWithStatement
	KindDebuggerStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunction
	KindFunctionBody
	KindFormalParameters
	KindFormalParameter
	KindArrowFunctionExpression
	KindClass
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindStaticBlock
	KindDecorator
	KindBooleanLiteral
	KindNullLiteral
	KindNumericLiteral
	KindBigIntLiteral
	KindStringLiteral
	KindRegExpLiteral
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindThisExpression
	KindSuper
	KindArrayExpression
	KindObjectExpression
	KindObjectProperty
	KindSpreadElement
	KindUnaryExpression
	KindUpdateExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindChainExpression
	KindSequenceExpression
	KindParenthesizedExpression
	KindYieldExpression
	KindAwaitExpression
	KindMetaProperty
	KindImportExpression
	KindObjectPattern
	KindBindingProperty
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement
	KindArrayAssignmentTarget
	KindObjectAssignmentTarget
	KindAssignmentTargetWithDefault
	KindAssignmentTargetPropertyIdentifier
	KindAssignmentTargetPropertyProperty
	KindAssignmentTargetRest
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration
	KindTSTypeAliasDeclaration
	KindTSInterfaceDeclaration
	KindTSInterfaceHeritage
	KindTSInterfaceBody
	KindTSClassImplements
	KindTSEnumDeclaration
	KindTSEnumMember
	KindTSModuleDeclaration
	KindTSModuleBlock
	KindTSImportEqualsDeclaration
	KindTSExternalModuleReference
	KindTSExportAssignment
	KindTSNamespaceExportDeclaration
	KindTSAsExpression
	KindTSSatisfiesExpression
	KindTSNonNullExpression
	KindTSTypeAssertion
	KindTSInstantiationExpression
	KindTSTypeAnnotation
	KindTSTypeParameterDeclaration
	KindTSTypeParameter
	KindTSTypeParameterInstantiation
	KindTSTypeReference
	KindTSQualifiedName
	KindTSKeywordType
	KindTSTypeLiteral
	KindTSPropertySignature
	KindTSMethodSignature
	KindTSCallSignatureDeclaration
	KindTSConstructSignatureDeclaration
	KindTSIndexSignature
	KindTSUnionType
	KindTSIntersectionType
	KindTSArrayType
	KindTSTupleType
	KindTSFunctionType
	KindTSConstructorType
	KindTSTypeQuery
	KindTSLiteralType
	KindTSTypeOperator
	KindTSIndexedAccessType
	KindTSParenthesizedType
	KindTSTypePredicate
	KindTSOpaqueType

	kindCount
)

var kindNames = [...]string{
	KindInvalid:                            "Invalid",
	KindProgram:                            "Program",
	KindDirective:                          "Directive",
	KindBindingIdentifier:                  "BindingIdentifier",
	KindIdentifierReference:                "IdentifierReference",
	KindIdentifierName:                     "IdentifierName",
	KindLabelIdentifier:                    "LabelIdentifier",
	KindPrivateIdentifier:                  "PrivateIdentifier",
	KindBlockStatement:                     "BlockStatement",
	KindEmptyStatement:                     "EmptyStatement",
	KindExpressionStatement:                "ExpressionStatement",
	KindIfStatement:                        "IfStatement",
	KindForStatement:                       "ForStatement",
	KindForInStatement:                     "ForInStatement",
	KindForOfStatement:                     "ForOfStatement",
	KindWhileStatement:                     "WhileStatement",
	KindDoWhileStatement:                   "DoWhileStatement",
	KindReturnStatement:                    "ReturnStatement",
	KindBreakStatement:                     "BreakStatement",
	KindContinueStatement:                  "ContinueStatement",
	KindLabeledStatement:                   "LabeledStatement",
	KindSwitchStatement:                    "SwitchStatement",
	KindSwitchCase:                         "SwitchCase",
	KindThrowStatement:                     "ThrowStatement",
	KindTryStatement:                       "TryStatement",
	KindCatchClause:                        "CatchClause",
	KindCatchParameter:                     "CatchParameter",
	KindWithStatement:                      "WithStatement",
	KindDebuggerStatement:                  "DebuggerStatement",
	KindVariableDeclaration:                "VariableDeclaration",
	KindVariableDeclarator:                 "VariableDeclarator",
	KindFunction:                           "Function",
	KindFunctionBody:                       "FunctionBody",
	KindFormalParameters:                   "FormalParameters",
	KindFormalParameter:                    "FormalParameter",
	KindArrowFunctionExpression:            "ArrowFunctionExpression",
	KindClass:                              "Class",
	KindClassBody:                          "ClassBody",
	KindMethodDefinition:                   "MethodDefinition",
	KindPropertyDefinition:                 "PropertyDefinition",
	KindStaticBlock:                        "StaticBlock",
	KindDecorator:                          "Decorator",
	KindBooleanLiteral:                     "BooleanLiteral",
	KindNullLiteral:                        "NullLiteral",
	KindNumericLiteral:                     "NumericLiteral",
	KindBigIntLiteral:                      "BigIntLiteral",
	KindStringLiteral:                      "StringLiteral",
	KindRegExpLiteral:                      "RegExpLiteral",
	KindTemplateLiteral:                    "TemplateLiteral",
	KindTemplateElement:                    "TemplateElement",
	KindTaggedTemplateExpression:           "TaggedTemplateExpression",
	KindThisExpression:                     "ThisExpression",
	KindSuper:                              "Super",
	KindArrayExpression:                    "ArrayExpression",
	KindObjectExpression:                   "ObjectExpression",
	KindObjectProperty:                     "ObjectProperty",
	KindSpreadElement:                      "SpreadElement",
	KindUnaryExpression:                    "UnaryExpression",
	KindUpdateExpression:                   "UpdateExpression",
	KindBinaryExpression:                   "BinaryExpression",
	KindLogicalExpression:                  "LogicalExpression",
	KindAssignmentExpression:               "AssignmentExpression",
	KindConditionalExpression:              "ConditionalExpression",
	KindCallExpression:                     "CallExpression",
	KindNewExpression:                      "NewExpression",
	KindMemberExpression:                   "MemberExpression",
	KindChainExpression:                    "ChainExpression",
	KindSequenceExpression:                 "SequenceExpression",
	KindParenthesizedExpression:            "ParenthesizedExpression",
	KindYieldExpression:                    "YieldExpression",
	KindAwaitExpression:                    "AwaitExpression",
	KindMetaProperty:                       "MetaProperty",
	KindImportExpression:                   "ImportExpression",
	KindObjectPattern:                      "ObjectPattern",
	KindBindingProperty:                    "BindingProperty",
	KindArrayPattern:                       "ArrayPattern",
	KindAssignmentPattern:                  "AssignmentPattern",
	KindRestElement:                        "RestElement",
	KindArrayAssignmentTarget:              "ArrayAssignmentTarget",
	KindObjectAssignmentTarget:             "ObjectAssignmentTarget",
	KindAssignmentTargetWithDefault:        "AssignmentTargetWithDefault",
	KindAssignmentTargetPropertyIdentifier: "AssignmentTargetPropertyIdentifier",
	KindAssignmentTargetPropertyProperty:   "AssignmentTargetPropertyProperty",
	KindAssignmentTargetRest:               "AssignmentTargetRest",
	KindImportDeclaration:                  "ImportDeclaration",
	KindImportSpecifier:                    "ImportSpecifier",
	KindImportDefaultSpecifier:             "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier:           "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:             "ExportNamedDeclaration",
	KindExportSpecifier:                    "ExportSpecifier",
	KindExportDefaultDeclaration:           "ExportDefaultDeclaration",
	KindExportAllDeclaration:               "ExportAllDeclaration",
	KindTSTypeAliasDeclaration:             "TSTypeAliasDeclaration",
	KindTSInterfaceDeclaration:             "TSInterfaceDeclaration",
	KindTSInterfaceHeritage:                "TSInterfaceHeritage",
	KindTSInterfaceBody:                    "TSInterfaceBody",
	KindTSClassImplements:                  "TSClassImplements",
	KindTSEnumDeclaration:                  "TSEnumDeclaration",
	KindTSEnumMember:                       "TSEnumMember",
	KindTSModuleDeclaration:                "TSModuleDeclaration",
	KindTSModuleBlock:                      "TSModuleBlock",
	KindTSImportEqualsDeclaration:          "TSImportEqualsDeclaration",
	KindTSExternalModuleReference:          "TSExternalModuleReference",
	KindTSExportAssignment:                 "TSExportAssignment",
	KindTSNamespaceExportDeclaration:       "TSNamespaceExportDeclaration",
	KindTSAsExpression:                     "TSAsExpression",
	KindTSSatisfiesExpression:              "TSSatisfiesExpression",
	KindTSNonNullExpression:                "TSNonNullExpression",
	KindTSTypeAssertion:                    "TSTypeAssertion",
	KindTSInstantiationExpression:          "TSInstantiationExpression",
	KindTSTypeAnnotation:                   "TSTypeAnnotation",
	KindTSTypeParameterDeclaration:         "TSTypeParameterDeclaration",
	KindTSTypeParameter:                    "TSTypeParameter",
	KindTSTypeParameterInstantiation:       "TSTypeParameterInstantiation",
	KindTSTypeReference:                    "TSTypeReference",
	KindTSQualifiedName:                    "TSQualifiedName",
	KindTSKeywordType:                      "TSKeywordType",
	KindTSTypeLiteral:                      "TSTypeLiteral",
	KindTSPropertySignature:                "TSPropertySignature",
	KindTSMethodSignature:                  "TSMethodSignature",
	KindTSCallSignatureDeclaration:         "TSCallSignatureDeclaration",
	KindTSConstructSignatureDeclaration:    "TSConstructSignatureDeclaration",
	KindTSIndexSignature:                   "TSIndexSignature",
	KindTSUnionType:                        "TSUnionType",
	KindTSIntersectionType:                 "TSIntersectionType",
	KindTSArrayType:                        "TSArrayType",
	KindTSTupleType:                        "TSTupleType",
	KindTSFunctionType:                     "TSFunctionType",
	KindTSConstructorType:                  "TSConstructorType",
	KindTSTypeQuery:                        "TSTypeQuery",
	KindTSLiteralType:                      "TSLiteralType",
	KindTSTypeOperator:                     "TSTypeOperator",
	KindTSIndexedAccessType:                "TSIndexedAccessType",
	KindTSParenthesizedType:                "TSParenthesizedType",
	KindTSTypePredicate:                    "TSTypePredicate",
	KindTSOpaqueType:                       "TSOpaqueType",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}
