package ast

func (*Program) Kind() Kind                            { return KindProgram }
func (*Directive) Kind() Kind                          { return KindDirective }
func (*BindingIdentifier) Kind() Kind                  { return KindBindingIdentifier }
func (*IdentifierReference) Kind() Kind                { return KindIdentifierReference }
func (*IdentifierName) Kind() Kind                     { return KindIdentifierName }
func (*LabelIdentifier) Kind() Kind                    { return KindLabelIdentifier }
func (*PrivateIdentifier) Kind() Kind                  { return KindPrivateIdentifier }
func (*BlockStatement) Kind() Kind                     { return KindBlockStatement }
func (*EmptyStatement) Kind() Kind                     { return KindEmptyStatement }
func (*ExpressionStatement) Kind() Kind                { return KindExpressionStatement }
func (*IfStatement) Kind() Kind                        { return KindIfStatement }
func (*ForStatement) Kind() Kind                       { return KindForStatement }
func (*ForInStatement) Kind() Kind                     { return KindForInStatement }
func (*ForOfStatement) Kind() Kind                     { return KindForOfStatement }
func (*WhileStatement) Kind() Kind                     { return KindWhileStatement }
func (*DoWhileStatement) Kind() Kind                   { return KindDoWhileStatement }
func (*ReturnStatement) Kind() Kind                    { return KindReturnStatement }
func (*BreakStatement) Kind() Kind                     { return KindBreakStatement }
func (*ContinueStatement) Kind() Kind                  { return KindContinueStatement }
func (*LabeledStatement) Kind() Kind                   { return KindLabeledStatement }
func (*SwitchStatement) Kind() Kind                    { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind                         { return KindSwitchCase }
func (*ThrowStatement) Kind() Kind                     { return KindThrowStatement }
func (*TryStatement) Kind() Kind                       { return KindTryStatement }
func (*CatchClause) Kind() Kind                        { return KindCatchClause }
func (*CatchParameter) Kind() Kind                     { return KindCatchParameter }
func (*WithStatement) Kind() Kind                      { return KindWithStatement }
func (*DebuggerStatement) Kind() Kind                  { return KindDebuggerStatement }
func (*VariableDeclaration) Kind() Kind                { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind                 { return KindVariableDeclarator }
func (*Function) Kind() Kind                           { return KindFunction }
func (*FunctionBody) Kind() Kind                       { return KindFunctionBody }
func (*FormalParameters) Kind() Kind                   { return KindFormalParameters }
func (*FormalParameter) Kind() Kind                    { return KindFormalParameter }
func (*ArrowFunctionExpression) Kind() Kind            { return KindArrowFunctionExpression }
func (*Class) Kind() Kind                              { return KindClass }
func (*ClassBody) Kind() Kind                          { return KindClassBody }
func (*MethodDefinition) Kind() Kind                   { return KindMethodDefinition }
func (*PropertyDefinition) Kind() Kind                 { return KindPropertyDefinition }
func (*StaticBlock) Kind() Kind                        { return KindStaticBlock }
func (*Decorator) Kind() Kind                          { return KindDecorator }
func (*BooleanLiteral) Kind() Kind                     { return KindBooleanLiteral }
func (*NullLiteral) Kind() Kind                        { return KindNullLiteral }
func (*NumericLiteral) Kind() Kind                     { return KindNumericLiteral }
func (*BigIntLiteral) Kind() Kind                      { return KindBigIntLiteral }
func (*StringLiteral) Kind() Kind                      { return KindStringLiteral }
func (*RegExpLiteral) Kind() Kind                      { return KindRegExpLiteral }
func (*TemplateLiteral) Kind() Kind                    { return KindTemplateLiteral }
func (*TemplateElement) Kind() Kind                    { return KindTemplateElement }
func (*TaggedTemplateExpression) Kind() Kind           { return KindTaggedTemplateExpression }
func (*ThisExpression) Kind() Kind                     { return KindThisExpression }
func (*Super) Kind() Kind                              { return KindSuper }
func (*ArrayExpression) Kind() Kind                    { return KindArrayExpression }
func (*ObjectExpression) Kind() Kind                   { return KindObjectExpression }
func (*ObjectProperty) Kind() Kind                     { return KindObjectProperty }
func (*SpreadElement) Kind() Kind                      { return KindSpreadElement }
func (*UnaryExpression) Kind() Kind                    { return KindUnaryExpression }
func (*UpdateExpression) Kind() Kind                   { return KindUpdateExpression }
func (*BinaryExpression) Kind() Kind                   { return KindBinaryExpression }
func (*LogicalExpression) Kind() Kind                  { return KindLogicalExpression }
func (*AssignmentExpression) Kind() Kind               { return KindAssignmentExpression }
func (*ConditionalExpression) Kind() Kind              { return KindConditionalExpression }
func (*CallExpression) Kind() Kind                     { return KindCallExpression }
func (*NewExpression) Kind() Kind                      { return KindNewExpression }
func (*MemberExpression) Kind() Kind                   { return KindMemberExpression }
func (*ChainExpression) Kind() Kind                    { return KindChainExpression }
func (*SequenceExpression) Kind() Kind                 { return KindSequenceExpression }
func (*ParenthesizedExpression) Kind() Kind            { return KindParenthesizedExpression }
func (*YieldExpression) Kind() Kind                    { return KindYieldExpression }
func (*AwaitExpression) Kind() Kind                    { return KindAwaitExpression }
func (*MetaProperty) Kind() Kind                       { return KindMetaProperty }
func (*ImportExpression) Kind() Kind                   { return KindImportExpression }
func (*ObjectPattern) Kind() Kind                      { return KindObjectPattern }
func (*BindingProperty) Kind() Kind                    { return KindBindingProperty }
func (*ArrayPattern) Kind() Kind                       { return KindArrayPattern }
func (*AssignmentPattern) Kind() Kind                  { return KindAssignmentPattern }
func (*RestElement) Kind() Kind                        { return KindRestElement }
func (*ArrayAssignmentTarget) Kind() Kind              { return KindArrayAssignmentTarget }
func (*ObjectAssignmentTarget) Kind() Kind             { return KindObjectAssignmentTarget }
func (*AssignmentTargetWithDefault) Kind() Kind        { return KindAssignmentTargetWithDefault }
func (*AssignmentTargetPropertyIdentifier) Kind() Kind { return KindAssignmentTargetPropertyIdentifier }
func (*AssignmentTargetPropertyProperty) Kind() Kind   { return KindAssignmentTargetPropertyProperty }
func (*AssignmentTargetRest) Kind() Kind               { return KindAssignmentTargetRest }
func (*ImportDeclaration) Kind() Kind                  { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind                    { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind             { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind           { return KindImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Kind() Kind             { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind                    { return KindExportSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind           { return KindExportDefaultDeclaration }
func (*ExportAllDeclaration) Kind() Kind               { return KindExportAllDeclaration }
func (*TSTypeAliasDeclaration) Kind() Kind             { return KindTSTypeAliasDeclaration }
func (*TSInterfaceDeclaration) Kind() Kind             { return KindTSInterfaceDeclaration }
func (*TSInterfaceHeritage) Kind() Kind                { return KindTSInterfaceHeritage }
func (*TSInterfaceBody) Kind() Kind                    { return KindTSInterfaceBody }
func (*TSClassImplements) Kind() Kind                  { return KindTSClassImplements }
func (*TSEnumDeclaration) Kind() Kind                  { return KindTSEnumDeclaration }
func (*TSEnumMember) Kind() Kind                       { return KindTSEnumMember }
func (*TSModuleDeclaration) Kind() Kind                { return KindTSModuleDeclaration }
func (*TSModuleBlock) Kind() Kind                      { return KindTSModuleBlock }
func (*TSImportEqualsDeclaration) Kind() Kind          { return KindTSImportEqualsDeclaration }
func (*TSExternalModuleReference) Kind() Kind          { return KindTSExternalModuleReference }
func (*TSExportAssignment) Kind() Kind                 { return KindTSExportAssignment }
func (*TSNamespaceExportDeclaration) Kind() Kind       { return KindTSNamespaceExportDeclaration }
func (*TSAsExpression) Kind() Kind                     { return KindTSAsExpression }
func (*TSSatisfiesExpression) Kind() Kind              { return KindTSSatisfiesExpression }
func (*TSNonNullExpression) Kind() Kind                { return KindTSNonNullExpression }
func (*TSTypeAssertion) Kind() Kind                    { return KindTSTypeAssertion }
func (*TSInstantiationExpression) Kind() Kind          { return KindTSInstantiationExpression }
func (*TSTypeAnnotation) Kind() Kind                   { return KindTSTypeAnnotation }
func (*TSTypeParameterDeclaration) Kind() Kind         { return KindTSTypeParameterDeclaration }
func (*TSTypeParameter) Kind() Kind                    { return KindTSTypeParameter }
func (*TSTypeParameterInstantiation) Kind() Kind       { return KindTSTypeParameterInstantiation }
func (*TSTypeReference) Kind() Kind                    { return KindTSTypeReference }
func (*TSQualifiedName) Kind() Kind                    { return KindTSQualifiedName }
func (*TSKeywordType) Kind() Kind                      { return KindTSKeywordType }
func (*TSTypeLiteral) Kind() Kind                      { return KindTSTypeLiteral }
func (*TSPropertySignature) Kind() Kind                { return KindTSPropertySignature }
func (*TSMethodSignature) Kind() Kind                  { return KindTSMethodSignature }
func (*TSCallSignatureDeclaration) Kind() Kind         { return KindTSCallSignatureDeclaration }
func (*TSConstructSignatureDeclaration) Kind() Kind    { return KindTSConstructSignatureDeclaration }
func (*TSIndexSignature) Kind() Kind                   { return KindTSIndexSignature }
func (*TSUnionType) Kind() Kind                        { return KindTSUnionType }
func (*TSIntersectionType) Kind() Kind                 { return KindTSIntersectionType }
func (*TSArrayType) Kind() Kind                        { return KindTSArrayType }
func (*TSTupleType) Kind() Kind                        { return KindTSTupleType }
func (*TSFunctionType) Kind() Kind                     { return KindTSFunctionType }
func (*TSConstructorType) Kind() Kind                  { return KindTSConstructorType }
func (*TSTypeQuery) Kind() Kind                        { return KindTSTypeQuery }
func (*TSLiteralType) Kind() Kind                      { return KindTSLiteralType }
func (*TSTypeOperator) Kind() Kind                     { return KindTSTypeOperator }
func (*TSIndexedAccessType) Kind() Kind                { return KindTSIndexedAccessType }
func (*TSParenthesizedType) Kind() Kind                { return KindTSParenthesizedType }
func (*TSTypePredicate) Kind() Kind                    { return KindTSTypePredicate }
func (*TSOpaqueType) Kind() Kind                       { return KindTSOpaqueType }

func (*BlockStatement) stmtNode()               {}
func (*EmptyStatement) stmtNode()               {}
func (*DebuggerStatement) stmtNode()            {}
func (*ExpressionStatement) stmtNode()          {}
func (*IfStatement) stmtNode()                  {}
func (*ForStatement) stmtNode()                 {}
func (*ForInStatement) stmtNode()               {}
func (*ForOfStatement) stmtNode()               {}
func (*WhileStatement) stmtNode()               {}
func (*DoWhileStatement) stmtNode()             {}
func (*ReturnStatement) stmtNode()              {}
func (*BreakStatement) stmtNode()               {}
func (*ContinueStatement) stmtNode()            {}
func (*LabeledStatement) stmtNode()             {}
func (*SwitchStatement) stmtNode()              {}
func (*ThrowStatement) stmtNode()               {}
func (*TryStatement) stmtNode()                 {}
func (*WithStatement) stmtNode()                {}
func (*VariableDeclaration) stmtNode()          {}
func (*Function) stmtNode()                     {}
func (*Class) stmtNode()                        {}
func (*ImportDeclaration) stmtNode()            {}
func (*ExportNamedDeclaration) stmtNode()       {}
func (*ExportDefaultDeclaration) stmtNode()     {}
func (*ExportAllDeclaration) stmtNode()         {}
func (*TSTypeAliasDeclaration) stmtNode()       {}
func (*TSInterfaceDeclaration) stmtNode()       {}
func (*TSEnumDeclaration) stmtNode()            {}
func (*TSModuleDeclaration) stmtNode()          {}
func (*TSImportEqualsDeclaration) stmtNode()    {}
func (*TSExportAssignment) stmtNode()           {}
func (*TSNamespaceExportDeclaration) stmtNode() {}

func (*IdentifierReference) exprNode()       {}
func (*PrivateIdentifier) exprNode()         {}
func (*BooleanLiteral) exprNode()            {}
func (*NullLiteral) exprNode()               {}
func (*NumericLiteral) exprNode()            {}
func (*BigIntLiteral) exprNode()             {}
func (*StringLiteral) exprNode()             {}
func (*RegExpLiteral) exprNode()             {}
func (*TemplateLiteral) exprNode()           {}
func (*TaggedTemplateExpression) exprNode()  {}
func (*ThisExpression) exprNode()            {}
func (*Super) exprNode()                     {}
func (*ArrayExpression) exprNode()           {}
func (*ObjectExpression) exprNode()          {}
func (*SpreadElement) exprNode()             {}
func (*UnaryExpression) exprNode()           {}
func (*UpdateExpression) exprNode()          {}
func (*BinaryExpression) exprNode()          {}
func (*LogicalExpression) exprNode()         {}
func (*AssignmentExpression) exprNode()      {}
func (*ConditionalExpression) exprNode()     {}
func (*CallExpression) exprNode()            {}
func (*NewExpression) exprNode()             {}
func (*MemberExpression) exprNode()          {}
func (*ChainExpression) exprNode()           {}
func (*SequenceExpression) exprNode()        {}
func (*ParenthesizedExpression) exprNode()   {}
func (*YieldExpression) exprNode()           {}
func (*AwaitExpression) exprNode()           {}
func (*MetaProperty) exprNode()              {}
func (*ImportExpression) exprNode()          {}
func (*Function) exprNode()                  {}
func (*ArrowFunctionExpression) exprNode()   {}
func (*Class) exprNode()                     {}
func (*TSAsExpression) exprNode()            {}
func (*TSSatisfiesExpression) exprNode()     {}
func (*TSNonNullExpression) exprNode()       {}
func (*TSTypeAssertion) exprNode()           {}
func (*TSInstantiationExpression) exprNode() {}

func (*BindingIdentifier) patternNode() {}
func (*ObjectPattern) patternNode()     {}
func (*ArrayPattern) patternNode()      {}
func (*AssignmentPattern) patternNode() {}
func (*RestElement) patternNode()       {}

func (*IdentifierReference) targetNode()         {}
func (*MemberExpression) targetNode()            {}
func (*ArrayAssignmentTarget) targetNode()       {}
func (*ObjectAssignmentTarget) targetNode()      {}
func (*AssignmentTargetWithDefault) targetNode() {}
func (*ParenthesizedExpression) targetNode()     {}
func (*TSAsExpression) targetNode()              {}
func (*TSSatisfiesExpression) targetNode()       {}
func (*TSNonNullExpression) targetNode()         {}
func (*TSTypeAssertion) targetNode()             {}

func (*MethodDefinition) classElementNode()   {}
func (*PropertyDefinition) classElementNode() {}
func (*StaticBlock) classElementNode()        {}
func (*TSIndexSignature) classElementNode()   {}

func (*TSTypeReference) tsTypeNode()     {}
func (*TSKeywordType) tsTypeNode()       {}
func (*TSTypeLiteral) tsTypeNode()       {}
func (*TSUnionType) tsTypeNode()         {}
func (*TSIntersectionType) tsTypeNode()  {}
func (*TSArrayType) tsTypeNode()         {}
func (*TSTupleType) tsTypeNode()         {}
func (*TSFunctionType) tsTypeNode()      {}
func (*TSConstructorType) tsTypeNode()   {}
func (*TSTypeQuery) tsTypeNode()         {}
func (*TSLiteralType) tsTypeNode()       {}
func (*TSTypeOperator) tsTypeNode()      {}
func (*TSIndexedAccessType) tsTypeNode() {}
func (*TSParenthesizedType) tsTypeNode() {}
func (*TSTypePredicate) tsTypeNode()     {}
func (*TSOpaqueType) tsTypeNode()        {}

func (*TSPropertySignature) signatureNode()             {}
func (*TSMethodSignature) signatureNode()               {}
func (*TSCallSignatureDeclaration) signatureNode()      {}
func (*TSConstructSignatureDeclaration) signatureNode() {}
func (*TSIndexSignature) signatureNode()                {}
