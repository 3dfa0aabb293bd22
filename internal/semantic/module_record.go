package semantic

import (
	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// NameSpan is a name together with where it was written.
type NameSpan struct {
	Name string
	Span source.Span
}

// ImportNameKind says what an import entry takes from its module.
type ImportNameKind uint8

const (
	ImportNamed ImportNameKind = iota
	ImportDefault
	ImportNamespaceObject
)

// ImportEntry is one imported binding.
type ImportEntry struct {
	StatementSpan source.Span
	ModuleRequest NameSpan
	Kind          ImportNameKind
	ImportName    NameSpan // empty for the namespace object
	LocalName     NameSpan
	IsType        bool
}

// ExportImportKind says which binding of the requested module is re-exported.
type ExportImportKind uint8

const (
	ExportImportNone ExportImportKind = iota
	ExportImportName
	ExportImportAll
	ExportImportAllButDefault
)

// ExportEntry is one exported name.
type ExportEntry struct {
	StatementSpan source.Span
	Span          source.Span
	ModuleRequest *NameSpan
	ImportKind    ExportImportKind
	ImportName    NameSpan
	// ExportName is empty for `export * from`; Default marks `export default`.
	ExportName NameSpan
	Default    bool
	// LocalName is empty for anonymous default exports and re-exports.
	LocalName NameSpan
	IsType    bool
}

// RequestedModule is one occurrence of a module specifier.
type RequestedModule struct {
	StatementSpan source.Span
	Span          source.Span
	IsType        bool
	IsImport      bool
}

// ModuleRecord summarises the imports and exports of one file. Links
// between files are made by an external linker.
type ModuleRecord struct {
	Path            string
	HasModuleSyntax bool
	// RequestedOrder keeps module specifiers in first-seen order.
	RequestedOrder   []string
	RequestedModules map[string][]RequestedModule
	ImportEntries    []ImportEntry
	LocalExports     []ExportEntry
	IndirectExports  []ExportEntry
	StarExports      []ExportEntry
	// ExportedBindings maps an exported name to its first occurrence;
	// DuplicateExports lists every later one.
	ExportedBindings map[string]source.Span
	DuplicateExports []NameSpan
	DynamicImports   []source.Span
	ImportMetas      []source.Span
}

// DefaultExports returns the spans of every `default` export.
func (m *ModuleRecord) DefaultExports() []source.Span {
	var out []source.Span
	for _, list := range [][]ExportEntry{m.LocalExports, m.IndirectExports} {
		for _, e := range list {
			if e.Default || e.ExportName.Name == "default" {
				out = append(out, e.ExportName.Span)
			}
		}
	}
	return out
}

type moduleRecordBuilder struct {
	rec     *ModuleRecord
	pending []ExportEntry
}

// buildModuleRecord walks the top-level statements of prog. Nested module
// blocks of TypeScript namespaces are not module syntax.
func buildModuleRecord(prog *ast.Program, path string) *ModuleRecord {
	mb := &moduleRecordBuilder{rec: &ModuleRecord{
		Path:             path,
		RequestedModules: make(map[string][]RequestedModule),
		ExportedBindings: make(map[string]source.Span),
	}}
	for _, stmt := range prog.Body {
		mb.statement(stmt)
	}
	ast.Inspect(prog, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.ImportExpression:
			mb.rec.DynamicImports = append(mb.rec.DynamicImports, n.Span())
		case *ast.MetaProperty:
			if n.Is("import", "meta") {
				mb.rec.HasModuleSyntax = true
				mb.rec.ImportMetas = append(mb.rec.ImportMetas, n.Span())
			}
		}
		return true
	})
	mb.resolveExports()
	return mb.rec
}

func (mb *moduleRecordBuilder) request(name NameSpan, stmt source.Span, isType, isImport bool) {
	if _, seen := mb.rec.RequestedModules[name.Name]; !seen {
		mb.rec.RequestedOrder = append(mb.rec.RequestedOrder, name.Name)
	}
	mb.rec.RequestedModules[name.Name] = append(mb.rec.RequestedModules[name.Name], RequestedModule{
		StatementSpan: stmt,
		Span:          name.Span,
		IsType:        isType,
		IsImport:      isImport,
	})
}

func (mb *moduleRecordBuilder) binding(name NameSpan) {
	if _, dup := mb.rec.ExportedBindings[name.Name]; dup {
		mb.rec.DuplicateExports = append(mb.rec.DuplicateExports, name)
		return
	}
	mb.rec.ExportedBindings[name.Name] = name.Span
}

func literalName(lit *ast.StringLiteral) NameSpan {
	return NameSpan{Name: lit.Value, Span: lit.Span()}
}

func nodeName(n ast.Node) NameSpan {
	if n == nil {
		return NameSpan{}
	}
	return NameSpan{Name: ast.ModuleExportName(n), Span: n.Span()}
}

func (mb *moduleRecordBuilder) statement(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ImportDeclaration:
		mb.rec.HasModuleSyntax = true
		mb.importDecl(s)
	case *ast.ExportAllDeclaration:
		mb.rec.HasModuleSyntax = true
		mb.exportAll(s)
	case *ast.ExportDefaultDeclaration:
		mb.rec.HasModuleSyntax = true
		mb.exportDefault(s)
	case *ast.ExportNamedDeclaration:
		mb.rec.HasModuleSyntax = true
		mb.exportNamed(s)
	case *ast.TSExportAssignment, *ast.TSNamespaceExportDeclaration:
		mb.rec.HasModuleSyntax = true
	}
}

func (mb *moduleRecordBuilder) importDecl(d *ast.ImportDeclaration) {
	req := literalName(d.Source)
	declType := d.ImportKind == ast.KindType
	for _, spec := range d.Specifiers {
		entry := ImportEntry{StatementSpan: d.Span(), ModuleRequest: req, IsType: declType}
		switch spec := spec.(type) {
		case *ast.ImportSpecifier:
			entry.Kind = ImportNamed
			entry.ImportName = nodeName(spec.Imported)
			entry.LocalName = nodeName(spec.Local)
			entry.IsType = declType || spec.ImportKind == ast.KindType
		case *ast.ImportDefaultSpecifier:
			entry.Kind = ImportDefault
			entry.ImportName = NameSpan{Name: "default", Span: spec.Span()}
			entry.LocalName = nodeName(spec.Local)
		case *ast.ImportNamespaceSpecifier:
			entry.Kind = ImportNamespaceObject
			entry.LocalName = nodeName(spec.Local)
		default:
			continue
		}
		mb.rec.ImportEntries = append(mb.rec.ImportEntries, entry)
	}
	mb.request(req, d.Span(), declType, true)
}

func (mb *moduleRecordBuilder) exportAll(d *ast.ExportAllDeclaration) {
	req := literalName(d.Source)
	entry := ExportEntry{
		StatementSpan: d.Span(),
		Span:          d.Span(),
		ModuleRequest: &req,
		ImportKind:    ExportImportAllButDefault,
		IsType:        d.ExportKind == ast.KindType,
	}
	if d.Exported != nil {
		entry.ImportKind = ExportImportAll
		entry.ExportName = nodeName(d.Exported)
	}
	mb.pending = append(mb.pending, entry)
	if d.Exported != nil {
		mb.binding(entry.ExportName)
	}
	mb.request(req, d.Span(), entry.IsType, false)
}

func (mb *moduleRecordBuilder) exportDefault(d *ast.ExportDefaultDeclaration) {
	entry := ExportEntry{
		StatementSpan: d.Span(),
		Default:       true,
		ExportName:    NameSpan{Name: "default", Span: d.Span()},
	}
	switch decl := d.Declaration.(type) {
	case *ast.TSInterfaceDeclaration:
		return
	case *ast.IdentifierReference:
		entry.LocalName = NameSpan{Name: decl.Name, Span: decl.Span()}
	case *ast.Function:
		if decl.ID != nil {
			entry.LocalName = nodeName(decl.ID)
		}
	case *ast.Class:
		if decl.ID != nil {
			entry.LocalName = nodeName(decl.ID)
		}
	}
	if d.Declaration != nil {
		entry.Span = d.Declaration.Span()
	}
	mb.pending = append(mb.pending, entry)
}

func (mb *moduleRecordBuilder) exportNamed(d *ast.ExportNamedDeclaration) {
	if d.ExportKind == ast.KindType || typeOnlyDeclaration(d.Declaration) {
		return
	}
	var req *NameSpan
	if d.Source != nil {
		r := literalName(d.Source)
		req = &r
		mb.request(r, d.Span(), false, false)
	}
	for _, id := range declaredNames(d.Declaration) {
		name := nodeName(id)
		mb.pending = append(mb.pending, ExportEntry{
			StatementSpan: d.Span(),
			Span:          d.Declaration.Span(),
			ExportName:    name,
			LocalName:     name,
		})
		mb.binding(name)
	}
	for _, spec := range d.Specifiers {
		entry := ExportEntry{
			StatementSpan: d.Span(),
			Span:          spec.Span(),
			ModuleRequest: req,
			ExportName:    nodeName(spec.Exported),
			IsType:        spec.ExportKind == ast.KindType,
		}
		if req != nil {
			entry.ImportKind = ExportImportName
			entry.ImportName = nodeName(spec.Local)
		} else {
			entry.LocalName = nodeName(spec.Local)
		}
		mb.pending = append(mb.pending, entry)
		mb.binding(entry.ExportName)
	}
}

func typeOnlyDeclaration(decl ast.Stmt) bool {
	switch d := decl.(type) {
	case *ast.TSTypeAliasDeclaration, *ast.TSInterfaceDeclaration:
		return true
	case *ast.TSEnumDeclaration:
		return d.Declare
	case *ast.TSModuleDeclaration:
		return d.Declare
	case *ast.Function:
		return d.Type == ast.TSDeclareFunction || d.Declare
	case *ast.Class:
		return d.Declare
	case *ast.VariableDeclaration:
		return d.Declare
	}
	return false
}

// declaredNames returns the identifiers a declaration statement binds.
func declaredNames(decl ast.Stmt) []*ast.BindingIdentifier {
	var out []*ast.BindingIdentifier
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		for _, v := range d.Declarations {
			ast.BoundNames(v.ID, func(id *ast.BindingIdentifier) { out = append(out, id) })
		}
	case *ast.Function:
		if d.ID != nil {
			out = append(out, d.ID)
		}
	case *ast.Class:
		if d.ID != nil {
			out = append(out, d.ID)
		}
	case *ast.TSEnumDeclaration:
		out = append(out, d.ID)
	case *ast.TSModuleDeclaration:
		if id, ok := d.ID.(*ast.BindingIdentifier); ok {
			out = append(out, id)
		}
	case *ast.TSImportEqualsDeclaration:
		out = append(out, d.ID)
	}
	return out
}

// resolveExports sorts pending entries into local, indirect and star
// exports. A local export of an imported name becomes indirect.
func (mb *moduleRecordBuilder) resolveExports() {
	for _, e := range mb.pending {
		switch {
		case e.ModuleRequest == nil:
			imp := mb.findImport(e.LocalName.Name)
			if imp == nil || imp.Kind == ImportNamespaceObject || e.Default {
				mb.rec.LocalExports = append(mb.rec.LocalExports, e)
				continue
			}
			req := imp.ModuleRequest
			indirect := ExportEntry{
				StatementSpan: imp.StatementSpan,
				Span:          e.Span,
				ModuleRequest: &req,
				ImportKind:    ExportImportName,
				ImportName:    imp.ImportName,
				ExportName:    e.ExportName,
				IsType:        imp.IsType,
			}
			mb.rec.IndirectExports = append(mb.rec.IndirectExports, indirect)
		case e.ImportKind == ExportImportAllButDefault:
			mb.rec.StarExports = append(mb.rec.StarExports, e)
		default:
			mb.rec.IndirectExports = append(mb.rec.IndirectExports, e)
		}
	}
	mb.pending = nil
}

func (mb *moduleRecordBuilder) findImport(local string) *ImportEntry {
	if local == "" {
		return nil
	}
	for i := range mb.rec.ImportEntries {
		if mb.rec.ImportEntries[i].LocalName.Name == local {
			return &mb.rec.ImportEntries[i]
		}
	}
	return nil
}
