package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"jsbind/internal/semantic"
	"jsbind/internal/source"
)

// DumpOpts configures the scope, symbol and module record dumps.
type DumpOpts struct {
	JSON     bool
	PathMode PathMode
}

// ScopeJSON is one node of the scope tree dump.
type ScopeJSON struct {
	ID       uint32         `json:"id"`
	Node     string         `json:"node"`
	Flags    string         `json:"flags"`
	Location LocationJSON   `json:"location"`
	Bindings map[string]int `json:"bindings"`
	Children []ScopeJSON    `json:"children,omitempty"`
}

// ReferenceJSON is one resolved or unresolved use.
type ReferenceJSON struct {
	Name     string       `json:"name,omitempty"`
	Flags    string       `json:"flags"`
	Scope    uint32       `json:"scope"`
	Location LocationJSON `json:"location"`
}

// SymbolJSON is one row of the symbol table dump.
type SymbolJSON struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Flags          string          `json:"flags"`
	Scope          uint32          `json:"scope"`
	Location       LocationJSON    `json:"location"`
	References     []ReferenceJSON `json:"references,omitempty"`
	Redeclarations []LocationJSON  `json:"redeclarations,omitempty"`
	JSDoc          string          `json:"jsdoc,omitempty"`
}

// SymbolsOutput is the root of the symbols dump.
type SymbolsOutput struct {
	Symbols    []SymbolJSON    `json:"symbols"`
	Unresolved []ReferenceJSON `json:"unresolved"`
}

func nodeLocation(sem *semantic.Semantic, fs *source.FileSet, id semantic.NodeID, mode PathMode) LocationJSON {
	n := sem.Nodes.Get(id)
	if n == nil || n.Node == nil {
		return LocationJSON{}
	}
	return makeLocation(n.Node.Span(), fs, mode, true)
}

func buildScope(sem *semantic.Semantic, fs *source.FileSet, id semantic.ScopeID, mode PathMode) ScopeJSON {
	sc := sem.Scopes.Get(id)
	out := ScopeJSON{
		ID:       uint32(id),
		Node:     sem.Nodes.Kind(sc.Node).String(),
		Flags:    sc.Flags.String(),
		Location: nodeLocation(sem, fs, sc.Node, mode),
		Bindings: make(map[string]int, len(sc.Bindings)),
	}
	for name, sym := range sc.Bindings {
		out.Bindings[sem.Strings.MustLookup(name)] = int(sym)
	}
	for child := range sem.Scopes.Children(id) {
		out.Children = append(out.Children, buildScope(sem, fs, child, mode))
	}
	return out
}

// DumpScopes prints the scope tree, one scope per line indented by depth.
func DumpScopes(w io.Writer, sem *semantic.Semantic, fs *source.FileSet, opts DumpOpts) error {
	root := buildScope(sem, fs, sem.Scopes.Root(), opts.PathMode)
	if opts.JSON {
		return writeJSON(w, root)
	}
	var b strings.Builder
	var walk func(s ScopeJSON, depth int)
	walk = func(s ScopeJSON, depth int) {
		pad := strings.Repeat("  ", depth)
		fmt.Fprintf(&b, "%sscope %d %s [%s] %d:%d\n", pad, s.ID, s.Node, s.Flags, s.Location.StartLine, s.Location.StartCol)
		if len(s.Bindings) > 0 {
			names := make([]string, 0, len(s.Bindings))
			for name := range s.Bindings {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(&b, "%s  bindings: %s\n", pad, strings.Join(names, " "))
		}
		for _, c := range s.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func buildReference(sem *semantic.Semantic, fs *source.FileSet, id semantic.ReferenceID, mode PathMode, withName bool) ReferenceJSON {
	r := sem.Symbols.Reference(id)
	out := ReferenceJSON{
		Flags:    r.Flags.String(),
		Scope:    uint32(r.Scope),
		Location: nodeLocation(sem, fs, r.Node, mode),
	}
	if withName {
		out.Name = sem.Strings.MustLookup(r.Name)
	}
	return out
}

// BuildSymbolsOutput collects the symbol table and the unresolved references.
func BuildSymbolsOutput(sem *semantic.Semantic, fs *source.FileSet, mode PathMode) SymbolsOutput {
	out := SymbolsOutput{
		Symbols:    make([]SymbolJSON, 0, sem.Symbols.Len()),
		Unresolved: []ReferenceJSON{},
	}
	for _, id := range sem.Symbols.IDs() {
		sym := sem.Symbols.Get(id)
		row := SymbolJSON{
			ID:       int(id),
			Name:     sem.Strings.MustLookup(sym.Name),
			Flags:    sym.Flags.String(),
			Scope:    uint32(sym.Scope),
			Location: makeLocation(sym.Span, fs, mode, true),
		}
		for _, ref := range sym.References {
			row.References = append(row.References, buildReference(sem, fs, ref, mode, false))
		}
		for _, sp := range sym.Redeclarations {
			row.Redeclarations = append(row.Redeclarations, makeLocation(sp, fs, mode, true))
		}
		if doc, ok := sem.SymbolJSDoc(id); ok {
			row.JSDoc = doc.Body()
		}
		out.Symbols = append(out.Symbols, row)
	}
	unresolved := sem.Scopes.UnresolvedReferences()
	names := make([]string, 0, len(unresolved))
	for name := range unresolved {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, ref := range unresolved[name] {
			out.Unresolved = append(out.Unresolved, buildReference(sem, fs, ref, mode, true))
		}
	}
	return out
}

// DumpSymbols prints every symbol with its references, then the globals.
func DumpSymbols(w io.Writer, sem *semantic.Semantic, fs *source.FileSet, opts DumpOpts) error {
	out := BuildSymbolsOutput(sem, fs, opts.PathMode)
	if opts.JSON {
		return writeJSON(w, out)
	}
	var b strings.Builder
	for _, s := range out.Symbols {
		fmt.Fprintf(&b, "%d %s [%s] scope=%d %d:%d refs=%d\n",
			s.ID, s.Name, s.Flags, s.Scope, s.Location.StartLine, s.Location.StartCol, len(s.References))
		for _, r := range s.References {
			fmt.Fprintf(&b, "  ref %d:%d [%s]\n", r.Location.StartLine, r.Location.StartCol, r.Flags)
		}
		for _, r := range s.Redeclarations {
			fmt.Fprintf(&b, "  redeclared %d:%d\n", r.StartLine, r.StartCol)
		}
		if s.JSDoc != "" {
			fmt.Fprintf(&b, "  doc %q\n", s.JSDoc)
		}
	}
	for _, r := range out.Unresolved {
		fmt.Fprintf(&b, "global %s %d:%d [%s]\n", r.Name, r.Location.StartLine, r.Location.StartCol, r.Flags)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ModuleEntryJSON is an import or export entry of the module record dump.
type ModuleEntryJSON struct {
	Kind          string       `json:"kind"`
	ModuleRequest string       `json:"module_request,omitempty"`
	ImportName    string       `json:"import_name,omitempty"`
	ExportName    string       `json:"export_name,omitempty"`
	LocalName     string       `json:"local_name,omitempty"`
	IsType        bool         `json:"is_type,omitempty"`
	Location      LocationJSON `json:"location"`
}

// ModuleRecordJSON is the root of the module record dump.
type ModuleRecordJSON struct {
	Path             string            `json:"path"`
	HasModuleSyntax  bool              `json:"has_module_syntax"`
	RequestedModules []string          `json:"requested_modules"`
	Imports          []ModuleEntryJSON `json:"imports"`
	LocalExports     []ModuleEntryJSON `json:"local_exports"`
	IndirectExports  []ModuleEntryJSON `json:"indirect_exports"`
	StarExports      []ModuleEntryJSON `json:"star_exports"`
	DynamicImports   int               `json:"dynamic_imports"`
	ImportMetas      int               `json:"import_metas"`
}

var importKindNames = map[semantic.ImportNameKind]string{
	semantic.ImportNamed:           "named",
	semantic.ImportDefault:         "default",
	semantic.ImportNamespaceObject: "namespace",
}

var exportImportKindNames = map[semantic.ExportImportKind]string{
	semantic.ExportImportNone:          "local",
	semantic.ExportImportName:          "name",
	semantic.ExportImportAll:           "all",
	semantic.ExportImportAllButDefault: "all-but-default",
}

func exportEntries(list []semantic.ExportEntry, fs *source.FileSet, mode PathMode) []ModuleEntryJSON {
	out := make([]ModuleEntryJSON, 0, len(list))
	for _, e := range list {
		entry := ModuleEntryJSON{
			Kind:       exportImportKindNames[e.ImportKind],
			ImportName: e.ImportName.Name,
			ExportName: e.ExportName.Name,
			LocalName:  e.LocalName.Name,
			IsType:     e.IsType,
			Location:   makeLocation(e.Span, fs, mode, true),
		}
		if e.Default {
			entry.Kind = "default"
		}
		if e.ModuleRequest != nil {
			entry.ModuleRequest = e.ModuleRequest.Name
		}
		out = append(out, entry)
	}
	return out
}

// BuildModuleRecordOutput converts a module record for printing.
func BuildModuleRecordOutput(rec *semantic.ModuleRecord, fs *source.FileSet, mode PathMode) ModuleRecordJSON {
	out := ModuleRecordJSON{
		Path:             rec.Path,
		HasModuleSyntax:  rec.HasModuleSyntax,
		RequestedModules: append([]string{}, rec.RequestedOrder...),
		Imports:          make([]ModuleEntryJSON, 0, len(rec.ImportEntries)),
		LocalExports:     exportEntries(rec.LocalExports, fs, mode),
		IndirectExports:  exportEntries(rec.IndirectExports, fs, mode),
		StarExports:      exportEntries(rec.StarExports, fs, mode),
		DynamicImports:   len(rec.DynamicImports),
		ImportMetas:      len(rec.ImportMetas),
	}
	for _, e := range rec.ImportEntries {
		out.Imports = append(out.Imports, ModuleEntryJSON{
			Kind:          importKindNames[e.Kind],
			ModuleRequest: e.ModuleRequest.Name,
			ImportName:    e.ImportName.Name,
			LocalName:     e.LocalName.Name,
			IsType:        e.IsType,
			Location:      makeLocation(e.LocalName.Span, fs, mode, true),
		})
	}
	return out
}

// DumpModuleRecord prints the imports and exports of one file.
func DumpModuleRecord(w io.Writer, rec *semantic.ModuleRecord, fs *source.FileSet, opts DumpOpts) error {
	if rec == nil {
		return fmt.Errorf("no module record")
	}
	out := BuildModuleRecordOutput(rec, fs, opts.PathMode)
	if opts.JSON {
		return writeJSON(w, out)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "module %s (module syntax: %t)\n", out.Path, out.HasModuleSyntax)
	for _, m := range out.RequestedModules {
		fmt.Fprintf(&b, "requests %q\n", m)
	}
	for _, e := range out.Imports {
		fmt.Fprintf(&b, "import %s %s from %q as %s\n", e.Kind, e.ImportName, e.ModuleRequest, e.LocalName)
	}
	writeExports := func(title string, list []ModuleEntryJSON) {
		for _, e := range list {
			fmt.Fprintf(&b, "%s %s", title, e.Kind)
			if e.ExportName != "" {
				fmt.Fprintf(&b, " %s", e.ExportName)
			}
			if e.LocalName != "" {
				fmt.Fprintf(&b, " = %s", e.LocalName)
			}
			if e.ModuleRequest != "" {
				fmt.Fprintf(&b, " from %q", e.ModuleRequest)
				if e.ImportName != "" {
					fmt.Fprintf(&b, " (%s)", e.ImportName)
				}
			}
			b.WriteString("\n")
		}
	}
	writeExports("export", out.LocalExports)
	writeExports("reexport", out.IndirectExports)
	writeExports("star", out.StarExports)
	if out.DynamicImports > 0 || out.ImportMetas > 0 {
		fmt.Fprintf(&b, "dynamic imports: %d, import.meta: %d\n", out.DynamicImports, out.ImportMetas)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
