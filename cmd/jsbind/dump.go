package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jsbind/internal/diagfmt"
	"jsbind/internal/driver"
	"jsbind/internal/source"
)

type dumpFunc func(w io.Writer, r *driver.FileResult, fs *source.FileSet, opts diagfmt.DumpOpts) error

func newScopesCmd() *cobra.Command {
	return newDumpCmd("scopes", "Print the scope tree with the bindings of every scope",
		func(w io.Writer, r *driver.FileResult, fs *source.FileSet, opts diagfmt.DumpOpts) error {
			return diagfmt.DumpScopes(w, r.Semantic, fs, opts)
		})
}

func newSymbolsCmd() *cobra.Command {
	return newDumpCmd("symbols", "Print the symbol table, references and unresolved names",
		func(w io.Writer, r *driver.FileResult, fs *source.FileSet, opts diagfmt.DumpOpts) error {
			return diagfmt.DumpSymbols(w, r.Semantic, fs, opts)
		})
}

func newModulesCmd() *cobra.Command {
	return newDumpCmd("modules", "Print the ES module record (imports, exports, requests)",
		func(w io.Writer, r *driver.FileResult, fs *source.FileSet, opts diagfmt.DumpOpts) error {
			return diagfmt.DumpModuleRecord(w, r.Semantic.ModuleRecord, fs, opts)
		})
}

func newDumpCmd(name, short string, dump dumpFunc) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   name + " [flags] <file.json>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, name, asJSON, dump)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")
	return cmd
}

// runDump analyses the inputs with the semantic model kept and prints one
// dump per file. Files that could not be analysed get their diagnostics
// printed to stderr instead.
func runDump(cmd *cobra.Command, args []string, name string, asJSON bool, dump dumpFunc) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	paths, err := driver.ListFiles(args)
	if err != nil {
		return fmt.Errorf("failed to list inputs: %w", err)
	}
	opts := analysisOptions(cmd, s)
	opts.NeedSemantic = true
	switch name {
	case "modules":
		opts.ModuleRecord = true
	case "symbols":
		opts.JSDoc = true
	}
	// с NeedSemantic кеш не читается
	opts.Cache = nil

	fs, results, err := driver.AnalyzeFiles(ctxOrBackground(cmd), paths, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	dumpOpts := diagfmt.DumpOpts{JSON: asJSON, PathMode: s.pathMode}
	failed := false
	for idx := range results {
		r := &results[idx]
		if r.Semantic == nil {
			failed = true
			diagfmt.Short(cmd.ErrOrStderr(), r.Bag, fs, diagfmt.PrettyOpts{PathMode: s.pathMode})
			continue
		}
		if len(results) > 1 && !asJSON {
			writeHeader(out, idx, displayPath(fs, r, s))
		}
		if err := dump(out, r, fs, dumpOpts); err != nil {
			return fmt.Errorf("%s: %w", r.Path, err)
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}
