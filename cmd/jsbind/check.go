package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jsbind/internal/diag"
	"jsbind/internal/driver"
	"jsbind/internal/fix"
	"jsbind/internal/source"
	"jsbind/internal/trace"
)

type checkFlags struct {
	withNotes bool
	suggest   bool
	preview   bool
	ui        string
	fix       bool
	fixID     string
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags
	cmd := &cobra.Command{
		Use:   "check [flags] <file.json|directory>...",
		Short: "Report early errors and binding diagnostics",
		Long: `Analyze ESTree JSON files and print their diagnostics. Directories are
searched for *.json files. The exit status is 1 when any error is reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.withNotes, "with-notes", false, "include diagnostic notes in output")
	cmd.Flags().BoolVar(&flags.suggest, "suggest", false, "include fix suggestions in output")
	cmd.Flags().BoolVar(&flags.preview, "preview", false, "show a before/after preview of suggested fixes")
	cmd.Flags().StringVar(&flags.ui, "ui", "off", "progress UI for multi-file runs (auto|on|off)")
	cmd.Flags().BoolVar(&flags.fix, "fix", false, "apply the first suggested fix of every diagnostic to the source files")
	cmd.Flags().StringVar(&flags.fixID, "fix-id", "", "apply only the fix with this id (see --format json --suggest)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags checkFlags) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	mode, err := readUIMode(flags.ui)
	if err != nil {
		return err
	}
	paths, err := driver.ListFiles(args)
	if err != nil {
		return fmt.Errorf("failed to list inputs: %w", err)
	}
	if len(paths) == 0 {
		return errors.New("no *.json inputs found")
	}

	opts := analysisOptions(cmd, s)
	opts.Timings = s.timings

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	useTUI := !s.quiet && len(paths) > 1 && shouldUseTUI(mode) &&
		(s.cfg.Output.Format == "pretty" || s.cfg.Output.Format == "short")
	ctx := ctxOrBackground(cmd)
	if useTUI {
		fs, results, err = runAnalyzeWithUI(ctx, "jsbind check", paths, opts)
	} else {
		fs, results, err = driver.AnalyzeFiles(ctx, paths, opts)
	}
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if err := renderDiagnostics(out, fs, results, s, flags); err != nil {
		return err
	}
	if flags.fix || flags.fixID != "" {
		if err := applyFixes(cmd.ErrOrStderr(), fs, results, flags, s.quiet); err != nil {
			return err
		}
	}
	if s.timings && !s.quiet {
		report := driver.RunTimings(results)
		fmt.Fprint(cmd.ErrOrStderr(), report.Summary())
	}

	for _, r := range results {
		if r.Bag.HasErrors() {
			return errDiagnostics
		}
	}
	return nil
}

// analysisOptions maps the effective settings onto driver options.
func analysisOptions(cmd *cobra.Command, s *settings) driver.Options {
	opts := driver.OptionsFromConfig(s.cfg)
	opts.BaseDir = s.baseDir()
	opts.Tracer = trace.FromContext(ctxOrBackground(cmd))
	if s.cfg.Run.Cache {
		cache, err := driver.OpenDiskCache("jsbind")
		if err != nil {
			if !s.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}
	return opts
}

func ctxOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func displayPath(fs *source.FileSet, r *driver.FileResult, s *settings) string {
	if f := fs.Get(r.FileID); f != nil {
		return f.FormatPath(s.pathMode.String(), fs.BaseDir())
	}
	return r.Path
}

// applyFixes rewrites the source texts. The ESTree inputs are not touched
// and are stale afterwards.
func applyFixes(w io.Writer, fs *source.FileSet, results []driver.FileResult, flags checkFlags, quiet bool) error {
	var diagnostics []diag.Diagnostic
	for idx := range results {
		diagnostics = append(diagnostics, results[idx].Bag.Items()...)
	}
	opts := fix.ApplyOptions{Mode: fix.ApplyModeAll}
	if flags.fixID != "" {
		opts = fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: flags.fixID}
	}
	res, err := fix.Apply(fs, diagnostics, opts)
	if errors.Is(err, fix.ErrNoFixes) {
		if !quiet {
			fmt.Fprintln(w, "no applicable fixes")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply fixes: %w", err)
	}
	if quiet {
		return nil
	}
	for _, c := range res.FileChanges {
		fmt.Fprintf(w, "fixed %s (%d edits)\n", c.Path, c.EditCount)
	}
	for _, sk := range res.Skipped {
		fmt.Fprintf(w, "skipped %s: %s\n", sk.ID, sk.Reason)
	}
	fmt.Fprintln(w, "note: regenerate the ESTree dumps of the fixed files")
	return nil
}

func writeHeader(w io.Writer, idx int, path string) {
	if idx > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "== %s ==\n", path)
}
