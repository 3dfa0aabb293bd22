package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsbind/internal/version"
)

// errDiagnostics signals that errors were reported; the diagnostics are
// already printed, so cobra must stay silent about it.
var errDiagnostics = errors.New("errors reported")

// newRootCmd assembles the command tree. Every call returns fresh flag sets.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jsbind",
		Short: "Scope and symbol analysis for JavaScript and TypeScript",
		Long: `jsbind binds ESTree JSON dumps of JavaScript/TypeScript programs:
it builds the scope tree and symbol table, resolves references, collects
the ES module record and reports early errors.

Inputs are *.json ESTree files; the source text is read from the same
path without ".json" when it exists.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			stopProfiling, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			pushCleanup(stopProfiling)
			stopTracing, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			pushCleanup(stopTracing)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			runCleanups()
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to jsbind.toml (default: nearest one upwards)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	pf.String("format", "pretty", "output format (pretty|short|json|sarif)")
	pf.Int("jobs", 0, "max parallel workers (0=auto)")
	pf.Bool("cache", false, "reuse per-file results from the disk cache")
	pf.String("path-mode", "auto", "how file paths are printed (auto|absolute|relative|basename)")
	pf.String("source-type", "auto", "script or module goal (auto|script|module)")
	pf.Bool("module-record", true, "collect the ES module record")
	pf.Bool("early-errors", true, "report early errors")
	pf.Bool("typescript", true, "run TypeScript-specific checks")
	addTraceFlags(root)
	addProfileFlags(root)

	root.AddCommand(newCheckCmd())
	root.AddCommand(newScopesCmd())
	root.AddCommand(newSymbolsCmd())
	root.AddCommand(newModulesCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			dumpCrashRing(os.Stderr)
			panic(r)
		}
	}()
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "jsbind: %v\n", err)
		}
		runCleanups()
		os.Exit(1)
	}
}

// cleanups run in reverse order once the command is done. PersistentPostRun
// is skipped when a command fails, so main runs them as well.
var cleanups []func()

func pushCleanup(f func()) { cleanups = append(cleanups, f) }

func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
