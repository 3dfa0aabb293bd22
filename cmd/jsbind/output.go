package main

import (
	"encoding/json"
	"fmt"
	"io"

	"jsbind/internal/diag"
	"jsbind/internal/diagfmt"
	"jsbind/internal/driver"
	"jsbind/internal/source"
	"jsbind/internal/version"
)

// renderDiagnostics prints every file's bag in the configured format.
// A single input prints without per-file headers; JSON then emits one
// object instead of a path-keyed map.
func renderDiagnostics(w io.Writer, fs *source.FileSet, results []driver.FileResult, s *settings, flags checkFlags) error {
	showFixes := flags.suggest || flags.preview
	prettyOpts := diagfmt.PrettyOpts{
		Color:       s.useColor,
		Context:     2,
		PathMode:    s.pathMode,
		Width:       100,
		ShowNotes:   flags.withNotes,
		ShowFixes:   showFixes,
		ShowPreview: flags.preview,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         s.pathMode,
		IncludeNotes:     flags.withNotes,
		IncludeFixes:     showFixes,
		IncludePreviews:  flags.preview,
	}

	switch s.cfg.Output.Format {
	case "pretty":
		multi := len(results) > 1
		for idx := range results {
			r := &results[idx]
			if multi {
				writeHeader(w, idx, displayPath(fs, r, s))
			}
			diagfmt.Pretty(w, r.Bag, fs, prettyOpts)
		}
	case "short":
		for idx := range results {
			diagfmt.Short(w, results[idx].Bag, fs, prettyOpts)
		}
	case "json":
		if len(results) == 1 {
			return diagfmt.JSON(w, results[0].Bag, fs, jsonOpts)
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for idx := range results {
			r := &results[idx]
			output[displayPath(fs, r, s)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	case "sarif":
		// один run на весь прогон: FileSet общий
		all := diag.NewBag(0)
		for idx := range results {
			all.Merge(results[idx].Bag)
		}
		meta := diagfmt.SarifRunMeta{ToolName: "jsbind", ToolVersion: version.Version}
		if err := diagfmt.Sarif(w, all, fs, meta); err != nil {
			return fmt.Errorf("failed to write SARIF: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", s.cfg.Output.Format)
	}
	return nil
}
