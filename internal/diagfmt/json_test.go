package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"jsbind/internal/diag"
	"jsbind/internal/source"
)

func octalBag() (*source.FileSet, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("src/octal.js", []byte("\"use strict\";\nvar n = 017;\n"))
	span := source.Span{File: fileID, Start: 22, End: 25}
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynLegacyOctal, span, "octal literals are not allowed in strict mode").
		WithNote(source.Span{File: fileID, Start: 0, End: 13}, "strict mode starts here").
		WithFix("use the 0o prefix", diag.FixEdit{Span: span, NewText: "0o17"}))
	bag.Add(diag.NewError(diag.SynWithInStrict, source.Span{File: fileID, Start: 0, End: 1}, "second"))
	return fs, bag
}

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs, bag := octalBag()

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludePreviews:  true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 2 || len(output.Diagnostics) != 2 {
		t.Fatalf("Expected 2 diagnostics, got %d", output.Count)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN4018" {
		t.Errorf("unexpected severity/code: %s %s", d.Severity, d.Code)
	}
	if d.Title != diag.SynLegacyOctal.Title() {
		t.Errorf("unexpected title %q", d.Title)
	}
	want := LocationJSON{File: "octal.js", StartByte: 22, EndByte: 25, StartLine: 2, StartCol: 9, EndLine: 2, EndCol: 12}
	if d.Location != want {
		t.Errorf("location = %+v, want %+v", d.Location, want)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartLine != 1 {
		t.Errorf("unexpected notes: %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("unexpected fixes: %+v", d.Fixes)
	}
	if d.Fixes[0].ID != "SYN4018-0-22-0" {
		t.Errorf("unexpected fix id %q", d.Fixes[0].ID)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.OldText != "017" || edit.NewText != "0o17" {
		t.Errorf("unexpected edit: %+v", edit)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != "var n = 0o17;" {
		t.Errorf("unexpected preview: %+v", edit.AfterLines)
	}
}

func TestJSONMaxAndDefaults(t *testing.T) {
	fs, bag := octalBag()
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1, PathMode: PathModeBasename})
	if out.Count != 1 {
		t.Fatalf("Expected count=1, got %d", out.Count)
	}
	if out.Truncated != 1 || out.Errors != 2 || out.Warnings != 0 {
		t.Errorf("unexpected totals: truncated=%d errors=%d warnings=%d", out.Truncated, out.Errors, out.Warnings)
	}
	d := out.Diagnostics[0]
	if d.Notes != nil || d.Fixes != nil {
		t.Errorf("notes and fixes must be opt-in: %+v", d)
	}
	if d.Location.StartLine != 0 {
		t.Errorf("positions must be opt-in: %+v", d.Location)
	}
}

func TestJSONTimingNotesAlwaysIncluded(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.js", nil)
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "timings").WithNote(source.Span{}, `{"kind":"file"}`))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("timing payload missing: %+v", out.Diagnostics[0])
	}
}

func TestSarif(t *testing.T) {
	fs, bag := octalBag()
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "timings"))

	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "jsbind", ToolVersion: "1.0.0", InvocationArgs: []string{"check"}}); err != nil {
		t.Fatalf("Sarif() error: %v", err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid SARIF: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected log: %+v", log)
	}
	run := log.Runs[0]
	if len(run.Results) != 2 {
		t.Fatalf("expected timings to be skipped, got %d results", len(run.Results))
	}
	if len(run.Tool.Driver.Rules) != 2 || run.Tool.Driver.Rules[0].ID != "SYN4001" {
		t.Errorf("unexpected rules: %+v", run.Tool.Driver.Rules)
	}
	r := run.Results[0]
	if r.Level != "error" || r.RuleID != "SYN4018" {
		t.Errorf("unexpected result: %+v", r)
	}
	region := r.Locations[0].PhysicalLocation.Region
	if region.StartLine != 2 || region.StartColumn != 9 || region.ByteOffset != 22 || region.ByteLength != 3 {
		t.Errorf("unexpected region: %+v", region)
	}
	if len(r.RelatedLocations) != 1 || r.RelatedLocations[0].Message.Text != "strict mode starts here" {
		t.Errorf("unexpected related locations: %+v", r.RelatedLocations)
	}
}
