package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"jsbind/internal/config"
	"jsbind/internal/diagfmt"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	runCleanups()
	return out.String(), errOut.String(), err
}

func TestCheckReportsRedeclaration(t *testing.T) {
	out, _, err := execute(t, "check", "--format", "short", "--path-mode", "basename", "testdata/redeclare.js.json")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "redeclare.js:2:5: ERROR SEM3001")
}

func TestCheckCleanModule(t *testing.T) {
	_, _, err := execute(t, "check", "--format", "json", "testdata/module.js.json")
	require.NoError(t, err)
}

func TestCheckJSONMapsEveryFile(t *testing.T) {
	out, _, err := execute(t, "check", "--format", "json", "--path-mode", "basename",
		"testdata/module.js.json", "testdata/redeclare.js.json")
	require.ErrorIs(t, err, errDiagnostics)

	var decoded map[string]diagfmt.DiagnosticsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), out)
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded["redeclare.js"].Count)
}

func TestCheckSarifSingleRun(t *testing.T) {
	out, _, err := execute(t, "check", "--format", "sarif", "testdata/module.js.json", "testdata/redeclare.js.json")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Equal(t, 1, strings.Count(out, `"version": "2.1.0"`))
	assert.Contains(t, out, `"ruleId": "SEM3001"`)
}

func TestCheckTimings(t *testing.T) {
	_, errOut, err := execute(t, "check", "--format", "short", "--timings", "testdata/module.js.json")
	require.NoError(t, err)
	assert.Contains(t, errOut, "timings:")
}

func TestCheckDirectory(t *testing.T) {
	out, _, err := execute(t, "check", "--format", "pretty", "--color", "off", "--path-mode", "basename", "testdata")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, out, "== module.js ==")
	assert.Contains(t, out, "== redeclare.js ==")
}

func TestCheckRejectsBadFormat(t *testing.T) {
	_, _, err := execute(t, "check", "--format", "xml", "testdata/module.js.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errDiagnostics)
}

func TestSettingsLayering(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(manifest, []byte("[output]\nformat = \"json\"\nmax_diagnostics = 3\n[run]\njobs = 2\n"), 0o600))
	t.Setenv("JSBIND_JOBS", "4")
	t.Setenv("JSBIND_MAX_DIAGNOSTICS", "5")

	root := newRootCmd()
	check, _, err := root.Find([]string{"check"})
	require.NoError(t, err)
	require.NoError(t, check.ParseFlags([]string{"--config", manifest, "--max-diagnostics", "7"}))

	s, err := loadSettings(check)
	require.NoError(t, err)
	assert.Equal(t, "json", s.cfg.Output.Format, "manifest")
	assert.Equal(t, 4, s.cfg.Run.Jobs, "environment over manifest")
	assert.Equal(t, 7, s.cfg.Output.MaxDiagnostics, "flag over environment")
	assert.Equal(t, dir, s.baseDir())
}

func TestScopesCommand(t *testing.T) {
	out, _, err := execute(t, "scopes", "testdata/redeclare.js.json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "scope 1 Program"), out)
}

func TestSymbolsCommandJSON(t *testing.T) {
	out, _, err := execute(t, "symbols", "--json", "testdata/module.js.json")
	require.NoError(t, err)
	var decoded diagfmt.SymbolsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), out)
	names := make([]string, 0, len(decoded.Symbols))
	for _, s := range decoded.Symbols {
		names = append(names, s.Name)
	}
	assert.Subset(t, names, []string{"def", "b", "c", "ns", "main", "local", "other"})
}

func TestModulesCommand(t *testing.T) {
	out, _, err := execute(t, "modules", "--json", "--module-record=false", "testdata/module.js.json")
	require.NoError(t, err)
	var decoded diagfmt.ModuleRecordJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded), out)
	assert.True(t, decoded.HasModuleSyntax)
	assert.Equal(t, []string{"./dep.js", "./ns.js", "./all.js", "./re.js"}, decoded.RequestedModules)
}

func TestDumpReportsUndecodableInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"Program"`), 0o600))
	_, errOut, err := execute(t, "scopes", path)
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, errOut, "DEC2001")
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json", "--hash")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "jsbind", payload.Tool)
	assert.NotEmpty(t, payload.Version)
	assert.NotEmpty(t, payload.GitCommit)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := readUIMode("sometimes")
	assert.Error(t, err)
	assert.True(t, shouldUseTUI(uiModeOn))
	assert.False(t, shouldUseTUI(uiModeOff))
}

func TestTraceFlags(t *testing.T) {
	_, _, err := execute(t, "--trace-level", "loud", "version")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "trace.ndjson")
	_, _, err = execute(t, "--trace-level", "phase", "--trace", path, "check", "--format", "short", "testdata/module.js.json")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "analyze")
}

func TestTraceRingDumpsOnExit(t *testing.T) {
	_, stderr, err := execute(t, "--trace-level", "detail", "--trace-mode", "ring", "check", "--format", "short", "testdata/module.js.json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "analyze")
	assert.Contains(t, stderr, "semantic")
	assert.Nil(t, crashRing)
}

func TestProfileFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	_, _, err := execute(t, "--cpu-profile", path, "version")
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSpanPrinter(t *testing.T) {
	var buf bytes.Buffer
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(&spanPrinter{w: &buf}))
	_, span := provider.Tracer("test").Start(context.Background(), "decode")
	span.End()
	require.NoError(t, provider.Shutdown(context.Background()))
	assert.True(t, strings.HasPrefix(buf.String(), "otel decode span="), buf.String())
	assert.Contains(t, buf.String(), "parent=-")
}

const octalESTree = `{"type":"Program","sourceType":"script","range":[0,27],"body":[
 {"type":"ExpressionStatement","directive":"use strict","range":[0,13],
  "expression":{"type":"Literal","value":"use strict","raw":"\"use strict\"","range":[0,12]}},
 {"type":"VariableDeclaration","kind":"var","range":[14,26],"declarations":[
  {"type":"VariableDeclarator","range":[18,25],
   "id":{"type":"Identifier","name":"n","range":[18,19]},
   "init":{"type":"Literal","value":15,"raw":"017","range":[22,25]}}]}]}`

func TestCheckFixRewritesSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "octal.js")
	require.NoError(t, os.WriteFile(src, []byte("\"use strict\";\nvar n = 017;\n"), 0o600))
	require.NoError(t, os.WriteFile(src+".json", []byte(octalESTree), 0o600))

	_, errOut, err := execute(t, "check", "--format", "short", "--fix", src+".json")
	require.ErrorIs(t, err, errDiagnostics)
	assert.Contains(t, errOut, "(1 edits)")

	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "\"use strict\";\nvar n = 0o17;\n", string(data))
}
