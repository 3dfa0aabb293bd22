package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"jsbind/internal/diag"
	"jsbind/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("\"use strict\";\nwith (o) {}\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynWithInStrict, source.Span{File: fileID, Start: 14, End: 25}, "'with' statements are not allowed in strict mode"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.js:2:1"},
		{"Relative path", PathModeRelative, "src/test.js:2:1"},
		{"Basename only", PathModeBasename, "test.js:2:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR SYN4001") {
				t.Errorf("Expected severity and code in output, got:\n%s", output)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let a = 1;\nlet a = 2;\n")
	fileID := fs.AddVirtual("dup.js", content)

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SemaRedeclaration, source.Span{File: fileID, Start: 15, End: 16}, "identifier 'a' has already been declared").
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "'a' was first declared here"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true})
	want := strings.Join([]string{
		"dup.js:2:5: ERROR SEM3001: identifier 'a' has already been declared",
		" 1 | let a = 1;",
		" 2 | let a = 2;",
		"   |     ^",
		"  note: dup.js:1:5: 'a' was first declared here",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyCaretsUseDisplayWidth(t *testing.T) {
	fs := source.NewFileSet()
	// "日本" занимает 4 колонки, но 6 байт
	content := []byte("x = \"日本\" + 017;")
	fileID := fs.AddVirtual("wide.js", content)
	start := uint32(strings.Index(string(content), "017"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynLegacyOctal, source.Span{File: fileID, Start: start, End: start + 3}, "octal literals are not allowed in strict mode"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected snippet, got:\n%s", buf.String())
	}
	caret := lines[2]
	if !strings.HasSuffix(caret, "|              ^~~") {
		t.Errorf("caret line misaligned: %q", caret)
	}
}

func TestPrettyFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("octal.js", []byte("\"use strict\";\nvar n = 017;\n"))
	span := source.Span{File: fileID, Start: 22, End: 25}

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynLegacyOctal, span, "octal literals are not allowed in strict mode").
		WithFix("use the 0o prefix", diag.FixEdit{Span: span, NewText: "0o17"}))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowFixes: true, ShowPreview: true})
	out := buf.String()
	for _, want := range []string{"  fix: use the 0o prefix", "    - var n = 017;", "    + var n = 0o17;"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestPrettySkipsSnippetWithoutText(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.Add("gone.js", nil, source.FileNoText)
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynIllegalBreak, source.Span{File: fileID, Start: 3, End: 9}, "illegal break statement"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 2, PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "|") {
		t.Errorf("expected no snippet, got:\n%s", buf.String())
	}
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("break;\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynIllegalBreak, source.Span{File: fileID, Start: 0, End: 6}, "illegal break statement"))
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "timings (file): total 1.00 ms"))

	var buf bytes.Buffer
	Short(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	want := "a.js:1:1: ERROR SYN4008: illegal break statement\nINFO OBS6001: timings (file): total 1.00 ms\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9, 2)
	if got != "one two\n  three\n  four" {
		t.Errorf("unexpected wrap: %q", got)
	}
	if wrap("unchanged", 0, 2) != "unchanged" {
		t.Error("zero width must not wrap")
	}
}

func TestParsePathMode(t *testing.T) {
	for _, m := range []PathMode{PathModeAuto, PathModeAbsolute, PathModeRelative, PathModeBasename} {
		got, err := ParsePathMode(m.String())
		if err != nil || got != m {
			t.Errorf("round trip of %v: got %v, %v", m, got, err)
		}
	}
	if _, err := ParsePathMode("nope"); err == nil {
		t.Error("expected an error")
	}
}
