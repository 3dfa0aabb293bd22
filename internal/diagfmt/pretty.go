package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"jsbind/internal/diag"
	"jsbind/internal/source"
)

const tabWidth = 4

type palette struct {
	sev      map[diag.Severity]*color.Color
	code     *color.Color
	path     *color.Color
	gutter   *color.Color
	caret    *color.Color
	note     *color.Color
	fix      *color.Color
	removed  *color.Color
	inserted *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
		},
		code:     mk(color.Bold),
		path:     mk(color.Bold),
		gutter:   mk(color.FgBlue),
		caret:    mk(color.FgRed, color.Bold),
		note:     mk(color.FgCyan),
		fix:      mk(color.FgGreen),
		removed:  mk(color.FgRed),
		inserted: mk(color.FgGreen),
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	sev := p.sev[d.Severity]
	if sev == nil {
		sev = p.sev[diag.SevError]
	}
	header := fmt.Sprintf("%s %s: %s", sev.Sprint(d.Severity.String()), p.code.Sprint(d.Code.ID()), d.Message)
	// timings carry no location
	located := d.Code != diag.ObsTimings
	if located {
		header = p.path.Sprint(location(fs, d.Primary, opts.PathMode)) + ": " + header
	}
	fmt.Fprintln(w, wrap(header, int(opts.Width), 2))

	if located {
		writeSnippet(w, fs, d.Primary, int(opts.Context), p)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			msg := n.Msg
			if located {
				msg = location(fs, n.Span, opts.PathMode) + ": " + msg
			}
			fmt.Fprintln(w, "  "+p.note.Sprint("note")+": "+wrap(msg, int(opts.Width)-8, 8))
		}
	}

	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintln(w, "  "+p.fix.Sprint("fix")+": "+fix.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, edit := range fix.Edits {
				preview, err := buildFixEditPreview(fs, edit)
				if err != nil {
					fmt.Fprintf(w, "    %s\n", "replace with `"+edit.NewText+"`")
					continue
				}
				for _, line := range preview.before {
					fmt.Fprintln(w, "    "+p.removed.Sprint("- "+expandTabs(line)))
				}
				for _, line := range preview.after {
					fmt.Fprintln(w, "    "+p.inserted.Sprint("+ "+expandTabs(line)))
				}
			}
		}
	}
}

// location returns path:line:col for span.
func location(fs *source.FileSet, span source.Span, mode PathMode) string {
	start, _ := fs.Resolve(span)
	return formatPath(fs, span.File, mode) + ":" + strconv.FormatUint(uint64(start.Line), 10) + ":" + strconv.FormatUint(uint64(start.Col), 10)
}

func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, context int, p palette) {
	f := fs.Get(span.File)
	if f == nil || f.Flags&source.FileNoText != 0 || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(span)
	if start.Line == 0 {
		return
	}
	first := uint32(max(1, int(start.Line)-context))
	last := start.Line + uint32(max(context, 0))
	gutterWidth := len(strconv.FormatUint(uint64(last), 10))
	blank := strings.Repeat(" ", gutterWidth)

	for ln := first; ln <= last; ln++ {
		if ln > lineCount(f) {
			break
		}
		line := f.GetLine(ln)
		num := fmt.Sprintf("%*d", gutterWidth, ln)
		fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), expandTabs(line))
		if ln != start.Line {
			continue
		}
		fromCol := int(start.Col) - 1
		toCol := len(line)
		if end.Line == start.Line {
			toCol = int(end.Col) - 1
		}
		fromCol = min(max(fromCol, 0), len(line))
		toCol = min(max(toCol, fromCol), len(line))
		pad := runewidth.StringWidth(expandTabs(line[:fromCol]))
		width := max(1, runewidth.StringWidth(expandTabs(line[fromCol:toCol])))
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, " %s %s %s%s\n", blank, p.gutter.Sprint("|"), strings.Repeat(" ", pad), p.caret.Sprint(marker))
	}
}

// lineCount does not count the empty tail after a final newline.
func lineCount(f *source.File) uint32 {
	n := uint32(len(f.LineIdx)) // #nosec G115 -- bounded by the file size
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// wrap wraps s to width columns indenting continuation lines; width <= 0
// leaves s unchanged.
func wrap(s string, width int, ind uint) string {
	if width <= 0 {
		return s
	}
	wrapped := wordwrap.String(s, width)
	first, rest, ok := strings.Cut(wrapped, "\n")
	if !ok {
		return wrapped
	}
	return first + "\n" + indent.String(rest, ind)
}

// Short prints one line per diagnostic: path:line:col: SEV CODE: message.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		sev := p.sev[d.Severity]
		if sev == nil {
			sev = p.sev[diag.SevError]
		}
		line := fmt.Sprintf("%s %s: %s", sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message)
		if d.Code != diag.ObsTimings {
			line = location(fs, d.Primary, opts.PathMode) + ": " + line
		}
		fmt.Fprintln(w, line)
	}
}
