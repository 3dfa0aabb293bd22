package source

import "testing"

func TestSpanContainsEdges(t *testing.T) {
	outer := Span{File: 1, Start: 10, End: 20}
	tests := []struct {
		name  string
		inner Span
		want  bool
	}{
		{"same", outer, true},
		{"inside", Span{File: 1, Start: 12, End: 15}, true},
		{"empty at end", Span{File: 1, Start: 20, End: 20}, true},
		{"crosses start", Span{File: 1, Start: 9, End: 15}, false},
		{"crosses end", Span{File: 1, Start: 15, End: 21}, false},
		{"other file", Span{File: 2, Start: 12, End: 15}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	// спан из другого файла игнорируется
	if got := a.Cover(Span{File: 3, Start: 0, End: 100}); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}

func TestSpanSlice(t *testing.T) {
	content := []byte("let x = 1;")
	if got := (Span{Start: 4, End: 5}).Slice(content); got != "x" {
		t.Errorf("Slice = %q, want %q", got, "x")
	}
	if got := (Span{Start: 8, End: 40}).Slice(content); got != "" {
		t.Errorf("out of range Slice = %q, want empty", got)
	}
	if got := (Span{Start: 6, End: 2}).Slice(content); got != "" {
		t.Errorf("inverted Slice = %q, want empty", got)
	}
	if n := (Span{Start: 3, End: 9}).Len(); n != 6 {
		t.Errorf("Len = %d, want 6", n)
	}
	if !(Span{Start: 3, End: 3}).Empty() {
		t.Error("zero-length span must be empty")
	}
}

func TestToLineCol(t *testing.T) {
	idx := buildLineIndex([]byte("ab\ncd\n\nef"))
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}}, // сам перевод строки
		{3, LineCol{Line: 2, Col: 1}},
		{6, LineCol{Line: 3, Col: 1}},
		{8, LineCol{Line: 4, Col: 2}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
	if got := toLineCol(nil, 4); got != (LineCol{Line: 1, Col: 5}) {
		t.Errorf("single-line toLineCol = %+v", got)
	}
}
