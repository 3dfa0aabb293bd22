package diag

import (
	"testing"

	"jsbind/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(3)
	r := BagReporter{Bag: bag}

	ReportWarning(r, SynLegacyOctal, source.Span{Start: 9, End: 10}, "octal").Emit()
	ReportError(r, SemaRedeclaration, source.Span{Start: 4, End: 5}, "dup").
		WithNote(source.Span{Start: 0, End: 1}, "previous declaration here").
		Emit()
	ReportError(r, SynWithInStrict, source.Span{Start: 4, End: 5}, "with").Emit()
	ReportError(r, SynIllegalBreak, source.Span{Start: 20, End: 25}, "dropped").Emit()

	if bag.Len() != 3 {
		t.Fatalf("limit not enforced: %d", bag.Len())
	}
	bag.Sort()
	items := bag.Items()
	if items[0].Code != SemaRedeclaration || items[1].Code != SynWithInStrict || items[2].Code != SynLegacyOctal {
		t.Fatalf("unexpected order: %v %v %v", items[0].Code, items[1].Code, items[2].Code)
	}
	if len(items[0].Notes) != 1 || items[0].Notes[0].Msg != "previous declaration here" {
		t.Fatalf("note lost: %+v", items[0].Notes)
	}
	if !bag.HasErrors() || bag.Count(SynLegacyOctal) != 1 {
		t.Fatalf("HasErrors/Count mismatch")
	}
}

func TestEmitOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, SynIllegalBreak, source.Span{}, "x")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("emitted %d times", bag.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	for range 3 {
		ReportError(r, SemaRedeclaration, source.Span{Start: 1, End: 2}, "dup").Emit()
	}
	ReportError(r, SemaRedeclaration, source.Span{Start: 3, End: 4}, "dup").Emit()
	if bag.Len() != 2 {
		t.Fatalf("want 2 unique diagnostics, got %d", bag.Len())
	}
	if r.Suppressed() != 2 {
		t.Errorf("Suppressed() = %d, want 2", r.Suppressed())
	}
}

func TestSeverityString(t *testing.T) {
	if SevWarning.String() != "WARNING" || Severity(9).String() != "UNKNOWN" {
		t.Errorf("unexpected names: %s %s", SevWarning, Severity(9))
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		SemaRedeclaration:  "SEM3001",
		SynWithInStrict:    "SYN4001",
		TSInterfaceExtends: "TS5001",
		DecUnknownNode:     "DEC2002",
		InternalInvariant:  "INT9001",
		Code(7777):         "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %s, want %s", code, got, want)
		}
	}
}
