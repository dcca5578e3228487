package diag

import "testing"

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(NewError(VerLiteralMismatch, Pos{File: "parse.h", Line: i + 1}, "drift"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Fatalf("len=%d cap=%d, want 2/2", b.Len(), b.Cap())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected errors and warnings to be reported")
	}
}

func TestBagClampsLimit(t *testing.T) {
	if got := NewBag(-5).Cap(); got != 0 {
		t.Fatalf("Cap() = %d, want 0", got)
	}
	if got := NewBag(1 << 20).Cap(); got != ^uint16(0) {
		t.Fatalf("Cap() = %d, want %d", got, ^uint16(0))
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, VerIDCollision, Pos{File: "b.h", Line: 1}, "w"))
	b.Add(NewError(VerTokenMissing, Pos{File: "a.h", Line: 9}, "missing"))
	b.Add(NewError(VerLiteralMismatch, Pos{File: "a.h", Line: 9}, "mismatch"))
	b.Add(NewError(VerLiteralMismatch, Pos{File: "a.h", Line: 9}, "mismatch"))
	b.Dedup()
	b.Sort()

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items after dedup, want 3", len(items))
	}
	if items[0].Code != VerLiteralMismatch || items[1].Code != VerTokenMissing || items[2].Primary.File != "b.h" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(VerTokenMissing, Pos{}, "one"))
	other := NewBag(2)
	other.Add(NewError(VerTokenMissing, Pos{}, "two"))
	other.Add(NewError(VerTokenMissing, Pos{}, "three"))
	a.Merge(other)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("len=%d cap=%d after merge, want 3/3", a.Len(), a.Cap())
	}
}

func TestCountingReporter(t *testing.T) {
	bag := NewBag(1)
	r := &CountingReporter{Next: BagReporter{Bag: bag}}
	ReportError(r, VerLiteralMismatch, Pos{}, "a").Emit()
	ReportError(r, VerLiteralMismatch, Pos{}, "b").Emit()
	ReportWarning(r, VerIDCollision, Pos{}, "c").Emit()
	if r.Errors != 2 || r.Warnings != 1 {
		t.Fatalf("errors=%d warnings=%d, want 2/1", r.Errors, r.Warnings)
	}
	if bag.Len() != 1 {
		t.Fatalf("bag holds %d, want 1", bag.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	for i := 0; i < 3; i++ {
		r.Report(VerTokenMissing, SevError, Pos{File: "x.h", Line: 2}, "missing tCMP", nil)
	}
	if bag.Len() != 1 {
		t.Fatalf("bag holds %d, want 1", bag.Len())
	}
}

func TestFormatShort(t *testing.T) {
	diags := []Diagnostic{
		NewError(VerLiteralMismatch, Pos{File: "parse.h", Line: 12}, "tCMP is 325\nwant 324").
			WithNote(Pos{File: "parse.h", Line: 40}, "tEQ also 325"),
		New(SevWarning, VerIDCollision, Pos{}, "builtin"),
	}
	expected := "warning VER1004 <builtin> builtin\n" +
		"error VER1001 parse.h:12 tCMP is 325 want 324\n" +
		"note VER1001 parse.h:40 tEQ also 325"
	if got := FormatShort(diags, true); got != expected {
		t.Fatalf("unexpected short output:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
