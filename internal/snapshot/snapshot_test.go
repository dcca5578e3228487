package snapshot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"idtab/internal/diag"
	"idtab/internal/ident"
	"idtab/internal/testkit"
)

func TestFromTableMatchesLiveTable(t *testing.T) {
	p := FromTable()
	if p.Schema != SchemaVersion || p.ScopeShift != 3 || p.ScopeMask != 7 {
		t.Fatalf("header = %+v", p)
	}
	if p.LastToken != 375 || p.LastID != uint32(ident.IDLastID) {
		t.Fatalf("LastToken = %d, LastID = %d", p.LastToken, p.LastID)
	}
	if len(p.Entries) != len(ident.Entries()) {
		t.Fatalf("got %d records", len(p.Entries))
	}
	for _, r := range p.Entries {
		if r.Const == "IDIntern" && r.ID != 376 {
			t.Fatalf("IDIntern exported as %d", r.ID)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := FromTable()
	if err := Write(&buf, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if changes := Diff(got, want); len(changes) != 0 {
		t.Fatalf("round trip changed %d entries: %+v", len(changes), changes)
	}
	if got.Joke != ident.JokeEnabled {
		t.Fatalf("Joke = %t", got.Joke)
	}
	if err := testkit.CheckEntryInvariants(got.Table()); err != nil {
		t.Fatalf("decoded table: %v", err)
	}
}

func TestReadRejectsOtherSchema(t *testing.T) {
	p := FromTable()
	p.Schema = SchemaVersion + 1
	raw, err := msgpack.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Read(bytes.NewReader(raw)); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("err = %v, want ErrSchemaMismatch", err)
	}
	if _, err := Read(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Fatalf("garbage decoded")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "idtab.snap")
	if err := Save(path, FromTable()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n := Compare(got, FromTable(), path, nil); n != 0 {
		t.Fatalf("fresh snapshot reports %d errors", n)
	}
	leftovers, _ := filepath.Glob(filepath.Join(filepath.Dir(path), ".idtab-snapshot-*"))
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "none.snap")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func stale() *Payload {
	p := FromTable()
	kept := p.Entries[:0]
	for _, r := range p.Entries {
		switch r.Const {
		case "IDEach":
			r.ID += 8
		case "IDUScore":
			continue
		}
		kept = append(kept, r)
	}
	p.Entries = append(kept, Record{Const: "IDGone", Symbol: "gone", ID: 1000, Class: uint8(ident.ClassDerived)})
	return p
}

func TestDiff(t *testing.T) {
	changes := Diff(stale(), FromTable())
	want := map[string]ChangeKind{"IDEach": Changed, "IDGone": Removed, "IDUScore": Added}
	if len(changes) != len(want) {
		t.Fatalf("got %+v", changes)
	}
	for _, c := range changes {
		if want[c.Const] != c.Kind {
			t.Fatalf("%s: got %s, want %s", c.Const, c.Kind, want[c.Const])
		}
		if c.Kind == Changed && (c.Old != ident.IDEach+8 || c.New != ident.IDEach) {
			t.Fatalf("IDEach change = %+v", c)
		}
	}
}

func TestCompareReports(t *testing.T) {
	bag := diag.NewBag(20)
	errs := Compare(stale(), FromTable(), "old.snap", diag.BagReporter{Bag: bag})
	if errs != 2 {
		t.Fatalf("errors = %d, want 2\n%s", errs, diag.FormatShort(bag.Items(), false))
	}
	codes := map[diag.Code]bool{}
	for _, d := range bag.Items() {
		codes[d.Code] = true
		if d.Primary.File != "old.snap" {
			t.Fatalf("diagnostic at %s", d.Primary)
		}
	}
	for _, c := range []diag.Code{diag.SnpChangedID, diag.SnpRemovedEntry, diag.SnpAddedEntry} {
		if !codes[c] {
			t.Fatalf("missing %s", c.ID())
		}
	}
}

func TestCompareLayout(t *testing.T) {
	old := FromTable()
	old.ScopeShift = 4
	old.Joke = !old.Joke
	bag := diag.NewBag(20)
	if errs := Compare(old, FromTable(), "old.snap", diag.BagReporter{Bag: bag}); errs != 1 {
		t.Fatalf("errors = %d, want 1", errs)
	}
	if !bag.HasWarnings() {
		t.Fatalf("joke flag difference not reported")
	}

	old = FromTable()
	old.Schema = 0
	if errs := Compare(old, FromTable(), "old.snap", nil); errs != 1 {
		t.Fatalf("schema difference: errors = %d, want 1", errs)
	}
}
