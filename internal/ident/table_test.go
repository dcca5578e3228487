package ident

import "testing"

func TestLookupOperators(t *testing.T) {
	cases := map[string]ID{
		"<=>": IDCmp,
		"+":   IDPlus,
		"==":  IDEq,
		"===": IDEqq,
		"[]=": IDASet,
		"`":   IDBackquote,
		"->":  TokLambda,
		"..":  IDDot2,
	}
	for sym, want := range cases {
		got, ok := Lookup(sym)
		if !ok || got != want {
			t.Fatalf("Lookup(%q) = %d, %v; want %d", sym, got, ok, want)
		}
		name, ok := Name(want)
		if !ok || name != sym {
			t.Fatalf("Name(%d) = %q, %v; want %q", want, name, ok, sym)
		}
	}
	if _, ok := Lookup("no_such_method"); ok {
		t.Fatalf("Lookup of unknown name succeeded")
	}
	if _, ok := Name(IDNull); ok {
		t.Fatalf("IDNull has no name")
	}
}

func TestEntryOfPrefersReserved(t *testing.T) {
	e, ok := EntryOf(IDCmp)
	if !ok {
		t.Fatalf("EntryOf(IDCmp) not found")
	}
	if e.Class != ClassReserved || e.Const != "TokCmp" || e.Grammar != "tCMP" {
		t.Fatalf("EntryOf(IDCmp) = %+v", e)
	}
	if _, ok := e.Scope(); ok {
		t.Fatalf("reserved entry must not report a scope")
	}
	alias, ok := LookupConst("IDCmp")
	if !ok || alias.Class != ClassOperator || alias.ID != e.ID {
		t.Fatalf("LookupConst(IDCmp) = %+v, %v", alias, ok)
	}
}

func TestEntriesByClass(t *testing.T) {
	all := Entries()
	reserved := EntriesOf(ClassReserved)
	operators := EntriesOf(ClassOperator)
	derived := EntriesOf(ClassDerived)
	if len(reserved) != len(reservedTokens) || len(operators) != len(operatorAliases) || len(derived) != len(derivedNames) {
		t.Fatalf("class sizes %d/%d/%d", len(reserved), len(operators), len(derived))
	}
	if len(all) != len(reserved)+len(operators)+len(derived) {
		t.Fatalf("Entries() = %d", len(all))
	}
	for _, e := range derived {
		if s, ok := e.Scope(); !ok || s != Local {
			t.Fatalf("%s scope = %s, %v", e.Const, s, ok)
		}
	}
	// callers get a copy
	all[0].ID = 0
	if Entries()[0].ID == 0 {
		t.Fatalf("Entries() exposes the backing table")
	}
}

func TestParseEntryClass(t *testing.T) {
	for _, c := range []EntryClass{ClassReserved, ClassOperator, ClassDerived} {
		got, err := ParseEntryClass(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseEntryClass(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseEntryClass("keyword"); err == nil {
		t.Fatalf("ParseEntryClass(keyword) succeeded")
	}
}
