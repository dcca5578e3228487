package token

import "testing"

func TestKindNumbering(t *testing.T) {
	cases := map[Kind]int{
		KeywordClass:     258,
		KeywordEncoding:  306,
		Identifier:       307,
		RegexpEnd:        320,
		UPlus:            321,
		Cmp:              324,
		Geq:              328,
		RShft:            339,
		Lambda:           352,
		LamBeg:           362,
		IDNull:           365,
		IDRespondTo:      366,
		IDCoreSetPostexe: 374,
		LastToken:        375,
	}
	for k, want := range cases {
		if int(k) != want {
			t.Fatalf("%s = %d, want %d", k, int(k), want)
		}
	}
}

func TestKindNames(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.String()
		if name == "" {
			t.Fatalf("kind %d has no name", int(k))
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q used by %d and %d", name, int(prev), int(k))
		}
		seen[name] = k
		got, ok := Lookup(name)
		if !ok || got != k {
			t.Fatalf("Lookup(%q) = %d, %v; want %d", name, int(got), ok, int(k))
		}
	}
	if len(seen) != int(LastToken-FirstKind+1) {
		t.Fatalf("got %d kinds, want %d", len(seen), int(LastToken-FirstKind+1))
	}
}

func TestKindInvalid(t *testing.T) {
	for _, k := range []Kind{0, '+', FirstKind - 1, LastToken + 1} {
		if k.IsValid() {
			t.Fatalf("%d must not be valid", int(k))
		}
	}
	if got := Kind(43).String(); got != "Kind(43)" {
		t.Fatalf("String() = %q", got)
	}
	if _, ok := Lookup("tNOPE"); ok {
		t.Fatalf("Lookup of unknown name succeeded")
	}
}
