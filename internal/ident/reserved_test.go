package ident

import (
	"testing"

	"idtab/internal/token"
)

// tokenizerFixture is the grammar numbering the reserved literals were taken
// from, spelled out independently of both this package and internal/token.
var tokenizerFixture = map[string]int{
	"tUPLUS": 321, "tUMINUS": 322, "tPOW": 323, "tCMP": 324, "tEQ": 325,
	"tEQQ": 326, "tNEQ": 327, "tGEQ": 328, "tLEQ": 329, "tANDOP": 330,
	"tOROP": 331, "tMATCH": 332, "tNMATCH": 333, "tDOT2": 334, "tDOT3": 335,
	"tAREF": 336, "tASET": 337, "tLSHFT": 338, "tRSHFT": 339, "tLAMBDA": 352,
	"idNULL": 365, "idRespond_to": 366, "idIFUNC": 367, "idCFUNC": 368,
	"id_core_set_method_alias": 369, "id_core_set_variable_alias": 370,
	"id_core_undef_method": 371, "id_core_define_method": 372,
	"id_core_define_singleton_method": 373, "id_core_set_postexe": 374,
	"tLAST_TOKEN": 375,
}

func TestReservedMatchesTokenizerFixture(t *testing.T) {
	reserved := Reserved()
	if len(reserved) != len(tokenizerFixture) {
		t.Fatalf("got %d reserved literals, fixture has %d", len(reserved), len(tokenizerFixture))
	}
	for _, r := range reserved {
		want, ok := tokenizerFixture[r.Grammar]
		if !ok {
			t.Fatalf("%s (%s) missing from fixture", r.Const, r.Grammar)
		}
		if int(r.Value) != want {
			t.Fatalf("%s = %d, fixture says %s = %d", r.Const, r.Value, r.Grammar, want)
		}
	}
	if TokGeq != 328 {
		t.Fatalf("TokGeq = %d, want 328", TokGeq)
	}
}

func TestReservedMatchesTokenPackage(t *testing.T) {
	for _, r := range Reserved() {
		k, ok := token.Lookup(r.Grammar)
		if !ok {
			t.Fatalf("token package does not declare %s", r.Grammar)
		}
		if int(k) != int(r.Value) {
			t.Fatalf("token.%s = %d, %s = %d", r.Token, int(k), r.Const, r.Value)
		}
	}
}

func TestReservedLiteralsDistinct(t *testing.T) {
	seen := make(map[ID]string)
	for _, r := range Reserved() {
		if prev, dup := seen[r.Value]; dup {
			t.Fatalf("%s and %s share %d", prev, r.Const, r.Value)
		}
		seen[r.Value] = r.Const
	}
}

func TestOperatorAliasesAreRawValues(t *testing.T) {
	cmp, ok := Lookup("<=>")
	if !ok || cmp != TokCmp {
		t.Fatalf("Lookup(<=>) = %d, %v, want TokCmp", cmp, ok)
	}
	if uint32(cmp) != 324 {
		t.Fatalf("<=> = %d, want raw token 324", cmp)
	}
	for _, a := range operatorAliases {
		if !IsOperator(a.Value) {
			t.Fatalf("%s = %d lies outside the reserved range", a.Const, a.Value)
		}
		if a.Token != "" {
			e, ok := LookupConst(a.Token)
			if !ok || e.ID != a.Value {
				t.Fatalf("%s = %d, %s = %d", a.Const, a.Value, a.Token, e.ID)
			}
			continue
		}
		if len(a.Symbol) != 1 || ID(a.Symbol[0]) != a.Value {
			t.Fatalf("%s = %d, want byte value of %q", a.Const, a.Value, a.Symbol)
		}
	}
	// a tagged Local with the same serial would be a different value
	if tagged := MustMakeID(int(SerialOf(IDCmp)), Local); tagged == IDCmp {
		t.Fatalf("IDCmp unexpectedly equals its tagged form")
	}
}

func TestDerivedIdentifiers(t *testing.T) {
	want := []struct {
		name string
		id   ID
		val  ID
	}{
		{"intern", IDIntern, 376},
		{"method_missing", IDMethodMissing, 384},
		{"length", IDLength, 392},
		{"size", IDSize, 400},
		{"gets", IDGets, 408},
		{"succ", IDSucc, 416},
		{"each", IDEach, 424},
		{"lambda", IDLambda, 432},
		{"send", IDSend, 440},
		{"__send__", IDUnderSend, 448},
		{"initialize", IDInitialize, 456},
		{"_", IDUScore, 464},
	}
	reserved := make(map[ID]bool)
	for _, r := range Reserved() {
		reserved[r.Value] = true
	}
	seen := make(map[ID]string)
	for _, w := range want {
		if w.id != w.val {
			t.Fatalf("%s = %d, want %d", w.name, w.id, w.val)
		}
		if TagOf(w.id) != Local {
			t.Fatalf("%s carries tag %s", w.name, TagOf(w.id))
		}
		if reserved[w.id] || IsOperator(w.id) {
			t.Fatalf("%s = %d collides with the reserved range", w.name, w.id)
		}
		if prev, dup := seen[w.id]; dup {
			t.Fatalf("%s and %s share %d", prev, w.name, w.id)
		}
		seen[w.id] = w.name
		got, ok := Lookup(w.name)
		if !ok || got != w.id {
			t.Fatalf("Lookup(%q) = %d, %v", w.name, got, ok)
		}
	}
}

func TestDerivedStartAboveReservedRange(t *testing.T) {
	if LastTokenSerial != 46 {
		t.Fatalf("LastTokenSerial = %d, want 46", LastTokenSerial)
	}
	if SerialOf(IDIntern) != LastTokenSerial+1 {
		t.Fatalf("first derived serial = %d, want %d", SerialOf(IDIntern), LastTokenSerial+1)
	}
	if IDIntern <= IDCoreSetPostexe || IDIntern <= TokLastToken {
		t.Fatalf("IDIntern = %d does not start above the reserved range", IDIntern)
	}
	if TagOf(IDIntern) != Local || uint8(TagOf(IDIntern)) != 0 {
		t.Fatalf("IDIntern carries tag %s", TagOf(IDIntern))
	}
	if want := MustMakeID(int(LastTokenSerial)+1+len(derivedNames), Local); IDLastID != want {
		t.Fatalf("IDLastID = %d, want %d", IDLastID, want)
	}
}

func TestCheckTableIsClean(t *testing.T) {
	if n := CheckTable(nil); n != 0 {
		t.Fatalf("CheckTable reported %d errors", n)
	}
}
