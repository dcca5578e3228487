package ident

import (
	"errors"
	"testing"

	"idtab/internal/diag"
)

type stubGrammar struct {
	origin string
	codes  map[string]int
}

func (g stubGrammar) Origin() string { return g.origin }

func (g stubGrammar) Lookup(name string) (int, diag.Pos, bool) {
	code, ok := g.codes[name]
	return code, diag.Pos{File: g.origin, Line: code - 300}, ok
}

func fixtureGrammar() stubGrammar {
	codes := make(map[string]int, len(tokenizerFixture))
	for k, v := range tokenizerFixture {
		codes[k] = v
	}
	return stubGrammar{origin: "parse.h", codes: codes}
}

func verifyInto(t *testing.T, g stubGrammar) (*diag.Bag, error) {
	t.Helper()
	bag := diag.NewBag(100)
	err := VerifyReserved(g, diag.BagReporter{Bag: bag})
	return bag, err
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestVerifyReservedPasses(t *testing.T) {
	bag, err := verifyInto(t, fixtureGrammar())
	if err != nil {
		t.Fatalf("VerifyReserved: %v\n%s", err, diag.FormatShort(bag.Items(), true))
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", diag.FormatShort(bag.Items(), true))
	}
}

func TestVerifyReservedDetectsDrift(t *testing.T) {
	g := fixtureGrammar()
	// a token inserted before tGEQ shifts it by one
	g.codes["tGEQ"] = 329
	g.codes["tLEQ"] = 330
	bag, err := verifyInto(t, g)
	if !errors.Is(err, ErrReservedDrift) {
		t.Fatalf("err = %v, want ErrReservedDrift", err)
	}
	if !hasCode(bag, diag.VerLiteralMismatch) {
		t.Fatalf("missing VER1001:\n%s", diag.FormatShort(bag.Items(), true))
	}
	if !hasCode(bag, diag.VerDuplicateToken) {
		t.Fatalf("tLEQ and tANDOP now share 330; missing VER1003:\n%s", diag.FormatShort(bag.Items(), true))
	}
	for _, d := range bag.Items() {
		if d.Code == diag.VerLiteralMismatch && d.Primary.File != "parse.h" {
			t.Fatalf("mismatch points at %s", d.Primary)
		}
	}
}

func TestVerifyReservedDetectsMissingToken(t *testing.T) {
	g := fixtureGrammar()
	delete(g.codes, "idRespond_to")
	bag, err := verifyInto(t, g)
	if !errors.Is(err, ErrReservedDrift) {
		t.Fatalf("err = %v, want ErrReservedDrift", err)
	}
	if !hasCode(bag, diag.VerTokenMissing) {
		t.Fatalf("missing VER1002:\n%s", diag.FormatShort(bag.Items(), true))
	}
}

func TestVerifyReservedWithNilReporter(t *testing.T) {
	g := fixtureGrammar()
	g.codes["tCMP"] = 400
	if err := VerifyReserved(g, nil); !errors.Is(err, ErrReservedDrift) {
		t.Fatalf("err = %v, want ErrReservedDrift", err)
	}
}
