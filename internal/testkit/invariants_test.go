package testkit

import (
	"strings"
	"testing"

	"idtab/internal/ident"
)

func TestLiveTableHoldsInvariants(t *testing.T) {
	if err := CheckEntryInvariants(ident.Entries()); err != nil {
		t.Fatalf("live table: %v", err)
	}
}

func TestInvariantViolations(t *testing.T) {
	intern, _ := ident.LookupConst("IDIntern")
	cmp, _ := ident.LookupConst("TokCmp")
	cases := []struct {
		name    string
		entries []ident.Entry
		want    string
	}{
		{"empty", nil, "empty"},
		{"duplicate const", []ident.Entry{intern, intern}, "twice"},
		{"derived in reserved range", []ident.Entry{{Const: "IDBad", ID: 300, Class: ident.ClassDerived}}, "inside the reserved range"},
		{"reserved above range", []ident.Entry{{Const: "TokBad", ID: 400, Class: ident.ClassReserved}}, "above the reserved range"},
		{"unassigned tag", []ident.Entry{{Const: "IDBad", ID: 47<<3 | 2, Class: ident.ClassDerived}}, "unassigned tag"},
		{"shared value", []ident.Entry{intern, {Const: "IDTwin", ID: intern.ID, Class: ident.ClassDerived}}, "share"},
		{"unknown class", []ident.Entry{cmp, {Const: "IDOdd", ID: 500}}, "unknown class"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckEntryInvariants(tc.entries)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}
}
