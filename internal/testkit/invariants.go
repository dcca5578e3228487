package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"idtab/internal/ident"
)

// CheckEntryInvariants runs the structural invariants every identifier table
// must satisfy, on the live table or on one rebuilt from an export:
// 1) constant names are unique and non-empty
// 2) reserved and operator values stay within the reserved range
// 3) derived values lie above it, carry an assigned tag and re-encode to themselves
// 4) derived values are distinct
func CheckEntryInvariants(entries []ident.Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("empty table")
	}
	consts := make(map[string]bool, len(entries))
	derived := make(map[ident.ID]string)
	for _, e := range entries {
		if e.Const == "" {
			return fmt.Errorf("entry %d has no constant name", e.ID)
		}
		if consts[e.Const] {
			return fmt.Errorf("constant %s listed twice", e.Const)
		}
		consts[e.Const] = true

		switch e.Class {
		case ident.ClassReserved, ident.ClassOperator:
			if !ident.IsOperator(e.ID) {
				return fmt.Errorf("%s = %d lies above the reserved range", e.Const, e.ID)
			}
		case ident.ClassDerived:
			if ident.IsOperator(e.ID) {
				return fmt.Errorf("%s = %d lies inside the reserved range", e.Const, e.ID)
			}
			scope, ok := ident.ScopeOf(e.ID)
			if !ok {
				return fmt.Errorf("%s = %d carries unassigned tag %s", e.Const, e.ID, ident.TagOf(e.ID))
			}
			serial, err := safecast.Conv[int](ident.SerialOf(e.ID))
			if err != nil {
				return fmt.Errorf("%s serial overflow: %w", e.Const, err)
			}
			again, err := ident.MakeID(serial, scope)
			if err != nil {
				return fmt.Errorf("%s does not re-encode: %w", e.Const, err)
			}
			if again != e.ID {
				return fmt.Errorf("%s = %d re-encodes to %d", e.Const, e.ID, again)
			}
			if prev, dup := derived[e.ID]; dup {
				return fmt.Errorf("%s and %s share %d", prev, e.Const, e.ID)
			}
			derived[e.ID] = e.Const
		default:
			return fmt.Errorf("%s has unknown class %d", e.Const, e.Class)
		}
	}
	return nil
}
