package ident

import (
	"errors"
	"fmt"

	"idtab/internal/diag"
)

// ErrReservedDrift is returned when the reserved literals disagree with a
// grammar numbering or with each other.
var ErrReservedDrift = errors.New("reserved identifiers drifted")

// TokenSource is a grammar's token numbering.
type TokenSource interface {
	// Origin names the numbering in diagnostics, usually a file path.
	Origin() string
	// Lookup returns the code the grammar assigns to name and where it
	// was declared.
	Lookup(name string) (code int, pos diag.Pos, ok bool)
}

// VerifyReserved checks every reserved literal against src and the table
// against itself. Findings go to r; any error-level finding makes the result
// wrap ErrReservedDrift.
func VerifyReserved(src TokenSource, r diag.Reporter) error {
	cr := &diag.CountingReporter{Next: r}
	origin := diag.Pos{File: src.Origin()}

	claimed := make(map[int]ReservedToken, len(reservedTokens))
	claimedAt := make(map[int]diag.Pos, len(reservedTokens))
	for _, rt := range reservedTokens {
		code, pos, ok := src.Lookup(rt.Grammar)
		if !ok {
			diag.ReportError(cr, diag.VerTokenMissing, origin,
				fmt.Sprintf("grammar does not declare %s (%s = %d)", rt.Grammar, rt.Const, rt.Value)).Emit()
			continue
		}
		if code != int(rt.Value) {
			diag.ReportError(cr, diag.VerLiteralMismatch, pos,
				fmt.Sprintf("%s is %d in the grammar but %s = %d", rt.Grammar, code, rt.Const, rt.Value)).Emit()
		}
		if prev, dup := claimed[code]; dup {
			diag.ReportError(cr, diag.VerDuplicateToken, pos,
				fmt.Sprintf("%s and %s share code %d", prev.Grammar, rt.Grammar, code)).
				WithNote(claimedAt[code], prev.Grammar+" declared here").
				Emit()
			continue
		}
		claimed[code] = rt
		claimedAt[code] = pos
	}

	CheckTable(cr)

	if cr.Errors > 0 {
		return fmt.Errorf("%w: %s: %d error(s)", ErrReservedDrift, origin, cr.Errors)
	}
	return nil
}

// CheckTable reports inconsistencies inside the table itself: reserved
// literals that repeat, aliases that differ from their token, derived values
// that overlap the reserved range or each other. It returns the number of
// errors reported.
func CheckTable(r diag.Reporter) int {
	cr := &diag.CountingReporter{Next: r}
	builtin := diag.Pos{}

	reserved := make(map[ID]string, len(reservedTokens))
	byConst := make(map[string]ID, len(reservedTokens))
	for _, rt := range reservedTokens {
		if prev, dup := reserved[rt.Value]; dup {
			diag.ReportError(cr, diag.VerIDCollision, builtin,
				fmt.Sprintf("%s and %s are both %d", prev, rt.Const, rt.Value)).Emit()
		}
		reserved[rt.Value] = rt.Const
		byConst[rt.Const] = rt.Value
		if rt.Value > TokLastToken {
			diag.ReportError(cr, diag.VerIDCollision, builtin,
				fmt.Sprintf("%s = %d lies above TokLastToken = %d", rt.Const, rt.Value, TokLastToken)).Emit()
		}
	}

	for _, a := range operatorAliases {
		if a.Token == "" {
			if a.Value > 0xff {
				diag.ReportError(cr, diag.VerAliasMismatch, builtin,
					fmt.Sprintf("%s = %d is not a single-character operator", a.Const, a.Value)).Emit()
			}
			if owner, clash := reserved[a.Value]; clash {
				diag.ReportError(cr, diag.VerIDCollision, builtin,
					fmt.Sprintf("%s and %s are both %d", a.Const, owner, a.Value)).Emit()
			}
			continue
		}
		want, ok := byConst[a.Token]
		if !ok {
			diag.ReportError(cr, diag.VerAliasMismatch, builtin,
				fmt.Sprintf("%s aliases unknown literal %s", a.Const, a.Token)).Emit()
			continue
		}
		if a.Value != want {
			diag.ReportError(cr, diag.VerAliasMismatch, builtin,
				fmt.Sprintf("%s = %d but %s = %d", a.Const, a.Value, a.Token, want)).Emit()
		}
	}

	derived := make(map[ID]string, len(derivedNames))
	for _, d := range derivedNames {
		if IsOperator(d.Value) {
			diag.ReportError(cr, diag.VerDerivedOverlap, builtin,
				fmt.Sprintf("%s = %d falls inside the reserved range (<= %d)", d.Const, d.Value, TokLastToken)).Emit()
		}
		if !TagOf(d.Value).Valid() {
			diag.ReportError(cr, diag.VerInvalidScope, builtin,
				fmt.Sprintf("%s = %d carries tag %s", d.Const, d.Value, TagOf(d.Value))).Emit()
		}
		if prev, dup := derived[d.Value]; dup {
			diag.ReportError(cr, diag.VerIDCollision, builtin,
				fmt.Sprintf("%s and %s are both %d", prev, d.Const, d.Value)).Emit()
		}
		derived[d.Value] = d.Const
	}
	return cr.Errors
}
