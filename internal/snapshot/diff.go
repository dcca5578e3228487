package snapshot

import (
	"fmt"
	"sort"

	"idtab/internal/diag"
	"idtab/internal/ident"
)

// ChangeKind classifies a difference between two payloads.
type ChangeKind uint8

const (
	Changed ChangeKind = iota + 1
	Removed
	Added
)

func (k ChangeKind) String() string {
	switch k {
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Change is one entry that differs. Old is zero for Added, New for Removed.
type Change struct {
	Kind  ChangeKind
	Const string
	Old   ident.ID
	New   ident.ID
}

// Diff compares old against cur by constant name. The result follows old's
// order, then additions in cur's order.
func Diff(old, cur *Payload) []Change {
	curByConst := make(map[string]Record, len(cur.Entries))
	for _, r := range cur.Entries {
		curByConst[r.Const] = r
	}
	seen := make(map[string]bool, len(old.Entries))
	var out []Change
	for _, r := range old.Entries {
		seen[r.Const] = true
		now, ok := curByConst[r.Const]
		switch {
		case !ok:
			out = append(out, Change{Kind: Removed, Const: r.Const, Old: ident.ID(r.ID)})
		case now.ID != r.ID:
			out = append(out, Change{Kind: Changed, Const: r.Const, Old: ident.ID(r.ID), New: ident.ID(now.ID)})
		}
	}
	for _, r := range cur.Entries {
		if !seen[r.Const] {
			out = append(out, Change{Kind: Added, Const: r.Const, New: ident.ID(r.ID)})
		}
	}
	return out
}

// Compare reports every difference between the snapshot at origin and cur.
// Changed and removed values are errors because consumers hold them; new
// entries and a different build flavour are warnings. It returns the number
// of errors.
func Compare(snap, cur *Payload, origin string, r diag.Reporter) int {
	cr := &diag.CountingReporter{Next: r}
	pos := diag.Pos{File: origin}

	if snap.Schema != cur.Schema {
		diag.ReportError(cr, diag.SnpSchemaChanged, pos,
			fmt.Sprintf("snapshot schema %d, current %d", snap.Schema, cur.Schema)).Emit()
		return cr.Errors
	}
	if snap.ScopeShift != cur.ScopeShift || snap.ScopeMask != cur.ScopeMask {
		diag.ReportError(cr, diag.SnpLayoutChanged, pos,
			fmt.Sprintf("scope layout shift=%d mask=%#x, current shift=%d mask=%#x",
				snap.ScopeShift, snap.ScopeMask, cur.ScopeShift, cur.ScopeMask)).Emit()
	}
	if snap.Joke != cur.Joke {
		diag.ReportWarning(cr, diag.SnpLayoutChanged, pos,
			fmt.Sprintf("snapshot built with joke=%t, current joke=%t", snap.Joke, cur.Joke)).Emit()
	}

	changes := Diff(snap, cur)
	sort.SliceStable(changes, func(i, j int) bool { return changes[i].Kind < changes[j].Kind })
	for _, c := range changes {
		switch c.Kind {
		case Changed:
			diag.ReportError(cr, diag.SnpChangedID, pos,
				fmt.Sprintf("%s was %d, now %d", c.Const, c.Old, c.New)).Emit()
		case Removed:
			diag.ReportError(cr, diag.SnpRemovedEntry, pos,
				fmt.Sprintf("%s (%d) no longer exists", c.Const, c.Old)).Emit()
		case Added:
			diag.ReportWarning(cr, diag.SnpAddedEntry, pos,
				fmt.Sprintf("%s = %d is new", c.Const, c.New)).Emit()
		}
	}
	return cr.Errors
}
