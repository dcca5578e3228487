// Package grammar loads a grammar's token numbering from the files a parser
// generator leaves behind, so the reserved identifier literals can be checked
// against the grammar that actually ships.
package grammar

import (
	"fmt"

	"idtab/internal/diag"
)

// Entry is one token declaration.
type Entry struct {
	Name string
	Code int
	Pos  diag.Pos
}

type issue struct {
	code diag.Code
	pos  diag.Pos
	msg  string
}

// Numbering maps token names to their codes. The first declaration of a name
// wins; later ones are kept and surface through Duplicates and Check.
type Numbering struct {
	origin  string
	name    string
	entries []Entry
	index   map[string]int
	dups    []Entry
	issues  []issue
}

func newNumbering(origin string) *Numbering {
	return &Numbering{origin: origin, index: make(map[string]int)}
}

func (n *Numbering) add(e Entry) {
	if _, seen := n.index[e.Name]; seen {
		n.dups = append(n.dups, e)
		return
	}
	n.index[e.Name] = len(n.entries)
	n.entries = append(n.entries, e)
}

func (n *Numbering) problem(code diag.Code, pos diag.Pos, format string, args ...any) {
	n.issues = append(n.issues, issue{code: code, pos: pos, msg: fmt.Sprintf(format, args...)})
}

// Origin names the input the numbering was read from.
func (n *Numbering) Origin() string { return n.origin }

// Name is the grammar name a manifest declares, or "".
func (n *Numbering) Name() string { return n.name }

// Lookup returns the first code declared for name.
func (n *Numbering) Lookup(name string) (code int, pos diag.Pos, ok bool) {
	i, ok := n.index[name]
	if !ok {
		return 0, diag.Pos{}, false
	}
	e := n.entries[i]
	return e.Code, e.Pos, true
}

// Entries returns the declarations in input order, duplicates excluded.
func (n *Numbering) Entries() []Entry {
	out := make([]Entry, len(n.entries))
	copy(out, n.entries)
	return out
}

// Len is the number of distinct names.
func (n *Numbering) Len() int { return len(n.entries) }

// Duplicates returns repeated declarations after the first.
func (n *Numbering) Duplicates() []Entry {
	out := make([]Entry, len(n.dups))
	copy(out, n.dups)
	return out
}

// Check reports what the loader tolerated: unparsable codes, names declared
// twice and empty inputs. A repeat with the same code is a warning, a repeat
// with a different code an error. It returns the number of errors.
func (n *Numbering) Check(r diag.Reporter) int {
	cr := &diag.CountingReporter{Next: r}
	for _, is := range n.issues {
		diag.ReportError(cr, is.code, is.pos, is.msg).Emit()
	}
	for _, d := range n.dups {
		first := n.entries[n.index[d.Name]]
		if first.Code == d.Code {
			diag.ReportWarning(cr, diag.GrmConflict, d.Pos,
				fmt.Sprintf("%s declared again with the same code %d", d.Name, d.Code)).
				WithNote(first.Pos, "first declared here").
				Emit()
			continue
		}
		diag.ReportError(cr, diag.GrmConflict, d.Pos,
			fmt.Sprintf("%s declared as %d, earlier as %d", d.Name, d.Code, first.Code)).
			WithNote(first.Pos, "first declared here").
			Emit()
	}
	if len(n.entries) == 0 {
		diag.ReportError(cr, diag.GrmEmpty, diag.Pos{File: n.origin}, "no token declarations found").Emit()
	}
	return cr.Errors
}
