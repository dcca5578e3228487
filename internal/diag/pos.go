package diag

import "strconv"

// Pos locates a diagnostic in an input file. Line is 1-based; 0 means the
// position is the whole file (or, with an empty File, the built-in table).
type Pos struct {
	File string
	Line int
}

// IsZero reports whether p carries no location.
func (p Pos) IsZero() bool { return p.File == "" && p.Line == 0 }

func (p Pos) String() string {
	switch {
	case p.File == "" && p.Line == 0:
		return "<builtin>"
	case p.Line == 0:
		return p.File
	case p.File == "":
		return "<builtin>:" + strconv.Itoa(p.Line)
	}
	return p.File + ":" + strconv.Itoa(p.Line)
}
