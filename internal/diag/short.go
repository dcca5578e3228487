package diag

import (
	"sort"
	"strings"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Pos      Pos
	Message  string
}

// FormatShort renders diagnostics one per line as
// "<severity> <CODE> <pos> <message>", sorted by position then code.
// Notes follow as "note <CODE> <pos> <message>" lines when includeNotes is set.
// Multi-line messages are folded onto one line.
func FormatShort(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = append(rendered, shortDiagnostic{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Pos:      d.Primary,
			Message:  flatten(d.Message),
		})
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			rendered = append(rendered, shortDiagnostic{
				Severity: "note",
				Code:     d.Code.ID(),
				Pos:      n.Pos,
				Message:  flatten(n.Msg),
			})
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Pos.File != dj.Pos.File {
			return di.Pos.File < dj.Pos.File
		}
		if di.Pos.Line != dj.Pos.Line {
			return di.Pos.Line < dj.Pos.Line
		}
		return di.Code < dj.Code
	})

	lines := make([]string, 0, len(rendered))
	for _, r := range rendered {
		lines = append(lines, r.Severity+" "+r.Code+" "+r.Pos.String()+" "+r.Message)
	}
	return strings.Join(lines, "\n")
}

func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
