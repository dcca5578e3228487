package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"idtab/internal/diag"
)

type palette struct {
	err, warn, info, note, code, pos *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan),
		note: color.New(color.FgBlue),
		code: color.New(color.Faint),
		pos:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.pos} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

func (p palette) position(pos diag.Pos, opts PrettyOpts) string {
	if pos.File == "" {
		return p.pos.Sprint(pos.String())
	}
	s := formatPath(pos.File, opts.PathMode, opts.BaseDir)
	if pos.Line > 0 {
		s += ":" + strconv.Itoa(pos.Line)
	}
	return p.pos.Sprint(s)
}

// Pretty writes diagnostics in human-readable form, one per line:
//
//	<path>:<line>: <SEV> <CODE>: <Message>
//	  note: <path>:<line>: <Message>
//
// Items are printed in bag order, so callers sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.position(d.Primary, opts),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), p.position(n.Pos, opts), n.Msg); err != nil {
				return err
			}
		}
	}
	if !opts.Summary {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s, %s\n",
		p.err.Sprint(plural(errs, "error")),
		p.warn.Sprint(plural(warns, "warning")))
	return err
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
