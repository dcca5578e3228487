package diagfmt

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"idtab/internal/ident"
)

// TableOpts configures identifier table output.
type TableOpts struct {
	Color bool
	// Header prints a column header line.
	Header bool
}

// EntryJSON is one identifier in JSON output.
type EntryJSON struct {
	Const   string `json:"const"`
	Symbol  string `json:"symbol,omitempty"`
	ID      uint32 `json:"id"`
	Class   string `json:"class"`
	Scope   string `json:"scope,omitempty"`
	Serial  uint32 `json:"serial"`
	Grammar string `json:"grammar,omitempty"`
}

// EntryToJSON converts a table entry.
func EntryToJSON(e ident.Entry) EntryJSON {
	out := EntryJSON{
		Const:   e.Const,
		Symbol:  e.Symbol,
		ID:      uint32(e.ID),
		Class:   e.Class.String(),
		Serial:  ident.SerialOf(e.ID),
		Grammar: e.Grammar,
	}
	if s, ok := e.Scope(); ok {
		out.Scope = s.String()
	}
	return out
}

// TableJSON writes entries as an indented JSON array.
func TableJSON(w io.Writer, entries []ident.Entry) error {
	rows := make([]EntryJSON, len(entries))
	for i, e := range entries {
		rows[i] = EntryToJSON(e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

var tableColumns = []string{"CONST", "SYMBOL", "ID", "CLASS", "SCOPE", "SERIAL", "GRAMMAR"}

func entryCells(e ident.Entry) []string {
	scope := "-"
	if s, ok := e.Scope(); ok {
		scope = s.String()
	}
	symbol := e.Symbol
	if symbol == "" {
		symbol = "-"
	}
	grammar := e.Grammar
	if grammar == "" {
		grammar = "-"
	}
	return []string{
		e.Const,
		symbol,
		strconv.FormatUint(uint64(e.ID), 10),
		e.Class.String(),
		scope,
		strconv.FormatUint(uint64(ident.SerialOf(e.ID)), 10),
		grammar,
	}
}

// Table writes entries as aligned columns. Widths are measured in terminal
// cells so symbol names with wide runes stay aligned.
func Table(w io.Writer, entries []ident.Entry, opts TableOpts) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryCells(e))
	}
	widths := make([]int, len(tableColumns))
	if opts.Header {
		for i, c := range tableColumns {
			widths[i] = runewidth.StringWidth(c)
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	head := color.New(color.Bold)
	classColor := map[string]*color.Color{
		ident.ClassReserved.String(): color.New(color.FgMagenta),
		ident.ClassOperator.String(): color.New(color.FgYellow),
		ident.ClassDerived.String():  color.New(color.FgGreen),
	}
	paints := []*color.Color{head}
	for _, c := range classColor {
		paints = append(paints, c)
	}
	for _, c := range paints {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string, paint func(col int, padded string) string) {
		for i, cell := range cells {
			padded := cell
			if i < len(cells)-1 {
				padded = runewidth.FillRight(cell, widths[i])
			}
			sb.WriteString(paint(i, padded))
			if i < len(cells)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	if opts.Header {
		writeRow(tableColumns, func(_ int, s string) string { return head.Sprint(s) })
	}
	for _, row := range rows {
		writeRow(row, func(col int, s string) string {
			if col == 3 {
				return classColor[row[3]].Sprint(s)
			}
			return s
		})
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
