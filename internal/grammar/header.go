package grammar

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"idtab/internal/diag"
)

var (
	defineLine = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)\s+([0-9]+)\s*$`)
	enumLine   = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*([0-9]+)\s*,?\s*(?:/\*.*\*/)?\s*$`)
)

type declForm uint8

const (
	formEnum declForm = 1 << iota
	formDefine
)

// ParseHeader reads a bison token header. Both the yytokentype enum form
// (`tUPLUS = 321,`) and the macro form (`#define tUPLUS 321`) are accepted;
// every other line is ignored, as are the parser's own YY names.
//
// Bison writes each token once in each form. A name seen once per form with
// the same code is one declaration; any other repeat is a duplicate.
func ParseHeader(name string, r io.Reader) (*Numbering, error) {
	n := newNumbering(name)
	forms := make(map[string]declForm)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		form := formDefine
		m := defineLine.FindStringSubmatch(text)
		if m == nil {
			form = formEnum
			m = enumLine.FindStringSubmatch(text)
		}
		if m == nil || strings.HasPrefix(m[1], "YY") {
			continue
		}
		pos := diag.Pos{File: name, Line: line}
		code, err := parseCode(m[2])
		if err != nil {
			n.problem(diag.GrmBadCode, pos, "%s: %v", m[1], err)
			continue
		}
		seen := forms[m[1]]
		if seen != 0 && seen&form == 0 {
			if first, _, _ := n.Lookup(m[1]); first == code {
				forms[m[1]] = seen | form
				continue
			}
		}
		forms[m[1]] = seen | form
		n.add(Entry{Name: m[1], Code: code, Pos: pos})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: read header: %w", name, err)
	}
	return n, nil
}

// parseCode accepts decimal codes that fit the token kind width.
func parseCode(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token code %q: %w", s, err)
	}
	c, err := safecast.Conv[uint16](v)
	if err != nil {
		return 0, fmt.Errorf("token code %s out of range: %w", s, err)
	}
	return int(c), nil
}
