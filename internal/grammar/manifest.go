package grammar

import (
	"fmt"
	"io"
	"strconv"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"idtab/internal/diag"
)

type manifest struct {
	Grammar struct {
		Name string `toml:"name"`
	} `toml:"grammar"`
	Tokens map[string]int64 `toml:"tokens"`
}

// ParseTOML reads a token manifest:
//
//	[grammar]
//	name = "ruby-1.9.2"
//
//	[tokens]
//	tUPLUS = 321
//
// Entries keep the manifest's key order. TOML forbids repeated keys, so a
// manifest never yields duplicates.
func ParseTOML(name string, r io.Reader) (*Numbering, error) {
	var m manifest
	meta, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	if !meta.IsDefined("tokens") {
		return nil, fmt.Errorf("%s: missing [tokens]", name)
	}
	n := newNumbering(name)
	n.name = m.Grammar.Name
	pos := diag.Pos{File: name}
	for _, key := range meta.Keys() {
		if len(key) != 2 || key[0] != "tokens" {
			continue
		}
		tok := key[1]
		v := m.Tokens[tok]
		code, err := safecast.Conv[uint16](v)
		if err != nil {
			n.problem(diag.GrmBadCode, pos, "%s: token code %s out of range: %v", tok, strconv.FormatInt(v, 10), err)
			continue
		}
		n.add(Entry{Name: tok, Code: int(code), Pos: pos})
	}
	for _, key := range meta.Undecoded() {
		n.problem(diag.GrmUnknownInput, pos, "unknown manifest key %s", key)
	}
	return n, nil
}
