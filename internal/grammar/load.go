package grammar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"idtab/internal/diag"
	"idtab/internal/token"
)

// ErrUnknownFormat reports a grammar file whose extension no loader handles.
var ErrUnknownFormat = errors.New("unknown grammar format")

// BuiltinOrigin is the origin of Builtin's numbering.
const BuiltinOrigin = "internal/token"

// Load reads a grammar numbering from path, choosing the loader by
// extension: .h for bison headers, .toml for manifests.
func Load(path string) (*Numbering, error) {
	var parse func(string, *os.File) (*Numbering, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h", ".hh", ".hpp":
		parse = func(name string, f *os.File) (*Numbering, error) { return ParseHeader(name, f) }
	case ".toml":
		parse = func(name string, f *os.File) (*Numbering, error) { return ParseTOML(name, f) }
	default:
		return nil, fmt.Errorf("%s: %w (want .h or .toml)", path, ErrUnknownFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return parse(path, f)
}

// Builtin returns the numbering compiled into internal/token.
func Builtin() *Numbering {
	n := newNumbering(BuiltinOrigin)
	n.name = "builtin"
	for _, k := range token.Kinds() {
		n.add(Entry{Name: k.String(), Code: int(k), Pos: diag.Pos{}})
	}
	return n
}
