// Package snapshot exports the identifier table as a msgpack file and
// compares a stored export with the live table, so consumers built against
// an older table can detect that their values went stale.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"idtab/internal/ident"
	"idtab/internal/version"
)

// SchemaVersion is bumped whenever Payload changes shape.
const SchemaVersion uint16 = 1

// ErrSchemaMismatch reports a snapshot written with another schema.
var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// Payload is the exported table.
type Payload struct {
	Schema uint16 `msgpack:"schema"`
	// Tool is the idtab version that wrote the snapshot.
	Tool string `msgpack:"tool"`
	// Joke records whether the optional derived names were compiled in.
	Joke bool `msgpack:"joke"`

	ScopeShift uint8  `msgpack:"scope_shift"`
	ScopeMask  uint8  `msgpack:"scope_mask"`
	LastToken  uint32 `msgpack:"last_token"`
	LastID     uint32 `msgpack:"last_id"`

	Entries []Record `msgpack:"entries"`
}

// Record is one identifier.
type Record struct {
	Const   string `msgpack:"const"`
	Symbol  string `msgpack:"symbol,omitempty"`
	ID      uint32 `msgpack:"id"`
	Class   uint8  `msgpack:"class"`
	Grammar string `msgpack:"grammar,omitempty"`
}

// FromTable captures the live table.
func FromTable() *Payload {
	entries := ident.Entries()
	p := &Payload{
		Schema:     SchemaVersion,
		Tool:       version.Version,
		Joke:       ident.JokeEnabled,
		ScopeShift: ident.ScopeShift,
		ScopeMask:  ident.ScopeMask,
		LastToken:  uint32(ident.TokLastToken),
		LastID:     uint32(ident.IDLastID),
		Entries:    make([]Record, 0, len(entries)),
	}
	for _, e := range entries {
		p.Entries = append(p.Entries, Record{
			Const:   e.Const,
			Symbol:  e.Symbol,
			ID:      uint32(e.ID),
			Class:   uint8(e.Class),
			Grammar: e.Grammar,
		})
	}
	return p
}

// Write encodes p to w.
func Write(w io.Writer, p *Payload) error {
	if p == nil {
		return fmt.Errorf("snapshot: nil payload")
	}
	if err := msgpack.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Read decodes a payload and rejects other schema versions.
func Read(r io.Reader) (*Payload, error) {
	var p Payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: file has %d, want %d", ErrSchemaMismatch, p.Schema, SchemaVersion)
	}
	return &p, nil
}

// Save writes p to path atomically.
func Save(path string, p *Payload) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".idtab-snapshot-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = Write(f, p); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// atomic replace
	return os.Rename(f.Name(), path)
}

// Load reads the snapshot at path.
func Load(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Table rebuilds the entries a payload was captured from.
func (p *Payload) Table() []ident.Entry {
	out := make([]ident.Entry, len(p.Entries))
	for i, r := range p.Entries {
		out[i] = ident.Entry{
			Const:   r.Const,
			Symbol:  r.Symbol,
			ID:      ident.ID(r.ID),
			Class:   ident.EntryClass(r.Class),
			Grammar: r.Grammar,
		}
	}
	return out
}
