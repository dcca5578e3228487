package ident

import (
	"fmt"
	"strings"
)

// EntryClass says how an entry's value was obtained.
type EntryClass uint8

const (
	// ClassReserved entries are hand-assigned grammar token literals.
	ClassReserved EntryClass = iota + 1
	// ClassOperator entries alias a token literal or a character code.
	ClassOperator
	// ClassDerived entries are built with MakeID above the reserved range.
	ClassDerived
)

func (c EntryClass) String() string {
	switch c {
	case ClassReserved:
		return "reserved"
	case ClassOperator:
		return "operator"
	case ClassDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// ParseEntryClass converts a class name to an EntryClass.
func ParseEntryClass(s string) (EntryClass, error) {
	switch strings.ToLower(s) {
	case "reserved":
		return ClassReserved, nil
	case "operator":
		return ClassOperator, nil
	case "derived":
		return ClassDerived, nil
	default:
		return 0, fmt.Errorf("invalid entry class: %q (expected: reserved|operator|derived)", s)
	}
}

// Entry is one exported identifier.
type Entry struct {
	Const  string
	Symbol string
	ID     ID
	Class  EntryClass
	// Grammar is the grammar token name for reserved entries.
	Grammar string
}

// Scope returns the entry's scope; ok is false for raw token values.
func (e Entry) Scope() (Scope, bool) { return ScopeOf(e.ID) }

var (
	entries  []Entry
	bySymbol map[string]int
	byID     map[ID]int
	byConst  map[string]int
)

func init() {
	entries = buildEntries()
	bySymbol = make(map[string]int, len(entries))
	byID = make(map[ID]int, len(entries))
	byConst = make(map[string]int, len(entries))
	for i, e := range entries {
		byConst[e.Const] = i
		// first entry wins: reserved literals shadow their operator aliases
		if _, ok := byID[e.ID]; !ok {
			byID[e.ID] = i
		}
		if e.Symbol == "" {
			continue
		}
		if _, ok := bySymbol[e.Symbol]; !ok {
			bySymbol[e.Symbol] = i
		}
	}
}

func buildEntries() []Entry {
	out := make([]Entry, 0, len(reservedTokens)+len(operatorAliases)+len(derivedNames))
	for _, r := range reservedTokens {
		out = append(out, Entry{Const: r.Const, Symbol: r.Symbol, ID: r.Value, Class: ClassReserved, Grammar: r.Grammar})
	}
	for _, a := range operatorAliases {
		out = append(out, Entry{Const: a.Const, Symbol: a.Symbol, ID: a.Value, Class: ClassOperator})
	}
	for i, d := range derivedNames {
		id := MustMakeID(int(LastTokenSerial)+1+i, d.Scope)
		if id != d.Value {
			panic(fmt.Sprintf("ident: %s is %d but the table derives %d", d.Const, d.Value, id))
		}
		out = append(out, Entry{Const: d.Const, Symbol: d.Symbol, ID: id, Class: ClassDerived})
	}
	if last := MustMakeID(int(LastTokenSerial)+1+len(derivedNames), Local); last != IDLastID {
		panic(fmt.Sprintf("ident: IDLastID is %d but the table ends at %d", IDLastID, last))
	}
	return out
}

// Entries returns every exported identifier: reserved literals, then operator
// aliases, then derived names.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// EntriesOf returns the entries of one class.
func EntriesOf(class EntryClass) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Class == class {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds the identifier for a method or operator name ("<=>", "each").
func Lookup(symbol string) (ID, bool) {
	i, ok := bySymbol[symbol]
	if !ok {
		return 0, false
	}
	return entries[i].ID, true
}

// LookupConst finds an entry by its Go constant name ("IDCmp").
func LookupConst(name string) (Entry, bool) {
	i, ok := byConst[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// EntryOf returns the entry that owns id. For values shared by a reserved
// literal and an operator alias the reserved literal is returned.
func EntryOf(id ID) (Entry, bool) {
	i, ok := byID[id]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Name returns the method or operator name of id, if the table knows it.
func Name(id ID) (string, bool) {
	e, ok := EntryOf(id)
	if !ok || e.Symbol == "" {
		return "", false
	}
	return e.Symbol, true
}
