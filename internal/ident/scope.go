package ident

import (
	"fmt"
	"strconv"
	"strings"
)

// Scope is the low-bit category of an identifier.
type Scope uint8

const (
	// ScopeShift is the width of the scope tag.
	ScopeShift = 3
	// ScopeMask selects the scope tag bits.
	ScopeMask = 1<<ScopeShift - 1
)

const (
	// Local marks local variables and plain method names.
	Local Scope = 0x00
	// Instance marks @instance variables.
	Instance Scope = 0x01
	// Global marks $global variables.
	Global Scope = 0x03
	// AttrSet marks attribute writers (name=).
	AttrSet Scope = 0x04
	// Const marks Constants.
	Const Scope = 0x05
	// Class marks @@class variables.
	Class Scope = 0x06
	// Junk marks internal names that cannot be spelled in source.
	Junk Scope = 0x07
	// Internal is an alias of Junk.
	Internal = Junk
)

// unassignedScope is the one value of the tag field without a category.
const unassignedScope Scope = 0x02

var scopes = [...]Scope{Local, Instance, Global, AttrSet, Const, Class, Junk}

var scopeNames = [...]string{
	Local:           "local",
	Instance:        "instance",
	unassignedScope: "",
	Global:          "global",
	AttrSet:         "attrset",
	Const:           "const",
	Class:           "class",
	Junk:            "junk",
}

// Scopes returns the seven assigned scope tags in numeric order.
func Scopes() []Scope {
	out := make([]Scope, len(scopes))
	copy(out, scopes[:])
	return out
}

// Valid reports whether s is one of the seven assigned tags.
func (s Scope) Valid() bool {
	return s <= ScopeMask && s != unassignedScope
}

func (s Scope) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scope(%#02x)", uint8(s))
	}
	return scopeNames[s]
}

// ParseScope accepts a scope name ("local", "const", "internal", ...) or its
// numeric tag.
func ParseScope(s string) (Scope, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "internal" {
		return Internal, nil
	}
	for _, sc := range scopes {
		if scopeNames[sc] == name {
			return sc, nil
		}
	}
	if n, err := strconv.ParseUint(name, 0, 8); err == nil && Scope(n).Valid() {
		return Scope(n), nil
	}
	return 0, fmt.Errorf("%w: %q (expected: local|instance|global|attrset|const|class|junk|internal)", ErrInvalidScope, s)
}
