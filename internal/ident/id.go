package ident

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ID is an encoded identifier.
type ID uint32

// MaxSerial is the largest serial MakeID accepts.
const MaxSerial = ^uint32(0) >> ScopeShift

var (
	// ErrInvalidScope reports a scope tag outside the seven assigned ones.
	ErrInvalidScope = errors.New("invalid scope tag")
	// ErrSerialOverflow reports a serial that does not fit above the tag.
	ErrSerialOverflow = errors.New("serial does not fit in identifier")
	// ErrOperatorID reports an operation that needs a scope-tagged identifier
	// but got a raw token value.
	ErrOperatorID = errors.New("identifier is a raw token value")
)

// EncodeError describes a rejected MakeID or AttrSetOf call.
type EncodeError struct {
	Serial int
	Scope  Scope
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode identifier (serial=%d, scope=%s): %v", e.Serial, e.Scope, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// TagOf returns the low scope bits of id. It never fails; for raw token
// values (see IsOperator) the bits carry no meaning.
func TagOf(id ID) Scope { return Scope(id & ScopeMask) }

// SerialOf returns the bits above the scope tag.
func SerialOf(id ID) uint32 { return uint32(id >> ScopeShift) }

// MakeID encodes serial under scope. It fails with ErrInvalidScope or
// ErrSerialOverflow, wrapped in *EncodeError, instead of truncating.
func MakeID(serial int, scope Scope) (ID, error) {
	if !scope.Valid() {
		return 0, &EncodeError{Serial: serial, Scope: scope, Err: ErrInvalidScope}
	}
	s, err := safecast.Conv[uint32](serial)
	if err != nil {
		return 0, &EncodeError{Serial: serial, Scope: scope, Err: fmt.Errorf("%w: %w", ErrSerialOverflow, err)}
	}
	if s > MaxSerial {
		return 0, &EncodeError{Serial: serial, Scope: scope, Err: ErrSerialOverflow}
	}
	return ID(s)<<ScopeShift | ID(scope), nil
}

// MustMakeID is MakeID for table construction; it panics on misuse.
func MustMakeID(serial int, scope Scope) ID {
	id, err := MakeID(serial, scope)
	if err != nil {
		panic(err)
	}
	return id
}

// IsOperator reports whether id lies in the reserved token range, where the
// value is a grammar token or character code rather than serial<<3|scope.
func IsOperator(id ID) bool { return id <= TokLastToken }

// ScopeOf returns the scope of a tagged identifier. ok is false for raw
// token values and for the unassigned tag.
func ScopeOf(id ID) (scope Scope, ok bool) {
	if IsOperator(id) {
		return 0, false
	}
	scope = TagOf(id)
	return scope, scope.Valid()
}

func hasScope(id ID, want Scope) bool {
	s, ok := ScopeOf(id)
	return ok && s == want
}

// IsLocal reports whether id is a tagged local name.
func IsLocal(id ID) bool { return hasScope(id, Local) }

// IsInstance reports whether id is a tagged instance variable name.
func IsInstance(id ID) bool { return hasScope(id, Instance) }

// IsGlobal reports whether id is a tagged global variable name.
func IsGlobal(id ID) bool { return hasScope(id, Global) }

// IsAttrSet reports whether id is a tagged attribute writer name.
func IsAttrSet(id ID) bool { return hasScope(id, AttrSet) }

// IsConst reports whether id is a tagged constant name.
func IsConst(id ID) bool { return hasScope(id, Const) }

// IsClass reports whether id is a tagged class variable name.
func IsClass(id ID) bool { return hasScope(id, Class) }

// IsJunk reports whether id is a tagged internal name.
func IsJunk(id ID) bool { return hasScope(id, Junk) }

// AttrSetOf returns the attribute writer twin of a local or constant name:
// the same serial re-tagged AttrSet. Writers map to themselves.
func AttrSetOf(id ID) (ID, error) {
	if IsOperator(id) {
		return 0, &EncodeError{Serial: int(SerialOf(id)), Scope: AttrSet, Err: ErrOperatorID}
	}
	switch TagOf(id) {
	case Local, Const, AttrSet:
		return id&^ScopeMask | ID(AttrSet), nil
	}
	return 0, &EncodeError{Serial: int(SerialOf(id)), Scope: TagOf(id), Err: ErrInvalidScope}
}

func (id ID) String() string {
	if IsOperator(id) {
		return fmt.Sprintf("%d(token)", uint32(id))
	}
	return fmt.Sprintf("%d(%s#%d)", uint32(id), TagOf(id), SerialOf(id))
}
