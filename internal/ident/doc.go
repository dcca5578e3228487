// Package ident encodes front-end names as compact integer identifiers.
//
// # Layout
//
// An ID packs a serial number above a three-bit scope tag:
//
//	id = serial<<ScopeShift | scope
//
// The tag tells locals, instance variables, globals, attribute setters,
// constants, class variables and internal ("junk") names apart. TagOf and
// SerialOf decode any value without failing; MakeID refuses tags outside the
// seven assigned ones and serials that would not fit.
//
// # Reserved range
//
// Values up to and including TokLastToken share the grammar's token
// numbering. Those literals (TokUPlus, TokCmp, IDRespondTo, ...) are written
// out by hand because the runtime's fast paths compare against them, and
// grammar_check.go asserts at compile time that each still equals the code
// internal/token assigns. Operator aliases (IDCmp, IDPlus, ...) are the raw
// token or character value; no scope tag is applied to them.
//
// # Derived names
//
// Well-known method names (intern, each, send, initialize, ...) are tagged
// Local and numbered from the first serial above the reserved range, so
// their values can never land inside it. Building with the "joke" tag adds
// bitblt and answer after the regular entries.
//
// Everything here is immutable after package initialisation and safe for
// concurrent use.
package ident
