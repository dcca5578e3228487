package ident

// LastTokenSerial is the serial TokLastToken would decode to. Derived
// identifiers start one above it.
const LastTokenSerial = uint32(TokLastToken) >> ScopeShift

const (
	serialIntern = LastTokenSerial + 1 + iota
	serialMethodMissing
	serialLength
	serialSize
	serialGets
	serialSucc
	serialEach
	serialLambda
	serialSend
	serialUnderSend
	serialInitialize
	serialUScore
)

// Derived method-name identifiers, tagged Local.
const (
	IDIntern        = ID(serialIntern)<<ScopeShift | ID(Local)
	IDMethodMissing = ID(serialMethodMissing)<<ScopeShift | ID(Local)
	IDLength        = ID(serialLength)<<ScopeShift | ID(Local)
	IDSize          = ID(serialSize)<<ScopeShift | ID(Local)
	IDGets          = ID(serialGets)<<ScopeShift | ID(Local)
	IDSucc          = ID(serialSucc)<<ScopeShift | ID(Local)
	IDEach          = ID(serialEach)<<ScopeShift | ID(Local)
	IDLambda        = ID(serialLambda)<<ScopeShift | ID(Local)
	IDSend          = ID(serialSend)<<ScopeShift | ID(Local)
	IDUnderSend     = ID(serialUnderSend)<<ScopeShift | ID(Local)
	IDInitialize    = ID(serialInitialize)<<ScopeShift | ID(Local)
	IDUScore        = ID(serialUScore)<<ScopeShift | ID(Local)

	// IDLastID is one past the last derived identifier of this build.
	IDLastID = ID(serialLastID)<<ScopeShift | ID(Local)
)

// The first derived id must sit above the reserved range; a negative
// difference does not convert to uint.
const _ = uint(IDIntern - TokLastToken - 1)

type derivedName struct {
	Const  string
	Symbol string
	Scope  Scope
	Value  ID
}

// derivedNames lists the derived identifiers in serial order. The table is
// the source of truth: package init rebuilds every value with MustMakeID and
// panics if a constant above disagrees.
var derivedNames = append([]derivedName{
	{"IDIntern", "intern", Local, IDIntern},
	{"IDMethodMissing", "method_missing", Local, IDMethodMissing},
	{"IDLength", "length", Local, IDLength},
	{"IDSize", "size", Local, IDSize},
	{"IDGets", "gets", Local, IDGets},
	{"IDSucc", "succ", Local, IDSucc},
	{"IDEach", "each", Local, IDEach},
	{"IDLambda", "lambda", Local, IDLambda},
	{"IDSend", "send", Local, IDSend},
	{"IDUnderSend", "__send__", Local, IDUnderSend},
	{"IDInitialize", "initialize", Local, IDInitialize},
	{"IDUScore", "_", Local, IDUScore},
}, jokeNames...)
