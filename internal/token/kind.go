package token

import "strconv"

// Kind is a grammar token code.
type Kind uint16

// FirstKind is the code of the first named grammar token.
const FirstKind Kind = 258

const (
	// KeywordClass represents the 'class' keyword.
	KeywordClass Kind = iota + FirstKind // keyword_class
	// KeywordModule represents the 'module' keyword.
	KeywordModule // keyword_module
	// KeywordDef represents the 'def' keyword.
	KeywordDef // keyword_def
	// KeywordUndef represents the 'undef' keyword.
	KeywordUndef // keyword_undef
	// KeywordBegin represents the 'begin' keyword.
	KeywordBegin // keyword_begin
	// KeywordRescue represents the 'rescue' keyword.
	KeywordRescue // keyword_rescue
	// KeywordEnsure represents the 'ensure' keyword.
	KeywordEnsure // keyword_ensure
	// KeywordEnd represents the 'end' keyword.
	KeywordEnd // keyword_end
	// KeywordIf represents the 'if' keyword.
	KeywordIf // keyword_if
	// KeywordUnless represents the 'unless' keyword.
	KeywordUnless // keyword_unless
	// KeywordThen represents the 'then' keyword.
	KeywordThen // keyword_then
	// KeywordElsif represents the 'elsif' keyword.
	KeywordElsif // keyword_elsif
	// KeywordElse represents the 'else' keyword.
	KeywordElse // keyword_else
	// KeywordCase represents the 'case' keyword.
	KeywordCase // keyword_case
	// KeywordWhen represents the 'when' keyword.
	KeywordWhen // keyword_when
	// KeywordWhile represents the 'while' keyword.
	KeywordWhile // keyword_while
	// KeywordUntil represents the 'until' keyword.
	KeywordUntil // keyword_until
	// KeywordFor represents the 'for' keyword.
	KeywordFor // keyword_for
	// KeywordBreak represents the 'break' keyword.
	KeywordBreak // keyword_break
	// KeywordNext represents the 'next' keyword.
	KeywordNext // keyword_next
	// KeywordRedo represents the 'redo' keyword.
	KeywordRedo // keyword_redo
	// KeywordRetry represents the 'retry' keyword.
	KeywordRetry // keyword_retry
	// KeywordIn represents the 'in' keyword.
	KeywordIn // keyword_in
	// KeywordDo represents the 'do' keyword.
	KeywordDo // keyword_do
	// KeywordDoCond represents 'do' after a loop condition.
	KeywordDoCond // keyword_do_cond
	// KeywordDoBlock represents 'do' opening a block argument.
	KeywordDoBlock // keyword_do_block
	// KeywordDoLambda represents 'do' opening a lambda body.
	KeywordDoLambda // keyword_do_LAMBDA
	// KeywordReturn represents the 'return' keyword.
	KeywordReturn // keyword_return
	// KeywordYield represents the 'yield' keyword.
	KeywordYield // keyword_yield
	// KeywordSuper represents the 'super' keyword.
	KeywordSuper // keyword_super
	// KeywordSelf represents the 'self' keyword.
	KeywordSelf // keyword_self
	// KeywordNil represents the 'nil' keyword.
	KeywordNil // keyword_nil
	// KeywordTrue represents the 'true' keyword.
	KeywordTrue // keyword_true
	// KeywordFalse represents the 'false' keyword.
	KeywordFalse // keyword_false
	// KeywordAnd represents the 'and' keyword.
	KeywordAnd // keyword_and
	// KeywordOr represents the 'or' keyword.
	KeywordOr // keyword_or
	// KeywordNot represents the 'not' keyword.
	KeywordNot // keyword_not
	// ModifierIf represents the trailing 'if' modifier.
	ModifierIf // modifier_if
	// ModifierUnless represents the trailing 'unless' modifier.
	ModifierUnless // modifier_unless
	// ModifierWhile represents the trailing 'while' modifier.
	ModifierWhile // modifier_while
	// ModifierUntil represents the trailing 'until' modifier.
	ModifierUntil // modifier_until
	// ModifierRescue represents the trailing 'rescue' modifier.
	ModifierRescue // modifier_rescue
	// KeywordAlias represents the 'alias' keyword.
	KeywordAlias // keyword_alias
	// KeywordDefined represents the 'defined?' keyword.
	KeywordDefined // keyword_defined
	// KeywordBEGIN represents the 'BEGIN' keyword.
	KeywordBEGIN // keyword_BEGIN
	// KeywordEND represents the 'END' keyword.
	KeywordEND // keyword_END
	// KeywordLine represents the '__LINE__' keyword.
	KeywordLine // keyword__LINE__
	// KeywordFile represents the '__FILE__' keyword.
	KeywordFile // keyword__FILE__
	// KeywordEncoding represents the '__ENCODING__' keyword.
	KeywordEncoding // keyword__ENCODING__

	Identifier    // tIDENTIFIER
	FID           // tFID, method name ending in ! or ?
	GVar          // tGVAR
	IVar          // tIVAR
	Constant      // tCONSTANT
	CVar          // tCVAR
	Label         // tLABEL
	Integer       // tINTEGER
	Float         // tFLOAT
	StringContent // tSTRING_CONTENT
	Char          // tCHAR
	NthRef        // tNTH_REF
	BackRef       // tBACK_REF
	RegexpEnd     // tREGEXP_END

	// UPlus is unary plus.
	UPlus // +@
	// UMinus is unary minus.
	UMinus // -@
	Pow    // **
	Cmp    // <=>
	Eq     // ==
	Eqq    // ===
	Neq    // !=
	Geq    // >=
	Leq    // <=
	AndOp  // &&
	OrOp   // ||
	Match  // =~
	NMatch // !~
	Dot2   // ..
	Dot3   // ...
	ARef   // []
	ASet   // []=
	LShft  // <<
	RShft  // >>

	Colon2     // ::
	Colon3     // :: at expression start
	OpAsgn     // +=, -= etc.
	Assoc      // =>
	LParen     // (
	LParenArg  // ( after a method name and space
	RParen     // )
	LBrack     // [
	LBrace     // {
	LBraceArg  // { opening a block argument
	Star       // * splat
	Amper      // & block pass
	Lambda     // ->
	SymBeg     // :sym
	StringBeg  // "
	XStringBeg // `
	RegexpBeg  // /
	WordsBeg   // %W
	QWordsBeg  // %w
	StringDBeg // #{
	StringDVar // #@ / #$
	StringEnd
	LamBeg

	// Lowest and UMinusNum only exist to carry operator precedence.
	Lowest
	UMinusNum

	// The remaining codes are never produced by the lexer. The grammar
	// declares them so that the runtime's internal method ids share the
	// token numbering space.
	IDNull
	IDRespondTo
	IDIFunc
	IDCFunc
	IDCoreSetMethodAlias
	IDCoreSetVariableAlias
	IDCoreUndefMethod
	IDCoreDefineMethod
	IDCoreDefineSingletonMethod
	IDCoreSetPostexe

	// LastToken closes the numbering; every other code is below it.
	LastToken // tLAST_TOKEN
)

var kindNames = [...]string{
	KeywordClass - FirstKind:    "keyword_class",
	KeywordModule - FirstKind:   "keyword_module",
	KeywordDef - FirstKind:      "keyword_def",
	KeywordUndef - FirstKind:    "keyword_undef",
	KeywordBegin - FirstKind:    "keyword_begin",
	KeywordRescue - FirstKind:   "keyword_rescue",
	KeywordEnsure - FirstKind:   "keyword_ensure",
	KeywordEnd - FirstKind:      "keyword_end",
	KeywordIf - FirstKind:       "keyword_if",
	KeywordUnless - FirstKind:   "keyword_unless",
	KeywordThen - FirstKind:     "keyword_then",
	KeywordElsif - FirstKind:    "keyword_elsif",
	KeywordElse - FirstKind:     "keyword_else",
	KeywordCase - FirstKind:     "keyword_case",
	KeywordWhen - FirstKind:     "keyword_when",
	KeywordWhile - FirstKind:    "keyword_while",
	KeywordUntil - FirstKind:    "keyword_until",
	KeywordFor - FirstKind:      "keyword_for",
	KeywordBreak - FirstKind:    "keyword_break",
	KeywordNext - FirstKind:     "keyword_next",
	KeywordRedo - FirstKind:     "keyword_redo",
	KeywordRetry - FirstKind:    "keyword_retry",
	KeywordIn - FirstKind:       "keyword_in",
	KeywordDo - FirstKind:       "keyword_do",
	KeywordDoCond - FirstKind:   "keyword_do_cond",
	KeywordDoBlock - FirstKind:  "keyword_do_block",
	KeywordDoLambda - FirstKind: "keyword_do_LAMBDA",
	KeywordReturn - FirstKind:   "keyword_return",
	KeywordYield - FirstKind:    "keyword_yield",
	KeywordSuper - FirstKind:    "keyword_super",
	KeywordSelf - FirstKind:     "keyword_self",
	KeywordNil - FirstKind:      "keyword_nil",
	KeywordTrue - FirstKind:     "keyword_true",
	KeywordFalse - FirstKind:    "keyword_false",
	KeywordAnd - FirstKind:      "keyword_and",
	KeywordOr - FirstKind:       "keyword_or",
	KeywordNot - FirstKind:      "keyword_not",
	ModifierIf - FirstKind:      "modifier_if",
	ModifierUnless - FirstKind:  "modifier_unless",
	ModifierWhile - FirstKind:   "modifier_while",
	ModifierUntil - FirstKind:   "modifier_until",
	ModifierRescue - FirstKind:  "modifier_rescue",
	KeywordAlias - FirstKind:    "keyword_alias",
	KeywordDefined - FirstKind:  "keyword_defined",
	KeywordBEGIN - FirstKind:    "keyword_BEGIN",
	KeywordEND - FirstKind:      "keyword_END",
	KeywordLine - FirstKind:     "keyword__LINE__",
	KeywordFile - FirstKind:     "keyword__FILE__",
	KeywordEncoding - FirstKind: "keyword__ENCODING__",

	Identifier - FirstKind:    "tIDENTIFIER",
	FID - FirstKind:           "tFID",
	GVar - FirstKind:          "tGVAR",
	IVar - FirstKind:          "tIVAR",
	Constant - FirstKind:      "tCONSTANT",
	CVar - FirstKind:          "tCVAR",
	Label - FirstKind:         "tLABEL",
	Integer - FirstKind:       "tINTEGER",
	Float - FirstKind:         "tFLOAT",
	StringContent - FirstKind: "tSTRING_CONTENT",
	Char - FirstKind:          "tCHAR",
	NthRef - FirstKind:        "tNTH_REF",
	BackRef - FirstKind:       "tBACK_REF",
	RegexpEnd - FirstKind:     "tREGEXP_END",

	UPlus - FirstKind:  "tUPLUS",
	UMinus - FirstKind: "tUMINUS",
	Pow - FirstKind:    "tPOW",
	Cmp - FirstKind:    "tCMP",
	Eq - FirstKind:     "tEQ",
	Eqq - FirstKind:    "tEQQ",
	Neq - FirstKind:    "tNEQ",
	Geq - FirstKind:    "tGEQ",
	Leq - FirstKind:    "tLEQ",
	AndOp - FirstKind:  "tANDOP",
	OrOp - FirstKind:   "tOROP",
	Match - FirstKind:  "tMATCH",
	NMatch - FirstKind: "tNMATCH",
	Dot2 - FirstKind:   "tDOT2",
	Dot3 - FirstKind:   "tDOT3",
	ARef - FirstKind:   "tAREF",
	ASet - FirstKind:   "tASET",
	LShft - FirstKind:  "tLSHFT",
	RShft - FirstKind:  "tRSHFT",

	Colon2 - FirstKind:     "tCOLON2",
	Colon3 - FirstKind:     "tCOLON3",
	OpAsgn - FirstKind:     "tOP_ASGN",
	Assoc - FirstKind:      "tASSOC",
	LParen - FirstKind:     "tLPAREN",
	LParenArg - FirstKind:  "tLPAREN_ARG",
	RParen - FirstKind:     "tRPAREN",
	LBrack - FirstKind:     "tLBRACK",
	LBrace - FirstKind:     "tLBRACE",
	LBraceArg - FirstKind:  "tLBRACE_ARG",
	Star - FirstKind:       "tSTAR",
	Amper - FirstKind:      "tAMPER",
	Lambda - FirstKind:     "tLAMBDA",
	SymBeg - FirstKind:     "tSYMBEG",
	StringBeg - FirstKind:  "tSTRING_BEG",
	XStringBeg - FirstKind: "tXSTRING_BEG",
	RegexpBeg - FirstKind:  "tREGEXP_BEG",
	WordsBeg - FirstKind:   "tWORDS_BEG",
	QWordsBeg - FirstKind:  "tQWORDS_BEG",
	StringDBeg - FirstKind: "tSTRING_DBEG",
	StringDVar - FirstKind: "tSTRING_DVAR",
	StringEnd - FirstKind:  "tSTRING_END",
	LamBeg - FirstKind:     "tLAMBEG",

	Lowest - FirstKind:    "tLOWEST",
	UMinusNum - FirstKind: "tUMINUS_NUM",

	IDNull - FirstKind:                      "idNULL",
	IDRespondTo - FirstKind:                 "idRespond_to",
	IDIFunc - FirstKind:                     "idIFUNC",
	IDCFunc - FirstKind:                     "idCFUNC",
	IDCoreSetMethodAlias - FirstKind:        "id_core_set_method_alias",
	IDCoreSetVariableAlias - FirstKind:      "id_core_set_variable_alias",
	IDCoreUndefMethod - FirstKind:           "id_core_undef_method",
	IDCoreDefineMethod - FirstKind:          "id_core_define_method",
	IDCoreDefineSingletonMethod - FirstKind: "id_core_define_singleton_method",
	IDCoreSetPostexe - FirstKind:            "id_core_set_postexe",

	LastToken - FirstKind: "tLAST_TOKEN",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for i, name := range kindNames {
		m[name] = FirstKind + Kind(i)
	}
	return m
}()

// String returns the name the grammar declares the token under.
func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k-FirstKind]
}

// IsValid reports whether k is a declared grammar token.
func (k Kind) IsValid() bool { return k >= FirstKind && k <= LastToken }

// Lookup returns the token declared under name.
func Lookup(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns every declared token in code order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := FirstKind; k <= LastToken; k++ {
		out = append(out, k)
	}
	return out
}
