package ident

// Reserved token values. These are the grammar's own token codes, written out
// so that callers never depend on the grammar package; grammar_check.go keeps
// them honest.
const (
	TokUPlus  ID = 321
	TokUMinus ID = 322
	TokPow    ID = 323
	TokCmp    ID = 324
	TokEq     ID = 325
	TokEqq    ID = 326
	TokNeq    ID = 327
	TokGeq    ID = 328
	TokLeq    ID = 329
	TokAndOp  ID = 330
	TokOrOp   ID = 331
	TokMatch  ID = 332
	TokNMatch ID = 333
	TokDot2   ID = 334
	TokDot3   ID = 335
	TokARef   ID = 336
	TokASet   ID = 337
	TokLShft  ID = 338
	TokRShft  ID = 339
	TokLambda ID = 352

	IDNull                      ID = 365
	IDRespondTo                 ID = 366
	IDIFunc                     ID = 367
	IDCFunc                     ID = 368
	IDCoreSetMethodAlias        ID = 369
	IDCoreSetVariableAlias      ID = 370
	IDCoreUndefMethod           ID = 371
	IDCoreDefineMethod          ID = 372
	IDCoreDefineSingletonMethod ID = 373
	IDCoreSetPostexe            ID = 374

	TokLastToken ID = 375
)

// Operator aliases. Multi-character operators reuse their token value and
// single-character ones their byte; neither goes through MakeID.
const (
	IDDot2      ID = TokDot2
	IDDot3      ID = TokDot3
	IDUPlus     ID = TokUPlus
	IDUMinus    ID = TokUMinus
	IDPow       ID = TokPow
	IDCmp       ID = TokCmp
	IDPlus      ID = '+'
	IDMinus     ID = '-'
	IDMult      ID = '*'
	IDDiv       ID = '/'
	IDMod       ID = '%'
	IDLT        ID = '<'
	IDLTLT      ID = TokLShft
	IDLE        ID = TokLeq
	IDGT        ID = '>'
	IDGE        ID = TokGeq
	IDEq        ID = TokEq
	IDEqq       ID = TokEqq
	IDNeq       ID = TokNeq
	IDNot       ID = '!'
	IDBackquote ID = '`'
	IDEqTilde   ID = TokMatch
	IDNeqTilde  ID = TokNMatch
	IDARef      ID = TokARef
	IDASet      ID = TokASet
)

// ReservedToken describes one hand-assigned literal of the reserved range.
type ReservedToken struct {
	// Const is the Go constant in this package.
	Const string
	// Token is the matching constant in internal/token.
	Token string
	// Grammar is the name the grammar declares the token under.
	Grammar string
	// Symbol is the method name the value stands for, if any.
	Symbol string
	Value  ID
}

var reservedTokens = [...]ReservedToken{
	{"TokUPlus", "UPlus", "tUPLUS", "+@", TokUPlus},
	{"TokUMinus", "UMinus", "tUMINUS", "-@", TokUMinus},
	{"TokPow", "Pow", "tPOW", "**", TokPow},
	{"TokCmp", "Cmp", "tCMP", "<=>", TokCmp},
	{"TokEq", "Eq", "tEQ", "==", TokEq},
	{"TokEqq", "Eqq", "tEQQ", "===", TokEqq},
	{"TokNeq", "Neq", "tNEQ", "!=", TokNeq},
	{"TokGeq", "Geq", "tGEQ", ">=", TokGeq},
	{"TokLeq", "Leq", "tLEQ", "<=", TokLeq},
	{"TokAndOp", "AndOp", "tANDOP", "&&", TokAndOp},
	{"TokOrOp", "OrOp", "tOROP", "||", TokOrOp},
	{"TokMatch", "Match", "tMATCH", "=~", TokMatch},
	{"TokNMatch", "NMatch", "tNMATCH", "!~", TokNMatch},
	{"TokDot2", "Dot2", "tDOT2", "..", TokDot2},
	{"TokDot3", "Dot3", "tDOT3", "...", TokDot3},
	{"TokARef", "ARef", "tAREF", "[]", TokARef},
	{"TokASet", "ASet", "tASET", "[]=", TokASet},
	{"TokLShft", "LShft", "tLSHFT", "<<", TokLShft},
	{"TokRShft", "RShft", "tRSHFT", ">>", TokRShft},
	{"TokLambda", "Lambda", "tLAMBDA", "->", TokLambda},
	{"IDNull", "IDNull", "idNULL", "", IDNull},
	{"IDRespondTo", "IDRespondTo", "idRespond_to", "respond_to?", IDRespondTo},
	{"IDIFunc", "IDIFunc", "idIFUNC", "<IFUNC>", IDIFunc},
	{"IDCFunc", "IDCFunc", "idCFUNC", "<CFUNC>", IDCFunc},
	{"IDCoreSetMethodAlias", "IDCoreSetMethodAlias", "id_core_set_method_alias", "core#set_method_alias", IDCoreSetMethodAlias},
	{"IDCoreSetVariableAlias", "IDCoreSetVariableAlias", "id_core_set_variable_alias", "core#set_variable_alias", IDCoreSetVariableAlias},
	{"IDCoreUndefMethod", "IDCoreUndefMethod", "id_core_undef_method", "core#undef_method", IDCoreUndefMethod},
	{"IDCoreDefineMethod", "IDCoreDefineMethod", "id_core_define_method", "core#define_method", IDCoreDefineMethod},
	{"IDCoreDefineSingletonMethod", "IDCoreDefineSingletonMethod", "id_core_define_singleton_method", "core#define_singleton_method", IDCoreDefineSingletonMethod},
	{"IDCoreSetPostexe", "IDCoreSetPostexe", "id_core_set_postexe", "core#set_postexe", IDCoreSetPostexe},
	{"TokLastToken", "LastToken", "tLAST_TOKEN", "", TokLastToken},
}

// Reserved returns the reserved literals in declaration order.
func Reserved() []ReservedToken {
	out := make([]ReservedToken, len(reservedTokens))
	copy(out, reservedTokens[:])
	return out
}

type operatorAlias struct {
	Const  string
	Symbol string
	Value  ID
	// Token is the reserved literal the alias must equal; empty for
	// single-character operators.
	Token string
}

var operatorAliases = [...]operatorAlias{
	{"IDDot2", "..", IDDot2, "TokDot2"},
	{"IDDot3", "...", IDDot3, "TokDot3"},
	{"IDUPlus", "+@", IDUPlus, "TokUPlus"},
	{"IDUMinus", "-@", IDUMinus, "TokUMinus"},
	{"IDPow", "**", IDPow, "TokPow"},
	{"IDCmp", "<=>", IDCmp, "TokCmp"},
	{"IDPlus", "+", IDPlus, ""},
	{"IDMinus", "-", IDMinus, ""},
	{"IDMult", "*", IDMult, ""},
	{"IDDiv", "/", IDDiv, ""},
	{"IDMod", "%", IDMod, ""},
	{"IDLT", "<", IDLT, ""},
	{"IDLTLT", "<<", IDLTLT, "TokLShft"},
	{"IDLE", "<=", IDLE, "TokLeq"},
	{"IDGT", ">", IDGT, ""},
	{"IDGE", ">=", IDGE, "TokGeq"},
	{"IDEq", "==", IDEq, "TokEq"},
	{"IDEqq", "===", IDEqq, "TokEqq"},
	{"IDNeq", "!=", IDNeq, "TokNeq"},
	{"IDNot", "!", IDNot, ""},
	{"IDBackquote", "`", IDBackquote, ""},
	{"IDEqTilde", "=~", IDEqTilde, "TokMatch"},
	{"IDNeqTilde", "!~", IDNeqTilde, "TokNMatch"},
	{"IDARef", "[]", IDARef, "TokARef"},
	{"IDASet", "[]=", IDASet, "TokASet"},
}
