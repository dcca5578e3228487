package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// reserved table checks
	VerInfo             Code = 1000
	VerLiteralMismatch  Code = 1001
	VerTokenMissing     Code = 1002
	VerDuplicateToken   Code = 1003
	VerIDCollision      Code = 1004
	VerAliasMismatch    Code = 1005
	VerDerivedOverlap   Code = 1006
	VerInvalidScope     Code = 1007
	VerUnknownTokenName Code = 1008

	// snapshot drift
	SnpInfo          Code = 2000
	SnpChangedID     Code = 2001
	SnpRemovedEntry  Code = 2002
	SnpAddedEntry    Code = 2003
	SnpSchemaChanged Code = 2004
	SnpLayoutChanged Code = 2005

	// grammar inputs
	GrmInfo         Code = 3000
	GrmBadCode      Code = 3001
	GrmConflict     Code = 3002
	GrmEmpty        Code = 3003
	GrmUnknownInput Code = 3004

	IOLoadFileError Code = 4001

	CfgInfo         Code = 5000
	CfgInvalidValue Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown error",
		VerInfo:             "Reserved table information",
		VerLiteralMismatch:  "Reserved literal does not match the grammar",
		VerTokenMissing:     "Grammar does not declare a reserved token",
		VerDuplicateToken:   "Grammar assigns one code to several reserved tokens",
		VerIDCollision:      "Identifier value used twice",
		VerAliasMismatch:    "Operator alias differs from its token value",
		VerDerivedOverlap:   "Derived identifier overlaps the reserved range",
		VerInvalidScope:     "Identifier carries an unassigned scope tag",
		VerUnknownTokenName: "Reserved token name unknown to the grammar package",
		SnpInfo:             "Snapshot information",
		SnpChangedID:        "Identifier value changed since snapshot",
		SnpRemovedEntry:     "Identifier removed since snapshot",
		SnpAddedEntry:       "Identifier added since snapshot",
		SnpSchemaChanged:    "Snapshot schema version differs",
		SnpLayoutChanged:    "Scope tag layout differs from snapshot",
		GrmInfo:             "Grammar information",
		GrmBadCode:          "Token code is not a valid number",
		GrmConflict:         "Token declared twice with different codes",
		GrmEmpty:            "Grammar input declares no tokens",
		GrmUnknownInput:     "Unrecognised grammar input format",
		IOLoadFileError:     "I/O load file error",
		CfgInfo:             "Configuration information",
		CfgInvalidValue:     "Invalid configuration value",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("VER%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SNP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("GRM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
