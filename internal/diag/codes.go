package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004

	// Синтаксис инвокации
	SynInfo                   Code = 2000
	SynExpectImpl             Code = 2001
	SynUnterminatedBody       Code = 2002
	SynEmptyTargetList        Code = 2003
	SynMalformedGenerics      Code = 2004
	SynMissingTargetSeparator Code = 2005
	SynExpectTarget           Code = 2006
	SynExpectWhereParen       Code = 2007
	SynUnterminatedWhere      Code = 2008
	SynExpectBody             Code = 2009
	SynExpectTraitTarget      Code = 2010
	SynUnterminatedInvocation Code = 2011

	// IO / драйвер
	IOInfo        Code = 4000
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002

	// Проект / манифест
	PrjInfo        Code = 5000
	PrjNoManifest  Code = 5001
	PrjBadManifest Code = 5002
	PrjBadPattern  Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:                     "lexical info",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexUnterminatedChar:         "unterminated character literal",

	SynInfo:                   "syntax info",
	SynExpectImpl:             "expected 'impl' keyword",
	SynUnterminatedBody:       "unterminated body",
	SynEmptyTargetList:        "empty target list",
	SynMalformedGenerics:      "malformed generic parameters",
	SynMissingTargetSeparator: "missing ',' between targets",
	SynExpectTarget:           "expected target type",
	SynExpectWhereParen:       "expected '(' after 'where'",
	SynUnterminatedWhere:      "unterminated where clause",
	SynExpectBody:             "expected '{' to open the body",
	SynExpectTraitTarget:      "expected type after 'for'",
	SynUnterminatedInvocation: "unterminated invocation",

	IOInfo:        "io info",
	IOReadFailed:  "failed to read input",
	IOWriteFailed: "failed to write output",

	PrjInfo:        "project info",
	PrjNoManifest:  "no manifest found",
	PrjBadManifest: "malformed manifest",
	PrjBadPattern:  "malformed input pattern",
}

// ID returns the stable, banded identifier, e.g. "SYN2003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
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
