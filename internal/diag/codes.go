package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1003

	// Парсерные
	SynInfo              Code = 2000
	SynExpectIdentifier  Code = 2001
	SynExpectFnName      Code = 2002
	SynExpectLParen      Code = 2003
	SynExpectRParen      Code = 2004
	SynExpectBody        Code = 2005
	SynUnclosedBlock     Code = 2006
	SynUnclosedCondition Code = 2007

	// Стилистические правила
	StyInfo       Code = 3000
	StyNaming     Code = 3001
	StySpacing    Code = 3002
	StyBlankLines Code = 3003
	StyComplexity Code = 3004
	StyUnusedVar  Code = 3005

	// Ввод-вывод
	IOInfo           Code = 4000
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Конфигурация
	CfgInfo              Code = 5000
	CfgUnreadable        Code = 5001
	CfgBadValue          Code = 5002
	CfgBadPattern        Code = 5003
	CfgUnsupportedFormat Code = 5004
	CfgMissing           Code = 5005

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unexpected character",
		LexUnterminatedBlockComment: "Unterminated block comment",
		SynInfo:                     "Syntax information",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectFnName:             "Expected function name",
		SynExpectLParen:             "Expected '('",
		SynExpectRParen:             "Expected ')'",
		SynExpectBody:               "Expected '{'",
		SynUnclosedBlock:            "Unclosed block",
		SynUnclosedCondition:        "Unclosed condition",
		StyInfo:                     "Style information",
		StyNaming:                   "Naming violation",
		StySpacing:                  "Missing space around operator",
		StyBlankLines:               "Too many blank lines",
		StyComplexity:               "Complexity too high",
		StyUnusedVar:                "Unused variable",
		IOInfo:                      "I/O information",
		IOLoadFileError:             "I/O load file error",
		IOWriteFileError:            "I/O write file error",
		CfgInfo:                     "Configuration information",
		CfgUnreadable:               "Configuration file unreadable",
		CfgBadValue:                 "Configuration value has wrong type",
		CfgBadPattern:               "Invalid naming pattern",
		CfgUnsupportedFormat:        "Unsupported configuration format",
		CfgMissing:                  "Configuration file not found",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

// Category is the report section a code belongs to.
type Category uint8

const (
	CatUnknown Category = iota
	CatLexical
	CatSyntax
	CatStyle
	CatIO
	CatConfig
	CatObserv
)

// Category derives the report section from the code range.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CatLexical
	case ic >= 2000 && ic < 3000:
		return CatSyntax
	case ic >= 3000 && ic < 4000:
		return CatStyle
	case ic >= 4000 && ic < 5000:
		return CatIO
	case ic >= 5000 && ic < 6000:
		return CatConfig
	case ic >= 6000 && ic < 7000:
		return CatObserv
	}
	return CatUnknown
}

func (c Code) ID() string {
	switch c.Category() {
	case CatLexical:
		return fmt.Sprintf("LEX%04d", int(c))
	case CatSyntax:
		return fmt.Sprintf("SYN%04d", int(c))
	case CatStyle:
		return fmt.Sprintf("STY%04d", int(c))
	case CatIO:
		return fmt.Sprintf("IO%04d", int(c))
	case CatConfig:
		return fmt.Sprintf("CFG%04d", int(c))
	case CatObserv:
		return fmt.Sprintf("OBS%04d", int(c))
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
