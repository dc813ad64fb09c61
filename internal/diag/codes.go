package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Tokenizer (never fatal)
	LexInfo                Code = 1000
	LexUnterminatedString  Code = 1001
	LexUnterminatedComment Code = 1002

	// Parser
	SynInfo            Code = 2000
	SynUnclosedBlock   Code = 2001
	SynUnexpectedClose Code = 2002
	SynUnknownWord     Code = 2003
	SynMissingProperty Code = 2004
	SynTooDeep         Code = 2005
	SynUnexpectedOpen  Code = 2006
	SynTooLarge        Code = 2007

	// Round-trip verification
	ChkInfo              Code = 3000
	ChkRoundTripMismatch Code = 3001
	ChkNotFormatted      Code = 3002

	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Project configuration
	ProjInfo          Code = 5000
	ProjInvalidConfig Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnterminatedString:  "Unterminated string",
	LexUnterminatedComment: "Unterminated comment",
	SynInfo:                "Syntax information",
	SynUnclosedBlock:       "Unclosed block",
	SynUnexpectedClose:     "Unexpected }",
	SynUnknownWord:         "Unknown word",
	SynMissingProperty:     "Missing property",
	SynTooDeep:             "Nesting too deep",
	SynUnexpectedOpen:      "Unexpected {",
	SynTooLarge:            "Input too large",
	ChkInfo:                "Check information",
	ChkRoundTripMismatch:   "Round trip does not reproduce the input",
	ChkNotFormatted:        "File is not formatted",
	IOLoadFileError:        "I/O error",
	IOWriteFileError:       "Write error",
	ProjInfo:               "Project information",
	ProjInvalidConfig:      "Invalid csskit.toml",
}

// ID returns the stable identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CHK%04d", ic)
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
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// MarshalText renders the ID so JSON output stays stable.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.ID()), nil
}
