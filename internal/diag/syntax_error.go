package diag

import (
	"errors"
	"fmt"

	"csskit/internal/source"
)

// Sentinel errors matched by SyntaxError.Unwrap.
var (
	ErrUnclosedBlock   = errors.New("unclosed block")
	ErrUnexpectedClose = errors.New("unexpected }")
	ErrUnexpectedOpen  = errors.New("unexpected {")
	ErrUnknownWord     = errors.New("unknown word")
	ErrMissingProperty = errors.New("missing property")
	ErrTooDeep         = errors.New("nesting too deep")
	ErrTooLarge        = errors.New("input too large")
)

var sentinels = map[Code]error{
	SynUnclosedBlock:   ErrUnclosedBlock,
	SynUnexpectedClose: ErrUnexpectedClose,
	SynUnexpectedOpen:  ErrUnexpectedOpen,
	SynUnknownWord:     ErrUnknownWord,
	SynMissingProperty: ErrMissingProperty,
	SynTooDeep:         ErrTooDeep,
	SynTooLarge:        ErrTooLarge,
}

// SyntaxError reports malformed input. Pos points at the offending token.
type SyntaxError struct {
	Code    Code
	Message string
	File    string
	Pos     source.Pos
	// Snippet is the full source line containing Pos.
	Snippet string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Pos.Line, e.Pos.Col, e.Message)
}

// Unwrap returns the sentinel for e.Code, or nil.
func (e *SyntaxError) Unwrap() error {
	return sentinels[e.Code]
}

// Diagnostic converts e into an error diagnostic anchored in file.
func (e *SyntaxError) Diagnostic(file source.FileID) Diagnostic {
	return NewError(e.Code, source.Span{File: file, Start: e.Pos.Offset, End: e.Pos.Offset + 1}, e.Message)
}

// NewSyntaxError resolves off against lines and builds the error.
func NewSyntaxError(code Code, lines *source.Lines, off uint32, file, msg string) *SyntaxError {
	pos := lines.Pos(off)
	return &SyntaxError{
		Code:    code,
		Message: msg,
		File:    file,
		Pos:     pos,
		Snippet: lines.Line(pos.Line),
	}
}
