package lexer

import (
	"csskit/internal/diag"
	"csskit/internal/source"
)

// Options configure a Lexer. The zero value tokenizes silently.
type Options struct {
	// Reporter receives warnings for degraded input (unterminated strings or
	// comments). May be nil; tokenizing never fails either way.
	Reporter diag.Reporter
	// File is used for the spans of reported diagnostics.
	File source.FileID
}

func (lx *Lexer) warn(code diag.Code, start, end uint32, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	sp := source.Span{File: lx.opts.File, Start: start, End: end}
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
}
