package diag

import (
	"testing"

	"csskit/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/styles/site.css", []byte("a {\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     LexUnterminatedString,
			Message:  "unterminated string",
			Primary:  source.Span{File: file, Start: 4, End: 5},
		},
		{
			Severity: SevError,
			Code:     SynUnclosedBlock,
			Message:  "Unclosed\nblock",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "block opened here"},
			},
		},
	}

	want := "error SYN2001 styles/site.css:1:1 Unclosed block\n" +
		"note SYN2001 styles/site.css:1:3 block opened here\n" +
		"warning LEX1001 styles/site.css:2:1 unterminated string"

	if got := FormatShortDiagnostics(diags, fs, true); got != want {
		t.Fatalf("unexpected diagnostics:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}
