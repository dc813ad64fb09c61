package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"csskit/internal/source"
	"csskit/internal/token"
)

type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

// FormatTokensPretty prints one token per line:
//
//	  1: word            "a" at 1:1-1:1
func FormatTokensPretty(w io.Writer, toks []token.Token, fs *source.FileSet, file source.FileID) error {
	lines := fs.Get(file).Lines()
	for i, tok := range toks {
		start, end := lines.LineCol(tok.Start), lines.LineCol(tok.End)
		if _, err := fmt.Fprintf(w, "%3d: %-12s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind, tok.Text, start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, toks []token.Token, fs *source.FileSet, file source.FileID) error {
	lines := fs.Get(file).Lines()
	out := make([]TokenOutput, len(toks))
	for i, tok := range toks {
		pos := lines.LineCol(tok.Start)
		out[i] = TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Start: tok.Start,
			End:   tok.End,
			Line:  pos.Line,
			Col:   pos.Col,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
