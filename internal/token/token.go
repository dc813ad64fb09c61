package token

import (
	"csskit/internal/source"
)

// Token represents a single lexeme with its character offsets.
type Token struct {
	Kind  Kind
	Text  string
	Start uint32
	End   uint32 // inclusive
}

// Span converts the inclusive offsets into a half-open source.Span.
func (t Token) Span(file source.FileID) source.Span {
	if t.Kind == EOF {
		return source.Span{File: file, Start: t.Start, End: t.Start}
	}
	return source.Span{File: file, Start: t.Start, End: t.End + 1}
}

// IsTrivia reports whether the token carries only formatting.
func (t Token) IsTrivia() bool {
	return t.Kind == Space
}

// IsPunct reports whether the token is single-character punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Colon, Semicolon, Comma, OpenBrace, CloseBrace, OpenParen, CloseParen:
		return true
	default:
		return false
	}
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// Join concatenates the source text of toks.
func Join(toks []Token) string {
	switch len(toks) {
	case 0:
		return ""
	case 1:
		return toks[0].Text
	}
	n := 0
	for _, t := range toks {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range toks {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
