package lexer

import (
	"csskit/internal/token"
)

// Lexer produces CSS tokens one at a time. It never fails: malformed input
// degrades into ordinary tokens so that every character is covered exactly
// once.
type Lexer struct {
	cursor Cursor
	opts   Options
	look   *token.Token

	// set once a "/*" was found without any "*/" after it
	noCommentEnd bool
}

// New returns a lexer positioned at the start of text.
func New(text string, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(text),
		opts:   opts,
	}
}

// Tokenize returns all tokens of text in order. The concatenated Text of the
// result equals text. Text longer than MaxInput characters cannot be
// addressed and panics; parser.Parse rejects it with a SyntaxError instead.
func Tokenize(text string) []token.Token {
	return TokenizeWith(text, Options{})
}

// TokenizeWith is Tokenize with options.
func TokenizeWith(text string, opts Options) []token.Token {
	lx := New(text, opts)
	out := make([]token.Token, 0, len(text)/3+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

// Next returns the next token. After the input is exhausted it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Start: lx.cursor.Off, End: lx.cursor.Off}
	}

	ch := lx.cursor.Peek()
	if k, ok := token.Single(ch); ok {
		return lx.single(k)
	}

	switch {
	case isSpace(ch):
		return lx.scanSpace()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	case ch == '/':
		if _, next, ok := lx.cursor.Peek2(); ok && next == '*' {
			if tok, ok := lx.scanComment(); ok {
				return tok
			}
		}
		return lx.scanWord(token.Word)
	case ch == '@':
		return lx.scanWord(token.AtWord)
	default:
		return lx.scanWord(token.Word)
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EOF reports whether all tokens were consumed.
func (lx *Lexer) EOF() bool {
	return lx.look == nil && lx.cursor.EOF()
}

func (lx *Lexer) single(k token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(k, start)
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	return token.Token{
		Kind:  k,
		Text:  lx.cursor.TextFrom(start),
		Start: uint32(start),
		End:   lx.cursor.Off - 1,
	}
}

func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Space, start)
}

// scanWord consumes at least one character, then every following word
// character. A backslash escapes the character after it, so `.a\:b` stays
// a single word.
func (lx *Lexer) scanWord(k token.Kind) token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Bump() == '\\' && !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	for !lx.cursor.EOF() {
		r := lx.cursor.Peek()
		if r == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if !isWordChar(r) {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(k, start)
}
