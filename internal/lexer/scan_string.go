package lexer

import (
	"csskit/internal/diag"
	"csskit/internal/token"
)

// scanString consumes a quoted literal. A backslash always takes the next
// character with it. Without a closing quote the literal stops before the
// end of line (or at EOF) and is still emitted as a String.
func (lx *Lexer) scanString(quote rune) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		r := lx.cursor.Peek()
		switch r {
		case quote:
			lx.cursor.Bump()
			return lx.emit(token.String, start)
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		case '\n':
			lx.warn(diag.LexUnterminatedString, uint32(start), lx.cursor.Off, "unterminated string")
			return lx.emit(token.String, start)
		default:
			lx.cursor.Bump()
		}
	}
	lx.warn(diag.LexUnterminatedString, uint32(start), lx.cursor.Off, "unterminated string")
	return lx.emit(token.String, start)
}
