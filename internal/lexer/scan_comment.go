package lexer

import (
	"csskit/internal/diag"
	"csskit/internal/token"
)

// scanComment consumes "/*" up to the first "*/". Comments do not nest.
// It returns false, leaving the cursor untouched, when the comment is never
// closed; the caller then scans a word starting at '/'.
func (lx *Lexer) scanComment() (token.Token, bool) {
	if lx.noCommentEnd {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	end := lx.cursor.IndexFrom("*/")
	if end < 0 {
		lx.cursor.Reset(start)
		lx.noCommentEnd = true
		lx.warn(diag.LexUnterminatedComment, uint32(start), lx.cursor.Limit, "unterminated comment")
		return token.Token{}, false
	}
	lx.cursor.Reset(Mark(end + 2))
	return lx.emit(token.Comment, start), true
}
