package parser

import (
	"strings"

	"csskit/internal/ast"
)

// parseComment strips the delimiters and splits the interior into left
// padding, text and right padding. A blank comment keeps everything in left.
func (p *Parser) parseComment() *ast.Comment {
	tok := p.advance()
	inner := tok.Text[2 : len(tok.Text)-2]

	text := strings.TrimLeft(inner, spaceChars)
	left := inner[:len(inner)-len(text)]
	trimmed := strings.TrimRight(text, spaceChars)
	right := text[len(trimmed):]

	return &ast.Comment{
		Text:   trimmed,
		Raws:   ast.Raws{ast.RawLeft: left, ast.RawRight: right},
		Source: p.span(tok, tok),
	}
}
