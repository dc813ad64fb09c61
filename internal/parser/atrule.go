package parser

import (
	"strings"

	"golang.org/x/text/cases"

	"csskit/internal/ast"
	"csskit/internal/token"
)

// declarationAtRules hold only declarations (and nested at-rules) in their
// bodies. Names are case folded.
var declarationAtRules = map[string]struct{}{
	"font-face":           {},
	"page":                {},
	"counter-style":       {},
	"font-feature-values": {},
	"viewport":            {},
	"property":            {},
	"font-palette-values": {},
}

// IsDeclarationAtRule reports whether the at-rule name (without '@') holds
// declarations rather than rules.
func IsDeclarationAtRule(name string) bool {
	_, ok := declarationAtRules[cases.Fold().String(name)]
	return ok
}

// scanParams finds the end of at-rule params: the first ';', '{' or '}'
// outside parentheses, or the end of input.
func (p *Parser) scanParams(start int) int {
	depth := 0
	for i := start; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.OpenParen:
			depth++
		case token.CloseParen:
			if depth > 0 {
				depth--
			}
		case token.Semicolon, token.OpenBrace, token.CloseBrace:
			if depth == 0 {
				return i
			}
		}
	}
	return len(p.toks)
}

func (p *Parser) parseAtRule() (ast.Node, bool, error) {
	atTok := p.advance()
	start := p.pos
	stop := p.scanParams(start)
	stopTok := p.tokAt(stop)

	end := stop
	if stopTok.Kind != token.Semicolon && stopTok.Kind != token.OpenBrace {
		// whitespace before '}' or EOF belongs to the enclosing block
		end = p.trimSpaceEnd(start, stop)
	}

	at := &ast.AtRule{
		Name: atTok.Text[1:],
		Raws: ast.Raws{},
	}
	text := token.Join(p.toks[start:end])
	params := strings.Trim(text, spaceChars)
	if params == "" {
		at.Raws[ast.RawAfterName] = ""
		at.Raws[ast.RawBetween] = text
	} else {
		lead := len(text) - len(strings.TrimLeft(text, spaceChars))
		at.Raws[ast.RawAfterName] = text[:lead]
		at.Raws[ast.RawBetween] = text[lead+len(params):]
		at.Params = &params
	}

	switch stopTok.Kind {
	case token.Semicolon:
		p.pos = stop
		at.Source = p.span(atTok, p.advance())
		return at, true, nil

	case token.OpenBrace:
		p.pos = stop
		if err := p.enter(p.advance()); err != nil {
			return nil, false, err
		}
		defer p.leave()

		m := modeGeneral
		if IsDeclarationAtRule(at.Name) {
			m = modeDecls
		}
		b, err := p.parseBody(m, atTok)
		if err != nil {
			return nil, false, err
		}
		at.HasBody = true
		at.Nodes = b.nodes
		at.Raws[ast.RawAfter] = b.after
		at.Raws[ast.RawSemicolon] = boolRaw(b.semicolon)
		at.Source = p.span(atTok, b.close)
		return at, false, nil

	default:
		p.pos = end
		last := atTok
		if end > start {
			last = p.toks[end-1]
		}
		at.Source = p.span(atTok, last)
		return at, false, nil
	}
}
