package parser

import (
	"regexp"
	"strings"

	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/token"
)

const spaceChars = " \t\n\r\f"

var importantRe = regexp.MustCompile(`(?i)\s*!\s*important$`)

// scan runs the disambiguation scan from start. It stops at the first '{',
// ';' or '}' outside parentheses (or at the end of input) and reports
// whether a ':' outside parentheses was seen before it.
func (p *Parser) scan(start int) (stop int, colon bool) {
	depth := 0
	for i := start; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.OpenParen:
			depth++
		case token.CloseParen:
			if depth > 0 {
				depth--
			}
		case token.Colon:
			if depth == 0 {
				colon = true
			}
		case token.OpenBrace, token.Semicolon, token.CloseBrace:
			if depth == 0 {
				return i, colon
			}
		}
	}
	return len(p.toks), colon
}

// trimSpaceEnd moves end back over Space tokens, never past start.
func (p *Parser) trimSpaceEnd(start, end int) int {
	for end > start && p.toks[end-1].Kind == token.Space {
		end--
	}
	return end
}

func (p *Parser) parseRuleOrDecl(m mode) (ast.Node, bool, error) {
	start := p.pos
	stop, colon := p.scan(start)
	stopTok := p.tokAt(stop)

	switch stopTok.Kind {
	case token.OpenBrace:
		if m == modeDecls {
			return nil, false, p.errorAt(diag.SynUnexpectedOpen, stopTok.Start, "Unexpected {")
		}
		n, err := p.parseRule(start, stop)
		return n, false, err
	case token.Semicolon:
		if !colon {
			return nil, false, p.unknownWord(start)
		}
		n, err := p.parseDecl(start, stop, true)
		return n, true, err
	default:
		if !colon {
			return nil, false, p.unknownWord(start)
		}
		n, err := p.parseDecl(start, p.trimSpaceEnd(start, stop), false)
		return n, false, err
	}
}

func (p *Parser) unknownWord(at int) error {
	tok := p.tokAt(at)
	return p.errorAt(diag.SynUnknownWord, tok.Start, "Unknown word %s", tok.Text)
}

// parseRule builds a rule from the selector tokens [start, open) and the
// block starting at toks[open].
func (p *Parser) parseRule(start, open int) (*ast.Rule, error) {
	selText := token.Join(p.toks[start:open])
	selector := strings.TrimRight(selText, spaceChars)
	rule := &ast.Rule{
		Selector: selector,
		Raws:     ast.Raws{ast.RawBetween: selText[len(selector):]},
	}

	first := p.toks[start]
	p.pos = open
	if err := p.enter(p.advance()); err != nil {
		return nil, err
	}
	defer p.leave()

	b, err := p.parseBody(modeDecls, first)
	if err != nil {
		return nil, err
	}
	rule.Nodes = b.nodes
	rule.Raws[ast.RawAfter] = b.after
	rule.Raws[ast.RawSemicolon] = boolRaw(b.semicolon)
	rule.Source = p.span(first, b.close)
	return rule, nil
}

// parseDecl builds a declaration from toks[start:end]. When terminated,
// toks[end] is the ';' that ends it.
func (p *Parser) parseDecl(start, end int, terminated bool) (*ast.Decl, error) {
	toks := p.toks[start:end]
	ci := colonIndex(toks)

	propText := token.Join(toks[:ci])
	prop := strings.TrimRight(propText, spaceChars)
	if prop == "" {
		return nil, p.errorAt(diag.SynMissingProperty, toks[0].Start, "Missing property")
	}

	rest := token.Join(toks[ci+1:])
	value := strings.TrimLeft(rest, spaceChars)
	between := propText[len(prop):] + toks[ci].Text + rest[:len(rest)-len(value)]

	trimmed := strings.TrimRight(value, spaceChars)
	valueAfter := value[len(trimmed):]
	value = trimmed

	decl := &ast.Decl{
		Prop: prop,
		Raws: ast.Raws{ast.RawBetween: between},
	}
	if loc := importantRe.FindStringIndex(value); loc != nil {
		decl.Important = true
		decl.Raws[ast.RawImportant] = value[loc[0]:]
		value = value[:loc[0]]
	}
	decl.Value = value
	if valueAfter != "" {
		decl.Raws[ast.RawValueAfter] = valueAfter
	}

	last := toks[len(toks)-1]
	p.pos = end
	if terminated {
		last = p.advance()
	}
	decl.Source = p.span(toks[0], last)
	return decl, nil
}

// colonIndex returns the index of the first ':' outside parentheses.
// The caller guarantees there is one.
func colonIndex(toks []token.Token) int {
	depth := 0
	for i, t := range toks {
		switch t.Kind {
		case token.OpenParen:
			depth++
		case token.CloseParen:
			if depth > 0 {
				depth--
			}
		case token.Colon:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
