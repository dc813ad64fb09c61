package parser

import (
	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/token"
)

// mode selects what a block body may contain.
type mode uint8

const (
	// modeGeneral accepts rules, declarations, at-rules and comments.
	modeGeneral mode = iota
	// modeDecls accepts declarations, at-rules and comments; a '{' reached
	// while scanning a declaration is an error.
	modeDecls
)

func (p *Parser) parseRoot() (*ast.Root, error) {
	root := &ast.Root{Raws: ast.Raws{}}
	var last bool
	for {
		before := p.collectBefore()
		if p.eof() {
			root.Raws[ast.RawAfter] = before
			break
		}
		if tok := p.peek(); tok.Kind == token.CloseBrace {
			return nil, p.errorAt(diag.SynUnexpectedClose, tok.Start, "Unexpected }")
		}
		child, terminated, err := p.parseNode(modeGeneral)
		if err != nil {
			return nil, err
		}
		ast.RawsOf(child)[ast.RawBefore] = before
		root.Nodes = append(root.Nodes, child)
		if child.Type() != ast.TypeComment {
			last = terminated
		}
	}
	root.Raws[ast.RawSemicolon] = boolRaw(last)
	if len(p.toks) > 0 {
		root.Source = p.span(p.toks[0], p.toks[len(p.toks)-1])
	}
	return root, nil
}

// body is the result of parsing a brace-delimited block.
type body struct {
	nodes     []ast.Node
	after     string
	semicolon bool
	close     token.Token
}

// parseBody parses children up to and including the closing brace. The
// opening brace is already consumed; owner is the first token of the node
// the block belongs to.
func (p *Parser) parseBody(m mode, owner token.Token) (body, error) {
	var b body
	for {
		before := p.collectBefore()
		if p.eof() {
			return b, p.errorAt(diag.SynUnclosedBlock, owner.Start, "Unclosed block")
		}
		if p.at(token.CloseBrace) {
			b.after = before
			b.close = p.advance()
			return b, nil
		}
		child, terminated, err := p.parseNode(m)
		if err != nil {
			return b, err
		}
		ast.RawsOf(child)[ast.RawBefore] = before
		b.nodes = append(b.nodes, child)
		if child.Type() != ast.TypeComment {
			b.semicolon = terminated
		}
	}
}

// enter opens a nested block at the '{' token.
func (p *Parser) enter(open token.Token) error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.errorAt(diag.SynTooDeep, open.Start, "Nesting too deep (limit %d)", p.opts.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// collectBefore consumes whitespace and stray semicolons preceding a node.
func (p *Parser) collectBefore() string {
	start := p.pos
	for !p.eof() {
		k := p.toks[p.pos].Kind
		if k != token.Space && k != token.Semicolon {
			break
		}
		p.pos++
	}
	return token.Join(p.toks[start:p.pos])
}

// parseNode parses one child. terminated reports whether the node ended
// with its own ';'.
func (p *Parser) parseNode(m mode) (n ast.Node, terminated bool, err error) {
	switch p.peek().Kind {
	case token.Comment:
		return p.parseComment(), false, nil
	case token.AtWord:
		return p.parseAtRule()
	default:
		return p.parseRuleOrDecl(m)
	}
}

func boolRaw(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
