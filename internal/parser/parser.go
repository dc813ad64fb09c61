package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/lexer"
	"csskit/internal/source"
	"csskit/internal/token"
)

// Parser holds the state for one input.
type Parser struct {
	toks  []token.Token
	pos   int
	lines *source.Lines
	opts  Options
	depth int
	// offset reported for EOF
	end uint32
}

// Parse tokenizes and parses text.
func Parse(text string, opts ...Option) (*ast.Root, error) {
	o := buildOptions(opts)
	if n := utf8.RuneCountInString(text); uint64(n) > o.sizeLimit() {
		err := &diag.SyntaxError{
			Code:    diag.SynTooLarge,
			Message: fmt.Sprintf("Input of %d characters exceeds the limit of %d", n, o.sizeLimit()),
			File:    o.File,
			Pos:     source.Pos{LineCol: source.LineCol{Line: 1, Col: 1}},
		}
		report(o, err)
		return nil, err
	}
	toks := lexer.TokenizeWith(text, lexer.Options{Reporter: o.Reporter, File: o.FileID})
	return ParseTokens(text, toks, o)
}

// ParseTokens parses an already tokenized text. toks must come from
// lexer.Tokenize(text).
func ParseTokens(text string, toks []token.Token, o Options) (*ast.Root, error) {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	lines := source.NewLines(text)
	p := &Parser{
		toks:  toks,
		lines: lines,
		opts:  o,
		end:   lines.Len(),
	}
	root, err := p.parseRoot()
	if err != nil {
		var se *diag.SyntaxError
		if errors.As(err, &se) {
			report(o, se)
		}
		return nil, err
	}
	return root, nil
}

func report(o Options, se *diag.SyntaxError) {
	if o.Reporter == nil {
		return
	}
	d := se.Diagnostic(o.FileID)
	o.Reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks)
}

func (p *Parser) peek() token.Token {
	if p.eof() {
		return token.Token{Kind: token.EOF, Start: p.end, End: p.end}
	}
	return p.toks[p.pos]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.eof() {
		p.pos++
	}
	return tok
}

// tokAt returns toks[i], or EOF past the end.
func (p *Parser) tokAt(i int) token.Token {
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF, Start: p.end, End: p.end}
	}
	return p.toks[i]
}

func (p *Parser) errorAt(code diag.Code, off uint32, format string, args ...any) *diag.SyntaxError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return diag.NewSyntaxError(code, p.lines, off, p.opts.File, msg)
}

// span builds the position record for a node covering toks[first..last].
func (p *Parser) span(first, last token.Token) *ast.Source {
	return &ast.Source{
		Start: p.lines.Pos(first.Start),
		End:   p.lines.Pos(last.End),
	}
}
