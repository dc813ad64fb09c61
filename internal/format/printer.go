package format

import (
	"strings"

	"csskit/internal/ast"
)

type printer struct {
	w   *Writer
	opt Options
	tbl ast.Table
}

// Stringify serializes n. Only the first Options value is used.
func Stringify(n ast.Node, opts ...Options) string {
	w := NewWriter(256)
	Write(w, n, opts...)
	return w.String()
}

// Write serializes n into w.
func Write(w *Writer, n ast.Node, opts ...Options) {
	opt := firstOptions(opts)
	p := &printer{w: w, opt: opt, tbl: opt.Table}
	p.top(n)
}

// top prints a node that has no parent. Its own before is not printed; a
// lone statement at-rule keeps its ';', a lone declaration gets none.
func (p *printer) top(n ast.Node) {
	if n == nil {
		return
	}
	indent := ""
	if b, ok := ast.RawsOf(n).Get(ast.RawBefore); ok {
		indent = indentOf(b, "")
	}
	p.node(n, indent)
	if at, ok := n.(*ast.AtRule); ok && !at.HasBody {
		p.w.WriteString(";")
	}
}

// node prints n without its before. indent is the indentation of the line
// n starts on.
func (p *printer) node(n ast.Node, indent string) {
	switch n := n.(type) {
	case *ast.Root:
		p.body(n, "")
		p.w.WriteString(p.raw(n, ast.RawAfter))
	case *ast.Rule:
		p.w.WriteString(n.Selector)
		p.block(n, indent)
	case *ast.AtRule:
		p.atRule(n, indent)
	case *ast.Decl:
		p.decl(n)
	case *ast.Comment:
		p.w.WriteString("/*")
		p.w.WriteString(p.raw(n, ast.RawLeft))
		p.w.WriteString(n.Text)
		p.w.WriteString(p.raw(n, ast.RawRight))
		p.w.WriteString("*/")
	}
}

func (p *printer) decl(d *ast.Decl) {
	p.w.WriteString(d.Prop)
	p.w.WriteString(p.raw(d, ast.RawBetween))
	p.w.WriteString(d.Value)
	if d.Important {
		p.w.WriteString(p.raw(d, ast.RawImportant))
	}
	if v, ok := d.Raws.Get(ast.RawValueAfter); ok {
		p.w.WriteString(v)
	}
}

func (p *printer) atRule(at *ast.AtRule, indent string) {
	p.w.WriteString("@")
	p.w.WriteString(at.Name)
	if v, ok := at.Raws.Get(ast.RawAfterName); ok {
		p.w.WriteString(v)
	} else if at.Params != nil {
		p.w.WriteString(" ")
	}
	if at.Params != nil {
		p.w.WriteString(*at.Params)
	}
	if !at.HasBody {
		p.w.WriteString(p.raw(at, ast.RawBetween))
		return
	}
	p.block(at, indent)
}

// block prints between, the braces, the children and after.
func (p *printer) block(c ast.Container, indent string) {
	p.w.WriteString(p.raw(c, ast.RawBetween))
	p.w.WriteString("{")
	p.body(c, indent)
	p.w.WriteString(p.after(c, indent))
	p.w.WriteString("}")
}

func (p *printer) after(c ast.Container, indent string) string {
	if v, ok := ast.RawsOf(c).Get(ast.RawAfter); ok {
		return v
	}
	if len(c.Children()) == 0 {
		return p.tbl.Value(ast.DefEmptyBody)
	}
	return withIndent(p.tbl.Value(ast.DefBeforeClose), indent)
}

// body prints the children of c. indent is the indentation of c itself.
func (p *printer) body(c ast.Container, indent string) {
	children := c.Children()
	last := lastNonComment(children)
	_, isRoot := c.(*ast.Root)
	childIndent := ""
	if !isRoot {
		childIndent = siblingIndent(children, indent+p.tbl.Value(ast.DefIndent))
	}

	for i, ch := range children {
		if ch == nil {
			continue
		}
		before := p.before(ch, i, isRoot, childIndent)
		p.w.WriteString(before)
		p.node(ch, indentOf(before, childIndent))
		if needsSemicolon(ch) && (i != last || p.raw(c, ast.RawSemicolon) == "true") {
			p.w.WriteString(";")
		}
	}
}

// before returns the whitespace printed ahead of ch. Inside blocks it is
// rewritten unless the options ask for verbatim output.
func (p *printer) before(ch ast.Node, i int, inRoot bool, childIndent string) string {
	stored, ok := ast.RawsOf(ch).Get(ast.RawBefore)
	if inRoot || p.opt.Verbatim {
		if ok {
			return stored
		}
		if inRoot && i == 0 {
			return ""
		}
		return withIndent(p.tbl.ForNode(ch, ast.RawBefore), childIndent)
	}
	if !ok || (ch.Type() == ast.TypeDecl && !strings.Contains(stored, "\n")) {
		stored = withIndent(p.tbl.ForNode(ch, ast.RawBefore), childIndent)
	}
	return p.indentShort(stored)
}

// indentShort appends one indent unit when the last line of before is
// empty or a single space.
func (p *printer) indentShort(before string) string {
	nl := strings.LastIndexByte(before, '\n')
	if nl < 0 {
		return before
	}
	if tail := before[nl+1:]; tail == "" || tail == " " {
		return before + p.tbl.Value(ast.DefIndent)
	}
	return before
}

// siblingIndent returns the indentation of the first child that starts on
// its own indented line, or fallback.
func siblingIndent(children []ast.Node, fallback string) string {
	for _, ch := range children {
		if ch == nil {
			continue
		}
		b, ok := ast.RawsOf(ch).Get(ast.RawBefore)
		if !ok {
			continue
		}
		if in := indentOf(b, ""); in != "" {
			return in
		}
	}
	return fallback
}

func (p *printer) raw(n ast.Node, key string) string {
	if v, ok := ast.RawsOf(n).Get(key); ok {
		return v
	}
	return p.tbl.ForNode(n, key)
}

// withIndent appends indent to a default that ends a line.
func withIndent(def, indent string) string {
	if strings.Contains(def, "\n") {
		return def + indent
	}
	return def
}

// indentOf returns the whitespace after the last line break of before, or
// fallback when before has no line break.
func indentOf(before, fallback string) string {
	nl := strings.LastIndexByte(before, '\n')
	if nl < 0 {
		return fallback
	}
	tail := before[nl+1:]
	if strings.Trim(tail, " \t") != "" {
		return ""
	}
	return tail
}

func needsSemicolon(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Decl:
		return true
	case *ast.AtRule:
		return !n.HasBody
	}
	return false
}

func lastNonComment(nodes []ast.Node) int {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] != nil && nodes[i].Type() != ast.TypeComment {
			return i
		}
	}
	return -1
}
