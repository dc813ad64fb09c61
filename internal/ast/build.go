package ast

// DeclOption customizes NewDecl.
type DeclOption func(*Decl)

// Important marks the declaration !important.
func Important() DeclOption {
	return func(d *Decl) { d.Important = true }
}

// NewDecl builds a declaration with empty Raws.
func NewDecl(prop, value string, opts ...DeclOption) *Decl {
	d := &Decl{Prop: prop, Value: value}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewRule builds a rule owning children.
func NewRule(selector string, children ...Node) *Rule {
	return &Rule{Selector: selector, Nodes: own(children)}
}

// NewRoot builds a root owning children.
func NewRoot(children ...Node) *Root {
	return &Root{Nodes: own(children)}
}

// NewAtRule builds a statement at-rule when children is empty and a block
// at-rule otherwise. Use NewAtRuleBlock for an empty block.
func NewAtRule(name string, params *string, children ...Node) *AtRule {
	return &AtRule{
		Name:    name,
		Params:  copyParams(params),
		Nodes:   own(children),
		HasBody: len(children) > 0,
	}
}

// NewAtRuleBlock builds a block at-rule, which may be empty.
func NewAtRuleBlock(name string, params *string, children ...Node) *AtRule {
	at := NewAtRule(name, params, children...)
	at.HasBody = true
	return at
}

// NewComment builds a comment. Text excludes the delimiters.
func NewComment(text string) *Comment {
	return &Comment{Text: text}
}

// Params returns a pointer to s for use as AtRule params.
func Params(s string) *string {
	return &s
}

func own(children []Node) []Node {
	if len(children) == 0 {
		return nil
	}
	out := make([]Node, len(children))
	copy(out, children)
	return out
}

func copyParams(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
