package ast

// Override replaces one field during Clone. Overrides that do not apply to
// the node's kind are ignored.
type Override func(Node)

func WithSelector(s string) Override {
	return func(n Node) {
		if r, ok := n.(*Rule); ok {
			r.Selector = s
		}
	}
}

func WithProp(p string) Override {
	return func(n Node) {
		if d, ok := n.(*Decl); ok {
			d.Prop = p
		}
	}
}

func WithValue(v string) Override {
	return func(n Node) {
		if d, ok := n.(*Decl); ok {
			d.Value = v
		}
	}
}

func WithImportant(important bool) Override {
	return func(n Node) {
		if d, ok := n.(*Decl); ok {
			d.Important = important
		}
	}
}

func WithName(name string) Override {
	return func(n Node) {
		if a, ok := n.(*AtRule); ok {
			a.Name = name
		}
	}
}

// WithParams replaces at-rule params; nil removes them.
func WithParams(p *string) Override {
	return func(n Node) {
		if a, ok := n.(*AtRule); ok {
			a.Params = copyParams(p)
		}
	}
}

func WithText(text string) Override {
	return func(n Node) {
		if c, ok := n.(*Comment); ok {
			c.Text = text
		}
	}
}

// WithNodes replaces the children of a container with copies of children.
// A block at-rule keeps its body even when children is empty.
func WithNodes(children ...Node) Override {
	return func(n Node) {
		c, ok := n.(Container)
		if !ok {
			return
		}
		out := make([]Node, 0, len(children))
		for _, ch := range children {
			out = append(out, deepCopy(ch))
		}
		c.setChildren(out)
		if a, ok := n.(*AtRule); ok && len(out) > 0 {
			a.HasBody = true
		}
	}
}

func WithRaw(key, value string) Override {
	return func(n Node) { setRaw(n, key, value) }
}

func WithoutRaw(key string) Override {
	return func(n Node) {
		delete(*n.rawsRef(), key)
	}
}

// Clone returns a deep copy of n with overrides applied. The copy shares no
// children, raws or params with n.
func Clone(n Node, overrides ...Override) Node {
	if n == nil {
		return nil
	}
	out := deepCopy(n)
	for _, o := range overrides {
		o(out)
	}
	return out
}

func deepCopy(n Node) Node {
	switch n := n.(type) {
	case *Root:
		return &Root{Nodes: copyChildren(n.Nodes), Raws: n.Raws.Clone(), Source: copySource(n.Source)}
	case *Rule:
		return &Rule{Selector: n.Selector, Nodes: copyChildren(n.Nodes), Raws: n.Raws.Clone(), Source: copySource(n.Source)}
	case *Decl:
		return &Decl{Prop: n.Prop, Value: n.Value, Important: n.Important, Raws: n.Raws.Clone(), Source: copySource(n.Source)}
	case *AtRule:
		return &AtRule{
			Name:    n.Name,
			Params:  copyParams(n.Params),
			Nodes:   copyChildren(n.Nodes),
			HasBody: n.HasBody,
			Raws:    n.Raws.Clone(),
			Source:  copySource(n.Source),
		}
	case *Comment:
		return &Comment{Text: n.Text, Raws: n.Raws.Clone(), Source: copySource(n.Source)}
	}
	return nil
}

func copyChildren(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, ch := range nodes {
		out[i] = deepCopy(ch)
	}
	return out
}

func copySource(s *Source) *Source {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
