package ast

import (
	"csskit/internal/source"
)

// NodeType names the five node kinds.
type NodeType uint8

const (
	TypeRoot NodeType = iota + 1
	TypeRule
	TypeDecl
	TypeAtRule
	TypeComment
)

var nodeTypeNames = [...]string{
	TypeRoot:    "root",
	TypeRule:    "rule",
	TypeDecl:    "decl",
	TypeAtRule:  "atrule",
	TypeComment: "comment",
}

func (t NodeType) String() string {
	if t == 0 || int(t) >= len(nodeTypeNames) {
		return "unknown"
	}
	return nodeTypeNames[t]
}

// MarshalText renders the lower-case type name.
func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Node is implemented by *Root, *Rule, *Decl, *AtRule and *Comment only.
type Node interface {
	Type() NodeType
	// Position returns where the parser found the node, or nil for
	// constructed nodes.
	Position() *Source
	rawsRef() *Raws
}

// Container is a node with children.
type Container interface {
	Node
	Children() []Node
	setChildren([]Node)
}

// Source records the character range a parsed node covered.
// End points at the last character of the node.
type Source struct {
	Start source.Pos
	End   source.Pos
}

type Root struct {
	Nodes  []Node
	Raws   Raws
	Source *Source
}

type Rule struct {
	Selector string
	Nodes    []Node
	Raws     Raws
	Source   *Source
}

type Decl struct {
	Prop      string
	Value     string
	Important bool
	Raws      Raws
	Source    *Source
}

// AtRule is either a statement (`@import "x";`, HasBody false, no children)
// or a block (`@media print { ... }`). A block may be empty.
type AtRule struct {
	Name string
	// Params is nil when the at-rule has no parameters.
	Params  *string
	Nodes   []Node
	HasBody bool
	Raws    Raws
	Source  *Source
}

type Comment struct {
	Text   string
	Raws   Raws
	Source *Source
}

func (*Root) Type() NodeType    { return TypeRoot }
func (*Rule) Type() NodeType    { return TypeRule }
func (*Decl) Type() NodeType    { return TypeDecl }
func (*AtRule) Type() NodeType  { return TypeAtRule }
func (*Comment) Type() NodeType { return TypeComment }

func (n *Root) Position() *Source    { return n.Source }
func (n *Rule) Position() *Source    { return n.Source }
func (n *Decl) Position() *Source    { return n.Source }
func (n *AtRule) Position() *Source  { return n.Source }
func (n *Comment) Position() *Source { return n.Source }

func (n *Root) rawsRef() *Raws    { return &n.Raws }
func (n *Rule) rawsRef() *Raws    { return &n.Raws }
func (n *Decl) rawsRef() *Raws    { return &n.Raws }
func (n *AtRule) rawsRef() *Raws  { return &n.Raws }
func (n *Comment) rawsRef() *Raws { return &n.Raws }

func (n *Root) Children() []Node   { return n.Nodes }
func (n *Rule) Children() []Node   { return n.Nodes }
func (n *AtRule) Children() []Node { return n.Nodes }

func (n *Root) setChildren(c []Node)   { n.Nodes = c }
func (n *Rule) setChildren(c []Node)   { n.Nodes = c }
func (n *AtRule) setChildren(c []Node) { n.Nodes = c }

// Type returns the kind of n, or 0 for nil.
func Type(n Node) NodeType {
	if n == nil {
		return 0
	}
	return n.Type()
}

// RawsOf returns the raws of n. The map may be nil.
func RawsOf(n Node) Raws {
	if n == nil {
		return nil
	}
	return *n.rawsRef()
}

// ParamsOrEmpty returns the at-rule params, or "" when absent.
func (n *AtRule) ParamsOrEmpty() string {
	if n.Params == nil {
		return ""
	}
	return *n.Params
}

// IsStatement reports whether the at-rule has no body.
func (n *AtRule) IsStatement() bool {
	return !n.HasBody
}
