package ast

import (
	"maps"
)

// Keys of the default formatting Table.
const (
	DefColon         = "colon"
	DefIndent        = "indent"
	DefBeforeDecl    = "before_decl"
	DefBeforeRule    = "before_rule"
	DefBeforeOpen    = "before_open"
	DefBeforeComment = "before_comment"
	DefBeforeClose   = "before_close"
	DefEmptyBody     = "empty_body"
	DefCommentLeft   = "comment_left"
	DefCommentRight  = "comment_right"
	DefSemicolon     = "semicolon"
	DefImportant     = "important"
)

// Table is a read-only lookup of default formatting. With returns a
// modified copy, so a Table can be shared between goroutines.
type Table struct {
	m map[string]string
}

// Defaults is the built-in formatting table.
var Defaults = Table{m: map[string]string{
	DefColon:         ": ",
	DefIndent:        "  ",
	DefBeforeDecl:    "\n",
	DefBeforeRule:    "\n",
	DefBeforeOpen:    " ",
	DefBeforeComment: "\n",
	DefBeforeClose:   "\n",
	DefEmptyBody:     "",
	DefCommentLeft:   " ",
	DefCommentRight:  " ",
	DefSemicolon:     "true",
	DefImportant:     " !important",
}}

// DefaultTable returns the built-in table.
func DefaultTable() Table {
	return Defaults
}

// Lookup returns the value for key. A zero Table falls back to Defaults.
func (t Table) Lookup(key string) (string, bool) {
	if t.m == nil {
		t = Defaults
	}
	v, ok := t.m[key]
	return v, ok
}

// Value returns the value for key, or "" when unknown.
func (t Table) Value(key string) string {
	v, _ := t.Lookup(key)
	return v
}

// With returns a copy of t with key set to value.
func (t Table) With(key, value string) Table {
	if t.m == nil {
		t = Defaults
	}
	m := maps.Clone(t.m)
	m[key] = value
	return Table{m: m}
}

// Len returns the number of entries.
func (t Table) Len() int {
	if t.m == nil {
		return len(Defaults.m)
	}
	return len(t.m)
}

// ForNode resolves a raw key to its default for the type of n, e.g.
// "before" on a Decl reads "before_decl". At-rules share the rule defaults.
func (t Table) ForNode(n Node, key string) string {
	switch key {
	case RawBefore:
		switch Type(n) {
		case TypeDecl:
			return t.Value(DefBeforeDecl)
		case TypeComment:
			return t.Value(DefBeforeComment)
		case TypeRoot:
			return ""
		default:
			return t.Value(DefBeforeRule)
		}
	case RawBetween:
		switch Type(n) {
		case TypeDecl:
			return t.Value(DefColon)
		case TypeAtRule:
			if at, ok := n.(*AtRule); ok && !at.HasBody {
				return ""
			}
			return t.Value(DefBeforeOpen)
		default:
			return t.Value(DefBeforeOpen)
		}
	case RawAfter:
		if Type(n) == TypeRoot {
			return ""
		}
		return t.Value(DefBeforeClose)
	case RawAfterName:
		return " "
	case RawLeft:
		return t.Value(DefCommentLeft)
	case RawRight:
		return t.Value(DefCommentRight)
	case RawValueAfter:
		return ""
	}
	return t.Value(key)
}
