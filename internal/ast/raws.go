package ast

import (
	"maps"
)

// Raw keys recorded by the parser.
const (
	// RawBefore is the whitespace (and stray semicolons) preceding a node.
	RawBefore = "before"
	// RawAfter is the whitespace before a container's closing brace, or the
	// trailing whitespace of a Root.
	RawAfter = "after"
	// RawBetween is the text between a declaration's prop and value
	// (including the colon), or between a selector/at-rule params and '{'.
	RawBetween = "between"
	// RawAfterName is the whitespace between an at-rule name and its params.
	RawAfterName = "afterName"
	RawLeft      = "left"
	RawRight     = "right"
	// RawSemicolon is "true" when the last declaration of a container was
	// terminated by ';'.
	RawSemicolon = "semicolon"
	// RawImportant is the literal "!important" suffix, e.g. " !IMPORTANT".
	RawImportant = "important"
	// RawValueAfter is the whitespace between a declaration value and ';'.
	RawValueAfter = "value_after"
)

// Raws holds formatting metadata of one node. It never affects meaning.
type Raws map[string]string

// Get returns the stored value and whether it exists.
func (r Raws) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

func (r Raws) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Clone returns an independent copy; nil stays nil.
func (r Raws) Clone() Raws {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Get returns the raw value of key on n. Without a stored value it returns
// fallback[0] when given, else the default formatting for key and n's type.
func Get(n Node, key string, fallback ...string) string {
	if v, ok := RawsOf(n).Get(key); ok {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return Defaults.ForNode(n, key)
}

// Put returns a copy of n whose Raws has key set to value. n is unchanged.
func Put(n Node, key, value string) Node {
	return Clone(n, WithRaw(key, value))
}

func setRaw(n Node, key, value string) {
	ref := n.rawsRef()
	if *ref == nil {
		*ref = Raws{}
	}
	(*ref)[key] = value
}
