package format

import (
	"csskit/internal/ast"
)

type Options struct {
	// Table supplies defaults for raws a node does not store. The zero
	// value means ast.Defaults.
	Table ast.Table
	// Verbatim prints every stored raw as it is, so a parsed tree comes
	// back byte for byte. Otherwise two rewrites apply inside blocks: a
	// declaration whose before has no line break gets the default one, and
	// a stored before ending in a line break plus at most one space gets an
	// indent unit appended.
	Verbatim bool
}

func firstOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}
