// Package parser turns CSS text into an *ast.Root.
//
// The parser works on the fully materialized token slice produced by the
// lexer. Every node captures the whitespace around it into its Raws, so
// format.Stringify with Verbatim set reproduces the parsed text exactly. The
// parser does not recover from errors: the first problem is returned as a
// *diag.SyntaxError and no partial tree is produced.
package parser
