// Package format turns an AST back into CSS text.
//
// Stored raws are written verbatim, so a tree produced by the parser prints
// exactly the text it came from. Anything a node does not store is taken
// from the default formatting table, with indentation derived top-down from
// the enclosing blocks. Stringify never fails.
package format
