// Package ast defines the CSS syntax tree.
//
// A tree is made of five node kinds: Root, Rule, Decl, AtRule and Comment.
// Every node owns a Raws map with the exact whitespace and punctuation the
// parser saw around it; the serializer echoes stored raws verbatim and falls
// back to the default formatting Table for anything missing. Nodes built with
// the constructors start with empty Raws and therefore print in the default
// style.
//
// Parents own their children. There are no parent pointers, so moving a node
// between trees is a plain slice operation; use Clone to copy.
package ast
