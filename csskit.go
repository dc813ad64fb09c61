// Package csskit parses CSS into a tree that remembers its formatting and
// prints it back. Parse followed by verbatim Stringify reproduces the input
// exactly; nodes built with the constructors are printed with readable
// defaults.
package csskit

import (
	"csskit/internal/ast"
	"csskit/internal/diag"
	"csskit/internal/format"
	"csskit/internal/lexer"
	"csskit/internal/parser"
	"csskit/internal/token"
)

type (
	Node    = ast.Node
	Root    = ast.Root
	Rule    = ast.Rule
	Decl    = ast.Decl
	AtRule  = ast.AtRule
	Comment = ast.Comment
	Raws    = ast.Raws
	Source  = ast.Source

	Token     = token.Token
	TokenKind = token.Kind

	// Type is the variant of a node as returned by NodeType.
	Type = ast.NodeType

	Override      = ast.Override
	DeclOption    = ast.DeclOption
	Option        = parser.Option
	FormatOptions = format.Options
	Table         = ast.Table

	SyntaxError = diag.SyntaxError
)

const (
	TypeRoot    = ast.TypeRoot
	TypeRule    = ast.TypeRule
	TypeDecl    = ast.TypeDecl
	TypeAtRule  = ast.TypeAtRule
	TypeComment = ast.TypeComment
)

const (
	TokenWord       = token.Word
	TokenAtWord     = token.AtWord
	TokenString     = token.String
	TokenComment    = token.Comment
	TokenSpace      = token.Space
	TokenColon      = token.Colon
	TokenSemicolon  = token.Semicolon
	TokenComma      = token.Comma
	TokenOpenBrace  = token.OpenBrace
	TokenCloseBrace = token.CloseBrace
	TokenOpenParen  = token.OpenParen
	TokenCloseParen = token.CloseParen
)

// Raw keys.
const (
	RawBefore     = ast.RawBefore
	RawAfter      = ast.RawAfter
	RawBetween    = ast.RawBetween
	RawAfterName  = ast.RawAfterName
	RawLeft       = ast.RawLeft
	RawRight      = ast.RawRight
	RawSemicolon  = ast.RawSemicolon
	RawImportant  = ast.RawImportant
	RawValueAfter = ast.RawValueAfter
)

// Keys of a formatting Table.
const (
	DefColon         = ast.DefColon
	DefIndent        = ast.DefIndent
	DefBeforeDecl    = ast.DefBeforeDecl
	DefBeforeRule    = ast.DefBeforeRule
	DefBeforeOpen    = ast.DefBeforeOpen
	DefBeforeComment = ast.DefBeforeComment
	DefBeforeClose   = ast.DefBeforeClose
	DefEmptyBody     = ast.DefEmptyBody
	DefCommentLeft   = ast.DefCommentLeft
	DefCommentRight  = ast.DefCommentRight
	DefSemicolon     = ast.DefSemicolon
	DefImportant     = ast.DefImportant
)

// Sentinels matched by errors.Is on a *SyntaxError.
var (
	ErrUnclosedBlock   = diag.ErrUnclosedBlock
	ErrUnexpectedClose = diag.ErrUnexpectedClose
	ErrUnexpectedOpen  = diag.ErrUnexpectedOpen
	ErrUnknownWord     = diag.ErrUnknownWord
	ErrMissingProperty = diag.ErrMissingProperty
	ErrTooDeep         = diag.ErrTooDeep
	ErrTooLarge        = diag.ErrTooLarge
)

// Parse builds a tree from text. The only error it returns is *SyntaxError.
func Parse(text string, opts ...Option) (*Root, error) {
	return parser.Parse(text, opts...)
}

// WithMaxDepth limits block nesting; deeper input fails with ErrTooDeep.
func WithMaxDepth(n int) Option { return parser.WithMaxDepth(n) }

// WithMaxSize limits the input length in characters.
func WithMaxSize(n int) Option { return parser.WithMaxSize(n) }

// WithFile prefixes syntax error messages with path.
func WithFile(path string) Option { return parser.WithFile(path) }

// Stringify prints n using its stored raws and the default table. Only the
// first FormatOptions value is used.
func Stringify(n Node, opts ...FormatOptions) string {
	return format.Stringify(n, opts...)
}

// DefaultTable returns the built-in formatting table.
func DefaultTable() Table { return ast.DefaultTable() }

func NewDecl(prop, value string, opts ...DeclOption) *Decl {
	return ast.NewDecl(prop, value, opts...)
}

func NewRule(selector string, children ...Node) *Rule {
	return ast.NewRule(selector, children...)
}

func NewRoot(children ...Node) *Root {
	return ast.NewRoot(children...)
}

// NewAtRule creates a statement at-rule when no children are given and a
// block at-rule otherwise. Use NewAtRuleBlock for an empty block.
func NewAtRule(name string, params *string, children ...Node) *AtRule {
	return ast.NewAtRule(name, params, children...)
}

func NewAtRuleBlock(name string, params *string, children ...Node) *AtRule {
	return ast.NewAtRuleBlock(name, params, children...)
}

func NewComment(text string) *Comment {
	return ast.NewComment(text)
}

// Params returns a pointer to s for at-rule constructors.
func Params(s string) *string { return ast.Params(s) }

// Important marks a declaration built with NewDecl as !important.
func Important() DeclOption { return ast.Important() }

// Clone deep-copies n, raws included, then applies overrides to the copy.
func Clone(n Node, overrides ...Override) Node {
	return ast.Clone(n, overrides...)
}

// Overrides for Clone. Each one is ignored by node kinds without the field.
func WithSelector(s string) Override        { return ast.WithSelector(s) }
func WithProp(p string) Override            { return ast.WithProp(p) }
func WithValue(v string) Override           { return ast.WithValue(v) }
func WithImportant(important bool) Override { return ast.WithImportant(important) }
func WithName(name string) Override         { return ast.WithName(name) }
func WithParams(p *string) Override         { return ast.WithParams(p) }
func WithText(text string) Override         { return ast.WithText(text) }
func WithNodes(children ...Node) Override   { return ast.WithNodes(children...) }
func WithRaw(key, value string) Override    { return ast.WithRaw(key, value) }
func WithoutRaw(key string) Override        { return ast.WithoutRaw(key) }

// NodeType reports the variant of n.
func NodeType(n Node) Type {
	return ast.Type(n)
}

// Get returns the raw value of key on n, falling back to fallback[0] and
// then to the default table.
func Get(n Node, key string, fallback ...string) string {
	return ast.Get(n, key, fallback...)
}

// Put returns a copy of n with the raw key set to value.
func Put(n Node, key, value string) Node {
	return ast.Put(n, key, value)
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of that node.
func Walk(n Node, fn func(n Node, depth int) bool) {
	ast.Walk(n, fn)
}

// Tokenize splits text into tokens. It never fails.
func Tokenize(text string) []Token {
	return lexer.Tokenize(text)
}
