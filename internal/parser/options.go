package parser

import (
	"csskit/internal/diag"
	"csskit/internal/lexer"
	"csskit/internal/source"
)

// DefaultMaxDepth bounds nesting of blocks.
const DefaultMaxDepth = 256

// Options control a single Parse call. Build them with the With* helpers.
type Options struct {
	// MaxDepth is the deepest allowed block nesting; <= 0 means DefaultMaxDepth.
	MaxDepth int
	// MaxSize is the longest accepted input in characters; <= 0 or anything
	// above lexer.MaxInput means lexer.MaxInput.
	MaxSize int
	// File is the path shown in error messages.
	File string
	// FileID anchors reported diagnostics in a source.FileSet.
	FileID source.FileID
	// Reporter, when set, receives tokenizer warnings and the syntax error.
	Reporter diag.Reporter
}

// Option configures Parse.
type Option func(*Options)

// WithMaxDepth sets the deepest allowed block nesting.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithMaxSize sets the longest accepted input, in characters.
func WithMaxSize(n int) Option {
	return func(o *Options) { o.MaxSize = n }
}

// WithFile sets the path used as the prefix of syntax error messages.
func WithFile(path string) Option {
	return func(o *Options) { o.File = path }
}

// WithFileID sets the file that reported diagnostics point into.
func WithFileID(id source.FileID) Option {
	return func(o *Options) { o.FileID = id }
}

// WithReporter routes tokenizer warnings and the syntax error to r.
func WithReporter(r diag.Reporter) Option {
	return func(o *Options) { o.Reporter = r }
}

func buildOptions(opts []Option) Options {
	o := Options{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

func (o Options) sizeLimit() uint64 {
	if o.MaxSize <= 0 || uint64(o.MaxSize) > lexer.MaxInput {
		return lexer.MaxInput
	}
	return uint64(o.MaxSize)
}
