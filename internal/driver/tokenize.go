package driver

import (
	"context"
	"fmt"

	"csskit/internal/diag"
	"csskit/internal/lexer"
	"csskit/internal/source"
	"csskit/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and returns its tokens. Tokenizer warnings end up in
// the bag; only I/O fails.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(id)
	span := fileSpan(ctx, "tokenize", path)
	bag := opts.newBag()
	toks := lexer.TokenizeWith(file.Text(), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		File:     id,
	})
	span.WithExtra("tokens", fmt.Sprint(len(toks))).End("")
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}, nil
}
