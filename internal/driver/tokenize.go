package driver

import (
	"strconv"

	"lunar/internal/diag"
	"lunar/internal/lexer"
	"lunar/internal/parser"
	"lunar/internal/source"
	"lunar/internal/token"
	"lunar/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it into raw tokens, trivia included.
func Tokenize(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, path)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(fs, fileID, opts), nil
}

// TokenizeFile lexes a file already held by fs.
func TokenizeFile(fs *source.FileSet, fileID source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())

	idx := opts.Timer.Begin("tokenize")
	span := trace.Begin(opts.Tracer, trace.ScopePass, "lex", 0).WithExtra("file", file.Path)
	res := lexer.NewLazy(string(file.Content), lexer.Options{Version: opts.Version}).Collect()
	errs := make([]parser.Error, 0, len(res.Errors))
	for _, e := range res.Errors {
		errs = append(errs, e)
	}
	reportErrors(bag, fileID, errs)
	span.End(strconv.Itoa(len(res.Value)) + " tokens")
	opts.Timer.End(idx, strconv.Itoa(len(res.Value))+" tokens")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  res.Value,
		Bag:     bag,
	}
}
