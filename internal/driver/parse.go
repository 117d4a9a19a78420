package driver

import (
	"strconv"

	"lunar/internal/ast"
	"lunar/internal/diag"
	"lunar/internal/dialect"
	"lunar/internal/parser"
	"lunar/internal/source"
	"lunar/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Ast
	Errors  []parser.Error
	Bag     *diag.Bag
	// Detection is set when Options.Detect is.
	Detection *dialect.Classification
}

// Parse loads path and parses it with recovery.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	idx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, path)
	if err != nil {
		return nil, err
	}
	return ParseFile(fs, fileID, opts), nil
}

// ParseSource parses in-memory content registered under name.
func ParseSource(name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	return ParseFile(fs, fs.AddVirtual(name, content), opts)
}

// ParseFile parses a file already held by fs. The tree is always set.
func ParseFile(fs *source.FileSet, fileID source.FileID, opts Options) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	fileSpan := trace.Begin(opts.Tracer, trace.ScopeFile, "file", 0).WithExtra("path", file.Path)
	defer func() { fileSpan.End(strconv.Itoa(bag.Len()) + " diagnostics") }()

	var evidence *dialect.Evidence
	if opts.Detect {
		evidence = dialect.NewEvidence()
	}

	var (
		tree *ast.Ast
		errs []parser.Error
	)
	opts.Timer.Measure("parse", func() string {
		tree, errs = parser.ParseFallible(string(file.Content), parser.Options{
			Version:  opts.Version,
			Evidence: evidence,
			Tracer:   opts.Tracer,
		})
		return strconv.Itoa(len(errs)) + " errors"
	})
	reportErrors(bag, fileID, errs)

	// Recovered trees hold synthetic tokens, so only clean parses must print back exactly.
	if opts.RoundTrip && len(errs) == 0 {
		opts.Timer.Measure("print", func() string {
			span := trace.Begin(opts.Tracer, trace.ScopePass, "print", fileSpan.ID())
			ok := checkRoundTrip(bag, file, tree)
			span.End(strconv.FormatBool(ok))
			return file.Path
		})
	}

	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    tree,
		Errors:  errs,
		Bag:     bag,
	}
	if opts.Detect {
		cls := (dialect.Classifier{}).Classify(evidence)
		reportDetection(bag, fileID, evidence.Hints(), cls)
		res.Detection = &cls
	}
	return res
}
