package driver

import (
	"fortio.org/safecast"

	"implfan/internal/ast"
	"implfan/internal/diag"
	"implfan/internal/lexer"
	"implfan/internal/parser"
	"implfan/internal/source"
)

type ParseResult struct {
	FileSet     *source.FileSet
	File        *source.File
	Invocations []ast.Invocation
	Bag         *diag.Bag
}

// Parse reads path as bare invocation text and parses it into shared
// specs. Used by the parse debug command.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.Parse(fs, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet:     fs,
		File:        file,
		Invocations: result.Invocations,
		Bag:         bag,
	}, nil
}
