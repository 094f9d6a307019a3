package driver

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"implfan/internal/ast"
	"implfan/internal/diag"
	"implfan/internal/emit"
	"implfan/internal/expand"
	"implfan/internal/lexer"
	"implfan/internal/parser"
	"implfan/internal/project"
	"implfan/internal/source"
)

// ExpandOptions configures a single expansion pass over one input file.
type ExpandOptions struct {
	// Marker — имя макро-вызова ("transform" ищет "transform!( ... )").
	Marker string
	// MaxDiagnostics ограничивает Bag; 0 - значение по умолчанию.
	MaxDiagnostics int
}

const defaultMaxDiagnostics = 100

func (o ExpandOptions) marker() string {
	if o.Marker == "" {
		return project.DefaultMarker
	}
	return o.Marker
}

func (o ExpandOptions) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// ExpandResult holds the outcome of expanding one input file.
type ExpandResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Output is nil when the Bag contains errors; a broken invocation
	// aborts the whole file, there is no partial output.
	Output []byte
	Bag    *diag.Bag
	// Count — число развёрнутых вызовов.
	Count int
}

// ExpandFile loads path and expands every marker invocation in it.
func ExpandFile(path string, opts ExpandOptions) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return expandIn(fs, fileID, opts)
}

// ExpandBytes expands in-memory content, for tests and stdin.
func ExpandBytes(name string, content []byte, opts ExpandOptions) (*ExpandResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return expandIn(fs, fileID, opts)
}

// expandIn — основной цикл: байты вне вызовов проходят насквозь без
// изменений, каждый вызов заменяется на результат развёртки.
func expandIn(fs *source.FileSet, fileID source.FileID, opts ExpandOptions) (*ExpandResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	res := &ExpandResult{FileSet: fs, File: file, Bag: bag}

	marker := opts.marker()
	content := file.Content

	var out bytes.Buffer
	out.Grow(len(content))

	pos := 0
	for {
		site, found := findCallSite(content, pos, marker)
		if !found {
			break
		}

		closeIdx, closed := matchParen(content, site.Open)
		if !closed {
			span, err := byteSpan(fileID, site.Start, site.Open+1)
			if err != nil {
				return nil, err
			}
			bag.Add(diag.NewError(
				diag.SynUnterminatedInvocation,
				span,
				fmt.Sprintf("missing ')' for `%s!(`", marker),
			))
			break
		}

		rendered, ok, err := expandWindow(fs, file, site.Open+1, closeIdx, bag, opts)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		out.Write(content[pos:site.Start])
		out.WriteString(rendered)

		pos = closeIdx + 1
		// точка с запятой после вызова принадлежит вызову
		if pos < len(content) && content[pos] == ';' {
			pos++
		}
		res.Count++
	}

	if bag.HasErrors() {
		return res, nil
	}

	out.Write(content[pos:])
	res.Output = out.Bytes()
	return res, nil
}

// expandWindow лексит и разбирает содержимое одного вызова, затем
// разворачивает каждую инвокацию в последовательность impl-блоков.
func expandWindow(fs *source.FileSet, file *source.File, start, end int, bag *diag.Bag, opts ExpandOptions) (string, bool, error) {
	startOff, err := safecast.Conv[uint32](start)
	if err != nil {
		return "", false, err
	}
	endOff, err := safecast.Conv[uint32](end)
	if err != nil {
		return "", false, err
	}

	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.NewWindow(file, startOff, endOff, lexer.Options{Reporter: reporter})

	maxErrors, err := safecast.Conv[uint](opts.maxDiagnostics())
	if err != nil {
		return "", false, err
	}
	result := parser.Parse(fs, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	if bag.HasErrors() {
		return "", false, nil
	}

	var specs []ast.SingleSpec
	for _, inv := range result.Invocations {
		specs = append(specs, expand.ExpandInvocation(inv)...)
	}
	return emit.RenderString(specs), true, nil
}

func byteSpan(fileID source.FileID, start, end int) (source.Span, error) {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return source.Span{}, err
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		return source.Span{}, err
	}
	return source.Span{File: fileID, Start: s, End: e}, nil
}
