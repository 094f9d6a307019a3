package parser

import (
	"slices"

	"implfan/internal/ast"
	"implfan/internal/diag"
	"implfan/internal/lexer"
	"implfan/internal/source"
	"implfan/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	// Invocations is nil when parsing failed; a parse error aborts the whole
	// call site, there is no partial expansion.
	Invocations []ast.Invocation
	Bag         *diag.Bag
}

// Parser — состояние парсера на одну инвокацию
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// Parse — входная точка: разбирает последовательность инвокаций
// (`group+ body`, повторённую ноль и более раз) до конца окна лексера.
// Требует уже созданный lexer (на основе source.File или окна в нём).
func Parse(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	var invocations []ast.Invocation
	ok := true
	for !p.at(token.EOF) {
		inv, invOK := p.parseInvocation()
		if !invOK {
			ok = false
			break
		}
		invocations = append(invocations, inv)
	}

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	if !ok || p.IsError() {
		invocations = nil
	}
	return Result{
		Invocations: invocations,
		Bag:         bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}
