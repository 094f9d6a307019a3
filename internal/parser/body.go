package parser

import (
	"implfan/internal/ast"
	"implfan/internal/diag"
	"implfan/internal/source"
	"implfan/internal/token"
)

// parseBody захватывает непрозрачное тело: всё между '{' и парной '}'.
// Текст не перепарсивается и не переписывается — он воспроизводится
// байт-в-байт для каждой цели. Лексер уже скрывает скобки внутри строк,
// символьных литералов и комментариев, поэтому хватает счётчика глубины.
func (p *Parser) parseBody() (ast.Body, source.Span, bool) {
	lb, ok := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' to open the shared body")
	if !ok {
		return ast.Body{}, source.Span{}, false
	}

	depth := 1
	var rb token.Token
	for {
		tok := p.advance()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		case token.EOF:
			p.errAt(diag.SynUnterminatedBody, lb.Span, "missing closing '}' for body opened here")
			return ast.Body{}, source.Span{}, false
		}
		if depth == 0 {
			rb = tok
			break
		}
	}

	raw := source.Span{File: lb.Span.File, Start: lb.Span.End, End: rb.Span.Start}
	body := ast.Body{
		Text: p.snippet(raw),
		Span: raw,
	}
	return body, rb.Span, true
}
