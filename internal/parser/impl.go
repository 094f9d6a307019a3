package parser

import (
	"implfan/internal/ast"
	"implfan/internal/diag"
	"implfan/internal/source"
	"implfan/internal/token"
)

// parseInvocation — `group+ body`. Все группы делят одно тело; каждая
// группа несёт свои дженерики, цели и where-клаузу.
func (p *Parser) parseInvocation() (ast.Invocation, bool) {
	var inv ast.Invocation

	if !p.at(token.KwImpl) {
		p.err(diag.SynExpectImpl, "expected 'impl' to start an invocation")
		return inv, false
	}

	for p.at(token.KwImpl) {
		group, ok := p.parseGroup()
		if !ok {
			return inv, false
		}
		inv.Groups = append(inv.Groups, group)
	}

	body, closeSpan, ok := p.parseBody()
	if !ok {
		return inv, false
	}
	for i := range inv.Groups {
		inv.Groups[i].Body = body
	}

	inv.Span = inv.Groups[0].Span.Cover(closeSpan)
	return inv, true
}

// parseGroup — `"impl" generics? targets where?` (без тела).
func (p *Parser) parseGroup() (ast.SharedSpec, bool) {
	var spec ast.SharedSpec

	implTok, ok := p.expect(token.KwImpl, diag.SynExpectImpl, "expected 'impl'")
	if !ok {
		return spec, false
	}
	spec.Span = implTok.Span

	if p.at(token.Lt) {
		generics, ok := p.parseGenerics()
		if !ok {
			return spec, false
		}
		spec.Generics = generics
	}

	// пустой список целей — ошибка: дублировать нечего
	if p.atOr(token.LBrace, token.KwWhere, token.KwImpl, token.EOF) {
		p.err(diag.SynEmptyTargetList, "expected at least one target type after 'impl'")
		return spec, false
	}

	for {
		target, ok := p.parseTarget()
		if !ok {
			return spec, false
		}
		spec.Targets = append(spec.Targets, target)
		spec.Span = spec.Span.Cover(p.lastSpan)

		if p.at(token.Comma) {
			p.advance()
			// запятая, за которой нет цели — EmptyTargetList по таксономии
			if p.atOr(token.LBrace, token.KwWhere, token.KwImpl, token.EOF) {
				p.err(diag.SynEmptyTargetList, "trailing comma with no target type after it")
				return spec, false
			}
			continue
		}
		// два типа подряд без запятой
		if p.atOr(token.Ident, token.Amp, token.Lifetime) {
			p.err(diag.SynMissingTargetSeparator, "missing ',' between target types")
			return spec, false
		}
		break
	}

	if p.at(token.KwWhere) {
		where, ok := p.parseWhere()
		if !ok {
			return spec, false
		}
		spec.Where = where
		spec.Span = spec.Span.Cover(where.Span)
	}

	return spec, true
}

// parseTarget — `[trait_expr "for"] type_expr`. Трейт и тип имеют одинаковую
// форму (Ident с опциональными угловыми аргументами); 'for' между ними
// говорит, что первое выражение было трейтом.
func (p *Parser) parseTarget() (ast.Target, bool) {
	var target ast.Target

	first, ok := p.parseTypeLike(diag.SynExpectTarget, "expected target type")
	if !ok {
		return target, false
	}

	if p.at(token.KwFor) {
		p.advance()
		second, ok := p.parseTypeLike(diag.SynExpectTraitTarget, "expected type after 'for'")
		if !ok {
			return target, false
		}
		target.Trait = &ast.TraitRef{Text: p.snippet(first), Span: first}
		target.Type = ast.TypeExpr{Text: p.snippet(second), Span: second}
		return target, true
	}

	target.Type = ast.TypeExpr{Text: p.snippet(first), Span: first}
	return target, true
}

// parseTypeLike — `Ident ('<' ... '>')?`. Возвращает span всего выражения;
// текст берётся срезом исходника, чтобы внутренние пробелы пережили раунд-трип.
func (p *Parser) parseTypeLike(code diag.Code, msg string) (source.Span, bool) {
	ident, ok := p.expect(token.Ident, code, msg)
	if !ok {
		return source.Span{}, false
	}
	sp := ident.Span

	if p.at(token.Lt) {
		argsSpan, ok := p.captureAngles()
		if !ok {
			return source.Span{}, false
		}
		sp = sp.Cover(argsSpan)
	}
	return sp, true
}

// captureAngles съедает сбалансированную угловую группу начиная с '<'.
// Внутри скобочных пар ('(', '[', '{') угловые скобки не считаются.
func (p *Parser) captureAngles() (source.Span, bool) {
	ltTok := p.advance() // '<'
	sp := ltTok.Span
	angleDepth := 1
	bracketDepth := 0

	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF:
			p.errAt(diag.SynMalformedGenerics, ltTok.Span, "unclosed '<' opened here")
			return source.Span{}, false
		case tok.IsOpenDelim():
			bracketDepth++
		case tok.IsCloseDelim():
			if bracketDepth > 0 {
				bracketDepth--
			}
		case tok.Kind == token.Lt && bracketDepth == 0:
			angleDepth++
		case tok.Kind == token.Gt && bracketDepth == 0:
			angleDepth--
		}
		consumed := p.advance()
		sp = sp.Cover(consumed.Span)
		if angleDepth == 0 {
			return sp, true
		}
	}
}

// parseGenerics — `'<' param (',' param)* ','? '>'`. Пустой список `<>` легален.
func (p *Parser) parseGenerics() ([]ast.GenericParam, bool) {
	p.advance() // '<'

	var params []ast.GenericParam
	if p.at(token.Gt) {
		p.advance()
		return params, true
	}

	for {
		param, ok := p.parseGenericParam()
		if !ok {
			return nil, false
		}
		params = append(params, param)

		if p.at(token.Comma) {
			p.advance()
			if p.at(token.Gt) { // хвостовая запятая
				p.advance()
				break
			}
			continue
		}
		if p.at(token.Gt) {
			p.advance()
			break
		}
		p.err(diag.SynMalformedGenerics, "expected ',' or '>' in generic parameter list")
		return nil, false
	}
	return params, true
}

// parseGenericParam — `lifetime bounds? | ident bounds? | 'const' ident ':' type`.
// Для const-параметра его тип хранится в поле Bounds.
func (p *Parser) parseGenericParam() (ast.GenericParam, bool) {
	var param ast.GenericParam

	switch {
	case p.at(token.Lifetime):
		tok := p.advance()
		param.Kind = ast.GenericLifetime
		param.Name = tok.Text
		param.NameSpan = tok.Span
		param.Span = tok.Span

	case p.at(token.KwConst):
		kw := p.advance()
		ident, ok := p.expect(token.Ident, diag.SynMalformedGenerics, "expected const parameter name")
		if !ok {
			return param, false
		}
		param.Kind = ast.GenericConst
		param.Name = ident.Text
		param.NameSpan = ident.Span
		param.Span = kw.Span.Cover(ident.Span)
		if _, ok := p.expect(token.Colon, diag.SynMalformedGenerics, "expected ':' after const parameter name"); !ok {
			return param, false
		}
		ty, ok := p.captureBounds()
		if !ok {
			return param, false
		}
		param.Bounds = p.snippet(ty)
		param.Span = param.Span.Cover(ty)
		return param, true

	case p.at(token.Ident) || p.at(token.Underscore):
		tok := p.advance()
		param.Kind = ast.GenericType
		param.Name = tok.Text
		param.NameSpan = tok.Span
		param.Span = tok.Span

	default:
		p.err(diag.SynMalformedGenerics, "expected lifetime, type, or const generic parameter")
		return param, false
	}

	if p.at(token.Colon) {
		p.advance()
		bounds, ok := p.captureBounds()
		if !ok {
			return param, false
		}
		param.Bounds = p.snippet(bounds)
		param.Span = param.Span.Cover(bounds)
	}
	return param, true
}

// captureBounds — сырой захват до ',' или '>' на нулевой глубине.
// Вложенные угловые группы (`T: Into<String>`) проходят целиком.
func (p *Parser) captureBounds() (source.Span, bool) {
	var sp source.Span
	angleDepth := 0
	bracketDepth := 0
	first := true

	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			p.err(diag.SynMalformedGenerics, "unterminated generic parameter list")
			return sp, false
		}
		if angleDepth == 0 && bracketDepth == 0 &&
			(tok.Kind == token.Comma || tok.Kind == token.Gt) {
			break
		}
		switch {
		case tok.IsOpenDelim():
			bracketDepth++
		case tok.IsCloseDelim():
			if bracketDepth > 0 {
				bracketDepth--
			}
		case tok.Kind == token.Lt && bracketDepth == 0:
			angleDepth++
		case tok.Kind == token.Gt && bracketDepth == 0:
			angleDepth--
		}
		consumed := p.advance()
		if first {
			sp = consumed.Span
			first = false
		} else {
			sp = sp.Cover(consumed.Span)
		}
	}

	if first {
		p.err(diag.SynMalformedGenerics, "expected bounds after ':'")
		return sp, false
	}
	return sp, true
}

// parseWhere — `"where" '(' raw ')'`. Скобки — особенность синтаксиса
// инвокации; в выводе клауза печатается без них.
func (p *Parser) parseWhere() (*ast.WhereClause, bool) {
	whereTok := p.advance() // 'where'

	lp, ok := p.expect(token.LParen, diag.SynExpectWhereParen, "expected '(' after 'where'")
	if !ok {
		return nil, false
	}

	depth := 1
	var rp token.Token
	for {
		tok := p.advance()
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.EOF, token.Invalid:
			p.errAt(diag.SynUnterminatedWhere, lp.Span, "missing ')' for where clause opened here")
			return nil, false
		}
		if depth == 0 {
			rp = tok
			break
		}
	}

	raw := source.Span{File: lp.Span.File, Start: lp.Span.End, End: rp.Span.Start}
	return &ast.WhereClause{
		Text: p.snippet(raw),
		Span: whereTok.Span.Cover(rp.Span),
	}, true
}
