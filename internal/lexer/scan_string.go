package lexer

import (
	"implfan/internal/diag"
	"implfan/internal/token"
)

// Минимум: "..." (escape-пары \" \\ и т.п. съедаются, без глубокой валидации).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			// грубая обработка escape: съесть '\' и следующий байт
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanLifetimeOrChar различает 'a (лайфтайм) и 'a' (символьный литерал).
// Правило как в Rust: после кавычки читаем идентификатор; если сразу за ним
// закрывающая кавычка — это был символьный литерал.
func (lx *Lexer) scanLifetimeOrChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	b := lx.cursor.Peek()

	// '\x' / '\n' / '\'' — всегда символьный литерал
	if b == '\\' {
		lx.cursor.Bump()
		if !lx.cursor.EOF() {
			lx.cursor.Bump() // сам escape-байт
		}
		if lx.cursor.Eat('\'') {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if isIdentStartByte(b) || b >= utf8RuneSelf {
		// съесть идентификаторную часть
		for {
			r, sz := lx.peekRune()
			if sz == 0 || !isIdentContinueRune(r) {
				break
			}
			lx.bumpRune()
		}
		if lx.cursor.Eat('\'') {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Lifetime, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// ',' '(' и прочие одиночные символы: '<char>'
	if !lx.cursor.EOF() {
		lx.bumpRune()
		if lx.cursor.Eat('\'') {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
