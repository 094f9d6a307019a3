package lexer

import (
	"implfan/internal/token"
)

// scanNumber сканирует целочисленный литерал. Инвокации встречают числа
// только в const-generic аргументах (`Matrix<3>`), поэтому хватает десятичной
// формы с разделителями '_'.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '_' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IntLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
