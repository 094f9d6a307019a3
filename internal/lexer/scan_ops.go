package lexer

import (
	"implfan/internal/token"
)

// Жадность: сначала 2-символьные, затем 1-символьные. Всё, что не входит
// в грамматику инвокации, лексится как Punct — тела непрозрачны.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '&':
		return emit(token.Amp)
	case '+':
		return emit(token.Plus)
	case '=':
		return emit(token.Eq)
	case '*':
		return emit(token.Star)
	case '?':
		return emit(token.Question)
	case '!':
		return emit(token.Bang)
	case '.':
		return emit(token.Dot)
	case '_':
		return emit(token.Underscore)
	default:
		return emit(token.Punct)
	}
}
