package token

import (
	"implfan/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is an invocation-grammar keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwImpl, KwFor, KwWhere, KwConst:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpenDelim reports whether the token opens a bracket pair.
func (t Token) IsOpenDelim() bool {
	switch t.Kind {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether the token closes a bracket pair.
func (t Token) IsCloseDelim() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}

// MatchingClose returns the closing kind for an opening delimiter.
// Returns Invalid for non-delimiters.
func (t Token) MatchingClose() Kind {
	switch t.Kind {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}
