package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwConst represents the 'const' keyword.
	KwConst // const

	// Lifetime represents a lifetime token such as 'a or '_.
	Lifetime
	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a string literal.
	StringLit
	// CharLit represents a character literal.
	CharLit

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Lt represents the '<' token.
	Lt // <
	// Gt represents the '>' token.
	Gt // >
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the path separator token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Amp represents the ampersand token.
	Amp // &
	// Plus represents the plus token.
	Plus // +
	// Eq represents the equals token.
	Eq // =
	// Star represents the star token.
	Star // *
	// Question represents the question mark token.
	Question // ?
	// Bang represents the bang token.
	Bang // !
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the arrow token.
	Arrow // ->
	// Underscore represents a lone underscore token.
	Underscore // _

	// Punct represents any other single character. Bodies are opaque, so the
	// lexer never rejects characters it does not classify.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwImpl:
		return "KwImpl"
	case KwFor:
		return "KwFor"
	case KwWhere:
		return "KwWhere"
	case KwConst:
		return "KwConst"
	case Lifetime:
		return "Lifetime"
	case IntLit:
		return "IntLit"
	case StringLit:
		return "StringLit"
	case CharLit:
		return "CharLit"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Lt:
		return "Lt"
	case Gt:
		return "Gt"
	case Comma:
		return "Comma"
	case Colon:
		return "Colon"
	case ColonColon:
		return "ColonColon"
	case Semicolon:
		return "Semicolon"
	case Amp:
		return "Amp"
	case Plus:
		return "Plus"
	case Eq:
		return "Eq"
	case Star:
		return "Star"
	case Question:
		return "Question"
	case Bang:
		return "Bang"
	case Dot:
		return "Dot"
	case Arrow:
		return "Arrow"
	case Underscore:
		return "Underscore"
	case Punct:
		return "Punct"
	}
	return "Unknown"
}
