package token_test

import (
	"testing"

	"implfan/internal/source"
	"implfan/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.StringLit, token.CharLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwImpl, token.Comma, token.LBrace}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{token.KwImpl, token.KwFor, token.KwWhere, token.KwConst}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatal("Ident must NOT be keyword")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		kind  token.Kind
		ok    bool
	}{
		{"impl", token.KwImpl, true},
		{"for", token.KwFor, true},
		{"where", token.KwWhere, true},
		{"const", token.KwConst, true},
		{"Impl", token.Invalid, false}, // case-sensitive
		{"implement", token.Invalid, false},
		{"", token.Invalid, false},
	}
	for _, tt := range tests {
		k, ok := token.LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q): ok=%v, want %v", tt.ident, ok, tt.ok)
			continue
		}
		if ok && k != tt.kind {
			t.Errorf("LookupKeyword(%q): kind=%v, want %v", tt.ident, k, tt.kind)
		}
	}
}

func TestDelimMatching(t *testing.T) {
	pairs := map[token.Kind]token.Kind{
		token.LParen:   token.RParen,
		token.LBrace:   token.RBrace,
		token.LBracket: token.RBracket,
	}
	for open, close := range pairs {
		ot := tok(open)
		if !ot.IsOpenDelim() {
			t.Errorf("%v should be open delim", open)
		}
		if got := ot.MatchingClose(); got != close {
			t.Errorf("MatchingClose(%v): got %v, want %v", open, got, close)
		}
		if !tok(close).IsCloseDelim() {
			t.Errorf("%v should be close delim", close)
		}
	}
	if tok(token.Lt).IsOpenDelim() {
		t.Error("Lt is not a bracket delimiter")
	}
	if got := tok(token.Ident).MatchingClose(); got != token.Invalid {
		t.Errorf("MatchingClose(Ident): got %v, want Invalid", got)
	}
}
