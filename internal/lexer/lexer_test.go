package lexer_test

import (
	"strings"
	"testing"

	"implfan/internal/diag"
	"implfan/internal/lexer"
	"implfan/internal/source"
	"implfan/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	opts := lexer.Options{Reporter: reporter}
	lx := lexer.New(file, opts)

	return lx, reporter
}

// collectAllTokens собирает все токены до EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Kind.String())
	}
	return strings.Join(parts, " ")
}

// expectTokens проверяет последовательность токенов
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// убираем EOF из сравнения
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text %q)\nInput: %q",
				i, expected[i], tok.Kind, tok.Text, input)
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	expectTokens(t, "impl for where const Wrapped implx", []token.Kind{
		token.KwImpl, token.KwFor, token.KwWhere, token.KwConst,
		token.Ident, token.Ident,
	})
}

func TestInvocationHeader(t *testing.T) {
	expectTokens(t, "impl<T> Wrapped<'_, T>, WrappedMut<'_, T> {", []token.Kind{
		token.KwImpl, token.Lt, token.Ident, token.Gt,
		token.Ident, token.Lt, token.Lifetime, token.Comma, token.Ident, token.Gt,
		token.Comma,
		token.Ident, token.Lt, token.Lifetime, token.Comma, token.Ident, token.Gt,
		token.LBrace,
	})
}

func TestLifetimeVsCharLiteral(t *testing.T) {
	expectTokens(t, "'a 'a' '_ '\\n' ','", []token.Kind{
		token.Lifetime, token.CharLit, token.Lifetime, token.CharLit, token.CharLit,
	})
}

func TestStringLiteral(t *testing.T) {
	lx, reporter := makeTestLexer(`"hello {} \" world"`)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected lex errors on valid string")
	}
	if tokens[0].Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", tokens[0].Kind)
	}
	if tokens[0].Text != `"hello {} \" world"` {
		t.Errorf("string text mismatch: %q", tokens[0].Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"never closed`)
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatal("expected an error for unterminated string")
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("expected LexUnterminatedString, got %v", reporter.diagnostics[0].Code)
	}
}

func TestOperatorsAndPunct(t *testing.T) {
	expectTokens(t, ":: : -> , ; & + = @", []token.Kind{
		token.ColonColon, token.Colon, token.Arrow, token.Comma,
		token.Semicolon, token.Amp, token.Plus, token.Eq, token.Punct,
	})
}

func TestCommentsAreTrivia(t *testing.T) {
	input := "impl // line comment\n/* block */ Wrapped"
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatal("unexpected errors")
	}
	// значимых токенов два: impl и Wrapped
	if len(tokens) != 3 { // + EOF
		t.Fatalf("expected 3 tokens, got %d: %s", len(tokens), tokensToString(tokens))
	}
	if tokens[1].Kind != token.Ident || tokens[1].Text != "Wrapped" {
		t.Fatalf("expected Ident 'Wrapped', got %v %q", tokens[1].Kind, tokens[1].Text)
	}
	// trivia приклеена к Wrapped
	kinds := make([]token.TriviaKind, 0, len(tokens[1].Leading))
	for _, tr := range tokens[1].Leading {
		kinds = append(kinds, tr.Kind)
	}
	wantComment := false
	for _, k := range kinds {
		if k == token.TriviaLineComment || k == token.TriviaBlockComment {
			wantComment = true
		}
	}
	if !wantComment {
		t.Errorf("expected comment trivia on second token, got %v", kinds)
	}
}

func TestNestedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* outer /* inner */ still outer */ impl")
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatal("nested block comment should lex cleanly")
	}
	if tokens[0].Kind != token.KwImpl {
		t.Fatalf("expected KwImpl after comment, got %v", tokens[0].Kind)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed\nimpl")
	collectAllTokens(lx)
	if !reporter.HasErrors() {
		t.Fatal("expected error for unterminated block comment")
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("expected LexUnterminatedBlockComment, got %v", reporter.diagnostics[0].Code)
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "impl<T> Owned<T>"
	lx, _ := makeTestLexer(input)
	for _, tok := range collectAllTokens(lx) {
		if tok.Kind == token.EOF {
			break
		}
		got := input[tok.Span.Start:tok.Span.End]
		if got != tok.Text {
			t.Errorf("span/text mismatch: span gives %q, Text is %q", got, tok.Text)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("impl Owned")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Fatal("Peek must be idempotent")
	}
	n := lx.Next()
	if n.Kind != p1.Kind || n.Span != p1.Span {
		t.Fatal("Next must return the peeked token")
	}
}

func TestWindowLexing(t *testing.T) {
	host := "prefix transform!( impl X, Y {} ); suffix"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("host.rs", []byte(host))
	file := fs.Get(fileID)

	start := uint32(strings.Index(host, "impl"))
	end := uint32(strings.Index(host, "} )") + 1)
	lx := lexer.NewWindow(file, start, end, lexer.Options{})

	tokens := collectAllTokens(lx)
	want := []token.Kind{
		token.KwImpl, token.Ident, token.Comma, token.Ident,
		token.LBrace, token.RBrace, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %s", len(want), len(tokens), tokensToString(tokens))
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: expected %v, got %v", i, k, tokens[i].Kind)
		}
	}
}

func TestUnicodeIdent(t *testing.T) {
	expectTokens(t, "impl Δυναμη", []token.Kind{token.KwImpl, token.Ident})
}
