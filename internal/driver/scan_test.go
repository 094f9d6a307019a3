package driver

import (
	"testing"
)

func TestFindCallSite(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		found   bool
		wantPos int // смещение имени маркера
	}{
		{"plain", "transform!(x)", true, 0},
		{"after code", "fn f() {}\ntransform!(x)", true, 10},
		{"space before bang", "transform !(x)", true, 0},
		{"space after bang", "transform! (x)", true, 0},
		{"no bang", "transform(x)", false, 0},
		{"no paren", "transform!{x}", false, 0},
		{"prefixed ident", "my_transform!(x)", false, 0},
		{"suffixed ident", "transformer!(x)", false, 0},
		{"in line comment", "// transform!(x)", false, 0},
		{"in block comment", "/* transform!(x) */", false, 0},
		{"in nested comment", "/* /* */ transform!(x) */", false, 0},
		{"in string", `"transform!(x)"`, false, 0},
		{"after string", `"s" transform!(x)`, true, 4},
		{"string with escape", `"\" transform!(x)`, false, 0},
		{"after char literal", `'(' transform!(x)`, true, 4},
		{"after lifetime", "&'a transform!(x)", true, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			site, found := findCallSite([]byte(tc.input), 0, "transform")
			if found != tc.found {
				t.Fatalf("found = %v, want %v", found, tc.found)
			}
			if found && site.Start != tc.wantPos {
				t.Errorf("start = %d, want %d", site.Start, tc.wantPos)
			}
		})
	}
}

func TestMatchParen(t *testing.T) {
	cases := []struct {
		name  string
		input string
		open  int
		want  int
		ok    bool
	}{
		{"flat", "(abc)", 0, 4, true},
		{"nested", "(a(b)c)", 0, 6, true},
		{"paren in string", `("(")`, 0, 4, true},
		{"paren in comment", "(/*)*/)", 0, 6, true},
		{"paren in char", "('(')", 0, 4, true},
		{"unterminated", "(abc", 0, 0, false},
		{"unterminated nested", "(a(b)", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := matchParen([]byte(tc.input), tc.open)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("close = %d, want %d", got, tc.want)
			}
		})
	}
}
