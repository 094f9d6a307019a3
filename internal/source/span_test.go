package source

import (
	"testing"
)

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Errorf("expected span %v to be empty", s)
	}
	if s.Len() != 0 {
		t.Errorf("expected len 0, got %d", s.Len())
	}

	s = Span{File: 0, Start: 3, End: 10}
	if s.Empty() {
		t.Errorf("expected span %v to be non-empty", s)
	}
	if s.Len() != 7 {
		t.Errorf("expected len 7, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Span
		want  Span
	}{
		{
			name: "disjoint before",
			a:    Span{File: 0, Start: 10, End: 20},
			b:    Span{File: 0, Start: 2, End: 5},
			want: Span{File: 0, Start: 2, End: 20},
		},
		{
			name: "contained",
			a:    Span{File: 0, Start: 0, End: 30},
			b:    Span{File: 0, Start: 5, End: 10},
			want: Span{File: 0, Start: 0, End: 30},
		},
		{
			name: "different files untouched",
			a:    Span{File: 0, Start: 10, End: 20},
			b:    Span{File: 1, Start: 0, End: 100},
			want: Span{File: 0, Start: 10, End: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got != tt.want {
				t.Errorf("Cover: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 5, End: 20}
	if !outer.Contains(Span{File: 0, Start: 5, End: 20}) {
		t.Error("span must contain itself")
	}
	if !outer.Contains(Span{File: 0, Start: 7, End: 9}) {
		t.Error("span must contain inner span")
	}
	if outer.Contains(Span{File: 0, Start: 4, End: 9}) {
		t.Error("span must not contain span starting earlier")
	}
	if outer.Contains(Span{File: 1, Start: 7, End: 9}) {
		t.Error("span must not contain span from another file")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.txt", []byte("one\ntwo\nthree\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{3, LineCol{Line: 1, Col: 4}}, // the \n itself
		{4, LineCol{Line: 2, Col: 1}},
		{8, LineCol{Line: 3, Col: 1}},
		{12, LineCol{Line: 3, Col: 5}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d): got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	content, changed := normalizeCRLF([]byte("a\r\nb\r\nc"))
	if !changed {
		t.Fatal("expected CRLF normalization to report a change")
	}
	if string(content) != "a\nb\nc" {
		t.Errorf("unexpected content: %q", content)
	}

	content, changed = normalizeCRLF([]byte("plain\ntext"))
	if changed {
		t.Fatal("no \\r in input, nothing should change")
	}
	if string(content) != "plain\ntext" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.txt", []byte("first\nsecond\nlast"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "first" {
		t.Errorf("line 1: got %q", got)
	}
	if got := f.GetLine(2); got != "second" {
		t.Errorf("line 2: got %q", got)
	}
	if got := f.GetLine(3); got != "last" {
		t.Errorf("line 3: got %q", got)
	}
	if got := f.GetLine(4); got != "" {
		t.Errorf("line 4 should be empty, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0 should be empty, got %q", got)
	}
}

func TestSnippetRoundTrip(t *testing.T) {
	fs := NewFileSet()
	input := "impl<T> A<T>, B<T> {}"
	id := fs.AddVirtual("inv.rs", []byte(input))

	got := fs.Snippet(Span{File: id, Start: 8, End: 12})
	if got != "A<T>" {
		t.Errorf("snippet: got %q, want %q", got, "A<T>")
	}
}
