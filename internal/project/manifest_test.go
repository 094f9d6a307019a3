package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"
`)

	m, ok, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q, want demo", m.Config.Package.Name)
	}
	if m.Config.Generate.Marker != DefaultMarker {
		t.Errorf("marker = %q, want %q", m.Config.Generate.Marker, DefaultMarker)
	}
	if m.Config.Generate.Suffix != DefaultSuffix {
		t.Errorf("suffix = %q, want %q", m.Config.Generate.Suffix, DefaultSuffix)
	}
	if !m.Config.Generate.Cache {
		t.Error("cache should default to true")
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadManifestExplicitGenerate(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"

[generate]
marker = "fanout"
inputs = ["src/*.rs.in"]
suffix = ".expanded"
cache = false
jobs = 4
`)

	m, ok, err := LoadManifest(dir)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	g := m.Config.Generate
	if g.Marker != "fanout" || g.Suffix != ".expanded" || g.Cache || g.Jobs != 4 {
		t.Errorf("unexpected generate config: %+v", g)
	}
	if len(g.Inputs) != 1 || g.Inputs[0] != "src/*.rs.in" {
		t.Errorf("unexpected inputs: %v", g.Inputs)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing package", "[generate]\nmarker = \"m\"\n"},
		{"missing name", "[package]\n"},
		{"empty name", "[package]\nname = \"  \"\n"},
		{"bad marker", "[package]\nname = \"x\"\n[generate]\nmarker = \"1abc\"\n"},
		{"marker with dash", "[package]\nname = \"x\"\n[generate]\nmarker = \"my-macro\"\n"},
		{"empty suffix", "[package]\nname = \"x\"\n[generate]\nsuffix = \"\"\n"},
		{"negative jobs", "[package]\nname = \"x\"\n[generate]\njobs = -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tc.content)
			if _, _, err := LoadManifest(dir); err == nil {
				t.Errorf("expected error for %q", tc.name)
			}
		})
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if path != filepath.Join(root, ManifestName) {
		t.Errorf("path = %q", path)
	}
}

func TestFindManifestMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Error("expected ok=false in empty tree")
	}
}

func TestResolveInputsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "demo"

[generate]
inputs = ["src/*.in", "src/b.in"]
`)
	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.in", "a.in", "c.txt"} {
		if err := os.WriteFile(filepath.Join(src, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	m, _, err := LoadManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	inputs, err := m.ResolveInputs()
	if err != nil {
		t.Fatalf("ResolveInputs: %v", err)
	}
	want := []string{filepath.Join(src, "a.in"), filepath.Join(src, "b.in")}
	if len(inputs) != len(want) {
		t.Fatalf("inputs = %v, want %v", inputs, want)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], want[i])
		}
	}
}

func TestOutputPath(t *testing.T) {
	m := &Manifest{Config: Config{Generate: GenerateConfig{Suffix: ".gen"}}}
	cases := []struct{ in, want string }{
		{"src/poly.rs", "src/poly.gen.rs"},
		{"poly", "poly.gen"},
		{"a/b.rs.in", "a/b.rs.gen.in"},
	}
	for _, tc := range cases {
		if got := m.OutputPath(tc.in); got != tc.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCombineDeterministic(t *testing.T) {
	a := HashBytes([]byte("alpha"))
	b := HashBytes([]byte("beta"))

	first := Combine(a, b)
	second := Combine(a, b)
	if first != second {
		t.Error("Combine must be deterministic")
	}
	if Combine(a, b) == Combine(b, a) {
		t.Error("Combine must depend on order")
	}
}
