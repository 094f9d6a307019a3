package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded implfan.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the implfan.toml layout.
type Config struct {
	Package  PackageConfig  `toml:"package"`
	Generate GenerateConfig `toml:"generate"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// GenerateConfig controls the gen command.
type GenerateConfig struct {
	// Marker — имя макро-вызова в исходниках ("transform" -> "transform!(...)").
	Marker string `toml:"marker"`
	// Inputs — glob-шаблоны входных файлов относительно корня проекта.
	Inputs []string `toml:"inputs"`
	// Suffix добавляется к имени входного файла при записи результата.
	Suffix string `toml:"suffix"`
	Cache  bool   `toml:"cache"`
	// Jobs ограничивает параллелизм; 0 - по числу CPU.
	Jobs int `toml:"jobs"`
}

const (
	DefaultMarker = "transform"
	DefaultSuffix = ".gen"
)

// LoadManifest walks up from startDir and parses the nearest implfan.toml.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	cfg := Config{
		Generate: GenerateConfig{
			Marker: DefaultMarker,
			Suffix: DefaultSuffix,
			Cache:  true,
		},
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !isValidMarker(cfg.Generate.Marker) {
		return Config{}, fmt.Errorf("%s: [generate].marker must be an identifier, got %q", path, cfg.Generate.Marker)
	}
	if cfg.Generate.Suffix == "" {
		return Config{}, fmt.Errorf("%s: [generate].suffix must not be empty", path)
	}
	if cfg.Generate.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [generate].jobs must be >= 0, got %d", path, cfg.Generate.Jobs)
	}
	return cfg, nil
}

// isValidMarker: ASCII идентификатор, как имя макроса.
func isValidMarker(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ResolveInputs expands the manifest's glob patterns against the project
// root. The result is de-duplicated and sorted so the gen pipeline stays
// deterministic.
func (m *Manifest) ResolveInputs() ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range m.Config.Generate.Inputs {
		matches, err := filepath.Glob(filepath.Join(m.Root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("%s: bad input pattern %q: %w", m.Path, pattern, err)
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			out = append(out, match)
		}
	}
	sort.Strings(out)
	return out, nil
}

// OutputPath returns the generated-file path for an input: the suffix is
// inserted before the extension ("poly.rs" -> "poly.gen.rs" with ".gen").
func (m *Manifest) OutputPath(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + m.Config.Generate.Suffix + ext
}
