package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"implfan/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new implfan project",
	Long: `Initialize a new implfan project by creating a project manifest
(implfan.toml) and an example input (src/example.rs). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "implfan-project"
	}

	// Create manifest file if not exists
	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	// Create example input if not exists
	examplePath := filepath.Join(target, "src", "example.rs")
	createdExample := false
	if _, err := os.Stat(examplePath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(examplePath), 0o755); err != nil {
			return fmt.Errorf("failed to create src directory: %w", err)
		}
		if err := os.WriteFile(examplePath, []byte(defaultExample()), 0o600); err != nil {
			return fmt.Errorf("failed to write example input: %w", err)
		}
		createdExample = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized implfan project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdExample {
		fmt.Fprintf(os.Stdout, "  - src/example.rs\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - src/example.rs (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest for an implfan project
// using the provided package name.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# implfan project manifest
[package]
name = "%s"

[generate]
marker = "transform"
inputs = ["src/*.rs"]
suffix = ".gen"
cache = true
`, name)
}

// defaultExample returns a starter input demonstrating one shared impl
// fanned over two newtypes.
func defaultExample() string {
	return `pub struct Meters(pub f64);
pub struct Millimeters(pub f64);

transform!(
    impl Meters, Millimeters {
        pub fn value(&self) -> f64 {
            self.0
        }
    }
);
`
}
