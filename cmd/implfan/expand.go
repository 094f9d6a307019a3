package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"implfan/internal/diag"
	"implfan/internal/driver"
	"implfan/internal/project"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <file>",
	Short: "Expand marker invocations in a single file",
	Long: `Expand reads a host source file, replaces every marker invocation
(transform!( ... ) by default) with its fanned-out impl blocks and leaves
all other bytes untouched. The result goes to stdout unless -o or
--in-place is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringP("output", "o", "", "write result to file instead of stdout")
	expandCmd.Flags().Bool("in-place", false, "overwrite the input file")
	expandCmd.Flags().String("marker", "", "macro name to expand (default: manifest value or \"transform\")")
}

func runExpand(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	inPlace, err := cmd.Flags().GetBool("in-place")
	if err != nil {
		return fmt.Errorf("failed to get in-place flag: %w", err)
	}
	if inPlace && outputPath != "" {
		return fmt.Errorf("--in-place and -o are mutually exclusive")
	}
	marker, err := cmd.Flags().GetString("marker")
	if err != nil {
		return fmt.Errorf("failed to get marker flag: %w", err)
	}
	if marker == "" {
		marker = markerFromManifest(inputPath)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	result, err := driver.ExpandFile(inputPath, driver.ExpandOptions{
		Marker:         marker,
		MaxDiagnostics: maxDiagnostics,
	})
	if err != nil {
		return fmt.Errorf("expansion failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("expansion aborted: %d error(s)", countErrors(result))
	}

	switch {
	case inPlace:
		return os.WriteFile(inputPath, result.Output, 0o644)
	case outputPath != "":
		return os.WriteFile(outputPath, result.Output, 0o644)
	default:
		_, err := cmd.OutOrStdout().Write(result.Output)
		return err
	}
}

// markerFromManifest ищет implfan.toml вверх от входного файла;
// без манифеста действует маркер по умолчанию.
func markerFromManifest(inputPath string) string {
	m, ok, err := project.LoadManifest(dirOf(inputPath))
	if err != nil || !ok {
		return project.DefaultMarker
	}
	return m.Config.Generate.Marker
}

func dirOf(path string) string {
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func countErrors(result *driver.ExpandResult) int {
	n := 0
	for _, d := range result.Bag.Items() {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}
