package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"implfan/internal/driver"
	"implfan/internal/project"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] [dir]",
	Short: "Expand every input listed in implfan.toml",
	Long: `Gen locates the nearest implfan.toml (walking up from [dir] or the
current directory), expands every file matched by [generate].inputs in
parallel and writes each result next to its input with the configured
suffix. Unchanged inputs are replayed from the disk cache.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().Bool("no-cache", false, "recompute every input, ignore the disk cache")
	genCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	genCmd.Flags().String("marker", "", "override the manifest marker")
}

func runGen(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	manifest, ok, err := project.LoadManifest(startDir)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no %s found\nrun `implfan init` to create one", project.ManifestName)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	marker, err := cmd.Flags().GetString("marker")
	if err != nil {
		return fmt.Errorf("failed to get marker flag: %w", err)
	}
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if manifest.Config.Generate.Cache && !noCache {
		// кеш необязателен: без него просто пересчитываем всё
		cache, _ = driver.OpenDiskCache("implfan")
	}

	results, err := driver.Generate(cmd.Context(), manifest, driver.GenOptions{
		Marker:         marker,
		Cache:          cache,
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	})
	if err != nil {
		return err
	}
	if results == nil {
		if !quietFlag(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "nothing to generate: no inputs matched\n")
		}
		return nil
	}

	quiet := quietFlag(cmd)
	failed := 0
	for _, res := range results {
		printDiagnostics(cmd, res.Bag, res.FileSet)
		if res.Bag != nil && res.Bag.HasErrors() {
			failed++
			continue
		}
		if quiet {
			continue
		}
		note := ""
		if res.FromCache {
			note = " (cached)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: %d invocation(s)%s\n",
			relTo(manifest.Root, res.Input), relTo(manifest.Root, res.Output), res.Count, note)
	}

	if failed > 0 {
		return fmt.Errorf("generation failed for %d of %d input(s)", failed, len(results))
	}
	return nil
}

func relTo(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
