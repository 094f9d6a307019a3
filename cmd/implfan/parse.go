package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"implfan/internal/ast"
	"implfan/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>",
	Short: "Parse bare invocation text and show the shared specs",
	Long: `Parse reads a file containing bare invocation text and prints the
parsed shared specs: generics, targets, where clauses and body sizes.
Debug aid for the invocation grammar.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("dump", false, "dump the raw parse tree")
}

// invocationSummary — плоское представление для вывода.
type invocationSummary struct {
	Groups []groupSummary `json:"groups"`
}

type groupSummary struct {
	Generics  []string `json:"generics,omitempty"`
	Targets   []string `json:"targets"`
	Where     string   `json:"where,omitempty"`
	BodyBytes int      `json:"body_bytes"`
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("parse aborted")
	}

	if dump {
		spew.Fdump(os.Stdout, result.Invocations)
		return nil
	}

	summaries := make([]invocationSummary, 0, len(result.Invocations))
	for _, inv := range result.Invocations {
		summaries = append(summaries, summarize(inv))
	}

	switch format {
	case "pretty":
		printSummaries(cmd, summaries)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func summarize(inv ast.Invocation) invocationSummary {
	var sum invocationSummary
	for _, group := range inv.Groups {
		g := groupSummary{BodyBytes: len(group.Body.Text)}
		for _, param := range group.Generics {
			g.Generics = append(g.Generics, formatParam(param))
		}
		for _, target := range group.Targets {
			g.Targets = append(g.Targets, formatTarget(target))
		}
		if group.Where != nil {
			g.Where = group.Where.Text
		}
		sum.Groups = append(sum.Groups, g)
	}
	return sum
}

func formatParam(param ast.GenericParam) string {
	switch param.Kind {
	case ast.GenericConst:
		return "const " + param.Name + ": " + param.Bounds
	default:
		if param.Bounds != "" {
			return param.Name + ": " + param.Bounds
		}
		return param.Name
	}
}

func formatTarget(target ast.Target) string {
	if target.Trait != nil {
		return target.Trait.Text + " for " + target.Type.Text
	}
	return target.Type.Text
}

func printSummaries(cmd *cobra.Command, summaries []invocationSummary) {
	out := cmd.OutOrStdout()
	for i, sum := range summaries {
		fmt.Fprintf(out, "invocation %d:\n", i+1)
		for j, group := range sum.Groups {
			fmt.Fprintf(out, "  group %d:\n", j+1)
			if len(group.Generics) > 0 {
				fmt.Fprintf(out, "    generics: %v\n", group.Generics)
			}
			fmt.Fprintf(out, "    targets:  %v\n", group.Targets)
			if group.Where != "" {
				fmt.Fprintf(out, "    where:    %s\n", group.Where)
			}
			fmt.Fprintf(out, "    body:     %d byte(s)\n", group.BodyBytes)
		}
	}
	if len(summaries) == 0 {
		fmt.Fprintln(out, "no invocations")
	}
}
