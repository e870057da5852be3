package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/praetorian-inc/keycheck/pkg/pattern"
	"github.com/spf13/cobra"
)

var (
	patternsSources sourceFlags
	patternsFormat  string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the resolved patterns",
	Long:  "Resolve patterns from the same sources as scan and display them with their origin",
	Args:  cobra.NoArgs,
	RunE:  runPatterns,
}

func init() {
	addSourceFlags(patternsCmd, &patternsSources)
	patternsCmd.Flags().StringVar(&patternsFormat, "format", "table", "Output format: table, json")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	set, err := patternsSources.resolve()
	if err != nil {
		return fmt.Errorf("resolving patterns: %w", err)
	}

	switch patternsFormat {
	case "json":
		return outputPatternsJSON(cmd, set)
	case "table":
		return outputPatternsTable(cmd, set)
	default:
		return fmt.Errorf("unknown output format: %s", patternsFormat)
	}
}

func outputPatternsJSON(cmd *cobra.Command, set *pattern.Set) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(set.Patterns())
}

func outputPatternsTable(cmd *cobra.Command, set *pattern.Set) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tOrigin\tPattern\n")
	fmt.Fprintf(w, "--\t------\t-------\n")

	for _, p := range set.Patterns() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ShortID(), p.Origin, p.Source)
	}

	return nil
}
