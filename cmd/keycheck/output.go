package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/praetorian-inc/keycheck/pkg/pattern"
	"github.com/praetorian-inc/keycheck/pkg/sarif"
	"github.com/praetorian-inc/keycheck/pkg/scanner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// styles holds color formatters for violation lines
type styles struct {
	heading *color.Color
	pattern *color.Color
	path    *color.Color
	offsets *color.Color
}

// newStyles creates color formatters for human output
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold, color.FgHiRed),
		pattern: color.New(color.FgYellow),
		path:    color.New(color.Bold, color.FgHiBlue),
		offsets: color.New(color.FgHiGreen),
	}

	if !enabled {
		s.heading.DisableColor()
		s.pattern.DisableColor()
		s.path.DisableColor()
		s.offsets.DisableColor()
	}

	return s
}

func validFormat(format string) bool {
	switch format {
	case "human", "json", "sarif":
		return true
	}
	return false
}

// colorEnabled decides whether human output is colored.
// "auto" colors only a terminal stdout with NO_COLOR unset.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func writeResult(cmd *cobra.Command, format, colorMode string, set *pattern.Set, result *scanner.Result) error {
	switch format {
	case "json":
		return outputJSON(cmd, result)
	case "sarif":
		return outputSARIF(cmd, set, result)
	case "human":
		return outputHuman(cmd, newStyles(colorEnabled(colorMode)), result)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// outputHuman writes one line per violation:
// Found potential API key matching pattern '<pattern>' in <path>:<start>-<end>
func outputHuman(cmd *cobra.Command, s *styles, result *scanner.Result) error {
	out := cmd.OutOrStdout()
	for _, v := range result.Violations {
		_, err := fmt.Fprintf(out, "%s '%s' in %s:%s\n",
			s.heading.Sprint("Found potential API key matching pattern"),
			s.pattern.Sprint(v.Pattern),
			s.path.Sprint(v.Path),
			s.offsets.Sprintf("%d-%d", v.Location.Offset.Start, v.Location.Offset.End))
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func outputJSON(cmd *cobra.Command, result *scanner.Result) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputSARIF outputs violations in SARIF 2.1.0 format
func outputSARIF(cmd *cobra.Command, set *pattern.Set, result *scanner.Result) error {
	report := sarif.NewReport()
	for _, p := range set.Patterns() {
		report.AddPattern(p)
	}
	for _, v := range result.Violations {
		report.AddViolation(v)
	}

	jsonBytes, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("serializing SARIF: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(jsonBytes); err != nil {
		return fmt.Errorf("writing SARIF output: %w", err)
	}
	return nil
}
