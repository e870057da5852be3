package main

import (
	"fmt"

	"github.com/praetorian-inc/keycheck/pkg/scanner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	scanSources sourceFlags
	scanFormat  string
	scanColor   string
)

var scanCmd = &cobra.Command{
	Use:   "scan [files...]",
	Short: "Scan files for exposed API keys",
	Long: `Scan each file for substrings matching the configured patterns.

Paths that are missing or not regular files are skipped. Files that are not
valid UTF-8 text are skipped as binary. The command exits 1 when any
violation is found and 2 on configuration errors.`,
	Args: cobra.ArbitraryArgs,
	RunE: runScan,
}

func init() {
	addSourceFlags(scanCmd, &scanSources)
	scanCmd.Flags().StringVar(&scanFormat, "format", "human", "Output format: human, json, sarif")
	scanCmd.Flags().StringVar(&scanColor, "color", "auto", "Color output: auto, always, never")
}

func runScan(cmd *cobra.Command, args []string) error {
	if !validFormat(scanFormat) {
		return fmt.Errorf("unknown output format: %s", scanFormat)
	}

	set, err := scanSources.resolve()
	if err != nil {
		return fmt.Errorf("resolving patterns: %w", err)
	}

	s, err := scanner.New(set, scanner.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("creating scanner: %w", err)
	}

	result := s.Scan(args)

	log.Info().
		Int("files", result.FilesScanned).
		Int("skipped", result.FilesSkipped).
		Int("binary", result.BinarySkipped).
		Int("violations", len(result.Violations)).
		Msg("Scan complete")

	if err := writeResult(cmd, scanFormat, scanColor, set, result); err != nil {
		return err
	}
	if result.HasViolations() {
		return errViolationsFound
	}
	return nil
}
