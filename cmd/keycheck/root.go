package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// errViolationsFound makes the process exit non-zero after a scan that
// reported violations. It is not printed.
var errViolationsFound = errors.New("potential API keys found")

var rootCmd = &cobra.Command{
	Use:   "keycheck",
	Short: "keycheck - find API keys and tokens before they are committed",
	Long: `keycheck scans files for substrings that look like API keys or tokens.
It matches regular-expression patterns from the command line, a YAML config
file or an inline YAML string, and is meant to run as a pre-commit hook.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(versionCmd)

	log.Logger = newLogger(os.Stderr)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger writes human-readable diagnostics, kept apart from scan results.
func newLogger(out *os.File) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if verbose && quiet {
		return errors.New("--verbose and --quiet are mutually exclusive")
	}
	switch {
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("Verbose log output enabled")
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}
