package main

import (
	"github.com/praetorian-inc/keycheck/pkg/pattern"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// sourceFlags holds the pattern-source flags shared by scan and patterns.
type sourceFlags struct {
	patterns     []string
	configPath   string
	configString string
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	// StringArray, not StringSlice: patterns like {32,} contain commas.
	cmd.Flags().StringArrayVarP(&f.patterns, "pattern", "p", nil, "Regex pattern to check for API keys (repeatable)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file with a patterns list")
	cmd.Flags().StringVar(&f.configString, "config-string", "", "Inline YAML config: a list of patterns or a mapping with a patterns key")
}

// sources maps the flags to pattern sources. An empty --config-string
// counts as not given.
func (f *sourceFlags) sources() pattern.Sources {
	src := pattern.Sources{
		Explicit:   f.patterns,
		ConfigFile: f.configPath,
	}
	if f.configString != "" {
		inline := f.configString
		src.Inline = &inline
	}
	return src
}

// resolve builds the pattern set, logging through the global logger.
func (f *sourceFlags) resolve() (*pattern.Set, error) {
	return pattern.Resolve(f.sources(), pattern.WithLogger(log.Logger))
}
