package matcher

import (
	"github.com/praetorian-inc/keycheck/pkg/types"
	"github.com/rs/zerolog"
)

// Matcher scans decoded text for pattern matches.
type Matcher interface {
	// Match runs every loaded pattern over text and returns all
	// non-overlapping matches per pattern, with character offsets.
	// Violations in the result carry no path; callers tag them.
	Match(text []rune) *MatchResult
}

// Config for matcher initialization.
type Config struct {
	// Patterns to run, in the order they are run.
	Patterns []*types.Pattern

	// Logger receives per-pattern debug and timeout diagnostics.
	Logger zerolog.Logger
}

// New creates a new Matcher with the given config.
func New(cfg Config) (Matcher, error) {
	return NewRegexp(cfg.Patterns, cfg.Logger)
}
