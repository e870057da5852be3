// Package keycheck finds strings that look like API keys in files.
//
// It is the library behind the keycheck pre-commit hook. Patterns come from
// explicit regular expressions, a YAML config file, an inline YAML string,
// or a built-in default that flags long alphanumeric runs.
//
// # Basic Usage
//
//	checker, err := keycheck.NewChecker()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := checker.CheckFiles([]string{"main.go", "config.yaml"})
//	for _, v := range result.Violations {
//	    fmt.Println(v)
//	}
//
// # Custom Patterns
//
//	checker, err := keycheck.NewChecker(
//	    keycheck.WithPatterns(`sk_live_[0-9a-zA-Z]{24}`),
//	    keycheck.WithConfigFile(".keycheck.yaml"),
//	)
package keycheck

import (
	"fmt"
	"time"

	"github.com/praetorian-inc/keycheck/pkg/pattern"
	"github.com/praetorian-inc/keycheck/pkg/scanner"
	"github.com/praetorian-inc/keycheck/pkg/types"
	"github.com/rs/zerolog"
)

// Re-export commonly used types so callers can import just this package.
type (
	// Violation is a single located pattern match.
	Violation = types.Violation

	// Pattern is a compiled detection pattern.
	Pattern = types.Pattern

	// Location describes where a violation was found.
	Location = types.Location

	// Result is the outcome of checking a list of files.
	Result = scanner.Result
)

// DefaultPattern is used when no other pattern is configured.
const DefaultPattern = pattern.DefaultPattern

// Checker scans files with a fixed pattern set.
type Checker struct {
	set     *pattern.Set
	scanner *scanner.Scanner
}

type checkerConfig struct {
	sources      pattern.Sources
	logger       zerolog.Logger
	matchTimeout time.Duration
}

// Option configures a Checker.
type Option func(*checkerConfig)

// WithPatterns adds explicit patterns. It may be given more than once.
func WithPatterns(patterns ...string) Option {
	return func(c *checkerConfig) {
		c.sources.Explicit = append(c.sources.Explicit, patterns...)
	}
}

// WithConfigFile reads patterns from a YAML file with a top-level patterns list.
func WithConfigFile(path string) Option {
	return func(c *checkerConfig) {
		c.sources.ConfigFile = path
	}
}

// WithInlineConfig reads patterns from a YAML string: either a list of
// patterns or a mapping with a patterns key. An unusable string is logged
// and ignored.
func WithInlineConfig(yamlText string) Option {
	return func(c *checkerConfig) {
		c.sources.Inline = &yamlText
	}
}

// WithLogger routes diagnostics to logger. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *checkerConfig) {
		c.logger = logger
	}
}

// WithMatchTimeout bounds the time one pattern may spend on one file.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *checkerConfig) {
		c.matchTimeout = d
	}
}

// NewChecker resolves patterns and builds a Checker.
//
// Errors are *pattern.ConfigParseError or *pattern.PatternCompileError,
// possibly wrapped.
func NewChecker(opts ...Option) (*Checker, error) {
	cfg := &checkerConfig{
		logger:       zerolog.Nop(),
		matchTimeout: pattern.DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	set, err := pattern.Resolve(cfg.sources,
		pattern.WithLogger(cfg.logger),
		pattern.WithMatchTimeout(cfg.matchTimeout))
	if err != nil {
		return nil, fmt.Errorf("resolving patterns: %w", err)
	}

	s, err := scanner.New(set, scanner.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("creating scanner: %w", err)
	}

	return &Checker{set: set, scanner: s}, nil
}

// CheckFiles scans every path in order. Missing paths, directories and
// binary files are skipped.
func (c *Checker) CheckFiles(paths []string) *Result {
	return c.scanner.Scan(paths)
}

// CheckFile scans a single file. Only read failures are returned as errors.
func (c *Checker) CheckFile(path string) ([]*Violation, error) {
	return c.scanner.ScanFile(path)
}

// CheckString scans content as though it were read from a file named name.
func (c *Checker) CheckString(name, content string) []*Violation {
	return c.scanner.ScanBytes(name, []byte(content))
}

// CheckBytes is CheckString for raw bytes. Content that is not UTF-8 text
// yields no violations.
func (c *Checker) CheckBytes(name string, content []byte) []*Violation {
	return c.scanner.ScanBytes(name, content)
}

// Patterns returns the resolved patterns in insertion order.
func (c *Checker) Patterns() []*Pattern {
	return c.set.Patterns()
}

// PatternCount returns the number of resolved patterns.
func (c *Checker) PatternCount() int {
	return c.set.Len()
}
