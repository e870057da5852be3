package scanner

import (
	"fmt"
	"io"
	"os"

	"github.com/praetorian-inc/keycheck/pkg/matcher"
	"github.com/praetorian-inc/keycheck/pkg/pattern"
	"github.com/praetorian-inc/keycheck/pkg/types"
	"github.com/rs/zerolog"
)

// Scanner runs a resolved pattern set over files.
//
// Files are scanned one at a time in the order given. The pattern set is
// shared read-only; violations are appended to the caller's result.
type Scanner struct {
	matcher matcher.Matcher
	logger  zerolog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger for diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner for the given pattern set.
func New(set *pattern.Set, opts ...Option) (*Scanner, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("empty pattern set")
	}

	s := &Scanner{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	m, err := matcher.New(matcher.Config{
		Patterns: set.Patterns(),
		Logger:   s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}
	s.matcher = m
	return s, nil
}

// ScanFile scans one regular file and returns its violations, each tagged
// with path. A binary file yields no violations. Only read failures are
// returned as errors.
func (s *Scanner) ScanFile(path string) ([]*types.Violation, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	violations, _ := s.scanContent(path, content)
	return violations, nil
}

// ScanBytes scans in-memory content as if it were read from a file named path.
func (s *Scanner) ScanBytes(path string, content []byte) []*types.Violation {
	violations, _ := s.scanContent(path, content)
	return violations
}

// Scan scans every path in order and accumulates the violations.
//
// Paths that do not exist or are not regular files are skipped without
// error, as are files that cannot be read (with a warning).
func (s *Scanner) Scan(paths []string) *Result {
	result := &Result{}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			s.logger.Debug().Str("path", path).Msg("Skipping missing or non-regular file")
			result.FilesSkipped++
			continue
		}

		s.logger.Debug().Str("path", path).Msg("Scanning file")
		content, err := readFile(path)
		if err != nil {
			s.logger.Warn().Str("path", path).Err(err).Msg("Skipping unreadable file")
			result.FilesSkipped++
			continue
		}

		violations, binary := s.scanContent(path, content)
		if binary {
			result.BinarySkipped++
			continue
		}
		result.FilesScanned++
		result.Violations = append(result.Violations, violations...)
	}

	return result
}

// scanContent decodes content and runs the matcher over it.
// The second return value reports that the content was skipped as binary.
func (s *Scanner) scanContent(path string, content []byte) ([]*types.Violation, bool) {
	text, err := Decode(content)
	if err != nil {
		s.logger.Warn().
			Str("path", path).
			Str("type", describeBinary(content)).
			Err(err).
			Msg("Skipping binary file")
		return nil, true
	}
	if len(text) == 0 {
		return nil, false
	}

	result := s.matcher.Match(text)
	for _, v := range result.Violations {
		v.Path = path
	}
	return result.Violations, false
}

// readFile reads a whole file; the handle is closed on every return path.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}
