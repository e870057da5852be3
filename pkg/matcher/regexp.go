package matcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/keycheck/pkg/types"
	"github.com/rs/zerolog"
)

// RegexpMatcher implements Matcher with regexp2.
//
// regexp2 works on runes, so match indexes are character offsets into the
// decoded text. Patterns are independent: a timeout or engine error in one
// pattern is recorded in the result and the remaining patterns still run.
//
// The compiled patterns are read-only, so a RegexpMatcher is safe for
// concurrent use.
type RegexpMatcher struct {
	patterns []*types.Pattern
	logger   zerolog.Logger
}

// NewRegexp creates a matcher over already compiled patterns.
func NewRegexp(patterns []*types.Pattern, logger zerolog.Logger) (*RegexpMatcher, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns provided")
	}
	for _, p := range patterns {
		if p == nil || p.Regexp == nil {
			return nil, fmt.Errorf("pattern is not compiled")
		}
	}
	return &RegexpMatcher{
		patterns: patterns,
		logger:   logger,
	}, nil
}

// Match runs all patterns over text.
func (m *RegexpMatcher) Match(text []rune) *MatchResult {
	result := newMatchResult()
	var lines *types.LineIndex

	for _, p := range m.patterns {
		m.logger.Debug().Str("pattern", p.Source).Msg("Checking pattern")

		started := time.Now()
		stat := PatternStat{Pattern: p.Source, Status: PatternCompleted}

		match, err := p.Regexp.FindRunesMatch(text)
		for err == nil && match != nil {
			if lines == nil {
				lines = types.NewLineIndex(text)
			}
			result.Violations = append(result.Violations, buildViolation(p, match, lines))
			stat.Matches++

			match, err = p.Regexp.FindNextMatch(match)
		}

		if err != nil {
			stat.Error = err
			if strings.Contains(err.Error(), "match timeout") {
				stat.Status = PatternTimedOut
				m.logger.Warn().Str("pattern", p.Source).Int("matches", stat.Matches).Msg("Pattern timed out, keeping matches found so far")
			} else {
				stat.Status = PatternError
				m.logger.Warn().Str("pattern", p.Source).Err(err).Msg("Pattern failed")
			}
		}

		stat.Duration = time.Since(started)
		result.record(stat)
	}

	return result
}

// buildViolation converts a regexp2 match into a path-less violation.
func buildViolation(p *types.Pattern, match *regexp2.Match, lines *types.LineIndex) *types.Violation {
	span := types.OffsetSpan{
		Start: match.Index,
		End:   match.Index + match.Length,
	}
	return &types.Violation{
		Pattern: p.Source,
		Location: types.Location{
			Offset: span,
			Source: lines.Span(span),
		},
		Match: match.String(),
	}
}
