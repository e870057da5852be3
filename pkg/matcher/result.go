package matcher

import (
	"time"

	"github.com/praetorian-inc/keycheck/pkg/types"
)

// PatternStatus represents how a pattern's search over one text ended
type PatternStatus int

const (
	// PatternCompleted indicates the search finished
	PatternCompleted PatternStatus = iota
	// PatternTimedOut indicates the pattern exceeded its match timeout
	PatternTimedOut
	// PatternError indicates the regex engine returned an error
	PatternError
)

// String returns the string representation of PatternStatus
func (ps PatternStatus) String() string {
	switch ps {
	case PatternCompleted:
		return "completed"
	case PatternTimedOut:
		return "timeout"
	case PatternError:
		return "error"
	default:
		return "unknown"
	}
}

// PatternStat contains statistics about a single pattern's search
type PatternStat struct {
	Pattern  string        // Pattern source text
	Status   PatternStatus // How the search ended
	Duration time.Duration // Time taken
	Matches  int           // Number of matches found
	Error    error         // Set unless Status is PatternCompleted
}

// ResultSummary provides aggregate statistics for one text
type ResultSummary struct {
	TotalPatterns     int // Patterns attempted
	CompletedPatterns int // Patterns that finished
	TimedOutPatterns  int // Patterns that timed out
	ErrorPatterns     int // Patterns that failed
}

// MatchResult contains matches and execution statistics
type MatchResult struct {
	Violations   []*types.Violation     // Every match, grouped by pattern in run order
	PatternStats map[string]PatternStat // Keyed by pattern source text
	Summary      ResultSummary
}

func newMatchResult() *MatchResult {
	return &MatchResult{PatternStats: make(map[string]PatternStat)}
}

func (r *MatchResult) record(stat PatternStat) {
	r.PatternStats[stat.Pattern] = stat
	r.Summary.TotalPatterns++
	switch stat.Status {
	case PatternCompleted:
		r.Summary.CompletedPatterns++
	case PatternTimedOut:
		r.Summary.TimedOutPatterns++
	case PatternError:
		r.Summary.ErrorPatterns++
	}
}
