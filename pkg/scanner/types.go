package scanner

import "github.com/praetorian-inc/keycheck/pkg/types"

// Result is the outcome of scanning a sequence of paths.
type Result struct {
	Violations    []*types.Violation `json:"violations"`
	FilesScanned  int                `json:"files_scanned"`
	FilesSkipped  int                `json:"files_skipped"`  // missing, non-regular or unreadable
	BinarySkipped int                `json:"binary_skipped"` // failed text decoding
}

// HasViolations reports whether any file produced a violation.
func (r *Result) HasViolations() bool {
	return len(r.Violations) > 0
}
