package types

// OffsetSpan is a character range [Start, End) - half-open interval.
// Offsets count runes of the decoded content, not bytes.
type OffsetSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the span.
func (s OffsetSpan) Len() int {
	return s.End - s.Start
}

// SourcePoint is line:column position (1-based).
type SourcePoint struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceSpan is start-end line:column range.
type SourceSpan struct {
	Start SourcePoint `json:"start"`
	End   SourcePoint `json:"end"`
}

// Location combines character offsets and source positions.
type Location struct {
	Offset OffsetSpan `json:"offset"`
	Source SourceSpan `json:"source"`
}
