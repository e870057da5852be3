package types

import "sort"

// LineIndex maps character offsets of a decoded text to line:column positions.
type LineIndex struct {
	// starts[i] is the character offset at which line i+1 begins.
	starts []int
}

// NewLineIndex records the start offset of every line in text.
func NewLineIndex(text []rune) *LineIndex {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts}
}

// Position returns the 1-based line and column of a character offset.
// A newline belongs to the line it terminates.
func (idx *LineIndex) Position(offset int) SourcePoint {
	if offset < 0 {
		offset = 0
	}
	line := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	})
	return SourcePoint{
		Line:   line,
		Column: offset - idx.starts[line-1] + 1,
	}
}

// Span converts an offset span to a line:column span.
func (idx *LineIndex) Span(span OffsetSpan) SourceSpan {
	return SourceSpan{
		Start: idx.Position(span.Start),
		End:   idx.Position(span.End),
	}
}

// ComputeLineColumn computes line and column numbers from a character offset in text.
// Lines and columns are 1-indexed (first line is 1, first column is 1).
func ComputeLineColumn(text []rune, offset int) (line, column int) {
	p := NewLineIndex(text).Position(offset)
	return p.Line, p.Column
}
