package pattern

import (
	"sort"

	"github.com/praetorian-inc/keycheck/pkg/types"
)

// Set is a resolved collection of compiled patterns keyed by source text.
// It keeps first-insertion order so diagnostics are deterministic.
// A Set is read-only once Resolve returns it.
type Set struct {
	bySource map[string]*types.Pattern
	order    []*types.Pattern
}

func newSet() *Set {
	return &Set{bySource: make(map[string]*types.Pattern)}
}

// add inserts p unless a pattern with the same source is already present.
func (s *Set) add(p *types.Pattern) bool {
	if _, ok := s.bySource[p.Source]; ok {
		return false
	}
	s.bySource[p.Source] = p
	s.order = append(s.order, p)
	return true
}

// Len returns the number of patterns.
func (s *Set) Len() int {
	return len(s.order)
}

// Contains reports whether a pattern with the given source text is present.
func (s *Set) Contains(source string) bool {
	_, ok := s.bySource[source]
	return ok
}

// Get returns the pattern with the given source text.
func (s *Set) Get(source string) (*types.Pattern, bool) {
	p, ok := s.bySource[source]
	return p, ok
}

// Patterns returns the patterns in insertion order.
func (s *Set) Patterns() []*types.Pattern {
	out := make([]*types.Pattern, len(s.order))
	copy(out, s.order)
	return out
}

// Sources returns the sorted source texts of all patterns.
func (s *Set) Sources() []string {
	out := make([]string, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, p.Source)
	}
	sort.Strings(out)
	return out
}
