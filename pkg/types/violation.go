package types

import "fmt"

// Violation is a single located match of a pattern against file content.
type Violation struct {
	Pattern  string   `json:"pattern"`
	Path     string   `json:"path"`
	Location Location `json:"location"`
	Match    string   `json:"match"`
}

// String renders the violation as a single report line.
func (v *Violation) String() string {
	return fmt.Sprintf("Found potential API key matching pattern '%s' in %s:%d-%d",
		v.Pattern, v.Path, v.Location.Offset.Start, v.Location.Offset.End)
}
