package pattern

import (
	"time"

	"github.com/dlclark/regexp2"
	"github.com/praetorian-inc/keycheck/pkg/types"
)

// DefaultPattern matches runs of 32 or more ASCII letters and digits.
const DefaultPattern = `[a-zA-Z0-9]{32,}`

// DefaultMatchTimeout bounds a single pattern's search over one file.
const DefaultMatchTimeout = 5 * time.Second

// Compile compiles source into a Pattern.
//
// The default regexp2 dialect is tried first. Patterns it rejects, such as
// (?P<name>...) groups, are retried in RE2 mode. The reported error is the
// one from the default dialect. A timeout <= 0 leaves the regexp2 default
// (no timeout).
func Compile(source string, origin types.Origin, timeout time.Duration) (*types.Pattern, error) {
	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		var re2Err error
		re, re2Err = regexp2.Compile(source, regexp2.RE2)
		if re2Err != nil {
			return nil, &PatternCompileError{Pattern: source, Origin: origin, Err: err}
		}
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &types.Pattern{
		Source: source,
		Origin: origin,
		Regexp: re,
	}, nil
}
