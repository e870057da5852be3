package pattern

import (
	"fmt"

	"github.com/praetorian-inc/keycheck/pkg/types"
)

// ConfigParseError reports a config file that could not be read or decoded.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// InlineConfigParseError reports an inline config string that is not valid
// YAML or does not have one of the accepted shapes. It is never fatal.
type InlineConfigParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *InlineConfigParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid inline config: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid inline config: %s", e.Reason)
}

func (e *InlineConfigParseError) Unwrap() error { return e.Err }

// PatternCompileError reports a pattern that is not a valid regular expression.
type PatternCompileError struct {
	Pattern string
	Origin  types.Origin
	Err     error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Origin, e.Pattern, e.Err)
}

func (e *PatternCompileError) Unwrap() error { return e.Err }
