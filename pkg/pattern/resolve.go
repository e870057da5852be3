package pattern

import (
	"time"

	"github.com/praetorian-inc/keycheck/pkg/types"
	"github.com/rs/zerolog"
)

// Sources lists where patterns may come from.
type Sources struct {
	// Explicit patterns, typically from repeated --pattern flags.
	Explicit []string
	// ConfigFile is a YAML config path. Empty means no config file.
	ConfigFile string
	// Inline is an inline YAML config string. Nil means none was given.
	Inline *string
}

// resolveConfig holds resolution settings.
type resolveConfig struct {
	logger       zerolog.Logger
	matchTimeout time.Duration
}

// Option configures Resolve.
type Option func(*resolveConfig)

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *resolveConfig) {
		c.logger = logger
	}
}

// WithMatchTimeout sets the per-pattern match timeout applied to every
// compiled pattern. Zero or negative disables the timeout.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *resolveConfig) {
		c.matchTimeout = d
	}
}

// Resolve builds the pattern set from src.
//
// It fails with *ConfigParseError when the config file cannot be read or
// decoded, and with *PatternCompileError when an explicit or config-file
// pattern does not compile. Problems with the inline string are logged and
// otherwise ignored.
func Resolve(src Sources, opts ...Option) (*Set, error) {
	cfg := &resolveConfig{
		logger:       zerolog.Nop(),
		matchTimeout: DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	r := &resolver{set: newSet(), cfg: cfg}

	if src.ConfigFile != "" {
		patterns, err := LoadConfigFile(src.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.logger.Debug().Str("path", src.ConfigFile).Int("patterns", len(patterns)).Msg("Loaded config file")
		if err := r.addAll(patterns, types.OriginConfig); err != nil {
			return nil, err
		}
	}

	if src.Inline != nil {
		r.addInline(*src.Inline)
	}

	if err := r.addAll(src.Explicit, types.OriginExplicit); err != nil {
		return nil, err
	}

	if r.set.Len() == 0 {
		p, err := Compile(DefaultPattern, types.OriginDefault, cfg.matchTimeout)
		if err != nil {
			return nil, err
		}
		r.set.add(p)
		cfg.logger.Debug().Str("pattern", DefaultPattern).Msg("No patterns configured, using default")
	}

	return r.set, nil
}

type resolver struct {
	set *Set
	cfg *resolveConfig
}

// addAll compiles and inserts every pattern, stopping at the first one
// that does not compile.
func (r *resolver) addAll(patterns []string, origin types.Origin) error {
	for _, source := range patterns {
		if r.set.Contains(source) {
			continue
		}
		p, err := Compile(source, origin, r.cfg.matchTimeout)
		if err != nil {
			return err
		}
		r.set.add(p)
	}
	return nil
}

// addInline inserts patterns from an inline config string. Nothing here
// aborts resolution: a bad string or a bad pattern is logged and skipped.
func (r *resolver) addInline(input string) {
	patterns, err := ParseInline(input)
	if err != nil {
		r.cfg.logger.Warn().Err(err).Msg("Ignoring inline config")
		return
	}

	for _, source := range patterns {
		if r.set.Contains(source) {
			continue
		}
		p, err := Compile(source, types.OriginInline, r.cfg.matchTimeout)
		if err != nil {
			r.cfg.logger.Warn().Str("pattern", source).Err(err).Msg("Ignoring invalid inline pattern")
			continue
		}
		r.set.add(p)
	}
}
