package pattern

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/praetorian-inc/keycheck/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolve_Default(t *testing.T) {
	set, err := Resolve(Sources{})
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultPattern}, set.Sources())
	p, ok := set.Get(DefaultPattern)
	require.True(t, ok)
	assert.Equal(t, types.OriginDefault, p.Origin)
	assert.NotNil(t, p.Regexp)
}

func TestResolve_ExplicitReplacesDefault(t *testing.T) {
	set, err := Resolve(Sources{Explicit: []string{`AKIA[A-Z0-9]{16}`}})
	require.NoError(t, err)

	assert.Equal(t, []string{`AKIA[A-Z0-9]{16}`}, set.Sources())
	assert.False(t, set.Contains(DefaultPattern))
}

func TestResolve_MergeCollapsesDuplicates(t *testing.T) {
	path := writeConfig(t, "patterns:\n  - 'A'\n  - 'B'\n")

	set, err := Resolve(Sources{
		ConfigFile: path,
		Explicit:   []string{"B", "C"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, set.Sources())
	assert.Equal(t, 3, set.Len())

	// B keeps the origin of the source that supplied it first
	b, ok := set.Get("B")
	require.True(t, ok)
	assert.Equal(t, types.OriginConfig, b.Origin)
}

func TestResolve_AllSources(t *testing.T) {
	path := writeConfig(t, "patterns: ['from-config']\n")

	set, err := Resolve(Sources{
		ConfigFile: path,
		Inline:     strPtr(`{patterns: ['from-inline', 'from-config']}`),
		Explicit:   []string{"from-explicit"},
	})
	require.NoError(t, err)

	var order []string
	for _, p := range set.Patterns() {
		order = append(order, p.Source)
	}
	assert.Equal(t, []string{"from-config", "from-inline", "from-explicit"}, order)
}

func TestResolve_Idempotent(t *testing.T) {
	path := writeConfig(t, "patterns: ['x{3}', 'y+']\n")
	src := Sources{
		ConfigFile: path,
		Inline:     strPtr(`['z?', 'y+']`),
		Explicit:   []string{"x{3}", "w"},
	}

	first, err := Resolve(src)
	require.NoError(t, err)
	second, err := Resolve(src)
	require.NoError(t, err)

	assert.Equal(t, first.Sources(), second.Sources())
}

func TestResolve_InvalidInlineFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	set, err := Resolve(Sources{Inline: strPtr("not: valid: yaml: [")}, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultPattern}, set.Sources())
	assert.Contains(t, buf.String(), "Ignoring inline config")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestResolve_InvalidInlineKeepsOtherSources(t *testing.T) {
	set, err := Resolve(Sources{
		Inline:   strPtr("42"),
		Explicit: []string{"token_[0-9]+"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"token_[0-9]+"}, set.Sources())
}

func TestResolve_InvalidInlinePatternIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	set, err := Resolve(Sources{Inline: strPtr(`['(unclosed', 'ok-[0-9]+']`)}, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, []string{"ok-[0-9]+"}, set.Sources())
	assert.Contains(t, buf.String(), "Ignoring invalid inline pattern")
	assert.Contains(t, buf.String(), "(unclosed")
}

func TestResolve_InvalidExplicitPattern(t *testing.T) {
	_, err := Resolve(Sources{Explicit: []string{"valid", "(unclosed"}})
	require.Error(t, err)

	var compileErr *PatternCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "(unclosed", compileErr.Pattern)
	assert.Equal(t, types.OriginExplicit, compileErr.Origin)
	assert.Contains(t, err.Error(), `"(unclosed"`)
}

func TestResolve_InvalidConfigPattern(t *testing.T) {
	path := writeConfig(t, "patterns: ['[unterminated']\n")

	_, err := Resolve(Sources{ConfigFile: path})

	var compileErr *PatternCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "[unterminated", compileErr.Pattern)
	assert.Equal(t, types.OriginConfig, compileErr.Origin)
}

func TestResolve_ConfigParseErrorIsFatal(t *testing.T) {
	path := writeConfig(t, "patterns: [[[")

	_, err := Resolve(Sources{ConfigFile: path, Explicit: []string{"x"}})

	var parseErr *ConfigParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestResolve_MatchTimeout(t *testing.T) {
	set, err := Resolve(Sources{}, WithMatchTimeout(0))
	require.NoError(t, err)

	p, _ := set.Get(DefaultPattern)
	assert.NotEqual(t, DefaultMatchTimeout, p.Regexp.MatchTimeout)

	set, err = Resolve(Sources{})
	require.NoError(t, err)
	p, _ = set.Get(DefaultPattern)
	assert.Equal(t, DefaultMatchTimeout, p.Regexp.MatchTimeout)
}

func TestResolve_NamedGroupPattern(t *testing.T) {
	source := `(?P<key>sk-[A-Za-z0-9]{48})`

	set, err := Resolve(Sources{Explicit: []string{source}})
	require.NoError(t, err)

	p, ok := set.Get(source)
	require.True(t, ok)
	assert.Equal(t, types.OriginExplicit, p.Origin)
	assert.Equal(t, DefaultMatchTimeout, p.Regexp.MatchTimeout)

	key := "sk-" + strings.Repeat("a1B2", 12)
	m, err := p.Regexp.FindStringMatch("OPENAI_KEY=" + key)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 11, m.Index)
	assert.Equal(t, key, m.GroupByName("key").String())
}

func TestResolve_NamedGroupInConfigFile(t *testing.T) {
	path := writeConfig(t, "patterns:\n  - '(?P<id>AKIA[A-Z0-9]{16})'\n")

	set, err := Resolve(Sources{ConfigFile: path})
	require.NoError(t, err)
	assert.True(t, set.Contains(`(?P<id>AKIA[A-Z0-9]{16})`))
}

func TestResolve_NullConfigItemIsFatal(t *testing.T) {
	path := writeConfig(t, "patterns: [~, 'A']\n")

	set, err := Resolve(Sources{ConfigFile: path})
	assert.Nil(t, set)

	var parseErr *ConfigParseError
	assert.True(t, errors.As(err, &parseErr))
}
