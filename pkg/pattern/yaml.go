package pattern

import "gopkg.in/yaml.v3"

// configFile is the on-disk YAML configuration shape.
// Fields other than "patterns" are ignored.
// Patterns stays a node so each item can be checked before use.
type configFile struct {
	Patterns yaml.Node `yaml:"patterns"`
}

// patternsKey is the only key read from config mappings.
const patternsKey = "patterns"
