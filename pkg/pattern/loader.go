package pattern

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads the pattern list from a YAML config file.
func LoadConfigFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}
	patterns, err := LoadConfig(data)
	if err != nil {
		return nil, &ConfigParseError{Path: path, Err: err}
	}
	return patterns, nil
}

// LoadConfig decodes the pattern list from YAML config bytes.
// An empty document or a missing "patterns" field yields no patterns.
// Null or non-scalar items are rejected rather than skipped.
func LoadConfig(data []byte) ([]string, error) {
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if cfg.Patterns.Kind == 0 {
		return nil, nil
	}
	return sequenceValues(&cfg.Patterns)
}

// ParseInline decodes an inline config string.
//
// Two shapes are accepted: a bare sequence of strings, or a mapping whose
// "patterns" key holds a sequence of strings. Anything else returns an
// *InlineConfigParseError.
func ParseInline(input string) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, &InlineConfigParseError{Input: input, Reason: "not valid YAML", Err: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &InlineConfigParseError{Input: input, Reason: "empty document"}
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return scalarSequence(input, root)
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == patternsKey {
				return scalarSequence(input, root.Content[i+1])
			}
		}
		return nil, &InlineConfigParseError{Input: input, Reason: "mapping has no patterns key"}
	default:
		return nil, &InlineConfigParseError{
			Input:  input,
			Reason: fmt.Sprintf("expected a sequence or a mapping with a patterns key, got %s", kindName(root.Kind)),
		}
	}
}

// scalarSequence is sequenceValues for inline input.
func scalarSequence(input string, n *yaml.Node) ([]string, error) {
	patterns, err := sequenceValues(n)
	if err != nil {
		return nil, &InlineConfigParseError{Input: input, Reason: err.Error()}
	}
	return patterns, nil
}

// sequenceValues extracts the values of a sequence of scalars.
// A null value stands for an empty sequence.
func sequenceValues(n *yaml.Node) ([]string, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("patterns must be a sequence, got %s", kindName(n.Kind))
	}

	patterns := make([]string, 0, len(n.Content))
	for i, item := range n.Content {
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, fmt.Errorf("patterns[%d] is not a string", i)
		}
		patterns = append(patterns, item.Value)
	}
	return patterns, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
