package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/praetorian-inc/keycheck/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version   = "2.1.0"
	ToolName  = "keycheck"

	// ColumnKind matches the rune offsets carried by violations.
	ColumnKind = "unicodeCodePoints"
)

// ToolVersion is reported in the driver section; the CLI overrides it at startup.
var ToolVersion = "dev"

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`

	ruleIDs map[string]string // pattern source -> rule ID
}

// Run represents a single invocation of the tool
// Columns and char offsets count Unicode code points, not UTF-16 units.
type Run struct {
	Tool       Tool     `json:"tool"`
	ColumnKind string   `json:"columnKind"`
	Results    []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule describes one detection pattern
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result represents a single violation
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range and the character span
type Region struct {
	StartLine   int      `json:"startLine"`
	StartColumn int      `json:"startColumn"`
	EndLine     int      `json:"endLine"`
	EndColumn   int      `json:"endColumn"`
	CharOffset  int      `json:"charOffset"`
	CharLength  int      `json:"charLength"`
	Snippet     *Snippet `json:"snippet,omitempty"`
}

// Snippet contains the matched text
type Snippet struct {
	Text string `json:"text"`
}

// NewReport creates a new SARIF report with initialized structure
func NewReport() *Report {
	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules:   []Rule{},
					},
				},
				ColumnKind: ColumnKind,
				Results:    []Result{},
			},
		},
		ruleIDs: make(map[string]string),
	}
}

// AddPattern registers a detection pattern as a SARIF rule.
// Adding the same pattern twice is a no-op.
func (r *Report) AddPattern(p *types.Pattern) {
	if _, ok := r.ruleIDs[p.Source]; ok {
		return
	}
	id := p.ShortID()
	r.ruleIDs[p.Source] = id
	r.Runs[0].Tool.Driver.Rules = append(r.Runs[0].Tool.Driver.Rules, Rule{
		ID:   id,
		Name: fmt.Sprintf("%s pattern", p.Origin),
		ShortDescription: ShortDescription{
			Text: fmt.Sprintf("Potential API key matching pattern '%s'", p.Source),
		},
	})
}

// AddViolation adds a violation result to the report.
// The violation's pattern should have been registered with AddPattern;
// otherwise an ID is derived from the pattern text.
func (r *Report) AddViolation(v *types.Violation) {
	ruleID, ok := r.ruleIDs[v.Pattern]
	if !ok {
		ruleID = (&types.Pattern{Source: v.Pattern}).ShortID()
	}

	region := Region{
		StartLine:   v.Location.Source.Start.Line,
		StartColumn: v.Location.Source.Start.Column,
		EndLine:     v.Location.Source.End.Line,
		EndColumn:   v.Location.Source.End.Column,
		CharOffset:  v.Location.Offset.Start,
		CharLength:  v.Location.Offset.Len(),
	}
	if v.Match != "" {
		region.Snippet = &Snippet{Text: v.Match}
	}

	r.Runs[0].Results = append(r.Runs[0].Results, Result{
		RuleID: ruleID,
		Level:  "error",
		Message: Message{
			Text: v.String(),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(v.Path),
					},
					Region: region,
				},
			},
		},
	})
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format
// Absolute paths get file:// prefix, relative paths stay as-is
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
