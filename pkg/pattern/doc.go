// Package pattern resolves the set of detection patterns used for a scan.
//
// Patterns come from up to three sources, merged in this order:
//
//  1. a YAML config file with a top-level "patterns" sequence
//  2. an inline YAML string, either a bare sequence or a mapping with "patterns"
//  3. explicit patterns given on the command line
//
// The result is keyed by pattern text, so a pattern supplied twice is kept
// once. When no source supplies anything, the set holds DefaultPattern.
//
// Config files are trusted input: a parse failure or an invalid regular
// expression aborts resolution. Inline strings are not: any problem with
// them is logged as a warning and the string contributes nothing.
package pattern
