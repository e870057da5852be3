package types

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/dlclark/regexp2"
)

// Origin names the source that first contributed a pattern.
type Origin string

const (
	OriginDefault  Origin = "default"
	OriginConfig   Origin = "config"
	OriginInline   Origin = "inline"
	OriginExplicit Origin = "explicit"
)

// Pattern is a compiled detection pattern.
// Source is the identity: two patterns with the same source text are the
// same pattern no matter where they came from.
type Pattern struct {
	Source string          `json:"pattern"`
	Origin Origin          `json:"origin"`
	Regexp *regexp2.Regexp `json:"-"`
}

// ComputeStructuralID computes SHA-1 of the pattern source.
func (p *Pattern) ComputeStructuralID() string {
	h := sha1.New()
	h.Write([]byte(p.Source))
	return hex.EncodeToString(h.Sum(nil))
}

// ShortID is a stable, human-sized identifier derived from the structural ID.
func (p *Pattern) ShortID() string {
	return "keycheck." + p.ComputeStructuralID()[:12]
}
