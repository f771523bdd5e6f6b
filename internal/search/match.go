package search

import (
	"strings"

	"github.com/scoop-searchr/scoop-searchr/internal/manifest"
)

// Reason names the rule that produced a match.
type Reason string

const (
	ReasonName        Reason = "name"
	ReasonBin         Reason = "bin"
	ReasonDescription Reason = "description"
)

// Match is one manifest found in a bucket. At most one of Bin and
// Description is set, and neither is set when the name itself matched.
type Match struct {
	Name        string  // manifest file stem
	Version     string  // version from manifest
	Bin         *string // bin path whose stem matched
	Description *string // full description text that matched
}

// Reason reports which rule produced the match.
func (m Match) Reason() Reason {
	switch {
	case m.Bin != nil:
		return ReasonBin
	case m.Description != nil:
		return ReasonDescription
	default:
		return ReasonName
	}
}

// MatchManifest applies the match rules to one decoded manifest, in priority
// order: name, then bin stems, then description. The first rule that hits
// decides the result. query must already be lowercased.
func MatchManifest(name, query string, m *manifest.Manifest) (Match, bool) {
	match := Match{Name: name, Version: m.Version}

	if strings.Contains(strings.ToLower(name), query) {
		return match, true
	}

	for _, bin := range m.Bin.Executables() {
		stem, ok := manifest.Stem(bin)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(stem), query) {
			match.Bin = &bin
			return match, true
		}
	}

	if m.Description != nil && strings.Contains(strings.ToLower(*m.Description), query) {
		desc := *m.Description
		match.Description = &desc
		return match, true
	}

	return Match{}, false
}
