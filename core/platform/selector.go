// Package platform narrows and re-ranks cloud platforms for a project
// context: architecture compatibility first, then persona-overlap
// relevance.
package platform

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"stack-advisor/core/types"
)

// Ranked pairs a platform with its persona relevance score
type Ranked struct {
	Platform types.CloudPlatform `json:"platform"`

	// Relevance is the size of the persona overlap; zero when no
	// personas were supplied
	Relevance int `json:"relevance"`
}

// Select filters platforms to those supporting the architecture (no
// filtering when architecture is empty). When personas are supplied,
// platforms are re-ranked by descending persona overlap, ties broken
// by collated name order.
func Select(platforms []types.CloudPlatform, architecture string, personas []string) []Ranked {
	ranked := make([]Ranked, 0, len(platforms))
	for _, p := range platforms {
		if !p.SupportsArchitecture(architecture) {
			continue
		}
		ranked = append(ranked, Ranked{Platform: p, Relevance: overlap(p.TargetPersonas, personas)})
	}

	if len(personas) == 0 {
		return ranked
	}

	collator := collate.New(language.English)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Relevance != ranked[j].Relevance {
			return ranked[i].Relevance > ranked[j].Relevance
		}
		return collator.CompareString(ranked[i].Platform.Name, ranked[j].Platform.Name) < 0
	})
	return ranked
}

// overlap counts the distinct personas both lists share
func overlap(targets, personas []string) int {
	if len(targets) == 0 || len(personas) == 0 {
		return 0
	}
	set := make(map[string]bool, len(targets))
	for _, t := range targets {
		set[t] = true
	}
	count := 0
	seen := make(map[string]bool, len(personas))
	for _, p := range personas {
		if set[p] && !seen[p] {
			seen[p] = true
			count++
		}
	}
	return count
}
