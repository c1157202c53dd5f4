// Package suitability decides whether a catalog item is admissible for
// a project context. Rules fail open: absent or out-of-range inputs
// never reject an item.
package suitability

import (
	"strings"

	"stack-advisor/core/types"
)

// Team-size thresholds for the audience rules
const (
	smallTeamMax = 5
	largeTeamMin = 50
)

// IsSuitable reports whether an item fits the given expertise level and
// team size. A teamSize of zero or less means the size is unknown and
// the team-size rules pass vacuously.
func IsSuitable(item types.CatalogItem, expertise types.Level, teamSize int) bool {
	if item.Complexity == types.LevelAdvanced && expertise == types.LevelBeginner {
		return false
	}

	if teamSize <= 0 {
		return true
	}

	bestFor := strings.ToLower(item.BestFor)
	if teamSize < smallTeamMax && strings.Contains(bestFor, "enterprise") {
		return false
	}
	if teamSize > largeTeamMin && strings.Contains(bestFor, "small teams") {
		return false
	}
	return true
}

// Filter returns the items admissible for the given expertise and team
// size, preserving catalog order.
func Filter(items []types.CatalogItem, expertise types.Level, teamSize int) []types.CatalogItem {
	result := make([]types.CatalogItem, 0, len(items))
	for _, item := range items {
		if IsSuitable(item, expertise, teamSize) {
			result = append(result, item)
		}
	}
	return result
}
