// Package scoring computes the heuristic popularity score used to rank
// catalog items within a category. The weights are fixed policy, not
// tunable parameters: a deterministic additive score keeps
// recommendation ordering explainable.
//
// This score is unrelated to CloudProduct.PopularityRank, which is an
// authorial rank maintained in the platform catalogs.
package scoring

import (
	"strings"

	"stack-advisor/core/types"
)

const (
	// BaseScore is the starting score for every item
	BaseScore = 5

	// MaxScore is the score ceiling
	MaxScore = 10

	// NeutralScore is assigned to synthetic placeholder items
	NeutralScore = 5

	freePricingBonus   = 2
	richFeaturesBonus  = 1
	multiPlatformBonus = 1

	richFeaturesMin = 5
)

// Score computes the popularity score for an item, in [0, 10].
// The "free" check is a case-insensitive substring test over the
// pricing text; the matching strategy is isolated here so it can be
// swapped without touching callers.
func Score(item types.CatalogItem) int {
	score := BaseScore
	if strings.Contains(strings.ToLower(item.Pricing), "free") {
		score += freePricingBonus
	}
	if len(item.Features) > richFeaturesMin {
		score += richFeaturesBonus
	}
	if item.PlatformAffinity == types.MultiPlatform {
		score += multiPlatformBonus
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}
