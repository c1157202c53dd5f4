// Package matching - Product grouping for display
package matching

import (
	"sort"

	"stack-advisor/core/types"
)

// SubcategoryGroup holds rank-sorted products for one subcategory
type SubcategoryGroup struct {
	// Subcategory is the group key, "other" for products without one
	Subcategory string `json:"subcategory"`

	// Products preserve the platform-wide rank-sorted order
	Products []types.CloudProduct `json:"products"`
}

// CategoryGroup holds one category's subcategory groups
type CategoryGroup struct {
	// Category is the outer group key
	Category string `json:"category"`

	// Subcategories are ordered by first appearance in the rank-sorted
	// product list
	Subcategories []SubcategoryGroup `json:"subcategories"`
}

// GroupProductsBySubcategory filters the platform's products to the
// selected architecture (no filtering when architecture is empty),
// sorts ascending by popularity rank, and groups first by category and
// then by subcategory, preserving the rank-sorted order within each
// group.
func GroupProductsBySubcategory(platform types.CloudPlatform, architecture string) []CategoryGroup {
	filtered := make([]types.CloudProduct, 0, len(platform.Products))
	for _, p := range platform.Products {
		if p.SupportsArchitecture(architecture) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].EffectiveRank() < filtered[j].EffectiveRank()
	})

	groups := make([]CategoryGroup, 0)
	categoryIndex := make(map[string]int)

	for _, p := range filtered {
		gi, ok := categoryIndex[p.Category]
		if !ok {
			gi = len(groups)
			categoryIndex[p.Category] = gi
			groups = append(groups, CategoryGroup{Category: p.Category})
		}

		subcategory := p.SubcategoryOrDefault()
		subs := groups[gi].Subcategories
		si := -1
		for i := range subs {
			if subs[i].Subcategory == subcategory {
				si = i
				break
			}
		}
		if si < 0 {
			groups[gi].Subcategories = append(subs, SubcategoryGroup{Subcategory: subcategory})
			si = len(groups[gi].Subcategories) - 1
		}
		groups[gi].Subcategories[si].Products = append(groups[gi].Subcategories[si].Products, p)
	}

	return groups
}
