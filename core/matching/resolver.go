// Package matching resolves abstract architecture services to concrete
// cloud-platform products. Mapping lookup is an exact string match over
// a linear scan; that string coupling is deliberately isolated behind
// this package so the strategy can change without touching callers.
package matching

import (
	"sort"

	"stack-advisor/core/types"
)

// OutcomeKind classifies a resolution result
type OutcomeKind string

const (
	// OutcomeDirect means a product equivalent was resolved
	OutcomeDirect OutcomeKind = "direct"

	// OutcomeNoEquivalent means the mapping explicitly declares no
	// direct equivalent
	OutcomeNoEquivalent OutcomeKind = "no_equivalent"

	// OutcomeNoMapping means no mapping exists for the service at all.
	// Kept distinct from OutcomeNoEquivalent internally; callers
	// render both as requiring a custom implementation.
	OutcomeNoMapping OutcomeKind = "no_mapping"
)

// DefaultNoEquivalentNote is used when an explicit non-equivalent
// mapping omits its own note.
const DefaultNoEquivalentNote = "No direct cloud equivalent available"

// CustomImplementationNotice is how callers must render any
// non-direct outcome.
const CustomImplementationNotice = "Custom implementation required"

// MaxAlternatives bounds the alternatives list
const MaxAlternatives = 3

// Resolution is the outcome of resolving one service against one
// platform.
type Resolution struct {
	// Kind classifies the outcome
	Kind OutcomeKind `json:"kind"`

	// Product is the resolved equivalent, set only for OutcomeDirect
	Product *types.CloudProduct `json:"product,omitempty"`

	// Alternatives are same-subcategory products, best rank first
	Alternatives []types.CloudProduct `json:"alternatives,omitempty"`

	// Notes carries the mapping's explanation for non-equivalent
	// outcomes
	Notes string `json:"notes,omitempty"`
}

// RequiresCustomImplementation reports whether the caller should
// render the custom-implementation notice.
func (r Resolution) RequiresCustomImplementation() bool {
	return r.Kind != OutcomeDirect
}

// ResolveService resolves (serviceName, serviceCategory) against the
// platform's mapping table. Lookup failures are never fatal: a missing
// mapping or a dangling product id degrades to OutcomeNoMapping.
func ResolveService(platform types.CloudPlatform, serviceName, serviceCategory string) Resolution {
	mapping, found := findMapping(platform.Mappings, serviceName, serviceCategory)
	if !found {
		return Resolution{Kind: OutcomeNoMapping}
	}

	if !mapping.IsDirectEquivalent {
		notes := mapping.Notes
		if notes == "" {
			notes = DefaultNoEquivalentNote
		}
		return Resolution{Kind: OutcomeNoEquivalent, Notes: notes}
	}

	product, found := findProduct(platform.Products, mapping.ProductID)
	if !found {
		// Dangling product id; same outcome as an absent mapping.
		return Resolution{Kind: OutcomeNoMapping}
	}

	return Resolution{
		Kind:         OutcomeDirect,
		Product:      &product,
		Alternatives: alternatives(platform.Products, product),
	}
}

func findMapping(mappings []types.ServiceProductMapping, serviceName, serviceCategory string) (types.ServiceProductMapping, bool) {
	for _, m := range mappings {
		if m.ServiceName == serviceName && m.ServiceCategory == serviceCategory {
			return m, true
		}
	}
	return types.ServiceProductMapping{}, false
}

func findProduct(products []types.CloudProduct, id string) (types.CloudProduct, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return types.CloudProduct{}, false
}

// alternatives selects products sharing the resolved product's
// subcategory, best popularity rank first, at most MaxAlternatives.
func alternatives(products []types.CloudProduct, resolved types.CloudProduct) []types.CloudProduct {
	subcategory := resolved.SubcategoryOrDefault()
	candidates := make([]types.CloudProduct, 0, len(products))
	for _, p := range products {
		if p.ID != resolved.ID && p.SubcategoryOrDefault() == subcategory {
			candidates = append(candidates, p)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectiveRank() < candidates[j].EffectiveRank()
	})

	if len(candidates) > MaxAlternatives {
		candidates = candidates[:MaxAlternatives]
	}
	return candidates
}
