// Package compliance resolves compliance frameworks into gap reports:
// which required stack categories are missing, what an audit expects,
// and a deterministic remediation cost and timeline. This is a
// lookup-and-arithmetic model, reproducible bit for bit for the same
// inputs.
package compliance

import (
	"github.com/shopspring/decimal"

	"stack-advisor/core/catalog"
	"stack-advisor/core/types"
)

const (
	// DefaultBaseCostUSD is the base cost for frameworks not in the
	// catalog
	DefaultBaseCostUSD = 10000

	// CostPerMissingControlUSD is the per-missing-category cost slope
	CostPerMissingControlUSD = 2000
)

// Timeline buckets by missing-control count
const (
	TimelineShort  = "2-4 weeks"
	TimelineMedium = "1-2 months"
	TimelineLong   = "2-4 months"
)

// Resolver maps required frameworks to compliance gaps against an
// existing stack.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a resolver over the given catalog
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Gaps resolves every requested framework, in request order.
func (r *Resolver) Gaps(required []string, existingStack map[string][]string) []types.ComplianceGap {
	gaps := make([]types.ComplianceGap, 0, len(required))
	for _, frameworkID := range required {
		gaps = append(gaps, r.Gap(frameworkID, existingStack))
	}
	return gaps
}

// Gap resolves a single framework. Unknown frameworks are handled
// permissively: default base cost, no required categories.
func (r *Resolver) Gap(frameworkID string, existingStack map[string][]string) types.ComplianceGap {
	framework, known := r.catalog.Framework(frameworkID)

	baseCost := int64(DefaultBaseCostUSD)
	if known {
		baseCost = framework.BaseCostUSD
	}

	missing := missingControls(framework.RequiredCategories, existingStack)
	cost := decimal.NewFromInt(baseCost).Add(
		decimal.NewFromInt(CostPerMissingControlUSD).Mul(decimal.NewFromInt(int64(len(missing)))))

	return types.ComplianceGap{
		Framework:              frameworkID,
		FrameworkName:          framework.Name,
		MissingControls:        missing,
		AuditRequirements:      framework.AuditRequirements,
		EstimatedCost:          cost,
		ImplementationTimeline: Timeline(len(missing)),
	}
}

// Timeline buckets a missing-control count into a timeline estimate
func Timeline(missingCount int) string {
	switch {
	case missingCount <= 2:
		return TimelineShort
	case missingCount <= 5:
		return TimelineMedium
	default:
		return TimelineLong
	}
}

// missingControls returns the required categories with no existing
// technology, in required order. A category with entries is never
// reported missing.
func missingControls(required []string, existingStack map[string][]string) []string {
	missing := make([]string, 0, len(required))
	for _, categoryID := range required {
		if len(existingStack[categoryID]) == 0 {
			missing = append(missing, categoryID)
		}
	}
	return missing
}
