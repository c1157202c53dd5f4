// Package gap implements the stack gap analysis: completeness scoring,
// missing-category detection, per-category tool recommendations, and
// compliance gap assembly. The engine is a pure function of
// (catalog, context); it holds no mutable state and never fails to
// produce a report for a well-formed context.
package gap

import (
	"fmt"
	"math"
	"sort"

	"stack-advisor/core/catalog"
	"stack-advisor/core/compliance"
	"stack-advisor/core/scoring"
	"stack-advisor/core/suitability"
	"stack-advisor/core/types"
)

// MaxToolsPerCategory bounds each recommendation's tool list
const MaxToolsPerCategory = 3

// MaxPriorityActions bounds the report's priority action list
const MaxPriorityActions = 3

// Fixed cost-estimate placeholders; adoption cost is a rough signal
// derived from the top tool only, not a per-tool cost model.
const (
	defaultTrainingTime      = "1-2 weeks"
	defaultMaintenanceEffort = "medium"
	unknownPricing           = "Varies"
)

// Engine computes stack gap reports over an immutable catalog.
// Concurrent Analyze calls are safe: the engine only reads.
type Engine struct {
	catalog    *catalog.Catalog
	compliance *compliance.Resolver
}

// New creates an engine over the given catalog
func New(c *catalog.Catalog) *Engine {
	return &Engine{
		catalog:    c,
		compliance: compliance.NewResolver(c),
	}
}

// Analyze produces a full gap report for the context
func (e *Engine) Analyze(ctx types.ProjectContext) types.StackGapReport {
	categories := e.catalog.Categories()

	missing := make([]types.StackCategory, 0, len(categories))
	filled := 0
	for _, cat := range categories {
		if ctx.HasCategory(cat.ID) {
			filled++
		} else {
			missing = append(missing, cat)
		}
	}

	report := types.StackGapReport{
		CompletenessScore: completeness(filled, len(categories)),
		MissingCategories: categoryNames(missing),
		TeamSizeNote:      teamSizeNote(ctx.TeamSize),
		IndustryNote:      industryNote(ctx.Industry),
	}

	report.RecommendedAdditions = make([]types.StackGapRecommendation, 0, len(missing))
	for _, cat := range missing {
		report.RecommendedAdditions = append(report.RecommendedAdditions, e.recommend(cat, ctx))
	}

	report.ComplianceGaps = e.compliance.Gaps(ctx.ComplianceRequirements, ctx.ExistingStack)

	// Priority actions keep category order; they are not re-sorted by
	// any score.
	for _, rec := range report.RecommendedAdditions {
		if rec.Priority == types.PriorityCritical {
			report.PriorityActions = append(report.PriorityActions, rec)
			if len(report.PriorityActions) == MaxPriorityActions {
				break
			}
		}
	}

	return report
}

// completeness is round(100 * filled / total), 0 for an empty table
func completeness(filled, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(filled) / float64(total)))
}

// recommend builds the recommendation for one missing category
func (e *Engine) recommend(cat types.StackCategory, ctx types.ProjectContext) types.StackGapRecommendation {
	tools := e.rankTools(cat, ctx)

	priority := cat.Priority
	if intersects(ctx.ComplianceRequirements, cat.RequiredForCompliance) {
		priority = types.PriorityCritical
	}

	return types.StackGapRecommendation{
		CategoryID:   cat.ID,
		Category:     cat.Name,
		Priority:     priority,
		Tools:        tools,
		Rationale:    rationale(cat, ctx),
		CostEstimate: costEstimate(tools[0]),
	}
}

// rankTools applies filter, score, stable sort, truncate. Categories
// without a usable catalog fall back to a synthetic placeholder so
// every missing category yields at least one recommendation.
func (e *Engine) rankTools(cat types.StackCategory, ctx types.ProjectContext) []types.ScoredTool {
	items, _ := e.catalog.Tools(cat.ID)
	admissible := suitability.Filter(items, ctx.Expertise, ctx.TeamSize)
	if len(admissible) == 0 {
		return []types.ScoredTool{placeholderTool(cat)}
	}

	scored := make([]types.ScoredTool, 0, len(admissible))
	for _, item := range admissible {
		scored = append(scored, types.ScoredTool{Item: item, Score: scoring.Score(item)})
	}

	// Stable: equal scores keep catalog order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > MaxToolsPerCategory {
		scored = scored[:MaxToolsPerCategory]
	}
	return scored
}

// placeholderTool is the generic fallback for categories without a
// dedicated catalog
func placeholderTool(cat types.StackCategory) types.ScoredTool {
	return types.ScoredTool{
		Item: types.CatalogItem{
			ID:      "generic-" + cat.ID,
			Name:    fmt.Sprintf("Generic %s Tool", cat.Name),
			Pricing: unknownPricing,
		},
		Score: scoring.NeutralScore,
	}
}

// costEstimate derives the rough adoption estimate from the top tool
func costEstimate(top types.ScoredTool) types.CostEstimate {
	pricing := top.Item.Pricing
	if pricing == "" {
		pricing = unknownPricing
	}
	return types.CostEstimate{
		Pricing:           pricing,
		TrainingTime:      defaultTrainingTime,
		MaintenanceEffort: defaultMaintenanceEffort,
	}
}

func categoryNames(categories []types.StackCategory) []string {
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	return names
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
