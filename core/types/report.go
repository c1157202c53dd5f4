// Package types - Gap report types
package types

import "github.com/shopspring/decimal"

// StackGapReport is the full output of a gap analysis. It is derived
// per invocation and never stored by the engine.
type StackGapReport struct {
	// CompletenessScore is the percentage of categories covered,
	// 0 to 100
	CompletenessScore int `json:"completeness_score"`

	// MissingCategories lists the names of uncovered categories, in
	// category table order
	MissingCategories []string `json:"missing_categories"`

	// RecommendedAdditions holds one recommendation per missing
	// category, in category table order
	RecommendedAdditions []StackGapRecommendation `json:"recommended_additions"`

	// ComplianceGaps holds one gap per requested framework
	ComplianceGaps []ComplianceGap `json:"compliance_gaps,omitempty"`

	// PriorityActions are the first three critical recommendations,
	// in category table order
	PriorityActions []StackGapRecommendation `json:"priority_actions,omitempty"`

	// TeamSizeNote is an advisory derived from team size
	TeamSizeNote string `json:"team_size_note,omitempty"`

	// IndustryNote is an advisory derived from the industry
	IndustryNote string `json:"industry_note,omitempty"`
}

// StackGapRecommendation suggests tools for one missing category.
type StackGapRecommendation struct {
	// CategoryID is the missing category's identifier
	CategoryID string `json:"category_id"`

	// Category is the missing category's display name
	Category string `json:"category"`

	// Priority is the category priority, upgraded to critical when
	// compliance requires the category
	Priority Priority `json:"priority"`

	// Tools are the suggested tools, best first, at most three
	Tools []ScoredTool `json:"tools"`

	// Rationale explains why the category matters for this project
	Rationale string `json:"rationale"`

	// CostEstimate is a rough adoption estimate for the top tool
	CostEstimate CostEstimate `json:"cost_estimate"`
}

// ScoredTool pairs a catalog item with its computed popularity score.
type ScoredTool struct {
	Item CatalogItem `json:"item"`

	// Score is the heuristic popularity score, 0 to 10
	Score int `json:"score"`
}

// CostEstimate is a rough adoption cost placeholder derived from the
// top-ranked tool only.
type CostEstimate struct {
	// Pricing is the top tool's pricing text
	Pricing string `json:"pricing"`

	// TrainingTime is a fixed training-time placeholder
	TrainingTime string `json:"training_time"`

	// MaintenanceEffort is a fixed maintenance-effort placeholder
	MaintenanceEffort string `json:"maintenance_effort"`
}

// ComplianceGap describes the remediation needed for one framework.
type ComplianceGap struct {
	// Framework is the framework identifier as requested
	Framework string `json:"framework"`

	// FrameworkName is the display name, when known
	FrameworkName string `json:"framework_name,omitempty"`

	// MissingControls lists required category IDs absent from the
	// existing stack
	MissingControls []string `json:"missing_controls"`

	// AuditRequirements is the framework's fixed descriptive list
	AuditRequirements []string `json:"audit_requirements,omitempty"`

	// EstimatedCost is the deterministic remediation cost in USD
	EstimatedCost decimal.Decimal `json:"estimated_cost"`

	// ImplementationTimeline is the bucketed timeline estimate
	ImplementationTimeline string `json:"implementation_timeline"`
}
