// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Priority classifies how important a stack category is
type Priority string

const (
	PriorityCritical   Priority = "critical"
	PriorityImportant  Priority = "important"
	PriorityNiceToHave Priority = "nice-to-have"
)

// String returns the string representation of the priority
func (p Priority) String() string {
	return string(p)
}

// Level represents a skill or complexity level.
// It is used both for a tool's complexity and a team's expertise.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// MultiPlatform is the platform affinity sentinel for tools that are
// not tied to a single cloud platform.
const MultiPlatform = "multi-platform"

// StackCategory is a named dimension of a technology stack that the
// gap analysis checks for coverage.
type StackCategory struct {
	// ID is the stable category identifier (e.g., "ci-cd")
	ID string `json:"id" yaml:"id"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`

	// Description explains what the category covers
	Description string `json:"description" yaml:"description"`

	// Priority is the category's declared importance
	Priority Priority `json:"priority" yaml:"priority"`

	// RequiredForCompliance lists framework identifiers that mandate
	// this category
	RequiredForCompliance []string `json:"required_for_compliance,omitempty" yaml:"required_for_compliance,omitempty"`
}

// CatalogItem is a single tool/platform/product entry in the static
// reference dataset. One shape is used polymorphically for CI/CD tools,
// documentation platforms, cloud platforms and so on.
type CatalogItem struct {
	// ID is the stable item identifier
	ID string `json:"id" yaml:"id"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`

	// PlatformAffinity is a platform identifier or the MultiPlatform
	// sentinel
	PlatformAffinity string `json:"platform_affinity,omitempty" yaml:"platform_affinity,omitempty"`

	// Complexity is the skill level the item demands
	Complexity Level `json:"complexity,omitempty" yaml:"complexity,omitempty"`

	// Pricing is free-form pricing text
	Pricing string `json:"pricing,omitempty" yaml:"pricing,omitempty"`

	// Features lists the item's notable features, in catalog order
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`

	// BestFor describes the audience the item suits best
	BestFor string `json:"best_for,omitempty" yaml:"best_for,omitempty"`

	// ComplianceCertifications lists certifications the item holds
	ComplianceCertifications []string `json:"compliance_certifications,omitempty" yaml:"compliance_certifications,omitempty"`
}

// CloudProduct is a concrete product offered by a cloud platform.
// It extends CatalogItem with placement and ranking attributes.
type CloudProduct struct {
	CatalogItem `yaml:",inline"`

	// Category is the product's service category (e.g., "database")
	Category string `json:"category" yaml:"category"`

	// Subcategory refines the category; empty means "other"
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`

	// PopularityRank is an authorial rank, 1 = most popular.
	// Zero means unranked.
	PopularityRank int `json:"popularity_rank,omitempty" yaml:"popularity_rank,omitempty"`

	// SupportedArchitectures lists architecture identifiers the
	// product works with
	SupportedArchitectures []string `json:"supported_architectures,omitempty" yaml:"supported_architectures,omitempty"`
}

// DefaultSubcategory is used when a product declares no subcategory.
const DefaultSubcategory = "other"

// SubcategoryOrDefault returns the product's subcategory, or
// DefaultSubcategory when absent.
func (p CloudProduct) SubcategoryOrDefault() string {
	if p.Subcategory == "" {
		return DefaultSubcategory
	}
	return p.Subcategory
}

// UnrankedPopularity is the effective rank of products without an
// explicit popularity rank (least popular).
const UnrankedPopularity = 999

// EffectiveRank returns the popularity rank, defaulting unranked
// products to UnrankedPopularity.
func (p CloudProduct) EffectiveRank() int {
	if p.PopularityRank <= 0 {
		return UnrankedPopularity
	}
	return p.PopularityRank
}

// SupportsArchitecture reports whether the product supports the given
// architecture. An empty architecture matches everything.
func (p CloudProduct) SupportsArchitecture(arch string) bool {
	if arch == "" {
		return true
	}
	for _, a := range p.SupportedArchitectures {
		if a == arch {
			return true
		}
	}
	return false
}

// CloudPlatform is a cloud provider entry. Products and service
// mappings are embedded by value; they are never persisted separately.
type CloudPlatform struct {
	CatalogItem `yaml:",inline"`

	// TargetPersonas lists the user personas the platform targets
	TargetPersonas []string `json:"target_personas,omitempty" yaml:"target_personas,omitempty"`

	// SupportedArchitectures lists architecture identifiers the
	// platform supports
	SupportedArchitectures []string `json:"supported_architectures,omitempty" yaml:"supported_architectures,omitempty"`

	// Products are the platform's concrete products
	Products []CloudProduct `json:"products,omitempty" yaml:"products,omitempty"`

	// Mappings are the platform's service-to-product mappings
	Mappings []ServiceProductMapping `json:"mappings,omitempty" yaml:"mappings,omitempty"`
}

// SupportsArchitecture reports whether the platform supports the given
// architecture. An empty architecture matches everything.
func (p CloudPlatform) SupportsArchitecture(arch string) bool {
	if arch == "" {
		return true
	}
	for _, a := range p.SupportedArchitectures {
		if a == arch {
			return true
		}
	}
	return false
}

// ServiceProductMapping maps an abstract architecture service to a
// concrete product on one platform. (ServiceCategory, ServiceName) is
// the natural key within a platform; exactly one mapping is expected
// per key.
type ServiceProductMapping struct {
	// ServiceCategory is the abstract service category
	ServiceCategory string `json:"service_category" yaml:"service_category"`

	// ServiceName is the abstract service name
	ServiceName string `json:"service_name" yaml:"service_name"`

	// IsDirectEquivalent reports whether the platform offers a direct
	// product equivalent
	IsDirectEquivalent bool `json:"is_direct_equivalent" yaml:"is_direct_equivalent"`

	// ProductID points at the equivalent product when
	// IsDirectEquivalent is true
	ProductID string `json:"product_id,omitempty" yaml:"product_id,omitempty"`

	// Notes explains the absence of an equivalent when
	// IsDirectEquivalent is false
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ComplianceFramework describes a regulatory/audit standard and the
// stack categories it mandates.
type ComplianceFramework struct {
	// ID is the framework identifier (e.g., "soc2")
	ID string `json:"id" yaml:"id"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`

	// RequiredCategories lists category IDs the framework mandates
	RequiredCategories []string `json:"required_categories" yaml:"required_categories"`

	// AuditRequirements is a fixed descriptive list for the framework
	AuditRequirements []string `json:"audit_requirements,omitempty" yaml:"audit_requirements,omitempty"`

	// BaseCostUSD is the fixed remediation base cost
	BaseCostUSD int64 `json:"base_cost_usd" yaml:"base_cost_usd"`
}

// ProjectContext is the caller-supplied description of a project.
// It is constructed per invocation and never owned by the engine.
type ProjectContext struct {
	// ExistingStack maps category ID to the technologies already in
	// place for that category
	ExistingStack map[string][]string `json:"existing_stack,omitempty" yaml:"existing_stack,omitempty"`

	// TeamSize is the team headcount; zero or negative means
	// unspecified
	TeamSize int `json:"team_size,omitempty" yaml:"team_size,omitempty"`

	// Industry is the project's industry (e.g., "fintech")
	Industry string `json:"industry,omitempty" yaml:"industry,omitempty"`

	// Expertise is the team's technical expertise level
	Expertise Level `json:"expertise,omitempty" yaml:"expertise,omitempty"`

	// ComplianceRequirements lists required framework identifiers
	ComplianceRequirements []string `json:"compliance_requirements,omitempty" yaml:"compliance_requirements,omitempty"`

	// SelectedArchitecture is the chosen architecture identifier
	SelectedArchitecture string `json:"selected_architecture,omitempty" yaml:"selected_architecture,omitempty"`

	// SelectedCloudPlatform is the chosen platform identifier
	SelectedCloudPlatform string `json:"selected_cloud_platform,omitempty" yaml:"selected_cloud_platform,omitempty"`
}

// HasCategory reports whether the context's existing stack covers the
// given category with at least one technology.
func (c ProjectContext) HasCategory(categoryID string) bool {
	return len(c.ExistingStack[categoryID]) > 0
}

// HasTeamSize reports whether the team size was supplied.
func (c ProjectContext) HasTeamSize() bool {
	return c.TeamSize > 0
}
