// Package catalog - Authoritative technology stack catalog
// Holds the static datasets the recommendation engine is parameterized
// over: stack categories, per-category tool catalogs, cloud platforms
// with their products and service mappings, and compliance frameworks.
// All data is registered at construction and read-only afterwards.
package catalog

import (
	"stack-advisor/core/types"
)

// Catalog is the immutable dataset container injected into the engine.
// It is never ambient global state; callers construct one (usually via
// Default or Load) and pass it down.
type Catalog struct {
	categories   []types.StackCategory
	tools        map[string][]types.CatalogItem
	platforms    []types.CloudPlatform
	frameworks   map[string]types.ComplianceFramework
	frameworkIDs []string
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		tools:      make(map[string][]types.CatalogItem),
		frameworks: make(map[string]types.ComplianceFramework),
	}
}

// RegisterCategory appends a stack category. Declaration order is the
// order gap analysis reports missing categories in.
func (c *Catalog) RegisterCategory(category types.StackCategory) {
	c.categories = append(c.categories, category)
}

// RegisterTool adds a tool to a category's catalog. Registration order
// is the tie-break order for equal popularity scores.
func (c *Catalog) RegisterTool(categoryID string, item types.CatalogItem) {
	c.tools[categoryID] = append(c.tools[categoryID], item)
}

// RegisterPlatform appends a cloud platform with its embedded products
// and service mappings.
func (c *Catalog) RegisterPlatform(platform types.CloudPlatform) {
	c.platforms = append(c.platforms, platform)
}

// RegisterFramework adds a compliance framework
func (c *Catalog) RegisterFramework(framework types.ComplianceFramework) {
	if _, exists := c.frameworks[framework.ID]; !exists {
		c.frameworkIDs = append(c.frameworkIDs, framework.ID)
	}
	c.frameworks[framework.ID] = framework
}

// Categories returns all stack categories in declaration order
func (c *Catalog) Categories() []types.StackCategory {
	return c.categories
}

// Category returns a category by ID
func (c *Catalog) Category(id string) (types.StackCategory, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return types.StackCategory{}, false
}

// Tools returns the tool catalog for a category. The second return is
// false when the category has no dedicated catalog.
func (c *Catalog) Tools(categoryID string) ([]types.CatalogItem, bool) {
	items, ok := c.tools[categoryID]
	return items, ok
}

// Platforms returns all cloud platforms in declaration order
func (c *Catalog) Platforms() []types.CloudPlatform {
	return c.platforms
}

// Platform returns a platform by ID
func (c *Catalog) Platform(id string) (types.CloudPlatform, bool) {
	for _, p := range c.platforms {
		if p.ID == id {
			return p, true
		}
	}
	return types.CloudPlatform{}, false
}

// Framework returns a compliance framework by ID
func (c *Catalog) Framework(id string) (types.ComplianceFramework, bool) {
	f, ok := c.frameworks[id]
	return f, ok
}

// Frameworks returns all frameworks in registration order
func (c *Catalog) Frameworks() []types.ComplianceFramework {
	result := make([]types.ComplianceFramework, 0, len(c.frameworkIDs))
	for _, id := range c.frameworkIDs {
		result = append(result, c.frameworks[id])
	}
	return result
}

// Default builds the catalog with the built-in datasets
func Default() *Catalog {
	c := NewCatalog()
	RegisterCategories(c)
	RegisterTools(c)
	RegisterPlatforms(c)
	RegisterFrameworks(c)
	return c
}
