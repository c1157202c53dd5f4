// Package catalog - Built-in stack category table
// Declaration order here drives missing-category ordering in reports.
package catalog

import "stack-advisor/core/types"

// RegisterCategories populates the catalog with the built-in stack
// categories.
func RegisterCategories(c *Catalog) {
	c.RegisterCategory(types.StackCategory{
		ID:          "code-hosting",
		Name:        "Code Hosting",
		Description: "Source control hosting and collaboration for your repositories.",
		Priority:    types.PriorityCritical,
	})
	c.RegisterCategory(types.StackCategory{
		ID:          "dependency-management",
		Name:        "Dependency Management",
		Description: "Tracking, updating, and auditing third-party dependencies.",
		Priority:    types.PriorityImportant,
	})
	c.RegisterCategory(types.StackCategory{
		ID:                    "ci-cd",
		Name:                  "CI/CD",
		Description:           "Automated build, test, and deployment pipelines.",
		Priority:              types.PriorityCritical,
		RequiredForCompliance: []string{"pci"},
	})
	c.RegisterCategory(types.StackCategory{
		ID:          "testing",
		Name:        "Testing",
		Description: "Automated testing frameworks and quality gates.",
		Priority:    types.PriorityImportant,
	})
	c.RegisterCategory(types.StackCategory{
		ID:                    "documentation",
		Name:                  "Documentation",
		Description:           "Internal and external documentation for your codebase and processes.",
		Priority:              types.PriorityImportant,
		RequiredForCompliance: []string{"soc2", "hipaa"},
	})
	c.RegisterCategory(types.StackCategory{
		ID:                    "monitoring",
		Name:                  "Monitoring",
		Description:           "Application performance monitoring, alerting, and observability.",
		Priority:              types.PriorityCritical,
		RequiredForCompliance: []string{"soc2", "hipaa", "pci"},
	})
	c.RegisterCategory(types.StackCategory{
		ID:                    "security",
		Name:                  "Security",
		Description:           "Vulnerability scanning, secret management, and access control.",
		Priority:              types.PriorityCritical,
		RequiredForCompliance: []string{"soc2", "hipaa", "pci"},
	})
	c.RegisterCategory(types.StackCategory{
		ID:          "communication",
		Name:        "Communication",
		Description: "Team messaging and incident coordination.",
		Priority:    types.PriorityNiceToHave,
	})
}
