// Package catalog - Built-in compliance framework tables
package catalog

import "stack-advisor/core/types"

// RegisterFrameworks populates the catalog with the built-in
// compliance frameworks. Base costs and required categories are fixed
// policy, not tunable parameters.
func RegisterFrameworks(c *Catalog) {
	c.RegisterFramework(types.ComplianceFramework{
		ID:                 "soc2",
		Name:               "SOC 2",
		RequiredCategories: []string{"security", "monitoring", "documentation"},
		AuditRequirements: []string{
			"Annual Type II audit by an accredited CPA firm",
			"Documented access control and change management policies",
			"Evidence of continuous monitoring and alerting",
		},
		BaseCostUSD: 15000,
	})
	c.RegisterFramework(types.ComplianceFramework{
		ID:                 "hipaa",
		Name:               "HIPAA",
		RequiredCategories: []string{"security", "monitoring", "documentation"},
		AuditRequirements: []string{
			"Signed business associate agreements with all vendors",
			"PHI access logging and periodic access reviews",
			"Documented incident response and breach notification procedures",
		},
		BaseCostUSD: 20000,
	})
	c.RegisterFramework(types.ComplianceFramework{
		ID:                 "pci",
		Name:               "PCI DSS",
		RequiredCategories: []string{"security", "monitoring", "ci-cd"},
		AuditRequirements: []string{
			"Quarterly vulnerability scans by an approved scanning vendor",
			"Annual penetration testing of the cardholder data environment",
			"Segmentation of cardholder data from the rest of the network",
		},
		BaseCostUSD: 25000,
	})
}
