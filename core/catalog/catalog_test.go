package catalog

import (
	"testing"

	"stack-advisor/core/types"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	categories := c.Categories()
	if len(categories) != 8 {
		t.Errorf("Expected 8 built-in categories, got %d", len(categories))
	}

	for _, cat := range categories {
		if cat.ID == "" || cat.Name == "" || cat.Description == "" {
			t.Errorf("Category %q is missing required fields", cat.ID)
		}
		switch cat.Priority {
		case types.PriorityCritical, types.PriorityImportant, types.PriorityNiceToHave:
		default:
			t.Errorf("Category %q has invalid priority %q", cat.ID, cat.Priority)
		}
	}
}

func TestDefaultCatalogToolsResolve(t *testing.T) {
	c := Default()

	for _, cat := range c.Categories() {
		tools, ok := c.Tools(cat.ID)
		if !ok {
			t.Errorf("Category %q has no tool catalog", cat.ID)
			continue
		}
		if len(tools) == 0 {
			t.Errorf("Category %q has an empty tool catalog", cat.ID)
		}
	}
}

func TestDefaultCatalogMappingsResolve(t *testing.T) {
	c := Default()

	for _, p := range c.Platforms() {
		for _, mapping := range p.Mappings {
			if !mapping.IsDirectEquivalent {
				continue
			}
			found := false
			for _, product := range p.Products {
				if product.ID == mapping.ProductID {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Platform %q: mapping (%s, %s) points at unknown product %q",
					p.ID, mapping.ServiceName, mapping.ServiceCategory, mapping.ProductID)
			}
		}
	}
}

func TestComplianceRequirementsAreConsistent(t *testing.T) {
	c := Default()

	categoryIDs := make(map[string]bool)
	categoryFrameworks := make(map[string]map[string]bool)
	for _, cat := range c.Categories() {
		categoryIDs[cat.ID] = true
		frameworks := make(map[string]bool)
		for _, f := range cat.RequiredForCompliance {
			frameworks[f] = true
		}
		categoryFrameworks[cat.ID] = frameworks
	}

	for _, framework := range c.Frameworks() {
		if framework.BaseCostUSD <= 0 {
			t.Errorf("Framework %q has no base cost", framework.ID)
		}
		for _, categoryID := range framework.RequiredCategories {
			if !categoryIDs[categoryID] {
				t.Errorf("Framework %q requires unknown category %q", framework.ID, categoryID)
			}
			if !categoryFrameworks[categoryID][framework.ID] {
				t.Errorf("Category %q should list %q in RequiredForCompliance", categoryID, framework.ID)
			}
		}
	}
}

func TestFrameworkLookup(t *testing.T) {
	c := Default()

	soc2, ok := c.Framework("soc2")
	if !ok {
		t.Fatal("soc2 should be a built-in framework")
	}
	if soc2.BaseCostUSD != 15000 {
		t.Errorf("Expected soc2 base cost 15000, got %d", soc2.BaseCostUSD)
	}

	if _, ok := c.Framework("nope"); ok {
		t.Error("Unknown framework lookup should report absence")
	}
}

func TestPlatformLookup(t *testing.T) {
	c := Default()

	aws, ok := c.Platform("aws")
	if !ok {
		t.Fatal("aws should be a built-in platform")
	}
	if len(aws.Products) == 0 {
		t.Error("aws should ship with products")
	}
	if len(aws.Mappings) == 0 {
		t.Error("aws should ship with service mappings")
	}

	if _, ok := c.Platform("ibm"); ok {
		t.Error("Unknown platform lookup should report absence")
	}
}
