// Package catalog - YAML dataset loader
// Allows the static dataset to be supplied as a file instead of the
// built-in tables.
package catalog

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"stack-advisor/core/types"
	"stack-advisor/internal/errors"
)

// Document is the on-disk shape of a catalog dataset
type Document struct {
	Categories []types.StackCategory            `yaml:"categories"`
	Tools      map[string][]types.CatalogItem   `yaml:"tools"`
	Platforms  []types.CloudPlatform            `yaml:"platforms"`
	Frameworks []types.ComplianceFramework      `yaml:"frameworks"`

	// ToolOrder pins the category order for the Tools map; entries in
	// Tools but not in ToolOrder are registered after, sorted by key
	ToolOrder []string `yaml:"tool_order,omitempty"`
}

// Load reads a catalog dataset from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeCatalog, err, "reading catalog file %s", path)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.TypeParsing, "invalid catalog document", err)
	}
	return FromDocument(doc), nil
}

// FromDocument builds a catalog from an in-memory document
func FromDocument(doc Document) *Catalog {
	c := NewCatalog()
	for _, cat := range doc.Categories {
		c.RegisterCategory(cat)
	}
	for _, categoryID := range toolCategoryOrder(doc) {
		for _, item := range doc.Tools[categoryID] {
			c.RegisterTool(categoryID, item)
		}
	}
	for _, p := range doc.Platforms {
		c.RegisterPlatform(p)
	}
	for _, f := range doc.Frameworks {
		c.RegisterFramework(f)
	}
	return c
}

// toolCategoryOrder returns Tools keys in a deterministic order:
// ToolOrder first, then remaining keys sorted.
func toolCategoryOrder(doc Document) []string {
	seen := make(map[string]bool, len(doc.Tools))
	order := make([]string, 0, len(doc.Tools))
	for _, id := range doc.ToolOrder {
		if _, ok := doc.Tools[id]; ok && !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}
	rest := make([]string, 0, len(doc.Tools))
	for id := range doc.Tools {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
