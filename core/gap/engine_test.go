package gap

import (
	"reflect"
	"strings"
	"testing"

	"stack-advisor/core/catalog"
	"stack-advisor/core/types"
)

// testCatalog builds a synthetic eight-category catalog exercising the
// engine without the built-in datasets.
func testCatalog() *catalog.Catalog {
	c := catalog.NewCatalog()

	categories := []types.StackCategory{
		{ID: "code-hosting", Name: "Code Hosting", Description: "Source control hosting.", Priority: types.PriorityCritical},
		{ID: "dependency-management", Name: "Dependency Management", Description: "Dependency tracking.", Priority: types.PriorityImportant},
		{ID: "ci-cd", Name: "CI/CD", Description: "Automated pipelines.", Priority: types.PriorityCritical},
		{ID: "testing", Name: "Testing", Description: "Automated testing.", Priority: types.PriorityImportant},
		{ID: "documentation", Name: "Documentation", Description: "Project documentation.", Priority: types.PriorityImportant, RequiredForCompliance: []string{"soc2"}},
		{ID: "monitoring", Name: "Monitoring", Description: "Observability.", Priority: types.PriorityCritical, RequiredForCompliance: []string{"soc2", "hipaa"}},
		{ID: "security", Name: "Security", Description: "Security tooling.", Priority: types.PriorityCritical, RequiredForCompliance: []string{"soc2", "hipaa", "pci"}},
		{ID: "communication", Name: "Communication", Description: "Team messaging.", Priority: types.PriorityNiceToHave},
	}
	for _, cat := range categories {
		c.RegisterCategory(cat)
	}

	c.RegisterTool("ci-cd", types.CatalogItem{
		ID: "free-ci", Name: "Free CI", Pricing: "Free tier", PlatformAffinity: types.MultiPlatform,
	})
	c.RegisterTool("ci-cd", types.CatalogItem{
		ID: "paid-ci", Name: "Paid CI", Pricing: "$50/month",
	})
	c.RegisterTool("ci-cd", types.CatalogItem{
		ID: "expert-ci", Name: "Expert CI", Pricing: "Free and open source", Complexity: types.LevelAdvanced,
	})
	c.RegisterTool("monitoring", types.CatalogItem{
		ID: "enterprise-mon", Name: "Enterprise Monitor", Pricing: "$1000/month", BestFor: "Ideal for enterprise teams",
	})
	c.RegisterTool("monitoring", types.CatalogItem{
		ID: "simple-mon", Name: "Simple Monitor", Pricing: "Free tier",
	})
	// Equal-score tools for stability checks
	c.RegisterTool("testing", types.CatalogItem{ID: "test-a", Name: "Test A", Pricing: "$10"})
	c.RegisterTool("testing", types.CatalogItem{ID: "test-b", Name: "Test B", Pricing: "$20"})
	c.RegisterTool("testing", types.CatalogItem{ID: "test-c", Name: "Test C", Pricing: "$30"})
	c.RegisterTool("testing", types.CatalogItem{ID: "test-d", Name: "Test D", Pricing: "$40"})

	c.RegisterFramework(types.ComplianceFramework{
		ID: "soc2", Name: "SOC 2",
		RequiredCategories: []string{"security", "monitoring", "documentation"},
		BaseCostUSD:        15000,
	})

	return c
}

func TestEmptyStackScoresZero(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{})

	if report.CompletenessScore != 0 {
		t.Errorf("Expected completeness 0, got %d", report.CompletenessScore)
	}
	if len(report.MissingCategories) != 8 {
		t.Errorf("Expected 8 missing categories, got %d", len(report.MissingCategories))
	}
}

func TestTwoFilledOfEightScores25(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{
		ExistingStack: map[string][]string{
			"code-hosting":          {"GitHub"},
			"dependency-management": {"Renovate"},
		},
	})

	if report.CompletenessScore != 25 {
		t.Errorf("Expected completeness 25, got %d", report.CompletenessScore)
	}
	if len(report.MissingCategories) != 6 {
		t.Errorf("Expected 6 missing categories, got %d", len(report.MissingCategories))
	}
}

func TestCompletenessBounds(t *testing.T) {
	engine := New(testCatalog())

	full := map[string][]string{
		"code-hosting": {"x"}, "dependency-management": {"x"}, "ci-cd": {"x"},
		"testing": {"x"}, "documentation": {"x"}, "monitoring": {"x"},
		"security": {"x"}, "communication": {"x"},
	}
	report := engine.Analyze(types.ProjectContext{ExistingStack: full})
	if report.CompletenessScore != 100 {
		t.Errorf("Expected completeness 100, got %d", report.CompletenessScore)
	}

	// An empty category entry counts as missing
	full["ci-cd"] = nil
	report = engine.Analyze(types.ProjectContext{ExistingStack: full})
	if report.CompletenessScore != 88 {
		t.Errorf("Expected round(700/8)=88, got %d", report.CompletenessScore)
	}
}

func TestRecommendationListBounds(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{})

	if len(report.RecommendedAdditions) != len(report.MissingCategories) {
		t.Fatalf("Expected one recommendation per missing category")
	}
	for _, rec := range report.RecommendedAdditions {
		if len(rec.Tools) < 1 || len(rec.Tools) > MaxToolsPerCategory {
			t.Errorf("Category %s: tool list length %d outside [1, %d]",
				rec.Category, len(rec.Tools), MaxToolsPerCategory)
		}
		for _, tool := range rec.Tools {
			if tool.Score < 0 || tool.Score > 10 {
				t.Errorf("Tool %s: score %d outside [0, 10]", tool.Item.Name, tool.Score)
			}
		}
	}
}

func TestRecommendationsSortedByScore(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{Expertise: types.LevelAdvanced})

	for _, rec := range report.RecommendedAdditions {
		for i := 1; i < len(rec.Tools); i++ {
			if rec.Tools[i-1].Score < rec.Tools[i].Score {
				t.Errorf("Category %s: tools not sorted by descending score", rec.Category)
			}
		}
	}
}

func TestEqualScoresKeepCatalogOrder(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{})

	for _, rec := range report.RecommendedAdditions {
		if rec.CategoryID != "testing" {
			continue
		}
		// All four testing tools score the base 5; catalog order wins
		want := []string{"test-a", "test-b", "test-c"}
		if len(rec.Tools) != len(want) {
			t.Fatalf("Expected %d tools, got %d", len(want), len(rec.Tools))
		}
		for i, id := range want {
			if rec.Tools[i].Item.ID != id {
				t.Errorf("Position %d: expected %q, got %q", i, id, rec.Tools[i].Item.ID)
			}
		}
		return
	}
	t.Fatal("No recommendation produced for the testing category")
}

func TestEnterpriseToolExcludedForSmallTeam(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{TeamSize: 3})

	for _, rec := range report.RecommendedAdditions {
		for _, tool := range rec.Tools {
			if tool.Item.ID == "enterprise-mon" {
				t.Error("Enterprise tool should be excluded for a team of 3")
			}
		}
	}
}

func TestAdvancedToolExcludedForBeginners(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{Expertise: types.LevelBeginner})

	for _, rec := range report.RecommendedAdditions {
		for _, tool := range rec.Tools {
			if tool.Item.ID == "expert-ci" {
				t.Error("Advanced tool should be excluded for beginner expertise")
			}
		}
	}
}

func TestPlaceholderForCategoriesWithoutCatalog(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{})

	for _, rec := range report.RecommendedAdditions {
		if rec.CategoryID != "communication" {
			continue
		}
		if len(rec.Tools) != 1 {
			t.Fatalf("Expected exactly one placeholder, got %d tools", len(rec.Tools))
		}
		if rec.Tools[0].Item.Name != "Generic Communication Tool" {
			t.Errorf("Unexpected placeholder name %q", rec.Tools[0].Item.Name)
		}
		if rec.Tools[0].Score != 5 {
			t.Errorf("Placeholder should score the neutral 5, got %d", rec.Tools[0].Score)
		}
		return
	}
	t.Fatal("No recommendation produced for the communication category")
}

func TestComplianceUpgradesPriority(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{
		ComplianceRequirements: []string{"soc2"},
	})

	for _, rec := range report.RecommendedAdditions {
		switch rec.CategoryID {
		case "documentation":
			// Important by declaration, upgraded by soc2
			if rec.Priority != types.PriorityCritical {
				t.Errorf("Documentation should be upgraded to critical, got %s", rec.Priority)
			}
		case "testing":
			if rec.Priority != types.PriorityImportant {
				t.Errorf("Testing should keep its declared priority, got %s", rec.Priority)
			}
		}
	}
}

func TestPriorityActionsKeepCategoryOrder(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{})

	if len(report.PriorityActions) != MaxPriorityActions {
		t.Fatalf("Expected %d priority actions, got %d", MaxPriorityActions, len(report.PriorityActions))
	}
	// Critical categories in table order: code-hosting, ci-cd, monitoring
	want := []string{"code-hosting", "ci-cd", "monitoring"}
	for i, id := range want {
		if report.PriorityActions[i].CategoryID != id {
			t.Errorf("Action %d: expected %q, got %q", i, id, report.PriorityActions[i].CategoryID)
		}
	}
}

func TestRationaleComposition(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{
		TeamSize: 3,
		Industry: "fintech",
	})

	for _, rec := range report.RecommendedAdditions {
		if rec.CategoryID != "security" {
			continue
		}
		if !strings.Contains(rec.Rationale, "Security tooling.") {
			t.Error("Rationale should start with the category description")
		}
		if !strings.Contains(rec.Rationale, "Small teams") {
			t.Error("Rationale should include the small-team clause")
		}
		if !strings.Contains(rec.Rationale, "fintech") {
			t.Error("Rationale should mention the regulated industry")
		}
		if !strings.Contains(rec.Rationale, "soc2, hipaa, pci") {
			t.Error("Rationale should list the compliance frameworks")
		}
		return
	}
	t.Fatal("No recommendation produced for the security category")
}

func TestCostEstimateFromTopTool(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{})

	for _, rec := range report.RecommendedAdditions {
		if rec.CategoryID != "ci-cd" {
			continue
		}
		// free-ci scores 5+2+1=8 and leads the list
		if rec.Tools[0].Item.ID != "free-ci" {
			t.Fatalf("Expected free-ci on top, got %q", rec.Tools[0].Item.ID)
		}
		if rec.CostEstimate.Pricing != "Free tier" {
			t.Errorf("Cost estimate should use the top tool's pricing, got %q", rec.CostEstimate.Pricing)
		}
		if rec.CostEstimate.TrainingTime != "1-2 weeks" {
			t.Errorf("Unexpected training time %q", rec.CostEstimate.TrainingTime)
		}
		if rec.CostEstimate.MaintenanceEffort != "medium" {
			t.Errorf("Unexpected maintenance effort %q", rec.CostEstimate.MaintenanceEffort)
		}
		return
	}
	t.Fatal("No recommendation produced for the ci-cd category")
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	engine := New(testCatalog())
	ctx := types.ProjectContext{
		ExistingStack:          map[string][]string{"code-hosting": {"GitHub"}},
		TeamSize:               12,
		Industry:               "healthcare",
		Expertise:              types.LevelIntermediate,
		ComplianceRequirements: []string{"soc2"},
	}

	first := engine.Analyze(ctx)
	second := engine.Analyze(ctx)

	if !reflect.DeepEqual(first, second) {
		t.Error("Two analyses of the same context should be identical")
	}
}

func TestAdvisoryNotes(t *testing.T) {
	engine := New(testCatalog())

	report := engine.Analyze(types.ProjectContext{TeamSize: 3, Industry: "healthcare"})
	if report.TeamSizeNote == "" {
		t.Error("A known team size should produce a team-size note")
	}
	if report.IndustryNote == "" {
		t.Error("A regulated industry should produce an industry note")
	}

	report = engine.Analyze(types.ProjectContext{})
	if report.TeamSizeNote != "" {
		t.Error("An unknown team size should not produce a team-size note")
	}
	if report.IndustryNote != "" {
		t.Error("An unregulated industry should not produce an industry note")
	}
}
