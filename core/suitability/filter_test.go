package suitability

import (
	"testing"

	"stack-advisor/core/types"
)

func TestAdvancedToolRejectedForBeginners(t *testing.T) {
	item := types.CatalogItem{ID: "k8s", Complexity: types.LevelAdvanced}

	if IsSuitable(item, types.LevelBeginner, 10) {
		t.Error("Advanced tool should be rejected for beginner expertise")
	}
	if !IsSuitable(item, types.LevelIntermediate, 10) {
		t.Error("Advanced tool should be accepted for intermediate expertise")
	}
	if !IsSuitable(item, types.LevelAdvanced, 10) {
		t.Error("Advanced tool should be accepted for advanced expertise")
	}
}

func TestEnterpriseToolRejectedForSmallTeams(t *testing.T) {
	item := types.CatalogItem{
		ID:      "bigcorp",
		BestFor: "Ideal for enterprise teams",
	}

	if IsSuitable(item, types.LevelIntermediate, 3) {
		t.Error("Enterprise tool should be rejected for a team of 3")
	}
	if !IsSuitable(item, types.LevelIntermediate, 5) {
		t.Error("Enterprise tool should be accepted at the threshold of 5")
	}

	// Case-insensitive substring match
	item.BestFor = "ENTERPRISE deployments"
	if IsSuitable(item, types.LevelIntermediate, 2) {
		t.Error("Enterprise match should be case-insensitive")
	}
}

func TestSmallTeamToolRejectedForLargeTeams(t *testing.T) {
	item := types.CatalogItem{
		ID:      "tiny",
		BestFor: "Perfect for small teams getting started",
	}

	if IsSuitable(item, types.LevelIntermediate, 51) {
		t.Error("Small-team tool should be rejected for a team of 51")
	}
	if !IsSuitable(item, types.LevelIntermediate, 50) {
		t.Error("Small-team tool should be accepted at the threshold of 50")
	}
}

func TestUnknownTeamSizePassesVacuously(t *testing.T) {
	enterprise := types.CatalogItem{ID: "e", BestFor: "enterprise teams"}
	small := types.CatalogItem{ID: "s", BestFor: "small teams"}

	for _, teamSize := range []int{0, -1, -100} {
		if !IsSuitable(enterprise, types.LevelIntermediate, teamSize) {
			t.Errorf("Team size %d should never reject on team-size rules", teamSize)
		}
		if !IsSuitable(small, types.LevelIntermediate, teamSize) {
			t.Errorf("Team size %d should never reject on team-size rules", teamSize)
		}
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	items := []types.CatalogItem{
		{ID: "a"},
		{ID: "b", Complexity: types.LevelAdvanced},
		{ID: "c"},
		{ID: "d", BestFor: "enterprise only"},
		{ID: "e"},
	}

	got := Filter(items, types.LevelBeginner, 3)

	want := []string{"a", "c", "e"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Position %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
}
