package content

import "testing"

func TestCategories_OrderAndIcons(t *testing.T) {
	categories := Categories()

	if len(categories) != 11 {
		t.Fatalf("Expected 11 categories, got %d", len(categories))
	}

	if categories[0].ID != "Acts" {
		t.Errorf("Expected 'Acts' first, got %q", categories[0].ID)
	}
	if categories[len(categories)-1].ID != "ESIC" {
		t.Errorf("Expected 'ESIC' last, got %q", categories[len(categories)-1].ID)
	}

	for _, category := range categories {
		if category.Icon == "" {
			t.Errorf("Category %q has no icon", category.ID)
		}
	}
}

func TestKnownCategory(t *testing.T) {
	if !KnownCategory("Provident Fund") {
		t.Error("Expected 'Provident Fund' to be known")
	}
	if KnownCategory("Astrology") {
		t.Error("Expected 'Astrology' to be unknown")
	}
}

func TestPartition_EqualityFilter(t *testing.T) {
	catalog := []ResourceItem{
		{FeedItem: FeedItem{ID: "res-1", Category: "Acts"}},
		{FeedItem: FeedItem{ID: "res-2", Category: "Forms"}},
		{FeedItem: FeedItem{ID: "res-3", Category: "Acts"}},
	}

	acts := Partition(catalog, "Acts")

	if len(acts) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(acts))
	}
	if acts[0].ID != "res-1" || acts[1].ID != "res-3" {
		t.Errorf("Expected input order preserved, got %q, %q", acts[0].ID, acts[1].ID)
	}
}

func TestPartition_UnknownCategoryYieldsEmpty(t *testing.T) {
	catalog := []ResourceItem{
		{FeedItem: FeedItem{ID: "res-1", Category: "Acts"}},
	}

	if result := Partition(catalog, "Nonexistent"); len(result) != 0 {
		t.Errorf("Expected empty result, got %d items", len(result))
	}
}

func TestIsHolidayCategory(t *testing.T) {
	if !IsHolidayCategory("Holidays List") {
		t.Error("Expected 'Holidays List' to dispatch to the holiday view")
	}
	if IsHolidayCategory("Acts") {
		t.Error("Expected 'Acts' to use the generic list view")
	}
}
