package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/compliport/content-engine/app/source"
)

func visible() *bool {
	v := true
	return &v
}

func hidden() *bool {
	v := false
	return &v
}

func staticSource(name string, sourceType SourceType, records []source.RawRecord) Source {
	return Source{
		Name: name,
		Type: sourceType,
		Fetch: func(ctx context.Context) ([]source.RawRecord, error) {
			return records, nil
		},
	}
}

func failingSource(name string, sourceType SourceType, err error) Source {
	return Source{
		Name: name,
		Type: sourceType,
		Fetch: func(ctx context.Context) ([]source.RawRecord, error) {
			return nil, err
		},
	}
}

func TestAggregator_MergesAndOrders(t *testing.T) {
	aggregator := NewAggregator(NewNormalizer(""), []Source{
		staticSource("resources", SourceTypeResource, []source.RawRecord{
			{ID: 1, Title: "Old resource", ReleaseDate: "2024-01-01", IsVisible: visible()},
		}),
		staticSource("law", SourceTypeLabourLaw, []source.RawRecord{
			{ID: 2, Title: "New bulletin", EffectiveDate: "2024-03-01", IsVisible: visible()},
		}),
		staticSource("blog", SourceTypeBlog, []source.RawRecord{
			{ID: 3, Title: "Mid article", PublishedDate: "2024-02-01", IsVisible: visible()},
		}),
	})

	feed, _, results := aggregator.Run(context.Background())

	if len(feed) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(feed))
	}
	if feed[0].ID != "law-2" || feed[1].ID != "blog-3" || feed[2].ID != "res-1" {
		t.Errorf("Expected date-descending order, got %q, %q, %q", feed[0].ID, feed[1].ID, feed[2].ID)
	}

	for _, result := range results {
		if !result.OK() {
			t.Errorf("Expected all sources ok, got error from %s: %v", result.Name, result.Err)
		}
	}
}

func TestAggregator_PartialFailure(t *testing.T) {
	aggregator := NewAggregator(NewNormalizer(""), []Source{
		staticSource("resources", SourceTypeResource, []source.RawRecord{
			{ID: 1, Title: "Resource", ReleaseDate: "2024-01-01", IsVisible: visible()},
		}),
		failingSource("law", SourceTypeLabourLaw, errors.New("connection refused")),
		staticSource("blog", SourceTypeBlog, []source.RawRecord{
			{ID: 3, Title: "Article", PublishedDate: "2024-02-01", IsVisible: visible()},
		}),
	})

	feed, _, results := aggregator.Run(context.Background())

	if len(feed) != 2 {
		t.Fatalf("Expected 2 items from the surviving sources, got %d", len(feed))
	}

	if results[1].OK() {
		t.Error("Expected the failing source to report its error")
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("Expected surviving sources to report no error")
	}
}

func TestAggregator_VisibilityFailClosed(t *testing.T) {
	aggregator := NewAggregator(NewNormalizer(""), []Source{
		staticSource("resources", SourceTypeResource, []source.RawRecord{
			{ID: 1, Title: "Visible", ReleaseDate: "2024-01-01", IsVisible: visible()},
			{ID: 2, Title: "Hidden", ReleaseDate: "2024-01-02", IsVisible: hidden()},
			{ID: 3, Title: "Flag missing", ReleaseDate: "2024-01-03"},
		}),
	})

	feed, _, _ := aggregator.Run(context.Background())

	if len(feed) != 1 {
		t.Fatalf("Expected only the visible item, got %d items", len(feed))
	}
	if feed[0].ID != "res-1" {
		t.Errorf("Expected 'res-1', got %q", feed[0].ID)
	}
}

func TestAggregator_HolidaysExcludedFromFeed(t *testing.T) {
	aggregator := NewAggregator(NewNormalizer(""), []Source{
		staticSource("resources", SourceTypeResource, []source.RawRecord{
			{ID: 1, Title: "Diwali", Category: HolidaysCategory, EffectiveDate: "2024-11-01", IsVisible: visible()},
			{ID: 2, Title: "Wage revision", Category: "Wages", ReleaseDate: "2024-01-01", IsVisible: visible()},
		}),
	})

	feed, catalog, _ := aggregator.Run(context.Background())

	if len(feed) != 1 || feed[0].ID != "res-2" {
		t.Errorf("Expected holidays to be excluded from the feed, got %+v", feed)
	}

	// The catalog keeps holiday rows; only the chronological stream drops them.
	if len(catalog) != 2 {
		t.Errorf("Expected 2 catalog items, got %d", len(catalog))
	}
}

// The three-source scenario: one item excluded by category, one by
// visibility, one survives.
func TestAggregator_MixedExclusions(t *testing.T) {
	aggregator := NewAggregator(NewNormalizer(""), []Source{
		staticSource("resources", SourceTypeResource, []source.RawRecord{
			{ID: 1, ReleaseDate: "2024-01-05", Category: HolidaysCategory, IsVisible: visible()},
		}),
		staticSource("law", SourceTypeLabourLaw, []source.RawRecord{
			{ID: 2, ReleaseDate: "2024-02-01", IsVisible: visible()},
		}),
		staticSource("blog", SourceTypeBlog, []source.RawRecord{
			{ID: 3, PublishedDate: "2024-03-01", IsVisible: hidden()},
		}),
	})

	feed, _, _ := aggregator.Run(context.Background())

	if len(feed) != 1 {
		t.Fatalf("Expected exactly 1 item, got %d", len(feed))
	}
	if feed[0].ID != "law-2" {
		t.Errorf("Expected 'law-2', got %q", feed[0].ID)
	}
}

func TestAggregator_NilDatesSortOldest(t *testing.T) {
	aggregator := NewAggregator(NewNormalizer(""), []Source{
		staticSource("law", SourceTypeLabourLaw, []source.RawRecord{
			{ID: 1, Title: "No date", IsVisible: visible()},
			{ID: 2, Title: "Dated", EffectiveDate: "2024-01-01", IsVisible: visible()},
		}),
	})

	feed, _, _ := aggregator.Run(context.Background())

	if len(feed) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(feed))
	}
	if feed[0].ID != "law-2" {
		t.Errorf("Expected the dated item first, got %q", feed[0].ID)
	}
	if feed[1].ID != "law-1" {
		t.Errorf("Expected the undated item last, got %q", feed[1].ID)
	}
}

func TestSortByDateDesc_StableOnTies(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	items := []FeedItem{
		{ID: "a", Date: &date},
		{ID: "b", Date: &date},
		{ID: "c", Date: &date},
	}

	SortByDateDesc(items)
	SortByDateDesc(items)

	if items[0].ID != "a" || items[1].ID != "b" || items[2].ID != "c" {
		t.Errorf("Expected stable order on equal dates, got %q, %q, %q", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestAggregator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := Source{
		Name: "slow",
		Type: SourceTypeResource,
		Fetch: func(ctx context.Context) ([]source.RawRecord, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	aggregator := NewAggregator(NewNormalizer(""), []Source{blocked})

	feed, _, results := aggregator.Run(ctx)

	if len(feed) != 0 {
		t.Errorf("Expected no items after cancellation, got %d", len(feed))
	}
	if results[0].OK() {
		t.Error("Expected the cancelled source to report its error")
	}
}

func TestSearch_MatchesAcrossFields(t *testing.T) {
	items := []FeedItem{
		{ID: "1", Title: "PF contribution rates"},
		{ID: "2", Summary: "Changes to provident fund rules"},
		{ID: "3", Category: "ESIC"},
		{ID: "4", Title: "Unrelated"},
	}

	result := Search(items, "pf")

	if len(result) != 1 || result[0].ID != "1" {
		t.Errorf("Expected only the title match for 'pf', got %+v", result)
	}

	result = Search(items, "esic")
	if len(result) != 1 || result[0].ID != "3" {
		t.Errorf("Expected the category match for 'esic', got %+v", result)
	}
}

func TestSearch_EmptyQueryReturnsInput(t *testing.T) {
	items := []FeedItem{{ID: "1"}, {ID: "2"}}

	result := Search(items, "")

	if len(result) != 2 {
		t.Errorf("Expected unchanged input for empty query, got %d items", len(result))
	}
}
