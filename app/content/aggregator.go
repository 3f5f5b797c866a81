package content

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/compliport/content-engine/app/source"
)

// FetchFunc fetches one source's raw records. Implementations come from
// app/source (JSON client or RSS adapter); the aggregator does not care
// about transport.
type FetchFunc func(ctx context.Context) ([]source.RawRecord, error)

// Source is one independently fetchable origin of content.
type Source struct {
	Name  string
	Type  SourceType
	Fetch FetchFunc
}

// Aggregator fans out to every source concurrently, normalizes whatever
// comes back and merges it into one date-ordered feed. A failing source
// contributes nothing; the run as a whole always succeeds.
type Aggregator struct {
	normalizer *Normalizer
	sources    []Source
}

func NewAggregator(normalizer *Normalizer, sources []Source) *Aggregator {
	return &Aggregator{
		normalizer: normalizer,
		sources:    sources,
	}
}

// Run fetches every source once and builds both views from that single
// pass: the chronological feed and, from resource sources, the catalog.
func (a *Aggregator) Run(ctx context.Context) ([]FeedItem, []ResourceItem, []SourceResult) {
	results := make([]SourceResult, len(a.sources))
	catalogs := make([][]ResourceItem, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results[i], catalogs[i] = a.fetchSource(ctx, src)
		}(i, src)
	}
	wg.Wait()

	var feed []FeedItem
	var catalog []ResourceItem
	for i, result := range results {
		feed = append(feed, result.Items...)
		catalog = append(catalog, catalogs[i]...)
	}

	SortByDateDesc(feed)

	return feed, catalog, results
}

func (a *Aggregator) fetchSource(ctx context.Context, src Source) (SourceResult, []ResourceItem) {
	result := SourceResult{Name: src.Name, Type: src.Type}

	records, err := src.Fetch(ctx)
	if err != nil {
		slog.Warn("Source fetch failed", "source", src.Name, "error", err)
		result.Err = err
		return result, nil
	}

	var catalog []ResourceItem
	for _, record := range records {
		if !record.Visible() {
			continue
		}

		if src.Type == SourceTypeResource {
			catalog = append(catalog, a.normalizer.NormalizeResource(record))

			// Holiday rows belong to the dedicated per-state calendar, not
			// the chronological stream.
			if record.Category == HolidaysCategory {
				continue
			}
		}

		result.Items = append(result.Items, a.normalizer.Normalize(record, src.Type))
	}

	return result, catalog
}

// SortByDateDesc orders items newest first. Items without a date sort as
// oldest. The sort is stable so same-timestamp items keep their source
// order between runs.
func SortByDateDesc(items []FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return feedSortKey(items[i].Date).After(feedSortKey(items[j].Date))
	})
}

func feedSortKey(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// Search narrows a feed by a single case-insensitive term matched against
// title, summary, category and source type. An empty query is a no-op.
func Search(items []FeedItem, query string) []FeedItem {
	return Filter(items, query, func(item FeedItem) []string {
		return []string{item.Title, item.Summary, item.Category, string(item.SourceType)}
	})
}
