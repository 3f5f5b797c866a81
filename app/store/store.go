// Package store holds the latest aggregation snapshot in memory. Nothing
// is persisted: every snapshot is recomputed from the sources, so the
// store is just a RWMutex handoff point between the background refresh
// and the HTTP handlers.
package store

import (
	"sync"
	"time"

	"github.com/compliport/content-engine/app/content"
)

type Store struct {
	mu        sync.RWMutex
	feed      []content.FeedItem
	catalog   []content.ResourceItem
	results   []content.SourceResult
	updatedAt time.Time
	ready     bool
}

func NewStore() *Store {
	return &Store{}
}

// SetSnapshot replaces the whole snapshot atomically so readers never see
// a feed from one refresh paired with a catalog from another.
func (s *Store) SetSnapshot(feed []content.FeedItem, catalog []content.ResourceItem,
	results []content.SourceResult, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feed = feed
	s.catalog = catalog
	s.results = results
	s.updatedAt = at
	s.ready = true
}

// UpdateSummary backfills one item's summary in place. Returns false when
// the item is no longer in the snapshot (a refresh may have replaced it).
func (s *Store) UpdateSummary(id, summary string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed[i].Summary = summary
			return true
		}
	}
	return false
}

func (s *Store) Feed() []content.FeedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	feed := make([]content.FeedItem, len(s.feed))
	copy(feed, s.feed)
	return feed
}

func (s *Store) Catalog() []content.ResourceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	catalog := make([]content.ResourceItem, len(s.catalog))
	copy(catalog, s.catalog)
	return catalog
}

func (s *Store) Results() []content.SourceResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]content.SourceResult, len(s.results))
	copy(results, s.results)
	return results
}

func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Ready reports whether at least one refresh has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
