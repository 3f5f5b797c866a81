package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/compliport/content-engine/app/content"
	"github.com/compliport/content-engine/app/store"
)

// RefreshSnapshotTask re-aggregates every enabled source and swaps the
// result into the snapshot store.
type RefreshSnapshotTask struct {
	Task
	aggregator *content.Aggregator
	snapshot   *store.Store
}

func NewRefreshSnapshotTask(aggregator *content.Aggregator, snapshot *store.Store) *RefreshSnapshotTask {
	return &RefreshSnapshotTask{
		Task:       NewTask(TaskTypeRefreshSnapshot, "all"),
		aggregator: aggregator,
		snapshot:   snapshot,
	}
}

func (t *RefreshSnapshotTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	feed, catalog, results := t.aggregator.Run(ctx)

	// The run may have been torn down mid-fetch; a snapshot assembled from
	// cancelled fetches must not replace the current one.
	if ctx.Err() != nil {
		slog.Debug("Snapshot refresh abandoned", "id", t.GetID(), "reason", ctx.Err())
		return ctx.Err()
	}

	failedCount := 0
	for _, result := range results {
		if !result.OK() {
			failedCount++
		}
	}

	t.snapshot.SetSnapshot(feed, catalog, results, time.Now().UTC())

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"feed_items", len(feed),
		"catalog_items", len(catalog),
		"sources", len(results),
		"failed_sources", failedCount)

	return nil
}
