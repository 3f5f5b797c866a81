package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/compliport/content-engine/app/content"
	"github.com/compliport/content-engine/app/source"
	"github.com/compliport/content-engine/app/store"
)

const summaryMaxLen = 280

// ExtractContentTask backfills empty summaries for one source's items by
// fetching their linked pages and running readability over them.
type ExtractContentTask struct {
	Task
	SourceConfig *source.Config
	httpClient   *http.Client
	extractor    *content.Extractor
	snapshot     *store.Store
	userAgent    string
}

func NewExtractContentTask(sourceName string, sourceConfig *source.Config, httpClient *http.Client, extractor *content.Extractor, snapshot *store.Store, userAgent string) *ExtractContentTask {
	return &ExtractContentTask{
		Task:         NewTask(TaskTypeExtractContent, sourceName),
		SourceConfig: sourceConfig,
		httpClient:   httpClient,
		extractor:    extractor,
		snapshot:     snapshot,
		userAgent:    userAgent,
	}
}

func (t *ExtractContentTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !t.SourceConfig.Settings.ExtractContent {
		slog.Debug("Content extraction disabled for source", "source", t.SourceName)
		return nil
	}

	sourceType, ok := content.SourceTypeFromString(t.SourceConfig.Type)
	if !ok {
		return fmt.Errorf("unknown source type: %s", t.SourceConfig.Type)
	}

	items := t.itemsForExtraction(sourceType)
	if len(items) == 0 {
		slog.Debug("No items need content extraction", "source", t.SourceName)
		return nil
	}

	successCount := 0
	errorCount := 0

	for _, item := range items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		summary, err := t.extractSummary(ctx, item.Link)
		if err != nil {
			slog.Error("Failed to extract content for item", "item_id", item.ID, "url", item.Link, "error", err)
			errorCount++
			continue
		}

		if t.snapshot.UpdateSummary(item.ID, summary) {
			successCount++
		}
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"success", successCount,
		"errors", errorCount)

	return nil
}

// itemsForExtraction picks the source's items that have no summary and an
// absolute link to fetch. Relative portal links cannot be fetched from
// here and are skipped.
func (t *ExtractContentTask) itemsForExtraction(sourceType content.SourceType) []content.FeedItem {
	var items []content.FeedItem
	for _, item := range t.snapshot.Feed() {
		if item.SourceType != sourceType {
			continue
		}
		if item.Summary != "" {
			continue
		}
		if !strings.HasPrefix(item.Link, "http://") && !strings.HasPrefix(item.Link, "https://") {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (t *ExtractContentTask) extractSummary(ctx context.Context, url string) (string, error) {
	data, err := t.fetchPage(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}

	text, err := t.extractor.Run(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	return t.extractor.Summarize(text, summaryMaxLen), nil
}

func (t *ExtractContentTask) fetchPage(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(t.SourceConfig.Settings.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return nil, fmt.Errorf("content type is not HTML: %s", contentType)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
