package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// RSSAdapter consumes an RSS/Atom notification feed (e.g., gazette press
// releases) and presents its entries as raw records, so a notification
// source plugs into the aggregator like any JSON source.
type RSSAdapter struct {
	gofeedParser *gofeed.Parser
	httpClient   *http.Client
	userAgent    string
}

func NewRSSAdapter(httpClient *http.Client, userAgent string) *RSSAdapter {
	return &RSSAdapter{
		gofeedParser: gofeed.NewParser(),
		httpClient:   httpClient,
		userAgent:    userAgent,
	}
}

func (a *RSSAdapter) FetchRecords(ctx context.Context, sourceConfig *Config) ([]RawRecord, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(sourceConfig.Settings.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", sourceConfig.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return a.Parse(data, sourceConfig.Settings.MaxItems)
}

func (a *RSSAdapter) Parse(data []byte, maxItems int) ([]RawRecord, error) {
	feed, err := a.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	records := make([]RawRecord, 0, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}

		record := RawRecord{
			ID:            int64(i + 1),
			Title:         item.Title,
			Description:   item.Description,
			PublishedDate: item.Published,
			URL:           item.Link,
		}

		if item.PublishedParsed != nil {
			record.PublishedDate = item.PublishedParsed.Format(time.RFC3339)
		}

		if len(item.Categories) > 0 {
			record.Category = item.Categories[0]
		}

		// A syndicated entry is by definition published.
		visible := true
		record.IsVisible = &visible

		records = append(records, record)
	}

	return records, nil
}
