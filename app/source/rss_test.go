package source

import (
	"testing"
)

const notificationFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Gazette Notifications</title>
    <link>https://gazette.example.gov</link>
    <description>Official notices</description>
    <item>
      <title>Professional Tax slab revision</title>
      <link>https://gazette.example.gov/notice/101</link>
      <description>Revised slabs for the new financial year</description>
      <pubDate>Mon, 03 Jun 2024 10:00:00 GMT</pubDate>
      <category>Professional Tax</category>
    </item>
    <item>
      <title>Shops and Establishments amendment</title>
      <link>https://gazette.example.gov/notice/102</link>
      <description>Amendment notification</description>
      <pubDate>Tue, 04 Jun 2024 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestRSSAdapter_Parse(t *testing.T) {
	adapter := NewRSSAdapter(nil, "Test Agent/1.0")

	records, err := adapter.Parse([]byte(notificationFeed), 0)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "Professional Tax slab revision" {
		t.Errorf("Unexpected title: %q", first.Title)
	}
	if first.URL != "https://gazette.example.gov/notice/101" {
		t.Errorf("Unexpected URL: %q", first.URL)
	}
	if first.Category != "Professional Tax" {
		t.Errorf("Unexpected category: %q", first.Category)
	}
	if first.PublishedDate == "" {
		t.Error("Expected a published date")
	}
	if !first.Visible() {
		t.Error("Expected syndicated entries to be visible")
	}
}

func TestRSSAdapter_MaxItems(t *testing.T) {
	adapter := NewRSSAdapter(nil, "Test Agent/1.0")

	records, err := adapter.Parse([]byte(notificationFeed), 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Expected truncation to 1 record, got %d", len(records))
	}
}

func TestRSSAdapter_MalformedFeed(t *testing.T) {
	adapter := NewRSSAdapter(nil, "Test Agent/1.0")

	if _, err := adapter.Parse([]byte("not a feed"), 0); err == nil {
		t.Error("Expected an error for malformed feed data")
	}
}
