package content

import (
	"time"

	"github.com/compliport/content-engine/app/source"
)

// SourceType identifies which kind of backend source an item came from.
type SourceType string

const (
	SourceTypeResource     SourceType = "resource"
	SourceTypeLabourLaw    SourceType = "labour_law"
	SourceTypeBlog         SourceType = "blog"
	SourceTypeNotification SourceType = "notification"
)

// idPrefix keeps item IDs globally unique across sources that reuse
// numeric IDs.
func (s SourceType) idPrefix() string {
	switch s {
	case SourceTypeResource:
		return "res"
	case SourceTypeLabourLaw:
		return "law"
	case SourceTypeBlog:
		return "blog"
	case SourceTypeNotification:
		return "ntf"
	default:
		return "item"
	}
}

// SourceTypeFromString maps a source config type to a SourceType.
func SourceTypeFromString(t string) (SourceType, bool) {
	switch t {
	case source.TypeResource:
		return SourceTypeResource, true
	case source.TypeLabourLaw:
		return SourceTypeLabourLaw, true
	case source.TypeBlog:
		return SourceTypeBlog, true
	case source.TypeNotification:
		return SourceTypeNotification, true
	default:
		return "", false
	}
}

// IconTag is a symbolic rendering hint. The engine only picks the tag;
// resolving it to a visual asset is the presentation layer's concern.
type IconTag string

const (
	IconDocument      IconTag = "document"
	IconProvidentFund IconTag = "provident-fund"
	IconHealth        IconTag = "health"
	IconCurrency      IconTag = "currency"
	IconWallet        IconTag = "wallet"
	IconClock         IconTag = "clock"
	IconScale         IconTag = "scale"
	IconArticle       IconTag = "article"
	IconBell          IconTag = "bell"
	IconCalendar      IconTag = "calendar"
	IconForm          IconTag = "form"
	IconGazette       IconTag = "gazette"
)

// FeedItem is the canonical shape for the chronological "latest updates"
// stream.
type FeedItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Date        *time.Time `json:"date"`
	DisplayDate string     `json:"display_date"`
	Category    string     `json:"category"`
	SourceType  SourceType `json:"source_type"`
	Link        string     `json:"link"`
	Icon        IconTag    `json:"icon"`
}

// ResourceItem is the canonical shape for the category-partitioned catalog.
// It carries everything a FeedItem does plus the catalog-only fields.
type ResourceItem struct {
	FeedItem
	ReleaseDate   *time.Time `json:"release_date"`
	EffectiveDate *time.Time `json:"effective_date"`
	State         string     `json:"state"`
	DownloadURL   string     `json:"download_url"`
	Speaker       *Speaker   `json:"speaker,omitempty"`
}

type Speaker struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Image        string `json:"image"`
}

// Category is a named partition of the catalog.
type Category struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Icon  IconTag `json:"icon"`
}

// StateHoliday is one holiday entry inside a state group. Date is already
// formatted for display; the raw date is an internal sort key only.
type StateHoliday struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Day  string `json:"day"`
}

// StateHolidayGroup is the per-state, date-sorted holiday calendar shape.
type StateHolidayGroup struct {
	State    string         `json:"state"`
	Holidays []StateHoliday `json:"holidays"`
}

// SourceResult reports one source's contribution to an aggregation run.
// A failed source carries its error here instead of aborting the run.
type SourceResult struct {
	Name  string
	Type  SourceType
	Items []FeedItem
	Err   error
}

func (r SourceResult) OK() bool {
	return r.Err == nil
}
