package content

import (
	"cmp"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/compliport/content-engine/app/source"
)

// Normalizer maps raw source records into the canonical item shapes.
type Normalizer struct {
	portalBaseUrl string
}

func NewNormalizer(portalBaseUrl string) *Normalizer {
	return &Normalizer{
		portalBaseUrl: strings.TrimSuffix(portalBaseUrl, "/"),
	}
}

// Date candidate fields per source type, tried in order.
func dateCandidates(record source.RawRecord, sourceType SourceType) []string {
	switch sourceType {
	case SourceTypeResource:
		return []string{record.ReleaseDate, record.CreatedAt}
	case SourceTypeLabourLaw:
		return []string{record.EffectiveDate, record.ReleaseDate, record.CreatedAt}
	default:
		return []string{record.PublishedDate, record.CreatedAt}
	}
}

func defaultCategory(sourceType SourceType) string {
	switch sourceType {
	case SourceTypeBlog:
		return "Article"
	case SourceTypeNotification:
		return "Notification"
	default:
		return "Compliance Update"
	}
}

func (n *Normalizer) Normalize(record source.RawRecord, sourceType SourceType) FeedItem {
	category := cmp.Or(record.Category, defaultCategory(sourceType))

	return FeedItem{
		ID:         fmt.Sprintf("%s-%d", sourceType.idPrefix(), record.ID),
		Title:      record.Title,
		Summary:    cmp.Or(record.ShortDescription, record.Description),
		Date:       ParseFirst(dateCandidates(record, sourceType)...),
		Category:   category,
		SourceType: sourceType,
		Link:       n.buildLink(record, sourceType, category),
		Icon:       ResolveIcon(category, sourceType),
	}
}

// NormalizeResource builds the catalog shape, which carries the raw dates
// and download/state fields the feed does not need.
func (n *Normalizer) NormalizeResource(record source.RawRecord) ResourceItem {
	item := ResourceItem{
		FeedItem:      n.Normalize(record, SourceTypeResource),
		ReleaseDate:   ParseFirst(record.ReleaseDate),
		EffectiveDate: ParseFirst(record.EffectiveDate),
		State:         record.State,
		DownloadURL:   record.DownloadURL,
	}

	if record.Speaker != nil {
		item.Speaker = &Speaker{
			Name:         record.Speaker.Name,
			Role:         record.Speaker.Role,
			Organization: record.Speaker.Organization,
			Image:        record.Speaker.Image,
		}
	}

	return item
}

func (n *Normalizer) buildLink(record source.RawRecord, sourceType SourceType, category string) string {
	// Notification entries link out to the syndicated page directly.
	if sourceType == SourceTypeNotification && record.URL != "" {
		return record.URL
	}

	ref := cmp.Or(record.Slug, strconv.FormatInt(record.ID, 10))

	switch sourceType {
	case SourceTypeResource:
		return fmt.Sprintf("%s/resources/%s?category=%s", n.portalBaseUrl, ref, url.QueryEscape(category))
	case SourceTypeLabourLaw:
		return fmt.Sprintf("%s/labour-law-updates/%s", n.portalBaseUrl, ref)
	case SourceTypeBlog:
		return fmt.Sprintf("%s/blog/%s", n.portalBaseUrl, ref)
	default:
		return fmt.Sprintf("%s/updates/%s", n.portalBaseUrl, ref)
	}
}

// iconRule pairs category keywords with the tag they resolve to. Rules are
// tried in order; the first keyword hit wins.
type iconRule struct {
	keywords []string
	tag      IconTag
}

var iconRules = []iconRule{
	{[]string{"pf", "provident"}, IconProvidentFund},
	{[]string{"esic"}, IconHealth},
	{[]string{"wage"}, IconCurrency},
	{[]string{"lwf", "welfare"}, IconWallet},
	{[]string{"leave", "hour", "clock"}, IconClock},
	{[]string{"rule", "act"}, IconScale},
	{[]string{"holiday"}, IconCalendar},
	{[]string{"form"}, IconForm},
	{[]string{"gazette"}, IconGazette},
}

// ResolveIcon picks the rendering tag for an item. Blog and labour-law
// items have fixed icons regardless of category; everything else goes
// through the keyword rules.
func ResolveIcon(category string, sourceType SourceType) IconTag {
	switch sourceType {
	case SourceTypeBlog:
		return IconArticle
	case SourceTypeLabourLaw:
		return IconBell
	}

	lowered := strings.ToLower(category)
	for _, rule := range iconRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.tag
			}
		}
	}

	return IconDocument
}
