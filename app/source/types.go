package source

// Source kinds understood by the engine. Each kind has its own raw record
// shape quirks; normalization lives in app/content.
const (
	TypeResource     = "resource"
	TypeLabourLaw    = "labour_law"
	TypeBlog         = "blog"
	TypeNotification = "notification"
)

// Configuration types

type Config struct {
	Name     string         // Derived from filename (without .yml extension)
	Type     string         `yaml:"type"`
	URL      string         `yaml:"url"`
	Settings ConfigSettings `yaml:"settings"`
}

type ConfigSettings struct {
	Enabled         bool `yaml:"enabled"`
	RefreshInterval int  `yaml:"refresh_interval"` // seconds
	MaxItems        int  `yaml:"max_items"`
	Timeout         int  `yaml:"timeout"`         // seconds
	ExtractContent  bool `yaml:"extract_content"` // backfill empty summaries from linked pages
}

// RawRecord is the superset of the fields the backend sources return. Each
// source fills a different subset; absent fields stay zero-valued and the
// normalizer applies its fallback rules.
type RawRecord struct {
	ID               int64       `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"short_description"`
	ReleaseDate      string      `json:"release_date"`
	CreatedAt        string      `json:"created_at"`
	PublishedDate    string      `json:"published_date"`
	EffectiveDate    string      `json:"effective_date"`
	EndDate          string      `json:"end_date"`
	Category         string      `json:"category"`
	State            string      `json:"state"`
	IsVisible        *bool       `json:"is_visible"`
	DownloadURL      string      `json:"download_url"`
	Slug             string      `json:"slug"`
	URL              string      `json:"url"`
	Speaker          *RawSpeaker `json:"speaker"`
}

type RawSpeaker struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Image        string `json:"image"`
}

// Visible reports whether the record is published. A record that does not
// carry the is_visible flag is treated as unpublished.
func (r RawRecord) Visible() bool {
	return r.IsVisible != nil && *r.IsVisible
}
