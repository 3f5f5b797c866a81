package cfg

type Cfg struct {
	// Application configuration
	SourcesDir      string
	Port            string
	BaseUrl         string
	PortalBaseUrl   string
	WorkerCount     int
	RefreshInterval int
	PageSize        int
	MaxPageSize     int
	APIAccessKey    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
