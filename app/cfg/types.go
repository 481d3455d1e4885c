package cfg

type Cfg struct {
	// Server configuration
	Port   string
	DBPath string

	// Blog feed configuration
	FeedURL      string
	BlogConfig   string
	PostsSource  string
	FetchTimeout int

	// Admin configuration
	AdminPasswordHash string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
