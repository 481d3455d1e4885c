package config

// BlogConfig describes the external blog source and its extraction settings
type BlogConfig struct {
	Feed     FeedInfo `yaml:"feed"`
	Settings Settings `yaml:"settings"`
}

// FeedInfo identifies the external feed
type FeedInfo struct {
	URL    string `yaml:"url"`
	Source string `yaml:"source"`
}

// Settings contains extraction settings
type Settings struct {
	MaxPosts      int `yaml:"max_posts"`
	ExcerptLength int `yaml:"excerpt_length"`
	Timeout       int `yaml:"timeout"` // seconds
}
