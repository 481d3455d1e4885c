package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Extractor turns a raw feed document into a bounded list of post summaries.
type Extractor struct {
	gofeedParser  *gofeed.Parser
	maxPosts      int
	excerptLength int
	source        string
}

func NewExtractor(maxPosts, excerptLength int, source string) *Extractor {
	return &Extractor{
		gofeedParser:  gofeed.NewParser(),
		maxPosts:      maxPosts,
		excerptLength: excerptLength,
		source:        source,
	}
}

// Run extracts post summaries from raw feed data, preserving feed order.
// Items beyond the post cap are discarded before normalization. A missing
// title, link, description or date never fails an item; each falls back to
// its documented default.
func (e *Extractor) Run(data []byte) ([]Post, error) {
	parsed, err := e.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := parsed.Items
	if len(items) > e.maxPosts {
		items = items[:e.maxPosts]
	}

	posts := make([]Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, e.extractPost(item))
	}

	return posts, nil
}

func (e *Extractor) extractPost(item *gofeed.Item) Post {
	post := Post{
		Title:        cmp.Or(item.Title, "Untitled"),
		ExternalURL:  item.Link,
		Excerpt:      e.deriveExcerpt(item.Description),
		ThumbnailURL: e.extractThumbnail(item),
		Source:       e.source,
	}

	if item.PublishedParsed != nil {
		post.CreatedAt = *item.PublishedParsed
	} else {
		// Prefer some reasonable date over dropping the item
		post.CreatedAt = time.Now()
	}

	return post
}

// extractThumbnail returns the media thumbnail URL, or nil when the item
// carries none. The upstream feed puts the URL in the element's text content;
// the Media RSS convention of a url attribute is accepted as a fallback.
func (e *Extractor) extractThumbnail(item *gofeed.Item) *string {
	thumbnails, ok := item.Extensions["media"]["thumbnail"]
	if !ok || len(thumbnails) == 0 {
		return nil
	}

	if value := strings.TrimSpace(thumbnails[0].Value); value != "" {
		return &value
	}

	if url := thumbnails[0].Attrs["url"]; url != "" {
		return &url
	}

	return nil
}

// deriveExcerpt produces the plain-text excerpt: markup stripped, a small
// fixed set of named entities unescaped, then a hard cut at the configured
// rune length with no ellipsis.
func (e *Extractor) deriveExcerpt(description string) string {
	text := tagPattern.ReplaceAllString(description, "")

	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&amp;", "&")

	runes := []rune(text)
	if len(runes) > e.excerptLength {
		runes = runes[:e.excerptLength]
	}

	return string(runes)
}
