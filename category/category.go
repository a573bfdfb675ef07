// Package category derives a topic label from explicit metadata or from the
// URL path. Pure functions, no network, deterministic.
package category

import (
	"net/url"
	"strings"
)

// vocabulary is the fixed topic list matched against URL path segments;
// earlier entries win.
var vocabulary = []string{
	"politics", "economy", "business", "world", "india", "sports",
	"entertainment", "science", "tech", "technology", "education",
	"lifestyle", "health", "law", "rights", "society", "culture",
	"gender", "media", "opinion",
}

// FromURL guesses an article's category from its URL path. Returns the
// title-cased first vocabulary entry appearing as a path segment, or "".
func FromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.ToLower(u.Path)
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	for _, cat := range vocabulary {
		if strings.Contains(path, "/"+cat+"/") {
			return strings.ToUpper(cat[:1]) + cat[1:]
		}
	}
	return ""
}

// Resolve prefers an explicit metadata section over the URL guess.
func Resolve(metaSection, rawURL string) string {
	if s := strings.TrimSpace(metaSection); s != "" {
		return s
	}
	return FromURL(rawURL)
}
