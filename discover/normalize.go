package discover

import (
	"net/url"
	"strings"
)

// Normalize resolves href against base and canonicalizes the result: query
// string and fragment stripped, trailing slash stripped, scheme and host
// lowercased, path left untouched. Returns false for non-http(s) targets and
// unparsable hrefs. Normalizing an already-normalized URL is a no-op.
func Normalize(base *url.URL, href string) (string, bool) {
	u, err := base.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "/"), true
}

// skippable reports hrefs that can never be article links: in-page fragments
// and mailto targets.
func skippable(href string) bool {
	return href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:")
}
