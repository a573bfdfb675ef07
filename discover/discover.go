// Package discover extracts normalized candidate article URLs from seed
// pages, either by a generic same-domain anchor harvest or by per-site
// selector lists.
package discover

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsharvest/types"
)

// Set holds candidate links keyed by normalized URL; set semantics guarantee
// no two candidates normalize to the same string.
type Set map[string]struct{}

// Add inserts a normalized URL.
func (s Set) Add(u string) { s[u] = struct{}{} }

// Merge folds other into s.
func (s Set) Merge(other Set) {
	for u := range other {
		s[u] = struct{}{}
	}
}

// Collect parses one seed page and returns the candidate links it yields
// under the site's adapter. The returned set carries no ordering.
func Collect(seedURL string, html []byte, site types.SiteConfig) (Set, error) {
	base, err := url.Parse(seedURL)
	if err != nil {
		return nil, fmt.Errorf("bad seed url %q: %w", seedURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", seedURL, err)
	}

	if site.Adapter == types.AdapterStructured {
		return structured(base, doc, site), nil
	}
	return generic(base, doc), nil
}

// generic harvests every anchor on the page and keeps same-domain links:
// the link host must be the seed's host or a subdomain of it.
func generic(base *url.URL, doc *goquery.Document) Set {
	links := make(Set)
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if skippable(href) {
			return
		}
		norm, ok := Normalize(base, href)
		if !ok {
			return
		}
		if u, err := url.Parse(norm); err != nil || !strings.HasSuffix(u.Host, strings.ToLower(base.Host)) {
			return
		}
		links.Add(norm)
	})
	return links
}

// structured applies the site's selector list and keeps only links that pass
// the denylist and match at least one allowlist pattern.
func structured(base *url.URL, doc *goquery.Document, site types.SiteConfig) Set {
	links := make(Set)
	for _, sel := range site.Selectors {
		doc.Find(sel).Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			href = strings.TrimSpace(href)
			if skippable(href) {
				return
			}
			norm, ok := Normalize(base, href)
			if !ok {
				return
			}
			if Allowed(norm, site) {
				links.Add(norm)
			}
		})
	}
	return links
}

// Allowed validates a normalized URL against a structured site's domain,
// denylist, and allowlist.
func Allowed(link string, site types.SiteConfig) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if site.Domain != "" && !strings.HasSuffix(u.Host, site.Domain) {
		return false
	}
	lower := strings.ToLower(link)
	for _, deny := range site.DenyPatterns {
		if strings.Contains(lower, deny) {
			return false
		}
	}
	for _, allow := range site.AllowPatterns {
		if strings.Contains(lower, allow) {
			return true
		}
	}
	return false
}
