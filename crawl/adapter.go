// Package crawl drives per-site discovery, extraction, and filtering, plus
// the feed path for the one source consumed without link discovery.
package crawl

import (
	"context"
	"fmt"
	"time"

	"newsharvest/discover"
	"newsharvest/extract"
	"newsharvest/fetch"
	"newsharvest/types"
)

// Adapter is the per-site strategy pair: how links are discovered on a seed
// page and how a candidate page becomes an article. The variant set is
// closed; NewAdapter rejects unknown kinds.
type Adapter interface {
	DiscoverLinks(seedURL string, html []byte) (discover.Set, error)
	ExtractArticle(ctx context.Context, link string) (*types.ExtractedArticle, error)
}

// NewAdapter constructs the adapter for a site. An unknown adapter kind is a
// configuration error handled one level up by skipping the whole site.
func NewAdapter(site types.SiteConfig, f *fetch.Fetcher, loc *time.Location) (Adapter, error) {
	switch site.Adapter {
	case types.AdapterGeneric:
		return &genericAdapter{site: site, extractor: extract.NewGeneric(f, loc)}, nil
	case types.AdapterStructured:
		return &structuredAdapter{site: site, extractor: extract.NewStructured(f, loc, site.TitleSuffix)}, nil
	default:
		return nil, fmt.Errorf("site %q: unknown adapter kind %q", site.Name, site.Adapter)
	}
}

type genericAdapter struct {
	site      types.SiteConfig
	extractor *extract.Generic
}

func (a *genericAdapter) DiscoverLinks(seedURL string, html []byte) (discover.Set, error) {
	return discover.Collect(seedURL, html, a.site)
}

func (a *genericAdapter) ExtractArticle(ctx context.Context, link string) (*types.ExtractedArticle, error) {
	return a.extractor.Extract(ctx, link)
}

type structuredAdapter struct {
	site      types.SiteConfig
	extractor *extract.Structured
}

func (a *structuredAdapter) DiscoverLinks(seedURL string, html []byte) (discover.Set, error) {
	return discover.Collect(seedURL, html, a.site)
}

func (a *structuredAdapter) ExtractArticle(ctx context.Context, link string) (*types.ExtractedArticle, error) {
	return a.extractor.Extract(ctx, link)
}
