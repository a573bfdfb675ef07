package crawl

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"newsharvest/category"
	"newsharvest/config"
	"newsharvest/dates"
	"newsharvest/discover"
	"newsharvest/fetch"
	"newsharvest/types"
)

// SiteCrawler runs one site's seeds through discovery, dedup, the candidate
// cap, extraction, and date filtering. Seed and candidate failures are
// skipped, never fatal to the site; the crawler always returns whatever
// records were kept.
type SiteCrawler struct {
	site    types.SiteConfig
	fetcher *fetch.Fetcher
	adapter Adapter
	cfg     *config.RunConfig
}

// NewSiteCrawler wires a crawler for one configured site.
func NewSiteCrawler(site types.SiteConfig, f *fetch.Fetcher, cfg *config.RunConfig) (*SiteCrawler, error) {
	adapter, err := NewAdapter(site, f, cfg.Location)
	if err != nil {
		return nil, err
	}
	return &SiteCrawler{site: site, fetcher: f, adapter: adapter, cfg: cfg}, nil
}

// Run crawls the site and returns the kept records for the target date.
func (c *SiteCrawler) Run(ctx context.Context) []types.ArticleRecord {
	log.Printf("==> Scraping %s", c.site.Name)

	links := c.collectCandidates(ctx)
	log.Printf("  [%s] total candidate links collected: %d", c.site.Name, len(links))

	capped := make([]string, 0, c.cfg.MaxLinksPerSite)
	for link := range links {
		if len(capped) >= c.cfg.MaxLinksPerSite {
			break
		}
		capped = append(capped, link)
	}

	records := c.extractAll(ctx, capped)
	log.Printf("  [%s] %d articles kept", c.site.Name, len(records))
	return records
}

// collectCandidates fetches each seed and accumulates discovered links into
// one deduplicated set, stopping early once the cap is reached. A failed
// seed fetch is logged and skipped.
func (c *SiteCrawler) collectCandidates(ctx context.Context) discover.Set {
	links := make(discover.Set)
	for _, seed := range c.site.Seeds {
		log.Printf("  [%s] fetching seed: %s", c.site.Name, seed)
		html, err := c.fetcher.Get(ctx, seed)
		if err != nil {
			log.Printf("  [%s] seed fetch failed: %v", c.site.Name, err)
			continue
		}
		found, err := c.adapter.DiscoverLinks(seed, html)
		if err != nil {
			log.Printf("  [%s] seed parse failed: %v", c.site.Name, err)
			continue
		}
		log.Printf("    found %d links on seed", len(found))
		links.Merge(found)
		if len(links) >= c.cfg.MaxLinksPerSite {
			break
		}
	}
	return links
}

// extractAll runs the capped candidate list through a bounded worker pool.
// Workers accumulate kept records locally; slices are merged after the pool
// drains, so candidate order is never a correctness property.
func (c *SiteCrawler) extractAll(ctx context.Context, links []string) []types.ArticleRecord {
	if len(links) == 0 {
		return nil
	}

	workers := c.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(links) {
		workers = len(links)
	}

	linkChan := make(chan string, len(links))
	for _, link := range links {
		linkChan <- link
	}
	close(linkChan)

	kept := make([][]types.ArticleRecord, workers)
	var wg sync.WaitGroup
	var done atomic.Int32
	total := len(links)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for link := range linkChan {
				n := done.Add(1)
				log.Printf("   [%d/%d] parsing: %s", n, total, link)
				if rec, ok := c.processCandidate(ctx, link); ok {
					kept[id] = append(kept[id], rec)
				}
			}
		}(i)
	}
	wg.Wait()

	var records []types.ArticleRecord
	for _, part := range kept {
		records = append(records, part...)
	}
	return records
}

// processCandidate extracts one candidate and applies the date and category
// resolvers. Extraction failure skips the candidate only.
func (c *SiteCrawler) processCandidate(ctx context.Context, link string) (types.ArticleRecord, bool) {
	art, err := c.adapter.ExtractArticle(ctx, link)
	if err != nil {
		log.Printf("    [parse failed] %s -> %v", link, err)
		return types.ArticleRecord{}, false
	}
	if !dates.IsToday(link, art, c.site, c.cfg.TargetDate, c.cfg.Location) {
		return types.ArticleRecord{}, false
	}
	if art.Category == "" {
		art.Category = category.FromURL(link)
	}
	rec := types.NewRecord(c.site.Name, art)
	log.Printf("     -> kept (%s)", orNone(rec.Category))
	return rec, true
}

func orNone(s string) string {
	if s == "" {
		return "no category"
	}
	return s
}
