package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsharvest/config"
	"newsharvest/fetch"
	"newsharvest/types"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

func testRunConfig(target time.Time) *config.RunConfig {
	return &config.RunConfig{
		Location:        ist,
		TargetDate:      target,
		MaxLinksPerSite: 50,
		Workers:         2,
		FetchTimeout:    5 * time.Second,
	}
}

const storyPage = `<!DOCTYPE html>
<html><head><title>Border Talks Conclude</title></head>
<body><article>
<h1>Border Talks Conclude</h1>
<p>Delegations from both countries wrapped up three days of border talks on Friday, agreeing to reopen two trading posts.</p>
<p>Officials described the discussions as constructive and said further meetings would follow later in the year.</p>
<p>Traders on both sides welcomed the decision, which ends a closure that had lasted almost two years.</p>
</article></body></html>`

func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<html><body>
<a href="/world/2024-01-05-border-talks">Today's story</a>
<a href="/world/2024-01-04-older-story">Yesterday's story</a>
<a href="/world/2024-01-05-border-talks?ref=home">Dup</a>
<a href="mailto:desk@example.com">Mail</a>
</body></html>`)
	})
	mux.HandleFunc("/world/2024-01-05-border-talks", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, storyPage)
	})
	mux.HandleFunc("/world/2024-01-04-older-story", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, storyPage)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSiteCrawlerKeepsTodaysStory(t *testing.T) {
	srv := newSiteServer(t)
	target := time.Date(2024, time.January, 5, 0, 0, 0, 0, ist)
	cfg := testRunConfig(target)

	site := types.SiteConfig{
		Name:    "Example",
		Adapter: types.AdapterGeneric,
		Seeds:   []string{srv.URL + "/"},
	}
	f := fetch.New("test", cfg.FetchTimeout, 0)
	crawler, err := NewSiteCrawler(site, f, cfg)
	if err != nil {
		t.Fatalf("NewSiteCrawler returned error: %v", err)
	}

	records := crawler.Run(context.Background())
	if len(records) != 1 {
		t.Fatalf("kept %d records %v; want exactly the dated story", len(records), records)
	}
	rec := records[0]
	if rec.Site != "Example" {
		t.Errorf("Site = %q; want Example", rec.Site)
	}
	if rec.URL != srv.URL+"/world/2024-01-05-border-talks" {
		t.Errorf("URL = %q; want the normalized story URL", rec.URL)
	}
	if rec.Category != "World" {
		t.Errorf("Category = %q; want World", rec.Category)
	}
}

func TestSiteCrawlerAllSeedsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	target := time.Date(2024, time.January, 5, 0, 0, 0, 0, ist)
	cfg := testRunConfig(target)
	site := types.SiteConfig{
		Name:    "Broken",
		Adapter: types.AdapterGeneric,
		Seeds:   []string{srv.URL + "/a", srv.URL + "/b"},
	}
	crawler, err := NewSiteCrawler(site, fetch.New("test", cfg.FetchTimeout, 0), cfg)
	if err != nil {
		t.Fatalf("NewSiteCrawler returned error: %v", err)
	}

	if records := crawler.Run(context.Background()); len(records) != 0 {
		t.Fatalf("kept %d records from a dead site; want 0", len(records))
	}
}

func TestSiteCrawlerCandidateCap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			// Candidate pages 404: extraction fails, nothing is kept,
			// but every capped candidate gets attempted.
			http.NotFound(w, r)
			return
		}
		for i := 0; i < 30; i++ {
			fmt.Fprintf(w, `<a href="/world/story-%d">s</a>`, i)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	target := time.Date(2024, time.January, 5, 0, 0, 0, 0, ist)
	cfg := testRunConfig(target)
	cfg.MaxLinksPerSite = 10

	site := types.SiteConfig{
		Name:    "Capped",
		Adapter: types.AdapterGeneric,
		Seeds:   []string{srv.URL + "/"},
	}
	crawler, err := NewSiteCrawler(site, fetch.New("test", cfg.FetchTimeout, 0), cfg)
	if err != nil {
		t.Fatalf("NewSiteCrawler returned error: %v", err)
	}

	if records := crawler.Run(context.Background()); len(records) != 0 {
		t.Fatalf("kept %d records; want 0 (all extractions fail)", len(records))
	}
}

func TestNewAdapterUnknownKind(t *testing.T) {
	cfg := testRunConfig(time.Date(2024, time.January, 5, 0, 0, 0, 0, ist))
	site := types.SiteConfig{Name: "Bad", Adapter: types.AdapterKind("mystery")}
	if _, err := NewSiteCrawler(site, fetch.New("test", cfg.FetchTimeout, 0), cfg); err == nil {
		t.Fatal("expected a configuration error for an unknown adapter kind")
	}
}
