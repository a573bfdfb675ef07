package orchestrator

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"newsharvest/config"
	"newsharvest/store"
	"newsharvest/types"
)

var ist = time.FixedZone("IST", 5*3600+30*60)

const orchestratorStoryPage = `<!DOCTYPE html>
<html><head><title>Port Expansion Approved</title></head>
<body><article>
<h1>Port Expansion Approved</h1>
<p>The cabinet approved a long pending port expansion plan on Friday, clearing the way for construction to begin.</p>
<p>The project is expected to double cargo capacity within five years and create several thousand jobs in the region.</p>
<p>Environmental groups said they would study the clearance conditions before deciding on further action.</p>
</article></body></html>`

// TestRunOncePartialResults covers the failure-isolation contract: one dead
// site and an unavailable feed still leave the healthy site's records in the
// output.
func TestRunOncePartialResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<a href="/business/2024-01-05-port-expansion">story</a>`)
	})
	mux.HandleFunc("/business/2024-01-05-port-expansion", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, orchestratorStoryPage)
	})
	good := httptest.NewServer(mux)
	defer good.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer dead.Close()

	cfg := &config.RunConfig{
		Location:        ist,
		TargetDate:      time.Date(2024, time.January, 5, 0, 0, 0, 0, ist),
		MaxLinksPerSite: 20,
		Workers:         2,
		FetchTimeout:    5 * time.Second,
		Deadline:        time.Minute,
		OutputDir:       t.TempDir(),
		FeedURL:         dead.URL + "/feed",
		FeedSite:        "NDTV",
		Sites: []types.SiteConfig{
			{Name: "Healthy", Adapter: types.AdapterGeneric, Seeds: []string{good.URL + "/"}},
			{Name: "Dead", Adapter: types.AdapterGeneric, Seeds: []string{dead.URL + "/"}},
		},
	}

	st := store.NewMemory()
	result, err := RunOnce(context.Background(), cfg, st)
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("Total = %d (%+v); want the healthy site's single record", result.Total, result.SiteCounts)
	}
	if result.SiteCounts["Healthy"] != 1 || result.SiteCounts["Dead"] != 0 || result.SiteCounts["NDTV"] != 0 {
		t.Errorf("SiteCounts = %v; want Healthy=1, Dead=0, NDTV=0", result.SiteCounts)
	}
	if result.Records[0].Category != "Business" {
		t.Errorf("Category = %q; want Business", result.Records[0].Category)
	}

	if result.OutputFile == "" {
		t.Fatal("OutputFile is empty; want the CSV artifact path")
	}
	if filepath.Base(result.OutputFile) != "news_2024-01-05.csv" {
		t.Errorf("OutputFile = %q; want date-stamped name", result.OutputFile)
	}
	if _, err := os.Stat(result.OutputFile); err != nil {
		t.Errorf("artifact missing: %v", err)
	}

	saved, err := st.Latest(context.Background())
	if err != nil || saved.Total != 1 {
		t.Errorf("stored result = %+v, %v; want the run saved", saved, err)
	}
}

// TestRunOnceEmptyResult checks the explicit empty outcome: no artifact is
// written when nothing is kept anywhere.
func TestRunOnceEmptyResult(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer dead.Close()

	dir := t.TempDir()
	cfg := &config.RunConfig{
		Location:        ist,
		TargetDate:      time.Date(2024, time.January, 5, 0, 0, 0, 0, ist),
		MaxLinksPerSite: 20,
		Workers:         2,
		FetchTimeout:    5 * time.Second,
		Deadline:        time.Minute,
		OutputDir:       dir,
		FeedURL:         dead.URL + "/feed",
		FeedSite:        "NDTV",
		Sites: []types.SiteConfig{
			{Name: "Dead", Adapter: types.AdapterGeneric, Seeds: []string{dead.URL + "/"}},
		},
	}

	result, err := RunOnce(context.Background(), cfg, store.NewMemory())
	if err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}
	if result.Total != 0 {
		t.Fatalf("Total = %d; want 0", result.Total)
	}
	if result.OutputFile != "" {
		t.Errorf("OutputFile = %q; want none for an empty run", result.OutputFile)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir has %d entries; an empty run must not write an artifact", len(entries))
	}
}
