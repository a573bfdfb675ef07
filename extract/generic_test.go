package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsharvest/fetch"
)

const genericArticlePage = `<!DOCTYPE html>
<html><head><title>Monsoon Arrives Early In The South</title></head>
<body>
<article>
<h1>Monsoon Arrives Early In The South</h1>
<p>The monsoon reached the southern coast three days ahead of schedule this year, weather officials said on Monday morning.</p>
<p>Heavy showers were recorded across several districts, and reservoirs that had been running low began to recover through the week.</p>
<p>Farmers in the region said the early monsoon rain would help the sowing season, though officials warned of localized flooding in low lying areas.</p>
<p>The weather department expects the monsoon to cover the rest of the country within two weeks if conditions hold steady.</p>
</article>
</body></html>`

func TestGenericExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(genericArticlePage))
	}))
	defer srv.Close()

	g := NewGeneric(fetch.New("test", 5*time.Second, 0), ist)
	art, err := g.Extract(context.Background(), srv.URL+"/world/monsoon-arrives")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if !strings.Contains(art.Title, "Monsoon") {
		t.Errorf("Title = %q; want the page title", art.Title)
	}
	if !strings.Contains(art.Text, "southern coast") {
		t.Errorf("Text = %q; want the article body text", art.Text)
	}
	if art.Category != "World" {
		t.Errorf("Category = %q; want World from the URL path", art.Category)
	}
	if art.Summary != "" && !strings.Contains(art.Text, strings.Split(art.Summary, " ")[0]) {
		t.Errorf("Summary %q is not drawn from the text", art.Summary)
	}
}

func TestGenericExtractFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	g := NewGeneric(fetch.New("test", 5*time.Second, 0), ist)
	if _, err := g.Extract(context.Background(), srv.URL+"/world/blocked"); err == nil {
		t.Fatal("expected an error when the download fails")
	}
}
