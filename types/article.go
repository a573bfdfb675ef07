package types

import (
	"strings"
	"time"
)

// ExtractedArticle holds the fields pulled from a single candidate page.
// A partial article (some fields empty) is still valid; only a total
// extraction failure drops the candidate.
type ExtractedArticle struct {
	URL         string
	Title       string
	Authors     []string
	Summary     string
	Text        string
	PublishedAt *time.Time // already converted to the run timezone when set
	Category    string
}

// ArticleRecord is one row of pipeline output. Records are created only for
// articles confirmed as published on the target date and are never mutated
// afterwards.
type ArticleRecord struct {
	Site        string `json:"site"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Summary     string `json:"summary"`
	Text        string `json:"text"`
	PublishDate string `json:"publish_date"`
	Category    string `json:"category"`
}

// NewRecord builds an output record from an extracted article, applying the
// output normalization: authors joined with ", ", newlines in summary/text
// replaced with spaces, publish date rendered as an ISO calendar date.
func NewRecord(site string, art *ExtractedArticle) ArticleRecord {
	pub := ""
	if art.PublishedAt != nil {
		pub = art.PublishedAt.Format("2006-01-02")
	}
	return ArticleRecord{
		Site:        site,
		URL:         art.URL,
		Title:       strings.TrimSpace(art.Title),
		Authors:     strings.Join(art.Authors, ", "),
		Summary:     flatten(art.Summary),
		Text:        flatten(art.Text),
		PublishDate: pub,
		Category:    art.Category,
	}
}

func flatten(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}

// RunResult summarizes one pipeline run for the run store and the API.
type RunResult struct {
	TargetDate string          `json:"target_date"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	SiteCounts map[string]int  `json:"site_counts"`
	Total      int             `json:"total"`
	OutputFile string          `json:"output_file,omitempty"`
	Records    []ArticleRecord `json:"records"`
}
