package config

import "time"

// Fetch Constants
const (
	// UserAgent is the fixed identity header sent with every request
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// RequestTimeout bounds a single page download
	RequestTimeout = 15 * time.Second

	// FetchDelay is the minimum spacing between requests to one origin
	FetchDelay = 1 * time.Second
)

// Crawl Constants
const (
	// MaxLinksPerSite caps candidate collection and extraction per site
	MaxLinksPerSite = 250

	// WorkerCount is the per-site extraction worker pool size
	WorkerCount = 5

	// DefaultDeadline bounds a whole pipeline run
	DefaultDeadline = 20 * time.Minute
)

// Extraction Constants
const (
	// SummaryMaxLen is where body-derived summaries are truncated
	SummaryMaxLen = 200

	// MinBlockLen filters out short text blocks when scraping article bodies
	MinBlockLen = 20

	// SummarySentences is how many sentences the extractive summarizer keeps
	SummarySentences = 3
)

// Timezone returns the zone in which "today" and all publish instants are
// compared. Falls back to a fixed UTC+5:30 offset when zoneinfo is absent.
func Timezone() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}
