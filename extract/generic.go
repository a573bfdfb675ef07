package extract

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"newsharvest/category"
	"newsharvest/config"
	"newsharvest/fetch"
	"newsharvest/summarize"
	"newsharvest/types"
)

// Generic is the site-agnostic strategy: readability parsing of the page's
// main content plus extractive summarization. A download or parse failure
// drops the candidate; a summarization failure only leaves the summary empty.
type Generic struct {
	fetcher *fetch.Fetcher
	loc     *time.Location
}

// NewGeneric builds the generic strategy.
func NewGeneric(f *fetch.Fetcher, loc *time.Location) *Generic {
	return &Generic{fetcher: f, loc: loc}
}

// Extract downloads link and parses it with the readability heuristic.
func (g *Generic) Extract(ctx context.Context, link string) (*types.ExtractedArticle, error) {
	body, err := g.fetcher.Get(ctx, link)
	if err != nil {
		return nil, err
	}
	pageURL, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("bad article url %q: %w", link, err)
	}
	parsed, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}

	art := &types.ExtractedArticle{
		URL:      link,
		Title:    strings.TrimSpace(parsed.Title),
		Text:     strings.TrimSpace(parsed.TextContent),
		Category: category.FromURL(link),
	}
	if byline := strings.TrimSpace(parsed.Byline); byline != "" {
		art.Authors = []string{byline}
	}
	if parsed.PublishedTime != nil {
		local := parsed.PublishedTime.In(g.loc)
		art.PublishedAt = &local
	}
	art.Summary = summarize.Extract(art.Text, config.SummarySentences)

	return art, nil
}
