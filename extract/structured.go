package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"

	"newsharvest/category"
	"newsharvest/config"
	"newsharvest/fetch"
	"newsharvest/types"
)

// contentSelectors are tried in order when the embedded metadata carries no
// article body.
var contentSelectors = []string{
	".entry-content", ".post-content", ".article-content", ".content",
	"article .text", ".post-body",
}

// newsArticleLD mirrors the embedded JSON-LD article metadata fields the
// structured strategy reads.
type newsArticleLD struct {
	Type          string          `json:"@type"`
	Headline      string          `json:"headline"`
	DatePublished string          `json:"datePublished"`
	ArticleBody   string          `json:"articleBody"`
	Author        json.RawMessage `json:"author"`
}

// Structured extracts articles from sources carrying embedded metadata,
// filling each field independently from the first source in its priority
// chain that yields a value.
type Structured struct {
	fetcher     *fetch.Fetcher
	loc         *time.Location
	titleSuffix string
}

// NewStructured builds the structured strategy for one site.
func NewStructured(f *fetch.Fetcher, loc *time.Location, titleSuffix string) *Structured {
	return &Structured{fetcher: f, loc: loc, titleSuffix: titleSuffix}
}

// Extract downloads and parses one candidate page. A download or HTML parse
// failure drops the candidate; missing individual fields do not.
func (s *Structured) Extract(ctx context.Context, link string) (*types.ExtractedArticle, error) {
	body, err := s.fetcher.Get(ctx, link)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	ld := findNewsArticleLD(doc)

	art := &types.ExtractedArticle{URL: link}

	art.Title = firstString(
		func() string { return s.cleanTitle(ld.Headline) },
		func() string { return s.cleanTitle(metaContent(doc, `meta[property="og:title"]`)) },
		func() string { return strings.TrimSpace(doc.Find("h1").First().Text()) },
	)

	art.PublishedAt = firstTime(
		func() *time.Time { return s.parseInstant(ld.DatePublished) },
		func() *time.Time {
			return s.parseInstant(metaContent(doc, `meta[name="article:published_date"]`))
		},
	)

	var firstParagraph string
	art.Text = firstString(
		func() string { return strings.TrimSpace(ld.ArticleBody) },
		func() string {
			text, lead := scrapeBody(doc)
			firstParagraph = lead
			return text
		},
	)

	art.Summary = firstString(
		func() string {
			if ld.ArticleBody == "" {
				return ""
			}
			return truncate(ld.ArticleBody, config.SummaryMaxLen)
		},
		func() string { return strings.TrimSpace(metaContent(doc, `meta[property="og:description"]`)) },
		func() string { return truncate(firstParagraph, config.SummaryMaxLen) },
	)

	art.Authors = ldAuthors(ld.Author)

	art.Category = category.Resolve(metaContent(doc, `meta[property="article:section"]`), link)

	return art, nil
}

// findNewsArticleLD returns the first ld+json script describing a
// NewsArticle; scripts that fail to decode are skipped.
func findNewsArticleLD(doc *goquery.Document) newsArticleLD {
	var out newsArticleLD
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var ld newsArticleLD
		if err := json.Unmarshal([]byte(sel.Text()), &ld); err != nil {
			return true
		}
		if ld.Type != "NewsArticle" {
			return true
		}
		out = ld
		return false
	})
	return out
}

// ldAuthors decodes the metadata author field, which appears either as a
// single object or as a list of objects.
func ldAuthors(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	type person struct {
		Name string `json:"name"`
	}
	var one person
	if err := json.Unmarshal(raw, &one); err == nil && one.Name != "" {
		return []string{one.Name}
	}
	var many []person
	if err := json.Unmarshal(raw, &many); err == nil {
		names := make([]string, 0, len(many))
		for _, p := range many {
			if p.Name != "" {
				names = append(names, p.Name)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return nil
}

// scrapeBody pulls article text from the first matching content container
// after removing script/style/ad/share/related subtrees, keeping only text
// blocks longer than the minimum. It also returns the first kept block for
// summary fallback.
func scrapeBody(doc *goquery.Document) (text, lead string) {
	for _, sel := range contentSelectors {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}
		container.Find("script, style, .advertisement, .social-share, .related-articles").Remove()
		var blocks []string
		container.Find("p, div").Each(func(_ int, el *goquery.Selection) {
			t := strings.TrimSpace(el.Text())
			if len(t) > config.MinBlockLen {
				blocks = append(blocks, t)
			}
		})
		if len(blocks) > 0 {
			return strings.Join(blocks, " "), blocks[0]
		}
		return "", ""
	}
	return "", ""
}

// parseInstant parses a metadata timestamp: instants without a timezone are
// assumed UTC, then everything is converted to the run timezone.
func (s *Structured) parseInstant(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	t, err := dateparse.ParseIn(v, time.UTC)
	if err != nil {
		return nil
	}
	local := t.In(s.loc)
	return &local
}

func (s *Structured) cleanTitle(t string) string {
	if s.titleSuffix != "" {
		t = strings.ReplaceAll(t, s.titleSuffix, "")
	}
	return strings.TrimSpace(t)
}

func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return v
}

// truncate caps s at n characters, not bytes, so a multi-byte rune is never
// split mid-sequence.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > n {
		return string(r[:n]) + "..."
	}
	return s
}
