package config

import "newsharvest/types"

// FeedURL is the syndication feed for the one source consumed without link
// discovery.
const (
	FeedURL  = "https://feeds.feedburner.com/ndtvnews-top-stories"
	FeedSite = "NDTV"
)

// Sites returns the ordered source registry. Every site uses the generic
// adapter except The Wire, whose markup defeats generic anchor harvesting
// and gets a selector allowlist tailored to it.
func Sites() []types.SiteConfig {
	return []types.SiteConfig{
		{
			Name:    "The Hindu",
			Adapter: types.AdapterGeneric,
			Seeds: []string{
				"https://www.thehindu.com/",
				"https://www.thehindu.com/archive/",
			},
		},
		{
			Name:    "India Today",
			Adapter: types.AdapterGeneric,
			Seeds:   []string{"https://www.indiatoday.in/"},
		},
		{
			Name:    "Indian Express",
			Adapter: types.AdapterGeneric,
			Seeds: []string{
				"https://indianexpress.com/",
				"https://indianexpress.com/feed/",
			},
		},
		{
			Name:    "Hindustan Times",
			Adapter: types.AdapterGeneric,
			Seeds: []string{
				"https://www.hindustantimes.com/",
				"https://www.hindustantimes.com/feeds/",
			},
		},
		{
			Name:    "Times Now",
			Adapter: types.AdapterGeneric,
			Seeds:   []string{"https://www.timesnownews.com/"},
		},
		{
			Name:    "Republic World",
			Adapter: types.AdapterGeneric,
			Seeds:   []string{"https://www.republicworld.com/"},
		},
		{
			Name:    "The Print",
			Adapter: types.AdapterGeneric,
			Seeds:   []string{"https://theprint.in/"},
		},
		{
			Name:          "The Wire",
			Adapter:       types.AdapterStructured,
			Seeds:         []string{"https://m.thewire.in/"},
			Domain:        "thewire.in",
			TitleSuffix:   " - The Wire",
			DateInURLOnly: true,
			Selectors: []string{
				"article a[href]",
				".post-title a[href]",
				".entry-title a[href]",
				"h1 a[href]",
				"h2 a[href]",
				"h3 a[href]",
				".article-title a[href]",
				".story-card a[href]",
				".featured-story a[href]",
				`a[href*="/politics/"]`,
				`a[href*="/economy/"]`,
				`a[href*="/society/"]`,
				`a[href*="/world/"]`,
				`a[href*="/law/"]`,
				`a[href*="/rights/"]`,
				`a[href*="/security/"]`,
				`a[href*="/diplomacy/"]`,
				`a[href*="/external-affairs/"]`,
				`a[href*="/science/"]`,
				`a[href*="/culture/"]`,
				`a[href*="/gender/"]`,
				`a[href*="/media/"]`,
			},
			AllowPatterns: []string{
				"/politics/", "/economy/", "/society/", "/world/",
				"/law/", "/rights/", "/security/", "/diplomacy/",
				"/article/", "/news/", "/opinion/", "/external-affairs/",
				"/science/", "/culture/", "/gender/", "/media/",
			},
			DenyPatterns: []string{
				"/author/", "/tag/", "/category/", "/page/",
				"/about", "/contact", "/privacy", "/terms",
				".jpg", ".png", ".gif", ".pdf", "#",
				"/wp-content/", "/wp-admin/", "/feed",
				"facebook.com", "twitter.com", "instagram.com",
				"/search/", "/subscribe/", "/newsletter/",
			},
		},
	}
}
