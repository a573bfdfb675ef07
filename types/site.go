package types

// AdapterKind selects the discovery/extraction strategy for a site. The set
// is closed: every site is either generic or structured.
type AdapterKind string

const (
	AdapterGeneric    AdapterKind = "generic"
	AdapterStructured AdapterKind = "structured"
)

// SiteConfig describes one source: its seed pages and, for structured sites,
// the selector and URL filter lists tailored to its markup. Configs are
// immutable and supplied at startup.
type SiteConfig struct {
	Name  string
	Seeds []string

	Adapter AdapterKind

	// Structured-adapter parameters; empty for generic sites.
	Domain        string   // registrable domain a kept link's host must end with
	Selectors     []string // CSS selectors scoped to likely headline containers
	AllowPatterns []string // a link must contain at least one of these path segments
	DenyPatterns  []string // a link containing any of these is rejected
	TitleSuffix   string   // trailing site suffix stripped from titles

	// DateInURLOnly marks sources that encode publish dates only in the URL
	// path; undated candidates from such a source default to kept.
	DateInURLOnly bool
}

// CandidateLink is a normalized, not-yet-confirmed article URL discovered
// from one of a site's seed pages.
type CandidateLink struct {
	URL  string
	Site string
}
