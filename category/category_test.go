package category

import "testing"

func TestFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"world segment", "https://site.example/world/2024-01-05-story", "World"},
		{"politics deep", "https://m.thewire.in/politics/big-vote-story", "Politics"},
		{"tech not technology", "https://site.example/technology/gadgets", "Technology"},
		{"uppercase path", "https://site.example/WORLD/story", "World"},
		{"trailing segment", "https://site.example/news/sports", "Sports"},
		{"no match", "https://site.example/videos/clip", ""},
		{"segment only, not substring", "https://site.example/worldwide/story", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FromURL(c.url); got != c.want {
				t.Fatalf("FromURL(%q) = %q; want %q", c.url, got, c.want)
			}
		})
	}
}

func TestFromURLDeterministic(t *testing.T) {
	u := "https://site.example/economy/budget"
	first := FromURL(u)
	for i := 0; i < 5; i++ {
		if got := FromURL(u); got != first {
			t.Fatalf("FromURL(%q) changed between calls: %q vs %q", u, first, got)
		}
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		meta string
		url  string
		want string
	}{
		{"meta wins", "Opinion", "https://site.example/world/story", "Opinion"},
		{"meta whitespace ignored", "   ", "https://site.example/world/story", "World"},
		{"url fallback", "", "https://site.example/health/advice", "Health"},
		{"nothing", "", "https://site.example/misc", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Resolve(c.meta, c.url); got != c.want {
				t.Fatalf("Resolve(%q, %q) = %q; want %q", c.meta, c.url, got, c.want)
			}
		})
	}
}
