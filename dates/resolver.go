// Package dates decides whether a candidate belongs to the target calendar
// date, falling back from the extracted publish instant to dates embedded in
// the URL.
package dates

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"newsharvest/types"
)

var urlDateRe = regexp.MustCompile(`/(\d{4})/(\d{2})/(\d{2})/`)

// SameDay reports whether two instants fall on the same calendar date in t1's
// location.
func SameDay(t1, t2 time.Time) bool {
	y1, m1, d1 := t1.Date()
	y2, m2, d2 := t2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsToday applies the fallback chain deciding date membership; the first
// applicable rule wins:
//
//  1. an extracted publish instant is compared directly;
//  2. a /YYYY/MM/DD/ path segment with a valid calendar date is compared;
//  3. a source known to encode dates only in its URL keeps undated
//     candidates (and candidates whose URL date segment is malformed);
//  4. otherwise the target date's ISO form must appear in the URL path.
func IsToday(link string, art *types.ExtractedArticle, site types.SiteConfig, target time.Time, loc *time.Location) bool {
	if art != nil && art.PublishedAt != nil {
		return SameDay(art.PublishedAt.In(loc), target)
	}

	if m := urlDateRe.FindStringSubmatch(link); m != nil {
		if d, ok := calendarDate(m[1], m[2], m[3], loc); ok {
			return SameDay(d, target)
		}
		// malformed segment: fall through
	}

	if site.DateInURLOnly {
		return true
	}

	path := link
	if u, err := url.Parse(link); err == nil {
		path = u.Path
	}
	return strings.Contains(path, target.Format("2006-01-02"))
}

// calendarDate validates a year/month/day triple syntactically matched from a
// URL. time.Date normalizes out-of-range components, so a round-trip
// comparison catches dates like month 13 or Feb 30.
func calendarDate(ys, ms, ds string, loc *time.Location) (time.Time, bool) {
	y, _ := strconv.Atoi(ys)
	m, _ := strconv.Atoi(ms)
	d, _ := strconv.Atoi(ds)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
