package extract

import "time"

// firstString returns the first non-empty result among sources, in order.
// Every field-fill chain in the structured strategy goes through this so the
// "first present value wins" rule is applied uniformly.
func firstString(sources ...func() string) string {
	for _, src := range sources {
		if v := src(); v != "" {
			return v
		}
	}
	return ""
}

// firstTime returns the first non-nil instant among sources, in order.
func firstTime(sources ...func() *time.Time) *time.Time {
	for _, src := range sources {
		if v := src(); v != nil {
			return v
		}
	}
	return nil
}
