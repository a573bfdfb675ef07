// Package summarize produces a short extractive summary of article text by
// frequency-scoring sentences. It never fails: inputs it cannot summarize
// yield the empty string, and the caller treats that as "no summary".
package summarize

import (
	"regexp"
	"sort"
	"strings"
)

var (
	sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)
	wordRe     = regexp.MustCompile(`[a-zA-Z']+`)
)

// stopwords are excluded from frequency scoring so common glue words do not
// dominate sentence scores.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "of": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "has": {}, "have": {}, "had": {}, "it": {}, "its": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "he": {}, "she": {},
	"they": {}, "we": {}, "you": {}, "i": {}, "his": {}, "her": {},
	"their": {}, "our": {}, "not": {}, "no": {}, "will": {}, "would": {},
	"can": {}, "could": {}, "said": {}, "also": {}, "which": {}, "who": {},
	"what": {}, "when": {}, "where": {}, "there": {}, "than": {}, "then": {},
	"into": {}, "about": {}, "after": {}, "before": {}, "over": {},
	"under": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"only": {}, "new": {}, "all": {}, "any": {}, "both": {}, "each": {},
	"do": {}, "does": {}, "did": {}, "so": {}, "if": {}, "up": {}, "out": {},
}

// Extract returns up to maxSentences of text, chosen by word-frequency
// scoring and emitted in original order. Returns "" when the text has no
// scorable sentences.
func Extract(text string, maxSentences int) string {
	if maxSentences <= 0 {
		return ""
	}
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= maxSentences {
		return strings.TrimSpace(strings.Join(trimAll(sentences), " "))
	}

	freq := make(map[string]int)
	for _, s := range sentences {
		for _, w := range tokenize(s) {
			freq[w]++
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, 0, len(sentences))
	for i, s := range sentences {
		words := tokenize(s)
		if len(words) == 0 {
			continue
		}
		sum := 0
		for _, w := range words {
			sum += freq[w]
		}
		ranked = append(ranked, scored{idx: i, score: float64(sum) / float64(len(words))})
	}
	if len(ranked) == 0 {
		return ""
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].idx < ranked[j].idx
	})
	if len(ranked) > maxSentences {
		ranked = ranked[:maxSentences]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].idx < ranked[j].idx })

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, strings.TrimSpace(sentences[r.idx]))
	}
	return strings.Join(out, " ")
}

func tokenize(s string) []string {
	raw := wordRe.FindAllString(strings.ToLower(s), -1)
	words := raw[:0]
	for _, w := range raw {
		if _, stop := stopwords[w]; !stop && len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

func trimAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
