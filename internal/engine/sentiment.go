package engine

import "strings"

// Sentiment is a polarity label attached to an aspect or a whole review.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// voteOrder fixes the scan order for majority-vote tie-breaking.
var voteOrder = []Sentiment{Positive, Negative, Neutral}

// ParseSentiment normalizes a raw label into a Sentiment. Model output is
// loose ("pos", "Positive", "very negative"); substring matching absorbs
// the variants, checked in the order positive, negative, neutral. Returns
// false for anything unrecognized.
func ParseSentiment(raw string) (Sentiment, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(s, "pos"):
		return Positive, true
	case strings.Contains(s, "neg"):
		return Negative, true
	case strings.Contains(s, "neu"):
		return Neutral, true
	}
	return "", false
}

// DeriveOverall reduces per-aspect sentiments to a single review verdict by
// majority vote. Ties resolve to the first label in the fixed order
// positive, negative, neutral. Zero aspects yield neutral.
func DeriveOverall(aspects []Aspect) Sentiment {
	if len(aspects) == 0 {
		return Neutral
	}

	counts := make(map[Sentiment]int, len(voteOrder))
	for _, a := range aspects {
		counts[a.Sentiment]++
	}

	best := Neutral
	bestCount := 0
	for _, s := range voteOrder {
		if counts[s] > bestCount {
			best = s
			bestCount = counts[s]
		}
	}
	return best
}

// Dedupe removes aspects that repeat an already-seen (category, sentiment)
// pair, keeping the first term encountered. Order is preserved.
func Dedupe(aspects []Aspect) []Aspect {
	if len(aspects) < 2 {
		return aspects
	}

	type key struct {
		category  string
		sentiment Sentiment
	}

	seen := make(map[key]bool, len(aspects))
	out := make([]Aspect, 0, len(aspects))
	for _, a := range aspects {
		k := key{a.Category, a.Sentiment}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, a)
	}
	return out
}
