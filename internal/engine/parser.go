package engine

import "strings"

// ParsePrediction converts a model's textual prediction into aspects.
//
// The expected format is "category: sentiment" pairs separated by commas or
// semicolons, e.g. "cleanliness: positive, staff: negative". Pieces without
// a colon or with an unrecognized sentiment are skipped, and repeated
// (category, sentiment) pairs are dropped.
func ParsePrediction(prediction string) []Aspect {
	normalized := strings.ReplaceAll(prediction, ";", ",")

	aspects := make([]Aspect, 0)
	for _, piece := range strings.Split(normalized, ",") {
		category, rawSentiment, ok := strings.Cut(piece, ":")
		if !ok {
			continue
		}

		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}

		sentiment, ok := ParseSentiment(rawSentiment)
		if !ok {
			continue
		}

		aspects = append(aspects, Aspect{
			Category:  category,
			Sentiment: sentiment,
		})
	}

	return Dedupe(aspects)
}
