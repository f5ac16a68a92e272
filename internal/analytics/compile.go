package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/pkg/formatting"
)

const (
	topIssueLimit       = 5
	exampleLimit        = 5
	recommendationLimit = 3
)

// reviewFact is the slice of a review the aggregation needs.
type reviewFact struct {
	ID        uuid.UUID
	Text      string
	Date      time.Time
	Sentiment engine.Sentiment
}

// aspectFact is one aspect mention joined back to its review.
type aspectFact struct {
	ReviewID  uuid.UUID
	Category  string
	Sentiment engine.Sentiment
}

// compile computes a full report from in-memory facts. Pure so the
// aggregation rules stay testable without a database.
func compile(reviews []reviewFact, aspects []aspectFact) *Report {
	report := &Report{
		TotalReviews:      len(reviews),
		CategoryBreakdown: []CategoryStats{},
		TopIssues:         []Issue{},
		Recommendations:   []string{},
	}

	if len(reviews) == 0 {
		return report
	}

	byID := make(map[uuid.UUID]reviewFact, len(reviews))
	for _, r := range reviews {
		byID[r.ID] = r

		switch r.Sentiment {
		case engine.Positive:
			report.PositiveCount++
		case engine.Negative:
			report.NegativeCount++
		default:
			report.NeutralCount++
		}
	}

	stats := make(map[string]*CategoryStats)
	for _, a := range aspects {
		if a.Category == "" {
			continue
		}

		cs, ok := stats[a.Category]
		if !ok {
			cs = &CategoryStats{Name: a.Category}
			stats[a.Category] = cs
		}

		switch a.Sentiment {
		case engine.Positive:
			cs.Positive++
		case engine.Negative:
			cs.Negative++
		default:
			cs.Neutral++
		}
		cs.Total++
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}

	sort.Strings(names)
	for _, name := range names {
		report.CategoryBreakdown = append(report.CategoryBreakdown, *stats[name])
	}

	// Rank by negative mention volume; names break ties so the order is
	// stable across runs.
	ranked := make([]string, len(names))
	copy(ranked, names)
	sort.SliceStable(ranked, func(i, j int) bool {
		return stats[ranked[i]].Negative > stats[ranked[j]].Negative
	})

	for _, name := range ranked {
		if len(report.TopIssues) == topIssueLimit {
			break
		}
		if stats[name].Negative == 0 {
			continue
		}

		report.TopIssues = append(report.TopIssues, buildIssue(name, aspects, byID))
	}

	for i, issue := range report.TopIssues {
		if i == recommendationLimit {
			break
		}

		noun := "complaints"
		if issue.Count == 1 {
			noun = "complaint"
		}
		report.Recommendations = append(report.Recommendations, fmt.Sprintf(
			"Address %s complaints - %d customer %s detected",
			issue.Category, issue.Count, noun,
		))
	}

	return report
}

// buildIssue counts distinct reviews with a negative mention of the
// category and picks the most recent ones as examples.
func buildIssue(category string, aspects []aspectFact, byID map[uuid.UUID]reviewFact) Issue {
	seen := make(map[uuid.UUID]bool)
	flagged := make([]reviewFact, 0)

	for _, a := range aspects {
		if a.Category != category || a.Sentiment != engine.Negative {
			continue
		}
		if seen[a.ReviewID] {
			continue
		}
		seen[a.ReviewID] = true

		if r, ok := byID[a.ReviewID]; ok {
			flagged = append(flagged, r)
		}
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].Date.After(flagged[j].Date)
	})

	examples := make([]Example, 0, exampleLimit)
	for _, r := range flagged {
		if len(examples) == exampleLimit {
			break
		}
		examples = append(examples, Example{
			Term:       category,
			ReviewText: formatting.Preview(r.Text, formatting.PreviewLength),
		})
	}

	return Issue{
		Category: category,
		Count:    len(flagged),
		Severity: severity(len(flagged)),
		Examples: examples,
	}
}
