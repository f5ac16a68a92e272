package analytics

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reviewpulse/pulse/internal/engine"
)

func day(n int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestCompileEmpty(t *testing.T) {
	report := compile(nil, nil)

	if report.TotalReviews != 0 {
		t.Errorf("total: got %d, want 0", report.TotalReviews)
	}
	if report.TopIssues == nil || report.Recommendations == nil || report.CategoryBreakdown == nil {
		t.Error("empty report must have empty slices, not nil")
	}
}

func TestCompileSentimentCounts(t *testing.T) {
	reviews := []reviewFact{
		{ID: uuid.New(), Sentiment: engine.Positive},
		{ID: uuid.New(), Sentiment: engine.Positive},
		{ID: uuid.New(), Sentiment: engine.Negative},
		{ID: uuid.New(), Sentiment: engine.Neutral},
		{ID: uuid.New(), Sentiment: ""},
	}

	report := compile(reviews, nil)

	if report.TotalReviews != 5 {
		t.Errorf("total: got %d", report.TotalReviews)
	}
	if report.PositiveCount != 2 || report.NegativeCount != 1 {
		t.Errorf("counts: %+v", report)
	}
	if report.NeutralCount != 2 {
		t.Errorf("blank sentiment should count neutral: got %d", report.NeutralCount)
	}
	if report.PositiveCount+report.NegativeCount+report.NeutralCount != report.TotalReviews {
		t.Error("sentiment counts must partition the total")
	}
}

func TestCompileTopIssues(t *testing.T) {
	// Three categories: service has the most negative mentions, price one,
	// food none.
	ids := make([]uuid.UUID, 4)
	reviews := make([]reviewFact, 4)
	for i := range ids {
		ids[i] = uuid.New()
		reviews[i] = reviewFact{
			ID:        ids[i],
			Text:      fmt.Sprintf("review %d", i),
			Date:      day(i),
			Sentiment: engine.Negative,
		}
	}

	aspects := []aspectFact{
		{ReviewID: ids[0], Category: "service", Sentiment: engine.Negative},
		{ReviewID: ids[1], Category: "service", Sentiment: engine.Negative},
		{ReviewID: ids[1], Category: "service", Sentiment: engine.Negative},
		{ReviewID: ids[2], Category: "price", Sentiment: engine.Negative},
		{ReviewID: ids[3], Category: "food", Sentiment: engine.Positive},
	}

	report := compile(reviews, aspects)

	if len(report.TopIssues) != 2 {
		t.Fatalf("got %d issues, want 2: %+v", len(report.TopIssues), report.TopIssues)
	}

	service := report.TopIssues[0]
	if service.Category != "service" {
		t.Errorf("first issue: got %q, want service", service.Category)
	}

	// Two distinct reviews even though service has three mentions.
	if service.Count != 2 {
		t.Errorf("count must be distinct reviews: got %d", service.Count)
	}
	if service.Severity != SeverityLow {
		t.Errorf("severity: got %q", service.Severity)
	}

	// Most recent example first.
	if len(service.Examples) != 2 || service.Examples[0].ReviewText != "review 1" {
		t.Errorf("examples: %+v", service.Examples)
	}
}

func TestCompileSeverityThresholds(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{1, SeverityLow},
		{5, SeverityLow},
		{6, SeverityMedium},
		{10, SeverityMedium},
		{11, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count %d", tt.count), func(t *testing.T) {
			var reviews []reviewFact
			var aspects []aspectFact
			for i := 0; i < tt.count; i++ {
				id := uuid.New()
				reviews = append(reviews, reviewFact{ID: id, Date: day(i), Sentiment: engine.Negative})
				aspects = append(aspects, aspectFact{ReviewID: id, Category: "service", Sentiment: engine.Negative})
			}

			report := compile(reviews, aspects)
			if report.TopIssues[0].Severity != tt.expected {
				t.Errorf("got %q, want %q", report.TopIssues[0].Severity, tt.expected)
			}
		})
	}
}

func TestCompileExampleTruncation(t *testing.T) {
	id := uuid.New()
	long := strings.Repeat("x", 150)

	report := compile(
		[]reviewFact{{ID: id, Text: long, Date: day(0), Sentiment: engine.Negative}},
		[]aspectFact{{ReviewID: id, Category: "service", Sentiment: engine.Negative}},
	)

	got := report.TopIssues[0].Examples[0].ReviewText
	if got != strings.Repeat("x", 100)+"..." {
		t.Errorf("example not truncated to 100 chars with ellipsis: %q", got)
	}
}

func TestCompileExampleLimit(t *testing.T) {
	var reviews []reviewFact
	var aspects []aspectFact
	for i := 0; i < 8; i++ {
		id := uuid.New()
		reviews = append(reviews, reviewFact{
			ID:        id,
			Text:      fmt.Sprintf("review %d", i),
			Date:      day(i),
			Sentiment: engine.Negative,
		})
		aspects = append(aspects, aspectFact{ReviewID: id, Category: "service", Sentiment: engine.Negative})
	}

	report := compile(reviews, aspects)
	issue := report.TopIssues[0]

	if issue.Count != 8 {
		t.Errorf("count: got %d", issue.Count)
	}
	if len(issue.Examples) != 5 {
		t.Fatalf("examples capped at 5: got %d", len(issue.Examples))
	}
	if issue.Examples[0].ReviewText != "review 7" {
		t.Errorf("examples should start with the most recent: %q", issue.Examples[0].ReviewText)
	}
}

func TestCompileRecommendations(t *testing.T) {
	var reviews []reviewFact
	var aspects []aspectFact

	// Four issue categories; recommendations cover only the top three.
	for i, category := range []string{"service", "price", "food", "parking"} {
		for j := 0; j <= i; j++ {
			id := uuid.New()
			reviews = append(reviews, reviewFact{ID: id, Date: day(j), Sentiment: engine.Negative})
			aspects = append(aspects, aspectFact{ReviewID: id, Category: category, Sentiment: engine.Negative})
		}
	}

	report := compile(reviews, aspects)

	if len(report.TopIssues) != 4 {
		t.Fatalf("issues: got %d", len(report.TopIssues))
	}
	if len(report.Recommendations) != 3 {
		t.Fatalf("recommendations: got %d, want 3", len(report.Recommendations))
	}

	if !strings.Contains(report.Recommendations[0], "parking") {
		t.Errorf("top recommendation should name the worst category: %q", report.Recommendations[0])
	}
	if !strings.Contains(report.Recommendations[0], "4 customer complaints") {
		t.Errorf("plural phrasing: %q", report.Recommendations[0])
	}

	// service has exactly one complaint; it ranks last and is excluded
	// from recommendations, so check singular phrasing directly.
	single := compile(
		[]reviewFact{{ID: reviews[0].ID, Date: day(0), Sentiment: engine.Negative}},
		[]aspectFact{{ReviewID: reviews[0].ID, Category: "service", Sentiment: engine.Negative}},
	)
	if !strings.Contains(single.Recommendations[0], "1 customer complaint detected") {
		t.Errorf("singular phrasing: %q", single.Recommendations[0])
	}
}

func TestCompileCategoryBreakdown(t *testing.T) {
	id := uuid.New()
	reviews := []reviewFact{{ID: id, Date: day(0), Sentiment: engine.Positive}}
	aspects := []aspectFact{
		{ReviewID: id, Category: "food", Sentiment: engine.Positive},
		{ReviewID: id, Category: "food", Sentiment: engine.Negative},
		{ReviewID: id, Category: "food", Sentiment: engine.Neutral},
		{ReviewID: id, Category: "", Sentiment: engine.Negative},
	}

	report := compile(reviews, aspects)

	if len(report.CategoryBreakdown) != 1 {
		t.Fatalf("blank categories must be skipped: %+v", report.CategoryBreakdown)
	}

	food := report.CategoryBreakdown[0]
	if food.Positive != 1 || food.Negative != 1 || food.Neutral != 1 || food.Total != 3 {
		t.Errorf("breakdown: %+v", food)
	}
}
