// Package analytics computes on-demand tenant dashboards from analyzed
// reviews: sentiment counts, per-category breakdowns, ranked complaint
// categories, and recommendations.
package analytics

// Report is the dashboard payload for one tenant and period.
type Report struct {
	TotalReviews      int             `json:"totalReviews"`
	PositiveCount     int             `json:"positiveCount"`
	NegativeCount     int             `json:"negativeCount"`
	NeutralCount      int             `json:"neutralCount"`
	CategoryBreakdown []CategoryStats `json:"categoryBreakdown"`
	TopIssues         []Issue         `json:"topIssues"`
	Recommendations   []string        `json:"recommendations"`
}

// CategoryStats counts aspect mentions per sentiment within one category.
type CategoryStats struct {
	Name     string `json:"name"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Neutral  int    `json:"neutral"`
	Total    int    `json:"total"`
}

// Issue is a complaint category ranked into the top issues list. Count is
// distinct reviews carrying a negative aspect in the category, not raw
// aspect mentions.
type Issue struct {
	Category string    `json:"category"`
	Count    int       `json:"count"`
	Severity string    `json:"severity"`
	Examples []Example `json:"examples"`
}

// Example is a truncated excerpt of a review that raised an issue.
type Example struct {
	Term       string `json:"term"`
	ReviewText string `json:"review_text"`
}

// Severity thresholds for issue classification by distinct-review count.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"

	highSeverityThreshold   = 10
	mediumSeverityThreshold = 5
)

func severity(count int) string {
	switch {
	case count > highSeverityThreshold:
		return SeverityHigh
	case count > mediumSeverityThreshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
