// Package reviews holds analyzed reviews: the immutable records produced by
// the pipeline once a submission's sentiment analysis completes.
package reviews

import (
	"time"

	"github.com/google/uuid"

	"github.com/reviewpulse/pulse/internal/engine"
)

// Review is a finalized, analyzed review. Records are immutable after
// finalization; there is no update path.
type Review struct {
	ID               uuid.UUID        `json:"id"`
	TenantID         string           `json:"tenant_id"`
	Text             string           `json:"text"`
	CustomerName     string           `json:"customer_name"`
	Rating           float64          `json:"rating"`
	Date             time.Time        `json:"date"`
	OverallSentiment engine.Sentiment `json:"overall_sentiment"`
	Aspects          []engine.Aspect  `json:"aspects"`
}

// TrendPoint is one day of positive review volume for the stats trend.
type TrendPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
}

// Stats summarizes a tenant's review sentiment distribution plus the
// positive trend over the past seven days.
type Stats struct {
	TotalReviews int          `json:"totalReviews"`
	Positive     int          `json:"positive"`
	Negative     int          `json:"negative"`
	Neutral      int          `json:"neutral"`
	Trend        []TrendPoint `json:"trend"`
}
