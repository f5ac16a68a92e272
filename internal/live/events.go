package live

import (
	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/pkg/formatting"
)

// Event types pushed to live subscribers.
const (
	EventNewReview      = "new_review"
	EventReviewAnalyzed = "review_analyzed"
)

// Event is the JSON envelope pushed over a live connection.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ReviewReceivedData is the payload for a new_review event.
type ReviewReceivedData struct {
	ID           int64   `json:"id"`
	TenantID     string  `json:"tenant_id"`
	CustomerName string  `json:"customer_name"`
	Rating       float64 `json:"rating"`
	Preview      string  `json:"preview"`
	Status       string  `json:"status"`
}

// ReviewAnalyzedData is the payload for a review_analyzed event.
type ReviewAnalyzedData struct {
	ID           int64            `json:"id"`
	TenantID     string           `json:"tenant_id"`
	CustomerName string           `json:"customer_name"`
	Rating       float64          `json:"rating"`
	Preview      string           `json:"preview"`
	AspectCount  int              `json:"aspect_count"`
	Sentiment    engine.Sentiment `json:"sentiment"`
}

// ReviewReceived builds the event announcing a freshly enqueued submission.
func ReviewReceived(id int64, tenantID, customerName string, rating float64, text string) Event {
	return Event{
		Type:    EventNewReview,
		Message: "New review received!",
		Data: ReviewReceivedData{
			ID:           id,
			TenantID:     tenantID,
			CustomerName: customerName,
			Rating:       rating,
			Preview:      formatting.Preview(text, formatting.PreviewLength),
			Status:       "pending",
		},
	}
}

// ReviewAnalyzed builds the event announcing a finished analysis.
func ReviewAnalyzed(id int64, tenantID, customerName string, rating float64, text string, aspectCount int, sentiment engine.Sentiment) Event {
	return Event{
		Type:    EventReviewAnalyzed,
		Message: "Review analysis completed!",
		Data: ReviewAnalyzedData{
			ID:           id,
			TenantID:     tenantID,
			CustomerName: customerName,
			Rating:       rating,
			Preview:      formatting.Preview(text, formatting.PreviewLength),
			AspectCount:  aspectCount,
			Sentiment:    sentiment,
		},
	}
}
