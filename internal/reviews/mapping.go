package reviews

import (
	"net/url"

	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/pkg/query"
	"github.com/reviewpulse/pulse/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "reviews", "r").
	Project("id", "ID").
	Project("tenant_id", "TenantID").
	Project("text", "Text").
	Project("customer_name", "CustomerName").
	Project("rating", "Rating").
	Project("date", "Date").
	Project("overall_sentiment", "OverallSentiment")

var defaultSort = query.SortField{
	Field:      "Date",
	Descending: true,
}

// Filters contains optional filtering criteria for review queries. Nil
// fields are ignored. Sentiment and Category match against extracted
// aspects: a review qualifies when at least one aspect satisfies every
// set filter.
type Filters struct {
	Sentiment *string `json:"sentiment,omitempty"`
	Category  *string `json:"category,omitempty"`
}

// Apply adds filter conditions to a query builder. Both filters set means
// a single aspect must match both, not one aspect each.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	switch {
	case f.Sentiment != nil && f.Category != nil:
		b.WhereRaw(
			"EXISTS (SELECT 1 FROM public.aspect_facts a WHERE a.review_id = r.id AND a.sentiment = $%d AND a.category = $%d)",
			*f.Sentiment, *f.Category,
		)
	case f.Sentiment != nil:
		b.WhereRaw(
			"EXISTS (SELECT 1 FROM public.aspect_facts a WHERE a.review_id = r.id AND a.sentiment = $%d)",
			*f.Sentiment,
		)
	case f.Category != nil:
		b.WhereRaw(
			"EXISTS (SELECT 1 FROM public.aspect_facts a WHERE a.review_id = r.id AND a.category = $%d)",
			*f.Category,
		)
	}
	return b
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return f.Sentiment != nil || f.Category != nil
}

// Match reports whether an aspect satisfies every set filter.
func (f Filters) Match(a engine.Aspect) bool {
	if f.Sentiment != nil && string(a.Sentiment) != *f.Sentiment {
		return false
	}
	if f.Category != nil && a.Category != *f.Category {
		return false
	}
	return true
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("sentiment"); s != "" {
		f.Sentiment = &s
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	return f
}

func scanReview(s repository.Scanner) (Review, error) {
	var r Review
	err := s.Scan(
		&r.ID,
		&r.TenantID,
		&r.Text,
		&r.CustomerName,
		&r.Rating,
		&r.Date,
		&r.OverallSentiment,
	)
	return r, err
}

type aspectRow struct {
	ReviewID string
	Aspect   engine.Aspect
}

func scanAspectRow(s repository.Scanner) (aspectRow, error) {
	var row aspectRow
	err := s.Scan(
		&row.ReviewID,
		&row.Aspect.Term,
		&row.Aspect.Category,
		&row.Aspect.Sentiment,
	)
	return row, err
}
