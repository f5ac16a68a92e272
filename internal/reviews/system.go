package reviews

import (
	"context"

	"github.com/google/uuid"

	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/internal/submissions"
	"github.com/reviewpulse/pulse/pkg/pagination"
)

// System defines the public contract for analyzed reviews.
type System interface {
	Handler() *Handler

	// List returns a page of a tenant's reviews with aspects attached.
	List(ctx context.Context, tenantID string, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Review], error)

	// Find returns a single review by ID with aspects attached.
	Find(ctx context.Context, id uuid.UUID) (*Review, error)

	// Finalize persists the analysis outcome for a claimed submission:
	// it inserts the review with its aspects and completes the submission
	// in a single transaction. Returns ErrConflict if the submission is
	// no longer in the processing status.
	Finalize(ctx context.Context, sub *submissions.Submission, overall engine.Sentiment, aspects []engine.Aspect) (*Review, error)

	// Stats returns a tenant's sentiment distribution and 7-day
	// positive trend.
	Stats(ctx context.Context, tenantID string) (*Stats, error)
}
