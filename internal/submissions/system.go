package submissions

import (
	"context"

	"github.com/reviewpulse/pulse/internal/live"
)

// System defines the public contract of the ingestion queue.
type System interface {
	Handler(hub *live.Hub) *Handler

	// Enqueue validates and inserts a pending submission.
	Enqueue(ctx context.Context, cmd EnqueueCommand) (*Submission, error)

	// Find returns a single submission by ID.
	Find(ctx context.Context, id int64) (*Submission, error)

	// ClaimBatch atomically flips up to limit pending submissions to
	// processing, oldest first, and returns the claimed rows. Concurrent
	// callers never claim the same submission.
	ClaimBatch(ctx context.Context, limit int) ([]Submission, error)

	// MarkFailed moves a claimed submission to its failed terminal status.
	MarkFailed(ctx context.Context, id int64) error
}
