// Package dispatch drains the submission queue: a background loop claims
// pending submissions in batches and fans them out to analysis workers.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/internal/live"
	"github.com/reviewpulse/pulse/internal/reviews"
	"github.com/reviewpulse/pulse/internal/submissions"
)

// Queue is the slice of the submission system the dispatcher consumes.
type Queue interface {
	ClaimBatch(ctx context.Context, limit int) ([]submissions.Submission, error)
	MarkFailed(ctx context.Context, id int64) error
}

// Finalizer persists a completed analysis.
type Finalizer interface {
	Finalize(ctx context.Context, sub *submissions.Submission, overall engine.Sentiment, aspects []engine.Aspect) (*reviews.Review, error)
}

// Broadcaster pushes events to live subscribers.
type Broadcaster interface {
	Broadcast(event live.Event, tenantID string)
}

// Runtime bundles the dependencies dispatcher workers require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Queue   Queue
	Reviews Finalizer
	Engines *engine.Registry
	Hub     Broadcaster
	Logger  *slog.Logger
}
