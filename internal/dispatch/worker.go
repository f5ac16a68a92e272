package dispatch

import (
	"context"

	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/internal/live"
	"github.com/reviewpulse/pulse/internal/submissions"
)

// process runs one submission through analysis to a terminal status.
// A claimed submission must complete or fail even when shutdown begins
// mid-flight, so the worker detaches from cancellation and relies on the
// shutdown timeout as the hard stop.
func (d *Dispatcher) process(ctx context.Context, sub submissions.Submission) {
	ctx = context.WithoutCancel(ctx)

	aspects, err := d.analyze(ctx, &sub)
	if err != nil {
		d.fail(ctx, &sub, err)
		return
	}

	overall := engine.DeriveOverall(aspects)

	rev, err := d.rt.Reviews.Finalize(ctx, &sub, overall, aspects)
	if err != nil {
		d.fail(ctx, &sub, err)
		return
	}

	d.rt.Hub.Broadcast(
		live.ReviewAnalyzed(
			sub.ID, sub.TenantID, sub.CustomerName, sub.Rating, sub.Text,
			len(rev.Aspects), overall,
		),
		sub.TenantID,
	)

	d.logger.Info("submission processed",
		"id", sub.ID,
		"review_id", rev.ID,
		"overall", overall,
		"aspects", len(rev.Aspects),
	)
}

// analyze resolves the engine for the submission's model type. A missing
// or unavailable engine is not an error; the review finalizes with no
// aspects and a neutral verdict.
func (d *Dispatcher) analyze(ctx context.Context, sub *submissions.Submission) ([]engine.Aspect, error) {
	e, ok := d.rt.Engines.Lookup(sub.ModelType)
	if !ok {
		d.logger.Warn("no engine for model type", "id", sub.ID, "model_type", sub.ModelType)
		return nil, nil
	}

	if !e.Available() {
		d.logger.Warn("engine unavailable", "id", sub.ID, "model_type", sub.ModelType)
		return nil, nil
	}

	return e.Analyze(ctx, sub.Text)
}

func (d *Dispatcher) fail(ctx context.Context, sub *submissions.Submission, err error) {
	d.logger.Error("submission processing failed", "id", sub.ID, "error", err)

	if markErr := d.rt.Queue.MarkFailed(ctx, sub.ID); markErr != nil {
		d.logger.Error("mark failed", "id", sub.ID, "error", markErr)
	}
}
