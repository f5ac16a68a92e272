package submissions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/reviewpulse/pulse/internal/live"
	"github.com/reviewpulse/pulse/pkg/repository"
)

const submissionColumns = "id, tenant_id, text, customer_name, rating, submitted_at, status, model_type, created_at"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a submission repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "submissions"),
	}
}

func (r *repo) Handler(hub *live.Hub) *Handler {
	return NewHandler(r, hub, r.logger)
}

func (r *repo) Enqueue(ctx context.Context, cmd EnqueueCommand) (*Submission, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	cmd.Normalize()

	q := fmt.Sprintf(`
		INSERT INTO raw_submissions(tenant_id, text, customer_name, rating, model_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, submissionColumns)

	args := []any{cmd.TenantID, cmd.Text, cmd.CustomerName, *cmd.Rating, cmd.ModelType}

	s, err := repository.QueryOne(ctx, r.db, q, args, scanSubmission)
	if err != nil {
		// Submissions reference a seeded tenant; an unknown id fails the
		// foreign key and is the caller's mistake, not a server fault.
		if repository.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: unknown tenant_id %q", ErrValidation, cmd.TenantID)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("submission enqueued", "id", s.ID, "tenant_id", s.TenantID)
	return &s, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Submission, error) {
	q := fmt.Sprintf("SELECT %s FROM raw_submissions WHERE id = $1", submissionColumns)

	s, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanSubmission)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}

// ClaimBatch performs the claim as a single conditional update so only one
// concurrent claimant can win a row. SKIP LOCKED keeps overlapping cycles
// from blocking on each other.
func (r *repo) ClaimBatch(ctx context.Context, limit int) ([]Submission, error) {
	q := fmt.Sprintf(`
		UPDATE raw_submissions
		SET status = $1
		WHERE id IN (
			SELECT id FROM raw_submissions
			WHERE status = $2
			ORDER BY created_at ASC
			LIMIT $3
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s`, submissionColumns)

	args := []any{StatusProcessing, StatusPending, limit}

	claimed, err := repository.QueryMany(ctx, r.db, q, args, scanSubmission)
	if err != nil {
		return nil, fmt.Errorf("claim batch: %w", err)
	}

	if len(claimed) > 0 {
		r.logger.Info("batch claimed", "count", len(claimed))
	}
	return claimed, nil
}

func (r *repo) MarkFailed(ctx context.Context, id int64) error {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE raw_submissions SET status = $1 WHERE id = $2 AND status = $3",
		StatusFailed, id, StatusProcessing,
	)
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Warn("submission failed", "id", id)
	return nil
}

func scanSubmission(s repository.Scanner) (Submission, error) {
	var sub Submission
	err := s.Scan(
		&sub.ID,
		&sub.TenantID,
		&sub.Text,
		&sub.CustomerName,
		&sub.Rating,
		&sub.SubmittedAt,
		&sub.Status,
		&sub.ModelType,
		&sub.CreatedAt,
	)
	return sub, err
}
