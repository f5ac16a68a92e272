package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/reviewpulse/pulse/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// New creates an analytics repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "analytics"),
		now:    time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Report(ctx context.Context, tenantID string, period Period) (*Report, error) {
	cutoff := period.Window(r.now())

	reviews, err := r.loadReviews(ctx, tenantID, cutoff)
	if err != nil {
		return nil, err
	}

	aspects, err := r.loadAspects(ctx, tenantID, cutoff)
	if err != nil {
		return nil, err
	}

	return compile(reviews, aspects), nil
}

func (r *repo) loadReviews(ctx context.Context, tenantID string, cutoff *time.Time) ([]reviewFact, error) {
	q := "SELECT id, text, date, overall_sentiment FROM reviews WHERE tenant_id = $1"
	args := []any{tenantID}

	if cutoff != nil {
		q += " AND date >= $2"
		args = append(args, *cutoff)
	}

	facts, err := repository.QueryMany(ctx, r.db, q, args,
		func(s repository.Scanner) (reviewFact, error) {
			var f reviewFact
			err := s.Scan(&f.ID, &f.Text, &f.Date, &f.Sentiment)
			return f, err
		})
	if err != nil {
		return nil, fmt.Errorf("query review facts: %w", err)
	}
	return facts, nil
}

func (r *repo) loadAspects(ctx context.Context, tenantID string, cutoff *time.Time) ([]aspectFact, error) {
	q := `
		SELECT a.review_id, a.category, a.sentiment
		FROM aspect_facts a
		JOIN reviews r ON a.review_id = r.id
		WHERE r.tenant_id = $1`
	args := []any{tenantID}

	if cutoff != nil {
		q += " AND r.date >= $2"
		args = append(args, *cutoff)
	}

	facts, err := repository.QueryMany(ctx, r.db, q, args,
		func(s repository.Scanner) (aspectFact, error) {
			var f aspectFact
			err := s.Scan(&f.ReviewID, &f.Category, &f.Sentiment)
			return f, err
		})
	if err != nil {
		return nil, fmt.Errorf("query aspect facts: %w", err)
	}
	return facts, nil
}
