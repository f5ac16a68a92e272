package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/internal/submissions"
	"github.com/reviewpulse/pulse/pkg/pagination"
	"github.com/reviewpulse/pulse/pkg/query"
	"github.com/reviewpulse/pulse/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	now        func() time.Time
}

// New creates a review repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "reviews"),
		pagination: pagination,
		now:        time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	tenantID string,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Review], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("TenantID", tenantID).
		WhereSearch(page.Search, "Text", "CustomerName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	revs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanReview)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	if err := r.attachAspects(ctx, revs); err != nil {
		return nil, err
	}

	// A filtered listing returns only the aspects that matched, not each
	// qualifying review's full aspect set.
	if filters.Active() {
		for i := range revs {
			kept := make([]engine.Aspect, 0, len(revs[i].Aspects))
			for _, a := range revs[i].Aspects {
				if filters.Match(a) {
					kept = append(kept, a)
				}
			}
			revs[i].Aspects = kept
		}
	}

	result := pagination.NewPageResult(revs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Review, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rev, err := repository.QueryOne(ctx, r.db, q, args, scanReview)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	revs := []Review{rev}
	if err := r.attachAspects(ctx, revs); err != nil {
		return nil, err
	}
	return &revs[0], nil
}

func (r *repo) Finalize(
	ctx context.Context,
	sub *submissions.Submission,
	overall engine.Sentiment,
	aspects []engine.Aspect,
) (*Review, error) {
	aspects = engine.Dedupe(aspects)

	insertReview := `
		INSERT INTO reviews(id, tenant_id, text, customer_name, rating, date, overall_sentiment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, tenant_id, text, customer_name, rating, date, overall_sentiment`

	insertArgs := []any{
		uuid.New(),
		sub.TenantID,
		sub.Text,
		sub.CustomerName,
		sub.Rating,
		sub.SubmittedAt,
		overall,
	}

	rev, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Review, error) {
		rev, err := repository.QueryOne(ctx, tx, insertReview, insertArgs, scanReview)
		if err != nil {
			return rev, err
		}

		for _, a := range aspects {
			if _, err := tx.ExecContext(
				ctx,
				"INSERT INTO aspect_facts(review_id, term, category, sentiment) VALUES ($1, $2, $3, $4)",
				rev.ID, a.Term, a.Category, a.Sentiment,
			); err != nil {
				return rev, fmt.Errorf("insert aspect: %w", err)
			}
		}

		// The submission completes only if this cycle still holds the
		// claim. A lost claim rolls back the review insert with it.
		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE raw_submissions SET status = $1 WHERE id = $2 AND status = $3",
			submissions.StatusCompleted, sub.ID, submissions.StatusProcessing,
		); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return rev, ErrConflict
			}
			return rev, err
		}

		return rev, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	rev.Aspects = aspects
	r.logger.Info("review finalized",
		"id", rev.ID,
		"submission_id", sub.ID,
		"tenant_id", rev.TenantID,
		"overall", rev.OverallSentiment,
		"aspects", len(rev.Aspects),
	)
	return &rev, nil
}

func (r *repo) Stats(ctx context.Context, tenantID string) (*Stats, error) {
	counts := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE overall_sentiment = 'positive'),
			COUNT(*) FILTER (WHERE overall_sentiment = 'negative'),
			COUNT(*) FILTER (WHERE overall_sentiment = 'neutral')
		FROM reviews
		WHERE tenant_id = $1`

	var stats Stats
	if err := r.db.QueryRowContext(ctx, counts, tenantID).Scan(
		&stats.TotalReviews,
		&stats.Positive,
		&stats.Negative,
		&stats.Neutral,
	); err != nil {
		return nil, fmt.Errorf("count sentiments: %w", err)
	}

	now := r.now()
	oldest := now.AddDate(0, 0, -(trendDays - 1)).Format(trendDayFormat)

	trend := `
		SELECT to_char(date::date, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM reviews
		WHERE tenant_id = $1
			AND overall_sentiment = 'positive'
			AND date::date >= $2::date
		GROUP BY day
		ORDER BY day ASC`

	points, err := repository.QueryMany(ctx, r.db, trend, []any{tenantID, oldest},
		func(s repository.Scanner) (TrendPoint, error) {
			var p TrendPoint
			err := s.Scan(&p.Date, &p.Positive)
			return p, err
		})
	if err != nil {
		return nil, fmt.Errorf("query trend: %w", err)
	}

	stats.Trend = fillTrend(points, now)
	return &stats, nil
}

const (
	trendDays      = 7
	trendDayFormat = "2006-01-02"
)

// fillTrend expands sparse per-day counts into exactly trendDays calendar
// buckets ending today, oldest first. Days without a positive review carry
// a zero count.
func fillTrend(points []TrendPoint, now time.Time) []TrendPoint {
	byDay := make(map[string]int, len(points))
	for _, p := range points {
		byDay[p.Date] = p.Positive
	}

	trend := make([]TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(trendDayFormat)
		trend = append(trend, TrendPoint{Date: day, Positive: byDay[day]})
	}
	return trend
}

// attachAspects loads aspect rows for the given reviews in one query and
// distributes them in place.
func (r *repo) attachAspects(ctx context.Context, revs []Review) error {
	if len(revs) == 0 {
		return nil
	}

	byID := make(map[string]*Review, len(revs))
	placeholders := make([]string, len(revs))
	args := make([]any, len(revs))
	for i := range revs {
		revs[i].Aspects = []engine.Aspect{}
		byID[revs[i].ID.String()] = &revs[i]
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = revs[i].ID
	}

	q := fmt.Sprintf(
		"SELECT review_id, term, category, sentiment FROM aspect_facts WHERE review_id IN (%s) ORDER BY id ASC",
		strings.Join(placeholders, ", "),
	)

	rows, err := repository.QueryMany(ctx, r.db, q, args, scanAspectRow)
	if err != nil {
		return fmt.Errorf("query aspects: %w", err)
	}

	for _, row := range rows {
		if rev, ok := byID[row.ReviewID]; ok {
			rev.Aspects = append(rev.Aspects, row.Aspect)
		}
	}

	return nil
}
