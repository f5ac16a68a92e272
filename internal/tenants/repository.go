package tenants

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/reviewpulse/pulse/pkg/repository"
)

const tenantColumns = "id, name, kind, description, created_at"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a tenant repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "tenants"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context) ([]Tenant, error) {
	q := fmt.Sprintf("SELECT %s FROM tenants ORDER BY name ASC", tenantColumns)

	ts, err := repository.QueryMany(ctx, r.db, q, nil, scanTenant)
	if err != nil {
		return nil, fmt.Errorf("query tenants: %w", err)
	}
	return ts, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Tenant, error) {
	q := fmt.Sprintf("SELECT %s FROM tenants WHERE id = $1", tenantColumns)

	t, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanTenant)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func scanTenant(s repository.Scanner) (Tenant, error) {
	var t Tenant
	err := s.Scan(&t.ID, &t.Name, &t.Kind, &t.Description, &t.CreatedAt)
	return t, err
}
