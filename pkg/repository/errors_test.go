package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/reviewpulse/pulse/pkg/repository"
)

func TestMapError(t *testing.T) {
	notFound := errors.New("not found")
	duplicate := errors.New("duplicate")
	other := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, notFound},
		{"wrapped no rows", fmt.Errorf("find: %w", sql.ErrNoRows), notFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, duplicate},
		{"other pg error", &pgconn.PgError{Code: "23503"}, &pgconn.PgError{Code: "23503"}},
		{"passthrough", other, other},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := repository.MapError(tc.err, notFound, duplicate)
			if tc.want == nil {
				if got != nil {
					t.Errorf("got %v, want nil", got)
				}
				return
			}

			var wantPg *pgconn.PgError
			if errors.As(tc.want, &wantPg) {
				var gotPg *pgconn.PgError
				if !errors.As(got, &gotPg) || gotPg.Code != wantPg.Code {
					t.Errorf("got %v, want pg error %s", got, wantPg.Code)
				}
				return
			}

			if !errors.Is(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"foreign key", &pgconn.PgError{Code: "23503"}, true},
		{"wrapped foreign key", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := repository.IsForeignKeyViolation(tc.err); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
