package api

import (
	"github.com/reviewpulse/pulse/internal/accounts"
	"github.com/reviewpulse/pulse/internal/analytics"
	"github.com/reviewpulse/pulse/internal/config"
	"github.com/reviewpulse/pulse/internal/reviews"
	"github.com/reviewpulse/pulse/internal/submissions"
	"github.com/reviewpulse/pulse/internal/tenants"
)

// Domain holds all domain systems that comprise the API. The dispatcher
// consumes the same Submissions and Reviews systems, so Domain is built
// once and shared rather than assembled inside the API module.
type Domain struct {
	Submissions submissions.System
	Reviews     reviews.System
	Analytics   analytics.System
	Tenants     tenants.System
	Accounts    *accounts.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	return &Domain{
		Submissions: submissions.New(
			runtime.Database.Connection(),
			runtime.Logger,
		),
		Reviews: reviews.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
		Analytics: analytics.New(
			runtime.Database.Connection(),
			runtime.Logger,
		),
		Tenants: tenants.New(
			runtime.Database.Connection(),
			runtime.Logger,
		),
		Accounts: accounts.New(&cfg.Accounts, runtime.Logger),
	}
}
