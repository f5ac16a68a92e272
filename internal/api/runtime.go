package api

import (
	"github.com/reviewpulse/pulse/internal/config"
	"github.com/reviewpulse/pulse/internal/infrastructure"
	"github.com/reviewpulse/pulse/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Hub:       infra.Hub,
		},
		Pagination: cfg.API.Pagination,
	}
}
