// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/reviewpulse/pulse/internal/config"
	"github.com/reviewpulse/pulse/pkg/middleware"
	"github.com/reviewpulse/pulse/pkg/module"
)

// NewModule creates the API module from a pre-built runtime and domain.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
