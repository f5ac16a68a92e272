package main

import (
	"encoding/json"
	"net/http"

	"github.com/reviewpulse/pulse/internal/api"
	"github.com/reviewpulse/pulse/internal/config"
	"github.com/reviewpulse/pulse/internal/infrastructure"
	"github.com/reviewpulse/pulse/internal/live"
	"github.com/reviewpulse/pulse/pkg/module"
)

type Modules struct {
	API *module.Module
}

func NewModules(cfg *config.Config, runtime *api.Runtime, domain *api.Domain) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

// buildRouter wires health probes and the websocket endpoint as native
// routes. The websocket upgrade bypasses module middleware so the hijacked
// connection never passes through response wrappers.
func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	ws := live.NewHandler(infra.Hub, infra.Logger)
	router.HandleNative("GET /ws/{tenant_id}", ws.Serve)

	return router
}
