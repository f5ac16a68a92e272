package tenants

import (
	"log/slog"
	"net/http"

	"github.com/reviewpulse/pulse/pkg/handlers"
	"github.com/reviewpulse/pulse/pkg/routes"
)

// Handler provides HTTP endpoints for tenant lookups.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "tenants"),
	}
}

// Routes returns the route group definition for tenant endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tenants",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// List returns all tenants.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ts, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ts)
}

// Find returns a single tenant by its ID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	t, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}
