package analytics

import (
	"log/slog"
	"net/http"

	"github.com/reviewpulse/pulse/pkg/handlers"
	"github.com/reviewpulse/pulse/pkg/routes"
)

// Handler provides the HTTP endpoint for tenant analytics.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "analytics"),
	}
}

// Routes returns the route group definition for the analytics endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tenants",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/analytics", Handler: h.Report},
		},
	}
}

// Report computes the dashboard for a tenant. An unknown period value
// falls back to the unbounded window rather than erroring.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	period := ParsePeriod(r.URL.Query().Get("period"))

	report, err := h.sys.Report(r.Context(), r.PathValue("id"), period)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
