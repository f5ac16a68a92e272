package reviews

import (
	"log/slog"
	"net/http"

	"github.com/reviewpulse/pulse/pkg/handlers"
	"github.com/reviewpulse/pulse/pkg/pagination"
	"github.com/reviewpulse/pulse/pkg/routes"
)

// Handler provides HTTP endpoints for analyzed review queries.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "reviews"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for tenant review endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tenants",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/reviews", Handler: h.List},
			{Method: "GET", Pattern: "/{id}/stats", Handler: h.Stats},
		},
	}
}

// List returns a paginated list of a tenant's analyzed reviews with
// optional sentiment and category filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), r.PathValue("id"), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Stats returns a tenant's sentiment distribution and positive trend.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Stats(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
