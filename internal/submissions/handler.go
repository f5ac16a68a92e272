package submissions

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/reviewpulse/pulse/internal/live"
	"github.com/reviewpulse/pulse/pkg/handlers"
	"github.com/reviewpulse/pulse/pkg/routes"
)

// Handler provides HTTP endpoints for submission intake and status lookup.
type Handler struct {
	sys    System
	hub    *live.Hub
	logger *slog.Logger
}

// SubmitResponse acknowledges an accepted review submission.
type SubmitResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ReviewID int64  `json:"review_id"`
}

// NewHandler creates a Handler with the given system, hub, and logger.
func NewHandler(sys System, hub *live.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		hub:    hub,
		logger: logger.With("handler", "submissions"),
	}
}

// Routes returns the route group definition for submission endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/submissions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// Submit accepts a raw review, enqueues it for analysis, and responds
// immediately. Analysis happens asynchronously in the dispatcher.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var cmd EnqueueCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: malformed request body", ErrValidation))
		return
	}

	sub, err := h.sys.Enqueue(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	// Delivery to live listeners is best effort; intake already succeeded.
	h.hub.Broadcast(
		live.ReviewReceived(sub.ID, sub.TenantID, sub.CustomerName, sub.Rating, sub.Text),
		sub.TenantID,
	)

	handlers.RespondJSON(w, http.StatusAccepted, SubmitResponse{
		Success:  true,
		Message:  "Review received! Analysis in progress...",
		ReviewID: sub.ID,
	})
}

// Find returns the submission with its current processing status.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: invalid submission id", ErrValidation))
		return
	}

	sub, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sub)
}
