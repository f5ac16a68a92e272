package accounts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/reviewpulse/pulse/pkg/handlers"
	"github.com/reviewpulse/pulse/pkg/routes"
)

// Handler provides HTTP endpoints for login and the demo account listing.
type Handler struct {
	sys    *System
	logger *slog.Logger
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse echoes the authenticated user and their tenant.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    LoginUser   `json:"user"`
	Tenant  LoginTenant `json:"tenant"`
}

// LoginUser identifies the authenticated user.
type LoginUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginTenant identifies the tenant the account belongs to.
type LoginTenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys *System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "accounts"),
	}
}

// Routes returns the route group definition for account endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/accounts",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "GET", Pattern: "/demo", Handler: h.Demo},
		},
	}
}

// Login authenticates a tenant owner.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("malformed request body"))
		return
	}

	account, err := h.sys.Authenticate(req.Email, req.Password)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User: LoginUser{
			Email: account.Email,
			Name:  account.Name,
		},
		Tenant: LoginTenant{
			ID:   account.TenantID,
			Name: account.Name,
			Kind: account.Kind,
		},
	})
}

// Demo lists the configured demo accounts for the login screen.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Demo())
}
