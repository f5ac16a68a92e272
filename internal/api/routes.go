package api

import (
	"net/http"

	"github.com/reviewpulse/pulse/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Submissions.Handler(runtime.Hub).Routes(),
		domain.Tenants.Handler().Routes(),
		domain.Reviews.Handler().Routes(),
		domain.Analytics.Handler().Routes(),
		domain.Accounts.Handler().Routes(),
	)
}
