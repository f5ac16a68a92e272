package tenants

import (
	"errors"
	"net/http"
)

// Domain errors for tenant operations.
var (
	ErrNotFound  = errors.New("tenant not found")
	ErrDuplicate = errors.New("tenant already exists")
)

// MapHTTPStatus maps tenant domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
