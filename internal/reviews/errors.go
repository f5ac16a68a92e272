package reviews

import (
	"errors"
	"net/http"
)

// Domain errors for review operations.
var (
	ErrNotFound  = errors.New("review not found")
	ErrDuplicate = errors.New("review already exists")
	ErrConflict  = errors.New("submission no longer claimed")
)

// MapHTTPStatus maps review domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
