package submissions

import (
	"errors"
	"net/http"
)

// Domain errors for submission operations.
var (
	ErrValidation = errors.New("invalid submission")
	ErrNotFound   = errors.New("submission not found")
	ErrDuplicate  = errors.New("submission already exists")
)

// MapHTTPStatus maps submission domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
