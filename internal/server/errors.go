package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-scanner/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAssistUnavailable indicates the assist endpoint was called without a
// configured model client
type ErrAssistUnavailable struct{}

func (e *ErrAssistUnavailable) Error() string {
	return "assist is not configured: set GEMINI_API_KEY"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var ingestionErr *ingestion.Error

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &ingestionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, new(*ErrAssistUnavailable)):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
