package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/major-advisor/internal/assets"
	"github.com/jonathan/major-advisor/internal/recommend"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var noMatch *recommend.ErrNoMatchedSkills
	var validation *ErrValidation
	switch {
	case errors.Is(err, assets.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.As(err, &noMatch), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
