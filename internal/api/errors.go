package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/belli/taskify/internal/api/shared"
	"github.com/belli/taskify/internal/domain"
	"github.com/belli/taskify/internal/service"
	"github.com/belli/taskify/internal/store"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err that carries no
// internal detail.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors
	var domainErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return "Task not found"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid task ID"

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)

	case errors.As(err, &domainErr):
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator output into a short message naming
// the first offending field, e.g. "Invalid title: required field".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	first := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", jsonFieldName(first.Field()), getValidationTagMessage(first.Tag()))
}

// jsonFieldName lowercases the leading letter of a Go field name; request
// structs use the lower camel JSON names.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	b := []byte(field)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes an error response for err. When message is empty the
// safe message derived from err is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), message, err)
}
