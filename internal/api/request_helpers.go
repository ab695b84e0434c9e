package api

import (
	"net/http"
	"strconv"

	"github.com/belli/taskify/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a positive task id from the named URL path parameter.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// taskLocation is the canonical URL path of a task resource.
func taskLocation(id int64) string {
	return "/tasks/" + strconv.FormatInt(id, 10)
}
