package api

import (
	"net/http"

	"github.com/belli/taskify/internal/api/shared"
)

// HealthStatusUp is reported while the process is serving requests.
const HealthStatusUp = "UP"

// Health handles GET /health. It has no dependencies, so it reports UP as
// long as the server can answer at all.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: HealthStatusUp})
}
