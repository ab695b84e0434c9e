package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/belli/taskify/internal/api/shared"
	"github.com/belli/taskify/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	base, buf := logger.NewTestLogger(t)

	var seenTraceID string
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, seenTraceID)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "request started", entries[0]["msg"])
	assert.Equal(t, "/tasks", entries[0]["path"])
	for _, entry := range entries {
		assert.Equal(t, seenTraceID, entry["trace_id"])
	}
}

func TestTraceMiddlewareDistinctIDs(t *testing.T) {
	var ids []string
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, shared.GetTraceID(r.Context()))
	}))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	}

	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}
