package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planets-generator/internal/topology"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(topology.NewRegistry())
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/server/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "2024-05-01T12:00:00Z", body.Timestamp)
	assert.Equal(t, len(topology.Builtins()), body.Presets)
}

func TestHealthHandlerRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(topology.NewRegistry()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/server/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
