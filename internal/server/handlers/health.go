package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"planets-generator/internal/shared/errors"
	"planets-generator/internal/shared/response"
	"planets-generator/internal/topology"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Presets   int    `json:"presets"`
}

type HealthHandler struct {
	registry *topology.Registry
	now      func() time.Time
}

func NewHealthHandler(registry *topology.Registry) *HealthHandler {
	return &HealthHandler{registry: registry, now: time.Now}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	status := "healthy"
	presets := len(h.registry.IDs())
	if _, ok := h.registry.Get(topology.DefaultPreset); !ok {
		status = "degraded"
		logger.Warn("Default topology preset missing from registry", "preset", topology.DefaultPreset)
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Presets:   presets,
	}

	response.Success(w, http.StatusOK, resp)
}
