package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"planets-generator/internal/shared/errors"
	"planets-generator/internal/shared/response"
	"planets-generator/internal/universe"
)

const maxBodyBytes = 1 << 20 // 1 MB

const invariantMessage = "the generator produced an inconsistent result; please report the seed and config"

type UniverseHandler struct {
	service *universe.Service
}

func NewUniverseHandler(service *universe.Service) *UniverseHandler {
	return &UniverseHandler{service: service}
}

// GenerateUniverse handles POST /api/universes/generate
func (h *UniverseHandler) GenerateUniverse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate_universe")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	req, err := decodeRequest(w, r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	generation, err := h.service.GenerateUniverse(ctx, req)
	if err != nil {
		fail(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, generation)
}

// GenerateSystem handles POST /api/systems/{index}/generate
func (h *UniverseHandler) GenerateSystem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate_system")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	indexStr := r.PathValue("index")
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		response.Error(w, r, logger, errors.Validationf("invalid system index %q", indexStr))
		return
	}

	req, err := decodeRequest(w, r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if req.Systems != 0 {
		response.Error(w, r, logger, errors.Validation("systems cannot be set when generating a single system"))
		return
	}

	generation, err := h.service.GenerateSystem(ctx, req, index)
	if err != nil {
		fail(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, generation)
}

// GetPresets handles GET /api/presets
func (h *UniverseHandler) GetPresets(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_presets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.service.Presets())
}

// GetPreset handles GET /api/presets/{id}
func (h *UniverseHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_preset")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	preset, err := h.service.Preset(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, preset)
}

// GetDefaultConfig handles GET /api/config/default
func (h *UniverseHandler) GetDefaultConfig(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_default_config")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.service.DefaultConfig())
}

// fail keeps invariant details in the logs and out of the response body.
func fail(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if errors.IsType(err, errors.ErrorTypeInvariant) {
		response.ErrorWithMessage(w, r, logger, err, invariantMessage)
		return
	}
	response.Error(w, r, logger, err)
}

// decodeRequest reads the optional request body. An empty body asks for a
// random seed with the default config.
func decodeRequest(w http.ResponseWriter, r *http.Request) (universe.GenerateRequest, error) {
	var req universe.GenerateRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return req, errors.WrapValidation("failed to read request body", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.WrapValidation("invalid JSON in request body", err)
	}
	return req, nil
}
