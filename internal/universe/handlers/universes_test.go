package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planets-generator/internal/assembly"
	"planets-generator/internal/shared/config"
	"planets-generator/internal/shared/logger"
	"planets-generator/internal/shared/response"
	"planets-generator/internal/topology"
	"planets-generator/internal/universe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	return newTestMuxWith(t, topology.NewRegistry())
}

func newTestMuxWith(t *testing.T, registry *topology.Registry) *http.ServeMux {
	t.Helper()
	pipeline := assembly.NewPipeline(registry, logger.Discard())
	svc, err := universe.NewService(pipeline, registry, config.GeneratorConfig{
		DefaultPreset:   topology.PresetClassic,
		CacheSize:       8,
		MaxBatchSystems: 4,
		BatchWorkers:    2,
	}, logger.Discard())
	require.NoError(t, err)

	h := NewUniverseHandler(svc)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/universes/generate", h.GenerateUniverse)
	mux.HandleFunc("/api/systems/{index}/generate", h.GenerateSystem)
	mux.HandleFunc("/api/presets", h.GetPresets)
	mux.HandleFunc("/api/presets/{id}", h.GetPreset)
	mux.HandleFunc("/api/config/default", h.GetDefaultConfig)
	return mux
}

func serve(mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerateUniverseEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := serve(mux, http.MethodPost, "/api/universes/generate",
		`{"seed": 42, "systems": 2, "config": {"enable_comets": false}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Seed          string          `json:"seed"`
		SeedGenerated bool            `json:"seed_generated"`
		SystemCount   int             `json:"system_count"`
		Preset        string          `json:"preset"`
		Entities      json.RawMessage `json:"entities"`
		Stats         struct {
			Systems int `json:"systems"`
			Comets  int `json:"comets"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "42", body.Seed)
	assert.False(t, body.SeedGenerated)
	assert.Equal(t, 2, body.SystemCount)
	assert.Equal(t, topology.PresetClassic, body.Preset)
	assert.NotEmpty(t, body.Entities)
	assert.Equal(t, 2, body.Stats.Systems)
	assert.Zero(t, body.Stats.Comets)
}

func TestGenerateUniverseAcceptsLargeIntegerSeed(t *testing.T) {
	mux := newTestMux(t)

	rec := serve(mux, http.MethodPost, "/api/universes/generate", `{"seed": 18446744073709551615}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	numeric := rec.Body.String()

	var body struct {
		Seed string `json:"seed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "18446744073709551615", body.Seed)

	rec = serve(mux, http.MethodPost, "/api/universes/generate", `{"seed": "18446744073709551615"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, numeric, rec.Body.String())
}

func TestGenerateUniverseIsByteStable(t *testing.T) {
	mux := newTestMux(t)
	payload := `{"seed": "stable", "systems": 3}`

	first := serve(mux, http.MethodPost, "/api/universes/generate", payload)
	second := serve(newTestMux(t), http.MethodPost, "/api/universes/generate", payload)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGenerateUniverseEmptyBody(t *testing.T) {
	rec := serve(newTestMux(t), http.MethodPost, "/api/universes/generate", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Seed          string `json:"seed"`
		SeedGenerated bool   `json:"seed_generated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.SeedGenerated)
	assert.NotEmpty(t, body.Seed)
}

func TestGenerateUniverseErrors(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name      string
		method    string
		body      string
		wantCode  int
		wantError string
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed, "method_not_allowed"},
		{"malformed json", http.MethodPost, `{"seed":`, http.StatusBadRequest, "validation"},
		{"unknown top level field", http.MethodPost, `{"seed": "a", "galaxies": 2}`, http.StatusBadRequest, "validation"},
		{"float seed", http.MethodPost, `{"seed": 1.5}`, http.StatusBadRequest, "validation"},
		{"slider out of range", http.MethodPost, `{"seed": "a", "config": {"belt_density": -0.1}}`, http.StatusBadRequest, "validation"},
		{"too many systems", http.MethodPost, `{"seed": "a", "systems": 5}`, http.StatusBadRequest, "validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, tt.method, "/api/universes/generate", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

func TestGenerateSystemEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := serve(mux, http.MethodPost, "/api/systems/3/generate", `{"seed": "alpha"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		SystemCount int `json:"system_count"`
		Entities    struct {
			Systems map[string]struct {
				Index int `json:"index"`
			} `json:"systems"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.SystemCount)
	require.Len(t, body.Entities.Systems, 1)
	for _, sys := range body.Entities.Systems {
		assert.Equal(t, 3, sys.Index)
	}
}

func TestGenerateSystemErrors(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name     string
		path     string
		body     string
		wantCode int
	}{
		{"non numeric index", "/api/systems/abc/generate", "", http.StatusBadRequest},
		{"negative index", "/api/systems/-1/generate", "", http.StatusBadRequest},
		{"index beyond limit", "/api/systems/4/generate", "", http.StatusBadRequest},
		{"systems in body", "/api/systems/0/generate", `{"systems": 2}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestGetPresetsEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := serve(mux, http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog universe.PresetCatalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Equal(t, topology.PresetClassic, catalog.Default)
	assert.Len(t, catalog.Presets, len(topology.Builtins()))

	rec = serve(mux, http.MethodPost, "/api/presets", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGetPresetEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := serve(mux, http.MethodGet, "/api/presets/deepHierarchy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary topology.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, topology.PresetDeepHierarchy, summary.ID)

	rec = serve(mux, http.MethodGet, "/api/presets/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error)
}

func TestInvariantDetailsStayInLogs(t *testing.T) {
	registry := topology.NewRegistry()
	preset := topology.Builtins()[0]
	preset.ID = "broken"
	preset.SuggestedOverrides = map[string]float64{"warp_factor": 0.5}
	require.NoError(t, registry.Register(preset))
	mux := newTestMuxWith(t, registry)

	rec := serve(mux, http.MethodPost, "/api/universes/generate",
		`{"seed": "a", "config": {"topology_preset": "broken", "use_preset_suggestions": true}}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "invariant", body.Error)
	assert.Equal(t, invariantMessage, body.Message)
	assert.NotContains(t, rec.Body.String(), "warp_factor")
}

func TestGetDefaultConfigEndpoint(t *testing.T) {
	rec := serve(newTestMux(t), http.MethodGet, "/api/config/default", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Config  map[string]any `json:"config"`
		Sliders []string       `json:"sliders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, topology.PresetClassic, body.Config["topology_preset"])
	assert.Contains(t, body.Sliders, "belt_density")
}
