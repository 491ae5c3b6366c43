package server

import (
	"log/slog"
	"net/http"

	"planets-generator/internal/middleware"
	serverHandlers "planets-generator/internal/server/handlers"
	"planets-generator/internal/topology"
	"planets-generator/internal/universe"
	universeHandlers "planets-generator/internal/universe/handlers"
)

type Routes struct {
	universeService *universe.Service
	registry        *topology.Registry
	rateLimiter     *middleware.RateLimiter
}

func NewRoutes(universeService *universe.Service, registry *topology.Registry, rateLimiter *middleware.RateLimiter) *Routes {
	return &Routes{
		universeService: universeService,
		registry:        registry,
		rateLimiter:     rateLimiter,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.registry)
	universeHandler := universeHandlers.NewUniverseHandler(r.universeService)

	// Catalog endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/presets", universeHandler.GetPresets)
	mux.HandleFunc("/api/presets/{id}", universeHandler.GetPreset)
	mux.HandleFunc("/api/config/default", universeHandler.GetDefaultConfig)

	// Generation endpoints (rate limited)
	mux.Handle("/api/universes/generate", r.rateLimiter.Limit(universeHandler.GenerateUniverse))
	mux.Handle("/api/systems/{index}/generate", r.rateLimiter.Limit(universeHandler.GenerateSystem))

	logger.Info("Routes configured successfully",
		"catalog_endpoints", []string{"/api/server/health", "/api/presets", "/api/presets/{id}", "/api/config/default"},
		"generation_endpoints", []string{"/api/universes/generate", "/api/systems/{index}/generate"},
	)

	return mux
}
