package middleware

import (
	"log/slog"
	"net/http"

	"planets-generator/internal/shared/config"

	"github.com/rs/cors"
)

// Browsers only call the generation and catalog endpoints.
var allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}

type CORSMiddleware struct {
	*cors.Cors
}

func NewCORS(cfg config.FrontendConfig) *CORSMiddleware {
	logger := slog.With("component", "cors", "operation", "setup")
	logger.Debug("Setting up CORS middleware")

	allowedOrigins := []string{cfg.URL}

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: allowedMethods,
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
		Debug:          cfg.CORSDebug,
	})

	logger.Info("CORS middleware configured",
		"allowed_origins", allowedOrigins,
		"allowed_methods", allowedMethods,
		"debug_mode", cfg.CORSDebug,
	)

	return &CORSMiddleware{corsConfig}
}

func (c *CORSMiddleware) Middleware(h http.Handler) http.Handler {
	return c.Cors.Handler(h)
}
