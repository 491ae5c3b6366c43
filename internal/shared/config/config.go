package config

import (
	"fmt"
	"planets-generator/internal/shared/utils"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type FrontendConfig struct {
	URL       string
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string
	Format     string
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

type GeneratorConfig struct {
	DefaultPreset   string
	CacheSize       int
	MaxBatchSystems int
	BatchWorkers    int
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

// Load reads the configuration without touching GlobalConfig
func Load() (*Config, error) {
	config, err := load()
	if err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func load() (*Config, error) {
	config := &Config{
		Server:    loadServerConfig(),
		Frontend:  loadFrontendConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Generator: loadGeneratorConfig(),
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_WRITE_TIMEOUT_SECONDS", "30"))
	idleTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "8080"),
		Environment:  utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadFrontendConfig() FrontendConfig {
	corsDebug := utils.GetEnv("CORS_DEBUG", "") == "true"

	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: corsDebug,
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")
	jsonFormat := environment == "production" || utils.GetEnv("LOG_FORMAT", "text") == "json"

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		Format:     utils.GetEnv("LOG_FORMAT", "text"),
		JSONFormat: jsonFormat,
	}
}

func loadRateLimitConfig() RateLimitConfig {
	enabled := utils.GetEnv("RATE_LIMIT_ENABLED", "true") == "true"
	trustProxy := utils.GetEnv("RATE_LIMIT_TRUST_PROXY", "false") == "true"

	return RateLimitConfig{
		Enabled:           enabled,
		RequestsPerSecond: utils.GetEnvFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 5),
		BurstSize:         utils.GetEnvInt("RATE_LIMIT_BURST_SIZE", 10),
		TrustProxy:        trustProxy,
	}
}

func loadGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		DefaultPreset:   utils.GetEnv("GENERATOR_DEFAULT_PRESET", "classic"),
		CacheSize:       utils.GetEnvInt("GENERATOR_CACHE_SIZE", 128),
		MaxBatchSystems: utils.GetEnvInt("GENERATOR_MAX_BATCH_SYSTEMS", 64),
		BatchWorkers:    utils.GetEnvInt("GENERATOR_BATCH_WORKERS", 4),
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Generator.CacheSize <= 0 {
		return fmt.Errorf("GENERATOR_CACHE_SIZE must be positive")
	}

	if c.Generator.MaxBatchSystems <= 0 {
		return fmt.Errorf("GENERATOR_MAX_BATCH_SYSTEMS must be positive")
	}

	if c.Generator.BatchWorkers <= 0 {
		return fmt.Errorf("GENERATOR_BATCH_WORKERS must be positive")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND must be positive when rate limiting is enabled")
	}

	return nil
}
