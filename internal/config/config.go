// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// TikaURL selects the Apache Tika extractor when set; otherwise the
	// local PDF/DOCX extractor is used.
	TikaURL string `env:"TIKA_URL"`

	// AI enrichment (optional; absent key disables it entirely)
	OpenRouterAPIKey  string        `env:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterModel   string        `env:"OPENROUTER_MODEL" envDefault:"meta-llama/llama-3.3-70b-instruct:free"`
	AITimeout         time.Duration `env:"AI_TIMEOUT" envDefault:"20s"`
	// AIResumePrefix / AIJobPrefix bound how much raw text is sent upstream.
	AIResumePrefix int `env:"AI_RESUME_PREFIX" envDefault:"4000"`
	AIJobPrefix    int `env:"AI_JOB_PREFIX" envDefault:"1000"`

	// MinResumeChars rejects uploads whose extracted text is too short to score.
	MinResumeChars int `env:"MIN_RESUME_CHARS" envDefault:"50"`
	// MaxJobDescChars bounds the optional job description form field.
	MaxJobDescChars int `env:"MAX_JOB_DESC_CHARS" envDefault:"20000"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"resume-analyzer"`

	MaxUploadMB           int64         `env:"MAX_UPLOAD_MB" envDefault:"10"`
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"30"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	// Temp-file janitor for upload spool files.
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"1h"`
	TmpMaxAge       time.Duration `env:"TMP_MAX_AGE" envDefault:"2h"`
}

// AIEnabled reports whether the external AI enrichment collaborator is configured.
func (c Config) AIEnabled() bool { return c.OpenRouterAPIKey != "" }

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }
