package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	SerpAPI  SerpAPI    `mapstructure:",squash"`
	Server   Server     `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	MCPPath            string        `mapstructure:"MCP_PATH"`
	CORSAllowedOrigins []string      `mapstructure:"HTTP_CORS_ALLOWED_ORIGINS"`
}

// SerpAPI holds the upstream flight data provider configuration.
type SerpAPI struct {
	APIKey     string        `mapstructure:"SERPAPI_KEY"`
	BaseURL    string        `mapstructure:"SERPAPI_BASE_URL"`
	Timeout    time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
	MaxRetries int           `mapstructure:"SERPAPI_MAX_RETRIES"`
	RetryDelay time.Duration `mapstructure:"SERPAPI_RETRY_DELAY"`
	Language   string        `mapstructure:"SERPAPI_LANGUAGE"`
}

// Server identifies this server to MCP clients.
type Server struct {
	Name    string `mapstructure:"SERVER_NAME"`
	Version string `mapstructure:"SERVER_VERSION"`
}
