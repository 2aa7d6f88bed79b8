package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

const apiKeyEnv = "SERPAPI_KEY"

var ErrMissingAPIKey = fmt.Errorf("%s is required", apiKeyEnv)

var defaults = map[string]any{
	"LOG_LEVEL":                 "info",
	"HTTP_PORT":                 8001,
	"HTTP_TIMEOUT":              "30s",
	"MCP_PATH":                  "/mcp",
	"HTTP_CORS_ALLOWED_ORIGINS": "*",
	"SERPAPI_BASE_URL":          "https://serpapi.com/search",
	"SERPAPI_TIMEOUT":           "15s",
	"SERPAPI_MAX_RETRIES":       1,
	"SERPAPI_RETRY_DELAY":       "200ms",
	"SERPAPI_LANGUAGE":          "en",
	"SERVER_NAME":               "Flight Search MCP Server",
	"SERVER_VERSION":            "1.0.0",
}

// MustInitConfig is InitConfig that panics on error.
func MustInitConfig(configFile string) Config {
	cfg, err := InitConfig(configFile)
	if err != nil {
		slog.Error("cannot load config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// InitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func InitConfig(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	// Automatically bind all environment variables from Config struct
	bindEnvFromStruct(vpr)

	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.SerpAPI.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", c.HTTP.Port)
	}

	if !strings.HasPrefix(c.HTTP.MCPPath, "/") {
		return errors.New("MCP_PATH must start with /")
	}

	return nil
}

// LogValue hides the upstream credential when the config is logged.
func (c Config) LogValue() slog.Value {
	redacted := c
	if redacted.SerpAPI.APIKey != "" {
		redacted.SerpAPI.APIKey = "[redacted]"
	}

	return slog.AnyValue(configView(redacted))
}

// configView drops the LogValuer method so LogValue does not recurse.
type configView Config

// bindEnvFromStruct automatically binds environment variables based on mapstructure tags using reflection
func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			// If it's an embedded struct without a tag, recurse
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		envVar := parts[0]
		isSquash := false
		for _, p := range parts {
			if strings.TrimSpace(p) == "squash" {
				isSquash = true
				break
			}
		}

		if isSquash && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar != "" {
			_ = vpr.BindEnv(envVar)

			// A JSON array in a slice variable is decoded, anything else is left to the comma splitter.
			if field.Type.Kind() == reflect.Slice {
				val := vpr.Get(envVar)
				if s, ok := val.(string); ok && strings.HasPrefix(strings.TrimSpace(s), "[") {
					var jsonVal []any
					if err := json.Unmarshal([]byte(s), &jsonVal); err == nil {
						vpr.Set(envVar, jsonVal)
					}
				}
			}
		}
	}
}
