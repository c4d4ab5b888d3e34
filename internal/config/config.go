package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Upload  UploadConfig
	Session SessionConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// GeminiConfig holds settings for the generative-language service.
type GeminiConfig struct {
	APIKey          string `mapstructure:"api_key"`
	Model           string `mapstructure:"model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

// UploadConfig holds transcript upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// SessionConfig holds session retention settings.
type SessionConfig struct {
	TTLMinutes             int `mapstructure:"ttl_minutes"`
	CleanupIntervalMinutes int `mapstructure:"cleanup_interval_minutes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TTL returns the session time-to-live as a duration.
func (s *SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

// CleanupInterval returns the session cleaner tick interval.
func (s *SessionConfig) CleanupInterval() time.Duration {
	return time.Duration(s.CleanupIntervalMinutes) * time.Minute
}

// Load reads configuration from environment variables with the RECAPD_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RECAPD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout_secs", 120)
	v.SetDefault("gemini.max_output_tokens", 8192)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Session defaults
	v.SetDefault("session.ttl_minutes", 120)
	v.SetDefault("session.cleanup_interval_minutes", 15)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "RECAPD_SERVER_PORT",
		"server.read_timeout":              "RECAPD_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "RECAPD_SERVER_WRITE_TIMEOUT",
		"server.environment":               "RECAPD_SERVER_ENVIRONMENT",
		"gemini.api_key":                   "RECAPD_GEMINI_API_KEY",
		"gemini.model":                     "RECAPD_GEMINI_MODEL",
		"gemini.timeout_secs":              "RECAPD_GEMINI_TIMEOUT_SECS",
		"gemini.max_output_tokens":         "RECAPD_GEMINI_MAX_OUTPUT_TOKENS",
		"upload.max_file_size_mb":          "RECAPD_UPLOAD_MAX_FILE_SIZE_MB",
		"session.ttl_minutes":              "RECAPD_SESSION_TTL_MINUTES",
		"session.cleanup_interval_minutes": "RECAPD_SESSION_CLEANUP_INTERVAL_MINUTES",
		"log.level":                        "RECAPD_LOG_LEVEL",
		"log.format":                       "RECAPD_LOG_FORMAT",
		"cors.allowed_origins":             "RECAPD_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RECAPD_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RECAPD_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:          v.GetString("gemini.api_key"),
		Model:           v.GetString("gemini.model"),
		TimeoutSecs:     v.GetInt("gemini.timeout_secs"),
		MaxOutputTokens: v.GetInt("gemini.max_output_tokens"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Session = SessionConfig{
		TTLMinutes:             v.GetInt("session.ttl_minutes"),
		CleanupIntervalMinutes: v.GetInt("session.cleanup_interval_minutes"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}

// Validate checks that required settings are present. A missing Gemini
// API key is fatal at startup; no request is ever sent without it.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required: set RECAPD_GEMINI_API_KEY")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model is required")
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("upload.max_file_size_mb must be positive")
	}
	return nil
}
