package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recapd/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 120, cfg.Gemini.TimeoutSecs)
	assert.Equal(t, 8192, cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 120, cfg.Session.TTLMinutes)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RECAPD_GEMINI_API_KEY", "test-key")
	t.Setenv("RECAPD_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("RECAPD_SERVER_PORT", ":9090")
	t.Setenv("RECAPD_UPLOAD_MAX_FILE_SIZE_MB", "25")
	t.Setenv("RECAPD_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestValidate_MissingAPIKeyFailsStartup(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Empty(t, cfg.Gemini.APIKey)

	err = cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECAPD_GEMINI_API_KEY")
}

func TestValidate_WithAPIKey(t *testing.T) {
	t.Setenv("RECAPD_GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}

func TestSessionConfig_Durations(t *testing.T) {
	cfg := config.SessionConfig{TTLMinutes: 90, CleanupIntervalMinutes: 10}

	assert.Equal(t, "1h30m0s", cfg.TTL().String())
	assert.Equal(t, "10m0s", cfg.CleanupInterval().String())
}
