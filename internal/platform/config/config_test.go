package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REPORT_CACHE_TTL", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, defaultReportCacheTTL, cfg.ReportCacheTTL)
	assert.Equal(t, defaultRateLimit, cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REPORT_CACHE_TTL", "90s")
	t.Setenv("RATE_LIMIT", "5-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ANOMALY_SCAN_CRON", "0 */2 * * *")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 90*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, "5-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "0 */2 * * *", cfg.AnomalyScanCron)
}

func TestLoadConfigInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("REPORT_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultReportCacheTTL, cfg.ReportCacheTTL)
}
