package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort           = "8080"
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer      = "contabilidad-app"
	defaultReportCacheTTL = 10 * time.Minute
	defaultRateLimit      = "100-M"
	defaultAnomalyCron    = "@every 6h"
	defaultMigrationsPath = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Tokens are issued by the external identity provider; the API only validates them.
	JWTSecret string
	JWTIssuer string

	// Empty RedisURL disables the report cache, the redis limiter store and the worker.
	RedisURL       string
	ReportCacheTTL time.Duration

	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	AnomalyScanCron    string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REPORT_CACHE_TTL", defaultReportCacheTTL.String())
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("ANOMALY_SCAN_CRON", defaultAnomalyCron)

	// Actual environment variables override both defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		RedisURL:        v.GetString("REDIS_URL"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		AnomalyScanCron: v.GetString("ANOMALY_SCAN_CRON"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.AnomalyScanCron == "" {
		cfg.AnomalyScanCron = defaultAnomalyCron
	}

	ttlStr := v.GetString("REPORT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = defaultReportCacheTTL
		slog.Warn("Invalid value for REPORT_CACHE_TTL, using default",
			slog.String("value", ttlStr), slog.String("default", ttl.String()))
	}
	cfg.ReportCacheTTL = ttl

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
