package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		cfg := Load()

		if cfg.Server.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Server.Port)
		}
		if cfg.Database.Driver != "postgres" {
			t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
		}
		if cfg.Summary.CacheTTL != 5*time.Minute {
			t.Errorf("expected 5m cache ttl, got %s", cfg.Summary.CacheTTL)
		}
		if cfg.Summary.DefaultWindowDays != 30 {
			t.Errorf("expected 30 day window, got %d", cfg.Summary.DefaultWindowDays)
		}
		if len(cfg.Server.CORSAllowedOrigins) != 0 {
			t.Errorf("expected no CORS origins, got %v", cfg.Server.CORSAllowedOrigins)
		}
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("REDIS_ENABLED", "false")
		t.Setenv("SUMMARY_CACHE_TTL", "30s")
		t.Setenv("SUMMARY_DEFAULT_WINDOW_DAYS", "7")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
		t.Setenv("AUTH_JWT_ISSUER", "https://id.example.com")

		cfg := Load()

		if cfg.Server.Port != 9090 {
			t.Errorf("expected port 9090, got %d", cfg.Server.Port)
		}
		if cfg.Database.Driver != "sqlite" {
			t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
		}
		if cfg.Redis.Enabled {
			t.Error("expected redis to be disabled")
		}
		if cfg.Summary.CacheTTL != 30*time.Second {
			t.Errorf("expected 30s cache ttl, got %s", cfg.Summary.CacheTTL)
		}
		if cfg.Summary.DefaultWindowDays != 7 {
			t.Errorf("expected 7 day window, got %d", cfg.Summary.DefaultWindowDays)
		}
		origins := cfg.Server.CORSAllowedOrigins
		if len(origins) != 2 || origins[0] != "https://a.example.com" || origins[1] != "https://b.example.com" {
			t.Errorf("unexpected CORS origins %v", origins)
		}
		if cfg.Auth.Issuer != "https://id.example.com" {
			t.Errorf("unexpected issuer %s", cfg.Auth.Issuer)
		}
	})

	t.Run("ignores malformed values", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "eighty")
		t.Setenv("SUMMARY_CACHE_TTL", "soon")

		cfg := Load()

		if cfg.Server.Port != 8080 {
			t.Errorf("expected default port, got %d", cfg.Server.Port)
		}
		if cfg.Summary.CacheTTL != 5*time.Minute {
			t.Errorf("expected default ttl, got %s", cfg.Summary.CacheTTL)
		}
	})
}
