package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("env = %q, want development", cfg.Env)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("bcrypt cost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Mongo.Database != "commerce" {
		t.Errorf("mongo db = %q, want commerce", cfg.Mongo.Database)
	}
	if cfg.Redis.CacheTTL != 60*time.Second {
		t.Errorf("cache ttl = %v, want 60s", cfg.Redis.CacheTTL)
	}
	if cfg.ActivityWorkers != 4 {
		t.Errorf("activity workers = %d, want 4", cfg.ActivityWorkers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("ACTIVITY_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("token ttl = %v, want 30m", cfg.Auth.TokenTTL)
	}
	if cfg.ActivityWorkers != 8 {
		t.Errorf("activity workers = %d, want 8", cfg.ActivityWorkers)
	}
}

func TestLoad_SecretRequiredOutsideDevelopment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing in production")
	}

	t.Setenv("JWT_SECRET", "super-secret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
}
