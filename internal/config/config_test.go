package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"APP_ENV":    "test",
		"APP_PORT":   "8080",
		"APP_URL":    "https://events.example.com",
		"DB_USER":    "app",
		"DB_HOST":    "localhost",
		"DB_PORT":    "3306",
		"DB_NAME":    "events",
		"JWT_SECRET": "s3cret",
	} {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()
	if cfg.TokenTTLDays != 3 {
		t.Fatalf("TokenTTLDays default: got %d want 3", cfg.TokenTTLDays)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("BcryptCost default: got %d want 10", cfg.BcryptCost)
	}
	if cfg.DefaultRole != "admin" {
		t.Fatalf("DefaultRole default: got %q want admin", cfg.DefaultRole)
	}
	if cfg.AppURL != "https://events.example.com" {
		t.Fatalf("AppURL: got %q", cfg.AppURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL_DAYS", "7")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("DEFAULT_ROLE", "standard")

	cfg := Load()
	if cfg.TokenTTLDays != 7 || cfg.BcryptCost != 12 || cfg.DefaultRole != "standard" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRateLimitConfig_Bounds(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "100ms")
	t.Setenv("RATE_LIMIT_TTL", "50ms")

	cfg := LoadRateLimitConfig()
	if cfg.Capacity != 1 {
		t.Fatalf("capacity floor: got %d want 1", cfg.Capacity)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("TTL %v must be at least five refill intervals (%v)", cfg.TTL, cfg.RefillInterval)
	}
	if cfg.RefillInterval != 100*time.Millisecond {
		t.Fatalf("refill interval: got %v", cfg.RefillInterval)
	}
}
